package cli

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	vatify "github.com/vatify/client-go"
)

var (
	version = "dev"
	commit  = "none"
)

// rootFlags holds the persistent flags shared by every subcommand.
type rootFlags struct {
	apiKey  string
	baseURL string
	timeout time.Duration
	json    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "vatify",
		Short:         "Validate VAT numbers, look up rates and calculate VAT",
		Long:          "vatify talks to the Vatify API to validate VAT numbers, list a country's VAT rates and calculate VAT treatment for a supply.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// A .env next to the working directory is honored, same as
			// the environment itself. Absence is not an error.
			_ = godotenv.Load()
		},
	}

	cmd.PersistentFlags().StringVar(&flags.apiKey, "api-key", "", "Vatify API key (or set VATIFY_API_KEY)")
	cmd.PersistentFlags().StringVar(&flags.baseURL, "base-url", "", "override the API base URL")
	cmd.PersistentFlags().DurationVar(&flags.timeout, "timeout", 0, "per-request timeout")
	cmd.PersistentFlags().BoolVar(&flags.json, "json", false, "print raw JSON instead of formatted output")

	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newRatesCmd(flags))
	cmd.AddCommand(newCalculateCmd(flags))
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

// newClient builds a synchronous client from flags, environment and the
// optional config file, in that precedence order.
func (f *rootFlags) newClient() (*vatify.Client, error) {
	fileCfg := loadFileConfig()

	apiKey := f.apiKey
	if apiKey == "" {
		// vatify.New falls back to VATIFY_API_KEY itself; the file is the
		// last resort below it.
		apiKey = fileCfg.apiKeyFallback()
	}

	var opts []vatify.Option
	switch {
	case f.baseURL != "":
		opts = append(opts, vatify.WithBaseURL(f.baseURL))
	case fileCfg.BaseURL != "":
		opts = append(opts, vatify.WithBaseURL(fileCfg.BaseURL))
	}
	switch {
	case f.timeout > 0:
		opts = append(opts, vatify.WithTimeout(f.timeout))
	case fileCfg.timeout() > 0:
		opts = append(opts, vatify.WithTimeout(fileCfg.timeout()))
	}

	return vatify.New(apiKey, opts...)
}
