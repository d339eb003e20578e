package cli

import (
	"github.com/spf13/cobra"
)

func newRatesCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "rates <country_code>",
		Short: "List the VAT rates of a country",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := flags.newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			entries, err := client.Rates(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if flags.json {
				return printJSON(cmd.OutOrStdout(), entries)
			}
			renderRates(cmd.OutOrStdout(), args[0], entries)
			return nil
		},
	}
}
