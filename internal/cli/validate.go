package cli

import (
	"github.com/spf13/cobra"
)

func newValidateCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <vat_number>",
		Short: "Validate a VAT number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := flags.newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			res, err := client.ValidateVAT(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if flags.json {
				return printJSON(cmd.OutOrStdout(), res)
			}
			renderValidation(cmd.OutOrStdout(), res)
			return nil
		},
	}
}
