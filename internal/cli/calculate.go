package cli

import (
	"github.com/spf13/cobra"

	vatify "github.com/vatify/client-go"
)

func newCalculateCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "calculate <country_code> <rate_type> <supply_date>",
		Short: "Calculate the VAT rate for a country, rate type and supply date",
		Long:  "Calculate the VAT rate applying in a country for a given rate type (standard, reduced, super_reduced, parking, zero) on a supply date (ISO-8601, e.g. 2026-08-30).",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := flags.newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			res, err := client.Calculate(cmd.Context(), vatify.CalculationParams{
				CountryCode: args[0],
				RateType:    vatify.RateType(args[1]),
				SupplyDate:  args[2],
			})
			if err != nil {
				return err
			}

			if flags.json {
				return printJSON(cmd.OutOrStdout(), res)
			}
			renderCalculation(cmd.OutOrStdout(), res)
			return nil
		},
	}
}
