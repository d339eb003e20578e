package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	vatify "github.com/vatify/client-go"
)

var (
	validStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E")).Bold(true)
	invalidStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)
	labelStyle   = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

// printJSON writes v as indented JSON, the --json output mode.
func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderValidation(w io.Writer, res *vatify.ValidationResult) {
	verdict := invalidStyle.Render("invalid")
	if res.Valid {
		verdict = validStyle.Render("valid")
	}
	fmt.Fprintf(w, "%s  %s\n", labelStyle.Render(res.VATNumber), verdict)
	if res.CountryCode != "" {
		fmt.Fprintf(w, "  %s %s\n", dimStyle.Render("country:"), res.CountryCode)
	}
	if res.Name != "" {
		fmt.Fprintf(w, "  %s %s\n", dimStyle.Render("name:"), res.Name)
	}
	if res.Address != "" {
		fmt.Fprintf(w, "  %s %s\n", dimStyle.Render("address:"), res.Address)
	}
}

func renderRates(w io.Writer, countryCode string, entries []vatify.RateEntry) {
	fmt.Fprintf(w, "%s\n", labelStyle.Render(fmt.Sprintf("VAT rates for %s", strings.ToUpper(countryCode))))
	for _, e := range entries {
		fmt.Fprintf(w, "  %-14s %.1f%%\n", e.RateType, e.RatePercent)
	}
	if len(entries) == 0 {
		fmt.Fprintln(w, dimStyle.Render("  no rates returned"))
	}
}

func renderCalculation(w io.Writer, res *vatify.CalculationResult) {
	fmt.Fprintf(w, "%s  %.1f%%\n", labelStyle.Render(res.CountryCode), res.RatePercent)
	if res.Gross != 0 || res.Net != 0 {
		fmt.Fprintf(w, "  %s %.2f   %s %.2f   %s %.2f\n",
			dimStyle.Render("net:"), res.Net,
			dimStyle.Render("vat:"), res.VAT,
			dimStyle.Render("gross:"), res.Gross)
	}
	if res.Mechanism != "" {
		fmt.Fprintf(w, "  %s %s\n", dimStyle.Render("mechanism:"), res.Mechanism)
	}
	for _, msg := range res.Messages {
		fmt.Fprintf(w, "  %s %s\n", dimStyle.Render("note:"), msg)
	}
}
