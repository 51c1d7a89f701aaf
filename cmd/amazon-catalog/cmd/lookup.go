package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func lookupCommand() *cobra.Command {
	var responseGroup string

	lookupCmd := &cobra.Command{
		Use:   "lookup [ASIN]",
		Short: "Look up a product by its ASIN",
		Long: "Sends a signed ItemLookup request for the given ASIN and prints\n" +
			"the product details.",
		Example: `  # Look up a book by ASIN
  amazon-catalog lookup 0385504209

  # Request a larger response group, output as JSON
  amazon-catalog lookup 0385504209 --response-group Medium --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd, args[0], responseGroup)
		},
	}
	lookupCmd.Flags().
		StringVar(&responseGroup, "response-group", "", "vendor response group (e.g. Small, Medium)")

	return lookupCmd
}

func runLookup(cmd *cobra.Command, asin, responseGroup string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	extra := map[string]string{}
	if responseGroup != "" {
		extra["ResponseGroup"] = responseGroup
	}

	item, err := client.ItemLookup(cmd.Context(), asin, extra)
	if err != nil {
		return fmt.Errorf("looking up %s: %w", asin, err)
	}

	if jsonOutput() {
		return printJSON(item.Raw())
	}
	return printItemDetail(item)
}
