package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func searchCommand() *cobra.Command {
	var (
		searchIndex   string
		responseGroup string
	)

	searchCmd := &cobra.Command{
		Use:   "search [keywords]",
		Short: "Search the catalog by keywords",
		Long: "Sends a signed ItemSearch request and prints the matching\n" +
			"products. The search category defaults from the configuration.",
		Example: `  # Search everywhere
  amazon-catalog search "dan brown"

  # Search a specific category
  amazon-catalog search "dan brown" --index Books`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, args[0], searchIndex, responseGroup)
		},
	}
	searchCmd.Flags().
		StringVar(&searchIndex, "index", "", "search category (overrides the configured default)")
	searchCmd.Flags().
		StringVar(&responseGroup, "response-group", "", "vendor response group (e.g. Small, Medium)")

	return searchCmd
}

func runSearch(cmd *cobra.Command, keywords, searchIndex, responseGroup string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	extra := map[string]string{}
	if searchIndex != "" {
		extra["SearchIndex"] = searchIndex
	}
	if responseGroup != "" {
		extra["ResponseGroup"] = responseGroup
	}

	search, err := client.ItemSearch(cmd.Context(), keywords, extra)
	if err != nil {
		return fmt.Errorf("searching for %q: %w", keywords, err)
	}

	if jsonOutput() {
		return printJSON(searchJSON(search))
	}
	return printSearchTable(search)
}
