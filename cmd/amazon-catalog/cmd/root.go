// Package cmd implements the amazon-catalog CLI commands.
package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/donaldgifford/amazon-catalog/internal/amazon"
	"github.com/donaldgifford/amazon-catalog/internal/config"
	"github.com/donaldgifford/amazon-catalog/pkg/logger"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "amazon-catalog",
		Short: "Query the Amazon product catalog from the terminal",
		Long: "amazon-catalog is a command-line client for the Amazon Product\n" +
			"Advertising API. It signs every request with your access keys and\n" +
			"lets you look up products by ASIN or search the catalog by keywords.",
	}
)

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initViper)

	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.PersistentFlags().
		String("output", "table", "output format (table, json)")

	cobra.CheckErr(viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output")))

	rootCmd.AddCommand(lookupCommand())
	rootCmd.AddCommand(searchCommand())
	rootCmd.AddCommand(versionCommand())
}

func initViper() {
	viper.SetEnvPrefix("AMAZON_CATALOG")
	viper.AutomaticEnv()
}

// newClient wires a signed API client from the loaded configuration.
func newClient() (*amazon.Client, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	opts := []amazon.Option{
		amazon.WithHost(cfg.Amazon.Host),
		amazon.WithPath(cfg.Amazon.Path),
		amazon.WithSearchIndex(cfg.Amazon.DefaultSearchCategory),
		amazon.WithCache(cfg.Amazon.CacheEnabled()),
		amazon.WithTransport(amazon.NewHTTPTransport(
			&http.Client{Timeout: cfg.Amazon.Timeout},
		)),
		amazon.WithLogger(logger.New(cfg.LogLevel(), cfg.Logging.Format)),
	}
	if cfg.Amazon.AssociateTag != "" {
		opts = append(opts, amazon.WithAssociateTag(cfg.Amazon.AssociateTag))
	}

	return amazon.New(cfg.Amazon.Key, cfg.Amazon.Secret, opts...), nil
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}
