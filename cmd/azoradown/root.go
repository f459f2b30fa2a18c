package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/azoradev/azoradown/internal"
	"github.com/azoradev/azoradown/internal/clients"
	"github.com/azoradev/azoradown/internal/config"
)

var (
	cfgPath string
	verbose bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "azoradown",
	Short: "Harvest manga catalog data and download chapters as PDF",
	Long:  "Extract search results, series details and chapter images from azoramoon.com, and assemble chapters into PDF documents",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := internal.INFO
		if verbose {
			level = internal.DEBUG
		}
		internal.InitDefaultLogger(level)

		var err error
		cfg, err = config.Load(cfgPath)
		return err
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "azoradown.yaml", "path to the yaml config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(detailsCmd)
	rootCmd.AddCommand(imagesCmd)
	rootCmd.AddCommand(downloadCmd)
	rootCmd.AddCommand(catalogCmd)
}

// newFetcher builds the process-wide fetch client from config. Every command
// owns exactly one and closes it on exit.
func newFetcher() *clients.Fetcher {
	return clients.New(cfg.FetchOptions())
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
