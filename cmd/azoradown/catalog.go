package cmd

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/azoradev/azoradown/internal"
	"github.com/azoradev/azoradown/internal/scrape"
)

var catalogPages int

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Enumerate every series URL in the site catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		startTime := time.Now()

		fetch := newFetcher()
		defer fetch.Close()

		catalog := scrape.NewCatalog(fetch, cfg.Site)
		catalog.Workers = cfg.Download.CatalogWorkers

		pages := catalogPages
		if pages <= 0 {
			var err error
			pages, err = catalog.TotalPages(cmd.Context())
			if err != nil {
				return err
			}
			internal.Info("catalog has %d index pages", pages)
		}

		set := catalog.Start(cmd.Context(), pages)

		links := make([]string, 0, len(set))
		for link := range set {
			links = append(links, link)
		}
		sort.Strings(links)
		for _, link := range links {
			fmt.Println(link)
		}
		internal.Success("found %d series across %d pages in %v", len(links), pages, time.Since(startTime))
		return nil
	},
}

func init() {
	catalogCmd.Flags().IntVarP(&catalogPages, "pages", "p", 0, "number of index pages to walk (0 = all)")
}
