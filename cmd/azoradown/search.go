package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/azoradev/azoradown/internal/scrape"
)

var searchAllPages bool

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the site for manga titles",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")

		fetch := newFetcher()
		defer fetch.Close()
		search := scrape.NewSearch(fetch, cfg.Site)

		var (
			res *scrape.SearchResults
			err error
		)
		if searchAllPages {
			res, err = search.All(cmd.Context(), query)
		} else {
			res, err = search.Search(cmd.Context(), query)
		}
		if err != nil {
			return err
		}

		fmt.Printf("%d result(s) on %d page(s)\n", res.ResultNo, res.Pages)
		for _, r := range res.Results {
			fmt.Printf("%s [%s] %s\n", r.Title, r.Status, r.URL)
			if r.LatestChapter.Title != "" {
				fmt.Printf("  latest: %s (%s)\n", r.LatestChapter.Title, r.LatestChapter.URL)
			}
			if len(r.Genres) > 0 {
				fmt.Printf("  genres: %s\n", strings.Join(r.Genres, ", "))
			}
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().BoolVarP(&searchAllPages, "all", "a", false, "fetch every result page, not just the first")
}
