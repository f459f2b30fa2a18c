package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/azoradev/azoradown/internal/scrape"
)

var detailsCmd = &cobra.Command{
	Use:   "details [manga-url]",
	Short: "Show the metadata and chapter list of one series",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fetch := newFetcher()
		defer fetch.Close()

		manga, err := scrape.NewDetails(fetch, cfg.Site, args[0]).Manga(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("%s [%s] rated %s\n", manga.Title, manga.Status, manga.Rate)
		fmt.Printf("genres: %s\n", strings.Join(manga.Genres, ", "))
		fmt.Printf("poster: %s\n", manga.Poster)
		fmt.Printf("%s\n\n", manga.Description)
		for _, ch := range manga.Chapters {
			fmt.Printf("%4d  %s  %s\n", ch.OrderNo, ch.Title, ch.URL)
		}
		return nil
	},
}
