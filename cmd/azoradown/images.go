package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/azoradev/azoradown/internal/scrape"
)

var imagesCmd = &cobra.Command{
	Use:   "images [chapter-url]",
	Short: "List the page images of one chapter in reading order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fetch := newFetcher()
		defer fetch.Close()

		images, err := scrape.NewChapter(fetch, cfg.Site, args[0]).Images(cmd.Context())
		if err != nil {
			return err
		}
		for _, img := range images {
			fmt.Printf("%4d  %s\n", img.OrderNo, img.URL)
		}
		return nil
	},
}
