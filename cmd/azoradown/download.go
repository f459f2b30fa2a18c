package cmd

import (
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/azoradev/azoradown/internal"
	"github.com/azoradev/azoradown/internal/scrape"
)

var downloadOutput string

var downloadCmd = &cobra.Command{
	Use:   "download [chapter-url]",
	Short: "Download a chapter's images and assemble them into one PDF",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		startTime := time.Now()

		fetch := newFetcher()
		defer fetch.Close()

		chapter := scrape.NewChapter(fetch, cfg.Site, args[0])
		chapter.Workers = cfg.Download.ImageWorkers

		out := downloadOutput
		if !filepath.IsAbs(out) {
			out = filepath.Join(cfg.Download.Output, out)
		}
		if err := chapter.DownloadAsPDF(cmd.Context(), out); err != nil {
			return err
		}
		internal.Success("saved %s in %v", out, time.Since(startTime))
		return nil
	},
}

func init() {
	downloadCmd.Flags().StringVarP(&downloadOutput, "output", "o", "chapter.pdf", "output PDF path")
}
