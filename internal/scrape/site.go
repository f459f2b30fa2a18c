package scrape

// Site describes the target website: base URL, pagination size and the CSS
// selector for every piece of markup the extractors read. Markup drift is a
// config edit, not a code change.
type Site struct {
	BaseURL        string    `yaml:"base_url"`
	SeriesPath     string    `yaml:"series_path"`
	ResultsPerPage int       `yaml:"results_per_page"`
	Selectors      Selectors `yaml:"selectors"`
}

type Selectors struct {
	SearchCount  string `yaml:"search_count"`
	SearchResult string `yaml:"search_result"`
	ResultLink   string `yaml:"result_link"`
	ResultPoster string `yaml:"result_poster"`
	ResultGenres string `yaml:"result_genres"`
	ResultStatus string `yaml:"result_status"`
	ResultRate   string `yaml:"result_rate"`
	ResultLatest string `yaml:"result_latest"`

	DetailTitle   string `yaml:"detail_title"`
	DetailPoster  string `yaml:"detail_poster"`
	DetailSummary string `yaml:"detail_summary"`
	DetailGenres  string `yaml:"detail_genres"`
	DetailStatus  string `yaml:"detail_status"`
	DetailRate    string `yaml:"detail_rate"`
	ChapterRow    string `yaml:"chapter_row"`

	ChapterImage string `yaml:"chapter_image"`

	CatalogCount string `yaml:"catalog_count"`
	CatalogLink  string `yaml:"catalog_link"`
}

func DefaultSite() Site {
	return Site{
		BaseURL:        "https://azoramoon.com",
		SeriesPath:     "series",
		ResultsPerPage: 12,
		Selectors: Selectors{
			SearchCount:  "h1",
			SearchResult: "div.row.c-tabs-item__content",
			ResultLink:   "div.c-image-hover a",
			ResultPoster: "div.c-image-hover a img",
			ResultGenres: "div.mg_genres div.summary-content a",
			ResultStatus: "div.mg_status div.summary-content",
			ResultRate:   "span.total_votes",
			ResultLatest: "div.latest-chap a",

			DetailTitle:   "h1",
			DetailPoster:  "div.summary_image a img.img-responsive",
			DetailSummary: "div.manga-summary",
			DetailGenres:  "div.genres-content a",
			DetailStatus:  "div.summary-content div.tags-content",
			DetailRate:    "span#averagerate",
			ChapterRow:    "li.wp-manga-chapter",

			ChapterImage: "img.wp-manga-chapter-img",

			CatalogCount: "div.h4",
			CatalogLink:  "h3 a",
		},
	}
}
