package scrape

// Value records assembled once from parsed markup. None of them are mutated
// after construction and none own external resources.

type ChapterLatest struct {
	URL   string
	Title string
}

type ChapterDetailed struct {
	OrderNo int
	URL     string
	Title   string
}

type ChapterImage struct {
	OrderNo int
	URL     string
}

type MangaSearchResult struct {
	URL           string
	Title         string
	Poster        string
	Genres        []string
	Status        string
	Rate          string
	LatestChapter ChapterLatest
}

type MangaDetails struct {
	URL         string
	Title       string
	Poster      string
	Description string
	Genres      []string
	Status      string
	Rate        string
	Chapters    []ChapterDetailed
}
