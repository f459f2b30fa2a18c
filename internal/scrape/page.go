package scrape

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/azoradev/azoradown/internal"
)

// Defensive node accessors. A missing element yields an empty value and a
// parse warning; extraction of the surrounding record continues.

func firstText(s *goquery.Selection, selector string) string {
	node := s.Find(selector).First()
	if node.Length() == 0 {
		internal.Warn("markup element %q not found, substituting empty text", selector)
		return ""
	}
	return strings.TrimSpace(node.Text())
}

func firstAttr(s *goquery.Selection, selector, attr string) string {
	node := s.Find(selector).First()
	if node.Length() == 0 {
		internal.Warn("markup element %q not found, substituting empty %s", selector, attr)
		return ""
	}
	val, ok := node.Attr(attr)
	if !ok {
		internal.Warn("markup element %q has no %s attribute", selector, attr)
		return ""
	}
	return strings.TrimSpace(val)
}

func allText(s *goquery.Selection, selector string) []string {
	var out []string
	s.Find(selector).Each(func(_ int, node *goquery.Selection) {
		out = append(out, strings.TrimSpace(node.Text()))
	})
	return out
}

func allAttr(s *goquery.Selection, selector, attr string) []string {
	var out []string
	s.Find(selector).Each(func(_ int, node *goquery.Selection) {
		val, ok := node.Attr(attr)
		if !ok {
			internal.Warn("markup element %q has no %s attribute, skipping", selector, attr)
			return
		}
		out = append(out, strings.TrimSpace(val))
	})
	return out
}

// leadingInt reads the integer that starts a heading like "42 results".
// Unparseable headings count as zero.
func leadingInt(text string) int {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return 0
	}
	n, err := strconv.Atoi(strings.ReplaceAll(fields[0], ",", ""))
	if err != nil {
		internal.Warn("count heading %q does not start with a number", text)
		return 0
	}
	return n
}

// pageCount is ceil(results / perPage); zero results means zero pages.
func pageCount(results, perPage int) int {
	if results <= 0 || perPage <= 0 {
		return 0
	}
	return (results + perPage - 1) / perPage
}
