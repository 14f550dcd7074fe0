package doclink

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Heading represents a markdown heading inside a document.
type Heading struct {
	Level  int    `json:"level"`
	Title  string `json:"title"`
	Anchor string `json:"anchor"`
}

var (
	headingRe   = regexp.MustCompile(`(?m)^(#{1,6})\s+(.+)$`)
	codeBlockRe = regexp.MustCompile("(?s)```.*?```")
)

// ExtractHeadings parses markdown and returns all headings (H1-H6) with
// their URL-safe anchors. Duplicate anchors get numeric suffixes, so
// every heading stays individually addressable.
func ExtractHeadings(markdown string) []Heading {
	if markdown == "" {
		return nil
	}

	// Strip fenced code blocks so # inside code is not mistaken for a heading.
	matches := headingRe.FindAllStringSubmatch(codeBlockRe.ReplaceAllString(markdown, ""), -1)
	if len(matches) == 0 {
		return nil
	}

	headings := make([]Heading, 0, len(matches))
	seen := make(map[string]int)

	for _, m := range matches {
		title := strings.TrimSpace(m[2])
		anchor := Slugify(title)
		if n, ok := seen[anchor]; ok {
			seen[anchor] = n + 1
			anchor = anchor + "-" + strconv.Itoa(n)
		} else {
			seen[anchor] = 1
		}
		headings = append(headings, Heading{
			Level:  len(m[1]),
			Title:  title,
			Anchor: anchor,
		})
	}

	return headings
}

// ExtractAnchors returns just the anchor identifiers of a document's
// headings, in document order. This is the anchor vocabulary consulted
// by the anchor existence check.
func ExtractAnchors(markdown string) []string {
	headings := ExtractHeadings(markdown)
	if len(headings) == 0 {
		return nil
	}
	anchors := make([]string, len(headings))
	for i, h := range headings {
		anchors[i] = h.Anchor
	}
	return anchors
}

// Slugify creates a URL-safe anchor from a title: lowercase, letters
// and digits kept, runs of everything else collapsed to single hyphens.
func Slugify(title string) string {
	var sb strings.Builder
	hyphen := false

	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			sb.WriteRune(r)
			hyphen = false
		case unicode.IsSpace(r) || r == '-':
			if !hyphen && sb.Len() > 0 {
				sb.WriteByte('-')
				hyphen = true
			}
		}
	}

	return strings.TrimSuffix(sb.String(), "-")
}
