package resolve

import (
	"context"
	"strings"
	"unicode"

	"github.com/doclink/doclink"
)

// Compile-time interface verification.
var _ doclink.NearestFinder = (*Finder)(nil)

// Finder implements the nearest-match policy for missing documents.
// Matching is deterministic: the same index state and inputs always
// produce the same candidate (or nil).
type Finder struct {
	Documents doclink.DocumentService
	Policy    Policy
}

// NewFinder creates a Finder with the given policy.
func NewFinder(documents doclink.DocumentService, policy Policy) *Finder {
	return &Finder{Documents: documents, Policy: policy}
}

// FindNearest returns the single best substitute for the missing
// project/collection/slug triple, or nil when nothing clears the
// policy threshold. Precedence:
//
//  1. An exact slug match in a different collection of the same project
//     (handles collection renames) wins outright with maximal score.
//  2. Otherwise candidates are scored by slug path-segment similarity
//     weighted above title text similarity.
//
// Ties are broken by most recently modified document, then by
// collection/slug order so the result never depends on scan order.
func (f *Finder) FindNearest(ctx context.Context, projectID, collectionID, docSlug, title string) (*doclink.NearestCandidate, error) {
	docs, err := f.Documents.FindDocuments(ctx, doclink.DocumentFilter{
		ProjectID: &projectID,
		SortBy:    doclink.SortBySlug,
	})
	if err != nil {
		return nil, err
	}

	var best *doclink.Document
	var bestScore float64
	var bestExact bool

	for _, d := range docs {
		if d.CollectionID == collectionID && d.Slug == docSlug {
			// The missed target itself; the index may have changed under
			// us, but resurfacing it as its own substitute helps nobody.
			continue
		}

		exact := d.Slug == docSlug
		score := 1.0
		if !exact {
			if bestExact {
				continue
			}
			score = f.Policy.score(docSlug, title, d)
		}

		if best == nil ||
			(exact && !bestExact) ||
			(exact == bestExact && score > bestScore) ||
			(exact == bestExact && score == bestScore && moreRecent(d, best)) {
			best = d
			bestScore = score
			bestExact = exact
		}
	}

	// A wrong "nearest" suggestion is worse than admitting failure.
	if best == nil || (!bestExact && bestScore < f.Policy.MinScore) {
		return nil, nil
	}

	return &doclink.NearestCandidate{
		CollectionID: best.CollectionID,
		Slug:         best.Slug,
		Title:        best.Title,
		Score:        bestScore,
	}, nil
}

// moreRecent reports whether a should replace b on an equal score.
func moreRecent(a, b *doclink.Document) bool {
	if !a.UpdatedAt.Equal(b.UpdatedAt) {
		return a.UpdatedAt.After(b.UpdatedAt)
	}
	if a.CollectionID != b.CollectionID {
		return a.CollectionID < b.CollectionID
	}
	return a.Slug < b.Slug
}

// score rates a candidate document against the missing slug and the
// optional title hint, normalized to [0, 1].
func (p Policy) score(missingSlug, titleHint string, d *doclink.Document) float64 {
	slugSim := trailingSegmentRatio(missingSlug, d.Slug)
	if overlap := jaccard(slugTokens(missingSlug), slugTokens(d.Slug)); overlap > slugSim {
		slugSim = overlap
	}

	want := titleHint
	if want == "" {
		// No snapshot hint; fall back to the words of the missing slug.
		want = missingSlug
	}
	titleSim := jaccard(textTokens(want), textTokens(d.Title))

	return (p.SlugWeight*slugSim + p.TitleWeight*titleSim) / (p.SlugWeight + p.TitleWeight)
}

// trailingSegmentRatio counts shared trailing path components relative
// to the longer slug, so deeper reorganizations score lower.
func trailingSegmentRatio(a, b string) float64 {
	as := strings.Split(a, "/")
	bs := strings.Split(b, "/")

	shared := 0
	for shared < len(as) && shared < len(bs) &&
		as[len(as)-1-shared] == bs[len(bs)-1-shared] {
		shared++
	}

	longest := len(as)
	if len(bs) > longest {
		longest = len(bs)
	}
	return float64(shared) / float64(longest)
}

// slugTokens splits a slug into comparable word tokens.
func slugTokens(slug string) []string {
	return strings.FieldsFunc(strings.ToLower(slug), func(r rune) bool {
		return r == '/' || r == '-' || r == '_'
	})
}

// textTokens splits free text into comparable word tokens.
func textTokens(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// jaccard computes set overlap between two token lists.
func jaccard(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	as := make(map[string]bool, len(a))
	for _, t := range a {
		as[t] = true
	}

	union := len(as)
	shared := 0
	bs := make(map[string]bool, len(b))
	for _, t := range b {
		if bs[t] {
			continue
		}
		bs[t] = true
		if as[t] {
			shared++
		} else {
			union++
		}
	}

	return float64(shared) / float64(union)
}
