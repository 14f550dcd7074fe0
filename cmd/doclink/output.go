package main

import (
	"fmt"
	"io"

	"github.com/doclink/doclink"
)

// renderOutcome prints the fallback treatment for a terminal resolution
// outcome. Every status has a rendering; none of them is a silent no-op.
func renderOutcome(w io.Writer, outcome *doclink.Outcome) {
	switch outcome.Status {
	case doclink.StatusOpened:
		if outcome.Target.AnchorID != "" {
			fmt.Fprintf(w, "Opened %s/%s at #%s (%s)\n",
				outcome.Target.CollectionID, outcome.Doc.Slug, outcome.Target.AnchorID, outcome.Doc.Title)
			return
		}
		fmt.Fprintf(w, "Opened %s/%s (%s)\n",
			outcome.Target.CollectionID, outcome.Doc.Slug, outcome.Doc.Title)

	case doclink.StatusMissingAnchor:
		fmt.Fprintf(w, "Opened %s/%s at the top (%s)\n",
			outcome.Target.CollectionID, outcome.Doc.Slug, outcome.Doc.Title)
		fmt.Fprintf(w, "Section #%s no longer exists in this document.\n", outcome.Target.AnchorID)

	case doclink.StatusMissingDocument:
		fmt.Fprintf(w, "Document %s/%s was not found in project %q.\n",
			outcome.Target.CollectionID, outcome.Target.DocSlug, outcome.Target.ProjectID)
		if outcome.Nearest != nil {
			fmt.Fprintf(w, "Closest match: %s/%s (%s, similarity %.2f)\n",
				outcome.Nearest.CollectionID, outcome.Nearest.Slug, outcome.Nearest.Title, outcome.Nearest.Score)
			return
		}
		fmt.Fprintln(w, "No similar document was found.")

	case doclink.StatusMissingProject:
		fmt.Fprintf(w, "Project %q is not available locally.\n", outcome.Target.ProjectID)
		fmt.Fprintf(w, "Add it with 'doclink projects add %s <name>' and retry %s\n",
			outcome.Target.ProjectID, outcome.Target.Encode())

	case doclink.StatusInvalid:
		fmt.Fprintf(w, "Not a valid doclink link: %q (%s)\n", outcome.Raw, outcome.Reason)
	}
}

// renderOffer prints the recovery actions for a bookmark whose document
// is gone, including disabled actions with their reason.
func renderOffer(w io.Writer, bookmarkID string, offer doclink.RecoveryOffer) {
	fmt.Fprintln(w, "Recovery options:")
	renderAction(w, bookmarkID, offer.Repair, "point the bookmark at the closest match")
	renderAction(w, bookmarkID, offer.OpenNearest, "open the closest match without changing the bookmark")
	renderAction(w, bookmarkID, offer.Delete, "delete the bookmark")
}

func renderAction(w io.Writer, bookmarkID string, action doclink.RecoveryAction, desc string) {
	if !action.Enabled {
		fmt.Fprintf(w, "  %-12s %s (unavailable: %s)\n", action.Choice, desc, action.Disabled)
		return
	}
	fmt.Fprintf(w, "  %-12s %s: doclink repair %s --choice %s\n", action.Choice, desc, bookmarkID, action.Choice)
}
