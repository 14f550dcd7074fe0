package resolve

import (
	"context"

	"github.com/doclink/doclink"
)

// Compile-time interface verification.
var _ doclink.Recoverer = (*Recovery)(nil)

// Recovery drives the repair flow for bookmarks whose document is gone.
// It performs no writes until CommitRepair or CommitDelete is invoked,
// so a proposed-but-abandoned recovery never changes anything.
type Recovery struct {
	Bookmarks doclink.BookmarkService
	Documents doclink.DocumentService
	Resolver  doclink.TargetResolver
}

// ProposeRecovery builds the three-action offer for a bookmark whose
// resolution ended at a missing document. Repair and open-nearest are
// disabled, not omitted, when no candidate cleared the threshold, so
// the UI can explain why they cannot be taken.
func ProposeRecovery(bookmark *doclink.Bookmark, outcome *doclink.Outcome) doclink.RecoveryOffer {
	offer := doclink.RecoveryOffer{
		Bookmark: bookmark,
		Delete:   doclink.RecoveryAction{Choice: doclink.ChoiceDelete, Enabled: true},
	}
	if outcome != nil {
		offer.Nearest = outcome.Nearest
	}

	if offer.Nearest != nil {
		offer.Repair = doclink.RecoveryAction{Choice: doclink.ChoiceRepair, Enabled: true}
		offer.OpenNearest = doclink.RecoveryAction{Choice: doclink.ChoiceOpenNearest, Enabled: true}
		return offer
	}

	const reason = "no similar document was found"
	offer.Repair = doclink.RecoveryAction{Choice: doclink.ChoiceRepair, Disabled: reason}
	offer.OpenNearest = doclink.RecoveryAction{Choice: doclink.ChoiceOpenNearest, Disabled: reason}
	return offer
}

// CommitRepair rewrites the bookmark's target fields and title snapshot
// and bumps UpdatedAt. CreatedAt, OpenCount, and LastOpenedAt are left
// untouched. The new target is verified first: if it no longer exists
// the repair fails with ECONFLICT and the bookmark is not modified. An
// anchor the new document no longer carries is dropped rather than
// stored stale.
func (r *Recovery) CommitRepair(ctx context.Context, bookmarkID, newCollectionID, newDocSlug, newAnchorID, newTitle string) (*doclink.Bookmark, error) {
	bookmark, err := r.Bookmarks.FindBookmarkByID(ctx, bookmarkID)
	if err != nil {
		return nil, err
	}

	ref, err := r.Documents.LookupDocument(ctx, bookmark.ProjectID, newCollectionID, newDocSlug)
	if err != nil {
		if doclink.ErrorCode(err) == doclink.ENOTFOUND {
			return nil, doclink.Errorf(doclink.ECONFLICT, "repair target %s/%s no longer exists", newCollectionID, newDocSlug)
		}
		return nil, err
	}

	anchor := newAnchorID
	if anchor != "" && !ref.HasAnchor(anchor) {
		anchor = ""
	}

	return r.Bookmarks.UpdateBookmark(ctx, bookmarkID, doclink.BookmarkUpdate{
		CollectionID:  &newCollectionID,
		DocSlug:       &newDocSlug,
		AnchorID:      &anchor,
		TitleSnapshot: &newTitle,
	})
}

// CommitDelete removes the bookmark. Deleting an id that no longer
// exists is a no-op, not an error, to tolerate races with a concurrent
// bulk delete.
func (r *Recovery) CommitDelete(ctx context.Context, bookmarkID string) error {
	err := r.Bookmarks.DeleteBookmark(ctx, bookmarkID)
	if doclink.ErrorCode(err) == doclink.ENOTFOUND {
		return nil
	}
	return err
}

// Recover re-resolves the bookmark's stored target and applies the
// chosen action. For ChoiceRepair the bookmark is rewritten to the
// nearest candidate and the repaired target is resolved and returned;
// for ChoiceOpenNearest the nearest candidate is resolved and returned
// with the bookmark left as is; for ChoiceDelete the bookmark is
// removed and a nil outcome returned.
func (r *Recovery) Recover(ctx context.Context, bookmarkID string, choice doclink.RecoveryChoice) (*doclink.Outcome, error) {
	if choice == doclink.ChoiceDelete {
		return nil, r.CommitDelete(ctx, bookmarkID)
	}
	if choice != doclink.ChoiceRepair && choice != doclink.ChoiceOpenNearest {
		return nil, doclink.Errorf(doclink.EINVALID, "unknown recovery choice %q", choice)
	}

	bookmark, err := r.Bookmarks.FindBookmarkByID(ctx, bookmarkID)
	if err != nil {
		return nil, err
	}

	outcome, err := r.Resolver.ResolveTarget(ctx, bookmark.Target(), bookmark.TitleSnapshot)
	if err != nil {
		return nil, err
	}

	switch outcome.Status {
	case doclink.StatusMissingDocument:
		// Proceed below.
	case doclink.StatusMissingProject:
		return nil, doclink.Errorf(doclink.ECONFLICT, "project %q is not available locally", bookmark.ProjectID)
	default:
		return nil, doclink.Errorf(doclink.EINVALID, "bookmark target still resolves; nothing to repair")
	}

	nearest := outcome.Nearest
	if nearest == nil {
		return nil, doclink.Errorf(doclink.ENOTFOUND, "no similar document was found for bookmark %q", bookmarkID)
	}

	if choice == doclink.ChoiceRepair {
		if _, err := r.CommitRepair(ctx, bookmarkID, nearest.CollectionID, nearest.Slug, "", nearest.Title); err != nil {
			return nil, err
		}
	}

	return r.Resolver.ResolveTarget(ctx, doclink.LinkTarget{
		ProjectID:    bookmark.ProjectID,
		CollectionID: nearest.CollectionID,
		DocSlug:      nearest.Slug,
	}, "")
}
