// Package resolve implements the deep-link resolution fallback chain
// and the bookmark recovery flow. It coordinates the link codec, the
// project/document existence checks, and the nearest-match finder into
// a single terminal outcome per resolution.
package resolve

import (
	"context"
	"errors"

	"github.com/doclink/doclink"
)

// Compile-time interface verification.
var (
	_ doclink.Resolver       = (*Resolver)(nil)
	_ doclink.TargetResolver = (*Resolver)(nil)
)

// Resolver runs the resolution state machine. Each call operates on its
// own transient target and outcome values; the resolver itself holds no
// per-resolution state, so concurrent resolutions never interleave and
// an abandoned resolution leaves no side effects (resolution performs
// no writes).
type Resolver struct {
	Projects  doclink.ProjectService
	Documents doclink.DocumentService
	Finder    doclink.NearestFinder
}

// Resolve decodes raw and walks the fallback chain to a terminal
// outcome. Misses are reported through the outcome; the error return is
// reserved for storage failures.
func (r *Resolver) Resolve(ctx context.Context, raw string) (*doclink.Outcome, error) {
	target, err := doclink.DecodeLink(raw)
	if err != nil {
		var decodeErr *doclink.DecodeError
		if errors.As(err, &decodeErr) {
			return &doclink.Outcome{
				Status: doclink.StatusInvalid,
				Raw:    raw,
				Reason: decodeErr.Reason,
			}, nil
		}
		return nil, err
	}

	return r.ResolveTarget(ctx, target, "")
}

// ResolveTarget resolves an already-decoded target. The checks form a
// strict precondition chain: project before document before anchor. A
// later check is never attempted once an earlier one has failed, so a
// missing project is always reported as missing-project, never as a
// document miss.
func (r *Resolver) ResolveTarget(ctx context.Context, target doclink.LinkTarget, titleHint string) (*doclink.Outcome, error) {
	if err := target.Validate(); err != nil {
		return nil, err
	}

	ok, err := r.Projects.ProjectExists(ctx, target.ProjectID)
	if err != nil {
		return nil, err
	}
	if !ok {
		// Target is preserved as a resumable payload: the caller can
		// re-run the resolution once the project has been added.
		return &doclink.Outcome{
			Status: doclink.StatusMissingProject,
			Target: &target,
		}, nil
	}

	ref, err := r.Documents.LookupDocument(ctx, target.ProjectID, target.CollectionID, target.RelativeSlug())
	if err != nil && doclink.ErrorCode(err) != doclink.ENOTFOUND {
		return nil, err
	}
	if ref == nil {
		nearest, err := r.Finder.FindNearest(ctx, target.ProjectID, target.CollectionID, target.RelativeSlug(), titleHint)
		if err != nil {
			return nil, err
		}
		return &doclink.Outcome{
			Status:  doclink.StatusMissingDocument,
			Target:  &target,
			Nearest: nearest,
		}, nil
	}

	if target.AnchorID != "" && !ref.HasAnchor(target.AnchorID) {
		// The document is still considered resolved; callers open the
		// document top and may show a banner.
		return &doclink.Outcome{
			Status: doclink.StatusMissingAnchor,
			Target: &target,
			Doc:    ref,
		}, nil
	}

	return &doclink.Outcome{
		Status: doclink.StatusOpened,
		Target: &target,
		Doc:    ref,
	}, nil
}
