package mock

import (
	"context"

	"github.com/doclink/doclink"
)

var (
	_ doclink.Resolver       = (*Resolver)(nil)
	_ doclink.TargetResolver = (*TargetResolver)(nil)
	_ doclink.NearestFinder  = (*NearestFinder)(nil)
	_ doclink.Recoverer      = (*Recoverer)(nil)
)

// Resolver is a mock implementation of doclink.Resolver.
type Resolver struct {
	ResolveFn func(ctx context.Context, raw string) (*doclink.Outcome, error)
}

func (r *Resolver) Resolve(ctx context.Context, raw string) (*doclink.Outcome, error) {
	return r.ResolveFn(ctx, raw)
}

// TargetResolver is a mock implementation of doclink.TargetResolver.
type TargetResolver struct {
	ResolveTargetFn func(ctx context.Context, target doclink.LinkTarget, titleHint string) (*doclink.Outcome, error)
}

func (r *TargetResolver) ResolveTarget(ctx context.Context, target doclink.LinkTarget, titleHint string) (*doclink.Outcome, error) {
	return r.ResolveTargetFn(ctx, target, titleHint)
}

// NearestFinder is a mock implementation of doclink.NearestFinder.
type NearestFinder struct {
	FindNearestFn func(ctx context.Context, projectID, collectionID, docSlug, title string) (*doclink.NearestCandidate, error)

	// FindNearestCalls counts FindNearest invocations for ordering
	// assertions.
	FindNearestCalls int
}

func (f *NearestFinder) FindNearest(ctx context.Context, projectID, collectionID, docSlug, title string) (*doclink.NearestCandidate, error) {
	f.FindNearestCalls++
	return f.FindNearestFn(ctx, projectID, collectionID, docSlug, title)
}

// Recoverer is a mock implementation of doclink.Recoverer.
type Recoverer struct {
	RecoverFn func(ctx context.Context, bookmarkID string, choice doclink.RecoveryChoice) (*doclink.Outcome, error)
}

func (r *Recoverer) Recover(ctx context.Context, bookmarkID string, choice doclink.RecoveryChoice) (*doclink.Outcome, error) {
	return r.RecoverFn(ctx, bookmarkID, choice)
}
