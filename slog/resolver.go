package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/doclink/doclink"
)

// Ensure LoggingResolver implements both resolver interfaces.
var (
	_ doclink.Resolver       = (*LoggingResolver)(nil)
	_ doclink.TargetResolver = (*LoggingResolver)(nil)
)

// LoggingResolver wraps a resolver with structured logging of each
// resolution's outcome and duration.
type LoggingResolver struct {
	next   doclink.Resolver
	target doclink.TargetResolver
	logger *slog.Logger
}

// NewLoggingResolver creates a new LoggingResolver. next must also be
// passed as target when target-level resolution should be logged too.
func NewLoggingResolver(next doclink.Resolver, target doclink.TargetResolver, logger *slog.Logger) *LoggingResolver {
	return &LoggingResolver{next: next, target: target, logger: logger}
}

// Resolve delegates to the wrapped resolver and logs the outcome.
func (r *LoggingResolver) Resolve(ctx context.Context, raw string) (*doclink.Outcome, error) {
	begin := time.Now()
	outcome, err := r.next.Resolve(ctx, raw)
	if err != nil {
		r.logger.Error("link resolution failed",
			"raw", raw,
			"error", err,
			"duration", time.Since(begin),
		)
		return nil, err
	}
	r.logger.Info("link resolution",
		append(outcomeAttrs(outcome), "raw", raw, "duration", time.Since(begin))...,
	)
	return outcome, nil
}

// ResolveTarget delegates to the wrapped target resolver and logs the
// outcome.
func (r *LoggingResolver) ResolveTarget(ctx context.Context, target doclink.LinkTarget, titleHint string) (*doclink.Outcome, error) {
	begin := time.Now()
	outcome, err := r.target.ResolveTarget(ctx, target, titleHint)
	if err != nil {
		r.logger.Error("target resolution failed",
			"target", target.Encode(),
			"error", err,
			"duration", time.Since(begin),
		)
		return nil, err
	}
	r.logger.Info("target resolution",
		append(outcomeAttrs(outcome), "target", target.Encode(), "duration", time.Since(begin))...,
	)
	return outcome, nil
}

func outcomeAttrs(outcome *doclink.Outcome) []any {
	attrs := []any{"status", string(outcome.Status)}
	if outcome.Target != nil {
		attrs = append(attrs, "project", outcome.Target.ProjectID,
			"collection", outcome.Target.CollectionID,
			"doc", outcome.Target.DocSlug)
	}
	if outcome.Nearest != nil {
		attrs = append(attrs, "nearest", outcome.Nearest.Slug, "score", outcome.Nearest.Score)
	}
	if outcome.Reason != "" {
		attrs = append(attrs, "reason", string(outcome.Reason))
	}
	return attrs
}
