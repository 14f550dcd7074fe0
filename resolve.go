package doclink

import "context"

// OutcomeStatus identifies the terminal state of a link resolution.
type OutcomeStatus string

// Resolution outcome statuses. Each one has a defined UI fallback;
// none of them is ever rendered as a silent no-op.
const (
	// StatusOpened means full resolution succeeded.
	StatusOpened OutcomeStatus = "opened"

	// StatusMissingAnchor means the document resolved but the anchor did
	// not; the caller should navigate to the document top.
	StatusMissingAnchor OutcomeStatus = "missing-anchor"

	// StatusMissingDocument means the document was not found in its
	// collection; a nearest candidate is offered when one clears the
	// similarity threshold.
	StatusMissingDocument OutcomeStatus = "missing-document"

	// StatusMissingProject means the project is not available locally;
	// the caller should prompt a project switch or add, keeping the
	// tried target as a resumable payload.
	StatusMissingProject OutcomeStatus = "missing-project"

	// StatusInvalid means the raw identifier failed to decode.
	StatusInvalid OutcomeStatus = "invalid"
)

// Outcome is the terminal result of a link resolution. Exactly one
// resolution produces exactly one Outcome; misses are values here, not
// errors. Outcomes are transient and never shared across resolutions.
type Outcome struct {
	Status OutcomeStatus `json:"status"`

	// Target is the decoded target. For StatusOpened and
	// StatusMissingAnchor it is the resolved target; for
	// StatusMissingProject and StatusMissingDocument it is the tried
	// target, preserved so the caller can resume or repair. Nil for
	// StatusInvalid.
	Target *LinkTarget `json:"target,omitempty"`

	// Doc is the resolved document for StatusOpened and
	// StatusMissingAnchor.
	Doc *DocumentRef `json:"doc,omitempty"`

	// Nearest is the single best substitute candidate for
	// StatusMissingDocument; nil when no candidate cleared the
	// threshold.
	Nearest *NearestCandidate `json:"nearest,omitempty"`

	// Raw and Reason describe the decode failure for StatusInvalid.
	Raw    string       `json:"raw,omitempty"`
	Reason DecodeReason `json:"reason,omitempty"`
}

// NearestCandidate is the single best substitute document offered when
// a link target is gone. The finder deliberately surfaces one candidate
// rather than a ranked list, keeping the repair flow a single decision.
type NearestCandidate struct {
	CollectionID string  `json:"collectionId"`
	Slug         string  `json:"slug"`
	Title        string  `json:"title"`
	Score        float64 `json:"score"`
}

// Resolver resolves a raw deep link to its terminal outcome.
type Resolver interface {
	// Resolve runs the full fallback chain for a raw identifier. The
	// returned error is reserved for storage failures; expected misses
	// are reported through the Outcome.
	Resolve(ctx context.Context, raw string) (*Outcome, error)
}

// TargetResolver resolves an already-decoded target. Used by the
// recovery flow, which starts from a bookmark record rather than a raw
// string and can supply the stale title snapshot as a matching hint.
type TargetResolver interface {
	ResolveTarget(ctx context.Context, target LinkTarget, titleHint string) (*Outcome, error)
}

// NearestFinder locates the closest substitute for a missing document.
type NearestFinder interface {
	// FindNearest returns the single best candidate for the missing
	// project/collection/slug triple, or nil when nothing clears the
	// similarity threshold. title is an optional hint (e.g. a bookmark's
	// title snapshot). Given the same index state and inputs the result
	// is deterministic.
	FindNearest(ctx context.Context, projectID, collectionID, docSlug, title string) (*NearestCandidate, error)
}

// RecoveryChoice selects one of the recovery actions offered for a
// bookmark whose document is gone.
type RecoveryChoice string

// Recovery choices.
const (
	ChoiceRepair      RecoveryChoice = "repair"
	ChoiceOpenNearest RecoveryChoice = "open-nearest"
	ChoiceDelete      RecoveryChoice = "delete"
)

// RecoveryAction is one selectable action in a RecoveryOffer. Disabled
// actions stay in the offer with a reason, so the UI can explain why
// they cannot be taken.
type RecoveryAction struct {
	Choice   RecoveryChoice `json:"choice"`
	Enabled  bool           `json:"enabled"`
	Disabled string         `json:"disabledReason,omitempty"`
}

// RecoveryOffer presents the three recovery actions for a bookmark with
// a missing document. Repair and OpenNearest are disabled, not omitted,
// when no nearest candidate exists.
type RecoveryOffer struct {
	Bookmark *Bookmark         `json:"bookmark"`
	Nearest  *NearestCandidate `json:"nearest,omitempty"`

	Repair      RecoveryAction `json:"repair"`
	OpenNearest RecoveryAction `json:"openNearest"`
	Delete      RecoveryAction `json:"delete"`
}

// Recoverer drives bookmark recovery end to end: re-resolve the stored
// target, then apply the user's choice.
type Recoverer interface {
	// Recover applies choice to the bookmark. For ChoiceRepair the
	// bookmark is rewritten to the nearest candidate; for
	// ChoiceOpenNearest the nearest candidate is resolved and returned
	// without modifying the bookmark; for ChoiceDelete the bookmark is
	// removed (idempotently). The returned outcome, when non-nil, is
	// what the caller should open.
	Recover(ctx context.Context, bookmarkID string, choice RecoveryChoice) (*Outcome, error)
}
