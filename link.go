package doclink

import (
	"fmt"
	"net/url"
	"strings"
)

// Scheme is the URI scheme of doclink deep links.
const Scheme = "doclink"

// LinkTarget is the decoded form of a deep link: a project/collection/
// document/anchor quadruple. AnchorID is empty when the link addresses
// the whole document.
//
// LinkTarget values are transient: created per resolution call and
// discarded after the caller acts on them.
type LinkTarget struct {
	ProjectID    string `json:"projectId"`
	CollectionID string `json:"collectionId"`
	DocSlug      string `json:"docSlug"`
	AnchorID     string `json:"anchorId,omitempty"`
}

// Validate returns an error if the target is missing a mandatory field.
func (t *LinkTarget) Validate() error {
	if t.ProjectID == "" {
		return Errorf(EINVALID, "link target project ID required")
	}
	if t.CollectionID == "" {
		return Errorf(EINVALID, "link target collection ID required")
	}
	if t.DocSlug == "" {
		return Errorf(EINVALID, "link target document slug required")
	}
	return nil
}

// RelativeSlug returns DocSlug with a duplicate collection prefix
// stripped. Persisted records may store the slug collection-qualified;
// the encoded link form is always collection-relative.
func (t LinkTarget) RelativeSlug() string {
	if rest, ok := strings.CutPrefix(t.DocSlug, t.CollectionID+"/"); ok && rest != "" {
		return rest
	}
	return t.DocSlug
}

// Encode produces the canonical string form of the target:
//
//	doclink://project/{projectId}/collection/{collectionId}/doc/{docSlug}#{anchorId}
//
// Path segments are percent-encoded, the slug is collection-relative,
// and the fragment is omitted entirely when AnchorID is empty.
func (t LinkTarget) Encode() string {
	var sb strings.Builder
	sb.WriteString(Scheme)
	sb.WriteString("://project/")
	sb.WriteString(url.PathEscape(t.ProjectID))
	sb.WriteString("/collection/")
	sb.WriteString(url.PathEscape(t.CollectionID))
	sb.WriteString("/doc/")
	sb.WriteString(escapeSlug(t.RelativeSlug()))
	if t.AnchorID != "" {
		sb.WriteByte('#')
		sb.WriteString(t.AnchorID)
	}
	return sb.String()
}

// escapeSlug percent-encodes a slug one path segment at a time so that
// the slug's own '/' separators survive encoding.
func escapeSlug(slug string) string {
	segs := strings.Split(slug, "/")
	for i, seg := range segs {
		segs[i] = url.PathEscape(seg)
	}
	return strings.Join(segs, "/")
}

// DecodeReason identifies which part of a raw link failed to parse.
type DecodeReason string

// Decode failure reasons.
const (
	ReasonBadScheme         DecodeReason = "bad-scheme"
	ReasonMissingProject    DecodeReason = "missing-project"
	ReasonMissingCollection DecodeReason = "missing-collection"
	ReasonMissingDoc        DecodeReason = "missing-doc"
	ReasonMalformed         DecodeReason = "malformed"
)

// DecodeError describes a raw link that could not be decoded.
type DecodeError struct {
	Raw    string
	Reason DecodeReason
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot decode link %q: %s", e.Raw, e.Reason)
}

// DecodeLink parses a raw deep link into a LinkTarget. It accepts the
// canonical form produced by Encode as well as the legacy unversioned
// form doclink://{projectId}/{collectionId}/{docSlug}#{anchorId}, and
// normalizes both to the same LinkTarget (collection-relative slug,
// percent-decoded segments).
//
// Decoding is pure and total: malformed input yields a *DecodeError,
// never a panic. Trailing slashes are tolerated. The anchor fragment is
// opaque; any '#' or '?' characters after the first '#' are preserved
// verbatim and never re-parsed.
func DecodeLink(raw string) (LinkTarget, error) {
	var t LinkTarget

	rest, anchor, _ := strings.Cut(raw, "#")

	prefix := Scheme + "://"
	if len(rest) < len(prefix) || !strings.EqualFold(rest[:len(prefix)], prefix) {
		return t, &DecodeError{Raw: raw, Reason: ReasonBadScheme}
	}

	path := strings.Trim(rest[len(prefix):], "/")
	if path == "" {
		return t, &DecodeError{Raw: raw, Reason: ReasonMissingProject}
	}

	segs := strings.Split(path, "/")

	var project, collection string
	var slugSegs []string

	if segs[0] == "project" {
		// Canonical, versioned form with explicit segment markers.
		if len(segs) < 2 || segs[1] == "" {
			return t, &DecodeError{Raw: raw, Reason: ReasonMissingProject}
		}
		project = segs[1]
		if len(segs) < 4 || segs[2] != "collection" || segs[3] == "" {
			return t, &DecodeError{Raw: raw, Reason: ReasonMissingCollection}
		}
		collection = segs[3]
		if len(segs) < 6 || segs[4] != "doc" {
			return t, &DecodeError{Raw: raw, Reason: ReasonMissingDoc}
		}
		slugSegs = segs[5:]
	} else {
		// Legacy form: bare {project}/{collection}/{slug} path.
		project = segs[0]
		if len(segs) < 2 || segs[1] == "" {
			return t, &DecodeError{Raw: raw, Reason: ReasonMissingCollection}
		}
		collection = segs[1]
		if len(segs) < 3 {
			return t, &DecodeError{Raw: raw, Reason: ReasonMissingDoc}
		}
		slugSegs = segs[2:]
	}

	var err error
	if t.ProjectID, err = url.PathUnescape(project); err != nil {
		return LinkTarget{}, &DecodeError{Raw: raw, Reason: ReasonMalformed}
	}
	if t.CollectionID, err = url.PathUnescape(collection); err != nil {
		return LinkTarget{}, &DecodeError{Raw: raw, Reason: ReasonMalformed}
	}
	for i, seg := range slugSegs {
		if slugSegs[i], err = url.PathUnescape(seg); err != nil {
			return LinkTarget{}, &DecodeError{Raw: raw, Reason: ReasonMalformed}
		}
	}

	slug := strings.Join(slugSegs, "/")
	if slug == "" {
		return LinkTarget{}, &DecodeError{Raw: raw, Reason: ReasonMissingDoc}
	}

	t.DocSlug = slug
	t.DocSlug = t.RelativeSlug()
	t.AnchorID = anchor

	return t, nil
}
