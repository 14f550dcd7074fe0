package resolve

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/doclink/doclink"
)

// Policy holds the tunable knobs of the nearest-match scoring. The
// exact scoring function is a policy decision, not a fixed algorithm;
// callers depend only on the FindNearest contract (determinism, single
// candidate, threshold gating).
type Policy struct {
	// MinScore is the minimum similarity a heuristic candidate must
	// reach to be offered at all.
	MinScore float64 `yaml:"min_score"`

	// SlugWeight and TitleWeight control the blend of slug path-segment
	// similarity and title text similarity. SlugWeight must not be
	// smaller than TitleWeight.
	SlugWeight  float64 `yaml:"slug_weight"`
	TitleWeight float64 `yaml:"title_weight"`
}

// DefaultPolicy returns the built-in scoring policy.
func DefaultPolicy() Policy {
	return Policy{
		MinScore:    0.3,
		SlugWeight:  0.7,
		TitleWeight: 0.3,
	}
}

// Validate returns an error if the policy is not usable.
func (p Policy) Validate() error {
	if p.MinScore < 0 || p.MinScore > 1 {
		return doclink.Errorf(doclink.EINVALID, "min_score must be between 0 and 1")
	}
	if p.SlugWeight < 0 || p.TitleWeight < 0 {
		return doclink.Errorf(doclink.EINVALID, "scoring weights must not be negative")
	}
	if p.SlugWeight+p.TitleWeight == 0 {
		return doclink.Errorf(doclink.EINVALID, "at least one scoring weight must be positive")
	}
	if p.SlugWeight < p.TitleWeight {
		return doclink.Errorf(doclink.EINVALID, "slug_weight must not be smaller than title_weight")
	}
	return nil
}

// LoadPolicy reads a YAML policy file, layering it over the defaults so
// a partial file only overrides what it sets. An empty path or a
// missing file yields the default policy.
func LoadPolicy(path string) (Policy, error) {
	policy := DefaultPolicy()
	if path == "" {
		return policy, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return policy, nil
	}
	if err != nil {
		return Policy{}, fmt.Errorf("failed to read policy file %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &policy); err != nil {
		return Policy{}, fmt.Errorf("failed to parse policy file %q: %w", path, err)
	}

	if err := policy.Validate(); err != nil {
		return Policy{}, err
	}
	return policy, nil
}
