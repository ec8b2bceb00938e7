package metastore

import "github.com/corevecdb/corevec/pkg/model"

// SegmentScopePolicy decides whether a collection may accept another segment
// of the given scope (spec §9 Open Question b, supplemented feature:
// segment scope uniqueness is pluggable rather than hard-coded).
type SegmentScopePolicy interface {
	// Admit reports whether adding a segment of scope to a collection that
	// already owns existingScopes is allowed.
	Admit(scope model.SegmentScope, existingScopes []model.SegmentScope) bool
}

// OneSegmentPerSystemScope is the default: a collection may hold at most one
// segment of each scope (VECTOR, METADATA, RECORD).
type OneSegmentPerSystemScope struct{}

func (OneSegmentPerSystemScope) Admit(scope model.SegmentScope, existingScopes []model.SegmentScope) bool {
	for _, s := range existingScopes {
		if s == scope {
			return false
		}
	}
	return true
}

// NoScopeConstraint admits any number of segments per scope; for callers
// that manage their own segment topology.
type NoScopeConstraint struct{}

func (NoScopeConstraint) Admit(model.SegmentScope, []model.SegmentScope) bool {
	return true
}
