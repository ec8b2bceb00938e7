// Package types holds identifier and timestamp types shared across the
// catalog and log packages.
package types

import (
	"math"

	"github.com/google/uuid"
)

// Timestamp is a Unix-epoch nanosecond or second value depending on call
// site; the catalog and log stores treat it as an opaque, monotonically
// informative number rather than parsing it.
type Timestamp = int64

const MaxTimestamp = Timestamp(math.MaxInt64)

// UniqueID identifies a tenant's database-scoped entities: collections and
// segments. Tenant and database identity is a plain string name.
type UniqueID uuid.UUID

func NewUniqueID() UniqueID {
	return UniqueID(uuid.New())
}

func (id UniqueID) String() string {
	return uuid.UUID(id).String()
}

func MustParse(s string) UniqueID {
	return UniqueID(uuid.MustParse(s))
}

func Parse(s string) (UniqueID, error) {
	id, err := uuid.Parse(s)
	return UniqueID(id), err
}

func NilUniqueID() UniqueID {
	return UniqueID(uuid.Nil)
}

// ToUniqueID parses an optional string pointer, returning NilUniqueID for nil.
func ToUniqueID(idString *string) (UniqueID, error) {
	if idString == nil {
		return NilUniqueID(), nil
	}
	id, err := Parse(*idString)
	if err != nil {
		return NilUniqueID(), err
	}
	return id, nil
}

// FromUniqueID renders id as a string pointer, or nil for the zero ID.
func FromUniqueID(id UniqueID) *string {
	if id == NilUniqueID() {
		return nil
	}
	s := id.String()
	return &s
}
