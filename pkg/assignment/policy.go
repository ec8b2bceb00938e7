// Package assignment implements the collection-to-log-partition Assignment
// Policy (spec §4.1): a pure, deterministic function from a collection id to
// a logical partition tag. The rest of the system depends only on the
// interface, never on a particular policy's output format.
package assignment

import (
	"fmt"

	"github.com/corevecdb/corevec/pkg/types"
)

// CollectionAssignmentPolicy maps a collection to the log partition it is
// durably bound to. Implementations must be stable across restarts: the
// same collection id always assigns to the same partition tag.
type CollectionAssignmentPolicy interface {
	AssignCollection(collectionID types.UniqueID) (string, error)
}

// SimplePolicy assigns each collection its own partition, derived
// deterministically from (tenantNS, topicNS, collectionID). This is the
// spec §4.1 default.
type SimplePolicy struct {
	tenantNS string
	topicNS  string
}

func NewSimplePolicy(tenantNS, topicNS string) *SimplePolicy {
	return &SimplePolicy{tenantNS: tenantNS, topicNS: topicNS}
}

func (s *SimplePolicy) AssignCollection(collectionID types.UniqueID) (string, error) {
	return partitionTag(s.tenantNS, s.topicNS, collectionID.String()), nil
}

// RendezvousPolicy fans collections out across a fixed number of partitions
// using rendezvous hashing, so the partition count can grow without
// reshuffling more than the minimal share of existing assignments.
type RendezvousPolicy struct {
	tenantNS   string
	topicNS    string
	partitions []string
}

// NewRendezvousPolicy builds a policy over numPartitions named partitions
// (partitionPrefix_0 .. partitionPrefix_{n-1}).
func NewRendezvousPolicy(tenantNS, topicNS, partitionPrefix string, numPartitions int) *RendezvousPolicy {
	partitions := make([]string, numPartitions)
	for i := range partitions {
		partitions[i] = fmt.Sprintf("%s_%d", partitionPrefix, i)
	}
	return &RendezvousPolicy{tenantNS: tenantNS, topicNS: topicNS, partitions: partitions}
}

func (r *RendezvousPolicy) AssignCollection(collectionID types.UniqueID) (string, error) {
	member, err := Assign(collectionID.String(), r.partitions, Murmur3Hasher)
	if err != nil {
		return "", err
	}
	return partitionTag(r.tenantNS, r.topicNS, member), nil
}

func partitionTag(tenantNS, topicNS, name string) string {
	return fmt.Sprintf("persistent://%s/%s/%s", tenantNS, topicNS, name)
}
