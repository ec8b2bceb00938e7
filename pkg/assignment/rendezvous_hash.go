package assignment

import (
	"errors"

	"github.com/spaolacci/murmur3"
)

type Hasher func(member string, key string) uint64
type Member = string
type Members = []Member
type Key = string

// Assign picks the member with the highest hash score for key (rendezvous /
// highest-random-weight hashing): adding or removing a member only reshuffles
// the keys that scored highest on that member, not the whole keyspace.
func Assign(key Key, members Members, hasher Hasher) (Member, error) {
	if len(members) == 0 {
		return "", errors.New("cannot assign key to empty member list")
	}
	if len(members) == 1 {
		return members[0], nil
	}
	if key == "" {
		return "", errors.New("cannot assign empty key")
	}

	maxScore := uint64(0)
	var maxMember Member

	for _, member := range members {
		score := hasher(member, key)
		if score > maxScore {
			maxScore = score
			maxMember = member
		}
	}

	return maxMember, nil
}

func mergeHashes(a uint64, b uint64) uint64 {
	acc := a ^ b
	acc ^= acc >> 33
	acc *= 0xff51afd7ed558ccd
	acc ^= acc >> 33
	acc *= 0xc4ceb9fe1a85ec53
	acc ^= acc >> 33
	return acc
}

// Murmur3Hasher combines independent hashes of member and key so that each
// member/key pair gets an unbiased score regardless of the two strings'
// relative length.
func Murmur3Hasher(member string, key string) uint64 {
	hasher := murmur3.New64()
	hasher.Write([]byte(member))
	memberHash := hasher.Sum64()
	hasher.Reset()
	hasher.Write([]byte(key))
	keyHash := hasher.Sum64()
	return mergeHashes(memberHash, keyHash)
}
