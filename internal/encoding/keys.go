// Package encoding builds fixed-size storage keys from ontology identifiers.
// Accessions are hashed with 128-bit xxhash3 so every key is 16 bytes
// regardless of identifier length; the original strings live in the id2str
// table for reverse lookup.
package encoding

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"
)

// KeySize is the size of an encoded accession key.
const KeySize = 16

// EdgeKeySize is the size of an encoded relationship key:
// subject key + predicate byte + object key.
const EdgeKeySize = 2*KeySize + 1

// Key is a fixed-size accession key.
type Key [KeySize]byte

// AccessionKey hashes an accession into a fixed-size key.
func AccessionKey(accession string) Key {
	hash := xxh3.Hash128([]byte(accession))
	var key Key
	binary.BigEndian.PutUint64(key[0:8], hash.Hi)
	binary.BigEndian.PutUint64(key[8:16], hash.Lo)
	return key
}

// EdgeKey encodes a relationship as subject key, predicate byte, object key.
// Edge keys are set-unique: re-inserting the same edge overwrites itself.
func EdgeKey(subject Key, predicate byte, object Key) []byte {
	key := make([]byte, EdgeKeySize)
	copy(key[0:KeySize], subject[:])
	key[KeySize] = predicate
	copy(key[KeySize+1:], object[:])
	return key
}

// SplitEdgeKey decodes an edge key back into its parts.
func SplitEdgeKey(key []byte) (subject Key, predicate byte, object Key, ok bool) {
	if len(key) != EdgeKeySize {
		return subject, 0, object, false
	}
	copy(subject[:], key[0:KeySize])
	predicate = key[KeySize]
	copy(object[:], key[KeySize+1:])
	return subject, predicate, object, true
}
