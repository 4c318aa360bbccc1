package encoding

import (
	"bytes"
	"testing"
)

func TestAccessionKey_Deterministic(t *testing.T) {
	a := AccessionKey("IPR000001")
	b := AccessionKey("IPR000001")
	if a != b {
		t.Error("Expected identical accessions to hash identically")
	}
}

func TestAccessionKey_Distinct(t *testing.T) {
	a := AccessionKey("IPR000001")
	b := AccessionKey("IPR000002")
	if a == b {
		t.Error("Expected distinct accessions to hash differently")
	}
}

func TestAccessionKey_NotZero(t *testing.T) {
	var zero Key
	if AccessionKey("IPR000001") == zero {
		t.Error("Expected non-zero key")
	}
}

func TestEdgeKey_Roundtrip(t *testing.T) {
	subject := AccessionKey("IPR000002")
	object := AccessionKey("IPR000001")

	key := EdgeKey(subject, 1, object)
	if len(key) != EdgeKeySize {
		t.Fatalf("Expected edge key size %d, got %d", EdgeKeySize, len(key))
	}

	gotSubject, predicate, gotObject, ok := SplitEdgeKey(key)
	if !ok {
		t.Fatal("Expected split to succeed")
	}
	if gotSubject != subject || gotObject != object || predicate != 1 {
		t.Error("Expected split to recover the encoded parts")
	}
}

func TestEdgeKey_OrientationMatters(t *testing.T) {
	a := AccessionKey("IPR000001")
	b := AccessionKey("IPR000002")

	if bytes.Equal(EdgeKey(a, 0, b), EdgeKey(b, 0, a)) {
		t.Error("Expected reversed edges to encode differently")
	}
}

func TestSplitEdgeKey_BadLength(t *testing.T) {
	if _, _, _, ok := SplitEdgeKey([]byte{1, 2, 3}); ok {
		t.Error("Expected split of short key to fail")
	}
}
