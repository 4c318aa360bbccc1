package ontology

import (
	"strings"
	"testing"
)

// ===== PredicateKind Tests =====

func TestPredicateKind_String(t *testing.T) {
	cases := []struct {
		kind     PredicateKind
		expected string
	}{
		{IsA, "is_a"},
		{Contains, "contains"},
		{FoundIn, "found_in"},
		{PredicateKind(99), "unknown"},
	}

	for _, c := range cases {
		if c.kind.String() != c.expected {
			t.Errorf("Expected %s, got %s", c.expected, c.kind.String())
		}
	}
}

// ===== Term Tests =====

func TestNewTerm_DefaultName(t *testing.T) {
	term := NewTerm("IPR000001", "")
	if term.Name != "IPR000001" {
		t.Errorf("Expected accession as default name, got %q", term.Name)
	}

	named := NewTerm("IPR000001", "Kringle")
	if named.Name != "Kringle" {
		t.Errorf("Expected explicit name to win, got %q", named.Name)
	}
}

func TestTerm_String(t *testing.T) {
	term := NewTerm("IPR000001", "Kringle")
	expected := "IPR000001 (Kringle)"
	if term.String() != expected {
		t.Errorf("Expected %s, got %s", expected, term.String())
	}
}

// ===== Publication Tests =====

func TestPublication_Citation(t *testing.T) {
	pub := Publication{
		Authors: "Castellino F.J.",
		Title:   "The kringle domains",
		Journal: "J. Mol. Evol.",
		Year:    "1987",
		Volume:  "26",
		Pages:   "358-369",
	}

	citation := pub.Citation()
	for _, part := range []string{"Castellino F.J.", "(1987)", "The kringle domains", "J. Mol. Evol.", "26:358-369"} {
		if !strings.Contains(citation, part) {
			t.Errorf("Expected citation to contain %q, got %q", part, citation)
		}
	}
}

func TestPublication_Citation_MissingFields(t *testing.T) {
	// Assembling a citation from partially present sub-fields never fails;
	// absent parts render as empty.
	pub := Publication{Title: "Untitled study"}

	citation := pub.Citation()
	if !strings.Contains(citation, "Untitled study") {
		t.Errorf("Expected citation to contain the title, got %q", citation)
	}

	empty := Publication{}
	if empty.Citation() == "" {
		t.Error("Expected a non-empty citation skeleton even with no fields")
	}
}

// ===== Relationship Tests =====

func TestRelationship_String(t *testing.T) {
	onto := New("test")
	subject := NewTerm("IPR000002", "")
	object := NewTerm("IPR000001", "")

	rel := NewRelationship(subject, onto.Predicate(IsA), object)
	expected := "IPR000002 is_a IPR000001"
	if rel.String() != expected {
		t.Errorf("Expected %s, got %s", expected, rel.String())
	}
}

func TestCrossRef_String(t *testing.T) {
	ref := CrossRef{Context: "member_list", DB: "PFAM", Key: "PF00024"}
	if ref.String() != "PFAM:PF00024" {
		t.Errorf("Expected PFAM:PF00024, got %s", ref.String())
	}
}
