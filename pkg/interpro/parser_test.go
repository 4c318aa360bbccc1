package interpro

import (
	"reflect"
	"strings"
	"testing"
)

const sampleDocument = `<?xml version="1.0" encoding="UTF-8"?>
<interprodb>
  <interpro id="IPR000001" type="Domain" short_name="Kringle" protein_count="1621">
    <name>Kringle</name>
    <abstract>Kringles are autonomous structural domains.</abstract>
    <pub_list>
      <publication id="PUB00000843">
        <author_list>Castellino F.J., Beals J.M.</author_list>
        <title>The genetic relationships between the kringle domains.</title>
        <journal>J. Mol. Evol.</journal>
        <location volume="26" pages="358-369"/>
        <year>1987</year>
      </publication>
    </pub_list>
    <parent_list>
      <rel_ref ipr_ref="IPR013806"/>
    </parent_list>
    <contains>
      <rel_ref ipr_ref="IPR018056"/>
    </contains>
    <member_list>
      <db_xref db="PFAM" dbkey="PF00051" name="Kringle"/>
      <db_xref db="PROFILE" dbkey="PS50070" name="KRINGLE_2"/>
    </member_list>
    <sec_list>
      <sec_ac acc="IPR003014"/>
      <sec_ac acc="IPR003609"/>
    </sec_list>
  </interpro>
  <deleted_entries>
    <del_ref id="IPR013806"/>
    <del_ref id="IPR999999"/>
  </deleted_entries>
</interprodb>`

func parseSample(t *testing.T) *Handler {
	t.Helper()
	handler := newTestHandler(t, Config{})
	if err := NewParser(handler).Parse(strings.NewReader(sampleDocument)); err != nil {
		t.Fatalf("Failed to parse sample document: %v", err)
	}
	return handler
}

func TestParser_Counters(t *testing.T) {
	h := parseSample(t)

	if h.RecordsSeen() != 1 || h.RecordsProcessed() != 1 {
		t.Errorf("Expected 1 record seen and processed, got %d/%d",
			h.RecordsSeen(), h.RecordsProcessed())
	}
}

func TestParser_RecordFields(t *testing.T) {
	h := parseSample(t)

	term := h.Ontology().LookupTerm("IPR000001")
	if term == nil {
		t.Fatal("Expected record term")
	}
	if term.Name != "Kringle" {
		t.Errorf("Expected name Kringle, got %q", term.Name)
	}
	if term.ShortName != "Kringle" || term.ProteinCount != 1621 {
		t.Errorf("Unexpected attributes: short_name=%q protein_count=%d",
			term.ShortName, term.ProteinCount)
	}
	if term.Definition != "Kringles are autonomous structural domains." {
		t.Errorf("Unexpected definition: %q", term.Definition)
	}
}

func TestParser_Publications(t *testing.T) {
	h := parseSample(t)

	term := h.Ontology().LookupTerm("IPR000001")
	if len(term.References) != 1 {
		t.Fatalf("Expected 1 publication, got %d", len(term.References))
	}
	pub := term.References[0]
	if pub.ID != "PUB00000843" || pub.Year != "1987" || pub.Volume != "26" {
		t.Errorf("Unexpected publication: %+v", pub)
	}
	if !strings.Contains(pub.Citation(), "Castellino F.J., Beals J.M. (1987)") {
		t.Errorf("Unexpected citation: %q", pub.Citation())
	}
}

func TestParser_Relationships(t *testing.T) {
	h := parseSample(t)

	var got []string
	for _, rel := range h.Ontology().Relationships() {
		got = append(got, rel.String())
	}
	expected := []string{
		"IPR000001 is_a Domain",
		"IPR013806 is_a IPR000001",
		"IPR018056 contains IPR000001",
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected relationships %v, got %v", expected, got)
	}
}

func TestParser_PlaceholdersAndDeletedEntries(t *testing.T) {
	h := parseSample(t)

	parent := h.Ontology().LookupTerm("IPR013806")
	if parent == nil || parent.Instantiated {
		t.Fatal("Expected not-instantiated placeholder for parent reference")
	}
	if !parent.Obsolete {
		t.Error("Expected deleted entry to mark the placeholder obsolete")
	}
	if h.Ontology().LookupTerm("IPR999999") != nil {
		t.Error("Expected unknown deleted entry to be a no-op")
	}
}

func TestParser_CrossRefsAndSecondaries(t *testing.T) {
	h := parseSample(t)

	term := h.Ontology().LookupTerm("IPR000001")
	if len(term.CrossRefs) != 2 {
		t.Fatalf("Expected 2 member links, got %d", len(term.CrossRefs))
	}
	for _, ref := range term.CrossRefs {
		if ref.Context != "member_list" {
			t.Errorf("Expected member_list context, got %q", ref.Context)
		}
	}

	expected := []string{"IPR003014", "IPR003609"}
	if !reflect.DeepEqual(term.SecondaryAccessions, expected) {
		t.Errorf("Expected secondaries %v, got %v", expected, term.SecondaryAccessions)
	}
	if !reflect.DeepEqual(h.SecondaryAccessions()["IPR000001"], expected) {
		t.Errorf("Expected accession map entry %v, got %v",
			expected, h.SecondaryAccessions()["IPR000001"])
	}
}

func TestParser_TrimmedLeafText(t *testing.T) {
	document := `<interprodb>
  <interpro id="IPR000002" type="Family">
    <taxonomy_distribution>
      <taxon_data name="Metazoa"/>
    </taxonomy_distribution>
    <name>
      Multiline
<!-- split -->name</name>
  </interpro>
</interprodb>`

	handler := newTestHandler(t, Config{})
	if err := NewParser(handler).Parse(strings.NewReader(document)); err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	// Each text event loses its single leading whitespace run and single
	// trailing line terminator before concatenation.
	term := handler.Ontology().LookupTerm("IPR000002")
	if term.Name != "Multilinename" {
		t.Errorf("Expected trimmed concatenation, got %q", term.Name)
	}
}

func TestParser_MalformedDocument(t *testing.T) {
	handler := newTestHandler(t, Config{})
	err := NewParser(handler).Parse(strings.NewReader("<interprodb><interpro"))
	if err == nil {
		t.Error("Expected error for malformed document")
	}
}

func TestParser_FatalHandlerErrorStopsParse(t *testing.T) {
	document := `<interprodb><interpro id="IPR000001" type="Nonsense"/></interprodb>`

	handler := newTestHandler(t, Config{})
	err := NewParser(handler).Parse(strings.NewReader(document))
	if err == nil {
		t.Error("Expected a record with unknown category to abort the parse")
	}
}
