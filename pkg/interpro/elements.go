package interpro

import "github.com/proteinscope/iprload/pkg/ontology"

// elementKind classifies element names into the closed set of behaviors the
// dispatcher knows about. Names not in the table are kindGeneric.
type elementKind int

const (
	kindGeneric elementKind = iota
	kindRoot
	kindRecord
	kindReference
	kindFreeText
)

// Element names of the InterPro XML vocabulary.
const (
	elemRoot      = "interprodb"
	elemRecord    = "interpro"
	elemReference = "rel_ref"
	elemAbstract  = "abstract"

	elemName           = "name"
	elemPubList        = "pub_list"
	elemPublication    = "publication"
	elemMemberList     = "member_list"
	elemExampleList    = "example_list"
	elemExternalDocs   = "external_doc_list"
	elemClassList      = "class_list"
	elemSecondaryList  = "sec_list"
	elemSecondaryAc    = "sec_ac"
	elemDeletedEntries = "deleted_entries"
	elemDeletedRef     = "del_ref"
)

// Record attributes.
const (
	attrID           = "id"
	attrType         = "type"
	attrShortName    = "short_name"
	attrProteinCount = "protein_count"
	attrReferenceID  = "ipr_ref"
	attrAccession    = "acc"
)

var elementKinds = map[string]elementKind{
	elemRoot:      kindRoot,
	elemRecord:    kindRecord,
	elemReference: kindReference,
	elemAbstract:  kindFreeText,
}

func kindOf(name string) elementKind {
	return elementKinds[name]
}

// containerPredicates maps the relationship container element enclosing a
// reference to the predicate kind of the resulting edge.
var containerPredicates = map[string]ontology.PredicateKind{
	"parent_list": ontology.IsA,
	"child_list":  ontology.IsA,
	"contains":    ontology.Contains,
	"found_in":    ontology.FoundIn,
}

// crossRefLists are the generic list elements whose children become
// cross-database links, grouped by the list name as context.
var crossRefLists = map[string]bool{
	elemMemberList:   true,
	elemExampleList:  true,
	elemExternalDocs: true,
	elemClassList:    true,
}

// CategoryIdentifiers are the built-in top-level category terms seeded when
// the document root opens. Record "type" attributes resolve against these.
var CategoryIdentifiers = []string{
	"Active_site",
	"Conserved_site",
	"Binding_site",
	"Family",
	"Domain",
	"Repeat",
	"PTM",
	"Region",
}
