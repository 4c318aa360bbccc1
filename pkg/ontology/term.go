package ontology

import (
	"fmt"
)

// PredicateKind is the type label of a relationship edge.
type PredicateKind int

const (
	IsA PredicateKind = iota
	Contains
	FoundIn
)

func (k PredicateKind) String() string {
	switch k {
	case IsA:
		return "is_a"
	case Contains:
		return "contains"
	case FoundIn:
		return "found_in"
	default:
		return "unknown"
	}
}

// Predicate is a predicate kind bound to its owning ontology. Each ontology
// owns exactly one Predicate per kind; edges of that ontology share it.
type Predicate struct {
	Kind PredicateKind
	onto *Ontology
}

// Ontology returns the ontology this predicate is bound to.
func (p *Predicate) Ontology() *Ontology {
	return p.onto
}

func (p *Predicate) String() string {
	return p.Kind.String()
}

// Term is a node in the ontology graph, keyed by a stable accession.
type Term struct {
	Accession    string
	Name         string
	ShortName    string
	ProteinCount int
	Definition   string

	SecondaryAccessions []string
	References          []Publication
	CrossRefs           []CrossRef

	// Instantiated is false for placeholder terms created only to satisfy
	// a forward reference, before the full record has been seen.
	Instantiated bool
	Obsolete     bool
}

// NewTerm creates a term. An empty name defaults to the accession.
func NewTerm(accession, name string) *Term {
	if name == "" {
		name = accession
	}
	return &Term{Accession: accession, Name: name}
}

func (t *Term) String() string {
	return fmt.Sprintf("%s (%s)", t.Accession, t.Name)
}

// Publication is one bibliographic reference attached to a term.
type Publication struct {
	ID      string
	Authors string
	Title   string
	Journal string
	Year    string
	Volume  string
	Pages   string
}

// Citation assembles a citation string. Absent sub-fields render as empty;
// this never fails on partially present publications.
func (p Publication) Citation() string {
	return fmt.Sprintf("%s (%s). %s. %s %s:%s.",
		p.Authors, p.Year, p.Title, p.Journal, p.Volume, p.Pages)
}

// CrossRef is a link from a term into an external database, grouped by the
// context it was found in (member list, example list, ...).
type CrossRef struct {
	Context string
	DB      string
	Key     string
	Name    string
}

func (x CrossRef) String() string {
	return fmt.Sprintf("%s:%s", x.DB, x.Key)
}

// Relationship is a directed, typed edge between two terms. It is never
// mutated after creation.
type Relationship struct {
	Subject   *Term
	Predicate *Predicate
	Object    *Term
}

// NewRelationship creates an edge subject -[predicate]-> object.
func NewRelationship(subject *Term, predicate *Predicate, object *Term) *Relationship {
	return &Relationship{
		Subject:   subject,
		Predicate: predicate,
		Object:    object,
	}
}

func (r *Relationship) String() string {
	return fmt.Sprintf("%s %s %s", r.Subject.Accession, r.Predicate, r.Object.Accession)
}
