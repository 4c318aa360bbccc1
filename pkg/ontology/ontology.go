package ontology

import (
	"errors"
	"fmt"
)

// DefaultName is used when an ontology is created without a name.
const DefaultName = "interpro"

var (
	// ErrAlreadyBound is returned when a second handler tries to bind an
	// ontology that is still owned by another handler.
	ErrAlreadyBound = errors.New("ontology is already bound to a handler")
)

// TermFactory constructs terms for the ontology. An empty name defaults to
// the accession.
type TermFactory func(accession, name string) *Term

// Ontology is an in-memory term/relationship store. Terms are keyed by
// accession and enumerated in insertion order. Not safe for concurrent use;
// ingestion is single-threaded by contract.
type Ontology struct {
	name string

	terms map[string]*Term
	order []string

	categories map[string]bool

	relationships []*Relationship

	predicates map[PredicateKind]*Predicate

	bound any
}

// New creates an empty ontology. An empty name defaults to DefaultName.
func New(name string) *Ontology {
	if name == "" {
		name = DefaultName
	}
	return &Ontology{
		name:       name,
		terms:      make(map[string]*Term),
		categories: make(map[string]bool),
		predicates: make(map[PredicateKind]*Predicate),
	}
}

// Name returns the ontology name.
func (o *Ontology) Name() string {
	return o.name
}

// LookupTerm returns the term with the given accession, or nil.
func (o *Ontology) LookupTerm(accession string) *Term {
	return o.terms[accession]
}

// InsertTerm inserts a term, idempotently by accession. If a different term
// value with the same accession already exists, the existing term is kept and
// reconciled: a placeholder is promoted with the incoming term's fields.
// Returns the term that is in the store after the call.
func (o *Ontology) InsertTerm(t *Term) *Term {
	existing, ok := o.terms[t.Accession]
	if !ok {
		o.terms[t.Accession] = t
		o.order = append(o.order, t.Accession)
		return t
	}
	if existing == t {
		return existing
	}
	reconcile(existing, t)
	return existing
}

// reconcile promotes an existing placeholder with the fields of a fuller
// definition of the same accession. An already instantiated term keeps its
// fields.
func reconcile(existing, incoming *Term) {
	if existing.Instantiated || !incoming.Instantiated {
		existing.Obsolete = existing.Obsolete || incoming.Obsolete
		return
	}
	existing.Name = incoming.Name
	existing.ShortName = incoming.ShortName
	existing.ProteinCount = incoming.ProteinCount
	existing.Definition = incoming.Definition
	existing.SecondaryAccessions = incoming.SecondaryAccessions
	existing.References = incoming.References
	existing.CrossRefs = incoming.CrossRefs
	existing.Instantiated = true
}

// InsertCategory inserts a term and records it as a top-level category.
// Insertion is idempotent by accession.
func (o *Ontology) InsertCategory(t *Term) *Term {
	inserted := o.InsertTerm(t)
	o.categories[inserted.Accession] = true
	return inserted
}

// FindCategoryTerm returns the category term with the given identifier, or
// nil if no such category has been seeded.
func (o *Ontology) FindCategoryTerm(identifier string) *Term {
	if !o.categories[identifier] {
		return nil
	}
	return o.terms[identifier]
}

// InsertRelationship inserts an edge. The predicate must belong to this
// ontology.
func (o *Ontology) InsertRelationship(r *Relationship) error {
	if r.Predicate == nil || r.Predicate.onto != o {
		return fmt.Errorf("relationship predicate is not bound to ontology %q", o.name)
	}
	o.relationships = append(o.relationships, r)
	return nil
}

// Predicate returns this ontology's predicate instance for a kind, creating
// and binding it on first use.
func (o *Ontology) Predicate(kind PredicateKind) *Predicate {
	if p, ok := o.predicates[kind]; ok {
		return p
	}
	p := &Predicate{Kind: kind, onto: o}
	o.predicates[kind] = p
	return p
}

// Terms returns all terms in insertion order.
func (o *Ontology) Terms() []*Term {
	terms := make([]*Term, 0, len(o.order))
	for _, accession := range o.order {
		terms = append(terms, o.terms[accession])
	}
	return terms
}

// Relationships returns all edges in insertion order.
func (o *Ontology) Relationships() []*Relationship {
	return o.relationships
}

// TermCount returns the number of terms in the store.
func (o *Ontology) TermCount() int {
	return len(o.terms)
}

// Bind claims the ontology for a single owner. A second distinct owner gets
// ErrAlreadyBound; rebinding by the same owner is a no-op.
func (o *Ontology) Bind(owner any) error {
	if o.bound != nil && o.bound != owner {
		return ErrAlreadyBound
	}
	o.bound = owner
	return nil
}

// Release gives up the binding held by owner. Releasing by a non-owner is a
// no-op.
func (o *Ontology) Release(owner any) {
	if o.bound == owner {
		o.bound = nil
	}
}
