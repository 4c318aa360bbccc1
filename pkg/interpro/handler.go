// Package interpro translates a depth-first stream of XML element events
// describing the InterPro vocabulary into an ontology graph of terms and
// typed relationships. It owns the stateful middle layer only: the context
// stack, generic sub-tree accumulation, per-element dispatch, and resolution
// of forward references via placeholder terms. Tokenizing raw markup and
// storing the resulting graph belong to its collaborators.
package interpro

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/proteinscope/iprload/pkg/ontology"
)

// DefaultProgressEvery is how many processed records pass between progress
// notifications.
const DefaultProgressEvery = 100

var (
	// ErrUnknownCategory is returned when a record declares a type for
	// which no category term exists. This aborts the traversal.
	ErrUnknownCategory = errors.New("record type has no matching category term")
	// ErrReferenceOutsideRecord is returned when a relationship reference
	// appears with no record being processed.
	ErrReferenceOutsideRecord = errors.New("relationship reference outside a record")
	// ErrUnknownContainer is returned when a relationship reference is not
	// enclosed by a known relationship container element.
	ErrUnknownContainer = errors.New("relationship reference under unknown container")
	// ErrUnbalancedClose is returned when a close event finds no matching
	// open frame.
	ErrUnbalancedClose = errors.New("element close without matching open frame")
)

// Config configures a Handler. All fields are optional; a handler built from
// the zero Config populates a fresh default-named ontology.
type Config struct {
	// Ontology receives the terms and relationships built from the stream.
	// If nil, a new ontology named OntologyName is created.
	Ontology *ontology.Ontology

	// OntologyName names the ontology created when Ontology is nil. Empty
	// means ontology.DefaultName.
	OntologyName string

	// Factory constructs new terms. Defaults to ontology.NewTerm.
	Factory ontology.TermFactory

	// Progress, if set, is notified with the processed-record count every
	// ProgressEvery completed records. Best effort; must not block.
	Progress func(processed int)

	// ProgressEvery defaults to DefaultProgressEvery.
	ProgressEvery int
}

// Handler is the event-driven stack machine. The external tokenizer calls
// StartElement, Text and EndElement in strict document order; no call is made
// concurrently with another. Counters and the secondary-accession map are
// owned by the instance and reset only by constructing a new one.
type Handler struct {
	onto     *ontology.Ontology
	factory  ontology.TermFactory
	progress func(int)
	every    int

	stack   contextStack
	text    textAccumulator
	current *ontology.Term

	recordsSeen      int
	recordsProcessed int
	secondary        map[string][]string
}

// NewHandler creates a handler bound to the configured ontology. The
// configuration is validated eagerly: an ontology already bound to another
// handler is a construction error.
func NewHandler(cfg Config) (*Handler, error) {
	if cfg.Ontology == nil {
		cfg.Ontology = ontology.New(cfg.OntologyName)
	}
	h := &Handler{
		onto:      cfg.Ontology,
		factory:   cfg.Factory,
		progress:  cfg.Progress,
		every:     cfg.ProgressEvery,
		secondary: make(map[string][]string),
	}
	if h.factory == nil {
		h.factory = ontology.NewTerm
	}
	if h.every <= 0 {
		h.every = DefaultProgressEvery
	}
	if err := cfg.Ontology.Bind(h); err != nil {
		return nil, fmt.Errorf("configuration: %w", err)
	}
	return h, nil
}

// Close releases the handler's claim on the ontology. The handler must not be
// fed further events after Close.
func (h *Handler) Close() {
	h.onto.Release(h)
}

// Ontology returns the store this handler populates.
func (h *Handler) Ontology() *ontology.Ontology {
	return h.onto
}

// RecordsSeen returns how many record-opening elements have been recognized.
func (h *Handler) RecordsSeen() int {
	return h.recordsSeen
}

// RecordsProcessed returns how many records have been fully processed.
func (h *Handler) RecordsProcessed() int {
	return h.recordsProcessed
}

// SecondaryAccessions returns a copy of the accession -> secondary accessions
// map accumulated so far. Queryable at any time, including mid-stream.
func (h *Handler) SecondaryAccessions() map[string][]string {
	out := make(map[string][]string, len(h.secondary))
	for accession, secondaries := range h.secondary {
		out[accession] = append([]string(nil), secondaries...)
	}
	return out
}

// StartElement handles an element-open event.
func (h *Handler) StartElement(name string, attrs map[string]string) error {
	switch kindOf(name) {
	case kindRoot:
		h.seedCategories()
		return nil
	case kindRecord:
		return h.openRecord(attrs)
	case kindReference:
		container := h.stack.topName()
		if err := h.resolveReference(attrs[attrReferenceID], container); err != nil {
			return err
		}
		// The reference also participates in generic accumulation.
		h.stack.push(NewFrame(name, attrs))
		return nil
	case kindFreeText:
		h.text.EnterFreeText()
		h.stack.push(NewFrame(name, attrs))
		return nil
	default:
		h.stack.push(NewFrame(name, attrs))
		return nil
	}
}

// Text handles a character-data event.
func (h *Handler) Text(data string) {
	h.text.Append(data)
}

// EndElement handles an element-close event.
func (h *Handler) EndElement(name string) error {
	switch kindOf(name) {
	case kindRoot:
		return nil
	case kindRecord:
		h.current = nil
		h.stack.reset(nil)
		h.recordsProcessed++
		if h.progress != nil && h.recordsProcessed%h.every == 0 {
			h.progress(h.recordsProcessed)
		}
		h.text.clear()
		return nil
	case kindFreeText:
		h.text.LeaveFreeText()
		if h.stack.pop() == nil {
			return fmt.Errorf("%w: %s", ErrUnbalancedClose, name)
		}
		if h.current != nil {
			h.current.Definition = h.text.Text()
		}
		h.text.Reset()
		return nil
	default:
		return h.closeGeneric(name)
	}
}

// seedCategories inserts the built-in top-level category terms. Insertion is
// idempotent by accession, so an accidental re-open of the root changes
// nothing.
func (h *Handler) seedCategories() {
	for _, identifier := range CategoryIdentifiers {
		category := h.factory(identifier, identifier)
		category.Instantiated = true
		h.onto.InsertCategory(category)
	}
}

// openRecord recognizes a record-opening element: it looks up or creates the
// record's term, makes it current, links it to its category, and restarts the
// context stack with a single fresh frame for the record.
func (h *Handler) openRecord(attrs map[string]string) error {
	accession := attrs[attrID]

	term := h.onto.LookupTerm(accession)
	if term == nil {
		term = h.factory(accession, "")
	}
	term.Instantiated = true
	term.ShortName = attrs[attrShortName]
	if count, err := strconv.Atoi(attrs[attrProteinCount]); err == nil {
		term.ProteinCount = count
	}

	h.current = term
	h.recordsSeen++
	h.stack.reset(NewFrame(elemRecord, attrs))

	category := h.onto.FindCategoryTerm(attrs[attrType])
	if category == nil {
		return fmt.Errorf("%w: record %s declares type %q",
			ErrUnknownCategory, accession, attrs[attrType])
	}
	if err := h.onto.InsertRelationship(
		ontology.NewRelationship(term, h.onto.Predicate(ontology.IsA), category)); err != nil {
		return err
	}
	h.onto.InsertTerm(term)
	return nil
}

// resolveReference creates the typed edge for a relationship reference. The
// predicate is implied by the enclosing container element; the edge's object
// is always the current record term and its subject the referenced term. A
// missing target gets a placeholder term, marked not instantiated, so the
// edge never dangles.
func (h *Handler) resolveReference(target, container string) error {
	if h.current == nil {
		return fmt.Errorf("%w: target %s", ErrReferenceOutsideRecord, target)
	}
	kind, ok := containerPredicates[container]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownContainer, container)
	}

	term := h.onto.LookupTerm(target)
	if term == nil {
		term = h.factory(target, target)
		term.Instantiated = false
		h.onto.InsertTerm(term)
	}
	return h.onto.InsertRelationship(
		ontology.NewRelationship(term, h.onto.Predicate(kind), h.current))
}
