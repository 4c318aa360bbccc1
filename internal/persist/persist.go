// Package persist writes ontology snapshots into the key-value store and
// reads them back. A snapshot is four tables: term bodies keyed by hashed
// accession, relationship edges as subject/predicate/object key triples,
// secondary-accession lists, and an id2str table mapping key hashes back to
// accession strings.
package persist

import (
	"encoding/json"
	"fmt"

	"github.com/proteinscope/iprload/internal/encoding"
	"github.com/proteinscope/iprload/pkg/ontology"
	"github.com/proteinscope/iprload/pkg/store"
)

// termRecord is the stored shape of a term body.
type termRecord struct {
	Accession           string                 `json:"accession"`
	Name                string                 `json:"name"`
	ShortName           string                 `json:"short_name,omitempty"`
	ProteinCount        int                    `json:"protein_count,omitempty"`
	Definition          string                 `json:"definition,omitempty"`
	SecondaryAccessions []string               `json:"secondary_accessions,omitempty"`
	References          []ontology.Publication `json:"references,omitempty"`
	CrossRefs           []ontology.CrossRef    `json:"cross_refs,omitempty"`
	Instantiated        bool                   `json:"instantiated"`
	Obsolete            bool                   `json:"obsolete,omitempty"`
}

// Stats summarizes a stored snapshot.
type Stats struct {
	Terms         int
	Relationships int
	SecondaryRows int
}

// Snapshot writes the full ontology, plus the secondary-accession map
// accumulated during parsing, into the storage in a single transaction.
func Snapshot(st store.Storage, onto *ontology.Ontology, secondary map[string][]string) error {
	txn, err := st.Begin(true)
	if err != nil {
		return err
	}
	defer txn.Rollback()

	for _, term := range onto.Terms() {
		if err := writeTerm(txn, term); err != nil {
			return err
		}
	}

	for _, rel := range onto.Relationships() {
		subject := encoding.AccessionKey(rel.Subject.Accession)
		object := encoding.AccessionKey(rel.Object.Accession)
		key := encoding.EdgeKey(subject, byte(rel.Predicate.Kind), object)
		if err := txn.Set(store.TableRelationships, key, nil); err != nil {
			return fmt.Errorf("failed to store relationship %s: %w", rel, err)
		}
	}

	for accession, accessions := range secondary {
		key := encoding.AccessionKey(accession)
		value, err := json.Marshal(accessions)
		if err != nil {
			return fmt.Errorf("failed to encode secondary accessions for %s: %w", accession, err)
		}
		if err := txn.Set(store.TableSecondary, key[:], value); err != nil {
			return err
		}
	}

	return txn.Commit()
}

func writeTerm(txn store.Transaction, term *ontology.Term) error {
	key := encoding.AccessionKey(term.Accession)

	body, err := json.Marshal(termRecord{
		Accession:           term.Accession,
		Name:                term.Name,
		ShortName:           term.ShortName,
		ProteinCount:        term.ProteinCount,
		Definition:          term.Definition,
		SecondaryAccessions: term.SecondaryAccessions,
		References:          term.References,
		CrossRefs:           term.CrossRefs,
		Instantiated:        term.Instantiated,
		Obsolete:            term.Obsolete,
	})
	if err != nil {
		return fmt.Errorf("failed to encode term %s: %w", term.Accession, err)
	}

	if err := txn.Set(store.TableTerms, key[:], body); err != nil {
		return err
	}
	// Reverse mapping so hashed keys stay resolvable to accessions.
	return txn.Set(store.TableID2Str, key[:], []byte(term.Accession))
}

// LoadTerm reads one term body back by accession. Returns store.ErrNotFound
// if the snapshot has no such term.
func LoadTerm(st store.Storage, accession string) (*ontology.Term, error) {
	txn, err := st.Begin(false)
	if err != nil {
		return nil, err
	}
	defer txn.Rollback()

	key := encoding.AccessionKey(accession)
	body, err := txn.Get(store.TableTerms, key[:])
	if err != nil {
		return nil, err
	}

	var record termRecord
	if err := json.Unmarshal(body, &record); err != nil {
		return nil, fmt.Errorf("failed to decode term %s: %w", accession, err)
	}

	return &ontology.Term{
		Accession:           record.Accession,
		Name:                record.Name,
		ShortName:           record.ShortName,
		ProteinCount:        record.ProteinCount,
		Definition:          record.Definition,
		SecondaryAccessions: record.SecondaryAccessions,
		References:          record.References,
		CrossRefs:           record.CrossRefs,
		Instantiated:        record.Instantiated,
		Obsolete:            record.Obsolete,
	}, nil
}

// ReadStats counts the rows of a stored snapshot.
func ReadStats(st store.Storage) (Stats, error) {
	txn, err := st.Begin(false)
	if err != nil {
		return Stats{}, err
	}
	defer txn.Rollback()

	var stats Stats
	counts := []struct {
		table store.Table
		dest  *int
	}{
		{store.TableTerms, &stats.Terms},
		{store.TableRelationships, &stats.Relationships},
		{store.TableSecondary, &stats.SecondaryRows},
	}

	for _, c := range counts {
		it, err := txn.Scan(c.table)
		if err != nil {
			return Stats{}, err
		}
		for it.Next() {
			*c.dest++
		}
		if err := it.Close(); err != nil {
			return Stats{}, err
		}
	}

	return stats, nil
}
