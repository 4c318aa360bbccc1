package interpro

import (
	"fmt"

	"github.com/proteinscope/iprload/pkg/ontology"
)

// closeGeneric pops the frame for a closing element, merges it into its
// parent, and runs any specialized post-processing keyed by the element name.
// The text buffer is cleared afterwards unless a free-text element is open.
func (h *Handler) closeGeneric(name string) error {
	frame := h.stack.pop()
	if frame == nil {
		return fmt.Errorf("%w: %s", ErrUnbalancedClose, name)
	}

	text := h.text.Text()
	if node := frame.merge(text); node != nil {
		if parent := h.stack.peek(); parent != nil {
			parent.AppendChild(name, node)
		}
	}

	switch {
	case name == elemName:
		if h.current != nil {
			h.current.Name = text
		}
	case name == elemPubList:
		h.addPublications(frame)
	case name == elemSecondaryList:
		h.addSecondaryAccessions(frame)
	case name == elemDeletedEntries:
		h.markDeletedEntries(frame)
	case crossRefLists[name]:
		h.addCrossRefs(name, frame)
	}

	h.text.Reset()
	return nil
}

// addPublications turns the children of a closed publication list into
// bibliographic references on the current term. Absent sub-fields stay empty;
// a partially described publication is never an error.
func (h *Handler) addPublications(frame *Frame) {
	if h.current == nil {
		return
	}
	for _, node := range frame.Children[elemPublication] {
		if node.IsLeaf() {
			continue
		}
		pub := ontology.Publication{
			ID:      node.Attr(attrID),
			Authors: node.ChildText("author_list"),
			Title:   node.ChildText("title"),
			Journal: node.ChildText("journal"),
			Year:    node.ChildText("year"),
		}
		if location := node.FirstChild("location"); location != nil {
			pub.Volume = location.Attr("volume")
			pub.Pages = location.Attr("pages")
		}
		h.current.References = append(h.current.References, pub)
	}
}

// addCrossRefs turns the children of a closed link list into cross-database
// links on the current term, grouped by the list name as context.
func (h *Handler) addCrossRefs(context string, frame *Frame) {
	if h.current == nil {
		return
	}
	for _, nodes := range frame.Children {
		for _, node := range nodes {
			if node.IsLeaf() {
				continue
			}
			ref := ontology.CrossRef{
				Context: context,
				DB:      node.Attr("db"),
				Key:     node.Attr("dbkey"),
				Name:    node.Attr("name"),
			}
			// Classification entries carry their own attribute shape.
			if ref.DB == "" {
				ref.DB = node.Attr("class_type")
			}
			if ref.Key == "" {
				ref.Key = node.Attr(attrID)
			}
			if ref.Name == "" {
				ref.Name = node.ChildText("category")
			}
			h.current.CrossRefs = append(h.current.CrossRefs, ref)
		}
	}
}

// addSecondaryAccessions records a closed secondary-accession list both on
// the current term and in the handler's accession map.
func (h *Handler) addSecondaryAccessions(frame *Frame) {
	if h.current == nil {
		return
	}
	var accessions []string
	for _, node := range frame.Children[elemSecondaryAc] {
		if accession := node.Attr(attrAccession); accession != "" {
			accessions = append(accessions, accession)
		}
	}
	if len(accessions) == 0 {
		return
	}
	h.current.SecondaryAccessions = append(h.current.SecondaryAccessions, accessions...)
	h.secondary[h.current.Accession] = append(h.secondary[h.current.Accession], accessions...)
}

// markDeletedEntries flags each referenced term obsolete. References to
// identifiers not present in the store are no-ops.
func (h *Handler) markDeletedEntries(frame *Frame) {
	for _, node := range frame.Children[elemDeletedRef] {
		if term := h.onto.LookupTerm(node.Attr(attrID)); term != nil {
			term.Obsolete = true
		}
	}
}
