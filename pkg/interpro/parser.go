package interpro

import (
	"encoding/xml"
	"fmt"
	"io"
)

// Parser drives a Handler from raw InterPro XML. It walks the token stream
// of an encoding/xml decoder and forwards element opens, character data and
// element closes in document order, stopping at the first handler error.
//
// The Handler does not require this driver; any event source delivering the
// same three event kinds in document order can feed it directly.
type Parser struct {
	handler *Handler
}

// NewParser creates a parser feeding the given handler.
func NewParser(handler *Handler) *Parser {
	return &Parser{handler: handler}
}

// Parse consumes one XML document from the reader.
func (p *Parser) Parse(reader io.Reader) error {
	decoder := xml.NewDecoder(reader)

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("XML parse error: %w", err)
		}

		switch elem := token.(type) {
		case xml.StartElement:
			if err := p.handler.StartElement(elem.Name.Local, attrMap(elem.Attr)); err != nil {
				return err
			}
		case xml.CharData:
			p.handler.Text(string(elem))
		case xml.EndElement:
			if err := p.handler.EndElement(elem.Name.Local); err != nil {
				return err
			}
		}
	}

	return nil
}

// attrMap flattens decoder attributes into the name -> value map the handler
// consumes.
func attrMap(attrs []xml.Attr) map[string]string {
	if len(attrs) == 0 {
		return nil
	}
	out := make(map[string]string, len(attrs))
	for _, attr := range attrs {
		out[attr.Name.Local] = attr.Value
	}
	return out
}
