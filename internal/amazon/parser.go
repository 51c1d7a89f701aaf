package amazon

import (
	"fmt"

	"github.com/clbanning/mxj/v2"
)

// XMLParser is the default Parser backed by mxj. It decodes the
// vendor's XML into a nested map, collapsing a single child element
// into a scalar mapping while keeping repeated children as a sequence.
// That asymmetry is what the Search decoding reconciles.
type XMLParser struct{}

// Parse implements Parser.
func (XMLParser) Parse(body []byte) (map[string]any, error) {
	m, err := mxj.NewMapXml(body)
	if err != nil {
		return nil, fmt.Errorf("parsing XML: %w", err)
	}
	return map[string]any(m), nil
}
