package amazon

import "strconv"

// Item wraps a decoded single-product mapping. Accessors report
// presence explicitly; a missing field is a value, never an error.
type Item struct {
	raw map[string]any
}

// DecodeItem wraps a product mapping. A nil mapping is valid and
// yields an Item whose accessors all report absent.
func DecodeItem(m map[string]any) *Item {
	return &Item{raw: m}
}

// Title returns ItemAttributes.Title, or false if either level is
// missing or not a string.
func (i *Item) Title() (string, bool) {
	return i.stringField("ItemAttributes", "Title")
}

// ASIN returns the product identifier, or false when absent.
func (i *Item) ASIN() (string, bool) {
	return i.stringField("ASIN")
}

// Raw exposes the underlying mapping for fields without an accessor.
func (i *Item) Raw() map[string]any {
	return i.raw
}

func (i *Item) stringField(keys ...string) (string, bool) {
	v, ok := dig(i.raw, keys...)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Search wraps a decoded search-response mapping and the items
// reconstructed from it.
type Search struct {
	raw   map[string]any
	total int
	items []*Item
}

// DecodeSearch reconstructs a uniform item sequence from a search
// response mapping. The XML decoding collapses a single Items.Item
// child into a scalar mapping but keeps multiple children as a
// sequence, so the declared TotalResults decides which shape to
// expect.
func DecodeSearch(m map[string]any) *Search {
	s := &Search{raw: m, items: []*Item{}}

	if v, ok := dig(m, "Items", "TotalResults"); ok {
		s.total = toInt(v)
	}

	v, ok := dig(m, "Items", "Item")
	if !ok {
		return s
	}

	if s.total > 1 {
		seq, ok := v.([]any)
		if !ok {
			// Declared total disagrees with the shape; salvage the
			// single mapping rather than dropping it.
			s.appendItem(v)
			return s
		}
		for _, el := range seq {
			s.appendItem(el)
		}
		return s
	}

	if seq, ok := v.([]any); ok {
		for _, el := range seq {
			s.appendItem(el)
		}
		return s
	}
	s.appendItem(v)
	return s
}

// TotalResults returns the total declared by the vendor, which may
// exceed the number of items on this page.
func (s *Search) TotalResults() int {
	return s.total
}

// Items returns the decoded items, never nil.
func (s *Search) Items() []*Item {
	return s.items
}

func (s *Search) appendItem(v any) {
	if m, ok := v.(map[string]any); ok {
		s.items = append(s.items, DecodeItem(m))
	}
}

// dig walks nested mappings one explicit presence check at a time.
// It returns false as soon as a level is missing or is not a mapping.
func dig(m map[string]any, keys ...string) (any, bool) {
	if m == nil || len(keys) == 0 {
		return nil, false
	}
	var cur any = m
	for _, k := range keys {
		mm, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = mm[k]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// toInt converts the parser's scalar representations of an integer.
// The XML parser yields strings by default; a substituted parser may
// already have cast to a numeric type.
func toInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case float64:
		return int(n)
	case string:
		i, err := strconv.Atoi(n)
		if err != nil {
			return 0
		}
		return i
	default:
		return 0
	}
}
