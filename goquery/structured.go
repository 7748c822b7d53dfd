package goquery

import (
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kaptinlin/jsonrepair"
)

// StructuredData returns the parsed JSON-LD tree of the largest
// application/ld+json block on the page as generic Go values
// (map[string]any, []any, string, float64, bool, nil).
// Absent when the page embeds no parseable structured data; malformed
// embedded JSON is never a fatal error.
func (d *Document) StructuredData() (any, bool) {
	v, ok := d.structured()
	if !ok {
		return nil, false
	}
	return v.generic(), true
}

// StructuredDataValues returns every value bound to key anywhere in the
// structured-data tree, depth-first in document order. Duplicates are
// preserved. Values whose key matches but which are themselves objects or
// arrays are descended into rather than collected.
func (d *Document) StructuredDataValues(key string) []any {
	v, ok := d.structured()
	if !ok {
		return nil
	}
	return v.valuesByKey(key, nil)
}

// parseStructuredData selects the application/ld+json block with the
// longest raw text (ties broken by first-encountered order) and parses it.
// A parse failure gets one repair-and-retry pass before yielding absent.
func (d *Document) parseStructuredData() (*jsonValue, bool) {
	var raw string
	d.doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, s *goquery.Selection) {
		if text := s.Text(); len(text) > len(raw) {
			raw = text
		}
	})
	if strings.TrimSpace(raw) == "" {
		return nil, false
	}

	if v, err := decodeJSON(raw); err == nil {
		return v, true
	}
	// Embedded JSON-LD is frequently sloppy (trailing commas, single
	// quotes); attempt a repair pass before treating it as absent.
	repaired, err := jsonrepair.JSONRepair(raw)
	if err != nil {
		return nil, false
	}
	v, err := decodeJSON(repaired)
	if err != nil {
		return nil, false
	}
	return v, true
}

// jsonValue is a JSON tree that preserves object member order, which
// encoding/json's map decoding discards. The key-search results must come
// back in document order, so the tree keeps members as an ordered slice.
type jsonValue struct {
	members  []jsonMember // object members, nil otherwise
	elements []*jsonValue // array elements, nil otherwise
	scalar   any          // string, float64, bool or nil
	kind     jsonKind
}

type jsonMember struct {
	key   string
	value *jsonValue
}

type jsonKind int

const (
	kindScalar jsonKind = iota
	kindObject
	kindArray
)

func decodeJSON(raw string) (*jsonValue, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	// the block must be a single JSON document
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("trailing content after JSON value")
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (*jsonValue, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return &jsonValue{kind: kindScalar, scalar: tok}, nil
	}

	switch delim {
	case '{':
		v := &jsonValue{kind: kindObject}
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, _ := keyTok.(string)
			val, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			v.members = append(v.members, jsonMember{key: key, value: val})
		}
		if _, err := dec.Token(); err != nil { // consume '}'
			return nil, err
		}
		return v, nil
	case '[':
		v := &jsonValue{kind: kindArray}
		for dec.More() {
			el, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			v.elements = append(v.elements, el)
		}
		if _, err := dec.Token(); err != nil { // consume ']'
			return nil, err
		}
		return v, nil
	}
	return nil, errors.New("unexpected JSON delimiter")
}

// valuesByKey appends every scalar value bound to key anywhere under v,
// depth-first. Object and array values are recursed into; only
// non-container values are collected.
func (v *jsonValue) valuesByKey(key string, acc []any) []any {
	switch v.kind {
	case kindObject:
		for _, m := range v.members {
			switch m.value.kind {
			case kindObject, kindArray:
				acc = m.value.valuesByKey(key, acc)
			default:
				if m.key == key {
					acc = append(acc, m.value.scalar)
				}
			}
		}
	case kindArray:
		for _, el := range v.elements {
			acc = el.valuesByKey(key, acc)
		}
	}
	return acc
}

// generic converts the ordered tree into plain Go values for callers that
// don't care about member order.
func (v *jsonValue) generic() any {
	switch v.kind {
	case kindObject:
		m := make(map[string]any, len(v.members))
		for _, mem := range v.members {
			m[mem.key] = mem.value.generic()
		}
		return m
	case kindArray:
		arr := make([]any, len(v.elements))
		for i, el := range v.elements {
			arr[i] = el.generic()
		}
		return arr
	default:
		return v.scalar
	}
}
