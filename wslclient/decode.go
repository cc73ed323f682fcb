// Copyright (c) 2025 Fishbits.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package wslclient

import (
	"encoding/xml"
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Record is one decoded upstream record: snake_case keys, scalar leaves
// coerced to int/bool where they parse, repeated child elements collapsed
// into array_of_* lists.
type Record = map[string]any

type xmlElem struct {
	name     string
	text     strings.Builder
	children []*xmlElem
}

func parseXML(r io.Reader) (*xmlElem, error) {
	dec := xml.NewDecoder(r)

	var root *xmlElem
	var stack []*xmlElem

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			e := &xmlElem{name: t.Name.Local}
			if len(stack) == 0 {
				if root != nil {
					return nil, errors.New("multiple root elements")
				}
				root = e
			} else {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, e)
			}
			stack = append(stack, e)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text.Write(t)
			}
		}
	}

	if root == nil {
		return nil, errors.New("empty response document")
	}
	return root, nil
}

// decodeResponse parses an ASMX XML response body into the map shape
// callers unwrap: a root like <ArrayOfRollCall> becomes
// {"array_of_roll_call": [...]}, a single-record root like <SessionLaw>
// becomes {"session_law": {...}}.
func decodeResponse(r io.Reader) (map[string]any, error) {
	root, err := parseXML(r)
	if err != nil {
		return nil, err
	}

	if child, ok := uniformChildName(root); ok && isArrayWrapper(root.name, child) {
		return map[string]any{
			"array_of_" + snakeCase(child): elemList(root),
		}, nil
	}
	return map[string]any{snakeCase(root.name): elemValue(root)}, nil
}

func elemValue(e *xmlElem) any {
	if len(e.children) == 0 {
		return coerce(strings.TrimSpace(e.text.String()))
	}

	// Container elements (Votes/Vote, ArrayOfX/X) collapse into an
	// array_of_* list so the shape matches the upstream record model.
	if child, ok := uniformChildName(e); ok && isArrayWrapper(e.name, child) {
		return map[string]any{"array_of_" + snakeCase(child): elemList(e)}
	}

	m := make(map[string]any, len(e.children))
	for _, c := range e.children {
		key := snakeCase(c.name)
		v := elemValue(c)
		if existing, seen := m[key]; seen {
			if list, isList := existing.([]any); isList {
				m[key] = append(list, v)
			} else {
				m[key] = []any{existing, v}
			}
		} else {
			m[key] = v
		}
	}
	return m
}

func elemList(e *xmlElem) []any {
	items := make([]any, 0, len(e.children))
	for _, c := range e.children {
		items = append(items, elemValue(c))
	}
	return items
}

// uniformChildName reports the shared child element name, if every child
// has the same one.
func uniformChildName(e *xmlElem) (string, bool) {
	if len(e.children) == 0 {
		return "", false
	}
	name := e.children[0].name
	for _, c := range e.children[1:] {
		if c.name != name {
			return "", false
		}
	}
	return name, true
}

// isArrayWrapper matches the two container conventions the WSL services
// use: <ArrayOfRollCall><RollCall>... and <Votes><Vote>...
func isArrayWrapper(name, child string) bool {
	n, c := strings.ToLower(name), strings.ToLower(child)
	return n == "arrayof"+c || n == c+"s"
}

// coerce turns a leaf's text into the narrowest matching scalar.
func coerce(s string) any {
	if s == "" {
		return ""
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	switch s {
	case "true", "True":
		return true
	case "false", "False":
		return false
	}
	return s
}

// snakeCase converts an upstream element name to its record key:
// "SequenceNumber" -> "sequence_number", "ArrayOfRollCall" -> "array_of_roll_call".
func snakeCase(name string) string {
	runes := []rune(name)
	var b strings.Builder
	b.Grow(len(runes) + 4)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1]))
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if i > 0 && (prevLower || nextLower) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
