// Package canvas provides the rendering surface the drawing tools append
// into: a tree of graphical primitives with attribute and child handles, an
// SVG document that assembles the tree into markup, and a text-metrics
// service for measuring label strings.
package canvas

import (
	"strconv"
	"strings"
)

// Element is a single graphical primitive (line, text, rect, polygon,
// circle, group...). Attributes preserve insertion order so rendered output
// is deterministic.
type Element struct {
	Tag      string
	Text     string
	Children []*Element

	attrs map[string]string
	keys  []string
}

// NewElement creates a primitive with the given tag.
func NewElement(tag string) *Element {
	return &Element{Tag: tag, attrs: make(map[string]string)}
}

// Set assigns a string attribute and returns the element for chaining.
func (e *Element) Set(name, value string) *Element {
	if _, ok := e.attrs[name]; !ok {
		e.keys = append(e.keys, name)
	}
	e.attrs[name] = value
	return e
}

// SetFloat assigns a numeric attribute, formatted with up to two decimal
// places.
func (e *Element) SetFloat(name string, v float64) *Element {
	return e.Set(name, FormatFloat(v))
}

// Attr returns the value of an attribute, or "" when unset.
func (e *Element) Attr(name string) string {
	return e.attrs[name]
}

// FloatAttr parses an attribute as a float. ok is false when the attribute
// is unset or not numeric.
func (e *Element) FloatAttr(name string) (float64, bool) {
	raw, present := e.attrs[name]
	if !present {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// AttrNames returns the attribute names in insertion order.
func (e *Element) AttrNames() []string {
	return e.keys
}

// Append adds child primitives and returns the element for chaining.
func (e *Element) Append(children ...*Element) *Element {
	e.Children = append(e.Children, children...)
	return e
}

// SetText assigns the element's character content.
func (e *Element) SetText(text string) *Element {
	e.Text = text
	return e
}

// Container is the narrow contract a drawing tool needs from its host
// surface: append a rendered primitive group, or remove a previously
// appended one. A tool never touches siblings it did not create.
type Container interface {
	Append(el *Element)
	Remove(el *Element)
}

// FormatFloat renders a pixel coordinate with at most two decimal places,
// trimming trailing zeros.
func FormatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "-0" || s == "" {
		return "0"
	}
	return s
}
