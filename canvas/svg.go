package canvas

import (
	"bytes"
	"fmt"
	"strings"
)

// Document is an SVG rendering surface. It implements Container; tools
// append their rendered groups to it and the host serializes the result
// once all tools have rendered.
type Document struct {
	Width, Height float64
	Background    string

	children []*Element
}

// NewDocument creates an SVG surface with the given pixel dimensions.
func NewDocument(width, height float64) *Document {
	return &Document{Width: width, Height: height}
}

// Append adds a primitive to the document root.
func (d *Document) Append(el *Element) {
	d.children = append(d.children, el)
}

// Remove detaches a previously appended primitive. Removing an element that
// is not attached is a no-op.
func (d *Document) Remove(el *Element) {
	for i, c := range d.children {
		if c == el {
			d.children = append(d.children[:i], d.children[i+1:]...)
			return
		}
	}
}

// Len returns the number of root primitives currently attached.
func (d *Document) Len() int {
	return len(d.children)
}

// Root returns the attached root primitives in document order.
func (d *Document) Root() []*Element {
	return d.children
}

// String assembles the document into SVG markup.
func (d *Document) String() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg width="%s" height="%s" viewBox="0 0 %s %s" xmlns="http://www.w3.org/2000/svg">`,
		FormatFloat(d.Width), FormatFloat(d.Height), FormatFloat(d.Width), FormatFloat(d.Height))
	buf.WriteByte('\n')
	if d.Background != "" {
		fmt.Fprintf(&buf, `  <rect width="%s" height="%s" fill="%s"/>`,
			FormatFloat(d.Width), FormatFloat(d.Height), EscapeXML(d.Background))
		buf.WriteByte('\n')
	}
	for _, c := range d.children {
		writeElement(&buf, c, 1)
	}
	buf.WriteString("</svg>")
	return buf.String()
}

// writeElement serializes one primitive and its children, indented two
// spaces per depth.
func writeElement(buf *bytes.Buffer, el *Element, depth int) {
	indent := strings.Repeat("  ", depth)
	buf.WriteString(indent)
	buf.WriteByte('<')
	buf.WriteString(el.Tag)
	for _, name := range el.AttrNames() {
		fmt.Fprintf(buf, ` %s="%s"`, name, EscapeXML(el.Attr(name)))
	}
	if el.Text == "" && len(el.Children) == 0 {
		buf.WriteString("/>\n")
		return
	}
	buf.WriteByte('>')
	if el.Text != "" {
		buf.WriteString(EscapeXML(el.Text))
	}
	if len(el.Children) > 0 {
		buf.WriteByte('\n')
		for _, c := range el.Children {
			writeElement(buf, c, depth+1)
		}
		buf.WriteString(indent)
	}
	fmt.Fprintf(buf, "</%s>\n", el.Tag)
}

// EscapeXML escapes the five XML-significant characters.
func EscapeXML(s string) string {
	return xmlReplacer.Replace(s)
}

var xmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)
