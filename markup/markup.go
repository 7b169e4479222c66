// Package markup describes renderable elements as plain data.
//
// A Node is either an element (tag, ordered attributes, children) or a text
// leaf. Components build trees of Nodes without touching any template or
// rendering engine; serialization to HTML happens only when a consumer asks
// for it. Attribute and text values are stored raw and escaped during
// serialization.
package markup

import (
	"bytes"
	"html/template"
	"io"
	"strings"
)

// Kind discriminates the node variants.
type Kind int

const (
	KindElement Kind = iota
	KindText
)

// Attr is a single element attribute. Attribute order is preserved as
// written, so serialization is deterministic.
type Attr struct {
	Key   string
	Value string
}

// Node is one element or text leaf in a markup tree.
type Node struct {
	Kind     Kind
	Tag      string
	Attrs    []Attr
	Children []Node
	Text     string
}

// El builds an element node.
func El(tag string, attrs []Attr, children ...Node) Node {
	return Node{
		Kind:     KindElement,
		Tag:      tag,
		Attrs:    attrs,
		Children: children,
	}
}

// Text builds a text node.
func Text(s string) Node {
	return Node{
		Kind: KindText,
		Text: s,
	}
}

// Attr returns the value of the named attribute.
func (n Node) Attr(key string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// selfClosing lists the tags written as <tag/> when childless. Everything
// else gets an explicit closing tag.
var selfClosing = map[string]bool{
	"br":   true,
	"hr":   true,
	"img":  true,
	"link": true,
	"meta": true,
	"path": true,
	"use":  true,
}

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// WriteHTML serializes the tree rooted at n. The tree is not modified.
func (n Node) WriteHTML(w io.Writer) error {
	if n.Kind == KindText {
		_, err := io.WriteString(w, textEscaper.Replace(n.Text))
		return err
	}
	if _, err := io.WriteString(w, "<"+n.Tag); err != nil {
		return err
	}
	for _, a := range n.Attrs {
		if _, err := io.WriteString(w, ` `+a.Key+`="`+attrEscaper.Replace(a.Value)+`"`); err != nil {
			return err
		}
	}
	if len(n.Children) == 0 && selfClosing[n.Tag] {
		_, err := io.WriteString(w, "/>")
		return err
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}
	for _, c := range n.Children {
		if err := c.WriteHTML(w); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</"+n.Tag+">")
	return err
}

func (n Node) String() string {
	buf := bytes.Buffer{}
	// writes to a bytes.Buffer cannot fail
	n.WriteHTML(&buf)
	return buf.String()
}

// HTML adapts a serialized tree for use inside html/template pages.
func (n Node) HTML() template.HTML {
	return template.HTML(n.String())
}
