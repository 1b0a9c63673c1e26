/*
 * Copyright (c) 2019 Miguel Ángel Ortuño.
 * See the LICENSE file for more information.
 */

package xmltree

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/ortuman/xmltree/pool"
	"github.com/ortuman/xmltree/xmlns"
)

var bufPool = pool.NewBufferPool()

const indentSpaces = 2

// Element represents one XML element node. It owns its backend etree node
// and its ordered list of direct children; the parent link is a plain back
// reference used for upward navigation only.
//
// Elements are created through a Constructor and are resolved exactly once,
// when the parent (possibly none) is known: at that point any 'prefix:name'
// tag or attribute is expanded against the effective namespace mapping.
type Element struct {
	f        *Factory
	prefix   string
	local    string
	uri      string
	nsmap    xmlns.Map
	attrs    attributeList
	text     string
	parent   *Element
	children []*Element
	node     *etree.Element
}

// resolve completes construction of a pending element: it expands the tag
// and attribute prefixes, materializes the backend node and, if a parent is
// given, attaches the element as its last child.
func (e *Element) resolve(parent *Element, attrs []Attribute) error {
	var inherited xmlns.Map
	if parent != nil {
		inherited = parent.Namespaces()
	}
	lookup := func(prefix string) (string, bool) {
		if uri, ok := e.nsmap[prefix]; ok {
			return uri, true
		}
		uri, ok := inherited[prefix]
		return uri, ok
	}

	if e.prefix != "" {
		uri, ok := lookup(e.prefix)
		if !ok {
			return &UnresolvedPrefixError{Prefix: e.prefix, Name: e.prefix + ":" + e.local}
		}
		e.uri = uri
	}
	e.node = etree.NewElement(e.qualifiedTag())

	// declare only mappings not already visible through the parent chain
	for _, prefix := range e.nsmap.Prefixes() {
		uri := e.nsmap[prefix]
		if parent != nil && inherited[prefix] == uri {
			continue
		}
		if prefix == "" {
			e.node.CreateAttr("xmlns", uri)
		} else {
			e.node.CreateAttr("xmlns:"+prefix, uri)
		}
	}
	for _, attr := range attrs {
		expanded := attr.Label
		if i := strings.IndexByte(attr.Label, ':'); i >= 0 {
			uri, ok := lookup(attr.Label[:i])
			if !ok {
				return &UnresolvedPrefixError{Prefix: attr.Label[:i], Name: attr.Label}
			}
			expanded = "{" + uri + "}" + attr.Label[i+1:]
		}
		e.attrs.set(attr.Label, expanded, attr.Value)
		e.node.CreateAttr(attr.Label, attr.Value)
	}
	if len(e.text) > 0 {
		e.node.SetText(e.text)
	}
	if parent != nil {
		e.parent = parent
		parent.children = append(parent.children, e)
		parent.node.AddChild(e.node)
	}
	return nil
}

func (e *Element) qualifiedTag() string {
	if e.prefix != "" {
		return e.prefix + ":" + e.local
	}
	return e.local
}

// Tag returns the element tag in 'name' or 'prefix:name' form, the prefix
// looked up from the effective namespace mapping.
func (e *Element) Tag() string {
	if e.uri == "" {
		return e.local
	}
	if prefix, ok := e.Namespaces().PrefixOf(e.uri); ok {
		return prefix + ":" + e.local
	}
	return e.qualifiedTag()
}

// ExpandedTag returns the tag in expanded '{uri}name' form, or the bare
// name when the element carries no namespace.
func (e *Element) ExpandedTag() string {
	if e.uri == "" {
		return e.local
	}
	return "{" + e.uri + "}" + e.local
}

// Namespaces returns the element's effective prefix to URI mapping,
// ancestor declarations overlaid by the element's own.
func (e *Element) Namespaces() xmlns.Map {
	if e.parent == nil {
		return e.nsmap.Clone()
	}
	return e.parent.Namespaces().Merge(e.nsmap)
}

// Attribute returns the value of an attribute, addressed either by the
// label it was written with or by its expanded name. A MissingAttributeError
// is returned if the element has no such attribute.
func (e *Element) Attribute(name string) (string, error) {
	value, ok := e.attrs.get(name)
	if !ok {
		return "", &MissingAttributeError{Name: name, Tag: e.Tag()}
	}
	return value, nil
}

// SetAttribute sets or overwrites an attribute value directly on the
// resolved node.
func (e *Element) SetAttribute(name, value string) {
	expanded := name
	if i := strings.IndexByte(name, ':'); i >= 0 {
		if uri, ok := e.Namespaces()[name[:i]]; ok {
			expanded = "{" + uri + "}" + name[i+1:]
		}
	}
	e.attrs.set(name, expanded, value)
	e.node.CreateAttr(name, value)
}

// Attributes returns all element attributes in the backend's order.
// Namespace declarations are not included.
func (e *Element) Attributes() []Attribute {
	return e.attrs.attributes()
}

// Text returns the element's inner text, or an empty string if not set.
func (e *Element) Text() string {
	return e.text
}

// SetText sets the element's inner text.
func (e *Element) SetText(text string) {
	e.text = text
	e.node.SetText(text)
}

// Parent returns the parent element, or nil if this element is a root.
func (e *Element) Parent() *Element {
	return e.parent
}

// Children returns the ordered list of direct child elements.
func (e *Element) Children() List {
	return List(e.children)
}

// Child returns the i-th direct child element.
func (e *Element) Child(i int) *Element {
	return e.children[i]
}

// Select returns the direct children whose tag is in tags (all children if
// tags is empty) and which carry every attrs entry with an exactly matching
// value. Document order is preserved.
func (e *Element) Select(tags []string, attrs Attrs) List {
	return e.Children().Select(tags, attrs)
}

// Equal tells whether both elements carry equal expanded tags, attributes
// and namespace mappings, and recursively equal child sequences. Prefixes
// bound to different URIs make two otherwise identical subtrees unequal.
func (e *Element) Equal(other *Element) bool {
	if other == nil {
		return false
	}
	if e.ExpandedTag() != other.ExpandedTag() {
		return false
	}
	attrs, otherAttrs := e.attrs.expandedMap(), other.attrs.expandedMap()
	if len(attrs) != len(otherAttrs) {
		return false
	}
	for name, value := range attrs {
		if otherAttrs[name] != value {
			return false
		}
	}
	if !e.Namespaces().Equal(other.Namespaces()) {
		return false
	}
	return e.Children().Equal(other.Children())
}

// String returns the element subtree serialized as indented XML text with
// surrounding whitespace trimmed. Mappings inherited from ancestors are
// re-declared on the subtree root so the output stands on its own.
func (e *Element) String() string {
	buf := bufPool.Get()
	defer bufPool.Put(buf)

	root := e.node.Copy()
	ns := e.Namespaces()
	var decls []etree.Attr
	for _, prefix := range ns.Prefixes() {
		label, attr := "xmlns", etree.Attr{Key: "xmlns", Value: ns[prefix]}
		if prefix != "" {
			label = "xmlns:" + prefix
			attr = etree.Attr{Space: "xmlns", Key: prefix, Value: ns[prefix]}
		}
		if root.SelectAttr(label) == nil {
			decls = append(decls, attr)
		}
	}
	root.Attr = append(decls, root.Attr...)

	doc := etree.NewDocument()
	doc.SetRoot(root)
	doc.Indent(indentSpaces)
	doc.WriteTo(buf)
	return strings.TrimSpace(buf.String())
}
