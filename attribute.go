/*
 * Copyright (c) 2019 Miguel Ángel Ortuño.
 * See the LICENSE file for more information.
 */

package xmltree

import (
	"sort"
	"strings"
)

// Attrs represents an attribute name to value mapping used at element
// construction time. Names may carry a namespace prefix in 'prefix:name'
// form; prefixes are resolved when the element acquires its namespace
// context.
type Attrs map[string]string

// IdentAttrs creates an Attrs mapping from identifier style names,
// replacing underscores with hyphens.
func IdentAttrs(m map[string]string) Attrs {
	ret := make(Attrs, len(m))
	for name, value := range m {
		ret[strings.Replace(name, "_", "-", -1)] = value
	}
	return ret
}

// Clone returns a copy of the mapping.
func (a Attrs) Clone() Attrs {
	if a == nil {
		return nil
	}
	ret := make(Attrs, len(a))
	for name, value := range a {
		ret[name] = value
	}
	return ret
}

// Merge returns a copy of the mapping with all overlay entries applied on
// top, overlay entries winning on name collision.
func (a Attrs) Merge(overlay Attrs) Attrs {
	ret := make(Attrs, len(a)+len(overlay))
	for name, value := range a {
		ret[name] = value
	}
	for name, value := range overlay {
		ret[name] = value
	}
	return ret
}

// sorted returns the mapping as label sorted attribute pairs.
func (a Attrs) sorted() []Attribute {
	names := make([]string, 0, len(a))
	for name := range a {
		names = append(names, name)
	}
	sort.Strings(names)
	ret := make([]Attribute, 0, len(names))
	for _, name := range names {
		ret = append(ret, Attribute{Label: name, Value: a[name]})
	}
	return ret
}

// Attribute represents a resolved XML node attribute (label=value).
type Attribute struct {
	Label string
	Value string
}

// attribute keeps an attribute value along with both the label it was
// written with and its expanded '{uri}name' form.
type attribute struct {
	label    string
	expanded string
	value    string
}

type attributeList []attribute

func (al attributeList) get(name string) (string, bool) {
	for _, attr := range al {
		if attr.label == name || attr.expanded == name {
			return attr.value, true
		}
	}
	return "", false
}

func (al *attributeList) set(label, expanded, value string) {
	for i := 0; i < len(*al); i++ {
		if (*al)[i].label == label {
			(*al)[i].expanded = expanded
			(*al)[i].value = value
			return
		}
	}
	*al = append(*al, attribute{label: label, expanded: expanded, value: value})
}

// expandedMap returns the expanded name to value mapping used by element
// equality.
func (al attributeList) expandedMap() map[string]string {
	ret := make(map[string]string, len(al))
	for _, attr := range al {
		ret[attr.expanded] = attr.value
	}
	return ret
}

func (al attributeList) attributes() []Attribute {
	ret := make([]Attribute, 0, len(al))
	for _, attr := range al {
		ret = append(ret, Attribute{Label: attr.label, Value: attr.value})
	}
	return ret
}
