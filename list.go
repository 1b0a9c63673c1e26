/*
 * Copyright (c) 2019 Miguel Ángel Ortuño.
 * See the LICENSE file for more information.
 */

package xmltree

// List represents an ordered collection of element references. Lists are
// produced by child filtering operations and do not own their members; the
// elements remain owned by their tree.
//
// Bulk attribute accessors operate on every member at once, in the spirit
// of jQuery style selections.
type List []*Element

// Count returns the number of elements in the list.
func (l List) Count() int {
	return len(l)
}

// At returns the i-th element of the list.
func (l List) At(i int) *Element {
	return l[i]
}

// Slice returns a new list over the [i, j) index range.
func (l List) Slice(i, j int) List {
	return append(List(nil), l[i:j]...)
}

// Tag returns a new list containing the elements whose tag equals name.
func (l List) Tag(name string) List {
	return l.Select([]string{name}, nil)
}

// Select returns a new list containing the elements whose tag is in tags
// (all of them if tags is empty) and which carry every attrs entry with an
// exactly matching value. Elements missing a filtered attribute are
// excluded. Order is preserved.
func (l List) Select(tags []string, attrs Attrs) List {
	var ret List
	for _, e := range l {
		if len(tags) > 0 && !containsTag(tags, e.Tag()) {
			continue
		}
		if !matchesAttrs(e, attrs) {
			continue
		}
		ret = append(ret, e)
	}
	return ret
}

// Attr returns the value of an attribute from every member, in list order.
// A MissingAttributeError is returned if any member lacks the attribute.
func (l List) Attr(name string) ([]string, error) {
	ret := make([]string, 0, len(l))
	for _, e := range l {
		value, err := e.Attribute(name)
		if err != nil {
			return nil, err
		}
		ret = append(ret, value)
	}
	return ret, nil
}

// SetAttr sets an attribute to the same value on every member.
func (l List) SetAttr(name, value string) {
	for _, e := range l {
		e.SetAttribute(name, value)
	}
}

// Tags returns the tag names of all members, in list order.
func (l List) Tags() []string {
	ret := make([]string, 0, len(l))
	for _, e := range l {
		ret = append(ret, e.Tag())
	}
	return ret
}

// Equal tells whether both lists contain pairwise equal elements in the
// same order.
func (l List) Equal(other List) bool {
	if len(l) != len(other) {
		return false
	}
	for i, e := range l {
		if !e.Equal(other[i]) {
			return false
		}
	}
	return true
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

func matchesAttrs(e *Element, attrs Attrs) bool {
	for name, value := range attrs {
		actual, ok := e.attrs.get(name)
		if !ok || actual != value {
			return false
		}
	}
	return true
}
