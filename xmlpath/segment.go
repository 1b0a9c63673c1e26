/*
 * Copyright (c) 2019 Miguel Ángel Ortuño.
 * See the LICENSE file for more information.
 */

package xmlpath

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ortuman/xmltree"
	"github.com/ortuman/xmltree/xmlns"
)

type segmentKind int

const (
	// kindRoot marks the document root. It may only appear as the first
	// segment of a path built without a parent path.
	kindRoot segmentKind = iota

	// kindDeep matches descendants at any depth, like the '//' operator.
	kindDeep

	// kindAny matches any single tag.
	kindAny

	// kindTagged matches one exact tag.
	kindTagged
)

// segment represents one step of a path: its kind, an optional index
// predicate (-1 when unset), attribute value predicates and a snapshot of
// the namespace mapping effective when the segment was built.
type segment struct {
	kind  segmentKind
	tag   string
	index int
	attrs xmltree.Attrs
	nsmap xmlns.Map
}

func (s segment) clone() segment {
	ret := s
	ret.attrs = s.attrs.Clone()
	ret.nsmap = s.nsmap.Clone()
	return ret
}

func (s segment) String() string {
	switch s.kind {
	case kindRoot, kindDeep:
		return ""
	}
	text := s.tag
	if len(s.attrs) > 0 {
		names := make([]string, 0, len(s.attrs))
		for name := range s.attrs {
			names = append(names, name)
		}
		sort.Strings(names)
		preds := make([]string, 0, len(names))
		for _, name := range names {
			preds = append(preds, fmt.Sprintf("%s='%s'", name, s.attrs[name]))
		}
		text += "[" + strings.Join(preds, ",") + "]"
	}
	if s.index >= 0 {
		text += fmt.Sprintf("[%d]", s.index)
	}
	return text
}

// queryString renders the segment as an XPath node test of the form
// *[name()='tag'], adding a namespace-uri() predicate when the tag carries
// a prefix resolved through the segment's namespace snapshot.
func (s segment) queryString() (string, error) {
	local := s.tag
	uri := ""
	if i := strings.IndexByte(s.tag, ':'); i >= 0 {
		prefix := s.tag[:i]
		local = s.tag[i+1:]
		u, ok := s.nsmap[prefix]
		if !ok {
			return "", &xmltree.UnresolvedPrefixError{Prefix: prefix, Name: s.tag}
		}
		uri = u
	}
	if uri != "" {
		return fmt.Sprintf("*[name()='%s' and namespace-uri()='%s']", local, uri), nil
	}
	return fmt.Sprintf("*[name()='%s']", local), nil
}
