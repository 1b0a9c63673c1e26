/*
 * Copyright (c) 2019 Miguel Ángel Ortuño.
 * See the LICENSE file for more information.
 */

// Package xmlns manages XML namespace mappings and their scoped activation
// during tree construction.
package xmlns

import (
	"sort"
	"strings"
)

// Map represents a prefix to namespace URI mapping.
// The empty prefix identifies the default namespace.
type Map map[string]string

// IdentMap creates a Map from identifier style prefixes,
// replacing underscores with hyphens.
func IdentMap(m map[string]string) Map {
	ret := make(Map, len(m))
	for prefix, uri := range m {
		ret[strings.Replace(prefix, "_", "-", -1)] = uri
	}
	return ret
}

// Clone returns a copy of the mapping.
func (m Map) Clone() Map {
	if m == nil {
		return nil
	}
	ret := make(Map, len(m))
	for prefix, uri := range m {
		ret[prefix] = uri
	}
	return ret
}

// Merge returns a copy of the mapping with all overlay entries applied on
// top, overlay entries winning on prefix collision.
func (m Map) Merge(overlay Map) Map {
	if len(m) == 0 && len(overlay) == 0 {
		return nil
	}
	ret := make(Map, len(m)+len(overlay))
	for prefix, uri := range m {
		ret[prefix] = uri
	}
	for prefix, uri := range overlay {
		ret[prefix] = uri
	}
	return ret
}

// Equal tells whether both mappings contain exactly the same entries.
func (m Map) Equal(other Map) bool {
	if len(m) != len(other) {
		return false
	}
	for prefix, uri := range m {
		if other[prefix] != uri {
			return false
		}
	}
	return true
}

// PrefixOf performs a reverse lookup of the prefix bound to a namespace URI.
// When more than one prefix points at the URI the lexicographically smallest
// one is returned, so the result is deterministic.
func (m Map) PrefixOf(uri string) (string, bool) {
	var found bool
	var ret string
	for prefix, u := range m {
		if u != uri {
			continue
		}
		if !found || prefix < ret {
			ret = prefix
			found = true
		}
	}
	return ret, found
}

// Prefixes returns all declared prefixes in lexicographical order.
func (m Map) Prefixes() []string {
	ret := make([]string, 0, len(m))
	for prefix := range m {
		ret = append(ret, prefix)
	}
	sort.Strings(ret)
	return ret
}
