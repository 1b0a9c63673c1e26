/*
 * Copyright (c) 2019 Miguel Ángel Ortuño.
 * See the LICENSE file for more information.
 */

package xmltree

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrDuplicateBinding is returned when binding a tag to a constructor that
// already carries one.
var ErrDuplicateBinding = errors.New("xmltree: constructor is already tag bound")

// UnresolvedPrefixError is returned when a tag or attribute name uses a
// namespace prefix that is not declared in the effective namespace mapping
// at attachment time.
type UnresolvedPrefixError struct {
	Prefix string
	Name   string
}

func (e *UnresolvedPrefixError) Error() string {
	return fmt.Sprintf("xmltree: unknown namespace prefix %q in name %q", e.Prefix, e.Name)
}

// MissingAttributeError is returned when reading an attribute that does not
// exist on the target element.
type MissingAttributeError struct {
	Name string
	Tag  string
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("xmltree: missing attribute %q in element %q", e.Name, e.Tag)
}
