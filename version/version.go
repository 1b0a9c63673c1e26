/*
 * Copyright (c) 2019 Miguel Ángel Ortuño.
 * See the LICENSE file for more information.
 */

package version

import (
	"fmt"
)

// ApplicationVersion represents the xmltree application version.
var ApplicationVersion = NewVersion(0, 1, 0)

// SemanticVersion represents a semantic version value.
type SemanticVersion struct {
	major uint
	minor uint
	patch uint
}

// NewVersion initializes a new semantic version instance.
func NewVersion(major, minor, patch uint) *SemanticVersion {
	return &SemanticVersion{
		major: major,
		minor: minor,
		patch: patch,
	}
}

func (v *SemanticVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.major, v.minor, v.patch)
}

// IsEqual tells whether both versions are equivalent.
func (v *SemanticVersion) IsEqual(v2 *SemanticVersion) bool {
	if v == v2 {
		return true
	}
	return v.major == v2.major && v.minor == v2.minor && v.patch == v2.patch
}

// IsLess tells whether the receiver precedes v2.
func (v *SemanticVersion) IsLess(v2 *SemanticVersion) bool {
	if v == v2 {
		return false
	}
	if v.major != v2.major {
		return v.major < v2.major
	}
	if v.minor != v2.minor {
		return v.minor < v2.minor
	}
	return v.patch < v2.patch
}

// IsLessOrEqual tells whether the receiver precedes or equals v2.
func (v *SemanticVersion) IsLessOrEqual(v2 *SemanticVersion) bool {
	return v.IsLess(v2) || v.IsEqual(v2)
}
