/*
 * Copyright (c) 2019 Miguel Ángel Ortuño.
 * See the LICENSE file for more information.
 */

package main

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"

	"github.com/ortuman/xmltree"
)

const docYAML = `
namespaces:
  pfx: urn:some:namespace
document:
  tag: pfx:name
  attrs:
    attr: value
  children:
    - tag: sub-name
      text: Some text
    - tag: other-name
      attrs:
        other-attr: other value
`

func TestDocumentSpec_Build(t *testing.T) {
	var spec documentSpec
	require.Nil(t, yaml.Unmarshal([]byte(docYAML), &spec))

	doc, err := spec.build(xmltree.New())
	require.Nil(t, err)

	require.Equal(t, "pfx:name", doc.Tag())
	require.Equal(t, "{urn:some:namespace}name", doc.ExpandedTag())
	require.Equal(t, 2, doc.Children().Count())
	require.Equal(t, "Some text", doc.Child(0).Text())

	require.Equal(t,
		"<pfx:name xmlns:pfx=\"urn:some:namespace\" attr=\"value\">\n"+
			"  <sub-name>Some text</sub-name>\n"+
			"  <other-name other-attr=\"other value\"/>\n"+
			"</pfx:name>",
		doc.String())
}

func TestDocumentSpec_MinVersion(t *testing.T) {
	var spec documentSpec
	err := yaml.Unmarshal([]byte("min-version: 0.1.0\ndocument:\n  tag: name\n"), &spec)
	require.Nil(t, err)
	require.Equal(t, "0.1.0", spec.MinVersion)

	err = yaml.Unmarshal([]byte("min-version: 7.0.0\ndocument:\n  tag: name\n"), &documentSpec{})
	require.NotNil(t, err)

	err = yaml.Unmarshal([]byte("min-version: not.a.version\ndocument:\n  tag: name\n"), &documentSpec{})
	require.NotNil(t, err)
}

func TestDocumentSpec_Validate(t *testing.T) {
	err := yaml.Unmarshal([]byte("document:\n  attrs:\n    attr: value\n"), &documentSpec{})
	require.NotNil(t, err)

	err = yaml.Unmarshal([]byte("document:\n  tag: name\n  children:\n    - text: orphan\n"), &documentSpec{})
	require.NotNil(t, err)
}
