/*
 * Copyright (c) 2019 Miguel Ángel Ortuño.
 * See the LICENSE file for more information.
 */

package xmltree

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ortuman/xmltree/xmlns"
)

func TestElement_ScopedConstruction(t *testing.T) {
	f := New()
	parent, err := f.Bind("name").New(WithAttrs(Attrs{"attr": "value"}))
	require.Nil(t, err)

	var child, grandchild *Element
	err = parent.Build(func() error {
		sub, err := f.Bind("sub-name").New(WithAttrs(Attrs{"sub-attr": "sub value"}))
		if err != nil {
			return err
		}
		child = sub
		return sub.Build(func() error {
			grandchild, err = f.Bind("sub-sub-name").New()
			return err
		})
	})
	require.Nil(t, err)

	require.Equal(t, 1, parent.Children().Count())
	require.Same(t, child, parent.Child(0))
	require.Same(t, parent, child.Parent())
	require.Same(t, grandchild, child.Child(0))
	require.Nil(t, parent.Parent())
}

func TestElement_OpenScopeOutOfOrder(t *testing.T) {
	f := New()
	parent := f.Bind("name").MustNew()
	other := f.Bind("other-name").MustNew(Detached())

	s1 := parent.Open()
	s2 := other.Open()
	require.Panics(t, func() { s1.Close() })
	s2.Close()
	s1.Close()
	require.Panics(t, func() { s1.Close() })
}

func TestElement_AttributeAccess(t *testing.T) {
	f := New()
	e := f.Bind("name").MustNew(WithAttrs(Attrs{"attr": "value"}))

	value, err := e.Attribute("attr")
	require.Nil(t, err)
	require.Equal(t, "value", value)

	_, err = e.Attribute("missing")
	require.NotNil(t, err)
	attrErr, ok := err.(*MissingAttributeError)
	require.True(t, ok)
	require.Equal(t, "missing", attrErr.Name)
	require.Equal(t, "name", attrErr.Tag)

	e.SetAttribute("attr", "other value")
	value, _ = e.Attribute("attr")
	require.Equal(t, "other value", value)
	require.Equal(t, `<name attr="other value"/>`, e.String())

	e.SetAttribute("new-attr", "new value")
	require.Equal(t, []Attribute{
		{Label: "attr", Value: "other value"},
		{Label: "new-attr", Value: "new value"},
	}, e.Attributes())
}

func TestElement_Text(t *testing.T) {
	f := New()
	parent := f.Bind("name").MustNew()
	err := parent.Build(func() error {
		sub, err := f.Bind("sub-name").New()
		if err != nil {
			return err
		}
		sub.SetText("Some text")
		return nil
	})
	require.Nil(t, err)
	require.Equal(t, "Some text", parent.Child(0).Text())
	require.Equal(t, "<name>\n  <sub-name>Some text</sub-name>\n</name>", parent.String())
}

func TestElement_NamespaceResolution(t *testing.T) {
	f := New()
	s := f.Namespaces(xmlns.Map{"pfx": "urn:some:namespace"})
	e, err := f.Bind("pfx:name").New()
	s.Close()
	require.Nil(t, err)

	require.Equal(t, "pfx:name", e.Tag())
	require.Equal(t, "{urn:some:namespace}name", e.ExpandedTag())
	require.Equal(t, xmlns.Map{"pfx": "urn:some:namespace"}, e.Namespaces())
}

func TestElement_NamespaceExplicitOverride(t *testing.T) {
	f := New()
	err := f.WithNamespaces(xmlns.Map{"pfx": "urn:some:namespace"}, func() error {
		e, err := f.Bind("pfx:name").New(WithNamespaces(xmlns.Map{"pfx": "urn:new:namespace"}))
		require.Nil(t, err)
		require.Equal(t, "{urn:new:namespace}name", e.ExpandedTag())
		return nil
	})
	require.Nil(t, err)
}

func TestElement_NamespaceInheritedFromParent(t *testing.T) {
	f := New()
	parent := f.Bind("name").MustNew(WithNamespaces(xmlns.Map{"pfx": "urn:some:namespace"}))
	err := parent.Build(func() error {
		_, err := f.Bind("pfx:sub-name").New()
		return err
	})
	require.Nil(t, err)
	require.Equal(t, "{urn:some:namespace}sub-name", parent.Child(0).ExpandedTag())
}

func TestElement_UnresolvedPrefix(t *testing.T) {
	f := New()
	e, err := f.Bind("pfx:name").New()
	require.Nil(t, e)
	prefixErr, ok := err.(*UnresolvedPrefixError)
	require.True(t, ok)
	require.Equal(t, "pfx", prefixErr.Prefix)
	require.Equal(t, "pfx:name", prefixErr.Name)

	_, err = f.Bind("name").New(WithAttrs(Attrs{"pfx:attr": "value"}))
	prefixErr, ok = err.(*UnresolvedPrefixError)
	require.True(t, ok)
	require.Equal(t, "pfx", prefixErr.Prefix)
	require.Equal(t, "pfx:attr", prefixErr.Name)
}

func TestElement_AttributePrefixResolution(t *testing.T) {
	f := New()
	err := f.WithNamespaces(xmlns.Map{"pfx": "urn:some:namespace"}, func() error {
		e, err := f.Bind("name").New(WithAttrs(Attrs{"pfx:attr": "value"}))
		require.Nil(t, err)

		value, err := e.Attribute("pfx:attr")
		require.Nil(t, err)
		require.Equal(t, "value", value)

		value, err = e.Attribute("{urn:some:namespace}attr")
		require.Nil(t, err)
		require.Equal(t, "value", value)
		return nil
	})
	require.Nil(t, err)
}

func TestElement_Serialization(t *testing.T) {
	f := New()
	root, err := f.Bind("name").New(WithAttrs(Attrs{"attr": "value"}))
	require.Nil(t, err)
	err = root.Build(func() error {
		sub, err := f.Bind("sub-name").New(WithAttrs(Attrs{"sub-attr": "sub value"}))
		if err != nil {
			return err
		}
		err = sub.Build(func() error {
			_, err := f.Bind("sub-sub-name").New(WithIdentAttrs(map[string]string{"sub_sub_attr": "sub sub value"}))
			return err
		})
		if err != nil {
			return err
		}
		_, err = f.Bind("other-name").New(WithAttrs(Attrs{"other-attr": "other value"}))
		return err
	})
	require.Nil(t, err)

	require.Equal(t,
		"<name attr=\"value\">\n"+
			"  <sub-name sub-attr=\"sub value\">\n"+
			"    <sub-sub-name sub-sub-attr=\"sub sub value\"/>\n"+
			"  </sub-name>\n"+
			"  <other-name other-attr=\"other value\"/>\n"+
			"</name>",
		root.String())
}

func TestElement_SerializationNamespaces(t *testing.T) {
	f := New()
	var root *Element
	err := f.WithNamespaces(xmlns.Map{"pfx": "urn:some:namespace"}, func() error {
		e, err := f.Bind("pfx:name").New(WithAttrs(Attrs{"attr": "value"}))
		if err != nil {
			return err
		}
		root = e
		return root.Build(func() error {
			_, err := f.Bind("other:name").New(
				WithNamespaces(xmlns.Map{"other": "urn:other:namespace"}),
				WithAttrs(Attrs{"attr": "other value"}),
			)
			return err
		})
	})
	require.Nil(t, err)

	// the child redeclares only its own prefix; 'pfx' is inherited
	require.Equal(t,
		"<pfx:name xmlns:pfx=\"urn:some:namespace\" attr=\"value\">\n"+
			"  <other:name xmlns:other=\"urn:other:namespace\" attr=\"other value\"/>\n"+
			"</pfx:name>",
		root.String())
}

func TestElement_SerializationSubtree(t *testing.T) {
	f := New()
	parent := f.Bind("name").MustNew(WithNamespaces(xmlns.Map{"pfx": "urn:some:namespace"}))
	err := parent.Build(func() error {
		_, err := f.Bind("pfx:sub-name").New(WithAttrs(Attrs{"attr": "value"}))
		return err
	})
	require.Nil(t, err)

	require.Equal(t,
		"<name xmlns:pfx=\"urn:some:namespace\">\n"+
			"  <pfx:sub-name attr=\"value\"/>\n"+
			"</name>",
		parent.String())

	// printed on its own, the child re-declares the inherited mapping
	require.Equal(t,
		`<pfx:sub-name xmlns:pfx="urn:some:namespace" attr="value"/>`,
		parent.Child(0).String())
}

func TestElement_Equality(t *testing.T) {
	build := func(uri, otherAttrValue string) *Element {
		f := New()
		root := f.Bind("name").MustNew(WithNamespaces(xmlns.Map{"pfx": uri}))
		err := root.Build(func() error {
			if _, err := f.Bind("pfx:sub-name").New(); err != nil {
				return err
			}
			_, err := f.Bind("other-name").New(WithAttrs(Attrs{"attr": otherAttrValue}))
			return err
		})
		require.Nil(t, err)
		return root
	}
	xml := build("urn:some:namespace", "value")
	otherXML := build("urn:some:namespace", "other value")
	yetAnotherXML := build("urn:some:namespace", "value")
	xmlWithOtherNS := build("urn:other:namespace", "value")

	require.False(t, xml.Equal(otherXML))
	require.True(t, xml.Equal(yetAnotherXML))
	require.False(t, xml.Equal(xmlWithOtherNS))
	require.False(t, xml.Equal(nil))
}

func TestElement_EqualityAmbientVersusExplicit(t *testing.T) {
	f := New()
	var ambient *Element
	err := f.WithNamespaces(xmlns.Map{"pfx": "urn:some:namespace"}, func() error {
		e, err := f.Bind("name").New()
		if err != nil {
			return err
		}
		ambient = e
		return ambient.Build(func() error {
			_, err := f.Bind("pfx:sub-name").New()
			return err
		})
	})
	require.Nil(t, err)

	explicit := f.Bind("name").MustNew(WithNamespaces(xmlns.Map{"pfx": "urn:some:namespace"}))
	err = explicit.Build(func() error {
		_, err := f.Bind("pfx:sub-name").New()
		return err
	})
	require.Nil(t, err)

	require.True(t, ambient.Equal(explicit))
}
