/*
 * Copyright (c) 2019 Miguel Ángel Ortuño.
 * See the LICENSE file for more information.
 */

package main

import (
	"fmt"
	"io/ioutil"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/ortuman/xmltree"
	"github.com/ortuman/xmltree/version"
	"github.com/ortuman/xmltree/xmlns"
)

// nodeSpec describes one element of the generated document.
type nodeSpec struct {
	Tag      string            `yaml:"tag"`
	Attrs    map[string]string `yaml:"attrs"`
	Text     string            `yaml:"text"`
	Children []nodeSpec        `yaml:"children"`
}

// documentSpec describes a whole document: the minimum xmlgen version the
// description requires, the ambient namespace mapping and the element tree
// rooted at Document.
type documentSpec struct {
	MinVersion string            `yaml:"min-version"`
	Namespaces map[string]string `yaml:"namespaces"`
	Document   nodeSpec          `yaml:"document"`
}

// UnmarshalYAML satisfies Unmarshaler interface.
func (s *documentSpec) UnmarshalYAML(unmarshal func(interface{}) error) error {
	type documentSpecProxy documentSpec
	p := documentSpecProxy{}
	if err := unmarshal(&p); err != nil {
		return err
	}
	if err := p.Document.validate(); err != nil {
		return err
	}
	*s = documentSpec(p)
	return s.checkVersion()
}

func (s *documentSpec) checkVersion() error {
	if len(s.MinVersion) == 0 {
		return nil
	}
	var major, minor, patch uint
	if _, err := fmt.Sscanf(s.MinVersion, "%d.%d.%d", &major, &minor, &patch); err != nil {
		return errors.Wrapf(err, "parsing min-version %q", s.MinVersion)
	}
	minVer := version.NewVersion(major, minor, patch)
	if !minVer.IsLessOrEqual(version.ApplicationVersion) {
		return errors.Errorf("document requires xmlgen %v or later, this is %v", minVer, version.ApplicationVersion)
	}
	return nil
}

func (n *nodeSpec) validate() error {
	if len(n.Tag) == 0 {
		return errors.New("document node is missing a tag")
	}
	for i := range n.Children {
		if err := n.Children[i].validate(); err != nil {
			return err
		}
	}
	return nil
}

// loadDocumentSpec reads and validates a document description file.
func loadDocumentSpec(path string) (*documentSpec, error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading document description")
	}
	var s documentSpec
	if err := yaml.Unmarshal(b, &s); err != nil {
		return nil, errors.Wrap(err, "parsing document description")
	}
	return &s, nil
}

// build materializes the described document through an element factory,
// with the namespace block activated as ambient mapping.
func (s *documentSpec) build(f *xmltree.Factory) (*xmltree.Element, error) {
	var root *xmltree.Element
	err := f.WithNamespaces(xmlns.Map(s.Namespaces), func() error {
		e, err := buildNode(f, &s.Document)
		root = e
		return err
	})
	if err != nil {
		return nil, err
	}
	return root, nil
}

func buildNode(f *xmltree.Factory, spec *nodeSpec) (*xmltree.Element, error) {
	opts := []xmltree.Option{xmltree.WithAttrs(xmltree.Attrs(spec.Attrs))}
	if len(spec.Text) > 0 {
		opts = append(opts, xmltree.WithText(spec.Text))
	}
	e, err := f.Bind(spec.Tag).New(opts...)
	if err != nil {
		return nil, err
	}
	if len(spec.Children) > 0 {
		err = e.Build(func() error {
			for i := range spec.Children {
				if _, err := buildNode(f, &spec.Children[i]); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return e, nil
}
