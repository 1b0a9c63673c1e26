/*
 * Copyright (c) 2019 Miguel Ángel Ortuño.
 * See the LICENSE file for more information.
 */

// Package xmltree provides fluent, namespace aware construction, filtering
// and serialization of XML element trees.
package xmltree

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/ortuman/xmltree/xmlns"
)

// Factory is the single entry point for element tree creation. It owns the
// per tag constructor cache, the ambient namespace context and the open
// parent stack used by scoped construction.
//
// A Factory models one construction flow and is not safe for concurrent use.
type Factory struct {
	ns    *xmlns.Context
	open  []*Element
	ctors map[string]*Constructor
}

// New returns an empty element factory.
func New() *Factory {
	return &Factory{
		ns:    xmlns.NewContext(),
		ctors: map[string]*Constructor{},
	}
}

// Bind returns the constructor bound to a tag, given in 'name' or
// 'prefix:name' form. Constructors are cached, so repeated binds of one tag
// string return the same constructor instance.
func (f *Factory) Bind(tag string) *Constructor {
	if c, ok := f.ctors[tag]; ok {
		return c
	}
	c := &Constructor{f: f, tag: tag, local: tag}
	if i := strings.IndexByte(tag, ':'); i >= 0 {
		c.prefix = tag[:i]
		c.local = tag[i+1:]
	}
	f.ctors[tag] = c
	return c
}

// Namespaces activates a namespace mapping for every element constructed
// until the returned scope is closed.
func (f *Factory) Namespaces(m xmlns.Map) *xmlns.Scope {
	return f.ns.Activate(m)
}

// WithNamespaces runs fn with m activated, restoring the previous mapping
// before returning fn's error.
func (f *Factory) WithNamespaces(m xmlns.Map, fn func() error) error {
	return f.ns.With(m, fn)
}

// Context returns the factory's ambient namespace context.
func (f *Factory) Context() *xmlns.Context {
	return f.ns
}

// openParent returns the innermost open parent element, or nil if no
// element scope is active.
func (f *Factory) openParent() *Element {
	if len(f.open) == 0 {
		return nil
	}
	return f.open[len(f.open)-1]
}

// Constructor builds elements for one fixed tag.
type Constructor struct {
	f      *Factory
	tag    string
	prefix string
	local  string
}

// Tag returns the constructor's bound tag.
func (c *Constructor) Tag() string {
	return c.tag
}

// Bind always fails: a constructor carries exactly one tag.
func (c *Constructor) Bind(tag string) (*Constructor, error) {
	return nil, errors.Wrapf(ErrDuplicateBinding, "constructor already bound to %q, cannot bind %q", c.tag, tag)
}

// New builds an element carrying the constructor's tag. The element's
// namespace mapping is the currently active ambient mapping overlaid with
// any WithNamespaces option. If an element scope is open, the new element
// is attached as its last child; tag and attribute prefixes are resolved
// at that point against the element's own mapping and then its ancestors'.
func (c *Constructor) New(opts ...Option) (*Element, error) {
	var o nodeOptions
	for _, opt := range opts {
		opt(&o)
	}
	e := &Element{
		f:      c.f,
		prefix: c.prefix,
		local:  c.local,
		nsmap:  c.f.ns.Current().Merge(o.nsmap),
		text:   o.text,
	}
	var parent *Element
	if !o.detached {
		parent = c.f.openParent()
	}
	if err := e.resolve(parent, o.attrs.sorted()); err != nil {
		return nil, err
	}
	return e, nil
}

// MustNew is like New but panics on error. It simplifies building literal
// trees whose correctness is known up front.
func (c *Constructor) MustNew(opts ...Option) *Element {
	e, err := c.New(opts...)
	if err != nil {
		panic(err)
	}
	return e
}

type nodeOptions struct {
	attrs    Attrs
	nsmap    xmlns.Map
	text     string
	detached bool
}

// Option configures element construction.
type Option func(*nodeOptions)

// WithAttrs adds an attribute mapping to the element. Later options win on
// name collision.
func WithAttrs(attrs Attrs) Option {
	return func(o *nodeOptions) {
		o.attrs = o.attrs.Merge(attrs)
	}
}

// WithIdentAttrs adds an attribute mapping given with identifier style
// names, converting underscores to hyphens.
func WithIdentAttrs(m map[string]string) Option {
	return func(o *nodeOptions) {
		o.attrs = o.attrs.Merge(IdentAttrs(m))
	}
}

// WithNamespaces overlays a namespace mapping on top of the ambient one,
// its entries winning on prefix collision.
func WithNamespaces(m xmlns.Map) Option {
	return func(o *nodeOptions) {
		o.nsmap = o.nsmap.Merge(m)
	}
}

// WithText sets the element's inner text.
func WithText(text string) Option {
	return func(o *nodeOptions) {
		o.text = text
	}
}

// Detached builds the element as a standalone root, ignoring any open
// parent scope.
func Detached() Option {
	return func(o *nodeOptions) {
		o.detached = true
	}
}
