/*
 * Copyright (c) 2019 Miguel Ángel Ortuño.
 * See the LICENSE file for more information.
 */

// Package xmlpath builds abstract path descriptors that can render to
// XPath expressions or materialize into element trees.
package xmlpath

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/ortuman/xmltree"
	"github.com/ortuman/xmltree/pool"
	"github.com/ortuman/xmltree/xmlns"
)

var bufPool = pool.NewBufferPool()

// ErrRootSegment is returned when joining a path whose first segment is the
// document root onto another path.
var ErrRootSegment = errors.New("xmlpath: root path cannot be appended to another path")

// ErrAbstractSegment is returned when materializing a path containing
// segments that cannot map onto concrete markup (wildcard or deep
// descendant steps).
var ErrAbstractSegment = errors.New("xmlpath: path contains non concrete segments")

// Path is an immutable sequence of path segments bound to an element
// factory. Every derivation operator returns a new Path; the receiver is
// never modified.
type Path struct {
	f        *xmltree.Factory
	segments []segment
}

// Root returns a path holding the bare document root segment.
func Root(f *xmltree.Factory) *Path {
	return &Path{f: f, segments: []segment{{
		kind:  kindRoot,
		index: -1,
		nsmap: f.Context().Current().Clone(),
	}}}
}

// Rel returns a relative path holding a single non root segment, suitable
// for joining onto another path. The tag follows the Child conventions.
func Rel(f *xmltree.Factory, tag string, opts ...Option) *Path {
	p := &Path{f: f}
	return p.child(tag, opts...)
}

// Child returns a new path with one more segment appended: a deep
// descendant step if tag is empty, a wildcard step if tag is "*", and an
// exact tag step otherwise. The segment's namespace snapshot merges the
// ambient context, the parent path's snapshot and any WithNamespaces
// option, in that order of increasing priority.
func (p *Path) Child(tag string, opts ...Option) *Path {
	return p.child(tag, opts...)
}

// Desc returns a new path appending a deep descendant step followed by a
// tag step, like the '//' operator.
func (p *Path) Desc(tag string, opts ...Option) *Path {
	return p.Child("").Child(tag, opts...)
}

func (p *Path) child(tag string, opts ...Option) *Path {
	var o segmentOptions
	o.index = -1
	for _, opt := range opts {
		opt(&o)
	}
	nsmap := p.f.Context().Current()
	if len(p.segments) > 0 {
		nsmap = nsmap.Merge(p.lastSegment().nsmap)
	}
	nsmap = nsmap.Merge(o.nsmap)

	seg := segment{kind: kindTagged, tag: tag, index: o.index, attrs: o.attrs, nsmap: nsmap}
	switch tag {
	case "":
		if o.index >= 0 || len(o.attrs) > 0 {
			panic("xmlpath: deep descendant segment cannot carry predicates")
		}
		seg.kind = kindDeep
	case "*":
		seg.kind = kindAny
	}
	return p.derive(append(p.cloneSegments(), seg))
}

// Index returns a new path with the index predicate set to i on its last
// segment. Attribute predicates already present are kept.
func (p *Path) Index(i int) *Path {
	seg := p.lastSegment()
	if seg.kind == kindRoot || seg.kind == kindDeep {
		panic("xmlpath: tag-less segment cannot carry predicates")
	}
	segments := p.cloneSegments()
	segments[len(segments)-1].index = i
	return p.derive(segments)
}

// Where returns a new path with the attrs entries merged into the last
// segment's attribute predicates, the new entries winning on collision.
func (p *Path) Where(attrs xmltree.Attrs) *Path {
	seg := p.lastSegment()
	if seg.kind == kindRoot || seg.kind == kindDeep {
		panic("xmlpath: tag-less segment cannot carry predicates")
	}
	segments := p.cloneSegments()
	last := &segments[len(segments)-1]
	last.attrs = last.attrs.Merge(attrs)
	return p.derive(segments)
}

// Join returns the concatenation of both paths. The right hand path must
// not start with the document root segment.
func (p *Path) Join(other *Path) (*Path, error) {
	if other.segments[0].kind == kindRoot {
		return nil, errors.Wrapf(ErrRootSegment, "cannot join %q onto %q", other, p)
	}
	return p.derive(append(p.cloneSegments(), other.cloneSegments()...)), nil
}

// Parent returns a new path over all but the last segment, or nil if only
// one segment remains.
func (p *Path) Parent() *Path {
	if len(p.segments) == 1 {
		return nil
	}
	return p.derive(p.cloneSegments()[:len(p.segments)-1])
}

// Namespaces returns the last segment's namespace snapshot.
func (p *Path) Namespaces() xmlns.Map {
	return p.lastSegment().nsmap.Clone()
}

// Tree materializes the path into a nested element chain built through the
// bound factory, each deeper segment constructed inside the previous one's
// scope. A leading root segment stands for the document itself and is
// skipped; every remaining segment must be an exact tag step.
func (p *Path) Tree(opts ...TreeOption) (*xmltree.Element, error) {
	var o treeOptions
	for _, opt := range opts {
		opt(&o)
	}
	segments, err := p.concreteSegments()
	if err != nil {
		return nil, err
	}
	return p.buildSegments(segments, o.asRoot)
}

func (p *Path) buildSegments(segments []segment, detached bool) (*xmltree.Element, error) {
	seg := segments[0]
	opts := []xmltree.Option{
		xmltree.WithAttrs(seg.attrs),
		xmltree.WithNamespaces(seg.nsmap),
	}
	if detached {
		opts = append(opts, xmltree.Detached())
	}
	e, err := p.f.Bind(seg.tag).New(opts...)
	if err != nil {
		return nil, err
	}
	if len(segments) > 1 {
		err = e.Build(func() error {
			_, err := p.buildSegments(segments[1:], false)
			return err
		})
		if err != nil {
			return nil, err
		}
	}
	return e, nil
}

// QueryString renders the path as an XPath expression of '/' joined
// *[name()='tag'] node tests. A leading root segment is skipped; every
// remaining segment must be an exact tag step.
func (p *Path) QueryString() (string, error) {
	segments, err := p.concreteSegments()
	if err != nil {
		return "", err
	}
	buf := bufPool.Get()
	defer bufPool.Put(buf)

	for i, seg := range segments {
		if i > 0 {
			buf.WriteByte('/')
		}
		test, err := seg.queryString()
		if err != nil {
			return "", err
		}
		buf.WriteString(test)
	}
	return buf.String(), nil
}

// String renders the path segments joined by '/'. Root and deep descendant
// segments print empty; tag steps print their tag followed by bracketed
// attribute and index predicates.
func (p *Path) String() string {
	texts := make([]string, 0, len(p.segments))
	for _, seg := range p.segments {
		texts = append(texts, seg.String())
	}
	return strings.Join(texts, "/")
}

// concreteSegments validates that the path can map onto concrete markup
// and returns its tag steps, skipping a leading root segment.
func (p *Path) concreteSegments() ([]segment, error) {
	segments := p.segments
	if segments[0].kind == kindRoot {
		segments = segments[1:]
	}
	if len(segments) == 0 {
		return nil, errors.Wrapf(ErrAbstractSegment, "nothing to materialize in %q", p)
	}
	for _, seg := range segments {
		if seg.kind != kindTagged {
			return nil, errors.Wrapf(ErrAbstractSegment, "cannot materialize %q", p)
		}
	}
	return segments, nil
}

func (p *Path) lastSegment() segment {
	return p.segments[len(p.segments)-1]
}

func (p *Path) cloneSegments() []segment {
	ret := make([]segment, 0, len(p.segments))
	for _, seg := range p.segments {
		ret = append(ret, seg.clone())
	}
	return ret
}

func (p *Path) derive(segments []segment) *Path {
	return &Path{f: p.f, segments: segments}
}

type segmentOptions struct {
	attrs xmltree.Attrs
	nsmap xmlns.Map
	index int
}

// Option configures a path segment under construction.
type Option func(*segmentOptions)

// WithAttrs sets attribute value predicates on the segment.
func WithAttrs(attrs xmltree.Attrs) Option {
	return func(o *segmentOptions) {
		o.attrs = o.attrs.Merge(attrs)
	}
}

// WithNamespaces overlays a namespace mapping on the segment's snapshot.
func WithNamespaces(m xmlns.Map) Option {
	return func(o *segmentOptions) {
		o.nsmap = o.nsmap.Merge(m)
	}
}

// WithIndex sets the segment's index predicate.
func WithIndex(i int) Option {
	return func(o *segmentOptions) {
		o.index = i
	}
}

type treeOptions struct {
	asRoot bool
}

// TreeOption configures path materialization.
type TreeOption func(*treeOptions)

// AsRoot builds the first materialized element as a detached document
// root, ignoring any open parent scope.
func AsRoot() TreeOption {
	return func(o *treeOptions) {
		o.asRoot = true
	}
}
