/*
 * Copyright (c) 2019 Miguel Ángel Ortuño.
 * See the LICENSE file for more information.
 */

package xmltree

// Scope represents one active frame of a factory's open parent stack.
type Scope struct {
	f      *Factory
	depth  int
	closed bool
}

// Open pushes the element as the current open parent: every element built
// through the factory while the scope is active is attached as its last
// child. The returned scope must be closed to restore the previous parent.
func (e *Element) Open() *Scope {
	e.f.open = append(e.f.open, e)
	return &Scope{f: e.f, depth: len(e.f.open)}
}

// Close pops the scope's frame from the open parent stack. Closing a scope
// that is not on top of the stack is an internal consistency fault and
// panics.
func (s *Scope) Close() {
	if s.closed || len(s.f.open) != s.depth {
		panic("xmltree: corrupted open parent stack")
	}
	s.f.open = s.f.open[:s.depth-1]
	s.closed = true
}

// Build runs fn with the element open as parent, restoring the previous
// parent before returning fn's error. The stack is restored even when fn
// panics.
func (e *Element) Build(fn func() error) error {
	s := e.Open()
	defer s.Close()
	return fn()
}
