/*
 * Copyright (c) 2019 Miguel Ángel Ortuño.
 * See the LICENSE file for more information.
 */

package xmlns

// Context holds a stack of active namespace mappings. The top of the stack
// is the mapping effective for every element constructed while it is active.
//
// A Context is part of a single construction flow and is not safe for
// concurrent use.
type Context struct {
	stack []Map
}

// NewContext returns an empty namespace context.
func NewContext() *Context {
	return &Context{}
}

// Activate pushes a new effective mapping built by merging m over the
// current top of the stack, m entries winning on prefix collision.
// The returned scope must be closed to restore the previous mapping.
func (c *Context) Activate(m Map) *Scope {
	c.stack = append(c.stack, c.Current().Merge(m))
	return &Scope{ctx: c, depth: len(c.stack)}
}

// Current returns the currently effective mapping, or nil if no mapping
// is active.
func (c *Context) Current() Map {
	if len(c.stack) == 0 {
		return nil
	}
	return c.stack[len(c.stack)-1]
}

// With runs fn with m activated, restoring the previous mapping before
// returning fn's error. The mapping is restored even when fn panics.
func (c *Context) With(m Map, fn func() error) error {
	s := c.Activate(m)
	defer s.Close()
	return fn()
}

// Scope represents one active frame of a namespace context stack.
type Scope struct {
	ctx    *Context
	depth  int
	closed bool
}

// Close pops the scope's frame from the context stack. Closing a scope that
// is not on top of the stack is an internal consistency fault and panics.
func (s *Scope) Close() {
	if s.closed || len(s.ctx.stack) != s.depth {
		panic("xmlns: corrupted namespace context stack")
	}
	s.ctx.stack = s.ctx.stack[:s.depth-1]
	s.closed = true
}
