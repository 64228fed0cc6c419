/*
   Copyright 2025 The kcenon Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package adapter

import (
	"fmt"
	"weak"

	common "github.com/kcenon/common-system"
	"github.com/kcenon/common-system/code"
	"github.com/kcenon/common-system/module"
	"github.com/kcenon/common-system/result"
)

// DefaultMaxDepth is the deepest wrapper chain Wrap accepts unless
// WithMaxDepth says otherwise.
const DefaultMaxDepth = 2

// Base is implemented by every wrapper, and by every shim that embeds one.
type Base interface {
	// AdapterDepth is the number of wrapper layers down to the bare
	// implementation. A bare implementation has depth 0.
	AdapterDepth() int
	// TypeID identifies the wrapper type.
	TypeID() TypeID
	// ImplTypeID identifies the wrapped implementation type.
	ImplTypeID() TypeID
	// IsAdapter reports true for wrappers.
	IsAdapter() bool
}

// inner gives untyped access to the wrapped implementation. It is used to
// walk chains whose intermediate types are unknown to the caller.
type inner interface {
	Inner() any
}

// Wrapper holds exactly one implementation, fixed at construction.
// Shims embed *Wrapper to implement an interface on its behalf.
type Wrapper[Impl any] struct {
	impl  Impl
	depth int
}

var (
	_ Base  = (*Wrapper[int])(nil)
	_ inner = (*Wrapper[int])(nil)
)

// Wrap places impl in a new Wrapper. The depth is one more than the depth of
// impl, so wrapping a bare implementation yields 1. A depth beyond the
// configured maximum is reported as code.AdapterChainTooDeep.
func Wrap[Impl any](impl Impl, opts ...Option) result.Result[*Wrapper[Impl]] {
	cfg := newConfig(opts)
	return wrap(impl, cfg)
}

func wrap[Impl any](impl Impl, cfg config) result.Result[*Wrapper[Impl]] {
	depth := DepthOf(impl) + 1
	if depth > cfg.maxDepth {
		e := common.New(code.AdapterChainTooDeep, "Adapter chain too deep",
			common.WithModule(module.Adapter.String()),
			common.WithDetails(fmt.Sprintf("depth %d exceeds max %d", depth, cfg.maxDepth)),
		)
		return result.Err[*Wrapper[Impl]](e)
	}
	return result.Ok(&Wrapper[Impl]{impl: impl, depth: depth})
}

// Unwrap returns the wrapped implementation. Ownership is not transferred.
func (w *Wrapper[Impl]) Unwrap() Impl { return w.impl }

// Inner returns the wrapped implementation as any.
func (w *Wrapper[Impl]) Inner() any { return w.impl }

func (w *Wrapper[Impl]) AdapterDepth() int  { return w.depth }
func (w *Wrapper[Impl]) TypeID() TypeID     { return TypeIDOf[*Wrapper[Impl]]() }
func (w *Wrapper[Impl]) ImplTypeID() TypeID { return TypeIDOf[Impl]() }
func (w *Wrapper[Impl]) IsAdapter() bool    { return true }

// Traits reports how the wrapped implementation is held.
func (w *Wrapper[Impl]) Traits() Traits { return TraitsOf[Impl]() }

// held is the part of a wrapper, or a shim embedding one, that exposes the
// holder behind it.
type held interface {
	inner
	Traits() Traits
}

// WeakRef returns a weak reference to the object behind handle h. It
// succeeds only when h wraps a holder whose traits support weak
// observation, i.e. a Shared[T].
func WeakRef[T, I any](h I) (weak.Pointer[T], bool) {
	hd, ok := any(h).(held)
	if !ok || !hd.Traits().SupportsWeak {
		return weak.Pointer[T]{}, false
	}
	s, ok := hd.Inner().(interface{ Weak() weak.Pointer[T] })
	if !ok {
		return weak.Pointer[T]{}, false
	}
	return s.Weak(), true
}

// heldObject returns the object behind the holder wrapped by h. Value
// shapes and empty holders report false.
func heldObject[T, I any](h I) (T, bool) {
	var zero T
	hd, ok := any(h).(held)
	if !ok || hd.Traits().Shape == ShapeValue {
		return zero, false
	}
	g, ok := hd.Inner().(interface {
		Get() T
		Valid() bool
	})
	if !ok || !g.Valid() {
		return zero, false
	}
	return g.Get(), true
}
