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

import "weak"

// Holder is the common surface of the ownership handles below.
type Holder[T any] interface {
	Get() *T
	Valid() bool
}

var (
	_ Holder[int] = Shared[int]{}
	_ Holder[int] = (*Unique[int])(nil)
)

// Shared is a shared-ownership handle. Copies refer to the same object,
// which stays alive while any copy is reachable. Weak hands out references
// that do not keep it alive.
type Shared[T any] struct {
	p *T
}

// NewShared wraps p in a shared handle.
func NewShared[T any](p *T) Shared[T] { return Shared[T]{p: p} }

func (s Shared[T]) Get() *T     { return s.p }
func (s Shared[T]) Valid() bool { return s.p != nil }

// Weak returns a weak reference to the held object.
func (s Shared[T]) Weak() weak.Pointer[T] { return weak.Make(s.p) }

func (Shared[T]) adapterTraits() Traits {
	return Traits{Shape: ShapeShared, SupportsWeak: true}
}

// Unique is an exclusive-ownership handle. Release transfers the object out
// and leaves the handle empty.
type Unique[T any] struct {
	p *T
}

// NewUnique wraps p in an exclusive handle.
func NewUnique[T any](p *T) *Unique[T] { return &Unique[T]{p: p} }

func (u *Unique[T]) Get() *T {
	if u == nil {
		return nil
	}
	return u.p
}

func (u *Unique[T]) Valid() bool { return u.Get() != nil }

// Release returns the held object and empties u.
func (u *Unique[T]) Release() *T {
	if u == nil {
		return nil
	}
	p := u.p
	u.p = nil
	return p
}

func (*Unique[T]) adapterTraits() Traits {
	return Traits{Shape: ShapeExclusive}
}
