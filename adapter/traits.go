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

// Shape describes how an implementation is held.
type Shape uint8

const (
	// ShapeValue is a plain value or a raw pointer.
	ShapeValue Shape = iota
	// ShapeShared is shared ownership that supports weak observation.
	ShapeShared
	// ShapeExclusive is exclusive ownership. It cannot be observed weakly.
	ShapeExclusive
)

func (s Shape) String() string {
	switch s {
	case ShapeShared:
		return "shared"
	case ShapeExclusive:
		return "exclusive"
	default:
		return "value"
	}
}

// Traits is wiring-time metadata about a holder type.
type Traits struct {
	Shape Shape
	// SupportsWeak reports whether the holder can hand out weak references.
	SupportsWeak bool
}

// traitsProvider is implemented by the holder types of this package.
type traitsProvider interface {
	adapterTraits() Traits
}

// TraitsOf resolves the traits of holder type H. Shared and Unique report
// their own shape; every other type is a value shape.
func TraitsOf[H any]() Traits {
	var h H
	if p, ok := any(h).(traitsProvider); ok {
		return p.adapterTraits()
	}
	return Traits{Shape: ShapeValue}
}
