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

package code

import (
	"errors"
	"strconv"
	"strings"
)

// Code is a numeric error code from the partitioned code space.
//
// It is a distinct type (not a bare int) so that APIs can state that they
// expect a registry code and so that raw integers from the wire are
// converted explicitly.
type Code int32

// BandWidth is the width of every subsystem band below the common range.
const BandWidth = 100

var (
	// ErrCodeInvalid is returned when a value cannot be parsed as a code or
	// falls outside every assigned band.
	ErrCodeInvalid = errors.New("common: invalid code")
)

// Parse converts user input into a Code.
//
// Both the decimal form ("-2") and the registry symbol ("NOT_FOUND",
// "not-found") are accepted. The result is validated with Validate.
func Parse(s string) (Code, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Success, ErrCodeInvalid
	}
	if n, err := strconv.ParseInt(s, 10, 32); err == nil {
		c := Code(n)
		if err := Validate(c); err != nil {
			return Success, err
		}
		return c, nil
	}
	c, ok := bySymbol[Normalize(s)]
	if !ok {
		return Success, ErrCodeInvalid
	}
	return c, nil
}

// MustParse is the panic-on-error variant of Parse. It is meant for
// package-level variables and tests.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Normalize brings a symbol closer to its canonical form: surrounding space
// is trimmed, letters are upper-cased and '-' becomes '_'.
//
// It does not check that the symbol exists.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToUpper(s)
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Validate reports whether c belongs to an assigned band.
//
// Positive values and the unassigned gap between the network band and the
// reserved range are rejected. Reserved codes (-1000 and below) are valid so
// that newer systems can ship codes before this registry knows about them.
func Validate(c Code) error {
	switch CategoryOf(c) {
	case CategoryUnassigned:
		return ErrCodeInvalid
	default:
		return nil
	}
}

// IsSuccess reports whether c is the success code.
func (c Code) IsSuccess() bool { return c == Success }

// IsKnown reports whether c has an entry in the registry.
func (c Code) IsKnown() bool {
	_, ok := registry[c]
	return ok
}

// Category returns the band c belongs to.
func (c Code) Category() Category { return CategoryOf(c) }

// String returns the registry symbol of c, or its decimal form when the code
// is not registered.
func (c Code) String() string {
	if e, ok := registry[c]; ok {
		return e.symbol
	}
	return strconv.Itoa(int(c))
}

// Name returns the registry symbol of c, e.g. "NOT_FOUND". It returns an
// empty string for unregistered codes.
func Name(c Code) string {
	return registry[c].symbol
}

// Message returns the default human-readable message for c.
// Unregistered codes yield "Unknown error".
func Message(c Code) string {
	if e, ok := registry[c]; ok {
		return e.message
	}
	return "Unknown error"
}

// Known returns every registered code in ascending band order (success
// first, then each band from -1 downwards). The slice is freshly allocated.
func Known() []Code {
	out := make([]Code, len(ordered))
	copy(out, ordered)
	return out
}
