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

package module

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Module is a canonical, validated module identifier.
type Module string

const (
	// MinLength is the minimum length of a non-empty module.
	MinLength = 2

	// MaxLength is the maximum length of a module.
	MaxLength = 128

	// MaxSegments is the number of dot-separated segments a module may have.
	MaxSegments = 6
)

// moduleFmt accepts 1 to 6 segments. Each segment starts with a lowercase
// ASCII letter and continues with lowercase letters, digits or underscores.
// The empty string is handled separately and never reaches the regexp.
const moduleFmt = `^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*){0,5}$`

var moduleRe = regexp.MustCompile(moduleFmt)

var (
	// ErrInvalidFormat is returned when a module does not match the
	// canonical form.
	ErrInvalidFormat = errors.New("common: invalid module format")
	// ErrInvalidLength is returned when a module is too short or too long.
	ErrInvalidLength = errors.New("common: invalid module length")
)

var (
	_ encoding.TextMarshaler   = (*Module)(nil)
	_ encoding.TextUnmarshaler = (*Module)(nil)
)

// Empty means "origin not recorded".
const Empty Module = ""

// Well-known modules of the foundation layer.
const (
	Result  Module = "common.result"
	Adapter Module = "common.adapter"
)

// Normalize brings s closer to canonical form. It trims spaces, lower-cases,
// turns "::" and "/" into "." and "-" into "_".
//
// It does not guarantee validity.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "::", ".")
	s = strings.ReplaceAll(s, "/", ".")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Parse normalizes and validates s. The empty string yields Empty without
// error.
func Parse(s string) (Module, error) {
	s = Normalize(s)
	if s == "" {
		return Empty, nil
	}
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Module(s), nil
}

// MustParse is the panic-on-error variant of Parse for package-level
// declarations. Unlike Parse it rejects the empty string.
func MustParse(s string) Module {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}
	if m == Empty {
		panic("common: empty module in MustParse")
	}
	return m
}

// Validate checks that m is in canonical form. Empty is valid.
func Validate(m Module) error {
	if m == Empty {
		return nil
	}
	return validate(string(m))
}

// Join builds a module from segments, skipping empty ones, and validates the
// result.
func Join(segments ...string) (Module, error) {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		if s = Normalize(s); s != "" {
			parts = append(parts, s)
		}
	}
	return Parse(strings.Join(parts, "."))
}

// Segments splits m into its dot-separated parts. Empty yields nil.
func (m Module) Segments() []string {
	if m == Empty {
		return nil
	}
	return strings.Split(string(m), ".")
}

// Root returns the first segment, i.e. the owning subsystem.
func (m Module) Root() string {
	s, _, _ := strings.Cut(string(m), ".")
	return s
}

// HasPrefix reports whether prefix names m or one of its ancestors. The
// comparison is segment-aware: "network.tc" is not a prefix of "network.tcp".
func (m Module) HasPrefix(prefix Module) bool {
	if prefix == Empty {
		return true
	}
	if !strings.HasPrefix(string(m), string(prefix)) {
		return false
	}
	return len(m) == len(prefix) || m[len(prefix)] == '.'
}

func (m Module) String() string { return string(m) }

// MarshalText implements encoding.TextMarshaler.
func (m Module) MarshalText() ([]byte, error) {
	if err := Validate(m); err != nil {
		return nil, err
	}
	return []byte(m), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The input is normalized
// before validation.
func (m *Module) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrInvalidLength
	}
	if !moduleRe.MatchString(s) {
		return ErrInvalidFormat
	}
	return nil
}
