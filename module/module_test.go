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
	"errors"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trim+lower", "  Network.TCP  ", "network.tcp"},
		{"double colon", "common::result", "common.result"},
		{"slash to dot", "database/pool", "database.pool"},
		{"dash to underscore", "logger.async-writer", "logger.async_writer"},
		{"mixed", " Network::Session/Expiry-Check ", "network.session.expiry_check"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Module
	}{
		{"single segment", "network", Module("network")},
		{"two segments", "common.result", Result},
		{"foreign separator", "common::adapter", Adapter},
		{"six segments", "a1.b.c.d.e.f", Module("a1.b.c.d.e.f")},
		{"empty is ok", "", Empty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"network..tcp", ErrInvalidFormat},
		{"network//tcp", ErrInvalidFormat},
		{"1network", ErrInvalidFormat},
		{"network.", ErrInvalidFormat},
		{".network", ErrInvalidFormat},
		{"a.b.c.d.e.f.g", ErrInvalidFormat},
		{"net work", ErrInvalidFormat},
		{"x", ErrInvalidLength},
		{strings.Repeat("a", MaxLength+1), ErrInvalidLength},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Parse(%q) error = %v, want %v", tt.in, err, tt.want)
			}
			if got != Empty {
				t.Fatalf("Parse(%q) on error must return Empty, got %q", tt.in, got)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(Empty); err != nil {
		t.Fatalf("Validate(Empty) unexpected error: %v", err)
	}
	for _, m := range []Module{Result, Adapter, "network.tcp", "db"} {
		if err := Validate(m); err != nil {
			t.Fatalf("Validate(%q) unexpected error: %v", m, err)
		}
	}
	for _, m := range []Module{"Network", "common::result", "a..b"} {
		if err := Validate(m); err == nil {
			t.Fatalf("Validate(%q) expected error", m)
		}
	}
}

func TestMustParse(t *testing.T) {
	if got := MustParse("Network::TCP"); got != "network.tcp" {
		t.Fatalf("MustParse = %q, want %q", got, "network.tcp")
	}

	for _, in := range []string{"", "1bad"} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("MustParse(%q) did not panic", in)
				}
			}()
			_ = MustParse(in)
		}()
	}
}

func TestJoin(t *testing.T) {
	got, err := Join("Network", "", "tcp", "connect-timeout")
	if err != nil {
		t.Fatalf("Join unexpected error: %v", err)
	}
	if got != "network.tcp.connect_timeout" {
		t.Fatalf("Join = %q", got)
	}
	if got, err := Join(); err != nil || got != Empty {
		t.Fatalf("Join() = %q, %v; want Empty, nil", got, err)
	}
}

func TestSegmentsAndRoot(t *testing.T) {
	m := Module("network.tcp.session")
	if got := m.Segments(); len(got) != 3 || got[2] != "session" {
		t.Fatalf("Segments() = %v", got)
	}
	if got := m.Root(); got != "network" {
		t.Fatalf("Root() = %q", got)
	}
	if Empty.Segments() != nil {
		t.Fatalf("Empty.Segments() must be nil")
	}
}

func TestHasPrefix(t *testing.T) {
	tests := []struct {
		m, prefix Module
		want      bool
	}{
		{"network.tcp", "network", true},
		{"network.tcp", "network.tcp", true},
		{"network.tcp", "network.tc", false},
		{"network", "network.tcp", false},
		{"network.tcp", Empty, true},
		{"database.pool", "network", false},
	}
	for _, tt := range tests {
		if got := tt.m.HasPrefix(tt.prefix); got != tt.want {
			t.Fatalf("%q.HasPrefix(%q) = %v, want %v", tt.m, tt.prefix, got, tt.want)
		}
	}
}

func TestTextRoundTrip(t *testing.T) {
	var m Module
	if err := m.UnmarshalText([]byte("  Database/Pool ")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if m != "database.pool" {
		t.Fatalf("UnmarshalText = %q", m)
	}
	if err := m.UnmarshalText([]byte("..")); err == nil {
		t.Fatalf("UnmarshalText accepted an invalid module")
	}

	if _, err := Module("Bad").MarshalText(); err == nil {
		t.Fatalf("MarshalText accepted a non-canonical module")
	}
	b, err := Empty.MarshalText()
	if err != nil || len(b) != 0 {
		t.Fatalf("Empty.MarshalText() = %q, %v", b, err)
	}
}
