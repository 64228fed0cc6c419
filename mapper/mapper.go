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

package mapper

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"google.golang.org/grpc/codes"

	"github.com/kcenon/common-system/apis"
	"github.com/kcenon/common-system/code"
	"github.com/kcenon/common-system/mapper/internal/segmenttrie"
	"github.com/kcenon/common-system/module"
)

var errEmptyPrefix = errors.New("empty prefix")

// Tier names reported by Explain.
const (
	SourceOverride = "override"
	SourcePrefix   = "prefix"
	SourceDefault  = "default"
	SourceCategory = "category"
	SourceFallback = "fallback"
)

// New builds an immutable apis.Mapper from the library defaults and opts.
//
// Module prefixes are normalized with module.Normalize and validated; an
// invalid prefix fails the whole build. The returned Mapper shares no state
// with the options or with other mappers.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()
	for _, opt := range opts {
		opt(b)
	}

	httpT, err := freeze("HTTP", b.http)
	if err != nil {
		return nil, err
	}
	grpcT, err := freeze("gRPC", b.grpc)
	if err != nil {
		return nil, err
	}
	return &mapper{http: httpT, grpc: grpcT}, nil
}

var defaultMapper = sync.OnceValue(func() apis.Mapper {
	m, err := New()
	if err != nil {
		panic(err)
	}
	return m
})

// Default returns a shared Mapper with the library defaults only.
func Default() apis.Mapper { return defaultMapper() }

// table is the frozen form of rules for one transport.
type table[V any] struct {
	override   map[code.Code]V
	prefixes   map[code.Code]*segmenttrie.Trie[V]
	defaults   map[code.Code]V
	categories map[code.Category]V
	fallback   V
}

func freeze[V any](transport string, r rules[V]) (table[V], error) {
	t := table[V]{
		override:   r.override,
		defaults:   r.defaults,
		categories: r.categories,
		fallback:   r.fallback,
		prefixes:   make(map[code.Code]*segmenttrie.Trie[V], len(r.prefixes)),
	}
	for c, rs := range r.prefixes {
		tr := segmenttrie.New[V]()
		for _, rule := range rs {
			p, err := normalizePrefix(rule.prefix)
			if err != nil {
				return table[V]{}, fmt.Errorf("mapper: invalid %s module prefix %q for code %s: %w", transport, rule.prefix, c, err)
			}
			if err := tr.Insert(p, rule.val); err != nil {
				return table[V]{}, fmt.Errorf("mapper: cannot insert %s prefix %q for code %s: %w", transport, p, c, err)
			}
		}
		if tr.Len() > 0 {
			t.prefixes[c] = tr
		}
	}
	return t, nil
}

// resolve walks the tiers in order and reports which one matched.
func (t *table[V]) resolve(c code.Code, m module.Module) (v V, source, pattern string) {
	if v, ok := t.override[c]; ok {
		return v, SourceOverride, ""
	}
	if tr, ok := t.prefixes[c]; ok && m != module.Empty {
		if v, ok, pat := tr.MatchWithPattern(string(m)); ok {
			return v, SourcePrefix, pat
		}
	}
	if v, ok := t.defaults[c]; ok {
		return v, SourceDefault, ""
	}
	if v, ok := t.categories[code.CategoryOf(c)]; ok {
		return v, SourceCategory, ""
	}
	return t.fallback, SourceFallback, ""
}

type mapper struct {
	http table[int]
	grpc table[codes.Code]
}

// HTTPStatus resolves the HTTP status for (c, m).
func (m *mapper) HTTPStatus(c code.Code, mod module.Module) int {
	v, _, _ := m.http.resolve(c, canonical(mod))
	return v
}

// GRPCStatus resolves the gRPC status for (c, m).
func (m *mapper) GRPCStatus(c code.Code, mod module.Module) codes.Code {
	v, _, _ := m.grpc.resolve(c, canonical(mod))
	return v
}

// Status resolves both transports with the same inputs.
func (m *mapper) Status(c code.Code, mod module.Module) apis.Status {
	mod = canonical(mod)
	h, _, _ := m.http.resolve(c, mod)
	g, _, _ := m.grpc.resolve(c, mod)
	return apis.Status{HTTP: h, GRPC: g}
}

// Explain traces how (c, m) was resolved:
//
//	code=TIMEOUT(-4) category=common module="database.query"
//	http: source=prefix pattern="database" -> 503
//	grpc: source=default -> DeadlineExceeded(4)
func (m *mapper) Explain(c code.Code, mod module.Module) string {
	mod = canonical(mod)
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "code=%s category=%s module=%q\n", codeLabel(c), code.CategoryOf(c), string(mod))

	hv, src, pat := m.http.resolve(c, mod)
	_, _ = fmt.Fprintf(&b, "http: %s -> %d\n", sourceLabel(src, pat), hv)

	gv, src, pat := m.grpc.resolve(c, mod)
	_, _ = fmt.Fprintf(&b, "grpc: %s -> %s(%d)", sourceLabel(src, pat), gv, int(gv))
	return b.String()
}

func sourceLabel(src, pat string) string {
	if src == SourcePrefix {
		return fmt.Sprintf("source=%s pattern=%q", src, pat)
	}
	return "source=" + src
}

func codeLabel(c code.Code) string {
	n := strconv.Itoa(int(c))
	if sym := code.Name(c); sym != "" {
		return sym + "(" + n + ")"
	}
	return n
}

// canonical normalizes a module received from an ErrorInfo, where it is
// stored as given by the producer.
func canonical(m module.Module) module.Module {
	return module.Module(module.Normalize(string(m)))
}

// normalizePrefix brings a rule prefix to canonical form. Segment syntax
// is checked by the trie on insert.
func normalizePrefix(raw string) (string, error) {
	p := module.Normalize(raw)
	if p == "" {
		return "", errEmptyPrefix
	}
	return p, nil
}
