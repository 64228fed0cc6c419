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

// Package segmenttrie indexes dotted module paths for longest-prefix lookup.
package segmenttrie

import (
	"errors"
	"strings"
)

// Wildcard matches exactly one segment.
const Wildcard = "*"

// Trie maps dot-separated prefixes ("network.tcp", "database.*.query") to
// values. Lookups return the value of the deepest matching prefix. At equal
// depth a literal segment beats the wildcard.
//
// A Trie is not safe for concurrent Insert. Once built, concurrent lookups
// are safe.
type Trie[T any] struct {
	children map[string]*Trie[T]
	hasVal   bool
	val      T
	// pattern is the prefix as inserted, kept for diagnostics.
	pattern string
	size    int
}

// ErrInvalidPrefix is returned for empty prefixes, empty or malformed
// segments, and prefixes made only of wildcards.
var ErrInvalidPrefix = errors.New("segmenttrie: invalid prefix")

// New creates an empty trie.
func New[T any]() *Trie[T] {
	return &Trie[T]{children: make(map[string]*Trie[T])}
}

// Insert associates val with prefix. Inserting the same prefix twice
// replaces the value.
func (t *Trie[T]) Insert(prefix string, val T) error {
	if t == nil || prefix == "" {
		return ErrInvalidPrefix
	}
	segs := strings.Split(prefix, ".")
	literal := false
	for _, s := range segs {
		if s == Wildcard {
			continue
		}
		if !validSegment(s) {
			return ErrInvalidPrefix
		}
		literal = true
	}
	if !literal {
		return ErrInvalidPrefix
	}

	cur := t
	for _, s := range segs {
		child, ok := cur.children[s]
		if !ok {
			child = New[T]()
			cur.children[s] = child
		}
		cur = child
	}
	if !cur.hasVal {
		t.size++
	}
	cur.hasVal = true
	cur.val = val
	cur.pattern = prefix
	return nil
}

// Len returns the number of stored prefixes.
func (t *Trie[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Match returns the value of the deepest prefix of key.
func (t *Trie[T]) Match(key string) (T, bool) {
	v, ok, _ := t.MatchWithPattern(key)
	return v, ok
}

// MatchWithPattern is Match that also returns the winning prefix as it was
// inserted (wildcards included).
func (t *Trie[T]) MatchWithPattern(key string) (T, bool, string) {
	var zero T
	if t == nil || key == "" {
		return zero, false, ""
	}
	best := match[T]{depth: -1}
	best.walk(t, key, 0, 0)
	if best.depth < 0 {
		return zero, false, ""
	}
	return best.node.val, true, best.node.pattern
}

type match[T any] struct {
	depth int
	node  *Trie[T]
}

// walk consumes one segment of key starting at off. The literal branch is
// visited before the wildcard, and only a strictly deeper hit replaces the
// current best, which gives literals priority at equal depth.
func (m *match[T]) walk(n *Trie[T], key string, off, depth int) {
	if n.hasVal && depth > m.depth {
		m.depth = depth
		m.node = n
	}
	if off >= len(key) {
		return
	}
	end := strings.IndexByte(key[off:], '.')
	if end < 0 {
		end = len(key)
	} else {
		end += off
	}
	seg := key[off:end]
	if !validSegment(seg) {
		return
	}
	next := end + 1
	if child, ok := n.children[seg]; ok {
		m.walk(child, key, next, depth+1)
	}
	if child, ok := n.children[Wildcard]; ok {
		m.walk(child, key, next, depth+1)
	}
}

// validSegment reports whether seg matches [a-z][a-z0-9_]*.
func validSegment(seg string) bool {
	if seg == "" || seg[0] < 'a' || seg[0] > 'z' {
		return false
	}
	for i := 1; i < len(seg); i++ {
		c := seg[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_' {
			continue
		}
		return false
	}
	return true
}
