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
	"maps"
	"net/http"

	"google.golang.org/grpc/codes"

	"github.com/kcenon/common-system/code"
)

type prefixRule[V any] struct {
	// prefix is the raw module prefix; normalized when the trie is built.
	prefix string
	val    V
}

// rules collects the user adjustments for one transport before they are
// frozen into a table.
type rules[V any] struct {
	defaults   map[code.Code]V
	override   map[code.Code]V
	prefixes   map[code.Code][]prefixRule[V]
	categories map[code.Category]V
	fallback   V
}

func newRules[V any](defaults map[code.Code]V, categories map[code.Category]V, fallback V) rules[V] {
	return rules[V]{
		defaults:   maps.Clone(defaults),
		override:   make(map[code.Code]V),
		prefixes:   make(map[code.Code][]prefixRule[V]),
		categories: maps.Clone(categories),
		fallback:   fallback,
	}
}

type builder struct {
	http rules[int]
	grpc rules[codes.Code]
}

// newBuilder seeds a builder with the library defaults.
func newBuilder() *builder {
	return &builder{
		http: newRules(defaultHTTP, categoryHTTP, http.StatusInternalServerError),
		grpc: newRules(defaultGRPC, categoryGRPC, codes.Internal),
	}
}
