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
	"io"
	"strconv"
	"strings"

	"google.golang.org/grpc/codes"
	"gopkg.in/yaml.v3"

	"github.com/kcenon/common-system/code"
)

// ErrInvalidRules is returned by LoadRules for documents that parse but
// contain unknown codes, categories or statuses.
var ErrInvalidRules = errors.New("mapper: invalid rules")

// ruleDoc is the YAML layout accepted by LoadRules:
//
//	fallback: {http: 500, grpc: INTERNAL}
//	categories:
//	  network_system: {http: 502, grpc: UNAVAILABLE}
//	codes:
//	  - code: TIMEOUT          # symbol or decimal
//	    http: 504
//	    grpc: DEADLINE_EXCEEDED
//	    prefixes:
//	      - module: database
//	        http: 503
//	  - code: -1
//	    override: true
//	    http: 422
//
// Every status is optional; a zero HTTP status or an empty gRPC name leaves
// the corresponding transport untouched.
type ruleDoc struct {
	Fallback   *statusDoc           `yaml:"fallback"`
	Categories map[string]statusDoc `yaml:"categories"`
	Codes      []codeDoc            `yaml:"codes"`
}

type statusDoc struct {
	HTTP int    `yaml:"http"`
	GRPC string `yaml:"grpc"`
}

type codeDoc struct {
	Code      string `yaml:"code"`
	Override  bool   `yaml:"override"`
	statusDoc `yaml:",inline"`
	Prefixes  []prefixDoc `yaml:"prefixes"`
}

type prefixDoc struct {
	Module    string `yaml:"module"`
	statusDoc `yaml:",inline"`
}

// LoadRules decodes a YAML rule document into options for New. Unknown
// fields are rejected.
func LoadRules(r io.Reader) ([]Option, error) {
	var doc ruleDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("mapper: decode rules: %w", err)
	}

	var opts []Option

	if f := doc.Fallback; f != nil {
		if f.HTTP == 0 || f.GRPC == "" {
			return nil, fmt.Errorf("%w: fallback needs both http and grpc", ErrInvalidRules)
		}
		g, err := parseGRPC(f.GRPC)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithFallback(f.HTTP, g))
	}

	for name, st := range doc.Categories {
		cat, ok := code.ParseCategory(strings.TrimSpace(name))
		if !ok {
			return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidRules, name)
		}
		if st.HTTP != 0 {
			opts = append(opts, WithCategoryHTTP(cat, st.HTTP))
		}
		if st.GRPC != "" {
			g, err := parseGRPC(st.GRPC)
			if err != nil {
				return nil, err
			}
			opts = append(opts, WithCategoryGRPC(cat, g))
		}
	}

	for _, cd := range doc.Codes {
		c, err := code.Parse(cd.Code)
		if err != nil {
			return nil, fmt.Errorf("%w: code %q: %w", ErrInvalidRules, cd.Code, err)
		}
		if cd.HTTP != 0 {
			if cd.Override {
				opts = append(opts, WithHTTPOverride(c, cd.HTTP))
			} else {
				opts = append(opts, WithHTTPDefault(c, cd.HTTP))
			}
		}
		if cd.GRPC != "" {
			g, err := parseGRPC(cd.GRPC)
			if err != nil {
				return nil, err
			}
			if cd.Override {
				opts = append(opts, WithGRPCOverride(c, g))
			} else {
				opts = append(opts, WithGRPCDefault(c, g))
			}
		}
		for _, p := range cd.Prefixes {
			if p.Module == "" {
				return nil, fmt.Errorf("%w: code %s: prefix without module", ErrInvalidRules, c)
			}
			if p.HTTP != 0 {
				opts = append(opts, WithHTTPPrefix(c, p.Module, p.HTTP))
			}
			if p.GRPC != "" {
				g, err := parseGRPC(p.GRPC)
				if err != nil {
					return nil, err
				}
				opts = append(opts, WithGRPCPrefix(c, p.Module, g))
			}
		}
	}
	return opts, nil
}

// parseGRPC accepts the canonical status names ("NOT_FOUND") or a decimal
// value.
func parseGRPC(s string) (codes.Code, error) {
	s = strings.TrimSpace(s)
	var c codes.Code
	in := s
	if _, err := strconv.ParseUint(s, 10, 32); err != nil {
		in = strconv.Quote(strings.ToUpper(s))
	}
	if err := c.UnmarshalJSON([]byte(in)); err != nil {
		return 0, fmt.Errorf("%w: grpc status %q: %w", ErrInvalidRules, s, err)
	}
	return c, nil
}
