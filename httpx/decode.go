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

package httpx

import (
	"fmt"
	"io"

	common "github.com/kcenon/common-system"
)

// DecodeBody reads an error body written by Writer.
func DecodeBody(r io.Reader) (Body, error) {
	var b Body
	if err := json.NewDecoder(r).Decode(&b); err != nil {
		return Body{}, fmt.Errorf("httpx: decode error body: %w", err)
	}
	return b, nil
}

// Decode reads an error body written by Writer and returns the ErrorInfo
// it describes.
func Decode(r io.Reader) (common.ErrorInfo, error) {
	b, err := DecodeBody(r)
	if err != nil {
		return common.ErrorInfo{}, err
	}
	return common.FromView(b.ErrorView), nil
}
