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

import "sync"

// TypeID is a process-lifetime identity token for a Go type. Tokens are
// assigned from a monotonic counter the first time a type is asked for and
// never change afterwards. Zero is never assigned.
type TypeID uint64

var (
	typeMu   sync.RWMutex
	typeIDs  = make(map[any]TypeID)
	lastType TypeID
)

// TypeIDOf returns the token for T. It is safe for concurrent use.
//
// The key is a typed nil pointer, which is distinct for every T and needs no
// reflection to build.
func TypeIDOf[T any]() TypeID {
	key := any((*T)(nil))

	typeMu.RLock()
	id, ok := typeIDs[key]
	typeMu.RUnlock()
	if ok {
		return id
	}

	typeMu.Lock()
	defer typeMu.Unlock()
	if id, ok := typeIDs[key]; ok {
		return id
	}
	lastType++
	typeIDs[key] = lastType
	return lastType
}
