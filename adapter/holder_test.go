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

package adapter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kcenon/common-system/adapter"
	"github.com/kcenon/common-system/code"
)

type sharedShim struct {
	*adapter.Wrapper[adapter.Shared[StubImpl]]
}

func (s sharedShim) Log(msg string) { s.Unwrap().Get().Write(msg) }

func bindShared(w *adapter.Wrapper[adapter.Shared[StubImpl]]) ILogger { return sharedShim{w} }

type uniqueShim struct {
	*adapter.Wrapper[*adapter.Unique[StubImpl]]
}

func (u uniqueShim) Log(msg string) { u.Unwrap().Get().Write(msg) }

func bindUnique(w *adapter.Wrapper[*adapter.Unique[StubImpl]]) ILogger { return uniqueShim{w} }

func TestTraitsOf(t *testing.T) {
	assert.Equal(t, adapter.Traits{Shape: adapter.ShapeValue}, adapter.TraitsOf[*StubImpl]())
	assert.Equal(t, adapter.Traits{Shape: adapter.ShapeValue}, adapter.TraitsOf[int]())
	assert.Equal(t, adapter.Traits{Shape: adapter.ShapeShared, SupportsWeak: true},
		adapter.TraitsOf[adapter.Shared[StubImpl]]())
	assert.Equal(t, adapter.Traits{Shape: adapter.ShapeExclusive},
		adapter.TraitsOf[*adapter.Unique[StubImpl]]())

	assert.Equal(t, "value", adapter.ShapeValue.String())
	assert.Equal(t, "shared", adapter.ShapeShared.String())
	assert.Equal(t, "exclusive", adapter.ShapeExclusive.String())
}

func TestShared(t *testing.T) {
	stub := &StubImpl{}
	s := adapter.NewShared(stub)
	assert.True(t, s.Valid())
	assert.Same(t, stub, s.Get())
	assert.Same(t, stub, s.Weak().Value())

	assert.False(t, adapter.Shared[StubImpl]{}.Valid())
}

func TestUnique_Release(t *testing.T) {
	stub := &StubImpl{}
	u := adapter.NewUnique(stub)
	require.True(t, u.Valid())

	assert.Same(t, stub, u.Release())
	assert.False(t, u.Valid())
	assert.Nil(t, u.Get())
	assert.Nil(t, u.Release())

	var none *adapter.Unique[StubImpl]
	assert.Nil(t, none.Release())
	assert.False(t, none.Valid())
}

func TestCreate_SharedHolder(t *testing.T) {
	stub := &StubImpl{}
	h := adapter.MustCreate[ILogger](adapter.NewShared(stub), bindShared, quiet)

	h.Log("hello")
	assert.Equal(t, []string{"hello"}, stub.written)

	w, ok := adapter.WeakRef[StubImpl](h)
	require.True(t, ok)
	assert.Same(t, stub, w.Value())

	got, ok := adapter.TryUnwrap[*StubImpl](h)
	require.True(t, ok)
	assert.Same(t, stub, got)
}

func TestCreate_UniqueHolder(t *testing.T) {
	stub := &StubImpl{}
	u := adapter.NewUnique(stub)
	h := adapter.MustCreate[ILogger](u, bindUnique, quiet)

	_, ok := adapter.WeakRef[StubImpl](h)
	assert.False(t, ok, "exclusive holders cannot be observed weakly")

	got, ok := adapter.TryUnwrap[*StubImpl](h)
	require.True(t, ok)
	assert.Same(t, stub, got)

	u.Release()
	_, ok = adapter.TryUnwrap[*StubImpl](h)
	assert.False(t, ok, "released holder")
}

func TestCreate_EmptyHolders(t *testing.T) {
	r := adapter.Create[ILogger](adapter.Shared[StubImpl]{}, bindShared, quiet)
	require.True(t, r.IsErr())
	assert.Equal(t, code.InvalidArgument, r.Err().Code())

	u := adapter.NewUnique(&StubImpl{})
	u.Release()
	r = adapter.Create[ILogger](u, bindUnique, quiet)
	require.True(t, r.IsErr())
	assert.Equal(t, code.InvalidArgument, r.Err().Code())
	d, _ := r.Err().Details()
	assert.Equal(t, "exclusive", d)
}

func TestWeakRef_ValueShape(t *testing.T) {
	h := adapter.MustCreate[ILogger](&StubImpl{}, bindStub, quiet)
	_, ok := adapter.WeakRef[StubImpl](h)
	assert.False(t, ok)

	_, ok = adapter.WeakRef[StubImpl, ILogger](&LoggerImpl{})
	assert.False(t, ok)
}
