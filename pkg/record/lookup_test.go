/*
Copyright 2022 The Numaproj Authors.

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

package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocateField(t *testing.T) {
	fieldSchema := NewSchema(TypeInt64)
	structSchema := NewStructSchema(Field{Name: "ts", Schema: fieldSchema})

	t.Run("nil payload", func(t *testing.T) {
		_, outcome := LocateField(structSchema, nil, "ts")
		assert.Equal(t, LookupNilPayload, outcome)
	})

	t.Run("struct field found with declared schema", func(t *testing.T) {
		s := NewStruct(structSchema).Put("ts", int64(1))
		fv, outcome := LocateField(structSchema, s, "ts")
		assert.Equal(t, LookupFound, outcome)
		assert.Equal(t, int64(1), fv.Value)
		assert.Equal(t, fieldSchema, fv.Declared)
	})

	t.Run("struct falls back to its own schema", func(t *testing.T) {
		s := NewStruct(structSchema).Put("ts", int64(1))
		fv, outcome := LocateField(nil, s, "ts")
		assert.Equal(t, LookupFound, outcome)
		assert.Equal(t, fieldSchema, fv.Declared)
	})

	t.Run("struct field missing", func(t *testing.T) {
		s := NewStruct(structSchema)
		_, outcome := LocateField(structSchema, s, "nope")
		assert.Equal(t, LookupMissing, outcome)
	})

	t.Run("struct field present but nil", func(t *testing.T) {
		s := NewStruct(structSchema).Put("ts", nil)
		fv, outcome := LocateField(structSchema, s, "ts")
		assert.Equal(t, LookupFound, outcome)
		assert.Nil(t, fv.Value)
	})

	t.Run("map field has no declared schema", func(t *testing.T) {
		fv, outcome := LocateField(nil, map[string]interface{}{"ts": int64(2)}, "ts")
		assert.Equal(t, LookupFound, outcome)
		assert.Equal(t, int64(2), fv.Value)
		assert.Nil(t, fv.Declared)
	})

	t.Run("map field missing", func(t *testing.T) {
		_, outcome := LocateField(nil, map[string]interface{}{}, "ts")
		assert.Equal(t, LookupMissing, outcome)
	})

	t.Run("scalar payload", func(t *testing.T) {
		_, outcome := LocateField(nil, int8(1), "ts")
		assert.Equal(t, LookupBadPayload, outcome)
	})
}
