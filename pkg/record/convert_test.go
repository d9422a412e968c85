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
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeList(t *testing.T) {
	assert.Equal(t, "[INT8, INT16, INT32, INT64, FLOAT32, FLOAT64, BOOLEAN, STRING]",
		TypeList(StringConvertibleTypes))
}

func TestStringConvertible(t *testing.T) {
	for _, typ := range StringConvertibleTypes {
		assert.True(t, StringConvertible(typ), typ.String())
	}
	for _, typ := range []Type{TypeBytes, TypeTimestamp, TypeStruct, TypeMap} {
		assert.False(t, StringConvertible(typ), typ.String())
	}
}

func TestRuntimeType(t *testing.T) {
	cases := map[Type]interface{}{
		TypeInt8:      int8(1),
		TypeInt16:     int16(1),
		TypeInt32:     int32(1),
		TypeInt64:     int64(1),
		TypeFloat32:   float32(1),
		TypeFloat64:   float64(1),
		TypeBoolean:   true,
		TypeString:    "s",
		TypeBytes:     []byte("b"),
		TypeTimestamp: time.Now(),
		TypeStruct:    NewStruct(NewStructSchema()),
		TypeMap:       map[string]interface{}{},
	}
	for expected, value := range cases {
		actual, ok := RuntimeType(value)
		assert.True(t, ok)
		assert.Equal(t, expected, actual)
	}

	// Plain int collapses to INT64.
	actual, ok := RuntimeType(42)
	assert.True(t, ok)
	assert.Equal(t, TypeInt64, actual)

	_, ok = RuntimeType(struct{}{})
	assert.False(t, ok)
}

func TestFormatValue(t *testing.T) {
	cases := []struct {
		value    interface{}
		expected string
	}{
		{"text", "text"},
		{true, "true"},
		{false, "false"},
		{int8(-8), "-8"},
		{int16(16), "16"},
		{int32(-32), "-32"},
		{int64(64), "64"},
		{42, "42"},
		{float32(1.5), "1.5"},
		{float64(2.25), "2.25"},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, FormatValue(c.value))
	}
}

func TestValueBytes(t *testing.T) {
	t.Run("bytes pass through", func(t *testing.T) {
		b, err := ValueBytes(New("t", 0, nil, nil, nil, []byte(`{"a":1}`), 0))
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"a":1}`), b)
	})

	t.Run("string converts", func(t *testing.T) {
		b, err := ValueBytes(New("t", 0, nil, nil, nil, `{"a":1}`, 0))
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"a":1}`), b)
	})

	t.Run("map renders as JSON", func(t *testing.T) {
		b, err := ValueBytes(New("t", 0, nil, nil, nil, map[string]interface{}{"a": int64(1)}, 0))
		require.NoError(t, err)
		assert.JSONEq(t, `{"a":1}`, string(b))
	})

	t.Run("struct renders as JSON", func(t *testing.T) {
		schema := NewStructSchema(Field{Name: "a", Schema: NewSchema(TypeInt64)})
		b, err := ValueBytes(New("t", 0, nil, nil, schema, NewStruct(schema).Put("a", int64(1)), 0))
		require.NoError(t, err)
		assert.JSONEq(t, `{"a":1}`, string(b))
	})

	t.Run("nil value fails", func(t *testing.T) {
		r := New("t", 0, nil, nil, nil, nil, 0)
		_, err := ValueBytes(r)
		require.Error(t, err)
		assert.Equal(t, "value can't be null: "+r.String(), err.Error())
	})

	t.Run("scalar value fails", func(t *testing.T) {
		r := New("t", 0, nil, nil, nil, int64(5), 0)
		_, err := ValueBytes(r)
		require.Error(t, err)
		assert.Equal(t, "value type must be STRUCT, MAP, STRING or BYTES: "+r.String(), err.Error())
	})
}
