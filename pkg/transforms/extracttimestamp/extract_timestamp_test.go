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

package extracttimestamp

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamkit/transforms/pkg/record"
)

const testField = "test_field"

func transformation(t *testing.T, settings map[string]string) *ExtractTimestamp {
	t.Helper()
	if settings == nil {
		settings = map[string]string{}
	}
	settings["field.name"] = testField
	tr, err := New(settings)
	require.NoError(t, err)
	return tr
}

func testRecord(valueSchema *record.Schema, value interface{}) *record.Record {
	return record.New("original_topic", 0, nil, nil, valueSchema, value, 456)
}

func TestExtractTimestampConfig(t *testing.T) {
	t.Run("missing field name", func(t *testing.T) {
		_, err := New(map[string]string{})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), `"field.name" must be specified`)
	})

	t.Run("invalid resolution", func(t *testing.T) {
		_, err := New(map[string]string{"field.name": testField, "epoch.resolution": "nanoseconds"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), `"epoch.resolution"`)
	})
}

func TestExtractTimestampInvalidRecords(t *testing.T) {
	t.Run("record not struct or map", func(t *testing.T) {
		r := testRecord(record.NewSchema(record.TypeInt8), int8(123))
		_, err := transformation(t, nil).Apply(r)
		require.Error(t, err)
		assert.True(t, errors.Is(err, record.ErrInvalidRecord))
		assert.Equal(t, fmt.Sprintf("value type must be STRUCT or MAP: %s", r), err.Error())
	})

	t.Run("record struct null", func(t *testing.T) {
		r := testRecord(record.NewStructSchema(), nil)
		_, err := transformation(t, nil).Apply(r)
		require.Error(t, err)
		assert.Equal(t, fmt.Sprintf("value can't be null: %s", r), err.Error())
	})

	t.Run("record map null", func(t *testing.T) {
		r := testRecord(nil, nil)
		_, err := transformation(t, nil).Apply(r)
		require.Error(t, err)
		assert.Equal(t, fmt.Sprintf("value can't be null: %s", r), err.Error())
	})

	t.Run("struct with missing field", func(t *testing.T) {
		schema := record.NewStructSchema(record.Field{Name: testField, Schema: record.NewSchema(record.TypeInt64)})
		r := testRecord(nil, record.NewStruct(schema))
		_, err := transformation(t, nil).Apply(r)
		require.Error(t, err)
		assert.Equal(t, fmt.Sprintf("%s field must be present and its value can't be null: %s", testField, r), err.Error())
	})

	t.Run("map with missing field", func(t *testing.T) {
		r := testRecord(nil, map[string]interface{}{})
		_, err := transformation(t, nil).Apply(r)
		require.Error(t, err)
		assert.Equal(t, fmt.Sprintf("%s field must be present and its value can't be null: %s", testField, r), err.Error())
	})

	t.Run("struct with null field", func(t *testing.T) {
		schema := record.NewStructSchema(record.Field{Name: testField, Schema: &record.Schema{Type: record.TypeInt64, Optional: true}})
		r := testRecord(nil, record.NewStruct(schema).Put(testField, nil))
		_, err := transformation(t, nil).Apply(r)
		require.Error(t, err)
		assert.Equal(t, fmt.Sprintf("%s field must be present and its value can't be null: %s", testField, r), err.Error())
	})

	t.Run("map with null field", func(t *testing.T) {
		r := testRecord(nil, map[string]interface{}{testField: nil})
		_, err := transformation(t, nil).Apply(r)
		require.Error(t, err)
		assert.Equal(t, fmt.Sprintf("%s field must be present and its value can't be null: %s", testField, r), err.Error())
	})

	t.Run("struct with field of incorrect type", func(t *testing.T) {
		schema := record.NewStructSchema(record.Field{Name: testField, Schema: record.NewSchema(record.TypeString)})
		r := testRecord(nil, record.NewStruct(schema).Put(testField, "aaa"))
		_, err := transformation(t, nil).Apply(r)
		require.Error(t, err)
		assert.Equal(t, fmt.Sprintf("%s field must be INT64 or TIMESTAMP: %s", testField, r), err.Error())
	})

	t.Run("map with field of incorrect type", func(t *testing.T) {
		r := testRecord(nil, map[string]interface{}{testField: "aaa"})
		_, err := transformation(t, nil).Apply(r)
		require.Error(t, err)
		assert.Equal(t, fmt.Sprintf("%s field must be INT64 or TIMESTAMP: %s", testField, r), err.Error())
	})
}

func TestExtractTimestampIntField(t *testing.T) {
	t.Run("struct with int field, default resolution", func(t *testing.T) {
		schema := record.NewStructSchema(record.Field{Name: testField, Schema: record.NewSchema(record.TypeInt64)})
		r := testRecord(nil, record.NewStruct(schema).Put(testField, int64(11363151277)))
		out, err := transformation(t, nil).Apply(r)
		require.NoError(t, err)
		assert.Equal(t, int64(11363151277), out.Timestamp)
		assert.Equal(t, r.Topic, out.Topic)
		assert.Equal(t, r.Value, out.Value)
	})

	t.Run("seconds resolution scales to milliseconds", func(t *testing.T) {
		schema := record.NewStructSchema(record.Field{Name: testField, Schema: record.NewSchema(record.TypeInt64)})
		r := testRecord(nil, record.NewStruct(schema).Put(testField, int64(11363151277)))
		out, err := transformation(t, map[string]string{"epoch.resolution": "seconds"}).Apply(r)
		require.NoError(t, err)
		assert.Equal(t, int64(11363151277000), out.Timestamp)
	})

	t.Run("milliseconds resolution keeps the value", func(t *testing.T) {
		r := testRecord(nil, map[string]interface{}{testField: int64(11363151277)})
		out, err := transformation(t, map[string]string{"epoch.resolution": "milliseconds"}).Apply(r)
		require.NoError(t, err)
		assert.Equal(t, int64(11363151277), out.Timestamp)
	})

	t.Run("map with int field per resolution", func(t *testing.T) {
		instant := time.Date(2020, 11, 15, 1, 2, 3, 4, time.UTC)
		for _, resolution := range []string{"seconds", "milliseconds"} {
			epoch := instant.UnixMilli()
			if resolution == "seconds" {
				epoch = instant.Unix()
			}
			r := testRecord(nil, map[string]interface{}{testField: epoch})
			out, err := transformation(t, map[string]string{"epoch.resolution": resolution}).Apply(r)
			require.NoError(t, err)
			assert.Equal(t, instant.UnixMilli(), out.Timestamp, resolution)
		}
	})
}

func TestExtractTimestampNativeField(t *testing.T) {
	// Sub-millisecond precision is truncated.
	instant := time.Date(2020, 11, 15, 1, 2, 3, 4, time.UTC)

	t.Run("struct with timestamp field, either resolution", func(t *testing.T) {
		schema := record.NewStructSchema(record.Field{Name: testField, Schema: record.NewSchema(record.TypeTimestamp)})
		for _, resolution := range []string{"seconds", "milliseconds"} {
			r := testRecord(nil, record.NewStruct(schema).Put(testField, instant))
			out, err := transformation(t, map[string]string{"epoch.resolution": resolution}).Apply(r)
			require.NoError(t, err)
			assert.Equal(t, int64(1605402123000), out.Timestamp, resolution)
		}
	})

	t.Run("map with timestamp field, either resolution", func(t *testing.T) {
		for _, resolution := range []string{"seconds", "milliseconds"} {
			r := testRecord(nil, map[string]interface{}{testField: instant})
			out, err := transformation(t, map[string]string{"epoch.resolution": resolution}).Apply(r)
			require.NoError(t, err)
			assert.Equal(t, int64(1605402123000), out.Timestamp, resolution)
		}
	})
}
