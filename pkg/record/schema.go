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

// Type is the declared semantic type of a schema.
type Type int8

const (
	TypeInt8 Type = iota
	TypeInt16
	TypeInt32
	TypeInt64
	TypeFloat32
	TypeFloat64
	TypeBoolean
	TypeString
	TypeBytes
	TypeTimestamp
	TypeStruct
	TypeMap
)

func (t Type) String() string {
	switch t {
	case TypeInt8:
		return "INT8"
	case TypeInt16:
		return "INT16"
	case TypeInt32:
		return "INT32"
	case TypeInt64:
		return "INT64"
	case TypeFloat32:
		return "FLOAT32"
	case TypeFloat64:
		return "FLOAT64"
	case TypeBoolean:
		return "BOOLEAN"
	case TypeString:
		return "STRING"
	case TypeBytes:
		return "BYTES"
	case TypeTimestamp:
		return "TIMESTAMP"
	case TypeStruct:
		return "STRUCT"
	case TypeMap:
		return "MAP"
	default:
		return "UNKNOWN"
	}
}

// Schema describes the declared shape of a payload or of a single field.
// Only structured payloads carry per-field schemas; unstructured map payloads
// have no declared types at all.
type Schema struct {
	Type     Type
	Optional bool
	// Fields is set only when Type is TypeStruct. Order is preserved.
	Fields []Field
}

// Field is a named, typed slot within a struct schema.
type Field struct {
	Name   string
	Schema *Schema
}

// NewSchema returns a schema of the given type.
func NewSchema(t Type) *Schema {
	return &Schema{Type: t}
}

// NewStructSchema returns a struct schema with the given fields.
func NewStructSchema(fields ...Field) *Schema {
	return &Schema{Type: TypeStruct, Fields: fields}
}

// Field returns the field descriptor with the given name, or nil if the
// schema has no such field or is not a struct schema.
func (s *Schema) Field(name string) *Field {
	if s == nil {
		return nil
	}
	for i := range s.Fields {
		if s.Fields[i].Name == name {
			return &s.Fields[i]
		}
	}
	return nil
}
