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
	"encoding/json"
	"fmt"
	"strings"
)

// Struct is a structured payload, a set of values backed by a struct schema.
// Values are looked up by field name. A value that was never put, or was put
// as nil, reads back as nil.
type Struct struct {
	schema *Schema
	values map[string]interface{}
}

// NewStruct returns an empty struct backed by the given schema.
func NewStruct(schema *Schema) *Struct {
	return &Struct{schema: schema, values: make(map[string]interface{})}
}

// Schema returns the backing schema.
func (s *Struct) Schema() *Schema {
	return s.schema
}

// Put sets the value of the named field and returns the struct for chaining.
func (s *Struct) Put(name string, value interface{}) *Struct {
	s.values[name] = value
	return s
}

// Get returns the value of the named field, or nil.
func (s *Struct) Get(name string) interface{} {
	return s.values[name]
}

// String renders the non-nil values in schema field order.
func (s *Struct) String() string {
	var b strings.Builder
	b.WriteString("Struct{")
	first := true
	for _, f := range s.schema.Fields {
		v, ok := s.values[f.Name]
		if !ok || v == nil {
			continue
		}
		if !first {
			b.WriteString(",")
		}
		first = false
		fmt.Fprintf(&b, "%s=%v", f.Name, v)
	}
	b.WriteString("}")
	return b.String()
}

// MarshalJSON renders the struct as a plain JSON object of its values.
func (s *Struct) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.values)
}
