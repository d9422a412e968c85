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

// LookupOutcome classifies the result of locating a field in a payload.
// A found field may still carry a nil value; callers that need to treat
// "missing" and "present but nil" the same collapse the two themselves.
type LookupOutcome int8

const (
	// LookupFound means the field exists in the payload.
	LookupFound LookupOutcome = iota
	// LookupMissing means the payload is a struct or map without the field.
	LookupMissing
	// LookupNilPayload means the payload itself is nil.
	LookupNilPayload
	// LookupBadPayload means the payload is neither a struct nor a map.
	LookupBadPayload
)

// FieldValue is a located field value together with its declared schema.
// Declared is nil for unstructured payloads, where only the runtime type of
// Value is known.
type FieldValue struct {
	Value    interface{}
	Declared *Schema
}

// LocateField looks up the named field in a structured or unstructured
// payload. schema is the payload's declared schema and may be nil; for a
// struct payload whose record carries no side schema the struct's own
// schema is consulted.
func LocateField(schema *Schema, payload interface{}, name string) (FieldValue, LookupOutcome) {
	switch p := payload.(type) {
	case nil:
		return FieldValue{}, LookupNilPayload
	case *Struct:
		if p == nil {
			return FieldValue{}, LookupNilPayload
		}
		sch := schema
		if sch == nil {
			sch = p.Schema()
		}
		field := sch.Field(name)
		if field == nil {
			return FieldValue{}, LookupMissing
		}
		return FieldValue{Value: p.Get(name), Declared: field.Schema}, LookupFound
	case map[string]interface{}:
		if p == nil {
			return FieldValue{}, LookupNilPayload
		}
		v, ok := p[name]
		if !ok {
			return FieldValue{}, LookupMissing
		}
		return FieldValue{Value: v}, LookupFound
	default:
		return FieldValue{}, LookupBadPayload
	}
}
