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

// Package hash replaces a string field of a record, or the whole string
// payload, with its hex-encoded digest. Useful for pseudonymizing
// identifiers before records leave a trust boundary.
package hash

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"

	"github.com/streamkit/transforms/pkg/record"
)

// Place selects which side of the record is hashed.
type Place int8

const (
	PlaceKey Place = iota
	PlaceValue
)

func (p Place) String() string {
	if p == PlaceKey {
		return "key"
	}
	return "value"
}

// Hash is the hashing transformer. Configuration is immutable after
// construction.
type Hash struct {
	place Place
	conf  config
}

// NewKey builds a transformer hashing the record key.
func NewKey(settings map[string]string) (*Hash, error) {
	return newHash(PlaceKey, settings)
}

// NewValue builds a transformer hashing the record value.
func NewValue(settings map[string]string) (*Hash, error) {
	return newHash(PlaceValue, settings)
}

func newHash(place Place, settings map[string]string) (*Hash, error) {
	conf, err := parseConfig(settings)
	if err != nil {
		return nil, err
	}
	return &Hash{place: place, conf: conf}, nil
}

// Apply returns a copy of the record with the configured side hashed.
// When the skip policy elides a missing value the input record is returned
// as-is.
func (h *Hash) Apply(r *record.Record) (*record.Record, error) {
	schema, value := h.schemaAndValue(r)
	if h.conf.fieldName != "" {
		return h.applyToField(r, schema, value)
	}
	return h.applyToPayload(r, schema, value)
}

func (h *Hash) Close() error {
	return nil
}

func (h *Hash) schemaAndValue(r *record.Record) (*record.Schema, interface{}) {
	if h.place == PlaceKey {
		return r.KeySchema, r.Key
	}
	return r.ValueSchema, r.Value
}

func (h *Hash) applyToField(r *record.Record, schema *record.Schema, value interface{}) (*record.Record, error) {
	fieldName := h.conf.fieldName

	fv, outcome := record.LocateField(schema, value, fieldName)
	switch outcome {
	case record.LookupNilPayload:
		return nil, record.InvalidRecordf("%s can't be null if field name is specified: %s", h.place, r)
	case record.LookupBadPayload:
		return nil, record.InvalidRecordf("%s type must be STRUCT or MAP: %s", h.place, r)
	case record.LookupMissing:
		if h.conf.skipMissingOrNull {
			return r, nil
		}
		return nil, record.InvalidRecordf("%s in %s schema can't be missing: %s", fieldName, h.place, r)
	}

	if fv.Declared != nil && fv.Declared.Type != record.TypeString {
		return nil, record.InvalidRecordf("%s schema type in %s must be STRING: %s", fieldName, h.place, r)
	}

	raw, isString := fv.Value.(string)
	if fv.Value != nil && !isString {
		return nil, record.InvalidRecordf("%s type in %s must be STRING: %s", fieldName, h.place, r)
	}
	if fv.Value == nil || raw == "" {
		if h.conf.skipMissingOrNull {
			return r, nil
		}
		return nil, record.InvalidRecordf("%s in %s can't be null or empty: %s", fieldName, h.place, r)
	}

	hashed := h.digest(raw)
	switch p := value.(type) {
	case *record.Struct:
		return h.withSideValue(r, schema, copyStructWith(p, fieldName, hashed)), nil
	case map[string]interface{}:
		c := make(map[string]interface{}, len(p))
		for k, v := range p {
			c[k] = v
		}
		c[fieldName] = hashed
		return h.withSideValue(r, schema, c), nil
	default:
		// LocateField only reports Found for structs and maps.
		return nil, record.InvalidRecordf("%s type must be STRUCT or MAP: %s", h.place, r)
	}
}

func (h *Hash) applyToPayload(r *record.Record, schema *record.Schema, value interface{}) (*record.Record, error) {
	if schema != nil && schema.Type != record.TypeString {
		return nil, record.InvalidRecordf("%s schema type must be STRING if field name is not specified: %s", h.place, r)
	}
	raw, isString := value.(string)
	if value != nil && !isString {
		return nil, record.InvalidRecordf("%s type must be STRING if field name is not specified: %s", h.place, r)
	}
	if value == nil || raw == "" {
		if h.conf.skipMissingOrNull {
			return r, nil
		}
		return nil, record.InvalidRecordf("%s can't be null or empty: %s", h.place, r)
	}
	return h.withSideValue(r, schema, h.digest(raw)), nil
}

func (h *Hash) withSideValue(r *record.Record, schema *record.Schema, value interface{}) *record.Record {
	if h.place == PlaceKey {
		return r.WithKey(schema, value)
	}
	return r.WithValue(schema, value)
}

func (h *Hash) digest(s string) string {
	switch h.conf.function {
	case SHA1:
		sum := sha1.Sum([]byte(s))
		return hex.EncodeToString(sum[:])
	case SHA256:
		sum := sha256.Sum256([]byte(s))
		return hex.EncodeToString(sum[:])
	default:
		sum := md5.Sum([]byte(s))
		return hex.EncodeToString(sum[:])
	}
}

func copyStructWith(s *record.Struct, name string, value interface{}) *record.Struct {
	c := record.NewStruct(s.Schema())
	for _, f := range s.Schema().Fields {
		if v := s.Get(f.Name); v != nil {
			c.Put(f.Name, v)
		}
	}
	c.Put(name, value)
	return c
}
