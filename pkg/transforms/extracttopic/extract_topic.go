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

// Package extracttopic reroutes a record to the topic named by one of its
// own fields. The field is read from the key or the value side, converted
// to its canonical string form, and a copy of the record with the new topic
// is returned. Missing, null or empty results either fail the record or
// pass it through unchanged, depending on the skip policy.
package extracttopic

import (
	"go.uber.org/zap"

	"github.com/streamkit/transforms/pkg/record"
	"github.com/streamkit/transforms/pkg/shared/logging"
)

// Place selects which side of the record the new topic is extracted from.
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

// ExtractTopic is the topic extraction transformer. Configuration is
// immutable after construction, so one instance may serve concurrent Apply
// calls.
type ExtractTopic struct {
	place Place
	conf  config
	log   *zap.SugaredLogger
}

// NewKey builds a transformer extracting the topic from the record key.
func NewKey(settings map[string]string) (*ExtractTopic, error) {
	return newExtractTopic(PlaceKey, settings)
}

// NewValue builds a transformer extracting the topic from the record value.
func NewValue(settings map[string]string) (*ExtractTopic, error) {
	return newExtractTopic(PlaceValue, settings)
}

func newExtractTopic(place Place, settings map[string]string) (*ExtractTopic, error) {
	conf, err := parseConfig(settings)
	if err != nil {
		return nil, err
	}
	return &ExtractTopic{
		place: place,
		conf:  conf,
		log:   logging.NewLogger().Named("extractTopic").With(zap.String("place", place.String())),
	}, nil
}

// Apply computes the new topic for the record. When the skip policy elides
// a missing result, the input record is returned as-is.
func (t *ExtractTopic) Apply(r *record.Record) (*record.Record, error) {
	schema, value := t.schemaAndValue(r)

	var (
		topic string
		found bool
		err   error
	)
	if t.conf.fieldName != "" {
		topic, found, err = t.topicFromField(r, schema, value)
	} else {
		topic, found, err = t.topicFromPayload(r, schema, value)
	}
	if err != nil {
		return nil, err
	}
	if !found {
		t.log.Debugw("No topic extracted, passing record through", zap.String("topic", r.Topic))
		return r, nil
	}
	return r.WithTopic(topic), nil
}

func (t *ExtractTopic) Close() error {
	return nil
}

func (t *ExtractTopic) schemaAndValue(r *record.Record) (*record.Schema, interface{}) {
	if t.place == PlaceKey {
		return r.KeySchema, r.Key
	}
	return r.ValueSchema, r.Value
}

// topicFromField locates the configured field and converts it to a string.
// The boolean result is false when the skip policy elides the record.
func (t *ExtractTopic) topicFromField(r *record.Record, schema *record.Schema, value interface{}) (string, bool, error) {
	fieldName := t.conf.fieldName

	fv, outcome := record.LocateField(schema, value, fieldName)
	switch outcome {
	case record.LookupNilPayload:
		return "", false, record.InvalidRecordf("%s can't be null if field name is specified: %s", t.place, r)
	case record.LookupBadPayload:
		return "", false, record.InvalidRecordf("%s type must be STRUCT or MAP: %s", t.place, r)
	case record.LookupMissing:
		if t.conf.skipMissingOrNull {
			return "", false, nil
		}
		return "", false, record.InvalidRecordf("%s in %s schema can't be missing: %s", fieldName, t.place, r)
	}

	if fv.Declared != nil {
		if !record.StringConvertible(fv.Declared.Type) {
			return "", false, record.InvalidRecordf("%s schema type in %s must be %s: %s",
				fieldName, t.place, record.TypeList(record.StringConvertibleTypes), r)
		}
	} else if fv.Value != nil {
		// Unstructured payloads carry no declared types; fall back to the
		// runtime type of the located value.
		rt, known := record.RuntimeType(fv.Value)
		if !known || !record.StringConvertible(rt) {
			return "", false, record.InvalidRecordf("%s type in %s must be %s: %s",
				fieldName, t.place, record.TypeList(record.StringConvertibleTypes), r)
		}
	}

	if fv.Value != nil {
		if s := record.FormatValue(fv.Value); s != "" {
			return s, true, nil
		}
	}
	if t.conf.skipMissingOrNull {
		return "", false, nil
	}
	return "", false, record.InvalidRecordf("%s in %s can't be null or empty: %s", fieldName, t.place, r)
}

// topicFromPayload converts the whole payload, which must itself be a
// convertible scalar.
func (t *ExtractTopic) topicFromPayload(r *record.Record, schema *record.Schema, value interface{}) (string, bool, error) {
	declared, known := declaredOrRuntimeType(schema, value)
	if !known || !record.StringConvertible(declared) {
		return "", false, record.InvalidRecordf("%s schema type must be %s if field name is not specified: %s",
			t.place, record.TypeList(record.StringConvertibleTypes), r)
	}

	if value == nil || value == "" {
		if t.conf.skipMissingOrNull {
			return "", false, nil
		}
		return "", false, record.InvalidRecordf("%s can't be null or empty: %s", t.place, r)
	}
	return record.FormatValue(value), true, nil
}

func declaredOrRuntimeType(schema *record.Schema, value interface{}) (record.Type, bool) {
	if schema != nil {
		return schema.Type, true
	}
	return record.RuntimeType(value)
}
