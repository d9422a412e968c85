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

// Package extracttimestamp replaces a record's timestamp with the value of
// a field of its value payload. The field must hold either an integer epoch
// in the configured resolution or a native timestamp; anything else fails
// the record. There is no skip policy: the field must be present and
// non-null.
package extracttimestamp

import (
	"time"

	"github.com/streamkit/transforms/pkg/record"
)

// keyOrValue is fixed: only value-side extraction is supported.
const keyOrValue = "value"

// ExtractTimestamp is the timestamp extraction transformer. Configuration
// is immutable after construction, so one instance may serve concurrent
// Apply calls.
type ExtractTimestamp struct {
	conf config
}

// New builds the transformer. The field name option is mandatory.
func New(settings map[string]string) (*ExtractTimestamp, error) {
	conf, err := parseConfig(settings)
	if err != nil {
		return nil, err
	}
	return &ExtractTimestamp{conf: conf}, nil
}

// Apply returns a copy of the record with the timestamp replaced by the
// epoch milliseconds extracted from the configured field.
func (t *ExtractTimestamp) Apply(r *record.Record) (*record.Record, error) {
	fv, outcome := record.LocateField(r.ValueSchema, r.Value, t.conf.fieldName)
	switch outcome {
	case record.LookupNilPayload:
		return nil, record.InvalidRecordf("%s can't be null: %s", keyOrValue, r)
	case record.LookupBadPayload:
		return nil, record.InvalidRecordf("%s type must be STRUCT or MAP: %s", keyOrValue, r)
	}
	if outcome == record.LookupMissing || fv.Value == nil {
		return nil, record.InvalidRecordf("%s field must be present and its value can't be null: %s",
			t.conf.fieldName, r)
	}

	millis, err := t.toEpochMillis(r, fv)
	if err != nil {
		return nil, err
	}
	return r.WithTimestamp(millis), nil
}

func (t *ExtractTimestamp) Close() error {
	return nil
}

// toEpochMillis converts the located field value. A declared TIMESTAMP
// field converts directly, ignoring the resolution; an integer field is
// interpreted in the configured resolution. For unstructured payloads the
// runtime type decides.
func (t *ExtractTimestamp) toEpochMillis(r *record.Record, fv record.FieldValue) (int64, error) {
	if fv.Declared != nil {
		switch fv.Declared.Type {
		case record.TypeTimestamp:
			switch v := fv.Value.(type) {
			case time.Time:
				return v.UnixMilli(), nil
			case int64:
				return v, nil
			case int:
				return int64(v), nil
			default:
				return 0, t.typeError(r)
			}
		case record.TypeInt64:
		default:
			return 0, t.typeError(r)
		}
	}
	switch v := fv.Value.(type) {
	case time.Time:
		return v.UnixMilli(), nil
	case int64:
		return t.scale(v), nil
	case int:
		return t.scale(int64(v)), nil
	default:
		return 0, t.typeError(r)
	}
}

func (t *ExtractTimestamp) scale(epoch int64) int64 {
	if t.conf.resolution == Seconds {
		return epoch * 1000
	}
	return epoch
}

func (t *ExtractTimestamp) typeError(r *record.Record) error {
	return record.InvalidRecordf("%s field must be INT64 or TIMESTAMP: %s", t.conf.fieldName, r)
}
