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
	"bytes"
	"encoding/json"
)

// recordJSON is the schemaless wire form used by the CLI harness. Structured
// payloads flatten to plain JSON objects; schemas do not survive a round trip.
type recordJSON struct {
	Topic     string            `json:"topic"`
	Partition int32             `json:"partition,omitempty"`
	Key       interface{}       `json:"key,omitempty"`
	Value     interface{}       `json:"value"`
	Timestamp int64             `json:"timestamp,omitempty"`
	Headers   map[string]string `json:"headers,omitempty"`
}

// MarshalJSON renders the record in its schemaless wire form.
func (r *Record) MarshalJSON() ([]byte, error) {
	aux := recordJSON{
		Topic:     r.Topic,
		Partition: r.Partition,
		Key:       r.Key,
		Value:     r.Value,
		Timestamp: r.Timestamp,
	}
	if len(r.Headers) > 0 {
		aux.Headers = make(map[string]string, len(r.Headers))
		for _, h := range r.Headers {
			aux.Headers[h.Key] = string(h.Value)
		}
	}
	return json.Marshal(aux)
}

// UnmarshalJSON parses the schemaless wire form. JSON numbers decode to
// int64 when integral, float64 otherwise, so integer timestamp fields keep
// their exact value.
func (r *Record) UnmarshalJSON(data []byte) error {
	var aux recordJSON
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&aux); err != nil {
		return err
	}
	*r = Record{
		Topic:     aux.Topic,
		Partition: aux.Partition,
		Key:       normalizeJSON(aux.Key),
		Value:     normalizeJSON(aux.Value),
		Timestamp: aux.Timestamp,
	}
	for k, v := range aux.Headers {
		r.Headers = append(r.Headers, Header{Key: k, Value: []byte(v)})
	}
	return nil
}

func normalizeJSON(v interface{}) interface{} {
	switch w := v.(type) {
	case json.Number:
		if i, err := w.Int64(); err == nil {
			return i
		}
		f, _ := w.Float64()
		return f
	case map[string]interface{}:
		for k, x := range w {
			w[k] = normalizeJSON(x)
		}
		return w
	case []interface{}:
		for i, x := range w {
			w[i] = normalizeJSON(x)
		}
		return w
	default:
		return v
	}
}
