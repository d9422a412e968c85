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

// Package record defines the message unit flowing through the transformers:
// a record with key and value payloads, their optional declared schemas,
// topic routing metadata, a timestamp and opaque headers. Records are
// treated as immutable; transformers derive new records with WithTopic,
// WithTimestamp, WithKey or WithValue and never write through to the input.
package record

import (
	"fmt"
	"time"
)

// Header is one opaque header entry carried along with a record.
type Header struct {
	Key   string
	Value []byte
}

// Record is one message unit. Key and Value each hold either a *Struct
// (structured), a map[string]interface{} (unstructured), a bare scalar,
// raw bytes, or nil. The matching schema fields may be nil when no schema
// is declared. Timestamp is epoch milliseconds.
type Record struct {
	Topic       string
	Partition   int32
	KeySchema   *Schema
	Key         interface{}
	ValueSchema *Schema
	Value       interface{}
	Timestamp   int64
	Headers     []Header
}

// New builds a record. Headers may be nil.
func New(topic string, partition int32, keySchema *Schema, key interface{}, valueSchema *Schema, value interface{}, timestamp int64) *Record {
	return &Record{
		Topic:       topic,
		Partition:   partition,
		KeySchema:   keySchema,
		Key:         key,
		ValueSchema: valueSchema,
		Value:       value,
		Timestamp:   timestamp,
	}
}

// WithTopic returns a copy of the record with only the topic replaced.
func (r *Record) WithTopic(topic string) *Record {
	c := *r
	c.Topic = topic
	return &c
}

// WithTimestamp returns a copy of the record with only the timestamp replaced.
func (r *Record) WithTimestamp(timestamp int64) *Record {
	c := *r
	c.Timestamp = timestamp
	return &c
}

// WithKey returns a copy of the record with the key side replaced.
func (r *Record) WithKey(schema *Schema, key interface{}) *Record {
	c := *r
	c.KeySchema = schema
	c.Key = key
	return &c
}

// WithValue returns a copy of the record with the value side replaced.
func (r *Record) WithValue(schema *Schema, value interface{}) *Record {
	c := *r
	c.ValueSchema = schema
	c.Value = value
	return &c
}

// Time returns the timestamp as a time.Time in UTC.
func (r *Record) Time() time.Time {
	return time.UnixMilli(r.Timestamp).UTC()
}

// String is the deterministic representation embedded in error messages.
// Map values render in sorted key order, so the output is stable.
func (r *Record) String() string {
	return fmt.Sprintf("Record{topic=%s, partition=%d, key=%v, value=%v, timestamp=%d}",
		r.Topic, r.Partition, r.Key, r.Value, r.Timestamp)
}
