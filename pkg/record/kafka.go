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

	"github.com/IBM/sarama"
)

// FromConsumerMessage converts a consumed Kafka message into a schemaless
// record. Key and value stay raw bytes; a nil key or value stays nil so
// tombstones remain recognizable.
func FromConsumerMessage(m *sarama.ConsumerMessage) *Record {
	r := &Record{
		Topic:     m.Topic,
		Partition: m.Partition,
	}
	if m.Key != nil {
		r.Key = m.Key
	}
	if m.Value != nil {
		r.Value = m.Value
	}
	if !m.Timestamp.IsZero() {
		r.Timestamp = m.Timestamp.UnixMilli()
	}
	for _, h := range m.Headers {
		if h == nil {
			continue
		}
		r.Headers = append(r.Headers, Header{Key: string(h.Key), Value: h.Value})
	}
	return r
}

// ProducerMessage converts the record into a producible Kafka message.
// Bytes and strings pass through, structured and unstructured payloads are
// rendered as JSON, and remaining scalars use their canonical string form.
func (r *Record) ProducerMessage() (*sarama.ProducerMessage, error) {
	key, err := encodePayload(r.Key)
	if err != nil {
		return nil, err
	}
	value, err := encodePayload(r.Value)
	if err != nil {
		return nil, err
	}
	m := &sarama.ProducerMessage{
		Topic:     r.Topic,
		Partition: r.Partition,
		Key:       key,
		Value:     value,
	}
	if r.Timestamp != 0 {
		m.Timestamp = r.Time()
	}
	for _, h := range r.Headers {
		m.Headers = append(m.Headers, sarama.RecordHeader{Key: []byte(h.Key), Value: h.Value})
	}
	return m, nil
}

func encodePayload(v interface{}) (sarama.Encoder, error) {
	switch w := v.(type) {
	case nil:
		return nil, nil
	case []byte:
		return sarama.ByteEncoder(w), nil
	case string:
		return sarama.StringEncoder(w), nil
	case *Struct, map[string]interface{}:
		b, err := json.Marshal(w)
		if err != nil {
			return nil, err
		}
		return sarama.ByteEncoder(b), nil
	default:
		return sarama.StringEncoder(FormatValue(w)), nil
	}
}
