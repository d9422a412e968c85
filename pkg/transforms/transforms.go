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

// Package transforms wires the individual record transformers together:
// a common Transformer contract, a by-name registry, chaining and
// instrumentation. The host runtime constructs a transformer once from a
// settings map and then calls Apply per record, possibly from many
// goroutines; transformers keep their configuration immutable and hold no
// other state, so no synchronization happens here.
package transforms

import "github.com/streamkit/transforms/pkg/record"

// Transformer transforms one record into another. Apply must not retain or
// mutate its input; it returns a derived record, the input itself when
// nothing changed, or (nil, nil) to drop the record. Every validation
// failure is a record.InvalidRecordError; there is no retry at this layer.
type Transformer interface {
	Apply(r *record.Record) (*record.Record, error)
	Close() error
}
