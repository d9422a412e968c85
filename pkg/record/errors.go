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
	"errors"
	"fmt"
)

// ErrInvalidRecord is the sentinel matched by errors.Is for every data-path
// validation failure raised by a transformer.
var ErrInvalidRecord = errors.New("invalid record")

// InvalidRecordError reports a record that a transformer cannot process.
// The message is deterministic and embeds the offending record, so callers
// can match it exactly. There is no retry at this layer; the host runtime
// decides what to do with the failed record.
type InvalidRecordError struct {
	msg string
}

func (e *InvalidRecordError) Error() string {
	return e.msg
}

func (e *InvalidRecordError) Unwrap() error {
	return ErrInvalidRecord
}

// InvalidRecordf builds an InvalidRecordError with a formatted message.
func InvalidRecordf(format string, args ...interface{}) error {
	return &InvalidRecordError{msg: fmt.Sprintf(format, args...)}
}
