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

// Package filter drops records whose value payload does not satisfy a
// boolean expression, e.g. `int(json(payload).id) < 100`.
package filter

import (
	"fmt"

	"github.com/streamkit/transforms/pkg/record"
	"github.com/streamkit/transforms/pkg/shared/expr"
)

// Filter is the filtering transformer. The expression is immutable after
// construction.
type Filter struct {
	expression string
}

// New builds a filter from its settings. The "expression" option is
// mandatory.
func New(settings map[string]string) (*Filter, error) {
	expression, ok := settings["expression"]
	if !ok {
		return nil, fmt.Errorf(`missing "expression"`)
	}
	return &Filter{expression: expression}, nil
}

// Apply returns the record unchanged when the expression evaluates to true
// and drops it otherwise.
func (f *Filter) Apply(r *record.Record) (*record.Record, error) {
	payload, err := record.ValueBytes(r)
	if err != nil {
		return nil, err
	}
	keep, err := expr.EvalBool(f.expression, payload)
	if err != nil {
		return nil, record.InvalidRecordf("cannot evaluate filter expression: %v: %s", err, r)
	}
	if !keep {
		return nil, nil
	}
	return r, nil
}

func (f *Filter) Close() error {
	return nil
}
