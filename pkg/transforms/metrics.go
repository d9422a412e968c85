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

package transforms

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/streamkit/transforms/pkg/record"
)

// appliedCount is used to indicate the number of records applied
var appliedCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Subsystem: "transformer",
	Name:      "applied_total",
	Help:      "Total number of records applied",
}, []string{"transformer"})

// droppedCount is used to indicate the number of records dropped
var droppedCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Subsystem: "transformer",
	Name:      "dropped_total",
	Help:      "Total number of records dropped",
}, []string{"transformer"})

// errorCount is used to indicate the number of failed records
var errorCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Subsystem: "transformer",
	Name:      "error_total",
	Help:      "Total number of record failures",
}, []string{"transformer"})

type instrumented struct {
	name string
	next Transformer
}

// Instrument wraps a transformer with per-record prometheus counters,
// labeled with the given transformer name.
func Instrument(name string, next Transformer) Transformer {
	return &instrumented{name: name, next: next}
}

func (i *instrumented) Apply(r *record.Record) (*record.Record, error) {
	out, err := i.next.Apply(r)
	switch {
	case err != nil:
		errorCount.WithLabelValues(i.name).Inc()
	case out == nil:
		droppedCount.WithLabelValues(i.name).Inc()
	default:
		appliedCount.WithLabelValues(i.name).Inc()
	}
	return out, err
}

func (i *instrumented) Close() error {
	return i.next.Close()
}
