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

// Package eventtime extracts the string representation of an event time
// from the value payload, e.g. with `json(payload).metadata.time`, and
// assigns it as the record timestamp. Extraction failures are not fatal:
// the record passes through with its original timestamp.
package eventtime

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"
	"go.uber.org/zap"

	"github.com/streamkit/transforms/pkg/record"
	"github.com/streamkit/transforms/pkg/shared/expr"
	"github.com/streamkit/transforms/pkg/shared/logging"
)

// Extractor is the event time extraction transformer.
type Extractor struct {
	// expression extracts the event time string from the value payload.
	expression string
	// format is the layout of the extracted string. When empty the layout
	// is detected with dateparse.
	format string
	log    *zap.SugaredLogger
}

// New builds an extractor. The "expression" option is mandatory, "format"
// is optional.
func New(settings map[string]string) (*Extractor, error) {
	expression, ok := settings["expression"]
	if !ok {
		return nil, fmt.Errorf(`missing "expression"`)
	}
	return &Extractor{
		expression: expression,
		format:     settings["format"],
		log:        logging.NewLogger().Named("eventTimeExtractor"),
	}, nil
}

// Apply assigns the extracted event time to the record. If extraction or
// parsing fails the original record is passed on unchanged.
func (e *Extractor) Apply(r *record.Record) (*record.Record, error) {
	eventTime, err := e.extract(r)
	if err != nil {
		e.log.Warnf("Event time extractor got an error: %v, skip updating event time", err)
		return r, nil
	}
	return r.WithTimestamp(eventTime.UnixMilli()), nil
}

func (e *Extractor) Close() error {
	return nil
}

func (e *Extractor) extract(r *record.Record) (time.Time, error) {
	payload, err := record.ValueBytes(r)
	if err != nil {
		return time.Time{}, err
	}
	timeStr, err := expr.EvalStr(e.expression, payload)
	if err != nil {
		return time.Time{}, err
	}
	if e.format != "" {
		return time.Parse(e.format, timeStr)
	}
	return dateparse.ParseIn(timeStr, time.UTC)
}
