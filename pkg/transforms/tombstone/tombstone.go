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

// Package tombstone decides what happens to records with a null value
// payload: drop them silently, drop them with a warning, or fail.
package tombstone

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/streamkit/transforms/pkg/record"
	"github.com/streamkit/transforms/pkg/shared/logging"
)

const behaviorConfig = "behavior"

// Behavior is the configured reaction to a tombstone record.
type Behavior int8

const (
	DropSilent Behavior = iota
	DropWarn
	Fail
)

// Handler is the tombstone handling transformer.
type Handler struct {
	behavior Behavior
	log      *zap.SugaredLogger
}

// New builds a handler. The "behavior" option defaults to drop_silent.
func New(settings map[string]string) (*Handler, error) {
	var behavior Behavior
	switch raw := settings[behaviorConfig]; raw {
	case "", "drop_silent":
		behavior = DropSilent
	case "drop_warn":
		behavior = DropWarn
	case "fail":
		behavior = Fail
	default:
		return nil, fmt.Errorf("invalid %q value %q: must be \"drop_silent\", \"drop_warn\" or \"fail\"", behaviorConfig, raw)
	}
	return &Handler{
		behavior: behavior,
		log:      logging.NewLogger().Named("tombstoneHandler"),
	}, nil
}

// Apply passes non-tombstone records through unchanged and handles
// tombstones per the configured behavior.
func (h *Handler) Apply(r *record.Record) (*record.Record, error) {
	if r.Value != nil {
		return r, nil
	}
	switch h.behavior {
	case DropWarn:
		h.log.Warnf("Dropping tombstone record: %s", r)
		return nil, nil
	case Fail:
		return nil, record.InvalidRecordf("tombstone record encountered: %s", r)
	default:
		return nil, nil
	}
}

func (h *Handler) Close() error {
	return nil
}
