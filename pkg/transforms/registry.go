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
	"fmt"

	"github.com/streamkit/transforms/pkg/transforms/eventtime"
	"github.com/streamkit/transforms/pkg/transforms/extracttimestamp"
	"github.com/streamkit/transforms/pkg/transforms/extracttopic"
	"github.com/streamkit/transforms/pkg/transforms/filter"
	"github.com/streamkit/transforms/pkg/transforms/hash"
	"github.com/streamkit/transforms/pkg/transforms/tombstone"
)

// New constructs the named transformer from its settings. This is the
// configure step of the host contract: it runs exactly once per instance
// and validates the settings eagerly.
func New(name string, settings map[string]string) (Transformer, error) {
	switch name {
	case "extractTopicFromKey":
		return extracttopic.NewKey(settings)
	case "extractTopicFromValue":
		return extracttopic.NewValue(settings)
	case "extractTimestamp":
		return extracttimestamp.New(settings)
	case "filter":
		return filter.New(settings)
	case "eventTimeExtractor":
		return eventtime.New(settings)
	case "hashKey":
		return hash.NewKey(settings)
	case "hashValue":
		return hash.NewValue(settings)
	case "tombstoneHandler":
		return tombstone.New(settings)
	default:
		return nil, fmt.Errorf("unrecognized transformer %q", name)
	}
}
