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

package extracttopic

import (
	"fmt"
	"strconv"
)

const (
	// fieldNameConfig names the field holding the new topic. When absent the
	// whole payload is used.
	fieldNameConfig = "field.name"
	// skipMissingOrNullConfig makes missing, null or empty extraction results
	// pass the record through unchanged instead of failing.
	skipMissingOrNullConfig = "skip.missing.or.null"
)

type config struct {
	fieldName         string
	skipMissingOrNull bool
}

func parseConfig(settings map[string]string) (config, error) {
	c := config{fieldName: settings[fieldNameConfig]}
	if raw, ok := settings[skipMissingOrNullConfig]; ok && raw != "" {
		skip, err := strconv.ParseBool(raw)
		if err != nil {
			return config{}, fmt.Errorf("invalid %q value %q: %w", skipMissingOrNullConfig, raw, err)
		}
		c.skipMissingOrNull = skip
	}
	return c, nil
}
