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

package hash

import (
	"fmt"
	"strconv"
)

const (
	// fieldNameConfig names the string field to hash. When absent the whole
	// payload is hashed.
	fieldNameConfig = "field.name"
	// functionConfig selects the hash function: md5, sha1 or sha256.
	functionConfig = "function"
	// skipMissingOrNullConfig makes missing, null or empty values pass the
	// record through unchanged instead of failing.
	skipMissingOrNullConfig = "skip.missing.or.null"
)

// Function is a supported hash function.
type Function int8

const (
	MD5 Function = iota
	SHA1
	SHA256
)

func parseFunction(raw string) (Function, error) {
	switch raw {
	case "md5":
		return MD5, nil
	case "sha1":
		return SHA1, nil
	case "sha256":
		return SHA256, nil
	case "":
		return 0, fmt.Errorf("%q must be specified", functionConfig)
	default:
		return 0, fmt.Errorf("invalid %q value %q: must be \"md5\", \"sha1\" or \"sha256\"", functionConfig, raw)
	}
}

type config struct {
	fieldName         string
	function          Function
	skipMissingOrNull bool
}

func parseConfig(settings map[string]string) (config, error) {
	fn, err := parseFunction(settings[functionConfig])
	if err != nil {
		return config{}, err
	}
	c := config{fieldName: settings[fieldNameConfig], function: fn}
	if raw, ok := settings[skipMissingOrNullConfig]; ok && raw != "" {
		skip, err := strconv.ParseBool(raw)
		if err != nil {
			return config{}, fmt.Errorf("invalid %q value %q: %w", skipMissingOrNullConfig, raw, err)
		}
		c.skipMissingOrNull = skip
	}
	return c, nil
}
