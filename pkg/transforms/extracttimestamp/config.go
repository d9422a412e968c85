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

package extracttimestamp

import "fmt"

const (
	// fieldNameConfig names the field holding the new timestamp. Mandatory.
	fieldNameConfig = "field.name"
	// epochResolutionConfig is the unit of an integer timestamp field,
	// either "seconds" or "milliseconds".
	epochResolutionConfig = "epoch.resolution"
)

// Resolution is the unit an integer timestamp field is expressed in.
type Resolution int8

const (
	Milliseconds Resolution = iota
	Seconds
)

func (r Resolution) String() string {
	if r == Seconds {
		return "seconds"
	}
	return "milliseconds"
}

type config struct {
	fieldName  string
	resolution Resolution
}

func parseConfig(settings map[string]string) (config, error) {
	c := config{fieldName: settings[fieldNameConfig]}
	if c.fieldName == "" {
		return config{}, fmt.Errorf("%q must be specified", fieldNameConfig)
	}
	switch raw := settings[epochResolutionConfig]; raw {
	case "", "milliseconds":
		c.resolution = Milliseconds
	case "seconds":
		c.resolution = Seconds
	default:
		return config{}, fmt.Errorf("invalid %q value %q: must be \"seconds\" or \"milliseconds\"", epochResolutionConfig, raw)
	}
	return c, nil
}
