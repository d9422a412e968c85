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

	"github.com/spf13/viper"
	"go.uber.org/multierr"

	"github.com/streamkit/transforms/pkg/record"
)

// Chain applies transformers in order. A dropped record short-circuits the
// rest of the chain.
type Chain []Transformer

// Apply runs the record through every transformer in order.
func (c Chain) Apply(r *record.Record) (*record.Record, error) {
	for _, t := range c {
		var err error
		r, err = t.Apply(r)
		if err != nil {
			return nil, err
		}
		if r == nil {
			return nil, nil
		}
	}
	return r, nil
}

// Close closes every transformer, collecting errors.
func (c Chain) Close() error {
	var err error
	for _, t := range c {
		err = multierr.Append(err, t.Close())
	}
	return err
}

// ChainSpec is one entry of a chain configuration file.
type ChainSpec struct {
	Name     string            `mapstructure:"name"`
	Settings map[string]string `mapstructure:"settings"`
}

// ChainFromFile builds a chain from a YAML file of the form:
//
//	transforms:
//	  - name: extractTopicFromValue
//	    settings:
//	      field.name: destination
//	  - name: tombstoneHandler
func ChainFromFile(path string) (Chain, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read chain file %s: %w", path, err)
	}
	var specs []ChainSpec
	if err := v.UnmarshalKey("transforms", &specs); err != nil {
		return nil, fmt.Errorf("failed to parse chain file %s: %w", path, err)
	}
	if len(specs) == 0 {
		return nil, fmt.Errorf("chain file %s configures no transforms", path)
	}
	chain := make(Chain, 0, len(specs))
	for _, spec := range specs {
		t, err := New(spec.Name, spec.Settings)
		if err != nil {
			return nil, err
		}
		chain = append(chain, t)
	}
	return chain, nil
}
