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

package commands

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/streamkit/transforms/pkg/record"
	"github.com/streamkit/transforms/pkg/shared/logging"
	"github.com/streamkit/transforms/pkg/transforms"
)

// maxRecordSize bounds one NDJSON line read from stdin.
const maxRecordSize = 1024 * 1024 * 16

// NewRunCommand returns the development harness: it builds a transformer
// (or a chain) and applies it to newline-delimited JSON records from stdin,
// writing the transformed records to stdout. It is not the host runtime;
// there is no scheduling, batching or retry.
func NewRunCommand() *cobra.Command {
	var (
		name      string
		settings  map[string]string
		chainFile string
	)

	command := &cobra.Command{
		Use:   "run",
		Short: "Applies a transformer to NDJSON records from stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			if (name == "") == (chainFile == "") {
				cmd.HelpFunc()(cmd, args)
				return fmt.Errorf("exactly one of --name and --chain must be specified")
			}
			var (
				t   transforms.Transformer
				err error
			)
			if chainFile != "" {
				t, err = transforms.ChainFromFile(chainFile)
			} else {
				t, err = transforms.New(name, settings)
			}
			if err != nil {
				return err
			}
			defer func() { _ = t.Close() }()

			log := logging.NewLogger().Named("run")
			log.Infow("Starting transformer", zap.String("name", name), zap.String("chain", chainFile), zap.Any("settings", settings))
			return process(cmd.InOrStdin(), cmd.OutOrStdout(), t, log)
		},
	}
	command.Flags().StringVarP(&name, "name", "n", "", "transformer name")
	command.Flags().StringToStringVarP(&settings, "settings", "s", map[string]string{}, "transformer settings") // --settings=field.name=dest,skip.missing.or.null=true
	command.Flags().StringVar(&chainFile, "chain", "", "path to a YAML file configuring a transformer chain")

	return command
}

func process(in io.Reader, out io.Writer, t transforms.Transformer, log *zap.SugaredLogger) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRecordSize)
	enc := json.NewEncoder(out)

	var applied, dropped int
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		r := new(record.Record)
		if err := json.Unmarshal(line, r); err != nil {
			return fmt.Errorf("malformed input record: %w", err)
		}
		result, err := t.Apply(r)
		if err != nil {
			return err
		}
		if result == nil {
			dropped++
			continue
		}
		if err := enc.Encode(result); err != nil {
			return err
		}
		applied++
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	log.Infow("Finished", zap.Int("applied", applied), zap.Int("dropped", dropped))
	return nil
}
