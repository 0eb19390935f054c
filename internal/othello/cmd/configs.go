// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ut-code/othello-revamp/internal/util"
	"github.com/ut-code/othello-revamp/pkg/common"
)

// othello configs
func Configs() *cobra.Command {
	return &cobra.Command{
		Use:   "configs",
		Short: "Lists the named configs and the paused tests",
		Args:  cobra.ExactArgs(0),

		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			sections := []struct {
				title, dir string
			}{
				{"Tournaments", filepath.Join(common.ConfigDirectory, "tour")},
				{"SPRT Tests", filepath.Join(common.ConfigDirectory, "sprt")},
				{"Paused Tests", filepath.Join(common.Directory, "paused", "sprt")},
			}

			found_config := false
			for _, section := range sections {
				names, err := configNames(section.dir)
				if err != nil {
					return err
				}

				if len(names) == 0 {
					continue
				}

				found_config = true
				fmt.Fprintf(out, "\u001B[32m%s\u001B[0m:\n", section.title)
				for _, name := range names {
					fmt.Fprintf(out, "- \x1b[34m%s\x1b[0m\n", name)
				}
				fmt.Fprintln(out)
			}

			if !found_config {
				fmt.Fprintln(out, "\x1b[31mNo Configs Found.\x1b[0m")
			}

			return nil
		},
	}
}

// configNames returns the names of the yaml files in the directory in
// natural order.
func configNames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".yaml") {
			names = append(names, common.Name(entry.Name()))
		}
	}

	slices.SortFunc(names, util.AlphanumCompare)
	return names, nil
}
