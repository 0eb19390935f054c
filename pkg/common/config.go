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

package common

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadConfig decodes a yaml config into the value. The config is either a
// path to a file, or the name of a config of the given kind stored in the
// config directory.
func LoadConfig(kind, config string, value any) (string, error) {
	file := config
	if _, err := os.Stat(file); errors.Is(err, fs.ErrNotExist) {
		file = ConfigFile(kind, config)
	}

	data, err := os.ReadFile(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%s %s: no such file or named config", kind, config)
		}

		return "", err
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(value); err != nil {
		return "", fmt.Errorf("%s %s: %w", kind, file, err)
	}

	return file, nil
}

// SaveYAML encodes the value as yaml and writes it to the file, creating
// its directory if needed.
func SaveYAML(file string, value any) error {
	data, err := yaml.Marshal(value)
	if err != nil {
		return err
	}

	if err := TryMkdir(filepath.Dir(file)); err != nil {
		return err
	}

	return os.WriteFile(file, data, FilePermissions)
}

// Name returns the name of a config file without its directory and
// extension.
func Name(file string) string {
	base := filepath.Base(file)
	return base[:len(base)-len(filepath.Ext(base))]
}
