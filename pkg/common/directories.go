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

// Package common holds the file system locations shared by the commands
// and the self-play arbiter.
package common

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const FilePermissions = 0755

var (
	// Directory holds the state written by long running commands, like
	// paused SPRT runs.
	Directory = filepath.Join(xdg.DataHome, "othello")

	// ConfigDirectory is searched for tournament and SPRT configs which
	// are referred to by name.
	ConfigDirectory = filepath.Join(xdg.ConfigHome, "othello")
)

// PausedFile returns the file a run of the given kind is saved to.
func PausedFile(kind, name string) string {
	return filepath.Join(Directory, "paused", kind, name+".yaml")
}

// ConfigFile returns the file a named config of the given kind is read from.
func ConfigFile(kind, name string) string {
	return filepath.Join(ConfigDirectory, kind, name+".yaml")
}

// TryMkdir creates the directory along with its parents if it does not
// exist yet.
func TryMkdir(dir string) error {
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return os.MkdirAll(dir, FilePermissions)
	}

	return nil
}

// TryCreate writes the data to the file if it does not exist yet.
func TryCreate(file string, data []byte) error {
	if _, err := os.Stat(file); errors.Is(err, fs.ErrNotExist) {
		if err := TryMkdir(filepath.Dir(file)); err != nil {
			return err
		}

		return os.WriteFile(file, data, FilePermissions)
	}

	return nil
}
