// Copyright 2023 AI Redefined Inc. <dev+cogment@ai-r.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hashicorp/go-envparse"
	"github.com/spf13/afero"
)

// DefinePrefix is prepended to every dotenv key to build the define substitution key
const DefinePrefix = "process.env."

// ConfigurationLoadError is returned when the dotenv file can't be read or parsed
type ConfigurationLoadError struct {
	Path string
	Err  error
}

func (e *ConfigurationLoadError) Error() string {
	return fmt.Sprintf("unable to load environment file %q: %v", e.Path, e.Err)
}

func (e *ConfigurationLoadError) Unwrap() error {
	return e.Err
}

// LoadDotEnv reads and parses the dotenv file at the given path.
//
// Values are taken verbatim, `$NAME` and `${NAME}` references are not expanded.
func LoadDotEnv(fs afero.Fs, path string) (map[string]string, error) {
	file, err := fs.Open(path)
	if err != nil {
		return nil, &ConfigurationLoadError{Path: path, Err: err}
	}
	defer file.Close()

	values, err := envparse.Parse(file)
	if err != nil {
		return nil, &ConfigurationLoadError{Path: path, Err: err}
	}

	return values, nil
}

// ProjectDefines converts dotenv values to define substitutions.
//
// `KEY=value` becomes `process.env.KEY` => `"value"`, the value being the JSON encoding
// of the string so that it is substituted as a string literal in the bundled code.
func ProjectDefines(values map[string]string) map[string]string {
	defines := make(map[string]string, len(values))
	for key, value := range values {
		defines[DefinePrefix+key] = jsonString(value)
	}
	return defines
}

// jsonString encodes a string the way JSON.stringify does, html characters are left as is
func jsonString(value string) string {
	var b bytes.Buffer
	encoder := json.NewEncoder(&b)
	encoder.SetEscapeHTML(false)
	// Encoding a string can't fail
	_ = encoder.Encode(value)
	return strings.TrimSuffix(b.String(), "\n")
}
