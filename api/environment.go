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
	"strings"
)

// NodeEnvKey is the environment variable selecting the build mode
const NodeEnvKey = "NODE_ENV"

// developmentNodeEnv is the only NODE_ENV value selecting the development mode
const developmentNodeEnv = "dev"

// Environment maps environment variable names to their values.
//
// A nil Environment is valid and behaves as an empty one.
type Environment map[string]string

// EnvironmentFromList builds an Environment from a list of "KEY=VALUE" entries as returned by os.Environ
func EnvironmentFromList(entries []string) Environment {
	env := Environment{}
	for _, entry := range entries {
		key, value, found := strings.Cut(entry, "=")
		if !found || key == "" {
			continue
		}
		env[key] = value
	}
	return env
}

// Lookup retrieves a value, empty values are considered missing
func (e Environment) Lookup(key string) (string, bool) {
	value, ok := e[key]
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// ResolveValue retrieves the value of key, the override wins when it defines a non-empty value
func ResolveValue(override Environment, ambient Environment, key string) string {
	if value, ok := override.Lookup(key); ok {
		return value
	}
	value, _ := ambient.Lookup(key)
	return value
}

// Mode is the build mode of the bundler
type Mode string

const (
	ModeDevelopment Mode = "development"
	ModeProduction  Mode = "production"
)

func (m Mode) IsDevelopment() bool {
	return m == ModeDevelopment
}

func (m Mode) String() string {
	return string(m)
}

// DetectMode computes the build mode.
//
// Either source defining NODE_ENV=dev is enough to select the development mode,
// anything else, including a missing NODE_ENV, selects the production mode.
func DetectMode(override Environment, ambient Environment) Mode {
	if override[NodeEnvKey] == developmentNodeEnv || ambient[NodeEnvKey] == developmentNodeEnv {
		return ModeDevelopment
	}
	return ModeProduction
}
