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

package constants

const (
	LogLevelKey  = "log_level"
	LogLevelEnv  = "BUNDLECONF_LOG_LEVEL"
	LogLevelDesc = "Minimum logging level (trace, debug, info, warning, error, off)"

	LogFileKey  = "log_file"
	LogFileEnv  = "BUNDLECONF_LOG_FILE"
	LogFileDesc = "Log file name"

	LogFormatKey  = "log_format"
	LogFormatEnv  = "BUNDLECONF_LOG_FORMAT"
	LogFormatDesc = "Log format (text, json), json is the default when a log file is specified"

	RootKey  = "root"
	RootEnv  = "BUNDLECONF_ROOT"
	RootDesc = "Project root directory"

	SettingsKey  = "settings"
	SettingsEnv  = "BUNDLECONF_SETTINGS"
	SettingsDesc = "Project settings file (default is <root>/bundleconf.yaml)"

	EnvKey  = "env"
	EnvDesc = "Environment override as KEY=VALUE, can be repeated or comma separated (e.g. --env NODE_ENV=dev)"

	FormatKey  = "format"
	FormatEnv  = "BUNDLECONF_FORMAT"
	FormatDesc = "Output format (json, yaml)"

	OutKey  = "out"
	OutDesc = "Output file, relative paths are relative to the project root (default is <root>/webpack.client.js)"
)
