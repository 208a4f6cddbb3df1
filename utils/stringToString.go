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

package utils

import (
	"fmt"
	"sort"
	"strings"
)

// FormatStringToString formats a map as "k1=v1,k2=v2", keys are sorted
func FormatStringToString(value map[string]string) string {
	keys := make([]string, 0, len(value))
	for k := range value {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	str := ""
	for _, k := range keys {
		if len(str) > 0 {
			str += ","
		}
		str += k + "=" + value[k]
	}
	return str
}

// ParseStringToString parses "KEY=VALUE" assignments, several assignments can be separated by commas.
//
// Values are kept verbatim, the last assignment of a key wins.
func ParseStringToString(str string) (map[string]string, error) {
	value := map[string]string{}
	for _, assignment := range strings.Split(str, ",") {
		assignment = strings.TrimSpace(assignment)
		if assignment == "" {
			continue
		}
		k, v, found := strings.Cut(assignment, "=")
		k = strings.TrimSpace(k)
		if !found || k == "" {
			return nil, fmt.Errorf("Unable to parse \"string to string\" map from [%s], invalid format", str)
		}
		value[k] = strings.TrimSpace(v)
	}

	return value, nil
}
