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

package helper

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
)

// PrettyPrint encodes the given value as indented JSON, html characters are left as is
func PrettyPrint(i interface{}) (string, error) {
	var b bytes.Buffer
	encoder := json.NewEncoder(&b)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "\t")
	if err := encoder.Encode(i); err != nil {
		return "", err
	}
	return b.String(), nil
}

var nonAlphanumeric = regexp.MustCompile(`[^A-Za-z0-9]+`)

// Camelify converts a npm package name to a javascript identifier
// e.g. "@loadable/webpack-plugin" => "loadableWebpackPlugin"
func Camelify(data string) string {
	words := nonAlphanumeric.Split(data, -1)
	var b strings.Builder
	for _, word := range words {
		if word == "" {
			continue
		}
		if b.Len() == 0 {
			b.WriteString(strings.ToLower(word[:1]) + word[1:])
		} else {
			b.WriteString(strings.ToUpper(word[:1]) + word[1:])
		}
	}
	identifier := b.String()
	if identifier == "" || (identifier[0] >= '0' && identifier[0] <= '9') {
		identifier = "_" + identifier
	}
	return identifier
}
