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

package templates

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/cogment/bundleconf/api"
)

var jsIdentifierRegex = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// jsString quotes a string as a javascript string literal
func jsString(value string) string {
	var b bytes.Buffer
	encoder := json.NewEncoder(&b)
	encoder.SetEscapeHTML(false)
	_ = encoder.Encode(value)
	return strings.TrimSuffix(b.String(), "\n")
}

func jsKey(key string) string {
	if jsIdentifierRegex.MatchString(key) {
		return key
	}
	return jsString(key)
}

// jsLiteral renders a value as a javascript expression.
//
// api.Require values are rendered as `require(...)` calls, maps as object literals with sorted keys,
// anything else goes through its JSON representation.
func jsLiteral(value interface{}) (string, error) {
	switch v := value.(type) {
	case nil:
		return "null", nil
	case api.Require:
		return fmt.Sprintf("require(%s)", jsString(string(v))), nil
	case api.Pattern:
		return v.String(), nil
	case string:
		return jsString(v), nil
	case bool:
		return strconv.FormatBool(v), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(v), nil
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return "", fmt.Errorf("unsupported map key type %s", rv.Type().Key())
		}
		keys := make([]string, 0, rv.Len())
		for _, key := range rv.MapKeys() {
			keys = append(keys, key.String())
		}
		sort.Strings(keys)
		if len(keys) == 0 {
			return "{}", nil
		}
		entries := make([]string, 0, len(keys))
		for _, key := range keys {
			entry, err := jsLiteral(rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key())).Interface())
			if err != nil {
				return "", err
			}
			entries = append(entries, fmt.Sprintf("%s: %s", jsKey(key), entry))
		}
		return "{ " + strings.Join(entries, ", ") + " }", nil
	case reflect.Slice, reflect.Array:
		items := make([]string, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			item, err := jsLiteral(rv.Index(i).Interface())
			if err != nil {
				return "", err
			}
			items = append(items, item)
		}
		return "[" + strings.Join(items, ", ") + "]", nil
	case reflect.String:
		return jsString(rv.String()), nil
	}

	// Structs and other values are rendered from their JSON representation
	content, err := json.Marshal(value)
	if err != nil {
		return "", err
	}
	var decoded interface{}
	if err := json.Unmarshal(content, &decoded); err != nil {
		return "", err
	}
	return jsLiteral(decoded)
}
