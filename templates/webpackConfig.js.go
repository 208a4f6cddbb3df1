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

const WEBPACK_CONFIG_JS = `// Generated by bundleconf {{ .Version }}, do not edit.
// Mode: {{ .Config.Mode }}
{{- range .Requires }}
const {{ .Binding }} = require({{ jsValue .Package }});
{{- end }}

module.exports = {
    mode: {{ jsValue .Config.Mode }},
    devtool: {{ jsValue .Config.Devtool }},
    devServer: {{ jsValue .Config.DevServer }},

    target: {{ jsValue .Config.Target }},
    entry: {{ jsValue .Config.Entry }},
    output: {{ jsValue .Config.Output }},

    resolve: {
        alias: {{ jsValue .Config.Resolve.Alias }},
        mainFiles: {{ jsValue .Config.Resolve.MainFiles }},
    },

    plugins: [
{{- range .Config.Plugins }}
        new {{ constructor . }}({{ if hasOptions . }}{{ jsValue .Options }}{{ end }}),
{{- end }}
    ],

    module: {
        rules: [
{{- range .Config.Module.Rules }}
            {
                test: {{ jsValue .Test }},
                use: [
{{- range .Use }}
                    { loader: {{ loaderRef . }}{{ if .Options }}, options: {{ jsValue .Options }}{{ end }} },
{{- end }}
                ],
            },
{{- end }}
        ],
    },
};
`
