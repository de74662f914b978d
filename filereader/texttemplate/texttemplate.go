package texttemplate

import (
	"bytes"
	"encoding/json"
	"text/template"

	"github.com/Masterminds/sprig"
)

func Parse(name string, raw string, funcs template.FuncMap) (*template.Template, error) {
	extra := template.FuncMap{
		"toJSON": func(v interface{}) (string, error) {
			data, err := json.Marshal(v)
			return string(data), err
		},
	}

	return template.New(name).Funcs(sprig.HermeticTxtFuncMap()).Funcs(extra).Funcs(funcs).Parse(raw)
}

// GetString renders the given template source with data.
func GetString(name string, raw string, data interface{}) (string, error) {
	tmpl, err := Parse(name, raw, nil)
	if err != nil {
		return "", err
	}

	var buff bytes.Buffer
	if err := tmpl.Execute(&buff, data); err != nil {
		return "", err
	}
	return buff.String(), nil
}
