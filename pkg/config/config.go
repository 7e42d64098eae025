package config

import (
	"fmt"
	"os"
	"strings"
	"text/template"

	"gopkg.in/yaml.v2"
)

// FromFile renders filePath as a text/template over the environment, expands $VAR
// references and decodes the result as YAML into cfg. Unset template keys render empty.
func FromFile(filePath string, cfg interface{}) error {
	envMap := make(map[string]string)
	for _, envStr := range os.Environ() {
		if key, value, ok := strings.Cut(envStr, "="); ok {
			envMap[key] = value
		}
	}

	t, err := template.ParseFiles(filePath)
	if err != nil {
		return fmt.Errorf("parse config %s: %w", filePath, err)
	}
	strWriter := &strings.Builder{}
	if err := t.Option("missingkey=zero").Execute(strWriter, envMap); err != nil {
		return fmt.Errorf("render config %s: %w", filePath, err)
	}

	content := os.ExpandEnv(strWriter.String())
	if err := yaml.Unmarshal([]byte(content), cfg); err != nil {
		return fmt.Errorf("decode config %s: %w", filePath, err)
	}
	return nil
}
