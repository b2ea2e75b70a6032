package config

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Render encodes cfg as "yaml" (annotated with field descriptions) or "toml".
func Render(cfg Config, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "yaml", "yml", "":
		var doc yaml.Node
		if err := doc.Encode(cfg); err != nil {
			return nil, fmt.Errorf("encode yaml config: %w", err)
		}
		annotate(&doc, reflect.TypeOf(cfg))
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(&doc); err != nil {
			return nil, fmt.Errorf("encode yaml config: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encode yaml config: %w", err)
		}
		return buf.Bytes(), nil
	case "toml":
		raw, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("encode toml config: %w", err)
		}
		var doc map[string]any
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("encode toml config: %w", err)
		}
		out, err := toml.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("encode toml config: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported config format %q", format)
	}
}

// annotate copies yamlcomment struct tags onto the matching mapping keys.
func annotate(n *yaml.Node, t reflect.Type) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch n.Kind {
	case yaml.DocumentNode:
		for _, c := range n.Content {
			annotate(c, t)
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, val := n.Content[i], n.Content[i+1]
			switch t.Kind() {
			case reflect.Struct:
				f, ok := fieldByYAMLName(t, key.Value)
				if !ok {
					continue
				}
				if c := f.Tag.Get("yamlcomment"); c != "" {
					key.HeadComment = c
				}
				annotate(val, f.Type)
			case reflect.Map:
				annotate(val, t.Elem())
			}
		}
	}
}

func fieldByYAMLName(t reflect.Type, name string) (reflect.StructField, bool) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if tag == "" {
			tag = strings.ToLower(f.Name)
		}
		if tag == name {
			return f, true
		}
	}
	return reflect.StructField{}, false
}
