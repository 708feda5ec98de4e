package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// loadProperties reads a YAML properties file. Nested mappings are flattened
// with dots and scalars keep their literal text, so "version: 1.10" stays
// "1.10". Null values are skipped.
func loadProperties(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	properties := make(map[string]string)
	if len(doc.Content) == 0 {
		return properties, nil
	}
	if err := flatten(properties, "", doc.Content[0]); err != nil {
		return nil, err
	}
	return properties, nil
}

func flatten(dst map[string]string, prefix string, node *yaml.Node) error {
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}

	switch node.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i].Value
			if prefix != "" {
				key = prefix + "." + key
			}
			if err := flatten(dst, key, node.Content[i+1]); err != nil {
				return err
			}
		}
		return nil
	case yaml.ScalarNode:
		if prefix == "" {
			return fmt.Errorf("%w: top-level scalar", ErrUnsupportedProperty)
		}
		if node.ShortTag() == "!!null" {
			return nil
		}
		dst[prefix] = node.Value
		return nil
	default:
		return fmt.Errorf("%w: %s at line %d", ErrUnsupportedProperty, prefix, node.Line)
	}
}
