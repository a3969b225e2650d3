package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/t4thdd/aid-efrh/pkg/formvalidation"
)

// readSnapshot decodes a YAML or JSON snapshot. Numeric scalars keep their
// literal text, so "phone: 0591234567" stays a ten-digit string and a bare
// 12 is checked by the phone rule like any other input.
func readSnapshot(path string) (formvalidation.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrReadingFile, err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrParsingFile, err)
	}

	switch v := nodeValue(&doc).(type) {
	case nil:
		return formvalidation.Snapshot{}, nil
	case map[string]any:
		return formvalidation.Flatten(v), nil
	default:
		return nil, fmt.Errorf("%w: top level must be a mapping", ErrParsingFile)
	}
}

func nodeValue(n *yaml.Node) any {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil
		}
		return nodeValue(n.Content[0])
	case yaml.AliasNode:
		return nodeValue(n.Alias)
	case yaml.MappingNode:
		m := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			m[n.Content[i].Value] = nodeValue(n.Content[i+1])
		}
		return m
	case yaml.SequenceNode:
		items := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			items = append(items, nodeValue(c))
		}
		return items
	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!null":
			return nil
		case "!!bool":
			var b bool
			if err := n.Decode(&b); err == nil {
				return b
			}
		}
		return n.Value
	default:
		return nil
	}
}
