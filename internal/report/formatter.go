package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tirasundara/mt940-parser/internal/domain"
	"gopkg.in/yaml.v3"
)

// OutputFormatter defines the interface for formatting parsed statements
type OutputFormatter interface {
	Format(statements []*domain.Statement) ([]byte, error)
	FileExtension() string
}

// NewFormatter returns the formatter registered under name
func NewFormatter(name string, prettyPrint bool) (OutputFormatter, error) {
	switch strings.ToLower(name) {
	case "json":
		return NewJSONFormatter(prettyPrint), nil
	case "yaml", "yml":
		return NewYAMLFormatter(), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", name)
	}
}

// JSONFormatter formats statements as JSON. Amounts are rendered as JSON numbers
// when decimal.MarshalJSONWithoutQuotes is set, which the CLI does at startup.
type JSONFormatter struct {
	PrettyPrint bool
}

func NewJSONFormatter(prettyPrint bool) *JSONFormatter {
	return &JSONFormatter{
		PrettyPrint: prettyPrint,
	}
}

// Format implements the OutputFormatter interface for JSON
func (f *JSONFormatter) Format(statements []*domain.Statement) ([]byte, error) {
	if statements == nil {
		statements = []*domain.Statement{}
	}
	if f.PrettyPrint {
		return json.MarshalIndent(statements, "", "  ")
	}
	return json.Marshal(statements)
}

func (f *JSONFormatter) FileExtension() string {
	return "json"
}

// YAMLFormatter formats statements as YAML
type YAMLFormatter struct {
	Indent int
}

func NewYAMLFormatter() *YAMLFormatter {
	return &YAMLFormatter{
		Indent: 2,
	}
}

// Format implements the OutputFormatter interface for YAML
func (f *YAMLFormatter) Format(statements []*domain.Statement) ([]byte, error) {
	if statements == nil {
		statements = []*domain.Statement{}
	}

	var doc yaml.Node
	if err := doc.Encode(statements); err != nil {
		return nil, fmt.Errorf("encoding yaml: %w", err)
	}
	numericAmounts(&doc)

	var sb strings.Builder
	enc := yaml.NewEncoder(&sb)
	enc.SetIndent(f.Indent)
	if err := enc.Encode(&doc); err != nil {
		return nil, fmt.Errorf("encoding yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding yaml: %w", err)
	}
	return []byte(sb.String()), nil
}

func (f *YAMLFormatter) FileExtension() string {
	return "yaml"
}

// numericAmounts retags the "amount" scalars, which decimal renders as quoted text,
// so they are emitted as plain YAML numbers with their exact digits.
func numericAmounts(n *yaml.Node) {
	if n.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, value := n.Content[i], n.Content[i+1]
			if key.Value == "amount" && value.Kind == yaml.ScalarNode {
				value.Style = 0
				value.Tag = "!!int"
				if strings.Contains(value.Value, ".") {
					value.Tag = "!!float"
				}
			}
		}
	}
	for _, child := range n.Content {
		numericAmounts(child)
	}
}
