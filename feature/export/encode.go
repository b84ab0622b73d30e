package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"nbcli/core/apperr"
	"nbcli/core/render"

	"gopkg.in/yaml.v3"
)

// Format is an export encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates an export format name.
func ParseFormat(raw string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(raw))); f {
	case FormatCSV, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", apperr.UserInput("unsupported export format %q (csv, json, yaml)", raw)
	}
}

// Extension returns the file extension for the format.
func (f Format) Extension() string {
	return string(f)
}

// ContentType returns the MIME type for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatJSON:
		return "application/json"
	case FormatYAML:
		return "application/yaml"
	default:
		return "text/csv"
	}
}

// Encode writes table to w. CSV keeps the column titles as its header row;
// JSON and YAML emit one object per row keyed by FieldName of each column.
func Encode(w io.Writer, format Format, table *render.Table) error {
	switch format {
	case FormatCSV:
		return encodeCSV(w, table)
	case FormatJSON:
		return encodeJSON(w, table)
	case FormatYAML:
		return encodeYAML(w, table)
	default:
		return apperr.UserInput("unsupported export format %q", format)
	}
}

// FieldName converts a column title to a field key ("ASSET TAG" -> "asset_tag").
func FieldName(header string) string {
	return strings.NewReplacer(" ", "_", "-", "_").Replace(strings.ToLower(strings.TrimSpace(header)))
}

func encodeCSV(w io.Writer, table *render.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(table.Headers()); err != nil {
		return err
	}
	if err := cw.WriteAll(table.Rows); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}

func encodeJSON(w io.Writer, table *render.Table) error {
	keys := fieldNames(table)
	rows := make([]map[string]string, 0, len(table.Rows))
	for _, row := range table.Rows {
		obj := make(map[string]string, len(keys))
		for i, key := range keys {
			obj[key] = row[i]
		}
		rows = append(rows, obj)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

// encodeYAML builds the document node by node so keys keep column order.
func encodeYAML(w io.Writer, table *render.Table) error {
	keys := fieldNames(table)
	doc := &yaml.Node{Kind: yaml.SequenceNode}
	for _, row := range table.Rows {
		item := &yaml.Node{Kind: yaml.MappingNode}
		for i, key := range keys {
			item.Content = append(item.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: row[i]},
			)
		}
		doc.Content = append(doc.Content, item)
	}
	if len(doc.Content) == 0 {
		doc.Style = yaml.FlowStyle
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to write yaml: %w", err)
	}
	return enc.Close()
}

func fieldNames(table *render.Table) []string {
	keys := make([]string, len(table.Columns))
	for i, c := range table.Columns {
		keys[i] = FieldName(c.Header)
	}
	return keys
}
