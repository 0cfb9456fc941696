package output

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// JSONFormatter formats output as JSON.
type JSONFormatter struct {
	Indent bool // Whether to pretty-print with indentation
}

// Format marshals data to JSON.
func (f *JSONFormatter) Format(data interface{}) (string, error) {
	var out []byte
	var err error
	if f.Indent {
		out, err = json.MarshalIndent(data, "", "  ")
	} else {
		out, err = json.Marshal(data)
	}
	if err != nil {
		return "", err
	}
	return string(out) + "\n", nil
}

// FormatError marshals a structured error to JSON.
func (f *JSONFormatter) FormatError(err StructuredError) (string, error) {
	return f.Format(err)
}

// FormatTable renders rows as a JSON array of header-keyed objects.
func (f *JSONFormatter) FormatTable(headers []string, rows [][]string) (string, error) {
	return f.Format(records(headers, rows))
}

// YAMLFormatter formats output as YAML.
type YAMLFormatter struct{}

// Format marshals data to YAML.
func (f *YAMLFormatter) Format(data interface{}) (string, error) {
	out, err := yaml.Marshal(data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// FormatError marshals a structured error to YAML.
func (f *YAMLFormatter) FormatError(err StructuredError) (string, error) {
	return f.Format(err)
}

// FormatTable renders rows as a YAML sequence of header-keyed mappings.
func (f *YAMLFormatter) FormatTable(headers []string, rows [][]string) (string, error) {
	return f.Format(records(headers, rows))
}

// records keys each row by header. Short rows are padded with empty strings.
func records(headers []string, rows [][]string) []map[string]string {
	result := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		obj := make(map[string]string, len(headers))
		for i, header := range headers {
			if i < len(row) {
				obj[header] = row[i]
			} else {
				obj[header] = ""
			}
		}
		result = append(result, obj)
	}
	return result
}
