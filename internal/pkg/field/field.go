// Package field loads the field-markings file drawn under the robot paths.
package field

import (
	"encoding/json"
	"fmt"
	"os"
)

// Line is one polyline of field markings. Class selects its color.
type Line struct {
	Class string    `json:"class"`
	X     []float64 `json:"x"`
	Y     []float64 `json:"y"`
}

// Field holds the markings of one season's playing field.
type Field struct {
	Lines  []Line            `json:"lines"`
	Colors map[string]string `json:"colors"`
}

// Read loads a field file.
func Read(path string) (*Field, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("field: read file: %w", err)
	}
	var f Field
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("field: parse file: %w", err)
	}
	return &f, nil
}

// Color returns the CSS color for a line class, falling back to gray for
// classes the file does not name.
func (f *Field) Color(class string) string {
	if c, ok := f.Colors[class]; ok {
		return c
	}
	return "gray"
}
