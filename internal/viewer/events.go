package viewer

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
)

// EventInfo is the slice of a TBA event document the dashboard labels need.
type EventInfo struct {
	Key     string `json:"key"`
	Name    string `json:"name"`
	EndDate string `json:"end_date"`
}

// ReadEventsFile loads an events file downloaded by fetch-events and indexes
// it by event key. Unknown fields in the file are ignored.
func ReadEventsFile(path string) (map[string]EventInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("viewer: read events file: %w", err)
	}
	var events []EventInfo
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("viewer: parse events file: %w", err)
	}
	byKey := make(map[string]EventInfo, len(events))
	for _, e := range events {
		byKey[e.Key] = e
	}
	return byKey, nil
}
