// Package models holds value types shared between the API layer and the
// services that are not tied to a single ent entity.
package models

import "fmt"

// Priority orders pending executions in the dispatch queue.
// Lower values are claimed first.
type Priority int

const (
	PriorityHigh   Priority = 1
	PriorityNormal Priority = 2
	PriorityLow    Priority = 3
)

// ParsePriority maps the wire representation to a Priority.
// An empty string means PriorityNormal.
func ParsePriority(s string) (Priority, error) {
	switch s {
	case "high":
		return PriorityHigh, nil
	case "normal", "":
		return PriorityNormal, nil
	case "low":
		return PriorityLow, nil
	default:
		return 0, fmt.Errorf("unknown priority %q", s)
	}
}

// String returns the wire representation.
func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "high"
	case PriorityLow:
		return "low"
	default:
		return "normal"
	}
}

// LogFilters narrows an execution log listing.
type LogFilters struct {
	Level  string `json:"level,omitempty"`
	Offset int    `json:"offset,omitempty"`
	Limit  int    `json:"limit,omitempty"`
}
