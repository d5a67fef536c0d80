// pkg/model/suggestion.go
package model

import (
	"fmt"
	"sort"
	"strings"
)

// SuggestionPriority orders suggested packages, LOW < MEDIUM < HIGH < TOP
type SuggestionPriority int

const (
	PriorityLow    SuggestionPriority = 0
	PriorityMedium SuggestionPriority = 1
	PriorityHigh   SuggestionPriority = 2
	PriorityTop    SuggestionPriority = 3
)

var priorityNames = map[SuggestionPriority]string{
	PriorityLow:    "LOW",
	PriorityMedium: "MEDIUM",
	PriorityHigh:   "HIGH",
	PriorityTop:    "TOP",
}

func (p SuggestionPriority) String() string {
	if name, ok := priorityNames[p]; ok {
		return name
	}
	return fmt.Sprintf("SuggestionPriority(%d)", int(p))
}

// Less reports whether p ranks below other
func (p SuggestionPriority) Less(other SuggestionPriority) bool {
	return p < other
}

// Greater reports whether p ranks above other
func (p SuggestionPriority) Greater(other SuggestionPriority) bool {
	return p > other
}

// ParseSuggestionPriority accepts a priority name (case insensitive) or its numeric value
func ParseSuggestionPriority(s string) (SuggestionPriority, error) {
	s = strings.TrimSpace(s)
	for p, name := range priorityNames {
		if strings.EqualFold(s, name) || s == fmt.Sprint(int(p)) {
			return p, nil
		}
	}
	return PriorityLow, fmt.Errorf("invalid suggestion priority: %q", s)
}

// PackageSuggestion pairs a package with how strongly it is suggested
type PackageSuggestion struct {
	Package  Package
	Priority SuggestionPriority
}

// SortSuggestions orders suggestions from the highest to the lowest priority.
// Suggestions with the same priority keep their relative order.
func SortSuggestions(suggestions []PackageSuggestion) {
	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Priority.Greater(suggestions[j].Priority)
	})
}
