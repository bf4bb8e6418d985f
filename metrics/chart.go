// Package metrics derives goal progress, monthly insights, and
// chart-ready aggregates from a user's task list. Every function is
// pure: inputs are treated as immutable snapshots, "now" is an explicit
// parameter, and nothing here performs I/O.
package metrics

import "strings"

// ChartPoint is one labeled value for pie/bar charts.
type ChartPoint struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// SeriesPoint is one calendar day of the hours time series.
type SeriesPoint struct {
	Date  string  `json:"date"`
	Hours float64 `json:"hours"`
}

type SkillCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type ProductiveDay struct {
	Weekday   string `json:"weekday"`
	TaskCount int    `json:"task_count"`
}

// Insights is the monthly summary. Every field is optional: an insight
// whose underlying data is empty is nil, never a placeholder.
type Insights struct {
	TopSkill          *SkillCount    `json:"top_skill,omitempty"`
	GrowingSkill      *string        `json:"growing_skill,omitempty"`
	MostProductiveDay *ProductiveDay `json:"most_productive_day,omitempty"`
	DurationTrend     *float64       `json:"duration_trend,omitempty"`
}

// splitSkills tokenizes a comma-separated skills field. Tokens are
// trimmed and empty tokens dropped; no case normalization.
func splitSkills(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}
