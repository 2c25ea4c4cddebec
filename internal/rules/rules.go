package rules

import (
	"fmt"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Category is the severity bucket a classified line lands in.
type Category int

const (
	Critical Category = iota
	Error
	Warning
	Info
)

// Categories lists all categories in priority order, worst first. Matching
// walks this order and stops at the first hit, so a line that could satisfy
// several rules is always assigned its most severe category.
var Categories = [4]Category{Critical, Error, Warning, Info}

func (c Category) String() string {
	switch c {
	case Critical:
		return "critical"
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Info:
		return "info"
	default:
		return "unknown"
	}
}

// Rule detects one severity category and describes how to decorate its lines.
type Rule struct {
	Keywords []string `toml:"keywords"`
	Color    string   `toml:"color"`
	Icon     string   `toml:"icon"`
}

// Matches reports whether any keyword occurs in line, case-insensitively.
// A rule with no keywords never matches.
func (r Rule) Matches(line string) bool {
	if len(r.Keywords) == 0 {
		return false
	}
	lower := strings.ToLower(line)
	for _, kw := range r.Keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// RuleSet holds the four rules that define a classification policy.
// Constructed once at startup and immutable afterwards.
type RuleSet struct {
	Critical Rule `toml:"critical"`
	Error    Rule `toml:"error"`
	Warning  Rule `toml:"warning"`
	Info     Rule `toml:"info"`
}

// Rule returns the rule for the given category.
func (rs RuleSet) Rule(c Category) Rule {
	switch c {
	case Critical:
		return rs.Critical
	case Error:
		return rs.Error
	case Warning:
		return rs.Warning
	default:
		return rs.Info
	}
}

// Parse deserializes a TOML rule document into a RuleSet. All four category
// tables must be present with a keywords list, a color, and an icon; a
// document failing any of that is rejected as a whole. Extra keys are
// ignored for forward compatibility.
func Parse(data []byte) (RuleSet, error) {
	var raw struct {
		Critical *Rule `toml:"critical"`
		Error    *Rule `toml:"error"`
		Warning  *Rule `toml:"warning"`
		Info     *Rule `toml:"info"`
	}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return RuleSet{}, fmt.Errorf("parse rules: %w", err)
	}

	for _, entry := range []struct {
		name string
		rule *Rule
	}{
		{"critical", raw.Critical},
		{"error", raw.Error},
		{"warning", raw.Warning},
		{"info", raw.Info},
	} {
		if entry.rule == nil {
			return RuleSet{}, fmt.Errorf("parse rules: missing [%s] table", entry.name)
		}
		if entry.rule.Keywords == nil {
			return RuleSet{}, fmt.Errorf("parse rules: [%s] has no keywords list", entry.name)
		}
		if strings.TrimSpace(entry.rule.Color) == "" {
			return RuleSet{}, fmt.Errorf("parse rules: [%s] has no color", entry.name)
		}
		if strings.TrimSpace(entry.rule.Icon) == "" {
			return RuleSet{}, fmt.Errorf("parse rules: [%s] has no icon", entry.name)
		}
	}

	return RuleSet{
		Critical: *raw.Critical,
		Error:    *raw.Error,
		Warning:  *raw.Warning,
		Info:     *raw.Info,
	}, nil
}
