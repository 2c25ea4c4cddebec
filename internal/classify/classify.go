// Package classify assigns kernel log lines to severity buckets using a
// rule set and produces the decorated display text for matched lines.
package classify

import (
	"github.com/five82/dmsift/internal/format"
	"github.com/five82/dmsift/internal/rules"
)

// Classify tests line against the rule set in severity order, worst first,
// and returns the decorated text and category of the first matching rule.
// ok is false when no rule matches; the line is then untouched.
func Classify(line string, rs rules.RuleSet) (decorated string, category rules.Category, ok bool) {
	for _, c := range rules.Categories {
		rule := rs.Rule(c)
		if rule.Matches(line) {
			return format.Decorate(line, rule.Color, rule.Icon), c, true
		}
	}
	return "", 0, false
}

// Buckets holds the partitioned corpus, one ordered slice per category.
type Buckets struct {
	Critical []string
	Error    []string
	Warning  []string
	Info     []string
}

// Bucket partitions lines in a single pass. Matched lines are appended
// decorated to their category's bucket; unmatched lines keep their original
// text and land in Info. Relative input order is preserved within each
// bucket.
func Bucket(lines []string, rs rules.RuleSet) Buckets {
	var b Buckets
	for _, line := range lines {
		decorated, category, ok := Classify(line, rs)
		if !ok {
			b.Info = append(b.Info, line)
			continue
		}
		switch category {
		case rules.Critical:
			b.Critical = append(b.Critical, decorated)
		case rules.Error:
			b.Error = append(b.Error, decorated)
		case rules.Warning:
			b.Warning = append(b.Warning, decorated)
		default:
			b.Info = append(b.Info, decorated)
		}
	}
	return b
}

// Lines returns the bucket for the given category.
func (b Buckets) Lines(c rules.Category) []string {
	switch c {
	case rules.Critical:
		return b.Critical
	case rules.Error:
		return b.Error
	case rules.Warning:
		return b.Warning
	default:
		return b.Info
	}
}
