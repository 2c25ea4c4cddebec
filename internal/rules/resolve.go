package rules

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

//go:embed default_rules.toml
var defaultRules []byte

// EmbeddedSource is the descriptor returned when resolution falls all the
// way through to the built-in rule set.
const EmbeddedSource = "embedded"

const (
	configSubdir  = "dmsift"
	rulesFileName = "rules.toml"
	systemRules   = "/etc/dmsift/rules.toml"
)

// Resolve locates and parses the active rule set. Candidate sources are
// tried in strict priority order: the explicit path (when given), the
// per-user config directory, the system-wide path, and finally the embedded
// default. A candidate that is missing, unreadable, or malformed is logged
// as a warning and skipped, so an explicit path never falls back silently.
// The returned descriptor names the source that actually supplied the rules.
func Resolve(explicitPath string, logger *zap.Logger) (RuleSet, string, error) {
	for _, candidate := range candidatePaths(explicitPath, logger) {
		data, err := os.ReadFile(candidate)
		if err != nil {
			logger.Warn("rules source unavailable",
				zap.String("path", candidate),
				zap.Error(err))
			continue
		}
		rs, err := Parse(data)
		if err != nil {
			logger.Warn("rules source malformed",
				zap.String("path", candidate),
				zap.Error(err))
			continue
		}
		return rs, candidate, nil
	}

	rs, err := Parse(defaultRules)
	if err != nil {
		// The embedded document ships with the binary; failing to parse it
		// is a defect, not a user error, and there is nothing to fall back to.
		return RuleSet{}, "", fmt.Errorf("embedded default rules are broken: %w", err)
	}
	return rs, EmbeddedSource, nil
}

func candidatePaths(explicitPath string, logger *zap.Logger) []string {
	var paths []string
	if explicitPath != "" {
		paths = append(paths, explicitPath)
	}
	if base, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(base, configSubdir, rulesFileName))
	} else {
		logger.Warn("user config dir unavailable", zap.Error(err))
	}
	return append(paths, systemRules)
}
