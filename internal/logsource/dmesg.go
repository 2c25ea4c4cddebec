package logsource

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// ReadDmesg runs the dmesg command and captures its output as lines. A spawn
// failure or non-zero exit is fatal to the run; stderr is folded into the
// error so the operator sees why dmesg refused.
func ReadDmesg(ctx context.Context, maxLines int) ([]string, error) {
	cmd := exec.CommandContext(ctx, "dmesg")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("dmesg: %s: %w", msg, err)
		}
		return nil, fmt.Errorf("dmesg: %w", err)
	}

	lines, err := readLines(&stdout, maxLines)
	if err != nil {
		return nil, fmt.Errorf("read dmesg output: %w", err)
	}
	return lines, nil
}
