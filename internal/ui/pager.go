package ui

import (
	"os/exec"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// pagerDoneMsg reports the pager process result. content is kept so a
// failed launch can fall back to printing the section directly.
type pagerDoneMsg struct {
	err     error
	content string
}

// openPager suspends the TUI and pipes content through the pager command.
func openPager(pagerCmd, content string) tea.Cmd {
	fields := strings.Fields(pagerCmd)
	if len(fields) == 0 {
		fields = []string{"less", "-R"}
	}
	cmd := exec.Command(fields[0], fields[1:]...)
	cmd.Stdin = strings.NewReader(content + "\n")
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return pagerDoneMsg{err: err, content: content}
	})
}
