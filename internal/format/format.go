// Package format renders matched log lines for display.
package format

import (
	"strings"

	"github.com/fatih/color"
)

var palette = map[string]*color.Color{
	"red":      color.New(color.FgRed),
	"bold red": color.New(color.FgRed, color.Bold),
	"green":    color.New(color.FgGreen),
	"yellow":   color.New(color.FgYellow),
	"blue":     color.New(color.FgBlue),
	"magenta":  color.New(color.FgMagenta),
	"cyan":     color.New(color.FgCyan),
	"white":    color.New(color.FgWhite),
	"black":    color.New(color.FgBlack),
}

// Decorate prepends icon to line and styles the line with the named color.
// An unrecognized color name is not an error; the line is left unstyled.
func Decorate(line, colorName, icon string) string {
	styled := line
	if c, ok := palette[normalize(colorName)]; ok {
		styled = c.Sprint(line)
	}
	return icon + " " + styled
}

func normalize(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.ReplaceAll(name, "-", " ")
}
