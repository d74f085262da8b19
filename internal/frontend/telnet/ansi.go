// Package telnet provides a line-based Telnet server with ANSI color support.
package telnet

import (
	"fmt"
	"regexp"
	"strings"
)

// ANSI SGR escape codes used by the game's screens.
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"
	Dim   = "\033[2m"

	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
	White  = "\033[37m"

	BrightRed    = "\033[91m"
	BrightGreen  = "\033[92m"
	BrightYellow = "\033[93m"
	BrightCyan   = "\033[96m"
	BrightWhite  = "\033[97m"
)

// Colorize wraps text with the given codes, applied in order, and a reset suffix.
// With no codes text is returned unchanged.
//
// Postcondition: StripANSI(Colorize(text, ...)) == text for text without escapes.
func Colorize(text string, codes ...string) string {
	if len(codes) == 0 {
		return text
	}
	return strings.Join(codes, "") + text + Reset
}

// Colorf formats according to format and wraps the result in color.
func Colorf(color, format string, args ...any) string {
	return Colorize(fmt.Sprintf(format, args...), color)
}

var sgr = regexp.MustCompile("\033\\[[0-9;]*m")

// StripANSI removes every SGR escape sequence, leaving the printable text.
func StripANSI(s string) string {
	return sgr.ReplaceAllString(s, "")
}
