// Package ansi provides ANSI escape code constants and helpers for terminal output.
// All colored/styled terminal output should reference these constants to avoid duplication.
package ansi

import (
	"fmt"
	"strconv"
	"strings"
)

// ANSI SGR (Select Graphic Rendition) codes.
const (
	Reset   = "\033[0m"
	Bold    = "\033[1m"
	Dim     = "\033[2m"
	Blue    = "\033[34m"
	Yellow  = "\033[33m"
	Green   = "\033[32m"
	Red     = "\033[31m"
	Cyan    = "\033[36m"
	Magenta = "\033[35m"
)

// ANSI cursor and line control codes.
const (
	// ClearLine clears the entire current line.
	ClearLine = "\033[2K"

	// CursorUpFmt is a format string for moving the cursor up N lines.
	// Use with fmt.Sprintf or the CursorUp helper.
	CursorUpFmt = "\033[%dA"

	// TrueColorFmt sets a 24-bit foreground color.
	TrueColorFmt = "\033[38;2;%d;%d;%dm"
)

// CursorUp returns an ANSI escape sequence to move the cursor up n lines.
func CursorUp(n int) string {
	return fmt.Sprintf(CursorUpFmt, n)
}

// Hex returns a 24-bit foreground sequence for a "#RRGGBB" color, or the
// empty string if hex is malformed.
func Hex(hex string) string {
	h := strings.TrimPrefix(hex, "#")
	if len(h) != 6 {
		return ""
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return ""
	}
	return fmt.Sprintf(TrueColorFmt, v>>16&0xff, v>>8&0xff, v&0xff)
}

// Paint wraps s in the color for hex followed by Reset. Malformed colors
// leave s unstyled.
func Paint(hex, s string) string {
	c := Hex(hex)
	if c == "" {
		return s
	}
	return c + s + Reset
}
