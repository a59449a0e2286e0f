package repl

// ANSI escape codes used by the line shell.
const (
	Reset       = "\033[0m"
	Dim         = "\033[2m"
	Green       = "\033[32m"
	Cyan        = "\033[36m"
	BrightWhite = "\033[97m"
)

// Colorize wraps text with the given ANSI color code and a reset suffix.
// Empty text is returned unchanged.
func Colorize(color, text string) string {
	if text == "" {
		return text
	}
	return color + text + Reset
}
