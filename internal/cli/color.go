package cli

import "os"

const (
	ansiReset    = "\x1b[0m"
	ansiBoldCyan = "\x1b[1;36m"
	ansiYellow   = "\x1b[33m"
	ansiRed      = "\x1b[31m"
)

// colorCode returns the ANSI sequence when stderr coloring is enabled,
// otherwise the empty string so callers can interpolate unconditionally.
func colorCode(code string) string {
	if !stderrColor() {
		return ""
	}
	return code
}

func stderrColor() bool {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("CI") != "" {
		return false
	}
	return isTTY(os.Stderr)
}

func isTTY(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
