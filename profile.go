package microicon

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// ErrUnknownProfile is returned by ParseProfile for unrecognized names
var ErrUnknownProfile = errors.New("unknown color profile")

// ParseProfile maps a profile name to a termenv color profile
func ParseProfile(name string) (termenv.Profile, error) {
	switch strings.ToLower(name) {
	case "truecolor", "24bit":
		return termenv.TrueColor, nil
	case "256", "ansi256":
		return termenv.ANSI256, nil
	case "16", "ansi":
		return termenv.ANSI, nil
	case "ascii", "none":
		return termenv.Ascii, nil
	default:
		return termenv.Ascii, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
	}
}

// DetectProfile picks the richest color profile the current terminal is
// known to support, using environment variables only. Output that is not a
// terminal always gets Ascii.
func DetectProfile(isTerminal bool) termenv.Profile {
	return detectProfile(os.Getenv, isTerminal)
}

func detectProfile(getenv func(string) string, isTerminal bool) termenv.Profile {
	if !isTerminal || getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}

	termName := strings.ToLower(getenv("TERM"))
	termProgram := getenv("TERM_PROGRAM")
	colorTerm := strings.ToLower(getenv("COLORTERM"))

	// True color support detection (24-bit color)
	switch {
	case colorTerm == "truecolor" || colorTerm == "24bit":
		return termenv.TrueColor
	case strings.Contains(termName, "truecolor"), strings.Contains(termName, "24bit"):
		return termenv.TrueColor
	case strings.Contains(termName, "kitty"), getenv("KITTY_WINDOW_ID") != "":
		return termenv.TrueColor
	case termProgram == "iTerm.app", termProgram == "WezTerm", termProgram == "ghostty", termProgram == "vscode":
		return termenv.TrueColor
	}

	switch {
	case termName == "dumb":
		return termenv.Ascii
	case strings.Contains(termName, "256color"):
		return termenv.ANSI256
	case termProgram == "Apple_Terminal":
		return termenv.ANSI256
	case strings.HasPrefix(termName, "screen"), strings.HasPrefix(termName, "tmux"):
		// Multiplexers pass 256 colors through reliably
		return termenv.ANSI256
	default:
		return termenv.ANSI
	}
}
