// Package clipboard writes text to the system clipboard via the usual
// platform helper commands.
package clipboard

import (
	"errors"
	"os/exec"
	"runtime"
	"strings"
)

// ErrUnavailable is returned when no clipboard helper is present.
var ErrUnavailable = errors.New("clipboard unavailable")

// candidates lists helper commands per platform, tried in order.
var candidates = map[string][][]string{
	"darwin": {
		{"pbcopy"},
	},
	"linux": {
		{"wl-copy"},
		{"xclip", "-selection", "clipboard"},
		{"xsel", "--clipboard", "--input"},
	},
}

func command() *exec.Cmd {
	for _, argv := range candidates[runtime.GOOS] {
		if _, err := exec.LookPath(argv[0]); err == nil {
			return exec.Command(argv[0], argv[1:]...)
		}
	}
	return nil
}

// IsAvailable reports whether a clipboard helper is present on this
// system.
func IsAvailable() bool {
	return command() != nil
}

// Copy writes text to the system clipboard. Returns ErrUnavailable when
// no helper command is present.
func Copy(text string) error {
	cmd := command()
	if cmd == nil {
		return ErrUnavailable
	}
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}
