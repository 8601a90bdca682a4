//go:build darwin
// +build darwin

package term

import "golang.org/x/sys/unix"

// darwin has no TCGETS, TIOCGETA is the equivalent request
func isTerminal(fd int) bool {
	_, err := unix.IoctlGetTermios(fd, unix.TIOCGETA)
	return err == nil
}

func width(fd int) int {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0
	}
	return int(ws.Col)
}
