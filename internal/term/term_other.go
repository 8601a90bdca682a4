//go:build !linux && !darwin
// +build !linux,!darwin

package term

func isTerminal(fd int) bool { return false }

func width(fd int) int { return 0 }
