package main

import (
	"os"

	"github.com/golang/glog"
	"golang.org/x/term"

	"ledctl-go/errcode"
)

const (
	keyCtrlA = 0x01
	keyCtrlC = 0x03
)

// switchToggler is the host side of the switch bank.
type switchToggler interface {
	ToggleSwitch(i int) error
}

// rawConsole puts stdin in raw mode when it is a terminal so that single
// keystrokes reach the UART unechoed.
func rawConsole() (restore func(), err error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return func() {}, nil
	}
	old, err := term.MakeRaw(fd)
	if err != nil {
		return nil, errcode.Wrap(errcode.Unsupported, "console.raw", err)
	}
	return func() { _ = term.Restore(fd, old) }, nil
}

// consoleFilter intercepts console escapes before bytes reach the UART.
// Ctrl-C calls quit; Ctrl-A <0-7> toggles a switch, Ctrl-A Ctrl-A sends
// a literal Ctrl-A.
func consoleFilter(sw switchToggler, quit func()) func(b byte) bool {
	escaped := false
	return func(b byte) bool {
		if escaped {
			escaped = false
			switch {
			case b == keyCtrlA:
				return true
			case b >= '0' && b <= '7':
				if err := sw.ToggleSwitch(int(b - '0')); err != nil {
					glog.Warning(err)
				}
			default:
				glog.V(1).Infof("unknown escape %q", b)
			}
			return false
		}
		switch b {
		case keyCtrlA:
			escaped = true
			return false
		case keyCtrlC:
			quit()
			return false
		}
		return true
	}
}
