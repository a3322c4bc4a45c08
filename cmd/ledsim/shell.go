package main

import (
	"bufio"
	"io"
	"strconv"

	"github.com/golang/glog"
	"github.com/google/shlex"

	"ledctl-go/errcode"
	"ledctl-go/x/conv"
)

const shellHelp = "commands:\n" +
	"  sw <0-7>          toggle one switch\n" +
	"  switches <value>  set the switch bank (36, 0x24, 0b00100100)\n" +
	"  rx <text>         queue text on the UART receiver\n" +
	"  show              print LEDs, switches and display\n" +
	"  quit\n"

// Board is what the control shell operates on.
type Board interface {
	switchToggler
	SetSwitches(v uint8)
	Inject(p []byte) int
	LEDs() uint8
	Switches() uint8
	Display() (on bool, value uint16)
}

// shell reads commands from in until EOF or quit.
func shell(in io.Reader, out io.Writer, b Board) {
	io.WriteString(out, shellHelp)
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		args, err := shlex.Split(sc.Text())
		if err != nil {
			io.WriteString(out, "error: "+err.Error()+"\n")
			continue
		}
		quit, err := execute(args, out, b)
		if err != nil {
			io.WriteString(out, "error: "+err.Error()+"\n")
		}
		if quit {
			return
		}
	}
	if err := sc.Err(); err != nil {
		glog.Warningf("control shell: %v", err)
	}
}

func execute(args []string, out io.Writer, b Board) (quit bool, err error) {
	if len(args) == 0 {
		return false, nil
	}
	usage := func(msg string) error {
		return &errcode.E{C: errcode.InvalidParams, Op: args[0], Msg: msg}
	}
	switch args[0] {
	case "sw":
		if len(args) != 2 {
			return false, usage("want: sw <0-7>")
		}
		i, err := strconv.Atoi(args[1])
		if err != nil {
			return false, usage("not a switch index: " + args[1])
		}
		return false, b.ToggleSwitch(i)
	case "switches":
		if len(args) != 2 {
			return false, usage("want: switches <value>")
		}
		v, ok := conv.ParseU8(args[1])
		if !ok {
			return false, usage("not an 8-bit value: " + args[1])
		}
		b.SetSwitches(v)
	case "rx":
		if len(args) < 2 {
			return false, usage("want: rx <text>")
		}
		var p []byte
		for i, a := range args[1:] {
			if i > 0 {
				p = append(p, ' ')
			}
			p = append(p, a...)
		}
		if n := b.Inject(p); n < len(p) {
			return false, &errcode.E{C: errcode.Error, Op: "rx", Msg: "receiver full, " + strconv.Itoa(len(p)-n) + " bytes dropped"}
		}
	case "show":
		io.WriteString(out, show(b))
	case "help":
		io.WriteString(out, shellHelp)
	case "quit", "exit":
		return true, nil
	default:
		return false, &errcode.E{C: errcode.Unsupported, Op: args[0], Msg: "unknown command, try help"}
	}
	return false, nil
}

func show(b Board) string {
	var bin [8]byte
	var num [20]byte
	s := "leds     " + string(conv.U8Bin(bin[:], b.LEDs())) + "\n"
	s += "switches " + string(conv.U8Bin(bin[:], b.Switches())) + "\n"
	on, v := b.Display()
	if on {
		s += "display  " + string(conv.Utoa(num[:], uint64(v))) + "\n"
	} else {
		s += "display  off\n"
	}
	return s
}
