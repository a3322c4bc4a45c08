package ledctl

import "strings"

// --- fake board implementing Peripherals ---

type displayCall struct {
	on    bool
	value uint16
}

type fakeBoard struct {
	switches  uint8
	rx        []byte
	tx        strings.Builder
	ledWrites []uint8
	display   []displayCall
	reads     int
}

func (f *fakeBoard) ReadSwitches() uint8 { f.reads++; return f.switches }
func (f *fakeBoard) WriteLEDs(v uint8)   { f.ledWrites = append(f.ledWrites, v) }
func (f *fakeBoard) SendByte(b byte)     { f.tx.WriteByte(b) }
func (f *fakeBoard) SendString(s string) { f.tx.WriteString(s) }
func (f *fakeBoard) SetDisplay(on bool, value uint16) {
	f.display = append(f.display, displayCall{on, value})
}
func (f *fakeBoard) TryReceive() (byte, bool) {
	if len(f.rx) == 0 {
		return 0, false
	}
	b := f.rx[0]
	f.rx = f.rx[1:]
	return b, true
}

// takeTX returns and clears everything sent so far.
func (f *fakeBoard) takeTX() string {
	s := f.tx.String()
	f.tx.Reset()
	return s
}

func (f *fakeBoard) lastDisplay() displayCall {
	if len(f.display) == 0 {
		return displayCall{}
	}
	return f.display[len(f.display)-1]
}

// newStarted returns a controller that has run Start, with the start-up
// output and writes discarded.
func newStarted(period uint32) (*Controller, *fakeBoard) {
	f := &fakeBoard{}
	cfg := DefaultConfig()
	cfg.ShiftPeriod = period
	cfg.LoopDelay = 0
	c := New(f, cfg)
	c.Start()
	f.takeTX()
	f.ledWrites = nil
	f.display = nil
	return c, f
}
