package board

import (
	"io"
	"sync"

	"ledctl-go/bus"
	"ledctl-go/errcode"
	"ledctl-go/types"
	"ledctl-go/x/bytering"
	"ledctl-go/x/timex"
)

const (
	defaultRxSize = 64
	maxLineLen    = 128
)

// Sim is an in-memory model of the board's register blocks. The firmware
// side uses Load/Store (usually through MMIO); the host side flips
// switches, injects UART bytes and observes outputs. All methods are safe
// for concurrent use.
//
// When attached to a bus connection the simulator publishes retained
// LED/switch/display state and every completed transmit line.
type Sim struct {
	mu sync.Mutex

	leds     uint8
	switches uint8
	fcr, fdr uint32
	txBlock  bool

	rx   *bytering.Ring
	tx   io.Writer
	line []byte
	werr bool

	conn *bus.Connection
}

// NewSim creates a simulator whose UART transmits to tx (nil discards).
// rxSize is rounded up to a power of two; zero selects a small default.
func NewSim(tx io.Writer, rxSize int) *Sim {
	if rxSize <= 0 {
		rxSize = defaultRxSize
	}
	size := 2
	for size < rxSize {
		size <<= 1
	}
	if tx == nil {
		tx = io.Discard
	}
	return &Sim{rx: bytering.New(size), tx: tx}
}

// Attach publishes state changes on conn from now on and seeds the
// retained state.
func (s *Sim) Attach(conn *bus.Connection) {
	s.mu.Lock()
	s.conn = conn
	leds, sw, on, val := s.leds, s.switches, s.fcr == 1, uint16(s.fdr)
	s.mu.Unlock()

	now := timex.NowMs()
	conn.Publish(conn.NewMessage(types.TopicLEDs, types.LEDBank{Bank: leds, TS: now}, true))
	conn.Publish(conn.NewMessage(types.TopicSwitches, types.SwitchBank{Bank: sw, TS: now}, true))
	conn.Publish(conn.NewMessage(types.TopicDisplay, types.Display{On: on, Value: val, TS: now}, true))
}

// ---- firmware side ----

func (s *Sim) Load(addr uint32) uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch addr {
	case BaseGPO:
		return uint32(s.leds)
	case BaseGPI:
		return uint32(s.switches)
	case UARTStatus:
		var st uint32
		if s.rx.Len() > 0 {
			st |= UARTRxReady
		}
		if !s.txBlock {
			st |= UARTTxReady
		}
		return st
	case UARTRxData:
		b, _ := s.rx.ReadByte()
		return uint32(b)
	case FNDControl:
		return s.fcr
	case FNDData:
		return s.fdr
	}
	return 0
}

func (s *Sim) Store(addr uint32, v uint32) {
	var msg *bus.Message
	s.mu.Lock()
	switch addr {
	case BaseGPO:
		s.leds = uint8(v)
		msg = s.msgLocked(types.TopicLEDs, types.LEDBank{Bank: s.leds, TS: timex.NowMs()}, true)
	case UARTTxData:
		msg = s.txLocked(byte(v))
	case FNDControl:
		v &= 1
		if v != s.fcr {
			s.fcr = v
			msg = s.displayMsgLocked()
		}
	case FNDData:
		if v != s.fdr {
			s.fdr = v
			msg = s.displayMsgLocked()
		}
	}
	conn := s.conn
	s.mu.Unlock()

	if msg != nil && conn != nil {
		conn.Publish(msg)
	}
}

func (s *Sim) txLocked(b byte) *bus.Message {
	if _, err := s.tx.Write([]byte{b}); err != nil && !s.werr {
		s.werr = true
		println("[board] uart tx write failed:", err.Error())
	}
	switch b {
	case '\n':
		text := string(s.line)
		s.line = s.line[:0]
		return s.msgLocked(types.TopicUARTLine, types.UARTLine{Text: text, TS: timex.NowMs()}, false)
	case '\r':
	default:
		if len(s.line) < maxLineLen {
			s.line = append(s.line, b)
		}
	}
	return nil
}

func (s *Sim) displayMsgLocked() *bus.Message {
	return s.msgLocked(types.TopicDisplay, types.Display{On: s.fcr == 1, Value: uint16(s.fdr), TS: timex.NowMs()}, true)
}

func (s *Sim) msgLocked(topic bus.Topic, payload any, retained bool) *bus.Message {
	if s.conn == nil {
		return nil
	}
	return s.conn.NewMessage(topic, payload, retained)
}

// ---- host side ----

// SetSwitches replaces the whole switch bank.
func (s *Sim) SetSwitches(v uint8) {
	s.mu.Lock()
	s.switches = v
	conn := s.conn
	s.mu.Unlock()
	if conn != nil {
		conn.Publish(conn.NewMessage(types.TopicSwitches, types.SwitchBank{Bank: v, TS: timex.NowMs()}, true))
	}
}

// ToggleSwitch flips switch i (0..7).
func (s *Sim) ToggleSwitch(i int) error {
	if i < 0 || i > 7 {
		return &errcode.E{C: errcode.InvalidParams, Op: "board.toggle_switch", Msg: "switch index out of range"}
	}
	s.mu.Lock()
	v := s.switches ^ (1 << uint(i))
	s.mu.Unlock()
	s.SetSwitches(v)
	return nil
}

// Inject queues bytes for the UART receiver and returns how many fit.
// The rest are not queued, as with a full hardware FIFO.
func (s *Sim) Inject(p []byte) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rx.Write(p)
}

// SetTxBlocked holds the transmit-ready flag low while true.
func (s *Sim) SetTxBlocked(blocked bool) {
	s.mu.Lock()
	s.txBlock = blocked
	s.mu.Unlock()
}

func (s *Sim) LEDs() uint8 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.leds
}

func (s *Sim) Switches() uint8 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.switches
}

func (s *Sim) Display() (on bool, value uint16) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fcr == 1, uint16(s.fdr)
}
