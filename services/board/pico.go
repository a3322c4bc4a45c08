//go:build rp2040

package board

import (
	"machine"

	"ledctl-go/errcode"
	"ledctl-go/services/board/setups"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
	"tinygo.org/x/drivers/tm1637"
)

// Pico drives the LED/switch/UART/FND peripherals from RP2040 GPIOs.
type Pico struct {
	leds     [8]machine.Pin
	switches [8]machine.Pin
	uart     *uartx.UART
	rx       [1]byte
	tx       [1]byte

	fnd      tm1637.Device
	hasFND   bool
	fndKnown bool
	fndOn    bool
	fndValue uint16
}

// NewPico configures every pin in plan and returns the board.
func NewPico(plan setups.Plan) (*Pico, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	p := &Pico{}

	for i, n := range plan.LEDs {
		p.leds[i] = machine.Pin(n)
		p.leds[i].Configure(machine.PinConfig{Mode: machine.PinOutput})
		p.leds[i].Low()
	}
	for i, n := range plan.Switches {
		p.switches[i] = machine.Pin(n)
		p.switches[i].Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	}

	switch plan.UART.ID {
	case "uart0":
		p.uart = uartx.UART0
	case "uart1":
		p.uart = uartx.UART1
	default:
		return nil, errcode.UnknownBus
	}
	if err := p.uart.Configure(uartx.UARTConfig{
		BaudRate: plan.UART.Baud,
		TX:       machine.Pin(plan.UART.TX),
		RX:       machine.Pin(plan.UART.RX),
	}); err != nil {
		return nil, errcode.Wrap(errcode.Error, "board.uart", err)
	}

	if plan.FND.Present {
		p.fnd = tm1637.New(machine.Pin(plan.FND.CLK), machine.Pin(plan.FND.DIO), plan.FND.Brightness)
		p.fnd.Configure()
		p.fnd.ClearDisplay()
		p.hasFND = true
	}
	println("[board] pico ready:", plan.Name)
	return p, nil
}

func (p *Pico) ReadSwitches() uint8 {
	var v uint8
	for i := range p.switches {
		if p.switches[i].Get() {
			v |= 1 << uint(i)
		}
	}
	return v
}

func (p *Pico) WriteLEDs(v uint8) {
	for i := range p.leds {
		p.leds[i].Set(v&(1<<uint(i)) != 0)
	}
}

func (p *Pico) TryReceive() (byte, bool) {
	if p.uart.Buffered() == 0 {
		return 0, false
	}
	if n, err := p.uart.Read(p.rx[:]); n == 0 || err != nil {
		return 0, false
	}
	return p.rx[0], true
}

// SendByte blocks in the UART driver until the byte is accepted.
func (p *Pico) SendByte(b byte) {
	p.tx[0] = b
	for {
		n, _ := p.uart.Write(p.tx[:])
		if n == 1 {
			return
		}
	}
}

func (p *Pico) SendString(s string) {
	for i := 0; i < len(s); i++ {
		p.SendByte(s[i])
	}
}

// SetDisplay only talks to the TM1637 when the requested state differs
// from what it already shows; the module latches its segments.
func (p *Pico) SetDisplay(on bool, value uint16) {
	if !p.hasFND {
		return
	}
	if p.fndKnown && on == p.fndOn && value == p.fndValue {
		return
	}
	p.fndKnown, p.fndOn, p.fndValue = true, on, value
	if !on {
		p.fnd.ClearDisplay()
		return
	}
	if value > 9999 {
		value = 9999
	}
	p.fnd.DisplayNumber(int16(value))
}
