package setups

import "ledctl-go/errcode"

// Plan specifies the wiring a board is built from. Pins are plain GPIO
// numbers; mapping to machine.Pin happens in the board.
type Plan struct {
	Name     string
	GPIOMin  int
	GPIOMax  int
	LEDs     [8]int // LED i is lit when its pin is high
	Switches [8]int // read with pull-ups; released reads 1
	UART     UARTPlan
	FND      FNDPlan
}

type UARTPlan struct {
	ID   string // "uart0" | "uart1"
	TX   int    // GPIO number
	RX   int    // GPIO number
	Baud uint32
}

// FNDPlan wires a TM1637 4-digit 7-segment module.
type FNDPlan struct {
	Present    bool
	CLK, DIO   int
	Brightness uint8 // 0..7
}

// Validate checks ranges and that no pin is used twice.
func (p Plan) Validate() error {
	used := map[int]string{}
	claim := func(n int, what string) error {
		if n < p.GPIOMin || n > p.GPIOMax {
			return &errcode.E{C: errcode.UnknownPin, Op: "setups." + p.Name, Msg: what}
		}
		if prev, ok := used[n]; ok {
			return &errcode.E{C: errcode.PinInUse, Op: "setups." + p.Name, Msg: what + " collides with " + prev}
		}
		used[n] = what
		return nil
	}
	for i, n := range p.LEDs {
		if err := claim(n, "led"+string(rune('0'+i))); err != nil {
			return err
		}
	}
	for i, n := range p.Switches {
		if err := claim(n, "switch"+string(rune('0'+i))); err != nil {
			return err
		}
	}
	switch p.UART.ID {
	case "uart0", "uart1":
	default:
		return &errcode.E{C: errcode.UnknownBus, Op: "setups." + p.Name, Msg: p.UART.ID}
	}
	if err := claim(p.UART.TX, p.UART.ID+" tx"); err != nil {
		return err
	}
	if err := claim(p.UART.RX, p.UART.ID+" rx"); err != nil {
		return err
	}
	if p.UART.Baud == 0 {
		return &errcode.E{C: errcode.InvalidParams, Op: "setups." + p.Name, Msg: "baud"}
	}
	if p.FND.Present {
		if err := claim(p.FND.CLK, "fnd clk"); err != nil {
			return err
		}
		if err := claim(p.FND.DIO, "fnd dio"); err != nil {
			return err
		}
		if p.FND.Brightness > 7 {
			return &errcode.E{C: errcode.InvalidParams, Op: "setups." + p.Name, Msg: "fnd brightness"}
		}
	}
	return nil
}
