package setups

// PicoDefault wires a Raspberry Pi Pico: console on uart0 (GP0/GP1),
// LEDs on GP2..GP9, switches on GP10..GP17, TM1637 on GP18/GP19.
var PicoDefault = Plan{
	Name:     "pico_default",
	GPIOMin:  0,
	GPIOMax:  28,
	LEDs:     [8]int{2, 3, 4, 5, 6, 7, 8, 9},
	Switches: [8]int{10, 11, 12, 13, 14, 15, 16, 17},
	UART:     UARTPlan{ID: "uart0", TX: 0, RX: 1, Baud: 115200},
	FND:      FNDPlan{Present: true, CLK: 18, DIO: 19, Brightness: 5},
}
