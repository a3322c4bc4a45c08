package board

import "runtime"

// Memory map of the LED-control board. Each peripheral is a 32-bit
// register block; only the low byte of GPO/GPI is wired.
const (
	BaseGPO  uint32 = 0x10001000 // LED output
	BaseGPI  uint32 = 0x10002000 // switch input
	BaseUART uint32 = 0x10004000
	BaseFND  uint32 = 0x10005000 // 7-segment display

	UARTStatus = BaseUART + 0x00 // USR
	UARTTxData = BaseUART + 0x08 // TDR
	UARTRxData = BaseUART + 0x0C // RDR

	FNDControl = BaseFND + 0x00 // FCR: 1 on, 0 off
	FNDData    = BaseFND + 0x04 // FDR: value, decoded by the display itself
)

// UART status bits.
const (
	UARTRxReady uint32 = 0x01
	UARTTxReady uint32 = 0x02
)

// Registers is a 32-bit load/store view of the memory map.
type Registers interface {
	Load(addr uint32) uint32
	Store(addr uint32, v uint32)
}

// MMIO drives the board through its registers. SendByte spins on the
// transmit-ready flag; TryReceive polls the receive-ready flag once.
type MMIO struct {
	R Registers
	// Yield runs while waiting for transmit-ready. Defaults to runtime.Gosched.
	Yield func()
}

func (m *MMIO) ReadSwitches() uint8 { return uint8(m.R.Load(BaseGPI) & 0xFF) }
func (m *MMIO) WriteLEDs(v uint8)   { m.R.Store(BaseGPO, uint32(v)) }

func (m *MMIO) TryReceive() (byte, bool) {
	if m.R.Load(UARTStatus)&UARTRxReady == 0 {
		return 0, false
	}
	return byte(m.R.Load(UARTRxData)), true
}

func (m *MMIO) SendByte(b byte) {
	for m.R.Load(UARTStatus)&UARTTxReady == 0 {
		if m.Yield != nil {
			m.Yield()
		} else {
			runtime.Gosched()
		}
	}
	m.R.Store(UARTTxData, uint32(b))
}

func (m *MMIO) SendString(s string) {
	for i := 0; i < len(s); i++ {
		m.SendByte(s[i])
	}
}

func (m *MMIO) SetDisplay(on bool, value uint16) {
	var fcr uint32
	if on {
		fcr = 1
	}
	m.R.Store(FNDControl, fcr)
	m.R.Store(FNDData, uint32(value))
}
