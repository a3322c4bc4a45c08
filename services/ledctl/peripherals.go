package ledctl

// Peripherals is everything the controller needs from the board.
//
// SendByte may block until the transmitter is ready; every other method
// returns immediately. TryReceive consumes at most one pending byte.
type Peripherals interface {
	ReadSwitches() uint8
	WriteLEDs(v uint8)
	TryReceive() (byte, bool)
	SendByte(b byte)
	SendString(s string)
	SetDisplay(on bool, value uint16)
}
