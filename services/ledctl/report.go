package ledctl

import "ledctl-go/x/conv"

const statusLen = len("LED: ") + 8 + len(" (0x") + 2 + len(")\r\n")

// StatusLine formats v as "LED: bbbbbbbb (0xHH)\r\n", most significant bit first.
func StatusLine(v uint8) string {
	var buf [statusLen]byte
	n := copy(buf[:], "LED: ")
	n += len(conv.U8Bin(buf[n:n+8], v))
	n += copy(buf[n:], " (0x")
	n += len(conv.U8Hex(buf[n:n+2], v))
	n += copy(buf[n:], ")\r\n")
	return string(buf[:n])
}

// Report sends the current LED state as a status line.
func (c *Controller) Report() {
	c.p.SendString(StatusLine(c.leds))
}
