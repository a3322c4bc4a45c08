package ledctl

// Process interprets one command byte received over the UART.
// Unrecognised bytes, and the digits '8' and '9', are ignored silently.
func (c *Controller) Process(cmd byte) {
	switch {
	case cmd >= '0' && cmd <= '9':
		bit := cmd - '0'
		if bit >= 8 {
			return
		}
		c.setLEDs(c.leds ^ (1 << bit))
		c.p.SendString("Toggle LED ")
		c.p.SendByte(cmd)
		c.p.SendString("\r\n")
		c.Report()

	case cmd == 'R' || cmd == 'r':
		c.mode = c.mode.toggle(RightActive)
		if c.mode == RightActive {
			c.p.SendString("led shift right\r\n")
		} else {
			c.p.SendString("led shift right stop\r\n")
		}
		c.SyncDisplay()

	case cmd == 'L' || cmd == 'l':
		c.mode = c.mode.toggle(LeftActive)
		if c.mode == LeftActive {
			c.p.SendString("led shift left\r\n")
		} else {
			c.p.SendString("led shift left stop\r\n")
		}
		c.SyncDisplay()
	}
}
