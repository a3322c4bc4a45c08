package ledctl

// CheckSwitches reads the switch bank once and toggles the LED for every
// switch that differs from the last processed reading, lowest bit first.
// With no difference nothing is written, sent or remembered.
func (c *Controller) CheckSwitches() {
	cur := c.p.ReadSwitches()
	changed := cur ^ c.switches
	if changed == 0 {
		return
	}
	leds := c.leds
	for i := uint8(0); i < 8; i++ {
		if changed&(1<<i) == 0 {
			continue
		}
		leds ^= 1 << i
		c.p.SendString("Switch ")
		c.p.SendByte('0' + i)
		c.p.SendString(" toggled\r\n")
	}
	c.setLEDs(leds)
	c.Report()
	c.switches = cur
}
