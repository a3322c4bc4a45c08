package ledctl

// Tick advances the animation pacing counter. Once ShiftPeriod iterations
// have elapsed in an active mode it performs one animation step and sends
// a status report. The counter is held at zero while Idle.
//
// Right drains toward zero and reseeds to 0xFF in the same step when the
// bank goes dark. Left fills from bit 0; on reaching 0xFF it resets to 0x00
// in the same step so the next step restarts from 0x01.
func (c *Controller) Tick() {
	if !c.mode.Active() {
		c.ticks = 0
		return
	}
	c.ticks++
	if c.ticks < c.cfg.ShiftPeriod {
		return
	}
	c.ticks = 0

	switch c.mode {
	case RightActive:
		c.setLEDs(c.leds >> 1)
		if c.leds == 0 {
			c.setLEDs(0xFF)
		}
	case LeftActive:
		c.setLEDs(c.leds<<1 | 0x01)
		if c.leds == 0xFF {
			c.setLEDs(0x00)
		}
	}
	c.Report()
}
