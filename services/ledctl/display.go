package ledctl

// SyncDisplay drives the 7-segment display from the shift mode alone:
// on with the placeholder value while animating, off and zero otherwise.
func (c *Controller) SyncDisplay() {
	if c.mode.Active() {
		c.p.SetDisplay(true, c.cfg.DisplayPlaceholder)
		return
	}
	c.p.SetDisplay(false, 0)
}
