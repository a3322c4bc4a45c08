// Package ledctl is the LED/display state machine: it interprets UART
// commands, runs the two shift animations, mirrors switch changes onto
// the LED bank and reports LED state back over the UART.
//
// Everything runs on one cooperative loop. A Controller is not safe for
// concurrent use and needs no locking as long as a single goroutine owns it.
package ledctl

import (
	"context"
	"time"
)

const banner = "=================================\r\n" +
	"LED Control System Ready\r\n" +
	"Commands:\r\n" +
	"  0-9: Toggle LED\r\n" +
	"  R/r: Shift Right Toggle\r\n" +
	"  L/l: Shift Left Toggle\r\n" +
	"=================================\r\n"

// Banner returns the fixed command reference sent on start-up.
func Banner() string { return banner }

type Controller struct {
	p   Peripherals
	cfg Config

	leds     uint8     // what is physically lit
	mode     ShiftMode // Idle, RightActive or LeftActive
	switches uint8     // last processed switch reading
	ticks    uint32    // iterations since the last animation step
}

// New binds a controller to p. A zero ShiftPeriod is coerced to 1.
func New(p Peripherals, cfg Config) *Controller {
	if cfg.ShiftPeriod == 0 {
		cfg.ShiftPeriod = 1
	}
	return &Controller{p: p, cfg: cfg}
}

// Start clears the LEDs and display, snapshots the switches and sends the
// banner. It must run once before the first Step.
func (c *Controller) Start() {
	println("[ledctl] start period=", c.cfg.ShiftPeriod, " placeholder=", c.cfg.DisplayPlaceholder)
	c.setLEDs(0)
	c.switches = c.p.ReadSwitches()
	c.mode = Idle
	c.ticks = 0
	c.p.SetDisplay(false, 0)
	if c.cfg.Banner {
		c.p.SendString(banner)
	}
}

// Step runs one loop iteration without the trailing delay.
func (c *Controller) Step() {
	if b, ok := c.p.TryReceive(); ok {
		c.Process(b)
	}
	c.CheckSwitches()
	c.Tick()
	c.SyncDisplay()
}

// Run calls Start and then Step until ctx is cancelled, sleeping
// LoopDelay between iterations. Cancellation is only observed between
// iterations.
func (c *Controller) Run(ctx context.Context) {
	c.Start()
	for {
		select {
		case <-ctx.Done():
			println("[ledctl] stopping")
			return
		default:
		}
		c.Step()
		if c.cfg.LoopDelay > 0 {
			time.Sleep(c.cfg.LoopDelay)
		}
	}
}

func (c *Controller) LEDs() uint8     { return c.leds }
func (c *Controller) Mode() ShiftMode { return c.mode }
func (c *Controller) Switches() uint8 { return c.switches }
func (c *Controller) Ticks() uint32   { return c.ticks }
func (c *Controller) Config() Config  { return c.cfg }

// setLEDs is the only writer of leds; the output register follows at once.
func (c *Controller) setLEDs(v uint8) {
	c.leds = v
	c.p.WriteLEDs(v)
}
