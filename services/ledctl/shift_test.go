package ledctl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tickPeriod runs Tick until one animation step fires and returns the
// bytes it sent.
func tickPeriod(t *testing.T, c *Controller, f *fakeBoard) string {
	t.Helper()
	for i := uint32(1); i < c.Config().ShiftPeriod; i++ {
		c.Tick()
		require.Empty(t, f.tx.String(), "early step at tick %d", i)
	}
	c.Tick()
	return f.takeTX()
}

func TestTick_IdleHoldsCounterAtZero(t *testing.T) {
	c, f := newStarted(3)
	for i := 0; i < 10; i++ {
		c.Tick()
	}
	assert.Zero(t, c.Ticks())
	assert.Empty(t, f.ledWrites)
	assert.Empty(t, f.takeTX())
}

func TestTick_CounterResetsWhenModeStops(t *testing.T) {
	c, _ := newStarted(5)
	c.Process('R')
	c.Tick()
	c.Tick()
	require.Equal(t, uint32(2), c.Ticks())
	c.Process('r')
	c.Tick()
	assert.Zero(t, c.Ticks())
}

func TestTick_RightDrains(t *testing.T) {
	c, f := newStarted(3)
	c.setLEDs(0xF0)
	c.Process('R')
	f.takeTX()

	want := []uint8{0x78, 0x3C, 0x1E, 0x0F, 0x07, 0x03, 0x01}
	for _, w := range want {
		out := tickPeriod(t, c, f)
		require.Equal(t, w, c.LEDs())
		require.Equal(t, StatusLine(w), out)
	}
}

func TestTick_RightReseedsWhenDark(t *testing.T) {
	c, f := newStarted(2)
	c.setLEDs(0x01)
	c.Process('R')
	f.takeTX()
	f.ledWrites = nil

	out := tickPeriod(t, c, f)
	assert.Equal(t, uint8(0xFF), c.LEDs())
	assert.Equal(t, []uint8{0x00, 0xFF}, f.ledWrites, "dark frame is written before the reseed")
	assert.Equal(t, StatusLine(0xFF), out, "one report per step")

	tickPeriod(t, c, f)
	assert.Equal(t, uint8(0x7F), c.LEDs())
}

func TestTick_RightFromZeroReseeds(t *testing.T) {
	c, f := newStarted(1)
	c.Process('R')
	f.takeTX()
	c.Tick()
	assert.Equal(t, uint8(0xFF), c.LEDs())
}

func TestTick_LeftFills(t *testing.T) {
	c, f := newStarted(4)
	c.Process('L')
	f.takeTX()

	want := []uint8{0x01, 0x03, 0x07, 0x0F, 0x1F, 0x3F, 0x7F}
	for _, w := range want {
		out := tickPeriod(t, c, f)
		require.Equal(t, w, c.LEDs())
		require.Equal(t, StatusLine(w), out)
	}
}

func TestTick_LeftSaturationRestarts(t *testing.T) {
	c, f := newStarted(2)
	c.setLEDs(0x7F)
	c.Process('l')
	f.takeTX()
	f.ledWrites = nil

	out := tickPeriod(t, c, f)
	assert.Equal(t, []uint8{0xFF, 0x00}, f.ledWrites)
	assert.Equal(t, uint8(0x00), c.LEDs())
	assert.Equal(t, StatusLine(0x00), out)

	tickPeriod(t, c, f)
	assert.Equal(t, uint8(0x01), c.LEDs(), "next step restarts at the minimal seed")
}

func TestTick_LeftFromFullNeverStaysSaturated(t *testing.T) {
	c, f := newStarted(1)
	c.setLEDs(0xFF)
	c.Process('L')
	f.takeTX()

	c.Tick()
	assert.NotEqual(t, uint8(0xFF), c.LEDs())
	c.Tick()
	assert.Equal(t, uint8(0x01), c.LEDs())
}

func TestTick_SwitchingModeKeepsPattern(t *testing.T) {
	c, _ := newStarted(1)
	c.setLEDs(0x18)
	c.Process('R')
	c.Tick()
	require.Equal(t, uint8(0x0C), c.LEDs())
	c.Process('L')
	c.Tick()
	assert.Equal(t, uint8(0x19), c.LEDs())
	assert.Equal(t, LeftActive, c.Mode())
}
