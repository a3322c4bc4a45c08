package ledctl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcess_IgnoresUnknownBytes(t *testing.T) {
	c, f := newStarted(4)
	c.setLEDs(0x5A)
	f.ledWrites = nil

	known := map[byte]bool{'R': true, 'r': true, 'L': true, 'l': true}
	for d := byte('0'); d <= '9'; d++ {
		known[d] = true
	}
	for b := 0; b < 256; b++ {
		if known[byte(b)] {
			continue
		}
		c.Process(byte(b))
		require.Equal(t, uint8(0x5A), c.LEDs(), "byte %#x changed LEDs", b)
		require.Equal(t, Idle, c.Mode(), "byte %#x changed mode", b)
		require.Empty(t, f.takeTX(), "byte %#x produced output", b)
	}
	assert.Empty(t, f.ledWrites)
	assert.Empty(t, f.display)
}

func TestProcess_DigitTogglesBit(t *testing.T) {
	for d := byte('0'); d <= '7'; d++ {
		c, f := newStarted(4)
		c.setLEDs(0x81)
		f.ledWrites = nil

		c.Process(d)
		want := uint8(0x81) ^ 1<<(d-'0')
		require.Equal(t, want, c.LEDs())
		require.Equal(t, []uint8{want}, f.ledWrites)
		assert.Equal(t, "Toggle LED "+string(d)+"\r\n"+StatusLine(want), f.takeTX())

		c.Process(d)
		assert.Equal(t, uint8(0x81), c.LEDs(), "second toggle of %c restores", d)
	}
}

func TestProcess_EightAndNineAreInert(t *testing.T) {
	c, f := newStarted(4)
	for _, d := range []byte{'8', '9'} {
		c.Process(d)
		assert.Equal(t, uint8(0), c.LEDs())
		assert.Empty(t, f.takeTX())
		assert.Empty(t, f.ledWrites)
	}
}

func TestProcess_ModeToggles(t *testing.T) {
	cases := []struct {
		name  string
		seq   string
		mode  ShiftMode
		lines string
	}{
		{"right on", "R", RightActive, "led shift right\r\n"},
		{"right off", "Rr", Idle, "led shift right\r\nled shift right stop\r\n"},
		{"left on", "l", LeftActive, "led shift left\r\n"},
		{"left off", "lL", Idle, "led shift left\r\nled shift left stop\r\n"},
		{"left wins over right", "RL", LeftActive, "led shift right\r\nled shift left\r\n"},
		{"right wins over left", "Lr", RightActive, "led shift left\r\nled shift right\r\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, f := newStarted(4)
			for i := 0; i < len(tc.seq); i++ {
				c.Process(tc.seq[i])
			}
			assert.Equal(t, tc.mode, c.Mode())
			assert.Equal(t, tc.lines, f.takeTX())
			assert.Empty(t, f.ledWrites, "mode commands never touch the LEDs")
		})
	}
}

func TestProcess_ModeCommandSyncsDisplay(t *testing.T) {
	c, f := newStarted(4)

	c.Process('R')
	require.Len(t, f.display, 1)
	assert.Equal(t, displayCall{true, DefaultDisplayPlaceholder}, f.lastDisplay())

	c.Process('L')
	assert.Equal(t, displayCall{true, DefaultDisplayPlaceholder}, f.lastDisplay())

	c.Process('l')
	assert.Equal(t, displayCall{false, 0}, f.lastDisplay())
}

func TestProcess_ExclusiveAfterAnySequence(t *testing.T) {
	c, _ := newStarted(4)
	seq := "RLrlRRLLrRlLRrLlRLRL"
	for i := 0; i < len(seq); i++ {
		c.Process(seq[i])
		m := c.Mode()
		require.True(t, m == Idle || m == RightActive || m == LeftActive, "invalid mode %d", m)
	}
}
