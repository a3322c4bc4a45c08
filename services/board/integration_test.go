package board

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"ledctl-go/bus"
	"ledctl-go/services/ledctl"
	"ledctl-go/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer is a goroutine-safe bytes.Buffer.
type syncBuffer struct {
	mu sync.Mutex
	b  bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.String()
}

func TestController_OverSimulatedRegisters(t *testing.T) {
	var out bytes.Buffer
	sim := NewSim(&out, 16)
	sim.SetSwitches(0xFF)

	cfg := ledctl.DefaultConfig()
	cfg.ShiftPeriod = 3
	c := ledctl.New(&MMIO{R: sim}, cfg)
	c.Start()
	require.Equal(t, ledctl.Banner(), out.String())
	out.Reset()

	sim.Inject([]byte("R3"))
	c.Step()
	c.Step()
	assert.Equal(t, "led shift right\r\nToggle LED 3\r\nLED: 00001000 (0x08)\r\n", out.String())
	on, v := sim.Display()
	assert.True(t, on)
	assert.Equal(t, uint16(ledctl.DefaultDisplayPlaceholder), v)
	out.Reset()

	c.Step()
	assert.Equal(t, uint8(0x04), sim.LEDs())
	assert.Equal(t, "LED: 00000100 (0x04)\r\n", out.String())
	out.Reset()

	// Pressing switch 0 pulls it low.
	sim.SetSwitches(0xFE)
	c.Step()
	assert.Equal(t, "Switch 0 toggled\r\nLED: 00000101 (0x05)\r\n", out.String())
	assert.Equal(t, uint8(0x05), sim.LEDs())
	out.Reset()

	sim.Inject([]byte("r"))
	c.Step()
	assert.Equal(t, "led shift right stop\r\n", out.String())
	on, v = sim.Display()
	assert.False(t, on)
	assert.Zero(t, v)
}

func TestController_RunPublishesToBus(t *testing.T) {
	b := bus.NewBus(32)
	out := &syncBuffer{}
	sim := NewSim(out, 16)
	sim.Attach(b.NewConnection("sim"))
	obs := b.NewConnection("obs")
	lines := obs.Subscribe(types.TopicUARTLine)

	cfg := ledctl.DefaultConfig()
	cfg.LoopDelay = 100 * time.Microsecond
	cfg.Banner = false
	c := ledctl.New(&MMIO{R: sim}, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go c.Run(ctx)

	sim.Inject([]byte("5"))
	want := []string{"Toggle LED 5", "LED: 00100000 (0x20)"}
	for _, w := range want {
		select {
		case m := <-lines.Channel():
			assert.Equal(t, w, m.Payload.(types.UARTLine).Text)
		case <-time.After(2 * time.Second):
			t.Fatalf("timeout waiting for %q (uart so far %q)", w, out.String())
		}
	}
	// The LED write precedes the report on the wire.
	assert.Equal(t, uint8(0x20), sim.LEDs())
}
