package ledctl

import (
	"time"

	"ledctl-go/errcode"
)

const (
	DefaultShiftPeriod        = 5000
	DefaultDisplayPlaceholder = 1234
	DefaultLoopDelay          = 100 * time.Microsecond
)

// Config holds the controller's operating parameters.
type Config struct {
	// ShiftPeriod is the number of loop iterations between animation steps.
	ShiftPeriod uint32
	// DisplayPlaceholder is written to the 7-segment display while a shift
	// mode is active. The display hardware decodes it into digits.
	DisplayPlaceholder uint16
	// LoopDelay is slept at the end of every Run iteration.
	LoopDelay time.Duration
	// Banner sends the command reference on Start.
	Banner bool
}

func DefaultConfig() Config {
	return Config{
		ShiftPeriod:        DefaultShiftPeriod,
		DisplayPlaceholder: DefaultDisplayPlaceholder,
		LoopDelay:          DefaultLoopDelay,
		Banner:             true,
	}
}

func (c Config) Validate() error {
	if c.ShiftPeriod == 0 {
		return &errcode.E{C: errcode.InvalidParams, Op: "ledctl.config", Msg: "shift period must be at least 1"}
	}
	if c.LoopDelay < 0 {
		return &errcode.E{C: errcode.InvalidParams, Op: "ledctl.config", Msg: "negative loop delay"}
	}
	return nil
}
