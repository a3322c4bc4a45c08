package types

// ---- Board state mirrored on the bus (retained) ----

// LEDBank is the value last written to the LED output register.
type LEDBank struct {
	Bank uint8 `json:"bank"`
	TS   int64 `json:"ts_ms"`
}

// SwitchBank is the raw switch bank as last set on the board.
type SwitchBank struct {
	Bank uint8 `json:"bank"`
	TS   int64 `json:"ts_ms"`
}

// Display is the 7-segment control/data pair.
type Display struct {
	On    bool   `json:"on"`
	Value uint16 `json:"value"`
	TS    int64  `json:"ts_ms"`
}

// ---- UART traffic (not retained) ----

// UARTLine is one complete transmitted line, without the trailing CR LF.
type UARTLine struct {
	Text string `json:"text"`
	TS   int64  `json:"ts_ms"`
}

// ---- Inbound controls ----

// SwitchSet replaces the whole switch bank.
type SwitchSet struct {
	Bank uint8 `json:"bank"`
}

// ---- Service state ----

// Heartbeat is published periodically while the host simulator runs.
type Heartbeat struct {
	Seq      uint32 `json:"seq"`
	UptimeMs int64  `json:"uptime_ms"`
	TS       int64  `json:"ts_ms"`
}

// ---- Configuration sections ----

// ControllerConfig is the "ledctl" section. Zero fields keep defaults.
type ControllerConfig struct {
	ShiftPeriod uint32 `json:"shift_period,omitempty"`
	Placeholder uint16 `json:"placeholder,omitempty"`
	LoopDelayUs int64  `json:"loop_delay_us,omitempty"`
	Banner      *bool  `json:"banner,omitempty"`
}

// HeartbeatConfig is the "heartbeat" section.
type HeartbeatConfig struct {
	IntervalS float64 `json:"interval_s"`
}
