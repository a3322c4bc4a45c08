package config

// Built-in profiles. "sim" matches the firmware defaults; "demo" shifts
// fast enough to watch on a terminal.

const profileSim = `{
  "ledctl": {
    "shift_period": 5000,
    "placeholder": 1234,
    "loop_delay_us": 100,
    "banner": true
  },
  "heartbeat": {
    "interval_s": 2
  }
}`

const profileDemo = `{
  "ledctl": {
    "shift_period": 40,
    "loop_delay_us": 5000
  },
  "heartbeat": {
    "interval_s": 1
  }
}`

var profiles = map[string][]byte{
	"sim":  []byte(profileSim),
	"demo": []byte(profileDemo),
}
