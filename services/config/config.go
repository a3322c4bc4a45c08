// Package config publishes a named configuration profile on the bus.
//
// A profile is a JSON object of sections. Each section is published
// retained on ledctl/config/<section> as raw JSON, so services decode only
// what they own and late subscribers still see it.
package config

import (
	"encoding/json"
	"sort"
	"time"

	"ledctl-go/bus"
	"ledctl-go/errcode"
	"ledctl-go/services/ledctl"
	"ledctl-go/types"
)

const (
	SectionController = "ledctl"
	SectionHeartbeat  = "heartbeat"

	DefaultProfile = "sim"
)

// ProfileLookup resolves a profile name to raw JSON. Tests override it.
var ProfileLookup = func(name string) ([]byte, bool) {
	b, ok := profiles[name]
	return b, ok
}

// Profile is a parsed profile: section name to raw JSON.
type Profile map[string]json.RawMessage

// Load resolves and parses profile name.
func Load(name string) (Profile, error) {
	raw, ok := ProfileLookup(name)
	if !ok || len(raw) == 0 {
		return nil, &errcode.E{C: errcode.InvalidParams, Op: "config.load", Msg: "no profile named " + name}
	}
	var p Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, errcode.Wrap(errcode.InvalidParams, "config.load", err)
	}
	return p, nil
}

// Sections lists the profile's sections in name order.
func (p Profile) Sections() []string {
	names := make([]string, 0, len(p))
	for k := range p {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Publish sends every section as a retained message.
func (p Profile) Publish(conn *bus.Connection) {
	for _, k := range p.Sections() {
		conn.Publish(conn.NewMessage(types.ConfigTopic(k), p[k], true))
	}
}

// Decode unmarshals a section payload as received from the bus.
func Decode(payload any, v any) error {
	raw, ok := payload.(json.RawMessage)
	if !ok {
		return &errcode.E{C: errcode.InvalidParams, Op: "config.decode", Msg: "payload is not raw JSON"}
	}
	return errcode.Wrap(errcode.InvalidParams, "config.decode", json.Unmarshal(raw, v))
}

// Controller overlays the profile's controller section on cfg. A profile
// without the section leaves cfg unchanged.
func (p Profile) Controller(cfg ledctl.Config) (ledctl.Config, error) {
	raw, ok := p[SectionController]
	if !ok {
		return cfg, nil
	}
	var s types.ControllerConfig
	if err := Decode(raw, &s); err != nil {
		return cfg, err
	}
	if s.ShiftPeriod != 0 {
		cfg.ShiftPeriod = s.ShiftPeriod
	}
	if s.Placeholder != 0 {
		cfg.DisplayPlaceholder = s.Placeholder
	}
	if s.LoopDelayUs != 0 {
		cfg.LoopDelay = time.Duration(s.LoopDelayUs) * time.Microsecond
	}
	if s.Banner != nil {
		cfg.Banner = *s.Banner
	}
	return cfg, cfg.Validate()
}
