package heartbeat

import (
	"context"
	"time"

	"ledctl-go/bus"
	"ledctl-go/services/config"
	"ledctl-go/types"
	"ledctl-go/x/timex"
)

const DefaultInterval = time.Second

// Service publishes types.Heartbeat on ledctl/heartbeat. Its interval
// follows the retained ledctl/config/heartbeat section.
type Service struct {
	Interval time.Duration
}

func (s *Service) serviceLoop(ctx context.Context, conn *bus.Connection) {
	cfgSub := conn.Subscribe(types.ConfigTopic(config.SectionHeartbeat))
	defer conn.Unsubscribe(cfgSub)

	interval := s.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	tick := time.NewTicker(interval)
	defer tick.Stop()

	start := time.Now()
	var seq uint32
	for {
		select {
		case <-ctx.Done():
			println("[heartbeat] stopping")
			return
		case <-tick.C:
			seq++
			conn.Publish(conn.NewMessage(types.TopicHeartbeat, types.Heartbeat{
				Seq:      seq,
				UptimeMs: time.Since(start).Milliseconds(),
				TS:       timex.NowMs(),
			}, false))
		case msg := <-cfgSub.Channel():
			var hc types.HeartbeatConfig
			if err := config.Decode(msg.Payload, &hc); err != nil {
				println("[heartbeat] bad config:", err.Error())
				continue
			}
			if hc.IntervalS <= 0 {
				continue
			}
			d := timex.Clamp(time.Duration(hc.IntervalS*float64(time.Second)), 10*time.Millisecond, time.Hour)
			tick.Reset(d)
			println("[heartbeat] interval", d.String())
		}
	}
}

// Start runs the service until ctx is cancelled.
func (s *Service) Start(ctx context.Context, conn *bus.Connection) {
	go s.serviceLoop(ctx, conn)
}
