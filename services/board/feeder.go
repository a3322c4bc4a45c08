package board

import (
	"context"
	"errors"
	"io"
	"time"

	"ledctl-go/errcode"
	"ledctl-go/x/timex"
)

// Injector accepts bytes for the UART receive side.
type Injector interface {
	Inject(p []byte) int
}

type FeedCfg struct {
	Src io.Reader
	Dst Injector
	// Filter sees every byte first; returning false keeps it from the board.
	Filter func(b byte) bool
	// MaxChunk bounds a single read, clamp 1..256.
	MaxChunk int
	// Retry is how long to back off when the receiver is full, clamp 1ms..100ms.
	Retry time.Duration
}

// Feed copies bytes from Src into Dst until Src ends or ctx is cancelled.
// A full receiver is retried rather than dropped so that piped input is
// delivered intact. It returns nil on EOF or cancellation.
func Feed(ctx context.Context, cfg FeedCfg) error {
	if cfg.Src == nil || cfg.Dst == nil {
		return &errcode.E{C: errcode.InvalidParams, Op: "board.feed", Msg: "missing source or destination"}
	}
	max := cfg.MaxChunk
	if max < 1 {
		max = 1
	}
	if max > 256 {
		max = 256
	}
	retry := 5 * time.Millisecond
	if cfg.Retry != 0 {
		retry = timex.Clamp(cfg.Retry, time.Millisecond, 100*time.Millisecond)
	}

	buf := make([]byte, max)
	out := make([]byte, 0, max)
	for {
		if ctx.Err() != nil {
			return nil
		}
		n, err := cfg.Src.Read(buf)
		out = out[:0]
		for _, b := range buf[:n] {
			if cfg.Filter == nil || cfg.Filter(b) {
				out = append(out, b)
			}
		}
		for len(out) > 0 {
			k := cfg.Dst.Inject(out)
			out = out[k:]
			if len(out) == 0 {
				break
			}
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(retry):
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return errcode.Wrap(errcode.Error, "board.feed", err)
		}
	}
}
