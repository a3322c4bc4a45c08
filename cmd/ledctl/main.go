//go:build rp2040

// Command ledctl is the board firmware: the LED controller on a Pico wired
// per setups.PicoDefault.
package main

import (
	"context"
	"time"

	"ledctl-go/services/board"
	"ledctl-go/services/board/setups"
	"ledctl-go/services/ledctl"
)

func main() {
	// Give a USB console time to attach before the banner goes out.
	time.Sleep(1500 * time.Millisecond)
	println("[main] booting", setups.PicoDefault.Name)

	p, err := board.NewPico(setups.PicoDefault)
	if err != nil {
		for {
			println("[main] board setup failed:", err.Error())
			time.Sleep(5 * time.Second)
		}
	}
	ledctl.New(p, ledctl.DefaultConfig()).Run(context.Background())
}
