// Command ledsim runs the LED controller against the simulated board.
//
// By default the console is the board's UART: keystrokes are received by
// the controller and its output is printed. Ctrl-A followed by a digit
// 0-7 flips that switch, Ctrl-C quits. With -serial the UART is a real
// serial port instead and stdin becomes a control shell (see "help").
package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang/glog"
	"go.bug.st/serial"

	"ledctl-go/bus"
	"ledctl-go/errcode"
	"ledctl-go/services/board"
	"ledctl-go/services/config"
	"ledctl-go/services/heartbeat"
	"ledctl-go/services/ledctl"
	"ledctl-go/services/mqttbridge"
	"ledctl-go/types"
)

var (
	serialPort  = flag.String("serial", "", "serial port used as the board UART; stdin becomes a control shell")
	baud        = flag.Int("baud", 115200, "serial baud rate")
	mqttURL     = flag.String("mqtt", "", "mirror board state to mqtt://[user:pass@]host:port/prefix")
	period      = flag.Uint("period", ledctl.DefaultShiftPeriod, "loop iterations between shift steps")
	delay       = flag.Duration("delay", ledctl.DefaultLoopDelay, "delay at the end of every loop iteration")
	placeholder = flag.Uint("placeholder", ledctl.DefaultDisplayPlaceholder, "value shown on the display while shifting")
	rxSize      = flag.Int("rx", 64, "UART receive FIFO size")
	profile     = flag.String("profile", config.DefaultProfile, "built-in configuration profile (sim, demo); flags given explicitly override it")
)

func main() {
	flag.Parse()
	defer glog.Flush()

	prof, err := config.Load(*profile)
	if err != nil {
		glog.Exit(err)
	}
	cfg, err := prof.Controller(ledctl.DefaultConfig())
	if err != nil {
		glog.Exit(err)
	}
	cfg, err = overrideFromFlags(cfg)
	if err != nil {
		glog.Exit(err)
	}
	glog.Infof("profile %s: period=%d delay=%v placeholder=%d", *profile, cfg.ShiftPeriod, cfg.LoopDelay, cfg.DisplayPlaceholder)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	b := bus.NewBus(16)
	prof.Publish(b.NewConnection("config"))
	(&heartbeat.Service{}).Start(ctx, b.NewConnection("heartbeat"))
	if err := run(ctx, cancel, b, cfg); err != nil {
		glog.Error(err)
		glog.Flush()
		os.Exit(1)
	}
}

// overrideFromFlags applies the controller flags that were set on the
// command line.
func overrideFromFlags(cfg ledctl.Config) (ledctl.Config, error) {
	var err error
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "period":
			cfg.ShiftPeriod = uint32(*period)
		case "delay":
			cfg.LoopDelay = *delay
		case "placeholder":
			if *placeholder > 0xFFFF {
				err = &errcode.E{C: errcode.InvalidParams, Op: "flags", Msg: "placeholder does not fit the display"}
				return
			}
			cfg.DisplayPlaceholder = uint16(*placeholder)
		}
	})
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func run(ctx context.Context, cancel context.CancelFunc, b *bus.Bus, cfg ledctl.Config) error {
	var (
		uartOut io.Writer = os.Stdout
		uartIn  io.Reader = os.Stdin
		port    serial.Port
	)
	if *serialPort != "" {
		p, err := serial.Open(*serialPort, &serial.Mode{BaudRate: *baud})
		if err != nil {
			return errcode.Wrap(errcode.UnknownBus, "serial.open", err)
		}
		defer p.Close()
		glog.Infof("uart on %s at %d baud", *serialPort, *baud)
		port, uartOut, uartIn = p, p, p
	}

	sim := board.NewSim(uartOut, *rxSize)
	sim.Attach(b.NewConnection("sim"))
	go watch(ctx, b.NewConnection("watch"))

	if *mqttURL != "" {
		client, prefix, err := mqttbridge.Dial(*mqttURL, mqttbridge.DefaultTimeout)
		if err != nil {
			return err
		}
		defer client.Disconnect(250)
		br := mqttbridge.New(client, prefix, b.NewConnection("mqtt"), sim)
		go func() {
			if err := br.Run(ctx); err != nil {
				glog.Errorf("mqtt bridge: %v", err)
			}
		}()
		glog.Infof("mirroring to %s under %q", *mqttURL, prefix)
	}

	feed := board.FeedCfg{Src: uartIn, Dst: sim, MaxChunk: 64}
	if port == nil {
		restore, err := rawConsole()
		if err != nil {
			return err
		}
		defer restore()
		feed.Filter = consoleFilter(sim, cancel)
	} else {
		go func() {
			shell(os.Stdin, os.Stdout, sim)
			cancel()
		}()
	}
	go func() {
		if err := board.Feed(ctx, feed); err != nil {
			glog.Errorf("uart feed: %v", err)
			cancel()
			return
		}
		glog.V(1).Info("uart input closed")
	}()

	ctl := ledctl.New(&board.MMIO{R: sim}, cfg)
	done := make(chan struct{})
	go func() {
		defer close(done)
		ctl.Run(ctx)
	}()

	<-ctx.Done()
	select {
	case <-done:
	case <-time.After(time.Second):
		glog.Warning("controller did not stop; uart transmit may be blocked")
	}
	return nil
}

// watch logs board state and heartbeats at -v=1.
func watch(ctx context.Context, conn *bus.Connection) {
	sub := conn.Subscribe(bus.T(types.Root, bus.SingleWild))
	defer conn.Unsubscribe(sub)
	for {
		select {
		case <-ctx.Done():
			return
		case m, ok := <-sub.Channel():
			if !ok {
				return
			}
			glog.V(1).Infof("%s %+v", m.Topic, m.Payload)
		}
	}
}
