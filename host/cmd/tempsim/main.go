// tempsim runs the controller core on the host: a ticker goroutine
// stands in for the tick interrupt and a triangle-wave converter
// stands in for the hardware. Useful for exercising the scheduler and
// sampler end to end without a board.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/Dystopia0910/734429-Embebidos2/core"
	"github.com/Dystopia0910/734429-Embebidos2/host/config"
)

var (
	configPath = flag.String("config", "", "YAML config file (optional)")
	duration   = flag.Duration("duration", 10*time.Second, "how long to run, 0 = until interrupted")
	latency    = flag.Duration("latency", 0, "injected conversion latency, demonstrates the blocking-converter hazard")
)

// waveADC synthesizes a triangle wave across the converter's full
// scale. ReadRaw normally returns immediately; a configured latency
// blocks the calling task for that long, exactly like slow hardware
// polling would.
type waveADC struct {
	fullScale uint32
	periodMs  uint32
	latency   time.Duration
	start     time.Time
}

func (w *waveADC) Init() error {
	w.start = time.Now()
	return nil
}

func (w *waveADC) ConfigureChannel(core.ADCChannelID) error {
	return nil
}

func (w *waveADC) ReadRaw(core.ADCChannelID) (core.ADCValue, error) {
	if w.latency > 0 {
		time.Sleep(w.latency)
	}
	ms := uint32(time.Since(w.start).Milliseconds()) % (2 * w.periodMs)
	if ms >= w.periodMs {
		ms = 2*w.periodMs - ms
	}
	return core.ADCValue(uint64(ms) * uint64(w.fullScale-1) / uint64(w.periodMs)), nil
}

func main() {
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("load config")
		}
	}

	drv := &waveADC{
		fullScale: cfg.Sim.FullScale,
		periodMs:  cfg.Sim.WavePeriodMs,
		latency:   *latency,
	}
	smp := core.NewSampler(drv, core.SamplerConfig{
		PeriodTicks: cfg.Sim.SamplePeriodMs,
		FullScale:   cfg.Sim.FullScale,
		MaxC:        cfg.Sim.MaxC,
		Window:      cfg.Sim.Window,
	})

	var sched *core.Scheduler
	service := &core.Task{Period: cfg.Sim.ServicePeriodMs, Handler: func() {
		if err := smp.Service(sched.Now()); err != nil {
			log.Error().Err(err).Msg("sampler service")
		}
	}}
	reportTask := &core.Task{Period: cfg.Sim.ReportPeriodMs, Handler: func() {
		avg := smp.FormatAverage()
		log.Info().
			Str("avg", string(avg[:])).
			Uint8("temp_c", smp.Last()).
			Uint32("tick", sched.Now()).
			Msg("report")
	}}
	sched = core.NewScheduler(service, reportTask)
	sched.InitTable()

	if err := smp.Init(); err != nil {
		log.Fatal().Err(err).Msg("sampler init")
	}

	// Idle rounds back off briefly so the host loop does not spin at
	// full CPU; the board's dispatch loop has no such pause.
	sched.SetIdleHook(func() { time.Sleep(200 * time.Microsecond) })

	// The ticker goroutine plays the part of the tick interrupt; the
	// atomics inside OnTick are the only synchronization with the
	// dispatch loop below, same as on hardware.
	stopTick := make(chan struct{})
	go func() {
		tk := time.NewTicker(time.Second / time.Duration(cfg.Sim.TickHz))
		defer tk.Stop()
		for {
			select {
			case <-tk.C:
				sched.OnTick()
			case <-stopTick:
				return
			}
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if *duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *duration)
		defer cancel()
	}

	log.Info().
		Int("tick_hz", cfg.Sim.TickHz).
		Uint32("sample_period_ms", cfg.Sim.SamplePeriodMs).
		Dur("latency", *latency).
		Msg("running")

	done := ctx.Done()
	for running := true; running; {
		select {
		case <-done:
			running = false
		default:
			sched.Dispatch()
		}
	}
	close(stopTick)

	log.Info().
		Uint32("ticks", sched.Now()).
		Uint8("avg_c", smp.Average()).
		Msg("stopped")
}
