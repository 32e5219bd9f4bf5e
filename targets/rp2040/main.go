//go:build rp2040 || rp2350

package main

import (
	"machine"

	"github.com/Dystopia0910/734429-Embebidos2/core"
)

// Board task table cadences, in ticks (1 tick = 1 ms).
const (
	servicePeriodMs   = 10  // sampler service slot
	heartbeatPeriodMs = 250 // LED toggle
	reportPeriodMs    = 500 // serial report line
)

var (
	sched   *core.Scheduler
	sampler *core.Sampler
)

func main() {
	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})

	machine.Serial.Configure(machine.UARTConfig{})
	core.SetDebugWriter(writeLine)

	sampler = core.NewSampler(newRPADCDriver(), core.SamplerConfig{})

	service := &core.Task{Period: servicePeriodMs, Handler: func() {
		// A read error can only mean an unmapped channel; a stuck
		// converter blocks in ReadRaw instead, per the documented
		// hazard.
		if err := sampler.Service(sched.Now()); err != nil {
			core.DebugPrintln("adc: " + err.Error())
		}
	}}
	heartbeat := &core.Task{Period: heartbeatPeriodMs, Handler: func() {
		led.Set(!led.Get())
	}}
	report := &core.Task{Period: reportPeriodMs, Handler: reportTask}

	sched = core.NewScheduler(service, heartbeat, report)
	sched.InitTable()

	if err := sampler.Init(); err != nil {
		core.DebugPrintln("adc init: " + err.Error())
	}
	core.DebugPrintln("scheduler up, window=" + core.Utoa(core.AvgWindow))

	// 1 ms tick derived from the hardware microsecond timer. TinyGo
	// exposes no periodic-interrupt hook on the RP2040, so the tick
	// source runs at the top of the loop; OnTick itself stays
	// interrupt-safe either way.
	lastUS := hardwareMicros()
	for {
		for hardwareMicros()-lastUS >= 1000 {
			lastUS += 1000
			sched.OnTick()
		}
		sched.Dispatch()
	}
}

// reportTask writes one "T=NN.F A=NN.F" line per report period.
func reportTask() {
	last := core.FormatFixedPoint(sampler.Last())
	avg := sampler.FormatAverage()

	line := make([]byte, 0, 16)
	line = append(line, 'T', '=')
	line = append(line, last[:]...)
	line = append(line, ' ', 'A', '=')
	line = append(line, avg[:]...)
	line = append(line, '\r', '\n')
	machine.Serial.Write(line)
}

func writeLine(s string) {
	machine.Serial.Write([]byte(s))
	machine.Serial.Write([]byte{'\r', '\n'})
}
