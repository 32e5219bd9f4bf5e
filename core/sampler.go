package core

// Reference hardware parameters: a 12-bit converter reading a
// potentiometer that stands in for a 0..40 degree temperature probe,
// sampled every 20 ms and averaged over the last 5 readings.
const (
	FullScaleCounts   = 4096 // exclusive upper bound of raw codes
	TempMaxC          = 40
	SamplePeriodTicks = 20
	AvgWindow         = 5
	DefaultChannel    = ADCChannelID(0)
)

// SamplerConfig overrides the reference sampling parameters. Zero
// fields keep the defaults above.
type SamplerConfig struct {
	Channel     ADCChannelID
	PeriodTicks uint32
	FullScale   uint32
	MaxC        uint8
	Window      int
}

// Sampler performs one blocking conversion per sampling period, maps
// the raw code to whole degrees and keeps a rolling average window.
// It runs as one scheduler task body; everything here executes in the
// main-loop context, so no locking is needed.
type Sampler struct {
	drv ADCDriver

	defaultChannel ADCChannelID
	period         uint32
	fullScale      uint32
	maxC           uint8

	channel  ADCChannelID
	lastKick uint32
	last     uint8
	window   *Rolling
}

// NewSampler wires a sampler to the given converter driver.
func NewSampler(drv ADCDriver, cfg SamplerConfig) *Sampler {
	if cfg.PeriodTicks == 0 {
		cfg.PeriodTicks = SamplePeriodTicks
	}
	if cfg.FullScale == 0 {
		cfg.FullScale = FullScaleCounts
	}
	if cfg.MaxC == 0 {
		cfg.MaxC = TempMaxC
	}
	if cfg.Window == 0 {
		cfg.Window = AvgWindow
	}
	return &Sampler{
		drv:            drv,
		defaultChannel: cfg.Channel,
		period:         cfg.PeriodTicks,
		fullScale:      cfg.FullScale,
		maxC:           cfg.MaxC,
		channel:        cfg.Channel,
		window:         NewRolling(cfg.Window),
	}
}

// Init brings up the converter, selects the default channel and clears
// the kick time, the last value and the average window.
func (s *Sampler) Init() error {
	if err := s.drv.Init(); err != nil {
		return err
	}
	s.channel = s.defaultChannel
	if err := s.drv.ConfigureChannel(s.channel); err != nil {
		return err
	}
	s.lastKick = 0
	s.last = 0
	s.window.Reset()
	return nil
}

// SetChannel switches the active input channel. Takes effect on the
// next conversion. Must not be called while a conversion is in flight;
// the cooperative model guarantees that when callers run as scheduler
// tasks.
func (s *Sampler) SetChannel(ch ADCChannelID) {
	s.channel = ch
}

// Channel returns the active input channel.
func (s *Sampler) Channel() ADCChannelID {
	return s.channel
}

// Service is the sampler's task body. tick is the scheduler's current
// tick count. Once at least one sampling period has elapsed it performs
// exactly one blocking conversion and pushes the mapped value into the
// average window; otherwise it is a no-op. The unsigned subtraction is
// wraparound-safe across the 32-bit tick rollover, and the kick time is
// reassigned rather than accumulated, so a late call delays the next
// sample instead of doubling up.
func (s *Sampler) Service(tick uint32) error {
	if tick-s.lastKick < s.period {
		return nil
	}
	s.lastKick = tick

	counts, err := s.drv.ReadRaw(s.channel)
	if err != nil {
		return err
	}
	s.last = s.countsToTemp(counts)
	s.window.Push(s.last)
	return nil
}

// countsToTemp maps a raw code linearly onto [0, maxC], saturating at
// the top of the range. Integer arithmetic, monotonic non-decreasing.
func (s *Sampler) countsToTemp(counts ADCValue) uint8 {
	t := uint32(counts) * uint32(s.maxC) / s.fullScale
	if t > uint32(s.maxC) {
		t = uint32(s.maxC)
	}
	return uint8(t)
}

// Last returns the most recently converted temperature.
func (s *Sampler) Last() uint8 {
	return s.last
}

// Average returns the rolling mean over the sample window, 0 before
// the first conversion.
func (s *Sampler) Average() uint8 {
	return s.window.Average()
}

// FormatAverage renders the rolling mean as a 4-character "NN.F"
// buffer.
func (s *Sampler) FormatAverage() [4]byte {
	return FormatFixedPoint(s.window.Average())
}
