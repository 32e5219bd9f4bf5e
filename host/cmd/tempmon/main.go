// tempmon tails the controller's serial report stream and logs the
// readings, warning when the rolling average crosses the configured
// limit. It replaces the debug console the board no longer has.
package main

import (
	"flag"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Dystopia0910/734429-Embebidos2/host/config"
	"github.com/Dystopia0910/734429-Embebidos2/host/report"
	"github.com/Dystopia0910/734429-Embebidos2/host/serial"
)

var (
	configPath = flag.String("config", "", "YAML config file (optional)")
	device     = flag.String("device", "", "serial device, overrides config")
	baud       = flag.Int("baud", 0, "baud rate, overrides config")
	verbose    = flag.Bool("verbose", false, "log every report line")
)

func main() {
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()
	if !*verbose {
		log = log.Level(zerolog.InfoLevel)
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("load config")
		}
	}
	if *device != "" {
		cfg.Serial.Device = *device
	}
	if *baud != 0 {
		cfg.Serial.Baud = *baud
	}

	port, err := serial.Open(&serial.Config{
		Device:      cfg.Serial.Device,
		Baud:        cfg.Serial.Baud,
		ReadTimeout: cfg.Serial.ReadTimeoutMs,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("open serial port")
	}
	defer port.Close()

	log.Info().
		Str("device", cfg.Serial.Device).
		Int("baud", cfg.Serial.Baud).
		Uint8("alert_max_c", cfg.Alert.MaxC).
		Msg("monitoring")

	buf := make([]byte, 256)
	var line []byte
	for {
		n, err := port.Read(buf)
		if err != nil && err != io.EOF {
			log.Fatal().Err(err).Msg("serial read")
		}
		// A zero-byte read means the read timeout expired with the
		// board silent; keep polling.
		for _, b := range buf[:n] {
			if b == '\n' {
				handleLine(log, cfg, strings.TrimRight(string(line), "\r"))
				line = line[:0]
				continue
			}
			line = append(line, b)
		}
	}
}

func handleLine(log zerolog.Logger, cfg *config.Config, line string) {
	if line == "" {
		return
	}
	r, err := report.ParseLine(line)
	if err != nil {
		log.Warn().Err(err).Str("line", line).Msg("unparseable report")
		return
	}

	log.Debug().Uint8("temp_c", r.Last).Uint8("avg_c", r.Avg).Msg("report")
	if r.Avg > cfg.Alert.MaxC {
		log.Warn().
			Uint8("avg_c", r.Avg).
			Uint8("limit_c", cfg.Alert.MaxC).
			Msg("average temperature above limit")
	}
}
