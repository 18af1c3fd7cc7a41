// internal/config/validate.go
package config

import (
	"fmt"
	"net"
	"strings"

	"github.com/tamzrod/floatlink/internal/frame"
	"github.com/tamzrod/floatlink/internal/status"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
// Zero values are accepted; Normalize fills them in.
func Validate(cfg *Config) error {
	// ------------------------------------------------------------
	// SENDER
	// ------------------------------------------------------------

	s := cfg.Sender

	switch strings.ToLower(s.Mode) {
	case "", "tcp":
		if s.Endpoint != "" {
			if _, _, err := net.SplitHostPort(s.Endpoint); err != nil {
				return fmt.Errorf("sender: endpoint %q: %v", s.Endpoint, err)
			}
		}
	case "rtu":
		if s.Serial.Port == "" {
			return fmt.Errorf("sender: mode rtu requires serial.port")
		}
		switch strings.ToUpper(s.Serial.Parity) {
		case "", "N", "E", "O":
		default:
			return fmt.Errorf("sender: serial.parity must be N, E or O, got %q", s.Serial.Parity)
		}
		if s.Serial.StopBits < 0 || s.Serial.StopBits > 2 {
			return fmt.Errorf("sender: serial.stop_bits must be 1 or 2, got %d", s.Serial.StopBits)
		}
	default:
		return fmt.Errorf("sender: mode must be 'tcp' or 'rtu', got %q", s.Mode)
	}

	if s.TimeoutMs < 0 {
		return fmt.Errorf("sender: timeout_ms must be >= 0")
	}
	if err := frameFits("sender", s.Address); err != nil {
		return err
	}

	// ------------------------------------------------------------
	// RECEIVER
	// ------------------------------------------------------------

	r := cfg.Receiver

	if r.Listen != "" {
		if _, _, err := net.SplitHostPort(r.Listen); err != nil {
			return fmt.Errorf("receiver: listen %q: %v", r.Listen, err)
		}
	}

	// frame at 0, status block after it
	minRegs := status.BaseAddress + status.SlotsPerBlock
	if r.Registers != 0 && int(r.Registers) < minRegs {
		return fmt.Errorf(
			"receiver: registers must be >= %d to hold the frame and status block, got %d",
			minRegs,
			r.Registers,
		)
	}
	if r.TimeoutMs < 0 {
		return fmt.Errorf("receiver: timeout_ms must be >= 0")
	}
	if r.MQTT.Broker == "" && (r.MQTT.Topic != "" || r.MQTT.Device != "") {
		return fmt.Errorf("receiver: mqtt.topic/device set but mqtt.broker is empty")
	}
	if r.MQTT.Insecure && !r.MQTT.TLS {
		return fmt.Errorf("receiver: mqtt.insecure_skip_verify requires mqtt.tls")
	}

	// ------------------------------------------------------------
	// WATCH
	// ------------------------------------------------------------

	w := cfg.Watch

	if w.Endpoint != "" {
		if _, _, err := net.SplitHostPort(w.Endpoint); err != nil {
			return fmt.Errorf("watch: endpoint %q: %v", w.Endpoint, err)
		}
	}
	if w.IntervalMs < 0 || w.TimeoutMs < 0 {
		return fmt.Errorf("watch: interval_ms and timeout_ms must be >= 0")
	}
	if err := frameFits("watch", w.Address); err != nil {
		return err
	}

	return nil
}

// frameFits checks that a frame starting at addr stays inside the 16-bit address space.
func frameFits(section string, addr uint16) error {
	end := int(addr) + frame.RegistersPerFrame - 1
	if end > 0xFFFF {
		return fmt.Errorf(
			"%s: frame at address %d overruns the register space (%d-%d)",
			section,
			addr,
			addr,
			end,
		)
	}
	return nil
}
