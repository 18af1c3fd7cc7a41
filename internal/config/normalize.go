// internal/config/normalize.go
package config

import "strings"

// Defaults applied by Normalize.
const (
	DefaultSenderEndpoint  = "127.0.0.1:502"
	DefaultUnitID          = 1
	DefaultTimeoutMs       = 1000
	DefaultListen          = "0.0.0.0:502"
	DefaultRegisters       = 10
	DefaultMaxClients      = 10
	DefaultReceiverTimeout = 30000
	DefaultIntervalMs      = 1000
	DefaultMQTTTopic       = "floatlink"
	DefaultMQTTDevice      = "receiver"
	DefaultMQTTClientID    = "floatlink-receiver"
)

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	// ---- sender ----

	s := &cfg.Sender
	s.Mode = strings.ToLower(s.Mode)
	if s.Mode == "" {
		s.Mode = "tcp"
	}
	if s.Mode == "tcp" && s.Endpoint == "" {
		s.Endpoint = DefaultSenderEndpoint
	}
	if s.UnitID == 0 {
		s.UnitID = DefaultUnitID
	}
	if s.TimeoutMs == 0 {
		s.TimeoutMs = DefaultTimeoutMs
	}
	if s.Mode == "rtu" {
		// 9600 8N1 unless told otherwise
		if s.Serial.Baud == 0 {
			s.Serial.Baud = 9600
		}
		if s.Serial.DataBits == 0 {
			s.Serial.DataBits = 8
		}
		s.Serial.Parity = strings.ToUpper(s.Serial.Parity)
		if s.Serial.Parity == "" {
			s.Serial.Parity = "N"
		}
		if s.Serial.StopBits == 0 {
			s.Serial.StopBits = 1
		}
	}

	// ---- receiver ----

	r := &cfg.Receiver
	if r.Listen == "" {
		r.Listen = DefaultListen
	}
	if r.Registers == 0 {
		r.Registers = DefaultRegisters
	}
	if r.MaxClients == 0 {
		r.MaxClients = DefaultMaxClients
	}
	if r.TimeoutMs == 0 {
		r.TimeoutMs = DefaultReceiverTimeout
	}
	if r.MQTT.Broker != "" {
		if r.MQTT.Topic == "" {
			r.MQTT.Topic = DefaultMQTTTopic
		}
		if r.MQTT.Device == "" {
			r.MQTT.Device = DefaultMQTTDevice
		}
		if r.MQTT.ClientID == "" {
			r.MQTT.ClientID = DefaultMQTTClientID
		}
	}

	// ---- watch ----

	w := &cfg.Watch
	if w.Endpoint == "" {
		w.Endpoint = DefaultSenderEndpoint
	}
	if w.UnitID == 0 {
		w.UnitID = DefaultUnitID
	}
	if w.IntervalMs == 0 {
		w.IntervalMs = DefaultIntervalMs
	}
	if w.TimeoutMs == 0 {
		w.TimeoutMs = DefaultTimeoutMs
	}
}
