// internal/receiver/server.go
package receiver

import (
	"errors"
	"time"

	"github.com/simonvetter/modbus"

	cfg "github.com/tamzrod/floatlink/internal/config"
)

// ServerConfig is minimal listener config.
type ServerConfig struct {
	Listen     string // "host:port"
	Timeout    time.Duration
	MaxClients uint
}

// NewServer wraps h in a Modbus TCP server. Call Start to listen.
func NewServer(sc ServerConfig, h *Handler) (*modbus.ModbusServer, error) {
	if sc.Listen == "" {
		return nil, errors.New("receiver: listen address required")
	}
	return modbus.NewServer(&modbus.ServerConfiguration{
		URL:        "tcp://" + sc.Listen,
		Timeout:    sc.Timeout,
		MaxClients: sc.MaxClients,
	}, h)
}

// Build constructs a Receiver and its (not yet started) server.
// Assumes config has already passed Validate and Normalize.
func Build(rc cfg.ReceiverConfig, sink Sink) (*Receiver, *modbus.ModbusServer, error) {
	r := New(rc.Registers, sink)

	srv, err := NewServer(ServerConfig{
		Listen:     rc.Listen,
		Timeout:    time.Duration(rc.TimeoutMs) * time.Millisecond,
		MaxClients: rc.MaxClients,
	}, r.Handler())
	if err != nil {
		return nil, nil, err
	}

	return r, srv, nil
}
