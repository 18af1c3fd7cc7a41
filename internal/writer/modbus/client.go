// internal/writer/modbus/client.go
package modbus

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/goburrow/modbus"
)

// EndpointClient is a single connection (TCP or serial RTU) to one Modbus server.
// It serializes requests because it mutates SlaveId per write.
type EndpointClient struct {
	mu      sync.Mutex
	handler connector
	setUnit func(uint8)
	client  modbus.Client
}

type connector interface {
	Connect() error
	Close() error
}

type Config struct {
	Mode     string // "tcp" (default) or "rtu"
	Endpoint string // tcp address
	Timeout  time.Duration

	// RTU
	Port     string
	Baud     int
	DataBits int
	Parity   string
	StopBits int

	// Logger receives goburrow frame dumps when set.
	Logger *log.Logger
}

func NewEndpointClient(cfg Config) (*EndpointClient, error) {
	switch strings.ToLower(cfg.Mode) {
	case "", "tcp":
		if cfg.Endpoint == "" {
			return nil, errors.New("writer modbus: endpoint required")
		}

		h := modbus.NewTCPClientHandler(cfg.Endpoint)
		h.Timeout = cfg.Timeout
		h.Logger = cfg.Logger

		if err := h.Connect(); err != nil {
			return nil, fmt.Errorf("writer modbus: connect %s: %w", cfg.Endpoint, err)
		}

		return &EndpointClient{
			handler: h,
			setUnit: func(id uint8) { h.SlaveId = id },
			client:  modbus.NewClient(h),
		}, nil

	case "rtu":
		if cfg.Port == "" {
			return nil, errors.New("writer modbus: serial port required")
		}

		h := modbus.NewRTUClientHandler(cfg.Port)
		h.BaudRate = cfg.Baud
		h.DataBits = cfg.DataBits
		h.Parity = cfg.Parity
		h.StopBits = cfg.StopBits
		h.Timeout = cfg.Timeout
		h.Logger = cfg.Logger

		if err := h.Connect(); err != nil {
			return nil, fmt.Errorf("writer modbus: open %s: %w", cfg.Port, err)
		}

		return &EndpointClient{
			handler: h,
			setUnit: func(id uint8) { h.SlaveId = id },
			client:  modbus.NewClient(h),
		}, nil

	default:
		return nil, fmt.Errorf("writer modbus: unknown mode %q", cfg.Mode)
	}
}

func (c *EndpointClient) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.handler.Close()
}

// WriteRegisters writes regs starting at addr with FC16.
func (c *EndpointClient) WriteRegisters(unitID uint8, addr uint16, regs []uint16) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.setUnit(unitID)

	qty := uint16(len(regs))
	payload := packRegisters(regs)

	_, err := c.client.WriteMultipleRegisters(addr, qty, payload)
	return err
}

// Modbus register memory order (BIG-ENDIAN)
func packRegisters(regs []uint16) []byte {
	out := make([]byte, len(regs)*2)
	for i, r := range regs {
		out[2*i] = byte(r >> 8)
		out[2*i+1] = byte(r)
	}
	return out
}
