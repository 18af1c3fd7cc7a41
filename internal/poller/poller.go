// internal/poller/poller.go
package poller

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/tamzrod/floatlink/internal/frame"
)

// Client abstracts the one Modbus operation the poller needs.
type Client interface {
	ReadHoldingRegisters(addr, qty uint16) ([]uint16, error) // FC 3
}

// Factory opens a new client. One attempt per call.
type Factory func() (Client, error)

// Config is the minimal runtime config the poller needs.
type Config struct {
	Name     string
	Interval time.Duration
	Address  uint16 // first register of the frame
}

// Poller is a dumb, clock-driven frame reader.
type Poller struct {
	cfg     Config
	factory Factory

	mu     sync.Mutex
	client Client
}

// New creates a poller with immutable config.
// factory may be nil, in which case a dead client is never replaced.
func New(cfg Config, client Client, factory Factory) (*Poller, error) {
	if cfg.Name == "" {
		return nil, errors.New("poller: name required")
	}
	if cfg.Interval <= 0 {
		return nil, errors.New("poller: interval must be > 0")
	}
	if int(cfg.Address)+frame.RegistersPerFrame > 0x10000 {
		return nil, fmt.Errorf("poller: frame at address %d overruns the register space", cfg.Address)
	}
	return &Poller{cfg: cfg, client: client, factory: factory}, nil
}

// PollOnce performs exactly one poll cycle.
// A failed read discards the client; the factory is tried on the next cycle.
func (p *Poller) PollOnce() PollResult {
	p.mu.Lock()
	defer p.mu.Unlock()

	res := PollResult{
		Name: p.cfg.Name,
		At:   time.Now(),
	}

	if p.client == nil {
		if p.factory == nil {
			res.Err = errors.New("poller: no client")
			return res
		}
		c, err := p.factory()
		if err != nil {
			res.Err = fmt.Errorf("poller: reconnect: %w", err)
			return res
		}
		p.client = c
	}

	regs, err := p.client.ReadHoldingRegisters(p.cfg.Address, frame.RegistersPerFrame)
	if err != nil {
		p.discard()
		res.Err = err
		return res
	}

	f, err := frame.FromRegisters(regs)
	if err != nil {
		res.Err = err
		return res
	}
	res.Raw = f

	v, err := frame.DecodeValue(f)
	if err != nil {
		res.Err = err
		return res
	}

	res.Value = v
	return res
}

func (p *Poller) discard() {
	if c, ok := p.client.(io.Closer); ok {
		_ = c.Close()
	}
	p.client = nil
}

// Close releases the current client, if any.
func (p *Poller) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if c, ok := p.client.(io.Closer); ok {
		p.client = nil
		return c.Close()
	}
	return nil
}
