// internal/poller/builder.go
package poller

import (
	"log"
	"time"

	cfg "github.com/tamzrod/floatlink/internal/config"
	pmodbus "github.com/tamzrod/floatlink/internal/poller/modbus"
)

// Build constructs a Poller and wires Modbus client lifecycle.
// Connection is reused while healthy.
// On transport death, Poller discards the client and uses factory on a future tick.
// logger may be nil.
func Build(w cfg.WatchConfig, logger *log.Logger) (*Poller, func() error, error) {
	// client factory: ONE attempt per call
	factory := func() (Client, error) {
		c, err := pmodbus.New(pmodbus.Config{
			Endpoint: w.Endpoint,
			UnitID:   w.UnitID,
			Timeout:  time.Duration(w.TimeoutMs) * time.Millisecond,
			Logger:   logger,
		})
		if err != nil {
			return nil, err
		}
		return c, nil
	}

	// initial client (fail fast at startup)
	client, err := factory()
	if err != nil {
		return nil, nil, err
	}

	p, err := New(
		Config{
			Name:     w.Endpoint,
			Interval: time.Duration(w.IntervalMs) * time.Millisecond,
			Address:  w.Address,
		},
		client,
		factory,
	)
	if err != nil {
		return nil, nil, err
	}

	return p, p.Close, nil
}
