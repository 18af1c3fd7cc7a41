// internal/writer/builder.go
package writer

import (
	"errors"
	"log"
	"time"

	cfg "github.com/tamzrod/floatlink/internal/config"
	wmodbus "github.com/tamzrod/floatlink/internal/writer/modbus"
)

// BuildPlan converts the sender config into a Writer Plan.
// Assumes config has already passed Validate and Normalize.
func BuildPlan(s cfg.SenderConfig) (Plan, error) {
	target := s.Endpoint
	if s.Mode == "rtu" {
		target = s.Serial.Port
	}
	if target == "" {
		return Plan{}, errors.New("writer: sender endpoint required")
	}

	return Plan{
		Target:  target,
		UnitID:  s.UnitID,
		Address: s.Address,
	}, nil
}

// BuildEndpointClient opens the connection described by the sender config.
// logger may be nil.
func BuildEndpointClient(s cfg.SenderConfig, logger *log.Logger) (*wmodbus.EndpointClient, func() error, error) {
	c, err := wmodbus.NewEndpointClient(wmodbus.Config{
		Mode:     s.Mode,
		Endpoint: s.Endpoint,
		Timeout:  time.Duration(s.TimeoutMs) * time.Millisecond,
		Port:     s.Serial.Port,
		Baud:     s.Serial.Baud,
		DataBits: s.Serial.DataBits,
		Parity:   s.Serial.Parity,
		StopBits: s.Serial.StopBits,
		Logger:   logger,
	})
	if err != nil {
		return nil, nil, err
	}

	return c, c.Close, nil
}
