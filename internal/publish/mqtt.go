// internal/publish/mqtt.go
package publish

import (
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/tamzrod/floatlink/internal/receiver"
)

const publishTimeout = 5 * time.Second

// API is the part of the paho client the sink uses.
type API interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
	Disconnect(quiesce uint)
	IsConnectionOpen() bool
}

type Config struct {
	BrokerURL string // e.g., "tcp://mqtt:1883"
	ClientID  string
	Username  string
	Password  string
	TLS       bool
	// Insecure skips broker certificate verification.
	Insecure  bool
	Topic     string // prefix
	Device    string
}

// MQTTSink publishes accepted readings as JSON state messages.
type MQTTSink struct {
	api   API
	topic string
	qos   byte
}

var _ receiver.Sink = (*MQTTSink)(nil)

// NewMQTTSink connects to the broker.
func NewMQTTSink(cfg Config) (*MQTTSink, error) {
	if cfg.BrokerURL == "" {
		return nil, errors.New("publish: broker url required")
	}

	opts := mqtt.NewClientOptions().
		AddBroker(cfg.BrokerURL).
		SetClientID(cfg.ClientID).
		SetKeepAlive(30 * time.Second).
		SetConnectTimeout(5 * time.Second).
		SetPingTimeout(3 * time.Second).
		SetOrderMatters(false)

	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}
	if tc := tlsConfig(cfg); tc != nil {
		opts.SetTLSConfig(tc)
	}

	client := mqtt.NewClient(opts)
	t := client.Connect()
	if ok := t.WaitTimeout(10 * time.Second); !ok {
		return nil, fmt.Errorf("publish: connect %s: timeout", cfg.BrokerURL)
	}
	if err := t.Error(); err != nil {
		return nil, fmt.Errorf("publish: connect %s: %w", cfg.BrokerURL, err)
	}

	return newSink(client, Topic(cfg.Topic, cfg.Device)), nil
}

// tlsConfig returns nil when TLS is off. Certificates are verified
// unless Insecure is set.
func tlsConfig(cfg Config) *tls.Config {
	if !cfg.TLS {
		return nil
	}
	return &tls.Config{InsecureSkipVerify: cfg.Insecure}
}

func newSink(api API, topic string) *MQTTSink {
	return &MQTTSink{api: api, topic: topic, qos: 1}
}

// Topic returns the state topic for a device.
func Topic(prefix, device string) string {
	return prefix + "/" + device + "/state"
}

// Publish sends one reading and waits for the broker acknowledgement.
func (s *MQTTSink) Publish(r receiver.Reading) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal reading: %w", err)
	}

	t := s.api.Publish(s.topic, s.qos, false, data)
	if !t.WaitTimeout(publishTimeout) {
		return fmt.Errorf("publish %s: timeout", s.topic)
	}
	return t.Error()
}

// Close disconnects, allowing 250ms for in-flight work.
func (s *MQTTSink) Close() {
	if s.api != nil && s.api.IsConnectionOpen() {
		s.api.Disconnect(250)
	}
}
