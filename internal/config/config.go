// internal/config/config.go
package config

type Config struct {
	Sender   SenderConfig   `yaml:"sender"`
	Receiver ReceiverConfig `yaml:"receiver"`
	Watch    WatchConfig    `yaml:"watch"`
}

// ---- SENDER ----

type SenderConfig struct {
	Mode      string       `yaml:"mode"`     // "tcp" or "rtu"
	Endpoint  string       `yaml:"endpoint"` // tcp: "host:port"
	Serial    SerialConfig `yaml:"serial"`   // rtu only
	UnitID    uint8        `yaml:"unit_id"`
	Address   uint16       `yaml:"address"` // first register of the frame
	TimeoutMs int          `yaml:"timeout_ms"`
}

type SerialConfig struct {
	Port     string `yaml:"port"`
	Baud     int    `yaml:"baud"`
	DataBits int    `yaml:"data_bits"`
	Parity   string `yaml:"parity"` // "N","E","O"
	StopBits int    `yaml:"stop_bits"`
}

// ---- RECEIVER ----

type ReceiverConfig struct {
	Listen     string     `yaml:"listen"` // "0.0.0.0:502"
	Registers  uint16     `yaml:"registers"`
	MaxClients uint       `yaml:"max_clients"`
	TimeoutMs  int        `yaml:"timeout_ms"`
	MQTT       MQTTConfig `yaml:"mqtt"`
}

// MQTTConfig is optional: an empty broker disables publishing.
type MQTTConfig struct {
	Broker   string `yaml:"broker"` // "tcp://mqtt:1883"
	ClientID string `yaml:"client_id"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	TLS      bool   `yaml:"tls"`
	// Insecure skips broker certificate verification. Requires TLS.
	Insecure bool   `yaml:"insecure_skip_verify"`
	Topic    string `yaml:"topic"`  // prefix
	Device   string `yaml:"device"` // topic = <topic>/<device>/state
}

// ---- WATCH ----

type WatchConfig struct {
	Endpoint   string `yaml:"endpoint"`
	UnitID     uint8  `yaml:"unit_id"`
	Address    uint16 `yaml:"address"`
	IntervalMs int    `yaml:"interval_ms"`
	TimeoutMs  int    `yaml:"timeout_ms"`
}
