// cmd/floatlink/root.go
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/tamzrod/floatlink/internal/config"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "floatlink",
		Short: "Float transport over Modbus holding registers",
		Long: `floatlink - move a single float between two Modbus peers.

A value is encoded as IEEE-754 single precision, protected by a CRC4
and written as three holding registers: high word, low word, CRC.

Offline tools:
  encode, decode, crc

Network:
  send   write one value to a Modbus server
  serve  run the receiving Modbus TCP server
  watch  poll a server and validate the frame it holds`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log Modbus traffic")

	root.AddCommand(
		newEncodeCmd(),
		newDecodeCmd(),
		newCRCCmd(),
		newSendCmd(opts),
		newServeCmd(opts),
		newWatchCmd(opts),
	)

	return root
}

// loadConfig reads the config file, lets the caller apply flag
// overrides, then validates and normalizes the result.
func (o *rootOptions) loadConfig(override func(*config.Config)) (*config.Config, error) {
	c, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}

	if override != nil {
		override(c)
	}

	if err := config.Validate(c); err != nil {
		return nil, err
	}
	config.Normalize(c)

	return c, nil
}

// modbusLogger returns the transport logger, nil unless --verbose.
func (o *rootOptions) modbusLogger() *log.Logger {
	if !o.verbose {
		return nil
	}
	return log.New(os.Stderr, "modbus: ", log.LstdFlags)
}
