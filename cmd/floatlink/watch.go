// cmd/floatlink/watch.go
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tamzrod/floatlink/internal/config"
	"github.com/tamzrod/floatlink/internal/frame"
	"github.com/tamzrod/floatlink/internal/poller"
)

func newWatchCmd(opts *rootOptions) *cobra.Command {
	var (
		endpoint string
		address  uint16
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Poll a Modbus server and validate the frame it holds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			c, err := opts.loadConfig(func(c *config.Config) {
				if flags.Changed("endpoint") {
					c.Watch.Endpoint = endpoint
				}
				if flags.Changed("address") {
					c.Watch.Address = address
				}
			})
			if err != nil {
				return err
			}

			p, closePoller, err := poller.Build(c.Watch, opts.modbusLogger())
			if err != nil {
				return err
			}
			defer closePoller()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := make(chan poller.PollResult)
			go p.Run(ctx, out)

			for {
				select {
				case <-ctx.Done():
					return nil
				case res := <-out:
					logResult(res)
				}
			}
		},
	}

	cmd.Flags().StringVarP(&endpoint, "endpoint", "e", "", "Server host:port")
	cmd.Flags().Uint16Var(&address, "address", 0, "First register of the frame")
	return cmd
}

func logResult(res poller.PollResult) {
	var ce *frame.ChecksumError

	switch {
	case res.Err == nil:
		log.Printf("watch: value=%v (endpoint=%s) registers=%v", res.Value, res.Name, res.Raw.Registers())
	case errors.As(res.Err, &ce):
		log.Printf("watch: crc mismatch (endpoint=%s) computed=%s received=%s bits=%s",
			res.Name, ce.Computed, ce.Received, ce.Payload)
	default:
		log.Printf("watch: poll failed (endpoint=%s): %v", res.Name, res.Err)
	}
}
