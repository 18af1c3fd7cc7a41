// cmd/floatlink/serve.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tamzrod/floatlink/internal/config"
	"github.com/tamzrod/floatlink/internal/publish"
	"github.com/tamzrod/floatlink/internal/receiver"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the receiving Modbus TCP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			c, err := opts.loadConfig(func(c *config.Config) {
				if flags.Changed("listen") {
					c.Receiver.Listen = listen
				}
			})
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, c.Receiver)
		},
	}

	cmd.Flags().StringVarP(&listen, "listen", "l", "", "Listen address host:port")
	return cmd
}

// serve runs the receiver until ctx is done.
func serve(ctx context.Context, rc config.ReceiverConfig) error {
	// ---- optional MQTT sink ----
	var sink receiver.Sink
	if rc.MQTT.Broker != "" {
		s, err := publish.NewMQTTSink(publish.Config{
			BrokerURL: rc.MQTT.Broker,
			ClientID:  rc.MQTT.ClientID,
			Username:  rc.MQTT.Username,
			Password:  rc.MQTT.Password,
			TLS:       rc.MQTT.TLS,
			Insecure:  rc.MQTT.Insecure,
			Topic:     rc.MQTT.Topic,
			Device:    rc.MQTT.Device,
		})
		if err != nil {
			return err
		}
		defer s.Close()

		// publishing must never hold up the Modbus response
		async := receiver.NewAsyncSink(s, receiver.DefaultQueueSize)
		defer async.Close()
		sink = async
		log.Printf("serve: publishing to %s (topic=%s)", rc.MQTT.Broker, publish.Topic(rc.MQTT.Topic, rc.MQTT.Device))
	}

	r, srv, err := receiver.Build(rc, sink)
	if err != nil {
		return err
	}
	if err := srv.Start(); err != nil {
		return fmt.Errorf("serve: listen %s: %w", rc.Listen, err)
	}
	log.Printf("serve: listening on %s (registers=%d)", rc.Listen, rc.Registers)

	<-ctx.Done()

	if err := srv.Stop(); err != nil {
		log.Printf("serve: stop: %v", err)
	}

	st := r.Status()
	log.Printf("serve: stopped (accepted=%d rejected=%d)", st.FramesAccepted, st.FramesRejected)
	return nil
}
