// cmd/floatlink/send.go
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tamzrod/floatlink/internal/config"
	"github.com/tamzrod/floatlink/internal/writer"
)

func newSendCmd(opts *rootOptions) *cobra.Command {
	var (
		endpoint string
		unitID   uint8
		address  uint16
	)

	cmd := &cobra.Command{
		Use:   "send <value>",
		Short: "Encode a value and write its frame to a Modbus server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("send: %q is not a number", args[0])
			}

			flags := cmd.Flags()
			c, err := opts.loadConfig(func(c *config.Config) {
				if flags.Changed("endpoint") {
					c.Sender.Endpoint = endpoint
				}
				if flags.Changed("unit-id") {
					c.Sender.UnitID = unitID
				}
				if flags.Changed("address") {
					c.Sender.Address = address
				}
			})
			if err != nil {
				return err
			}

			plan, err := writer.BuildPlan(c.Sender)
			if err != nil {
				return err
			}

			client, closeClient, err := writer.BuildEndpointClient(c.Sender, opts.modbusLogger())
			if err != nil {
				return err
			}
			defer closeClient()

			f, err := writer.New(plan, client).Send(v)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Registers %v written to %s at address %d\n",
				f.Registers(), plan.Target, plan.Address)
			return nil
		},
	}

	cmd.Flags().StringVarP(&endpoint, "endpoint", "e", "", "Server host:port (tcp mode)")
	cmd.Flags().Uint8Var(&unitID, "unit-id", 0, "Modbus unit id")
	cmd.Flags().Uint16Var(&address, "address", 0, "First register of the frame")
	return cmd
}
