// cmd/floatlink/codec.go
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tamzrod/floatlink/internal/bits"
	"github.com/tamzrod/floatlink/internal/crc4"
	"github.com/tamzrod/floatlink/internal/frame"
	"github.com/tamzrod/floatlink/internal/ieee754"
)

func newEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <value>",
		Short: "Show the bits, CRC and registers for a value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("encode: %q is not a number", args[0])
			}

			payload, err := ieee754.Encode(v)
			if err != nil {
				return err
			}
			crc, err := crc4.Compute(payload, crc4.DefaultPolynomial)
			if err != nil {
				return err
			}
			f, err := frame.Pack(payload, crc)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "IEEE-754:   %s\n", payload)
			fmt.Fprintf(out, "CRC4:       %s\n", crc)
			fmt.Fprintf(out, "With CRC:   %s%s\n", payload, crc)
			fmt.Fprintf(out, "Words:      [%s %s]\n",
				payload[:bits.RegisterWidth], payload[bits.RegisterWidth:])
			fmt.Fprintf(out, "Registers:  %v\n", f.Registers())
			return nil
		},
	}
}

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <bits>",
		Short: "Decode a 32-bit IEEE-754 string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := ieee754.Decode(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(v, 'g', -1, 64))
			return nil
		},
	}
}

func newCRCCmd() *cobra.Command {
	var poly string

	cmd := &cobra.Command{
		Use:   "crc <bits>",
		Short: "Compute the 4-bit CRC remainder of a bit string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := crc4.Compute(args[0], poly)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), r)
			return nil
		},
	}

	cmd.Flags().StringVar(&poly, "poly", crc4.DefaultPolynomial, "Generator polynomial bits")
	return cmd
}
