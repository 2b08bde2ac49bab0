// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"io"

	"github.com/ik5/peakvol"
	"github.com/spf13/cobra"
)

func newScanCmd(a *app) *cobra.Command {
	var from, to, step int

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Play a frame range through the meter",
		Long: `Feed every frame in [from, to] to the meter as a frame-change event
and print one "frame volume display loud" line per repaint.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if step <= 0 {
				return fmt.Errorf("--step must be positive, got %d", step)
			}

			s, err := a.open()
			if err != nil {
				return err
			}

			scan(cmd.OutOrStdout(), s, from, to, step)

			return nil
		},
	}

	cmd.Flags().IntVar(&from, "from", 0, "first frame")
	cmd.Flags().IntVar(&to, "to", 0, "last frame")
	cmd.Flags().IntVar(&step, "step", 1, "frames between events")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func scan(w io.Writer, s *peakvol.Session, from, to, step int) {
	for frame := from; frame <= to; frame += step {
		if s.Update(frame) {
			printMeter(w, s)
		}
		if frame > to-step {
			break
		}
	}
}

func printMeter(w io.Writer, s *peakvol.Session) {
	fmt.Fprintf(w, "%d %.4f %.4f %t\n",
		s.Meter.LastFrame, s.Meter.Volume, s.Meter.Display(), s.Meter.Loud())
}
