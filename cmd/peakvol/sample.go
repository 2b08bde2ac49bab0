// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSampleCmd(a *app) *cobra.Command {
	var (
		frame int
		live  bool
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Print the volume at a frame",
		Long: `Print the summed peak volume of the audible clips at a frame.

Without --frame the project's current frame is used. Fade curves are
applied unless --live is given, in which case the static clip volumes are.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open()
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("frame") {
				frame = s.Project.CurrentFrame
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%.4f\n", s.Sample(frame, !live))

			return nil
		},
	}

	cmd.Flags().IntVarP(&frame, "frame", "f", 0, "frame to sample (default: current frame)")
	cmd.Flags().BoolVar(&live, "live", false, "use static clip volumes instead of fade curves")

	return cmd
}
