// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newFadeCmd(a *app) *cobra.Command {
	var (
		clip   string
		create bool
		prune  bool
	)

	cmd := &cobra.Command{
		Use:   "fade",
		Short: "Show or create a clip's fade curve",
		Long: `Print the keyframes of a clip's fade curve.

--create seeds a missing curve with the clip's static gain at its start
frame and saves the project. --prune drops curves whose clip no longer
exists, such as those left behind by a rename, and saves the project.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if clip == "" && !prune {
				return fmt.Errorf("--clip is required unless --prune is given")
			}

			s, err := a.open()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			dirty := false

			if prune {
				n := s.Prune()
				fmt.Fprintf(out, "pruned %d curve(s)\n", n)
				dirty = n > 0
			}

			if clip != "" {
				c, err := s.Clip(clip)
				if err != nil {
					return err
				}

				existed, _ := s.Fade(clip, false)
				curve, err := s.Fade(clip, create)
				if err != nil {
					return err
				}

				if curve == nil {
					fmt.Fprintf(out, "%s: no fade curve, static gain %.4f\n", clip, c.StaticGain())
				} else {
					fmt.Fprintln(out, curve.Key().DataPath())
					for _, k := range curve.Points() {
						fmt.Fprintf(out, "%g %.4f %s\n", k.Frame, k.Value, k.Interpolation)
					}
					dirty = dirty || existed == nil
				}
			}

			if dirty {
				if err := s.Save(); err != nil {
					return err
				}
				a.log.Info("project saved", zap.String("path", s.Path))
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&clip, "clip", "c", "", "clip name")
	cmd.Flags().BoolVar(&create, "create", false, "create the curve when missing and save the project")
	cmd.Flags().BoolVar(&prune, "prune", false, "remove curves of clips that no longer exist and save the project")

	return cmd
}
