// SPDX-License-Identifier: EPL-2.0

package main

import (
	"github.com/ik5/peakvol"
	"github.com/ik5/peakvol/internal/config"
	"github.com/ik5/peakvol/internal/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries what every subcommand shares.
type app struct {
	projectPath string
	cfg         *config.Config
	log         *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}

	root := &cobra.Command{
		Use:           "peakvol",
		Short:         "Volume meter for video editing timelines",
		Long:          "peakvol reads a project file and reports the summed peak volume of the sound clips under the playhead.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}

	root.PersistentFlags().StringVarP(&a.projectPath, "project", "p", "project.json", "project file")

	root.AddCommand(
		newSampleCmd(a),
		newScanCmd(a),
		newFadeCmd(a),
		newWatchCmd(a),
	)

	return root
}

func (a *app) setup() error {
	a.cfg = config.Load()

	log, err := logger.New(a.cfg)
	if err != nil {
		return err
	}
	a.log = log

	return nil
}

func (a *app) open() (*peakvol.Session, error) {
	var root string
	if a.cfg != nil {
		root = a.cfg.MediaRoot
	}

	return peakvol.Open(a.projectPath,
		peakvol.WithLogger(a.log),
		peakvol.WithMediaRoot(root))
}
