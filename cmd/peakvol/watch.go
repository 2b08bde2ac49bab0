// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/ik5/peakvol"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Follow the playhead of a project file",
		Long: `Watch the project file and the sounds next to it. Every change to the
project reloads it and feeds its current frame to the meter; a changed
sound is decoded again. A line is printed only when the meter repaints.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open()
			if err != nil {
				return err
			}

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return fmt.Errorf("creating file watcher: %w", err)
			}
			defer watcher.Close()

			// Editors often replace the file, so watch its directory.
			dir := filepath.Dir(s.Path)
			if err := watcher.Add(dir); err != nil {
				return fmt.Errorf("watching %s: %w", dir, err)
			}
			if root := a.cfg.MediaRoot; root != "" && root != dir {
				if err := watcher.Add(root); err != nil {
					return fmt.Errorf("watching %s: %w", root, err)
				}
			}

			a.log.Info("watching project", zap.String("path", s.Path))

			return watch(cmd.Context(), cmd.OutOrStdout(), s, watcher.Events, watcher.Errors, a.log)
		},
	}
}

// watch prints the meter for the current frame, then on every relevant
// event until ctx ends or the event stream closes.
func watch(ctx context.Context, w io.Writer, s *peakvol.Session, events <-chan fsnotify.Event, errs <-chan error, log *zap.Logger) error {
	if s.Update(s.Project.CurrentFrame) {
		printMeter(w, s)
	}

	project := filepath.Clean(s.Path)

	for {
		select {
		case <-ctx.Done():
			return nil

		case err, ok := <-errs:
			if !ok {
				return nil
			}
			log.Warn("file watcher", zap.Error(err))

		case event, ok := <-events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			name := filepath.Clean(event.Name)
			if name == project {
				if err := s.Reload(); err != nil {
					// Half-written files are common; the next write retries.
					log.Warn("reload project", zap.Error(err))
					continue
				}
			} else if !s.Invalidate(name) {
				continue
			}

			if s.Update(s.Project.CurrentFrame) {
				printMeter(w, s)
			}
		}
	}
}
