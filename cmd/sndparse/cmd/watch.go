package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/geosnd/internal/export"
	"github.com/msto63/geosnd/internal/logging"
	"github.com/msto63/geosnd/pkg/snd"
)

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Watch a directory and parse new SND files",
	Long: `Watches a drop directory and parses SND files as drilling
equipment exports them. Files are matched against the configured watch
pattern (default *.snd). Runs until interrupted.

Example:
  sndparse watch --format json --output-dir ./out /srv/rig-exports`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&parseOutputDir, "output-dir", "o", "", "directory for exported records")
	watchCmd.Flags().StringVarP(&parseOutputFormat, "format", "f", "", "export format: none, json, csv")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if parseOutputDir != "" {
		cfg.Output.Dir = parseOutputDir
	}
	if parseOutputFormat != "" {
		cfg.Output.Format = parseOutputFormat
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	dir := args[0]
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	log := newLogger(cfg).WithRunID(uuid.New().String())
	tables, err := loadTables(cfg)
	if err != nil {
		return err
	}
	parser := snd.NewParser(tables, log)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)

	log.Info("watching directory", logging.Fields{"dir": dir, "pattern": cfg.Watch.Pattern})

	// Equipment writes a file with several events in a burst; remember
	// when each path was last parsed and skip repeats inside the window.
	lastParsed := make(map[string]time.Time)
	const settleWindow = 2 * time.Second

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			if match, _ := filepath.Match(cfg.Watch.Pattern, filepath.Base(event.Name)); !match {
				continue
			}
			if t, seen := lastParsed[event.Name]; seen && time.Since(t) < settleWindow {
				continue
			}
			lastParsed[event.Name] = time.Now()
			parseDroppedFile(parser, log, cfg.Output.Dir, cfg.Output.Format, event.Name)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.ErrorWithErr("watcher error", err)

		case <-sigs:
			log.Info("shutting down")
			return nil
		}
	}
}

func parseDroppedFile(parser *snd.Parser, log *logging.Logger, outDir, outFormat, path string) {
	result, err := parser.ParseFile(path)
	if err != nil {
		log.ErrorWithErr("parse failed", err, logging.Fields{"file": path})
		return
	}
	log.Info("parsed file", logging.Fields{
		"file":        path,
		"records":     len(result.Records),
		"diagnostics": len(result.Diagnostics),
	})
	if outFormat != "none" && outFormat != "" {
		if _, err := export.WriteFiles(outDir, outFormat, result); err != nil {
			log.ErrorWithErr("export failed", err, logging.Fields{"file": path})
		}
	}
}
