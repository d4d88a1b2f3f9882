package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/geosnd/internal/export"
	"github.com/msto63/geosnd/internal/logging"
	"github.com/msto63/geosnd/pkg/snd"
)

var (
	parseOutputDir    string
	parseOutputFormat string
)

var parseCmd = &cobra.Command{
	Use:   "parse [file|dir ...]",
	Short: "Parse SND files into sounding records",
	Long: `Parses one or more SND files. Directories are scanned for *.snd
files (case-insensitive). Decode problems are reported per field and per
block; a file only fails outright when its coordinate header is broken.

Examples:
  sndparse parse BH-101.snd
  sndparse parse --format json --output-dir ./out ./soundings/
  sndparse parse -v BH-101.snd BH-102.snd`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseOutputDir, "output-dir", "o", "", "directory for exported records")
	parseCmd.Flags().StringVarP(&parseOutputFormat, "format", "f", "", "export format: none, json, csv")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
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

	log := newLogger(cfg).WithRunID(uuid.New().String())
	tables, err := loadTables(cfg)
	if err != nil {
		return err
	}
	parser := snd.NewParser(tables, log)

	files, err := collectSNDFiles(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no SND files found in %s", strings.Join(args, ", "))
	}

	failed := 0
	for _, path := range files {
		result, err := parser.ParseFile(path)
		if err != nil {
			log.ErrorWithErr("parse failed", err, logging.Fields{"file": path})
			failed++
			continue
		}
		log.Info("parsed file", logging.Fields{
			"file":        path,
			"records":     len(result.Records),
			"diagnostics": len(result.Diagnostics),
		})

		if cfg.Output.Format != "none" && cfg.Output.Format != "" {
			paths, err := export.WriteFiles(cfg.Output.Dir, cfg.Output.Format, result)
			if err != nil {
				log.ErrorWithErr("export failed", err, logging.Fields{"file": path})
				failed++
				continue
			}
			log.Debug("exported records", logging.Fields{"files": strings.Join(paths, ", ")})
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(files))
	}
	return nil
}

// collectSNDFiles expands the argument list: files are taken as given,
// directories contribute their *.snd entries (case-insensitive, one
// level deep). The result is sorted for stable run order.
func collectSNDFiles(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			if strings.EqualFold(filepath.Ext(e.Name()), ".snd") {
				files = append(files, filepath.Join(arg, e.Name()))
			}
		}
	}
	sort.Strings(files)
	return files, nil
}
