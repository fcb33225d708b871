// Command vocabfilter extracts an IELTS vocabulary library from the ECDICT
// CSV dataset and writes it as a JSON array for the vocabulary trainer.
// It is intended to be run offline when a library is rebuilt.
//
// Flags (override config and ENV):
//
//	--config   path to YAML config file (default: CONFIG_PATH or ./vocabfilter.yaml)
//	--input    path to the ECDICT CSV file
//	--output   path of the JSON library to write
//	--mode     filter policy: basic (all IELTS words) or advanced (without zk/gk words)
//	--preview  number of extracted words to print to stdout
//
// Exit codes: 0 = success (a missing input is only a warning), 1 = error.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocabhelper/internal/app"
	"github.com/heartmarshall/vocabhelper/internal/app/vocabfilter"
	"github.com/heartmarshall/vocabhelper/internal/config"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("vocabfilter", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configFlag := fs.String("config", "", "path to YAML config file")
	inputFlag := fs.String("input", "", "path to the ECDICT CSV file")
	outputFlag := fs.String("output", "", "path of the JSON library to write")
	modeFlag := fs.String("mode", "", "filter policy: basic or advanced")
	previewFlag := fs.Int("preview", -1, "number of extracted words to print")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 1
	}

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(stderr, "load config: %v\n", err)
		return 1
	}

	// CLI flags override config.
	if *inputFlag != "" {
		cfg.Filter.InputPath = *inputFlag
	}
	if *outputFlag != "" {
		cfg.Filter.OutputPath = *outputFlag
	}
	if *modeFlag != "" {
		cfg.Filter.Mode = *modeFlag
	}
	if *previewFlag >= 0 {
		cfg.Filter.Preview = *previewFlag
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "invalid flags: %v\n", err)
		return 1
	}

	logger := app.NewLogger(cfg.Log).With(slog.String("run_id", uuid.NewString()))
	logger.Info("starting vocabfilter", slog.String("version", app.BuildVersion()))

	policy, err := vocabfilter.PolicyByName(cfg.Filter.Mode)
	if err != nil {
		logger.Error("resolve filter policy", slog.String("error", err.Error()))
		return 1
	}

	records, _, err := vocabfilter.Extract(logger, cfg.Filter.InputPath, cfg.Filter.OutputPath, policy, cfg.Filter.MinFields)
	if err != nil {
		logger.Error("extraction failed", slog.String("error", err.Error()))
		return 1
	}

	if cfg.Filter.Preview > 0 && len(records) > 0 {
		fmt.Fprintf(stdout, "Preview of the first %d words:\n", min(cfg.Filter.Preview, len(records)))
		if err := vocabfilter.WritePreview(stdout, records, cfg.Filter.Preview); err != nil {
			logger.Error("print preview", slog.String("error", err.Error()))
			return 1
		}
	}

	return 0
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}
