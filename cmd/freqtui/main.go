package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"freqdeck/internal/counter"
	"freqdeck/internal/domain"
	"freqdeck/internal/examples"
	"freqdeck/internal/extract"
	"freqdeck/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func main() {
	lang := flag.String("lang", string(domain.LanguageEnglish), "reference word list language")
	size := flag.Int("size", domain.DefaultPageSize, "words per page")
	decksDir := flag.String("decks", "decks", "directory for deck files")
	limit := flag.Int("examples", 5, "example sentences per word")
	logPath := flag.String("log", "", "write logs to this file")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] FILE\n\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *lang, *size, *decksDir, *limit, *logPath); err != nil {
		fmt.Fprintf(os.Stderr, "freqtui: %v\n", err)
		os.Exit(1)
	}
}

func run(path, lang string, size int, decksDir string, limit int, logPath string) error {
	logger, err := newLogger(logPath)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	language, err := domain.ParseLanguage(lang)
	if err != nil {
		return err
	}
	if !domain.IsValidPageSize(size) {
		return fmt.Errorf("page size must be one of %v", domain.PageSizes)
	}

	text, err := readText(path)
	if err != nil {
		return err
	}

	freqs := counter.Count(text)
	if len(freqs) == 0 {
		return fmt.Errorf("no words in %s", path)
	}
	logger.Info("Text loaded", zap.String("path", path), zap.Int("unique_words", len(freqs)))

	finder, err := examples.NewFinder(64)
	if err != nil {
		return err
	}

	model := tui.New(freqs, text, finder, tui.NewDeckFiles(decksDir), tui.Options{
		Language:     language,
		PageSize:     size,
		ExampleLimit: limit,
	}, logger)

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("failed to run: %w", err)
	}
	return nil
}

func readText(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	text, err := extract.Text(filepath.Base(path), "", f)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return text, nil
}

// newLogger logs to a file, the terminal belongs to the table
func newLogger(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}
