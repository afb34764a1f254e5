package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"docview/internal/config"
	"docview/internal/document"
	"docview/internal/infra/logx"
	"docview/internal/ui"
)

// pages in the demo document shown when no file is given
const demoPages = 40

func main() {
	cfgPath := config.DefaultPath()
	cfg, warnings, err := config.Load(cfgPath)
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}

	closeLog, err := setupLogging(cfg)
	if err != nil {
		fmt.Println("fatal:", err)
		os.Exit(1)
	}
	defer closeLog()
	logsToFile := len(os.Getenv("DEBUG")) > 0 || cfg.Log.File != ""
	for _, w := range warnings {
		logx.Warnw("config value reset", "path", cfgPath, "detail", w)
		if !logsToFile {
			fmt.Fprintln(os.Stderr, "warning: config:", w)
		}
	}

	doc := document.Synthetic(demoPages)
	if len(os.Args) > 1 {
		doc, err = document.Load(os.Args[1])
		if err != nil {
			fmt.Println("error:", err)
			os.Exit(1)
		}
	}
	logx.Infow("document loaded", "title", doc.Title, "pages", doc.PageCount(), "annotations", len(doc.Annotations))

	if _, err := tea.NewProgram(
		ui.New(cfg, doc),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	).Run(); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}

// setupLogging routes logx and the standard logger. DEBUG in the
// environment forces debug level into debug.log.
func setupLogging(cfg config.Config) (func(), error) {
	logx.SetMinLevel(cfg.LogLevel())
	logx.SetVerbose(cfg.Log.Verbose)

	var (
		f   io.WriteCloser
		err error
	)
	switch {
	case len(os.Getenv("DEBUG")) > 0:
		f, err = tea.LogToFile("debug.log", "debug")
		if err != nil {
			return nil, err
		}
		logx.SetMinLevel(logx.LevelDebug)
		fmt.Println("Debug logging enabled. Run 'tail -f debug.log' to view logs.")
	case cfg.Log.File != "":
		f, err = os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
	default:
		logx.SetOutput(nil)
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	logx.SetOutput(f)
	log.SetOutput(logx.StdlogWriter(logx.LevelDebug, f))
	return func() { f.Close() }, nil
}
