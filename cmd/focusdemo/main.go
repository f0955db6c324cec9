// Command focusdemo is an interactive exercise of the focuskit engine: a
// type-ahead customer list, a grid health board, and a modal dialog that
// traps focus until dismissed.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

func main() {
	logPath := flag.String("log", "", "write debug log to this file")
	flag.Parse()

	// The terminal belongs to the TUI, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	log := zerolog.New(logOut).With().Timestamp().Logger()

	if _, err := tea.NewProgram(newModel(log)).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "focusdemo: %v\n", err)
		os.Exit(1)
	}
}
