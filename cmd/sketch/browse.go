package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ravkin/tui-sketch/internal/config"
	"github.com/ravkin/tui-sketch/internal/core"
	"github.com/ravkin/tui-sketch/internal/platform/tui"
	"github.com/ravkin/tui-sketch/internal/storage"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse stored sketches interactively",
	Long: `Open an interactive browser over the stored sketches. Selecting a
sketch opens it in the editor; quitting the editor returns to the browser.

Examples:
  sketch browse
  sketch browse --db ./sketches.db`,
	Run: runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) {
	appCfg, err := config.Load(flagConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := appCfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open sketches database: %v\n", err)
		store = nil
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
	}

	runErr := tui.RunSession(store, cfg, appCfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running browser: %v\n", runErr)
		os.Exit(1)
	}
}
