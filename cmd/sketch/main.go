// sketch is a TUI sketch editor for drawing in the terminal.
//
// Usage:
//
//	sketch draw [name]       - Open the editor on a sketch
//	sketch browse            - Interactive sketch browser
//	sketch list              - List stored sketches
//	sketch info <name>       - Show details for a sketch
//	sketch trim <name>       - Re-trim a sketch to the configured boundary
//	sketch delete <name>     - Delete a sketch
//	sketch serve             - Start SSH server for remote sketching
//
// Global flags:
//
//	--db <path>      - Set database path (default: ~/.sketch/sketches.db)
//	--config <path>  - Set editor config path
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import tools to register them
	_ "github.com/ravkin/tui-sketch/internal/tools"
)

var (
	// Global flags
	flagDBPath     string
	flagConfigPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sketch",
	Short: "TUI Sketch - Draw in your terminal",
	Long: `TUI Sketch is a terminal-based drawing board with an optional
drawing boundary. Strokes are trimmed to the boundary, shapes are kept
inside it, and everything is stored in a local database.

Available commands:
  draw     - Open the editor on a sketch
  browse   - Interactive sketch browser
  list     - List stored sketches
  info     - Show details for a sketch
  trim     - Re-trim a stored sketch to the configured boundary
  delete   - Delete a sketch
  serve    - Start SSH server for remote sketching

Examples:
  sketch draw
  sketch draw my-plan
  sketch browse
  sketch serve --ssh :2222
  sketch info my-plan`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.sketch/sketches.db", "Path to sketches database")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to editor config YAML")

	// Add subcommands
	rootCmd.AddCommand(drawCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(trimCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(serveCmd)
}
