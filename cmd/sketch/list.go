package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ravkin/tui-sketch/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored sketches",
	Long:  `Shows all sketches in the database, most recently updated first.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening sketches database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	infos, err := store.ListSketches()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing sketches: %v\n", err)
		os.Exit(1)
	}

	if len(infos) == 0 {
		fmt.Println("No sketches yet.")
		fmt.Println()
		fmt.Println("Run 'sketch draw <name>' to start one.")
		return
	}

	// Calculate column width
	maxNameLen := 4 // "Name" header
	for _, info := range infos {
		if len(info.Name) > maxNameLen {
			maxNameLen = len(info.Name)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-7s  %-6s  %s\n", maxNameLen, "Name", "Strokes", "Shapes", "Updated")
	fmt.Printf("  %-*s  %-7s  %-6s  %s\n", maxNameLen, "----", "-------", "------", "-------")

	for _, info := range infos {
		fmt.Printf("  %-*s  %-7d  %-6d  %s\n",
			maxNameLen, info.Name, info.Strokes, info.Shapes,
			info.UpdatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Println("Run 'sketch draw <name>' to open a sketch.")
}
