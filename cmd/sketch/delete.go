package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ravkin/tui-sketch/internal/storage"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a sketch",
	Long: `Remove the specified sketch and all its strokes and shapes from
the database.

Examples:
  sketch delete my-plan`,
	Args: cobra.ExactArgs(1),
	Run:  runDelete,
}

func runDelete(cmd *cobra.Command, args []string) {
	name := args[0]

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening sketches database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.DeleteSketch(name); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting sketch: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Deleted %q\n", name)
}
