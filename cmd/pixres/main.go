// pixres is a workstation tool for pixen resource snapshots (.pixres files).
//
// Usage:
//
//	pixres init <out>               - Create a fresh project snapshot
//	pixres info <file>              - Show version and category counts
//	pixres filter <in> <out>        - Rewrite a snapshot keeping selected categories
//	pixres store <name> <file>      - Save a snapshot into the local library
//	pixres fetch <name> [out]       - Retrieve a snapshot from the library
//	pixres ls                       - List snapshots in the library
//	pixres rm <name>                - Remove a snapshot from the library
//
// Global flags:
//
//	--db <path>     - Set library database path (default: ~/.pixen/snapshots.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pixres",
	Short: "Inspect, filter, and archive pixen resource snapshots",
	Long: `pixres works with pixen resource snapshots: the versioned text files
that hold a project's palette, images, tilemaps, channels, sounds,
musics, and waveforms.

Available commands:
  init     - Create a fresh project snapshot
  info     - Show a snapshot's version and per-category counts
  filter   - Rewrite a snapshot keeping only selected categories
  store    - Save a snapshot into the local library
  fetch    - Retrieve a snapshot from the library
  ls       - List snapshots in the library
  rm       - Remove a snapshot from the library

Examples:
  pixres info game.pixres
  pixres filter game.pixres art.pixres --exclude-sounds --exclude-musics
  pixres store release-1 game.pixres
  pixres fetch release-1 restored.pixres`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pixen/snapshots.db", "Path to snapshot library database")

	// Add subcommands
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(filterCmd)
	rootCmd.AddCommand(storeCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(lsCmd)
	rootCmd.AddCommand(rmCmd)
}
