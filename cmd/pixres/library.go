package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pixenlabs/pixen/internal/archive"
	"github.com/pixenlabs/pixen/internal/resource"
)

var storeCmd = &cobra.Command{
	Use:   "store <name> <file>",
	Short: "Save a snapshot into the local library",
	Args:  cobra.ExactArgs(2),
	Run:   runStore,
}

var fetchCmd = &cobra.Command{
	Use:   "fetch <name> [out]",
	Short: "Retrieve a snapshot from the library",
	Long: `Retrieve a stored snapshot. With an output path the snapshot is written
to that file; without one it is printed to stdout.`,
	Args: cobra.RangeArgs(1, 2),
	Run:  runFetch,
}

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List snapshots in the library",
	Args:  cobra.NoArgs,
	Run:   runLs,
}

var rmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Remove a snapshot from the library",
	Args:  cobra.ExactArgs(1),
	Run:   runRm,
}

func openLibrary() *archive.Store {
	store, err := archive.Open(flagDBPath)
	if err != nil {
		log.Fatal("cannot open snapshot library", "db", flagDBPath, "err", err)
	}
	return store
}

func runStore(cmd *cobra.Command, args []string) {
	name, path := args[0], args[1]

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatal("cannot read snapshot", "path", path, "err", err)
	}
	// Reject malformed snapshots before they enter the library.
	if _, err := resource.Parse(string(data)); err != nil {
		log.Fatal("cannot parse snapshot", "path", path, "err", err)
	}

	store := openLibrary()
	defer store.Close()

	if err := store.Save(name, string(data)); err != nil {
		log.Fatal("cannot store snapshot", "name", name, "err", err)
	}
	log.Info("snapshot stored", "name", name, "bytes", len(data))
}

func runFetch(cmd *cobra.Command, args []string) {
	name := args[0]

	store := openLibrary()
	defer store.Close()

	body, err := store.Load(name)
	if err != nil {
		log.Fatal("cannot fetch snapshot", "name", name, "err", err)
	}

	if len(args) == 2 {
		if err := os.WriteFile(args[1], []byte(body), 0o644); err != nil {
			log.Fatal("cannot write snapshot", "path", args[1], "err", err)
		}
		log.Info("snapshot written", "path", args[1])
		return
	}
	fmt.Print(body)
}

func runLs(cmd *cobra.Command, args []string) {
	store := openLibrary()
	defer store.Close()

	entries, err := store.List()
	if err != nil {
		log.Fatal("cannot list snapshots", "err", err)
	}
	if len(entries) == 0 {
		fmt.Println("No snapshots stored yet.")
		return
	}
	for _, e := range entries {
		fmt.Printf("%-24s %8d  %s\n", e.Name, e.Size, e.UpdatedAt.Format("2006-01-02 15:04"))
	}
}

func runRm(cmd *cobra.Command, args []string) {
	name := args[0]

	store := openLibrary()
	defer store.Close()

	if err := store.Delete(name); err != nil {
		log.Fatal("cannot remove snapshot", "name", name, "err", err)
	}
	log.Info("snapshot removed", "name", name)
}
