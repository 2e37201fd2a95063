package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pixenlabs/pixen/internal/config"
	"github.com/pixenlabs/pixen/internal/engine"
	"github.com/pixenlabs/pixen/internal/resource"
)

var initCmd = &cobra.Command{
	Use:   "init <out>",
	Short: "Create a fresh project snapshot",
	Long: `Build an empty engine from the shape configuration and write its full
snapshot, including palette, channels, and waveforms.

Examples:
  pixres init game.pixres
  pixres init game.pixres --config shapes/tiny.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runInit,
}

var flagConfigPath string

func init() {
	initCmd.Flags().StringVar(&flagConfigPath, "config", "", "Engine shape config (default: built-in)")
}

func runInit(cmd *cobra.Command, args []string) {
	outPath := args[0]

	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		log.Fatal("cannot load engine config", "err", err)
	}
	eng, err := engine.New(cfg)
	if err != nil {
		log.Fatal("cannot build engine", "err", err)
	}

	text, err := resource.Capture(eng).Render(resource.Filter{
		IncludeColors:    true,
		IncludeChannels:  true,
		IncludeWaveforms: true,
	})
	if err != nil {
		log.Fatal("cannot render snapshot", "err", err)
	}
	if err := os.WriteFile(outPath, []byte(text), 0o644); err != nil {
		log.Fatal("cannot write snapshot", "path", outPath, "err", err)
	}
	log.Info("snapshot written", "path", outPath, "bytes", len(text))
}
