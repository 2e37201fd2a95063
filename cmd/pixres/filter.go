package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pixenlabs/pixen/internal/resource"
)

var filterCmd = &cobra.Command{
	Use:   "filter <in> <out>",
	Short: "Rewrite a snapshot keeping only selected categories",
	Long: `Parse a snapshot and write it back with a category selection applied.

Images, tilemaps, sounds, and musics are kept unless excluded; colors,
channels, and waveforms are dropped unless included.

Examples:
  pixres filter game.pixres art.pixres --exclude-sounds --exclude-musics
  pixres filter game.pixres tuning.pixres --exclude-images --exclude-tilemaps \
      --exclude-sounds --exclude-musics --include-channels --include-waveforms`,
	Args: cobra.ExactArgs(2),
	Run:  runFilter,
}

var (
	flagExcludeImages    bool
	flagExcludeTilemaps  bool
	flagExcludeSounds    bool
	flagExcludeMusics    bool
	flagIncludeColors    bool
	flagIncludeChannels  bool
	flagIncludeWaveforms bool
)

func init() {
	filterCmd.Flags().BoolVar(&flagExcludeImages, "exclude-images", false, "Drop the image list")
	filterCmd.Flags().BoolVar(&flagExcludeTilemaps, "exclude-tilemaps", false, "Drop the tilemap list")
	filterCmd.Flags().BoolVar(&flagExcludeSounds, "exclude-sounds", false, "Drop the sound list")
	filterCmd.Flags().BoolVar(&flagExcludeMusics, "exclude-musics", false, "Drop the music list")
	filterCmd.Flags().BoolVar(&flagIncludeColors, "include-colors", false, "Keep the color palette")
	filterCmd.Flags().BoolVar(&flagIncludeChannels, "include-channels", false, "Keep the channel list")
	filterCmd.Flags().BoolVar(&flagIncludeWaveforms, "include-waveforms", false, "Keep the waveform list")
}

func selectionFromFlags() resource.Filter {
	return resource.Filter{
		ExcludeImages:    flagExcludeImages,
		ExcludeTilemaps:  flagExcludeTilemaps,
		ExcludeSounds:    flagExcludeSounds,
		ExcludeMusics:    flagExcludeMusics,
		IncludeColors:    flagIncludeColors,
		IncludeChannels:  flagIncludeChannels,
		IncludeWaveforms: flagIncludeWaveforms,
	}
}

func runFilter(cmd *cobra.Command, args []string) {
	inPath, outPath := args[0], args[1]

	data, err := os.ReadFile(inPath)
	if err != nil {
		log.Fatal("cannot read snapshot", "path", inPath, "err", err)
	}
	rd, err := resource.Parse(string(data))
	if err != nil {
		log.Fatal("cannot parse snapshot", "path", inPath, "err", err)
	}

	text, err := rd.Render(selectionFromFlags())
	if err != nil {
		log.Fatal("cannot render snapshot", "err", err)
	}
	if err := os.WriteFile(outPath, []byte(text), 0o644); err != nil {
		log.Fatal("cannot write snapshot", "path", outPath, "err", err)
	}
	log.Info("snapshot written", "path", outPath)
}
