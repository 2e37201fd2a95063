package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pixenlabs/pixen/internal/resource"
)

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Show a snapshot's version and category counts",
	Long: `Parse a snapshot file and display its format version together with
the number of entries in each resource category.

Examples:
  pixres info game.pixres`,
	Args: cobra.ExactArgs(1),
	Run:  runInfo,
}

var (
	infoTitleStyle = lipgloss.NewStyle().Bold(true)
	infoLabelStyle = lipgloss.NewStyle().Width(12).Foreground(lipgloss.Color("6"))
	infoDimStyle   = lipgloss.NewStyle().Faint(true)
)

func runInfo(cmd *cobra.Command, args []string) {
	path := args[0]

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatal("cannot read snapshot", "path", path, "err", err)
	}
	rd, err := resource.Parse(string(data))
	if err != nil {
		log.Fatal("cannot parse snapshot", "path", path, "err", err)
	}

	fmt.Println(infoTitleStyle.Render(path))
	fmt.Println(infoDimStyle.Render(fmt.Sprintf("format version %d", rd.FormatVersion)))
	fmt.Println()

	rows := []struct {
		label string
		count int
	}{
		{"colors", len(rd.Colors)},
		{"images", len(rd.Images)},
		{"tilemaps", len(rd.Tilemaps)},
		{"channels", len(rd.Channels)},
		{"sounds", len(rd.Sounds)},
		{"musics", len(rd.Musics)},
		{"waveforms", len(rd.Waveforms)},
	}
	for _, row := range rows {
		fmt.Printf("%s %d\n", infoLabelStyle.Render(row.label), row.count)
	}
}
