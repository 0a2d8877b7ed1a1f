package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pursuit/internal/core"
	"github.com/vovakirdan/pursuit/internal/engine"
	"github.com/vovakirdan/pursuit/internal/maze"
)

var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "List built-in maze layouts",
	Long:  `Shows every built-in layout and the terminal size it needs.`,
	Run:   runLayouts,
}

func runLayouts(_ *cobra.Command, _ []string) {
	layouts := maze.List()

	if len(layouts) == 0 {
		fmt.Println("No layouts available.")
		return
	}

	fmt.Println("Available layouts:")
	fmt.Println()

	maxNameLen := 4 // "Name" header
	for _, l := range layouts {
		if len(l.Name) > maxNameLen {
			maxNameLen = len(l.Name)
		}
	}

	fmt.Printf("  %-*s  %-9s  %s\n", maxNameLen, "Name", "Terminal", "Title")
	fmt.Printf("  %-*s  %-9s  %s\n", maxNameLen, "----", "--------", "-----")

	for _, l := range layouts {
		m, err := maze.Get(l.Name)
		if err != nil {
			continue
		}
		w, h := engine.RequiredSize(core.NewRect(0, 0, m.Width, m.Height))
		fmt.Printf("  %-*s  %-9s  %s\n", maxNameLen, l.Name, fmt.Sprintf("%dx%d", w, h), l.Title)
	}

	fmt.Println()
	fmt.Println("Run 'pursuit play --layout <name>' to play a layout.")
}
