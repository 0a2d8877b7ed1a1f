package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pursuit/internal/core"
	"github.com/vovakirdan/pursuit/internal/engine"
	"github.com/vovakirdan/pursuit/internal/maze"
	"github.com/vovakirdan/pursuit/internal/platform/tui"
)

var (
	flagLayout     string
	flagLayoutFile string
	flagPlayer     string
	flagMessage    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a session",
	Long: `Start a maze pursuit session.

Controls:
  Arrows/WASD  - Step once
  H/J/K/L      - Keep running left/down/up/right
  Space        - Stop running
  Enter        - Continue after being caught
  R            - Restart after game over or win
  Ctrl+S       - Save a text screenshot
  ?            - Toggle full help
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - More lives, slower ghosts, firing unlocks later
  normal - Default settings
  hard   - Fewer lives, faster ghosts, firing unlocks sooner
  fixed  - No progression, ghosts keep their base speed

Examples:
  pursuit play
  pursuit play --layout desktop --player ada
  pursuit play --layout-file ./my-maze.yaml
  pursuit play --notify-url http://localhost:8080/victory`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLayout, "layout", "", "Built-in layout (picker shown when empty)")
	playCmd.Flags().StringVar(&flagLayoutFile, "layout-file", "", "Path to a layout YAML file")
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Player name (prompted when empty)")
	playCmd.Flags().StringVar(&flagMessage, "message", "", "Victory message (defaults to the configured one)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	gameCfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("pursuit", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}

	player, message := flagPlayer, flagMessage
	if player == "" {
		res, promptErr := tui.RunPrompt(gameCfg.Notify.Message)
		if promptErr != nil {
			return promptErr
		}
		if res.Cancelled {
			return nil
		}
		player = res.Player
		if message == "" {
			message = res.Message
		}
	}

	m, err := resolveLayout(&rc)
	if err != nil || m == nil {
		return err
	}

	game, err := engine.New(gameCfg, m, rc, engine.Options{
		Logger:    logger,
		Announcer: buildAnnouncer(logger, gameCfg.Notify),
		Message:   message,
	})
	if err != nil {
		return err
	}

	if err := tui.Run(game, player, rc); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// resolveLayout picks the layout from flags or the interactive picker. A nil
// maze with a nil error means the player quit the picker.
func resolveLayout(rc *core.RuntimeConfig) (*maze.Maze, error) {
	switch {
	case flagLayoutFile != "":
		return maze.LoadFile(flagLayoutFile)
	case flagLayout != "":
		if !maze.Exists(flagLayout) {
			return nil, fmt.Errorf("unknown layout %q (run 'pursuit layouts' to see available layouts)", flagLayout)
		}
		return maze.Get(flagLayout)
	}

	res, err := tui.RunMenu(*rc)
	if err != nil {
		return nil, err
	}
	*rc = res.Config
	if res.Quit {
		return nil, nil
	}
	return maze.Get(res.Layout)
}
