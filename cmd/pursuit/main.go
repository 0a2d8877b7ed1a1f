// pursuit is a real-time maze chase played in the terminal: collect pickups,
// dodge the ghosts and their projectiles, and get out alive.
//
// Usage:
//
//	pursuit play              - Play a session (layout picker if --layout is empty)
//	pursuit layouts           - List built-in layouts
//	pursuit serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Custom pursuit config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-file <path>     - Write logs to a file
//	--notify-url <url>    - POST victories to a webhook
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pursuit/internal/config"
	"github.com/vovakirdan/pursuit/internal/notify"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagDebug      bool
	flagNotifyURL  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pursuit",
	Short: "Maze Pursuit - outrun the ghosts in your terminal",
	Long: `Maze Pursuit is a real-time maze chase. Collect pickups to score,
avoid the ghosts and their projectiles, and reach the winning score
before your lives run out.

Available commands:
  play     - Play a session
  layouts  - Show the built-in layouts
  serve    - Start SSH server for remote play

Examples:
  pursuit play
  pursuit play --layout mobile --player ada
  pursuit play --difficulty hard --seed 42
  pursuit serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom pursuit config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagNotifyURL, "notify-url", "", "POST victories to this URL (overrides notify.url)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(layoutsCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadGameConfig reads the pursuit config and applies the difficulty preset.
func loadGameConfig() (config.PursuitConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.PursuitConfig{}, err
	}
	cfg, err := config.LoadPursuit(flagConfig)
	if err != nil {
		return cfg, err
	}
	config.ApplyPursuitPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger builds the process logger. Without --log-file it writes to
// fallback; the returned closer releases the file.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func() error, error) {
	w, closer := fallback, func() error { return nil }
	if flagLogFile != "" {
		if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
			return nil, nil, err
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}

// buildAnnouncer logs every victory and, when a URL is configured, posts it.
func buildAnnouncer(logger *log.Logger, cfg config.NotifyConfig) notify.Announcer {
	announcers := notify.MultiAnnouncer{notify.LogAnnouncer{Logger: logger}}
	url := flagNotifyURL
	if url == "" {
		url = cfg.URL
	}
	if url != "" {
		announcers = append(announcers, notify.NewWebhookAnnouncer(url, cfg.Timeout()))
	}
	return announcers
}
