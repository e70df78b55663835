// filedeck is a terminal file manager with a side of arcade games.
//
// Usage:
//
//	filedeck files <op> [name]   - Manage text files in the deck directory
//	filedeck list                - List available games
//	filedeck play <game>         - Play a game
//	filedeck menu                - Start menu to pick games interactively
//	filedeck scores <game>       - Show high scores for a game
//	filedeck quiz                - Take a quick quiz
//	filedeck fun                 - A pointless animation
//
// Global flags:
//
//	--dir <path>    - Set the deck directory (default: ~/.filedeck/files)
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.filedeck/scores.db)
//	--verbose       - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/almegatsro/filedeck/internal/games/chase"
	_ "github.com/almegatsro/filedeck/internal/games/runner"
)

var (
	// Global flags
	flagDir     string
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagVerbose bool

	logger = log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "filedeck",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "filedeck",
	Short: "Filedeck - manage a deck of text files, play games between edits",
	Long: `Filedeck keeps a flat directory of plain text files and offers the
small diversions that belong in every serious tool.

Available commands:
  files    - Create, view, edit and delete files in the deck directory
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  scores   - View high scores
  quiz     - A short multiple-choice quiz
  fun      - Watch a progress bar fill up

Examples:
  filedeck files list
  filedeck files create notes.txt
  filedeck play chase
  filedeck menu
  filedeck scores runner`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDir, "dir", "~/.filedeck/files", "Deck directory for managed files")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.filedeck/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	rootCmd.AddCommand(filesCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(funCmd)
}
