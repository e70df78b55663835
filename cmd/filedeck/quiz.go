package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/almegatsro/filedeck/internal/config"
	"github.com/almegatsro/filedeck/internal/quiz"
	"github.com/almegatsro/filedeck/internal/storage"
)

var flagBank string

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Take a short multiple-choice quiz",
	Long: `Run through the question bank in a seeded random order. The final
score is recorded under the game id "quiz".

Examples:
  filedeck quiz
  filedeck quiz --seed 42
  filedeck quiz --bank ./my-questions.yaml`,
	Run: runQuiz,
}

func init() {
	quizCmd.Flags().StringVar(&flagBank, "bank", "", "Path to custom question bank YAML")
}

func runQuiz(cmd *cobra.Command, args []string) {
	bank, err := config.LoadQuizBank(flagBank)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading question bank: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	session := quiz.NewSession(bank, seed)

	fmt.Printf("Quiz time! %d questions. Answer with the option number.\n\n", session.Total())

	reader := bufio.NewReader(os.Stdin)
	for {
		q, ok := session.Current()
		if !ok {
			break
		}

		fmt.Printf("%d/%d: %s\n", session.Progress(), session.Total(), q.Prompt)
		for i, choice := range q.Choices {
			fmt.Printf("  %d) %s\n", i+1, choice)
		}

		choice, quit := readChoice(reader, len(q.Choices))
		if quit {
			fmt.Println("\nQuiz abandoned.")
			return
		}

		correct, err := session.Answer(choice)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		if correct {
			fmt.Println("Correct!")
		} else {
			fmt.Printf("Nope — it was %q.\n", q.Choices[q.Answer])
		}
		fmt.Println()
	}

	fmt.Printf("Final score: %d/%d\n", session.Score(), session.Total())

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		return
	}
	defer store.Close()

	if _, err := store.SaveScore("quiz", session.Score()); err != nil {
		logger.Warn("could not save quiz score", "error", err)
	}
}

// readChoice reads a 1-based option number from stdin. quit is true on EOF
// or an explicit q.
func readChoice(reader *bufio.Reader, options int) (choice int, quit bool) {
	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return 0, true
		}
		answer := strings.TrimSpace(line)
		if answer == "q" || answer == "quit" {
			return 0, true
		}
		n, err := strconv.Atoi(answer)
		if err != nil || n < 1 || n > options {
			fmt.Printf("Please enter a number between 1 and %d.\n", options)
			continue
		}
		return n - 1, false
	}
}
