// Package quiz implements a seeded multiple-choice quiz session. The
// session holds the shuffled question order and the running score; all
// prompting and answer collection is the caller's concern, same as the
// games' render/input split.
package quiz

import (
	"fmt"
	"math/rand"

	"github.com/almegatsro/filedeck/internal/config"
)

// Session is one run through a question bank.
type Session struct {
	questions []config.QuizQuestion
	index     int
	score     int
}

// NewSession shuffles the bank's questions with the given seed and starts
// at the first one.
func NewSession(bank config.QuizBank, seed int64) *Session {
	questions := make([]config.QuizQuestion, len(bank.Questions))
	copy(questions, bank.Questions)

	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})

	return &Session{questions: questions}
}

// Current returns the question awaiting an answer. ok is false once the
// session is done.
func (s *Session) Current() (q config.QuizQuestion, ok bool) {
	if s.Done() {
		return config.QuizQuestion{}, false
	}
	return s.questions[s.index], true
}

// Answer scores one choice against the current question and advances to
// the next one.
func (s *Session) Answer(choice int) (correct bool, err error) {
	if s.Done() {
		return false, fmt.Errorf("quiz: session is already finished")
	}
	q := s.questions[s.index]
	if choice < 0 || choice >= len(q.Choices) {
		return false, fmt.Errorf("quiz: choice %d out of range for %d options", choice, len(q.Choices))
	}

	s.index++
	if choice == q.Answer {
		s.score++
		return true, nil
	}
	return false, nil
}

// Done reports whether every question has been answered.
func (s *Session) Done() bool {
	return s.index >= len(s.questions)
}

// Score returns the number of correct answers so far.
func (s *Session) Score() int {
	return s.score
}

// Total returns the number of questions in the session.
func (s *Session) Total() int {
	return len(s.questions)
}

// Progress returns the 1-based number of the current question, clamped to
// Total once the session is done.
func (s *Session) Progress() int {
	if s.Done() {
		return len(s.questions)
	}
	return s.index + 1
}
