// Package study implements the three learning-mode state machines (quiz,
// flashcard, spelling) as an explicit session value with transition methods.
// Sessions hold no ambient state and take their randomness as an injected
// generator, so every transition is unit-testable in isolation. Nothing here
// touches storage: a finalized session yields an Outcome that the caller
// submits as a quiz result.
package study

import (
	"errors"
	"math/rand"
	"time"

	"wordnest/internal/model"
)

// Word is one vocabulary item fed into a session.
type Word struct {
	Word    string `json:"word"`
	Meaning string `json:"meaning"`
	Example string `json:"example,omitempty"`
}

// State is the session lifecycle phase.
type State string

const (
	StateLoading    State = "loading"
	StateInProgress State = "in_progress"
	StateComplete   State = "complete"
)

// Transition errors. These are caller bugs or UI races, not user-facing
// conditions; handlers never surface them directly.
var (
	ErrWrongMode          = errors.New("operation not valid for this mode")
	ErrSessionComplete    = errors.New("session already complete")
	ErrSessionNotComplete = errors.New("session still in progress")
	ErrItemLocked         = errors.New("item already answered")
	ErrNotAnswered        = errors.New("current item not answered")
	ErrOutOfRange         = errors.New("index out of range")
)

// Outcome is the final tally of a session, ready to persist as a QuizResult.
type Outcome struct {
	Mode           model.StudyMode `json:"mode"`
	TotalQuestions int             `json:"total_questions"`
	CorrectAnswers int             `json:"correct_answers"`
	Score          float64         `json:"score"`
}

// Session is one run through a shuffled word set in one learning mode.
// Exactly one of Questions, Cards or Prompts is populated, matching Mode.
type Session struct {
	Mode  model.StudyMode `json:"mode"`
	State State           `json:"state"`
	Index int             `json:"index"`

	Questions []Question       `json:"questions,omitempty"`
	Cards     []Card           `json:"cards,omitempty"`
	Prompts   []SpellingPrompt `json:"prompts,omitempty"`

	words   []Word
	rng     *rand.Rand
	correct int
}

// New builds a session over words. The word set must be non-empty, and quiz
// mode needs at least two words to generate a distractor; otherwise
// model.ErrInsufficientData is returned so callers can show an "add more
// words" affordance instead of a generic failure.
func New(mode model.StudyMode, words []Word, rng *rand.Rand) (*Session, error) {
	if !mode.Valid() {
		return nil, model.ErrInvalidInput
	}
	if len(words) == 0 {
		return nil, model.ErrInsufficientData
	}
	if mode == model.ModeQuiz && len(words) < 2 {
		return nil, model.ErrInsufficientData
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	s := &Session{
		Mode:  mode,
		State: StateLoading,
		words: append([]Word(nil), words...),
		rng:   rng,
	}
	s.start()
	return s, nil
}

// start (re)derives all per-session state from the word set: a fresh uniform
// shuffle, zeroed tallies, index at the first item.
func (s *Session) start() {
	shuffled := append([]Word(nil), s.words...)
	s.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	s.Index = 0
	s.correct = 0
	s.Questions = nil
	s.Cards = nil
	s.Prompts = nil

	switch s.Mode {
	case model.ModeQuiz:
		s.Questions = buildQuestions(shuffled, s.rng)
	case model.ModeFlashcard:
		s.Cards = buildCards(shuffled)
	case model.ModeSpelling:
		s.Prompts = buildPrompts(shuffled)
	}
	s.State = StateInProgress
}

// Restart reshuffles and resets the session in place, without a new word set.
func (s *Session) Restart() {
	s.start()
}

// Len is the number of items in the session.
func (s *Session) Len() int {
	switch s.Mode {
	case model.ModeQuiz:
		return len(s.Questions)
	case model.ModeFlashcard:
		return len(s.Cards)
	case model.ModeSpelling:
		return len(s.Prompts)
	}
	return 0
}

// CorrectCount is the running tally of correct answers (quiz and spelling).
func (s *Session) CorrectCount() int {
	return s.correct
}

// Next advances to the following item. For quiz and spelling the current item
// must have been answered first, and advancing past the last item completes
// the session. Flashcards never auto-complete; finalization there is the
// separate explicit Finalize call.
func (s *Session) Next() error {
	if s.State != StateInProgress {
		return ErrSessionComplete
	}

	switch s.Mode {
	case model.ModeQuiz:
		if s.Questions[s.Index].SelectedIndex < 0 {
			return ErrNotAnswered
		}
	case model.ModeSpelling:
		if !s.Prompts[s.Index].Checked {
			return ErrNotAnswered
		}
	}

	if s.Index == s.Len()-1 {
		if s.Mode == model.ModeFlashcard {
			return ErrOutOfRange
		}
		s.State = StateComplete
		return nil
	}
	s.Index++
	return nil
}

// Prev moves back one card. Only flashcard navigation is bidirectional.
func (s *Session) Prev() error {
	if s.Mode != model.ModeFlashcard {
		return ErrWrongMode
	}
	if s.State != StateInProgress {
		return ErrSessionComplete
	}
	if s.Index == 0 {
		return ErrOutOfRange
	}
	s.Index--
	return nil
}

// Finalize computes the session outcome. Quiz and spelling sessions must have
// advanced past their last item; a flashcard session finalizes on demand from
// any position, counting only the final toggle states.
func (s *Session) Finalize() (*Outcome, error) {
	correct := s.correct
	if s.Mode == model.ModeFlashcard {
		if s.State == StateLoading {
			return nil, ErrSessionNotComplete
		}
		correct = s.LearnedCount()
		s.State = StateComplete
	} else if s.State != StateComplete {
		return nil, ErrSessionNotComplete
	}

	total := s.Len()
	return &Outcome{
		Mode:           s.Mode,
		TotalQuestions: total,
		CorrectAnswers: correct,
		Score:          float64(correct) / float64(total) * 100,
	}, nil
}
