package study

import "wordnest/internal/model"

// Card is one flashcard. Learned is an independent toggle the user sets
// directly; it is not derived from any answer check.
type Card struct {
	Word    string `json:"word"`
	Meaning string `json:"meaning"`
	Example string `json:"example,omitempty"`
	Learned bool   `json:"learned"`
}

func buildCards(words []Word) []Card {
	cards := make([]Card, len(words))
	for i, w := range words {
		cards[i] = Card{Word: w.Word, Meaning: w.Meaning, Example: w.Example}
	}
	return cards
}

// ToggleLearned flips the learned flag on the current card. Cards can be
// toggled back off; only the final states count at finalize time.
func (s *Session) ToggleLearned() error {
	if s.Mode != model.ModeFlashcard {
		return ErrWrongMode
	}
	if s.State != StateInProgress {
		return ErrSessionComplete
	}
	s.Cards[s.Index].Learned = !s.Cards[s.Index].Learned
	return nil
}

// LearnedCount is the number of cards currently marked learned.
func (s *Session) LearnedCount() int {
	count := 0
	for _, c := range s.Cards {
		if c.Learned {
			count++
		}
	}
	return count
}
