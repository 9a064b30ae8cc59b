package study

import (
	"math/rand"

	"wordnest/internal/model"
)

// maxDistractors is how many wrong meanings accompany the correct one.
const maxDistractors = 2

// Question is one multiple-choice prompt. SelectedIndex is -1 until the
// question is answered; answering locks it.
type Question struct {
	Word          string   `json:"word"`
	Meaning       string   `json:"meaning"`
	Options       []string `json:"options"`
	CorrectIndex  int      `json:"correct_index"`
	SelectedIndex int      `json:"selected_index"`
}

// buildQuestions generates one question per shuffled word. Distractors are
// drawn by shuffling the other words' meanings and taking the first two, then
// the whole option list is shuffled again so the correct position is uniform.
// Duplicate meanings across words are not filtered; correctness is tracked by
// identity, not text.
func buildQuestions(words []Word, rng *rand.Rand) []Question {
	questions := make([]Question, 0, len(words))

	for i, w := range words {
		pool := make([]string, 0, len(words)-1)
		for j, other := range words {
			if j != i {
				pool = append(pool, other.Meaning)
			}
		}
		rng.Shuffle(len(pool), func(a, b int) {
			pool[a], pool[b] = pool[b], pool[a]
		})
		if len(pool) > maxDistractors {
			pool = pool[:maxDistractors]
		}

		type option struct {
			text    string
			correct bool
		}
		options := make([]option, 0, len(pool)+1)
		for _, d := range pool {
			options = append(options, option{text: d})
		}
		options = append(options, option{text: w.Meaning, correct: true})
		rng.Shuffle(len(options), func(a, b int) {
			options[a], options[b] = options[b], options[a]
		})

		q := Question{
			Word:          w.Word,
			Meaning:       w.Meaning,
			Options:       make([]string, len(options)),
			SelectedIndex: -1,
		}
		for idx, opt := range options {
			q.Options[idx] = opt.text
			if opt.correct {
				q.CorrectIndex = idx
			}
		}
		questions = append(questions, q)
	}

	return questions
}

// Answer selects an option for the current question and reports whether it
// was correct. The first selection locks the question.
func (s *Session) Answer(optionIndex int) (bool, error) {
	if s.Mode != model.ModeQuiz {
		return false, ErrWrongMode
	}
	if s.State != StateInProgress {
		return false, ErrSessionComplete
	}

	q := &s.Questions[s.Index]
	if q.SelectedIndex >= 0 {
		return false, ErrItemLocked
	}
	if optionIndex < 0 || optionIndex >= len(q.Options) {
		return false, ErrOutOfRange
	}

	q.SelectedIndex = optionIndex
	correct := optionIndex == q.CorrectIndex
	if correct {
		s.correct++
	}
	return correct, nil
}
