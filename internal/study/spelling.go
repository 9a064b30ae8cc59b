package study

import (
	"regexp"
	"strings"

	"wordnest/internal/model"
)

// MaskPlaceholder replaces the target word inside example sentences.
const MaskPlaceholder = "_____"

const maskRune = '_'

// SpellingPrompt shows a meaning (and masked example) and asks the user to
// type the word. Checking locks the prompt.
type SpellingPrompt struct {
	Word          string `json:"word"`
	Meaning       string `json:"meaning"`
	MaskedExample string `json:"masked_example,omitempty"`
	Guess         string `json:"guess"`
	Checked       bool   `json:"checked"`
	Correct       bool   `json:"correct"`
}

func buildPrompts(words []Word) []SpellingPrompt {
	prompts := make([]SpellingPrompt, len(words))
	for i, w := range words {
		prompts[i] = SpellingPrompt{
			Word:          w.Word,
			Meaning:       w.Meaning,
			MaskedExample: maskExample(w.Example, w.Word),
		}
	}
	return prompts
}

// maskExample hides every case-insensitive occurrence of word in example so
// the sentence gives context without giving the answer away.
func maskExample(example, word string) string {
	if example == "" || word == "" {
		return example
	}
	re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(word))
	return re.ReplaceAllString(example, MaskPlaceholder)
}

// Check compares the trimmed, case-insensitive guess against the target word.
// Exact equality only; no partial credit. The first check locks the prompt.
func (s *Session) Check(guess string) (bool, error) {
	if s.Mode != model.ModeSpelling {
		return false, ErrWrongMode
	}
	if s.State != StateInProgress {
		return false, ErrSessionComplete
	}

	p := &s.Prompts[s.Index]
	if p.Checked {
		return false, ErrItemLocked
	}

	p.Guess = guess
	p.Checked = true
	p.Correct = strings.EqualFold(strings.TrimSpace(guess), p.Word)
	if p.Correct {
		s.correct++
	}
	return p.Correct, nil
}

// Hint returns a partially masked form of the current word.
func (s *Session) Hint() (string, error) {
	if s.Mode != model.ModeSpelling {
		return "", ErrWrongMode
	}
	if s.State != StateInProgress {
		return "", ErrSessionComplete
	}
	return MaskWord(s.Prompts[s.Index].Word), nil
}

// MaskWord reveals the first ceil(len/3) characters and masks the rest, one
// mask character per remaining letter. Words of length <= 2 reveal only the
// first character.
func MaskWord(word string) string {
	runes := []rune(word)
	n := len(runes)
	if n == 0 {
		return ""
	}

	reveal := (n + 2) / 3
	if n <= 2 {
		reveal = 1
	}

	var b strings.Builder
	for i, r := range runes {
		if i < reveal {
			b.WriteRune(r)
		} else {
			b.WriteRune(maskRune)
		}
	}
	return b.String()
}
