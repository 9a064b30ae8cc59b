package model

// SpeechRequest asks the speech backend to synthesize audio for a word
// or phrase.
type SpeechRequest struct {
	Text string `json:"text" validate:"required,min=1,max=500"`
}
