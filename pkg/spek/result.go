package spek

import "image"

// Result is the outcome of a successful GenerateSpectrogram call.
type Result struct {
	Image           *image.RGBA
	DurationSeconds float64
	SampleRate      int
	Channels        int

	// RequestID correlates this call with logs, grounded on
	// madpsy-ka9q_ubersdr's session/request-id convention.
	RequestID string
}
