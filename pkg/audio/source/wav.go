package source

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/wav"

	"github.com/kshitijk4poor/spek-core/pkg/audio"
)

// WAVSource decodes a WAV file into an audio.Buffer using go-audio/wav.
type WAVSource struct {
	path string
}

// NewWAVSource returns a Source reading the WAV file at path.
func NewWAVSource(path string) *WAVSource {
	return &WAVSource{path: path}
}

// Load implements audio.Source.
func (s *WAVSource) Load(ctx context.Context) (*audio.Buffer, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("wav source: %w: %v", audio.ErrIO, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("wav source: %w: %v", audio.ErrIO, err)
	}

	decoder := wav.NewDecoder(bytes.NewReader(data))
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("wav source: %w: not a valid WAV file", audio.ErrDecodeFailed)
	}

	format := decoder.Format()
	sampleRate := int(format.SampleRate)
	channels := int(format.NumChannels)

	decoder.FwdToPCM()
	pcm, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("wav source: %w: %v", audio.ErrDecodeFailed, err)
	}

	bitDepth := int(decoder.BitDepth)
	maxValue := float32(int64(1) << uint(bitDepth-1))

	samples := make([]float32, len(pcm.Data))
	for i, v := range pcm.Data {
		samples[i] = float32(v) / maxValue
	}
	audio.ClampSamples(samples)

	totalSamples := int64(len(samples) / channels)

	return &audio.Buffer{
		Samples: samples,
		Meta: audio.Metadata{
			SampleRate:   sampleRate,
			Channels:     channels,
			TotalSamples: totalSamples,
			BitDepth:     &bitDepth,
		},
	}, nil
}
