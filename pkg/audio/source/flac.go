package source

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mewkiz/flac"

	"github.com/kshitijk4poor/spek-core/pkg/audio"
)

// FLACSource decodes a FLAC file into an audio.Buffer using mewkiz/flac.
type FLACSource struct {
	path string
}

// NewFLACSource returns a Source reading the FLAC file at path.
func NewFLACSource(path string) *FLACSource {
	return &FLACSource{path: path}
}

// Load implements audio.Source.
func (s *FLACSource) Load(ctx context.Context) (*audio.Buffer, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("flac source: %w: %v", audio.ErrIO, err)
	}
	defer f.Close()

	stream, err := flac.New(f)
	if err != nil {
		return nil, fmt.Errorf("flac source: %w: %v", audio.ErrDecodeFailed, err)
	}
	defer stream.Close()

	info := stream.Info
	sampleRate := int(info.SampleRate)
	channels := int(info.NChannels)
	bitsPerSample := int(info.BitsPerSample)
	maxValue := float32(int64(1)<<uint(bitsPerSample-1)) - 1

	samples := make([]float32, 0, int(info.NSamples)*channels)

	for {
		frame, err := stream.ParseNext()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("flac source: %w: %v", audio.ErrDecodeFailed, err)
		}

		n := len(frame.Subframes[0].Samples)
		for j := 0; j < n; j++ {
			for ch := 0; ch < len(frame.Subframes); ch++ {
				samples = append(samples, float32(frame.Subframes[ch].Samples[j])/maxValue)
			}
		}
	}
	audio.ClampSamples(samples)

	totalSamples := int64(len(samples) / channels)

	return &audio.Buffer{
		Samples: samples,
		Meta: audio.Metadata{
			SampleRate:   sampleRate,
			Channels:     channels,
			TotalSamples: totalSamples,
			BitDepth:     &bitsPerSample,
		},
	}, nil
}
