package source

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/hajimehoshi/go-mp3"

	"github.com/kshitijk4poor/spek-core/pkg/audio"
)

// MP3Source decodes an MP3 file into an audio.Buffer using hajimehoshi/go-mp3.
// go-mp3 always decodes to interleaved 16-bit stereo PCM.
type MP3Source struct {
	path string
}

// NewMP3Source returns a Source reading the MP3 file at path.
func NewMP3Source(path string) *MP3Source {
	return &MP3Source{path: path}
}

const mp3Channels = 2

// Load implements audio.Source.
func (s *MP3Source) Load(ctx context.Context) (*audio.Buffer, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("mp3 source: %w: %v", audio.ErrIO, err)
	}
	defer f.Close()

	decoder, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, fmt.Errorf("mp3 source: %w: %v", audio.ErrDecodeFailed, err)
	}

	sampleRate := decoder.SampleRate()

	pcm, err := io.ReadAll(decoder)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("mp3 source: %w: %v", audio.ErrDecodeFailed, err)
	}

	numFrames := len(pcm) / 4 // 2 bytes/sample * 2 channels
	samples := make([]float32, numFrames*mp3Channels)
	for i := 0; i < numFrames; i++ {
		for ch := 0; ch < mp3Channels; ch++ {
			idx := i*4 + ch*2
			raw := int16(pcm[idx]) | int16(pcm[idx+1])<<8
			samples[i*mp3Channels+ch] = float32(raw) / 32768.0
		}
	}
	audio.ClampSamples(samples)

	return &audio.Buffer{
		Samples: samples,
		Meta: audio.Metadata{
			SampleRate:   sampleRate,
			Channels:     mp3Channels,
			TotalSamples: int64(numFrames),
			BitDepth:     nil,
		},
	}, nil
}
