package source

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kshitijk4poor/spek-core/pkg/audio"
)

func TestMemorySourceLoadReturnsWrappedBuffer(t *testing.T) {
	want := &audio.Buffer{
		Samples: []float32{0.1, 0.2, 0.3},
		Meta:    audio.Metadata{SampleRate: 44100, Channels: 1},
	}
	src := NewMemorySource(want)

	got, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Same(t, want, got)
}
