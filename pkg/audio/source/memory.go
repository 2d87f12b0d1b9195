package source

import (
	"context"

	"github.com/kshitijk4poor/spek-core/pkg/audio"
)

// MemorySource wraps an already-decoded audio.Buffer as a Source. It is the
// adapter stub tests and callers with in-memory PCM (e.g. synthesized test
// tones, or samples produced by an out-of-process decoder) use instead of a
// file-backed decoder.
type MemorySource struct {
	buf *audio.Buffer
}

// NewMemorySource wraps buf as a Source. buf is not copied; callers must
// not mutate it afterward.
func NewMemorySource(buf *audio.Buffer) *MemorySource {
	return &MemorySource{buf: buf}
}

// Load implements audio.Source.
func (s *MemorySource) Load(ctx context.Context) (*audio.Buffer, error) {
	return s.buf, nil
}
