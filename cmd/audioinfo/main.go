// Command audioinfo is a diagnostic CLI: it decodes an audio file and
// prints metadata and basic signal statistics, with no image output.
// Adapted from the teacher's cmd/audioinfo/main.go, which did the same
// job against the teacher's own AudioUtils/SpectralAnalyzer types.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kshitijk4poor/spek-core/pkg/audio"
	"github.com/kshitijk4poor/spek-core/pkg/audio/source"
)

func main() {
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Println("Usage: audioinfo <audio-file>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	filePath := flag.Arg(0)

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		fmt.Printf("Error: file '%s' does not exist\n", filePath)
		os.Exit(1)
	}

	src, err := openSource(filePath)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Loading audio file: %s\n", filePath)
	buf, err := src.Load(context.Background())
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	samplesPerChannel := len(buf.Samples) / buf.Meta.Channels
	duration := float64(samplesPerChannel) / float64(buf.Meta.SampleRate)

	fmt.Println("\nAudio Information:")
	fmt.Printf("File:        %s\n", filepath.Base(filePath))
	fmt.Printf("Format:      %s\n", strings.TrimPrefix(filepath.Ext(filePath), "."))
	fmt.Printf("Channels:    %d\n", buf.Meta.Channels)
	fmt.Printf("Sample Rate: %d Hz\n", buf.Meta.SampleRate)
	fmt.Printf("Duration:    %.2f seconds\n", duration)
	fmt.Printf("Samples:     %d\n", len(buf.Samples))
	if buf.Meta.BitDepth != nil {
		fmt.Printf("Bit Depth:   %d-bit\n", *buf.Meta.BitDepth)
	}

	fmt.Println("\nAudio Statistics:")
	fmt.Printf("RMS:                  %.6f\n", audio.RMS(buf.Samples))
	fmt.Printf("Energy:               %.6f\n", audio.Energy(buf.Samples))
	fmt.Printf("Zero Crossing Rate:   %.6f\n", audio.ZeroCrossingRate(buf.Samples))
}

func openSource(path string) (audio.Source, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return source.NewWAVSource(path), nil
	case ".mp3":
		return source.NewMP3Source(path), nil
	case ".flac":
		return source.NewFLACSource(path), nil
	default:
		return nil, fmt.Errorf("%w: %s", audio.ErrUnsupportedFormat, path)
	}
}
