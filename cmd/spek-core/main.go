// Command spek-core is the thin CLI wrapper around pkg/spek, per spec.md
// §6. It owns argument parsing, source selection by file extension, and
// PNG encoding — none of which is core pipeline logic. Grounded on the
// teacher's cmd/spectrogram/main.go flag style.
package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kshitijk4poor/spek-core/pkg/audio"
	"github.com/kshitijk4poor/spek-core/pkg/audio/source"
	"github.com/kshitijk4poor/spek-core/pkg/overlay"
	"github.com/kshitijk4poor/spek-core/pkg/overlay/ggtext"
	"github.com/kshitijk4poor/spek-core/pkg/spek"
)

// exit codes per spec.md §6.
const (
	exitOK             = 0
	exitUsage          = 1
	exitPipelineErr    = 2
	exitOutputWriteErr = 3
)

// fileConfig is the optional --config YAML overlay, grounded on
// madpsy-ka9q_ubersdr's config.go struct-tag pattern.
type fileConfig struct {
	FFTSize int     `yaml:"fft_size"`
	HopSize int     `yaml:"hop_size"`
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	MinDB   float64 `yaml:"min_db"`
	Scale   string  `yaml:"scale"`
}

func main() {
	fftSize := flag.Int("fft", 2048, "FFT size (power of two)")
	hopSize := flag.Int("hop", 512, "Hop size in samples")
	width := flag.Int("width", 1024, "Output image width")
	height := flag.Int("height", 512, "Output image height")
	minDB := flag.Float64("min-db", -120, "dBFS floor")
	scaleName := flag.String("scale", "log", "Intensity scale: linear|sqrt|cbrt|log")
	configPath := flag.String("config", "", "Optional YAML file overriding flags not explicitly set")
	labels := flag.Bool("labels", true, "Rasterize legend text with a real font backend")
	fontPath := flag.String("font", "", "TTF font path for --labels (default: ggtext's built-in path)")
	fontSize := flag.Float64("font-size", 12, "Legend font size in points, used with --labels")
	flag.Parse()

	if flag.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "Usage: spek-core [options] <input> <output.png>")
		flag.PrintDefaults()
		os.Exit(exitUsage)
	}

	inputPath := flag.Arg(0)
	outputPath := flag.Arg(1)

	settings := spek.DefaultSettings()
	settings.Spectrogram.FFTSize = *fftSize
	settings.Spectrogram.HopSize = *hopSize
	settings.Render.Width = *width
	settings.Render.Height = *height
	settings.Spectrogram.MinDB = *minDB
	settings.FileName = filepath.Base(inputPath)

	scaleKind, err := parseScale(*scaleName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "InvalidInput: %v\n", err)
		os.Exit(exitUsage)
	}
	settings.Spectrogram.Scale = scaleKind

	if *configPath != "" {
		visited := map[string]bool{}
		flag.Visit(func(f *flag.Flag) { visited[f.Name] = true })

		if err := applyConfigFile(*configPath, &settings, visited); err != nil {
			fmt.Fprintf(os.Stderr, "InvalidInput: %v\n", err)
			os.Exit(exitUsage)
		}
	}

	src, err := openSource(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "DecodeError: %v\n", err)
		os.Exit(exitPipelineErr)
	}

	legendOpts := spek.DefaultLegendOptions()
	legendOpts.Settings.FontSize = int(*fontSize)
	if *labels {
		legendOpts.Rasterizer = ggtext.New(*fontSize, *fontPath)
	} else {
		legendOpts.Rasterizer = overlay.NoopTextRasterizer{}
	}

	result, err := spek.GenerateSpectrogram(context.Background(), src, settings, legendOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(exitPipelineErr)
	}

	if err := writePNG(outputPath, result); err != nil {
		fmt.Fprintf(os.Stderr, "output write error: %v\n", err)
		os.Exit(exitOutputWriteErr)
	}

	fmt.Printf("wrote %s (%dx%d, %.2fs, %d ch @ %d Hz)\n",
		outputPath, result.Image.Bounds().Dx(), result.Image.Bounds().Dy(),
		result.DurationSeconds, result.Channels, result.SampleRate)
}

func parseScale(name string) (spek.ScaleKind, error) {
	switch strings.ToLower(name) {
	case "linear":
		return spek.ScaleLinear, nil
	case "sqrt":
		return spek.ScaleSqrt, nil
	case "cbrt":
		return spek.ScaleCbrt, nil
	case "log":
		return spek.ScaleLog, nil
	default:
		return 0, fmt.Errorf("unknown scale %q", name)
	}
}

// applyConfigFile overlays YAML settings onto settings, skipping any field
// whose corresponding flag the user explicitly set on the command line —
// flags stay authoritative over the config file, never the other way
// around.
func applyConfigFile(path string, settings *spek.Settings, explicitFlags map[string]bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}

	if cfg.FFTSize != 0 && !explicitFlags["fft"] {
		settings.Spectrogram.FFTSize = cfg.FFTSize
	}
	if cfg.HopSize != 0 && !explicitFlags["hop"] {
		settings.Spectrogram.HopSize = cfg.HopSize
	}
	if cfg.Width != 0 && !explicitFlags["width"] {
		settings.Render.Width = cfg.Width
	}
	if cfg.Height != 0 && !explicitFlags["height"] {
		settings.Render.Height = cfg.Height
	}
	if cfg.MinDB != 0 && !explicitFlags["min-db"] {
		settings.Spectrogram.MinDB = cfg.MinDB
	}
	if cfg.Scale != "" && !explicitFlags["scale"] {
		kind, err := parseScale(cfg.Scale)
		if err != nil {
			return err
		}
		settings.Spectrogram.Scale = kind
	}

	return nil
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

func writePNG(path string, result *spek.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, result.Image)
}
