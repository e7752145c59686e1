package epdither

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mkaraca/epdither/utils"
)

// ErrNotDirectory reports an invalid batch folder. It is fatal to the whole
// run; every other failure is isolated at the file boundary.
var ErrNotDirectory = errors.New("not a directory")

// Kind classifies a per-file failure by the pipeline stage it occurred in.
type Kind int

const (
	KindDecode Kind = iota
	KindPalette
	KindWrite
)

func (k Kind) String() string {
	switch k {
	case KindDecode:
		return "decode"
	case KindPalette:
		return "palette"
	default:
		return "write"
	}
}

// FileError is a per-file failure; the batch continues past it.
type FileError struct {
	Kind Kind
	Name string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Kind, e.Name, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// FileResult records the outcome for one input file.
type FileResult struct {
	Name   string
	Output string // written path, empty on failure
	Err    error  // *FileError on failure
}

var imageExts = map[string]bool{
	".bmp":  true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// ProcessFolder converts every supported image in folder, writing each
// result to <folder>/dithered-{landscape,portrait}[-warm]/<stem>_output.bmp
// according to the working image's orientation. Files with other extensions
// are skipped silently; decode, palette and write failures are reported per
// file without aborting the batch.
func ProcessFolder(folder string, opts Options, logger *slog.Logger) ([]FileResult, error) {
	if logger == nil {
		logger = slog.Default()
	}
	info, err := os.Stat(folder)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, folder)
	}

	warm := opts.Fixed && opts.Warm
	for _, o := range []Orientation{Landscape, Portrait} {
		if err := os.MkdirAll(filepath.Join(folder, o.Dir(warm)), 0o755); err != nil {
			return nil, fmt.Errorf("creating output folder: %w", err)
		}
	}

	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("reading folder: %w", err)
	}

	var results []FileResult
	for _, entry := range entries {
		if entry.IsDir() || !imageExts[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}
		res := processFile(folder, entry.Name(), opts, warm)
		if res.Err != nil {
			logger.Error("processing failed", "file", res.Name, "err", res.Err)
		} else {
			logger.Info("saved", "file", res.Name, "output", res.Output)
		}
		results = append(results, res)
	}
	return results, nil
}

func processFile(folder, name string, opts Options, warm bool) FileResult {
	img, err := utils.ReadImage(filepath.Join(folder, name))
	if err != nil {
		return FileResult{Name: name, Err: &FileError{Kind: KindDecode, Name: name, Err: err}}
	}

	res, err := Process(img, opts)
	if err != nil {
		return FileResult{Name: name, Err: &FileError{Kind: KindPalette, Name: name, Err: err}}
	}

	stem := strings.TrimSuffix(name, filepath.Ext(name))
	out := filepath.Join(folder, res.Orientation.Dir(warm), stem+"_output.bmp")
	if err := utils.SaveBMP(res.Image, out); err != nil {
		return FileResult{Name: name, Err: &FileError{Kind: KindWrite, Name: name, Err: err}}
	}
	return FileResult{Name: name, Output: out}
}
