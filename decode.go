// SPDX-License-Identifier: EPL-2.0

package tonelab

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chrigorion/tonelab/audio"
	"github.com/chrigorion/tonelab/formats/aiff"
	"github.com/chrigorion/tonelab/formats/mp3"
	"github.com/chrigorion/tonelab/formats/vorbis"
	"github.com/chrigorion/tonelab/formats/wav"
)

// defaultRegistry holds the built-in codecs keyed by file extension.
var defaultRegistry = audio.NewRegistry()

func init() {
	defaultRegistry.Register("wav", wav.Decoder{})
	defaultRegistry.Register("mp3", mp3.Decoder{})
	defaultRegistry.Register("ogg", vorbis.Decoder{})
	defaultRegistry.Register("aiff", aiff.Decoder{})
	defaultRegistry.Register("aif", aiff.Decoder{})
}

// Formats returns the file extensions DecodeFile understands.
func Formats() []string {
	return defaultRegistry.Formats()
}

// fileSource closes the underlying file together with the stream.
type fileSource struct {
	audio.Source
	f *os.File
}

func (s *fileSource) Close() error {
	srcErr := s.Source.Close()
	fileErr := s.f.Close()

	if srcErr != nil {
		return srcErr
	}
	return fileErr
}

// DecodeFile opens an audio file, picking the codec from the file
// extension. Closing the returned source closes the file.
func DecodeFile(path string) (audio.Source, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))

	dec, ok := defaultRegistry.Get(ext)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	src, err := dec.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	return &fileSource{Source: src, f: f}, nil
}
