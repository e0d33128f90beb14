package assets

import (
	"bytes"
	"embed"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const sampleRate = 44100

//go:embed *.wav
var assetsFS embed.FS

var audioContext = audio.NewContext(sampleRate)

// LoadFile loads an embedded asset by assets-relative path.
func LoadFile(path string) ([]byte, error) {
	clean := cleanAssetPath(path)
	return assetsFS.ReadFile(clean)
}

// LoadAudioPlayer loads an embedded audio asset and creates an audio player.
// Looping players restart from the beginning when the clip ends.
func LoadAudioPlayer(path string, loop bool) (*audio.Player, error) {
	b, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	clean := strings.ToLower(cleanAssetPath(path))
	if !strings.HasSuffix(clean, ".wav") {
		// Already-decoded PCM in Ebiten's native format.
		return audioContext.NewPlayerFromBytes(b), nil
	}

	stream, err := wav.DecodeWithSampleRate(audioContext.SampleRate(), bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode wav %q: %w", path, err)
	}
	if loop {
		return audioContext.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
	}
	return audioContext.NewPlayer(stream)
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
		return s[idx+len("/assets/"):]
	}
	if after, ok := strings.CutPrefix(s, "assets/"); ok {
		return after
	}
	return s
}
