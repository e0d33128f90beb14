package prefabs

import (
	"embed"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Dir is the on-disk prefab directory, relative to the working directory.
// Files found there shadow the embedded copies so tuning edits apply without
// a rebuild.
const Dir = "prefabs"

//go:embed *.yaml scripts/*.tengo
var embedded embed.FS

// Load reads a prefab such as "player.yaml" or "prefabs/player.yaml".
func Load(name string) ([]byte, error) {
	return read(prefabPath(name))
}

// LoadScript reads a feedback script such as "breathing.tengo" or
// "scripts/breathing.tengo".
func LoadScript(name string) ([]byte, error) {
	return read(path.Join("scripts", path.Base(prefabPath(name))))
}

func read(rel string) ([]byte, error) {
	if rel == "" || rel == "." {
		return nil, fs.ErrNotExist
	}
	if data, err := os.ReadFile(filepath.Join(Dir, filepath.FromSlash(rel))); err == nil {
		return data, nil
	}
	return embedded.ReadFile(rel)
}

func prefabPath(name string) string {
	if name == "" {
		return ""
	}
	s := path.Clean(filepath.ToSlash(name))
	if after, ok := strings.CutPrefix(s, Dir+"/"); ok {
		return after
	}
	return s
}
