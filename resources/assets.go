package resources

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"justmeditation/internal/core/model"
)

// BellName is the catalog name of the interval and completion bell.
const BellName = "bell"

// ErrNoSound is returned for tracks that intentionally play nothing.
var ErrNoSound = errors.New("track has no sound")

var soundExtensions = []string{".wav", ".ogg", ".mp3"}

// Sound is a playable audio asset.
type Sound struct {
	Name      string
	Extension string
	Data      []byte
}

// Catalog resolves sounds by name. Files in the user sounds directory win over
// the built-in synthesized tones.
type Catalog struct {
	dir   fs.FS
	cache sync.Map
}

// NewCatalog creates a catalog. An empty soundsDir uses built-in sounds only.
func NewCatalog(soundsDir string) *Catalog {
	catalog := &Catalog{}
	if soundsDir != "" {
		catalog.dir = os.DirFS(soundsDir)
	}
	return catalog
}

// NewCatalogFS creates a catalog backed by an arbitrary file system.
func NewCatalogFS(dir fs.FS) *Catalog {
	return &Catalog{dir: dir}
}

// Bell returns the bell sound.
func (catalog *Catalog) Bell() (Sound, error) {
	return catalog.Sound(BellName)
}

// Ambient returns the looping sound for track.
func (catalog *Catalog) Ambient(track model.AmbientID) (Sound, error) {
	if !track.HasSound() {
		return Sound{}, ErrNoSound
	}
	return catalog.Sound(string(track))
}

// Sound returns the named sound, loading it once.
func (catalog *Catalog) Sound(name string) (Sound, error) {
	if cached, ok := catalog.cache.Load(name); ok {
		return cached.(Sound), nil
	}

	sound, err := catalog.load(name)
	if err != nil {
		return Sound{}, err
	}
	catalog.cache.Store(name, sound)
	return sound, nil
}

func (catalog *Catalog) load(name string) (Sound, error) {
	if catalog.dir != nil {
		for _, extension := range soundExtensions {
			data, err := fs.ReadFile(catalog.dir, name+extension)
			if err == nil {
				return Sound{Name: name, Extension: extension, Data: data}, nil
			}
			if !errors.Is(err, fs.ErrNotExist) {
				return Sound{}, fmt.Errorf("load sound %s: %w", name, err)
			}
		}
	}

	data, err := synthesize(name)
	if err != nil {
		return Sound{}, fmt.Errorf("load sound %s: %w", name, err)
	}
	return Sound{Name: name, Extension: ".wav", Data: data}, nil
}
