package fonts

import (
	"fmt"
	"math"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Regular FontName = "regular"
	Bold    FontName = "bold"
)

type faceKey struct {
	name FontName
	size int
}

var (
	mu      sync.Mutex
	sources = map[FontName]*truetype.Font{}
	faces   = map[faceKey]font.Face{}
)

// LoadDefaults parses the bundled Go fonts. Called once during boot.
func LoadDefaults() error {
	if err := LoadFont(Regular, goregular.TTF); err != nil {
		return err
	}
	return LoadFont(Bold, gobold.TTF)
}

// LoadFont registers a TTF under name. Faces are created lazily per size.
func LoadFont(name FontName, ttf []byte) error {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}

	mu.Lock()
	defer mu.Unlock()
	sources[name] = f
	for k := range faces {
		if k.name == name {
			delete(faces, k)
		}
	}
	return nil
}

// Loaded reports whether name has been registered.
func Loaded(name FontName) bool {
	mu.Lock()
	defer mu.Unlock()
	_, ok := sources[name]
	return ok
}

// Face returns the face for name at size points, rounded to whole points so
// a tweened size does not create a face per frame.
func Face(name FontName, size float64) font.Face {
	key := faceKey{name: name, size: int(math.Round(size))}
	if key.size < 1 {
		key.size = 1
	}

	mu.Lock()
	defer mu.Unlock()
	if f, ok := faces[key]; ok {
		return f
	}
	src, ok := sources[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	f := truetype.NewFace(src, &truetype.Options{Size: float64(key.size)})
	faces[key] = f
	return f
}

// For picks the bold or regular face.
func For(bold bool, size float64) font.Face {
	if bold {
		return Face(Bold, size)
	}
	return Face(Regular, size)
}
