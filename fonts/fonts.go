package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
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
	size float64
}

var (
	sources = map[FontName]*truetype.Font{}
	faces   = map[faceKey]text.Face{}
)

// LoadDefaults registers the bundled Go fonts.
func LoadDefaults() error {
	if err := LoadFont(Regular, goregular.TTF); err != nil {
		return err
	}
	return LoadFont(Bold, gobold.TTF)
}

func LoadFont(name FontName, ttf []byte) error {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	sources[name] = f
	for k := range faces {
		if k.name == name {
			delete(faces, k)
		}
	}
	return nil
}

// Face returns a cached face of the given size.
func (f FontName) Face(size float64) text.Face {
	key := faceKey{name: f, size: size}
	if face, ok := faces[key]; ok {
		return face
	}
	src, ok := sources[f]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", f))
	}
	face := text.NewGoXFace(truetype.NewFace(src, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}))
	faces[key] = face
	return face
}
