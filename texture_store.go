package softpaint

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/gogpu/softpaint/internal/color"
	"github.com/gogpu/softpaint/internal/image"
)

// Texture is a CPU-resident texture: linear premultiplied texels plus the
// options it is sampled with.
type Texture struct {
	texels  *image.Texels
	options TextureOptions
}

// Size returns (width, height) in texels.
func (t *Texture) Size() (int, int) {
	return t.texels.Size()
}

// Options returns the sampling options.
func (t *Texture) Options() TextureOptions {
	return t.options
}

// At returns the texel at (x, y) converted back to Color32.
// It panics if (x, y) is out of bounds.
func (t *Texture) At(x, y int) Color32 {
	return color32FromLinear(t.texels.At(x, y))
}

// update overwrites the delta's region. Callers have validated it.
func (t *Texture) update(delta ImageDelta) error {
	t.options = delta.Options.normalized()

	var x, y int
	if delta.Pos != nil {
		x, y = delta.Pos[0], delta.Pos[1]
	}

	src := make([]color.ColorF32, len(delta.Image.Pixels))
	for i, c := range delta.Image.Pixels {
		src[i] = c.linear()
	}
	return t.texels.WriteRegion(x, y, delta.Image.Width, delta.Image.Height, src)
}

// TextureStore maps texture IDs to textures and applies TexturesDelta
// updates to them.
//
// A TextureStore is not safe for concurrent use.
type TextureStore struct {
	textures map[TextureID]*Texture
	sentinel color.ColorF32
	log      *slog.Logger // nil means the package logger
}

// NewTextureStore creates an empty store. Newly created textures start
// out filled with opaque red before their image is written, which makes
// regions a caller forgot to upload easy to spot.
func NewTextureStore() *TextureStore {
	return newTextureStore(Red32)
}

func newTextureStore(sentinel Color32) *TextureStore {
	return &TextureStore{
		textures: make(map[TextureID]*Texture),
		sentinel: sentinel.linear(),
	}
}

func (s *TextureStore) logger() *slog.Logger {
	if s.log != nil {
		return s.log
	}
	return Logger()
}

// Texture returns the texture with the given ID.
func (s *TextureStore) Texture(id TextureID) (*Texture, bool) {
	t, ok := s.textures[id]
	return t, ok
}

// Len returns the number of stored textures.
func (s *TextureStore) Len() int {
	return len(s.textures)
}

// IDs returns the stored IDs, managed before user, each in ascending order.
func (s *TextureStore) IDs() []TextureID {
	ids := make([]TextureID, 0, len(s.textures))
	for id := range s.textures {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b TextureID) int {
		if a.Kind != b.Kind {
			return int(a.Kind) - int(b.Kind)
		}
		switch {
		case a.Value < b.Value:
			return -1
		case a.Value > b.Value:
			return 1
		}
		return 0
	})
	return ids
}

// ApplyCreatesAndPatches applies every Set entry of delta in order.
//
// A whole delta creates the texture, or replaces it when the size changed;
// creation is a patch over a fresh sentinel-filled buffer. A partial delta
// overwrites its region of an existing texture.
//
// The whole set is validated first: on error the store is left unchanged.
func (s *TextureStore) ApplyCreatesAndPatches(delta TexturesDelta) error {
	if err := s.validate(delta.Set); err != nil {
		return err
	}

	for _, set := range delta.Set {
		img := set.Delta.Image
		tex, ok := s.textures[set.ID]
		if ok && set.Delta.IsWhole() {
			if w, h := tex.Size(); w != img.Width || h != img.Height {
				s.logger().Debug("softpaint: texture resized",
					"id", set.ID, "from", [2]int{w, h}, "to", img.Size())
				ok = false
			}
		}
		if !ok {
			texels, err := image.NewTexels(img.Width, img.Height, s.sentinel)
			if err != nil {
				return fmt.Errorf("%w: texture %s: %w", ErrInvalidImage, set.ID, err)
			}
			tex = &Texture{texels: texels}
			s.textures[set.ID] = tex
			s.logger().Debug("softpaint: texture created", "id", set.ID, "size", img.Size())
		}
		if err := tex.update(set.Delta); err != nil {
			return fmt.Errorf("%w: texture %s: %w", ErrPatchOutOfBounds, set.ID, err)
		}
	}
	return nil
}

// validate checks a Set list against the store plus the textures the
// list itself creates, without mutating anything.
func (s *TextureStore) validate(sets []TextureSet) error {
	created := make(map[TextureID][2]int)
	sizeOf := func(id TextureID) ([2]int, bool) {
		if size, ok := created[id]; ok {
			return size, true
		}
		if tex, ok := s.textures[id]; ok {
			w, h := tex.Size()
			return [2]int{w, h}, true
		}
		return [2]int{}, false
	}

	for _, set := range sets {
		img := set.Delta.Image
		if err := img.Validate(); err != nil {
			return fmt.Errorf("texture %s: %w", set.ID, err)
		}
		if set.Delta.IsWhole() {
			created[set.ID] = img.Size()
			continue
		}

		size, ok := sizeOf(set.ID)
		if !ok {
			return fmt.Errorf("%w: %s", ErrPatchAbsentTexture, set.ID)
		}
		x, y := set.Delta.Pos[0], set.Delta.Pos[1]
		if x < 0 || y < 0 || x+img.Width > size[0] || y+img.Height > size[1] {
			return fmt.Errorf("%w: %s is %dx%d, patch %dx%d at (%d, %d)",
				ErrPatchOutOfBounds, set.ID, size[0], size[1], img.Width, img.Height, x, y)
		}
	}
	return nil
}

// ApplyFrees removes every texture named in delta.Free. Freeing an
// absent texture is not an error.
func (s *TextureStore) ApplyFrees(delta TexturesDelta) {
	for _, id := range delta.Free {
		if _, ok := s.textures[id]; !ok {
			s.logger().Debug("softpaint: free of absent texture", "id", id)
			continue
		}
		delete(s.textures, id)
		s.logger().Debug("softpaint: texture freed", "id", id)
	}
}
