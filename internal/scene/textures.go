package scene

import (
	"DeskScene/internal/logger"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"runtime"

	"github.com/alitto/pond/v2"
	"github.com/go-gl/gl/v4.1-core/gl"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	"go.uber.org/zap"
)

// MaxTextureSlots is the number of texture units the scene binds.
const MaxTextureSlots = 16

type TextureSpec struct {
	File string
	Tag  string
}

// DeskTextures lists the image files the desk scene loads, relative to the
// textures directory.
var DeskTextures = []TextureSpec{
	{"wood_light_seamless.jpg", "wood"},
	{"marble_light_seamless.jpg", "marble1"},
	{"leather_black_seamless.jpg", "leather1"},
	{"paper_textured_seamless.jpg", "paper"},
	{"leather_brown_seamless.jpg", "leather2"},
	{"paper_brown_seamless.jpg", "paper2"},
	{"leather_tan_seamless.jpg", "leather3"},
	{"marble_light2_seamless.jpg", "marble2"},
	{"ground_textured_seamless.jpg", "ground"},
	{"grass_textured1_seamless.jpg", "grass1"},
	{"grass_textured2_seamless.jpg", "grass2"},
	{"pattern_flowers_seamless.jpg", "pattern"},
	{"fabric_textured_seamless.jpg", "fabric"},
	{"wood_cherry_seamless.jpg", "wood2"},
}

type textureSlot struct {
	id  uint32
	tag string
}

// TextureStats provides debugging information
type TextureStats struct {
	Loaded  int
	Skipped int
}

// TextureManager owns the scene's GL textures. Slot n is bound to texture
// unit n.
type TextureManager struct {
	slots []textureSlot
	stats TextureStats

	upload  func(img *image.RGBA) uint32
	release func(id uint32)
}

func NewTextureManager() *TextureManager {
	return &TextureManager{
		upload:  uploadTexture,
		release: deleteTexture,
	}
}

// LoadImage decodes an image file into RGBA with the rows flipped so the
// first row is the bottom of the image, as OpenGL expects.
func LoadImage(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	flipVertical(rgba)
	return rgba, nil
}

func flipVertical(img *image.RGBA) {
	h := img.Rect.Dy()
	rowLen := img.Rect.Dx() * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*img.Stride : y*img.Stride+rowLen]
		bottom := img.Pix[(h-1-y)*img.Stride : (h-1-y)*img.Stride+rowLen]
		copy(tmp, top)
		copy(top, bottom)
		copy(bottom, tmp)
	}
}

// Load creates a texture from path under tag.
func (tm *TextureManager) Load(path, tag string) error {
	if err := tm.checkSlot(tag); err != nil {
		return err
	}
	rgba, err := LoadImage(path)
	if err != nil {
		return err
	}
	return tm.add(path, tag, rgba)
}

func (tm *TextureManager) checkSlot(tag string) error {
	if len(tm.slots) >= MaxTextureSlots {
		return fmt.Errorf("texture %q: all %d slots in use", tag, MaxTextureSlots)
	}
	if tm.Slot(tag) >= 0 {
		return fmt.Errorf("texture %q already loaded", tag)
	}
	return nil
}

func (tm *TextureManager) add(path, tag string, rgba *image.RGBA) error {
	if err := tm.checkSlot(tag); err != nil {
		return err
	}

	id := tm.upload(rgba)
	tm.slots = append(tm.slots, textureSlot{id: id, tag: tag})
	tm.stats.Loaded++

	logger.Log.Info("Texture loaded",
		zap.String("path", path),
		zap.String("tag", tag),
		zap.Uint32("textureID", id),
		zap.Int("width", rgba.Rect.Dx()),
		zap.Int("height", rgba.Rect.Dy()))
	return nil
}

type decodedImage struct {
	path string
	img  *image.RGBA
	err  error
}

// LoadAll loads every texture from dir. Files are decoded on a worker pool and
// uploaded in list order on the calling goroutine, which must own the GL
// context. Failures are logged and skipped so the scene still renders with
// flat colors where a texture is missing.
func (tm *TextureManager) LoadAll(dir string, specs []TextureSpec) {
	decoded := make([]decodedImage, len(specs))

	pool := pond.NewPool(runtime.NumCPU())
	group := pool.NewGroup()
	for i, spec := range specs {
		i, path := i, filepath.Join(dir, spec.File)
		group.Submit(func() {
			img, err := LoadImage(path)
			decoded[i] = decodedImage{path: path, img: img, err: err}
		})
	}
	group.Wait()
	pool.StopAndWait()

	for i, spec := range specs {
		err := decoded[i].err
		if err == nil {
			err = tm.add(decoded[i].path, spec.Tag, decoded[i].img)
		}
		if err != nil {
			tm.stats.Skipped++
			logger.Log.Warn("Skipping texture", zap.String("tag", spec.Tag), zap.Error(err))
		}
	}
}

// Slot returns the texture unit for tag, or -1.
func (tm *TextureManager) Slot(tag string) int {
	for i, s := range tm.slots {
		if s.tag == tag {
			return i
		}
	}
	return -1
}

func (tm *TextureManager) Len() int {
	return len(tm.slots)
}

func (tm *TextureManager) GetStats() TextureStats {
	return tm.stats
}

// Bind attaches every loaded texture to its unit.
func (tm *TextureManager) Bind() {
	for i, s := range tm.slots {
		gl.ActiveTexture(gl.TEXTURE0 + uint32(i))
		gl.BindTexture(gl.TEXTURE_2D, s.id)
	}
}

// Destroy deletes every texture and empties the slots.
func (tm *TextureManager) Destroy() {
	for _, s := range tm.slots {
		tm.release(s.id)
	}
	tm.slots = nil
	logger.Log.Info("Textures released", zap.Int("count", tm.stats.Loaded))
}

func uploadTexture(rgba *image.RGBA) uint32 {
	var textureID uint32
	gl.GenTextures(1, &textureID)
	gl.BindTexture(gl.TEXTURE_2D, textureID)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.TexImage2D(
		gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(rgba.Rect.Size().X), int32(rgba.Rect.Size().Y),
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return textureID
}

func deleteTexture(id uint32) {
	gl.DeleteTextures(1, &id)
}
