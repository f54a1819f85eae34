package wordcloud

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"math/rand/v2"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/oarkflow/textlab/nlp/stopwords"
)

// ErrNoWords is returned when there is nothing to draw.
var ErrNoWords = errors.New("wordcloud: no words to draw")

const (
	relativeScaling = 0.5
	fontStep        = 2
	spiralGrowth    = 4.0
	spiralStep      = 6.0
	padding         = 2
)

// viridis-like palette
var defaultPalette = []color.Color{
	color.RGBA{0x44, 0x01, 0x54, 0xff},
	color.RGBA{0x48, 0x28, 0x78, 0xff},
	color.RGBA{0x3e, 0x4a, 0x89, 0xff},
	color.RGBA{0x31, 0x68, 0x8e, 0xff},
	color.RGBA{0x26, 0x82, 0x8e, 0xff},
	color.RGBA{0x1f, 0x9e, 0x89, 0xff},
	color.RGBA{0x35, 0xb7, 0x79, 0xff},
	color.RGBA{0x6d, 0xcd, 0x59, 0xff},
	color.RGBA{0xb4, 0xde, 0x2c, 0xff},
	color.RGBA{0xfd, 0xe7, 0x25, 0xff},
}

// Options controls the cloud canvas and typography.
type Options struct {
	Width       int
	Height      int
	MaxWords    int
	MinFontSize float64
	MaxFontSize float64
	Background  color.Color
	Palette     []color.Color
	Seed        uint64
}

// DefaultOptions returns a 800x400 canvas on black.
func DefaultOptions() Options {
	return Options{
		Width:       800,
		Height:      400,
		MaxWords:    DefaultMaxWords,
		MinFontSize: 8,
		Background:  color.Black,
		Palette:     defaultPalette,
		Seed:        1,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Width <= 0 {
		o.Width = d.Width
	}
	if o.Height <= 0 {
		o.Height = d.Height
	}
	if o.MaxWords <= 0 {
		o.MaxWords = d.MaxWords
	}
	if o.MinFontSize <= 0 {
		o.MinFontSize = d.MinFontSize
	}
	if o.MaxFontSize <= 0 {
		o.MaxFontSize = float64(o.Height) / 3
	}
	if o.Background == nil {
		o.Background = d.Background
	}
	if len(o.Palette) == 0 {
		o.Palette = d.Palette
	}
	return o
}

// Placement is a word drawn on the canvas.
type Placement struct {
	Word     Word
	Rect     image.Rectangle
	FontSize float64
}

// Cloud is a rendered word cloud.
type Cloud struct {
	Image  *image.RGBA
	Placed []Placement
}

// EncodePNG writes the cloud as PNG.
func (c *Cloud) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.Image)
}

// Render lays words out on an Archimedean spiral, largest first, shrinking a
// word until it fits. Words that do not fit at the minimum size are skipped.
func Render(words []Word, opts Options) (*Cloud, error) {
	if len(words) == 0 {
		return nil, ErrNoWords
	}
	opts = opts.withDefaults()
	if len(words) > opts.MaxWords {
		words = words[:opts.MaxWords]
	}
	f, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("wordcloud: parse font: %w", err)
	}
	faces := make(map[int]font.Face)
	defer func() {
		for _, face := range faces {
			face.Close()
		}
	}()
	faceFor := func(size int) (font.Face, error) {
		if face, ok := faces[size]; ok {
			return face, nil
		}
		face, err := opentype.NewFace(f, &opentype.FaceOptions{
			Size:    float64(size),
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, err
		}
		faces[size] = face
		return face, nil
	}

	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
	cloud := &Cloud{Image: img}

	lastSize, lastWeight := opts.MaxFontSize, 1.0
	for _, w := range words {
		if w.Weight <= 0 {
			continue
		}
		size := (relativeScaling*(w.Weight/lastWeight) + 1 - relativeScaling) * lastSize
		size = math.Min(math.Round(size), opts.MaxFontSize)
		for ; size >= opts.MinFontSize; size -= fontStep {
			face, err := faceFor(int(size))
			if err != nil {
				return nil, fmt.Errorf("wordcloud: font face: %w", err)
			}
			m := face.Metrics()
			width := font.MeasureString(face, w.Text).Ceil()
			height := (m.Ascent + m.Descent).Ceil()
			if width >= opts.Width || height >= opts.Height {
				continue
			}
			rect, ok := place(width, height, cloud.Placed, opts, rng)
			if !ok {
				continue
			}
			d := &font.Drawer{
				Dst:  img,
				Src:  image.NewUniform(opts.Palette[rng.IntN(len(opts.Palette))]),
				Face: face,
				Dot:  fixed.P(rect.Min.X, rect.Min.Y+m.Ascent.Ceil()),
			}
			d.DrawString(w.Text)
			cloud.Placed = append(cloud.Placed, Placement{Word: w, Rect: rect, FontSize: size})
			lastSize, lastWeight = size, w.Weight
			break
		}
	}
	if len(cloud.Placed) == 0 {
		return nil, ErrNoWords
	}
	return cloud, nil
}

func place(width, height int, placed []Placement, opts Options, rng *rand.Rand) (image.Rectangle, bool) {
	bounds := image.Rect(0, 0, opts.Width, opts.Height)
	cx := float64(opts.Width-width)/2 + (rng.Float64()-0.5)*float64(opts.Width)/4
	cy := float64(opts.Height-height)/2 + (rng.Float64()-0.5)*float64(opts.Height)/4
	limit := math.Hypot(float64(opts.Width), float64(opts.Height))
	for t := 0.0; spiralGrowth*t <= limit; {
		r := spiralGrowth * t
		x := int(cx + r*math.Cos(t))
		y := int(cy + r*math.Sin(t))
		rect := image.Rect(x, y, x+width, y+height)
		if rect.In(bounds) && !overlaps(rect, placed) {
			return rect, true
		}
		t += spiralStep / math.Max(r, spiralStep)
	}
	return image.Rectangle{}, false
}

func overlaps(rect image.Rectangle, placed []Placement) bool {
	padded := rect.Inset(-padding)
	for _, p := range placed {
		if padded.Overlaps(p.Rect) {
			return true
		}
	}
	return false
}

// Generate counts the words of text and returns the cloud as PNG bytes.
func Generate(text string, list *stopwords.List, opts Options) ([]byte, error) {
	opts = opts.withDefaults()
	words := Frequencies(text, list, opts.MaxWords)
	cloud, err := Render(words, opts)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := cloud.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("wordcloud: encode png: %w", err)
	}
	return buf.Bytes(), nil
}
