package graphic

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color/palette"
	"image/gif"
	"image/png"
	"os"

	"golang.org/x/image/draw"

	"github.com/matzehuels/domrep/pkg/errors"
)

// FrameSequence is an animation made of figures shown one after another.
// Frames are rendered as PNG, scaled to the size of the first frame and
// dithered onto the Plan 9 palette.
type FrameSequence struct {
	Frames []Figure
}

// Save writes the animation to path. Only GIF is supported.
func (s FrameSequence) Save(ctx context.Context, path string, format Format, opts EncodeOptions) error {
	if format != GIF {
		return errors.New(errors.ErrCodeInvalidFormat, "frame sequences can only be saved as gif, not %s", format)
	}
	if len(s.Frames) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "frame sequence is empty")
	}

	anim, err := s.build(ctx, opts)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := gif.EncodeAll(f, anim); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (s FrameSequence) build(ctx context.Context, opts EncodeOptions) (*gif.GIF, error) {
	delay := int(opts.frameDelay().Milliseconds() / 10)
	anim := &gif.GIF{LoopCount: opts.LoopCount}

	var bounds image.Rectangle
	for i, fig := range s.Frames {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		img, err := renderFrame(ctx, fig, opts)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
		if i == 0 {
			bounds = image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy())
		}

		frame := image.NewPaletted(bounds, palette.Plan9)
		if img.Bounds().Size() == bounds.Size() {
			draw.FloydSteinberg.Draw(frame, bounds, img, img.Bounds().Min)
		} else {
			scaled := image.NewRGBA(bounds)
			draw.CatmullRom.Scale(scaled, bounds, img, img.Bounds(), draw.Over, nil)
			draw.FloydSteinberg.Draw(frame, bounds, scaled, image.Point{})
		}

		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, max(delay, 1))
	}
	return anim, nil
}

func renderFrame(ctx context.Context, fig Figure, opts EncodeOptions) (image.Image, error) {
	if r, ok := fig.(Raster); ok && r.Image != nil {
		return resize(r.Image, opts.Width, opts.Height), nil
	}
	var buf bytes.Buffer
	if err := fig.Render(ctx, &buf, PNG, EncodeOptions{Width: opts.Width, Height: opts.Height}); err != nil {
		return nil, err
	}
	return png.Decode(&buf)
}

// Frames builds a FrameSequence from figures or artists bound to figures.
func Frames(items ...any) (FrameSequence, error) {
	seq := FrameSequence{Frames: make([]Figure, 0, len(items))}
	for _, it := range items {
		switch v := it.(type) {
		case Figure:
			seq.Frames = append(seq.Frames, v)
		case Figurer:
			seq.Frames = append(seq.Frames, v.Figure())
		default:
			return FrameSequence{}, errors.Unsupported(it)
		}
	}
	return seq, nil
}
