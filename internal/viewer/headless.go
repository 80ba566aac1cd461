package viewer

import (
	"context"
	"errors"
	"fmt"
	"log"

	"origamiview/internal/config"
	"origamiview/internal/dataset"
	"origamiview/internal/render"
)

// ParseSize reads a cell size written as WxH, e.g. "80x24".
func ParseSize(s string) (w, h int, err error) {
	if _, err := fmt.Sscanf(s, "%dx%d", &w, &h); err != nil || w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("viewer: invalid size %q", s)
	}
	return w, h, nil
}

// RenderHeadless draws ds on a w by h cell braille surface for ticks frames
// (0 runs until ctx is done) and returns the last frame as text.
// Cancelling ctx is not an error.
func RenderHeadless(ctx context.Context, cfg config.Config, ds dataset.Dataset, w, h int, ticks uint64, logger *log.Logger) (string, error) {
	br := render.NewBraille(w, h)
	v, err := New(cfg, br, logger)
	if err != nil {
		return "", err
	}
	v.Load(ds)
	if err := v.Resize(w*2, h*4); err != nil {
		return "", err
	}
	if err := v.Driver.Run(ctx, ticks); err != nil && !errors.Is(err, context.Canceled) {
		return "", err
	}
	return br.String(), nil
}
