package utils

import (
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/voxelsplace/redlevel/api"
	"github.com/voxelsplace/redlevel/config"
)

// RunPalette prints the colour field of a level as terminal swatches.
func RunPalette(cfg config.Config, levelPath, field string, w io.Writer) error {
	rec, err := DecodeFile(cfg, levelPath)
	if err != nil {
		return err
	}
	p, err := api.RecordPalette(rec, field)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, api.RenderPalette(field, p))
	return err
}

// RunPalette2GLB writes the colour field of a level as a .glb preview.
func RunPalette2GLB(cfg config.Config, levelPath, field, outPath string) error {
	rec, err := DecodeFile(cfg, levelPath)
	if err != nil {
		return err
	}
	p, err := api.RecordPalette(rec, field)
	if err != nil {
		return err
	}
	glb, err := api.PaletteToGLB(p)
	if err != nil {
		return errors.Wrap(err, "build glb")
	}
	return os.WriteFile(outPath, glb, 0o644)
}
