package utils

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/voxelsplace/redlevel/config"
	"github.com/voxelsplace/redlevel/layout"
	"github.com/voxelsplace/redlevel/level"
	"github.com/voxelsplace/redlevel/workspace"
)

// DecodeFile loads levelPath and decodes it with the configured layout.
func DecodeFile(cfg config.Config, levelPath string) (*layout.Record, error) {
	l, err := layout.Load(cfg.Layout)
	if err != nil {
		return nil, err
	}
	c, err := level.NewLoader(cfg.MaxFileSize).Load(levelPath)
	if err != nil {
		return nil, err
	}
	rec, err := l.Decode(c)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", levelPath)
	}
	return rec, nil
}

// RunInspect prints every field of a level file.
func RunInspect(cfg config.Config, levelPath string, w io.Writer) error {
	rec, err := DecodeFile(cfg, levelPath)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s (layout %q, xxhash %016x)\n", filepath.Base(levelPath), rec.Layout, rec.Digest)
	for _, v := range rec.Values {
		switch v.Kind {
		case layout.KindMagic:
			fmt.Fprintf(w, "  magic   %q\n", v.Text)
		case layout.KindString:
			fmt.Fprintf(w, "  string  %-16s %q\n", v.Name, v.Text)
		case layout.KindColors:
			fmt.Fprintf(w, "  colors  %-16s %d\n", v.Name, len(v.Colors))
			for i, c := range v.Colors {
				fmt.Fprintf(w, "          %3d %s %s\n", i, c.Hex(), c)
			}
		}
	}
	return nil
}

// RunList prints the level files in the configured level directory,
// creating the directory when it does not exist yet.
func RunList(cfg config.Config, w io.Writer) error {
	dir, err := workspace.OpenOrCreate(cfg.LevelDir)
	if err != nil {
		return err
	}
	files, err := workspace.Contents(workspace.KindFile, dir)
	if err != nil {
		return err
	}
	for _, f := range files {
		fmt.Fprintln(w, filepath.Base(f))
	}
	return nil
}
