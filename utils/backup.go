package utils

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/voxelsplace/redlevel/config"
	"github.com/voxelsplace/redlevel/level"
	"github.com/voxelsplace/redlevel/workspace"
)

func backups(cfg config.Config) (*workspace.Backups, error) {
	codec, err := workspace.ParseCompression(cfg.Compression)
	if err != nil {
		return nil, err
	}
	return workspace.NewBackups(cfg.BackupDir, codec, level.NewLoader(cfg.MaxFileSize)), nil
}

// RunBackup backs up each level file and prints the backup paths.
func RunBackup(cfg config.Config, levelPaths []string, w io.Writer) error {
	if len(levelPaths) == 0 {
		return errors.New("no level files provided")
	}
	b, err := backups(cfg)
	if err != nil {
		return err
	}
	out, err := b.BackupAll(levelPaths)
	if err != nil {
		return err
	}
	for _, p := range out {
		fmt.Fprintln(w, p)
	}
	return nil
}

// RunRestore restores a backup file to outPath.
func RunRestore(cfg config.Config, backupPath, outPath string) error {
	b, err := backups(cfg)
	if err != nil {
		return err
	}
	return b.Restore(backupPath, outPath)
}

// RunListBackups prints the backups kept for levelPath.
func RunListBackups(cfg config.Config, levelPath string, w io.Writer) error {
	b, err := backups(cfg)
	if err != nil {
		return err
	}
	list, err := b.List(levelPath)
	if err != nil {
		return err
	}
	for _, p := range list {
		fmt.Fprintln(w, p)
	}
	return nil
}
