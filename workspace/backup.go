package workspace

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/voxelsplace/redlevel/level"
)

// Compression is the codec used for backup files.
type Compression uint8

const (
	CompressNone Compression = 0
	CompressZlib Compression = 1
	CompressZstd Compression = 2
)

// ParseCompression maps a config name to a Compression. An empty name
// selects zstd.
func ParseCompression(s string) (Compression, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "raw":
		return CompressNone, nil
	case "zlib":
		return CompressZlib, nil
	case "", "zstd":
		return CompressZstd, nil
	default:
		return 0, errors.Errorf("unsupported compression: %q", s)
	}
}

func (c Compression) String() string {
	switch c {
	case CompressNone:
		return "none"
	case CompressZlib:
		return "zlib"
	case CompressZstd:
		return "zstd"
	default:
		return fmt.Sprintf("compression(%d)", uint8(c))
	}
}

// Ext is the file extension, without the dot, of backups using c.
func (c Compression) Ext() string {
	switch c {
	case CompressZlib:
		return "zz"
	case CompressZstd:
		return "zst"
	default:
		return "raw"
	}
}

func compressionFromExt(ext string) (Compression, bool) {
	switch ext {
	case "raw":
		return CompressNone, true
	case "zz":
		return CompressZlib, true
	case "zst":
		return CompressZstd, true
	default:
		return 0, false
	}
}

func compress(c Compression, b []byte) ([]byte, error) {
	switch c {
	case CompressNone:
		return b, nil
	case CompressZlib:
		var buf bytes.Buffer
		zw, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
		if err != nil {
			return nil, err
		}
		if _, err := zw.Write(b); err != nil {
			return nil, err
		}
		if err := zw.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case CompressZstd:
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, err
		}
		defer enc.Close()
		return enc.EncodeAll(b, nil), nil
	default:
		return nil, errors.Errorf("unsupported compression: %d", c)
	}
}

// decompress expands b. When limit is positive, output larger than limit
// bytes fails with level.ErrTooLarge.
func decompress(c Compression, b []byte, limit int64) ([]byte, error) {
	var out []byte
	switch c {
	case CompressNone:
		out = b
	case CompressZlib:
		zr, err := zlib.NewReader(bytes.NewReader(b))
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		var r io.Reader = zr
		if limit > 0 {
			r = io.LimitReader(zr, limit+1)
		}
		if out, err = io.ReadAll(r); err != nil {
			return nil, err
		}
	case CompressZstd:
		var opts []zstd.DOption
		if limit > 0 {
			opts = append(opts, zstd.WithDecoderMaxMemory(uint64(limit)))
		}
		dec, err := zstd.NewReader(nil, opts...)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		out, err = dec.DecodeAll(b, nil)
		if errors.Is(err, zstd.ErrDecoderSizeExceeded) || errors.Is(err, zstd.ErrWindowSizeExceeded) {
			return nil, level.ErrTooLarge
		}
		if err != nil {
			return nil, err
		}
	default:
		return nil, errors.Errorf("unsupported compression: %d", c)
	}
	if limit > 0 && int64(len(out)) > limit {
		return nil, level.ErrTooLarge
	}
	return out, nil
}

// Digest is the xxhash64 of raw level bytes, as used in backup names.
func Digest(raw []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(raw))
}

// Backups stores compressed copies of level files, named
// <level>.<digest>.<ext>. Identical contents share one backup file.
// A nil Loader reads files with no size limit.
type Backups struct {
	Dir    string
	Codec  Compression
	Loader *level.Loader
	Logger zerolog.Logger
}

// NewBackups returns a Backups that logs through the global logger.
func NewBackups(dir string, codec Compression, loader *level.Loader) *Backups {
	if loader == nil {
		loader = level.NewLoader(0)
	}
	return &Backups{Dir: dir, Codec: codec, Loader: loader, Logger: log.Logger}
}

func (b *Backups) loader() *level.Loader {
	if b.Loader == nil {
		return level.NewLoader(0)
	}
	return b.Loader
}

// Backup copies the level at levelPath into the backup directory and
// returns the backup's path.
func (b *Backups) Backup(levelPath string) (string, error) {
	if _, err := OpenOrCreate(b.Dir); err != nil {
		return "", err
	}
	c, err := b.loader().Load(levelPath)
	if err != nil {
		return "", err
	}
	raw := c.Bytes()
	digest := Digest(raw)
	name := fmt.Sprintf("%s.%s.%s", filepath.Base(levelPath), digest, b.Codec.Ext())
	dest := filepath.Join(b.Dir, name)

	logger := b.Logger.With().Str("level", levelPath).Str("backup", dest).Logger()
	if fi, err := os.Stat(dest); err == nil && fi.Mode().IsRegular() {
		logger.Debug().Msg("backup unchanged")
		return dest, nil
	}

	data, err := compress(b.Codec, raw)
	if err != nil {
		return "", errors.Wrapf(err, "compress %s", levelPath)
	}
	if err := writeFileAtomic(dest, data); err != nil {
		return "", &level.IOError{Op: "write", Path: dest, Err: err}
	}
	logger.Info().Int("bytes", len(raw)).Int("stored", len(data)).Stringer("codec", b.Codec).Msg("backed up level")
	return dest, nil
}

// BackupAll backs up every path concurrently. Results keep the input order.
func (b *Backups) BackupAll(paths []string) ([]string, error) {
	if _, err := OpenOrCreate(b.Dir); err != nil {
		return nil, err
	}
	out := make([]string, len(paths))
	errs := make([]error, len(paths))

	var wg sync.WaitGroup
	for i := range paths {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out[i], errs[i] = b.Backup(paths[i])
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Restore decompresses backupPath into dest after checking that the
// contents still match the digest in the backup's name.
func (b *Backups) Restore(backupPath, dest string) error {
	digest, codec, err := parseBackupName(filepath.Base(backupPath))
	if err != nil {
		return err
	}
	loader := b.loader()
	c, err := loader.Load(backupPath)
	if err != nil {
		return err
	}
	raw, err := decompress(codec, c.Bytes(), loader.MaxSize)
	if errors.Is(err, level.ErrTooLarge) {
		return &level.IOError{Op: "restore", Path: backupPath, Err: err}
	}
	if err != nil {
		return &level.FormatError{Offset: 0, Msg: "corrupt backup: " + err.Error()}
	}
	if Digest(raw) != digest {
		return &level.FormatError{Offset: 0, Msg: "backup digest mismatch"}
	}
	if err := writeFileAtomic(dest, raw); err != nil {
		return &level.IOError{Op: "write", Path: dest, Err: err}
	}
	b.Logger.Info().Str("backup", backupPath).Str("dest", dest).Msg("restored level")
	return nil
}

// List returns the backups of levelPath, sorted by name.
func (b *Backups) List(levelPath string) ([]string, error) {
	if _, err := os.Stat(b.Dir); os.IsNotExist(err) {
		return nil, nil
	}
	files, err := Contents(KindFile, b.Dir)
	if err != nil {
		return nil, err
	}
	prefix := filepath.Base(levelPath) + "."
	var out []string
	for _, f := range files {
		name := filepath.Base(f)
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		if _, _, err := parseBackupName(name); err == nil && strings.Count(name[len(prefix):], ".") == 1 {
			out = append(out, f)
		}
	}
	return out, nil
}

func parseBackupName(name string) (digest string, codec Compression, err error) {
	parts := strings.Split(name, ".")
	if len(parts) < 3 {
		return "", 0, &level.FormatError{Msg: "not a backup name: " + name}
	}
	codec, ok := compressionFromExt(parts[len(parts)-1])
	if !ok {
		return "", 0, &level.FormatError{Msg: "unknown backup extension: " + name}
	}
	digest = parts[len(parts)-2]
	if len(digest) != 16 {
		return "", 0, &level.FormatError{Msg: "bad backup digest: " + name}
	}
	return digest, codec, nil
}

func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".redlevel-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
