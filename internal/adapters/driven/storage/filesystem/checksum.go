package filesystem

import (
	"context"
	"crypto/md5" //nolint:gosec // integrity tag, not a security boundary
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/custodia-labs/fixtodict/internal/core/ports/driven"
)

// Ensure Checksummer implements the interface.
var _ driven.Checksummer = (*Checksummer)(nil)

// Checksummer hashes every regular file under a directory with MD5 and
// reduces the sorted per-file digests into one MD5 digest. The result is
// independent of file names and walk order.
type Checksummer struct{}

// NewChecksummer creates a directory checksummer.
func NewChecksummer() *Checksummer {
	return &Checksummer{}
}

// Checksum returns the directory hash of dir.
func (c *Checksummer) Checksum(ctx context.Context, dir string) (string, error) {
	var digests []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		sum, err := fileMD5(path)
		if err != nil {
			return err
		}
		digests = append(digests, sum)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("checksum %s: %w", dir, err)
	}

	sort.Strings(digests)
	h := md5.New() //nolint:gosec // see import
	for _, d := range digests {
		io.WriteString(h, d)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func fileMD5(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := md5.New() //nolint:gosec // see import
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
