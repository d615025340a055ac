package pathresolve

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"
)

// CopyFile copies src to dst through a temporary file and a rename.
// When dst already holds identical content nothing is written and false is returned,
// so repeated imports of the same source are safe.
func CopyFile(fs afero.Fs, src, dst string) (bool, error) {
	if filepath.Clean(src) == filepath.Clean(dst) {
		return false, nil
	}

	same, err := sameContent(fs, src, dst)
	if err != nil {
		return false, err
	}
	if same {
		return false, nil
	}

	in, err := fs.Open(src)
	if err != nil {
		return false, fmt.Errorf("failed to open source: %w", err)
	}
	defer in.Close()

	dir := filepath.Dir(dst)
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return false, fmt.Errorf("failed to create %s: %w", dir, err)
	}

	tmp, err := afero.TempFile(fs, dir, ".import-*")
	if err != nil {
		return false, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := io.Copy(tmp, in); err != nil {
		tmp.Close()
		_ = fs.Remove(tmpName)
		return false, fmt.Errorf("failed to copy %s: %w", src, err)
	}
	if err := tmp.Close(); err != nil {
		_ = fs.Remove(tmpName)
		return false, fmt.Errorf("failed to flush %s: %w", tmpName, err)
	}
	if err := fs.Rename(tmpName, dst); err != nil {
		_ = fs.Remove(tmpName)
		return false, fmt.Errorf("failed to move into %s: %w", dst, err)
	}
	_ = fs.Chmod(dst, 0644)

	return true, nil
}

func sameContent(fs afero.Fs, a, b string) (bool, error) {
	ai, err := fs.Stat(a)
	if err != nil {
		return false, fmt.Errorf("failed to stat source: %w", err)
	}
	bi, err := fs.Stat(b)
	if err != nil || bi.IsDir() || ai.Size() != bi.Size() {
		return false, nil
	}

	ah, err := fileDigest(fs, a)
	if err != nil {
		return false, err
	}
	bh, err := fileDigest(fs, b)
	if err != nil {
		return false, err
	}
	return bytes.Equal(ah, bh), nil
}

func fileDigest(fs afero.Fs, name string) ([]byte, error) {
	f, err := fs.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return nil, fmt.Errorf("failed to hash %s: %w", name, err)
	}
	return h.Sum(nil), nil
}
