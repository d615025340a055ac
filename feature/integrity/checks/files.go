package checks

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
	"github.com/spf13/afero"
)

// Status is the outcome of checking one reference.
type Status string

const (
	StatusOK       Status = "OK"
	StatusMissing  Status = "MISSING"
	StatusNotImage Status = "NOT_IMAGE"
	StatusExternal Status = "EXTERNAL"
)

// Entry is the check result of one reference of one item.
type Entry struct {
	ID     string `json:"id"`
	Field  string `json:"field"`
	Path   string `json:"path"`
	Status Status `json:"status"`
}

// headerSize is the number of bytes filetype needs to match every known type.
const headerSize = 262

// CheckFile checks a site-relative reference under siteRoot.
// isImage decides which extensions must sniff as an image.
func CheckFile(fs afero.Fs, siteRoot, ref string, isImage func(string) bool) Status {
	if strings.HasPrefix(strings.ToLower(ref), "http") {
		return StatusExternal
	}

	name := filepath.Join(siteRoot, filepath.FromSlash(ref))
	info, err := fs.Stat(name)
	if err != nil || info.IsDir() {
		return StatusMissing
	}

	if isImage == nil || !isImage(ref) {
		return StatusOK
	}

	f, err := fs.Open(name)
	if err != nil {
		return StatusMissing
	}
	defer f.Close()

	head := make([]byte, headerSize)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return StatusMissing
	}
	if !filetype.IsImage(head[:n]) {
		return StatusNotImage
	}
	return StatusOK
}
