package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

// Source produces raw records for the Builder.
type Source interface {
	// Name identifies the source mode in logs.
	Name() string
	// Collect returns the records in source order. A missing top-level source
	// returns an error wrapping ErrSourceMissing.
	Collect(ctx context.Context) ([]Record, error)
}

// requireDir fails with ErrSourceMissing unless dir is an existing directory.
func requireDir(fs afero.Fs, dir string) error {
	info, err := fs.Stat(dir)
	if err != nil {
		return fmt.Errorf("%w: %s does not exist", ErrSourceMissing, dir)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrSourceMissing, dir)
	}
	return nil
}

// requireFile fails with ErrSourceMissing unless name is an existing regular file.
func requireFile(fs afero.Fs, name string) error {
	info, err := fs.Stat(name)
	if err != nil {
		return fmt.Errorf("%w: %s does not exist", ErrSourceMissing, name)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrSourceMissing, name)
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
