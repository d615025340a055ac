package pathresolve

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// ErrUnresolvable marks a reference that cannot be mapped to any file location.
var ErrUnresolvable = errors.New("unresolvable reference")

// Kind classifies how a reference was resolved.
type Kind int

const (
	// KindExternal is a URL passed through unchanged.
	KindExternal Kind = iota + 1
	// KindRelative is an existing file under the asset tree.
	KindRelative
	// KindImport is an absolute file that must be copied into the managed folder.
	KindImport
	// KindGuess is a relative reference with no file on disk yet.
	KindGuess
)

func (k Kind) String() string {
	switch k {
	case KindExternal:
		return "external"
	case KindRelative:
		return "relative"
	case KindImport:
		return "import"
	case KindGuess:
		return "guess"
	default:
		return "unknown"
	}
}

// Resolution is the outcome of planning a single reference.
type Resolution struct {
	Kind Kind
	// Path is the site-relative path (or URL) to publish.
	Path string
	// Source is the absolute file to copy for KindImport.
	Source string
	// Target is the filesystem destination for KindImport.
	Target string
}

// Resolver resolves references against the site root and the managed asset root.
type Resolver struct {
	fs        afero.Fs
	siteRoot  string
	assetRoot string
}

// New creates a resolver. siteRoot is a filesystem directory, assetRoot is
// site-relative (e.g. "assets/models").
func New(fs afero.Fs, siteRoot, assetRoot string) *Resolver {
	root := strings.Trim(filepath.ToSlash(assetRoot), "/")
	return &Resolver{
		fs:        fs,
		siteRoot:  siteRoot,
		assetRoot: path.Clean(root),
	}
}

// Plan decides where raw should point for the item itemID without writing anything.
func (r *Resolver) Plan(raw, itemID string) (Resolution, error) {
	ref := strings.TrimSpace(raw)
	if ref == "" {
		return Resolution{}, fmt.Errorf("%w: empty reference", ErrUnresolvable)
	}

	if strings.HasPrefix(strings.ToLower(ref), "http") {
		return Resolution{Kind: KindExternal, Path: ref}, nil
	}

	if filepath.IsAbs(ref) {
		if !r.isFile(ref) {
			return Resolution{}, fmt.Errorf("%w: %s does not exist", ErrUnresolvable, ref)
		}
		if !SafeID(itemID) {
			return Resolution{}, fmt.Errorf("%w: no managed folder for id %q", ErrUnresolvable, itemID)
		}
		rel := path.Join(r.assetRoot, itemID, filepath.Base(ref))
		if !within(path.Join(r.assetRoot, itemID), rel) {
			return Resolution{}, fmt.Errorf("%w: %s leaves the folder of %s", ErrUnresolvable, ref, itemID)
		}
		return Resolution{
			Kind:   KindImport,
			Path:   rel,
			Source: ref,
			Target: r.FilePath(rel),
		}, nil
	}

	rel := strings.TrimPrefix(filepath.ToSlash(ref), "./")
	if strings.HasPrefix(rel, r.assetRoot+"/") {
		if !within(r.assetRoot, rel) {
			return Resolution{}, fmt.Errorf("%w: %s leaves the asset root", ErrUnresolvable, ref)
		}
		return Resolution{Kind: KindRelative, Path: path.Clean(rel)}, nil
	}

	guess := path.Join(r.assetRoot, rel)
	if !within(r.assetRoot, guess) {
		return Resolution{}, fmt.Errorf("%w: %s leaves the asset root", ErrUnresolvable, ref)
	}

	candidates := []string{guess}
	// The item folder is only searched for ids that name a single folder.
	if SafeID(itemID) {
		if c := path.Join(r.assetRoot, itemID, rel); within(path.Join(r.assetRoot, itemID), c) {
			candidates = append(candidates, c)
		}
	}
	for _, c := range candidates {
		if r.isFile(r.FilePath(c)) {
			return Resolution{Kind: KindRelative, Path: c}, nil
		}
	}

	return Resolution{Kind: KindGuess, Path: guess}, nil
}

// SafeID reports whether id names exactly one folder below the asset root.
func SafeID(id string) bool {
	if id == "" || id == "." || id == ".." || filepath.IsAbs(id) {
		return false
	}
	return !strings.ContainsAny(id, `/\`)
}

// within reports whether the clean slash path p is root or lies below it.
func within(root, p string) bool {
	p = path.Clean(p)
	if root == "." {
		return p != ".." && !strings.HasPrefix(p, "../") && !path.IsAbs(p)
	}
	return p == root || strings.HasPrefix(p, root+"/")
}

// Import executes the copy planned for a KindImport resolution.
// Other kinds are a no-op. It reports whether any bytes were written.
func (r *Resolver) Import(res Resolution) (bool, error) {
	if res.Kind != KindImport {
		return false, nil
	}
	return CopyFile(r.fs, res.Source, res.Target)
}

// Resolve plans raw and performs the import step when needed.
func (r *Resolver) Resolve(raw, itemID string) (Resolution, bool, error) {
	res, err := r.Plan(raw, itemID)
	if err != nil {
		return Resolution{}, false, err
	}
	copied, err := r.Import(res)
	if err != nil {
		return Resolution{}, false, fmt.Errorf("failed to import %s: %w", res.Source, err)
	}
	return res, copied, nil
}

// FilePath converts a site-relative path into a filesystem path.
func (r *Resolver) FilePath(rel string) string {
	return filepath.Join(r.siteRoot, filepath.FromSlash(rel))
}

func (r *Resolver) isFile(name string) bool {
	info, err := r.fs.Stat(name)
	return err == nil && !info.IsDir()
}
