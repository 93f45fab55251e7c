// Package scan discovers images in a source directory and measures their
// intrinsic dimensions, producing a gallery manifest.
//
// Dimensions are read from file headers via image.DecodeConfig, so scanning
// never decodes full pixel data. JPEG, PNG, GIF, WebP, TIFF, and BMP are
// supported. Optional per-gallery metadata (title, alt text, captions) comes
// from a gallery.toml sidecar file in the source directory.
package scan

import (
	"context"
	"image"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	// Header-only decoders for DecodeConfig.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/charmbracelet/log"

	"github.com/ylingene/gallery/pkg/cache"
	"github.com/ylingene/gallery/pkg/errors"
	"github.com/ylingene/gallery/pkg/gallery"
)

// imageExtensions maps recognized file extensions to true.
// Extensions are matched case-insensitively.
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".tif":  true,
	".tiff": true,
	".bmp":  true,
}

// Options configures a directory scan.
type Options struct {
	// Recursive descends into subdirectories when true.
	Recursive bool

	// Logger receives per-file debug output. Nil disables logging.
	Logger *log.Logger
}

// Scanner discovers and measures images under a source directory.
type Scanner struct {
	dir    string
	opts   Options
	logger *log.Logger
}

// NewScanner creates a scanner for the given directory.
func NewScanner(dir string, opts Options) (*Scanner, error) {
	if err := errors.ValidateSourceDir(dir); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Scanner{dir: dir, opts: opts, logger: logger}, nil
}

// Scan walks the source directory and builds a manifest.
//
// Files that are not recognized images are skipped. Files with a recognized
// extension whose header cannot be decoded produce an error, since silently
// dropping them would change the layout without warning. Image IDs are paths
// relative to the source directory with forward slashes, and the manifest is
// sorted by ID so repeated scans of the same tree are identical.
func (s *Scanner) Scan(ctx context.Context) (*gallery.Manifest, error) {
	paths, err := s.collect()
	if err != nil {
		return nil, err
	}

	m := &gallery.Manifest{
		Source: s.dir,
		Images: make([]gallery.Image, 0, len(paths)),
	}

	sidecar, err := LoadSidecar(s.dir)
	if err != nil {
		return nil, err
	}
	if sidecar != nil {
		m.Title = sidecar.Title
	}

	for _, rel := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		w, h, err := measure(filepath.Join(s.dir, rel))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidImage, err, "read dimensions of %q", rel)
		}

		img := gallery.Image{
			ID:     filepath.ToSlash(rel),
			Width:  float64(w),
			Height: float64(h),
		}
		if sidecar != nil {
			if meta, ok := sidecar.Images[img.ID]; ok {
				img.Alt = meta.Alt
				img.Caption = meta.Caption
			}
		}

		s.logger.Debug("measured image", "id", img.ID, "width", w, "height", h)
		m.Images = append(m.Images, img)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Fingerprint returns a hash identifying the current state of the source
// directory: the relative path, size, and mtime of every candidate image
// plus the sidecar file. Used as a cache key so an unchanged directory
// reuses its cached manifest.
func (s *Scanner) Fingerprint() (string, error) {
	paths, err := s.collect()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	stat := func(rel string) error {
		info, err := os.Stat(filepath.Join(s.dir, rel))
		if err != nil {
			return err
		}
		sb.WriteString(filepath.ToSlash(rel))
		sb.WriteByte('\x00')
		sb.WriteString(strconv.FormatInt(info.Size(), 10))
		sb.WriteByte('\x00')
		sb.WriteString(strconv.FormatInt(info.ModTime().UnixNano(), 10))
		sb.WriteByte('\n')
		return nil
	}

	for _, rel := range paths {
		if err := stat(rel); err != nil {
			return "", err
		}
	}
	if _, err := os.Stat(filepath.Join(s.dir, SidecarFilename)); err == nil {
		if err := stat(SidecarFilename); err != nil {
			return "", err
		}
	}

	return cache.Hash([]byte(sb.String())), nil
}

// collect lists candidate image files relative to the source directory,
// sorted by relative path.
func (s *Scanner) collect() ([]string, error) {
	var paths []string

	walkFn := func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path == s.dir {
				return nil
			}
			if !s.opts.Recursive || strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") {
			return nil
		}
		if !imageExtensions[strings.ToLower(filepath.Ext(d.Name()))] {
			return nil
		}
		rel, err := filepath.Rel(s.dir, path)
		if err != nil {
			return err
		}
		paths = append(paths, rel)
		return nil
	}

	if err := filepath.WalkDir(s.dir, walkFn); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "walk source directory")
	}

	sort.Strings(paths)
	return paths, nil
}

// measure reads intrinsic pixel dimensions from a file header.
func measure(path string) (width, height int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}
