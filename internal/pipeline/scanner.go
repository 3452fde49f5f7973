package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Source represents a discovered image file.
type Source struct {
	// AbsPath is the absolute path to the file on disk.
	AbsPath string
	// RelPath is the path relative to the scanned directory.
	RelPath string
	// Key is the relpath without extension; it pairs originals with
	// their compressed counterparts.
	Key string
	// Format is the source format (png, jpeg, webp, gif, bmp, tiff).
	Format string
	// Size is the file size in bytes.
	Size int64
}

// Pair is one compressed file and the original it is scored against.
type Pair struct {
	Original   Source
	Compressed Source
}

// imageExtensions lists recognized image file extensions.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
	".gif":  true,
	".bmp":  true,
	".tiff": true,
	".tif":  true,
}

// ScanImages walks dir and returns all image sources.
func ScanImages(dir string) ([]Source, error) {
	var sources []Source

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			// Skip hidden directories.
			if strings.HasPrefix(info.Name(), ".") && path != dir {
				return filepath.SkipDir
			}
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !imageExtensions[ext] {
			return nil
		}

		relPath, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}

		format := strings.TrimPrefix(ext, ".")
		switch format {
		case "jpg":
			format = "jpeg"
		case "tif":
			format = "tiff"
		}

		sources = append(sources, Source{
			AbsPath: path,
			RelPath: filepath.ToSlash(relPath),
			Key:     filepath.ToSlash(strings.TrimSuffix(relPath, filepath.Ext(relPath))),
			Format:  format,
			Size:    info.Size(),
		})
		return nil
	})

	return sources, err
}

// ScanPairs matches every image under compressedDir with the image under
// originalDir that has the same key. A key may be compressed into several
// formats; each becomes its own pair. Compressed files without an original
// are returned as unmatched relpaths. Pairs are sorted by compressed relpath.
func ScanPairs(originalDir, compressedDir string) (pairs []Pair, unmatched []string, err error) {
	originals, err := ScanImages(originalDir)
	if err != nil {
		return nil, nil, fmt.Errorf("scan originals: %w", err)
	}
	compressed, err := ScanImages(compressedDir)
	if err != nil {
		return nil, nil, fmt.Errorf("scan compressed: %w", err)
	}

	byKey := make(map[string]Source, len(originals))
	for _, o := range originals {
		if prev, dup := byKey[o.Key]; dup {
			return nil, nil, fmt.Errorf("ambiguous original for %q: %s and %s", o.Key, prev.RelPath, o.RelPath)
		}
		byKey[o.Key] = o
	}

	for _, c := range compressed {
		o, ok := byKey[c.Key]
		if !ok {
			unmatched = append(unmatched, c.RelPath)
			continue
		}
		pairs = append(pairs, Pair{Original: o, Compressed: c})
	}

	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].Compressed.RelPath < pairs[j].Compressed.RelPath
	})
	sort.Strings(unmatched)
	return pairs, unmatched, nil
}
