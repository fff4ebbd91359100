package secrets

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Pair is one (encrypted, decrypted) path pair produced by a scan,
// before Secret construction validates it.
type Pair struct {
	Encrypted string
	Decrypted string
}

// Search walks root for encrypted sources and derives each one's
// decrypted counterpart.
//
// Directories whose name contains the marker are processed first, in
// sorted order: every regular file beneath a marked directory is
// re-rooted under the renamed directory and then renamed at the file
// level. Standalone marked files follow, sorted, excluding anything
// already covered by a marked directory. All paths are resolved
// (absolute, symlinks eliminated) before being returned.
//
// Scanning is permissive: files with unrecognized extensions still get
// a decrypted path computed here, and are rejected later when the
// registry constructs Secrets.
func Search(root string) ([]Pair, error) {
	matches, err := doublestar.FilepathGlob(
		filepath.Join(root, "**", "*"+EncryptedMarker+"*"))
	if err != nil {
		return nil, fmt.Errorf("searching %s: %w", root, err)
	}

	var dirs, files []string
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil {
			return nil, fmt.Errorf("searching %s: %w", root, err)
		}
		switch {
		case info.IsDir():
			dirs = append(dirs, match)
		case info.Mode().IsRegular():
			files = append(files, match)
		}
	}
	sort.Strings(dirs)
	sort.Strings(files)

	var pairs []Pair

	for _, encDir := range dirs {
		decDir := RenameDirectory(encDir)
		err := filepath.WalkDir(encDir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !d.Type().IsRegular() {
				return nil
			}
			transposed, err := Transpose(path, encDir, decDir)
			if err != nil {
				return err
			}
			pairs = append(pairs, Pair{Encrypted: path, Decrypted: Rename(transposed)})
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("searching %s: %w", encDir, err)
		}
	}

	for _, encPath := range files {
		if inDirectories(encPath, dirs) {
			continue
		}
		pairs = append(pairs, Pair{Encrypted: encPath, Decrypted: Rename(encPath)})
	}

	for i, pair := range pairs {
		if pairs[i].Encrypted, err = resolvePath(pair.Encrypted); err != nil {
			return nil, err
		}
		if pairs[i].Decrypted, err = resolvePath(pair.Decrypted); err != nil {
			return nil, err
		}
	}

	return pairs, nil
}

// inDirectories reports whether path is beneath any of dirs.
func inDirectories(path string, dirs []string) bool {
	for _, dir := range dirs {
		if strings.HasPrefix(path, dir+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// resolvePath makes path absolute and eliminates symlinks. The path
// itself may not exist yet (decrypted counterparts usually don't); in
// that case the deepest existing ancestor is resolved and the
// remaining components are rejoined unchanged.
func resolvePath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	prefix := abs
	suffix := ""
	for {
		resolved, err := filepath.EvalSymlinks(prefix)
		if err == nil {
			return filepath.Join(resolved, suffix), nil
		}
		if !os.IsNotExist(err) {
			return "", err
		}
		parent := filepath.Dir(prefix)
		if parent == prefix {
			return abs, nil
		}
		suffix = filepath.Join(filepath.Base(prefix), suffix)
		prefix = parent
	}
}
