package secrets

import (
	"path/filepath"
	"strings"
)

// Markers used by the naming convention. A path component containing
// EncryptedMarker identifies an encrypted source; DecryptedMarker is
// inserted into the derived plaintext filename.
const (
	EncryptedMarker = ".encrypted"
	DecryptedMarker = ".decrypted"
)

// Recognized ciphertext extensions.
const (
	ExtArmoured = ".asc"
	ExtBinary   = ".gpg"
)

// IsMarked reports whether the final component of path contains the
// encrypted marker.
func IsMarked(path string) bool {
	return strings.Contains(filepath.Base(path), EncryptedMarker)
}

// RenameDirectory maps an encrypted directory name to its decrypted
// counterpart by removing the marker from the final component.
// "secrets.encrypted" becomes "secrets".
func RenameDirectory(path string) string {
	base := strings.ReplaceAll(filepath.Base(path), EncryptedMarker, "")
	return filepath.Join(filepath.Dir(path), base)
}

// Rename maps an encrypted file name to its decrypted counterpart:
// the marker is replaced with the decrypted marker, the trailing
// ciphertext extension is stripped, and if no ".decrypted" segment
// remains it is inserted before the final extension.
//
//	example.encrypted.json.asc -> example.decrypted.json
//	example.json.asc           -> example.decrypted.json
//	example.asc                -> example.decrypted
//
// Rename is only defined for encrypted-shaped inputs; it is never
// applied to its own output.
func Rename(path string) string {
	base := strings.ReplaceAll(filepath.Base(path), EncryptedMarker, DecryptedMarker)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	if !hasSegment(base, DecryptedMarker) {
		ext := filepath.Ext(base)
		base = base[:len(base)-len(ext)] + DecryptedMarker + ext
	}

	return filepath.Join(filepath.Dir(path), base)
}

// Transpose re-roots path from fromDir to toDir, preserving the
// relative sub-path. path must be inside fromDir.
func Transpose(path, fromDir, toDir string) (string, error) {
	rel, err := filepath.Rel(fromDir, path)
	if err != nil {
		return "", err
	}
	return filepath.Join(toDir, rel), nil
}

// hasSegment reports whether marker appears as one of the dotted
// segments of name (e.g. ".decrypted" in "file.decrypted.json").
func hasSegment(name, marker string) bool {
	for _, segment := range strings.Split(name, ".")[1:] {
		if "."+segment == marker {
			return true
		}
	}
	return false
}
