package secrets

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Edit launches an interactive editor on a temporary file seeded with
// text and returns the saved contents. extension is carried onto the
// temporary file name so the editor picks up syntax highlighting for
// the plaintext format.
func Edit(editor string, text []byte, extension string) ([]byte, error) {
	tmp, err := os.CreateTemp("", "fidelius-*"+extension)
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary file: %w", err)
	}
	path := tmp.Name()
	defer os.Remove(path)

	if _, err := tmp.Write(text); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("failed to write temporary file: %w", err)
	}

	// Editors like "code --wait" arrive as a single string.
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		parts = []string{"vi"}
	}
	args := append(parts[1:], path)

	cmd := exec.Command(parts[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("editor %s failed: %w", parts[0], err)
	}

	edited, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read edited file: %w", err)
	}
	return edited, nil
}

// PlainExtension returns the extension the plaintext of a secret
// would carry, for use as an editor hint.
func PlainExtension(s Secret) string {
	return filepath.Ext(s.Decrypted)
}
