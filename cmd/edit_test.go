package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/PolarWolf314/fidelius/internal/configs"
	ferrors "github.com/PolarWolf314/fidelius/internal/errors"
	"github.com/PolarWolf314/fidelius/internal/secrets"
)

// recordingGateway returns canned contents and records whether any
// encrypt call was made.
type recordingGateway struct {
	plaintext []byte
	encrypted int
}

func (g *recordingGateway) Decrypt(encrypted, decrypted string, armoured bool) error {
	return nil
}

func (g *recordingGateway) Contents(encrypted string, armoured bool) ([]byte, error) {
	return g.plaintext, nil
}

func (g *recordingGateway) EncryptText(output string, text []byte, armoured bool, recipients []string) error {
	g.encrypted++
	return nil
}

func (g *recordingGateway) EncryptFile(output, plaintext string, armoured bool, recipients []string) error {
	g.encrypted++
	return nil
}

// newEditFixture builds a keeper over a single secret with a no-op
// editor, so the edited text always equals the gateway's contents.
func newEditFixture(t *testing.T, gateway secrets.Gateway) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell environment")
	}

	tmpDir, err := os.MkdirTemp("", "fidelius-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	root, err := filepath.EvalSymlinks(tmpDir)
	if err != nil {
		t.Fatalf("Failed to resolve temp dir: %v", err)
	}

	encrypted := filepath.Join(root, "api.encrypted.json.asc")
	writeFile(t, encrypted, "ciphertext")

	keeper, err = secrets.NewKeeper(root, gateway)
	if err != nil {
		t.Fatalf("NewKeeper failed: %v", err)
	}
	settings = configs.Settings{
		Recipients: []string{"alice@example.com"},
		Editor:     "true",
	}
	editRecipients = nil
	t.Cleanup(func() {
		keeper = nil
		settings = configs.Settings{}
	})

	return encrypted
}

func TestEditRejectsUnchangedContent(t *testing.T) {
	gateway := &recordingGateway{plaintext: []byte("API_KEY=hunter2\n")}
	encrypted := newEditFixture(t, gateway)

	err := editCmd.RunE(editCmd, []string{encrypted})
	if !errors.Is(err, ferrors.ErrNoChanges) {
		t.Fatalf("Expected ErrNoChanges, got: %v", err)
	}
	if gateway.encrypted != 0 {
		t.Errorf("Expected no encrypt calls for a no-op edit, got %d", gateway.encrypted)
	}
}

func TestEditRejectsEmptyContent(t *testing.T) {
	gateway := &recordingGateway{plaintext: nil}
	encrypted := newEditFixture(t, gateway)

	err := editCmd.RunE(editCmd, []string{encrypted})
	if !errors.Is(err, ferrors.ErrEmptyContent) {
		t.Fatalf("Expected ErrEmptyContent, got: %v", err)
	}
	if gateway.encrypted != 0 {
		t.Errorf("Expected no encrypt calls for an empty edit, got %d", gateway.encrypted)
	}
}
