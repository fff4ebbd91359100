package secrets

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// writeTestFile is a helper to write test files with 0644 permissions.
// #nosec G306 -- Test files are temporary and don't contain sensitive data.
func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("Failed to create test directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil { // #nosec G306
		t.Fatalf("Failed to create test file: %v", err)
	}
}

// newTestTree creates a temp directory with symlinks already resolved,
// so scan results can be compared against joined paths directly.
func newTestTree(t *testing.T) string {
	t.Helper()
	tmpDir, err := os.MkdirTemp("", "fidelius-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	resolved, err := filepath.EvalSymlinks(tmpDir)
	if err != nil {
		t.Fatalf("Failed to resolve temp dir: %v", err)
	}
	return resolved
}

func TestSearchDirectoryPrecedence(t *testing.T) {
	root := newTestTree(t)
	writeTestFile(t, filepath.Join(root, "secrets.encrypted", "a.json.asc"), "x")
	writeTestFile(t, filepath.Join(root, "b.encrypted.json.asc"), "x")

	pairs, err := Search(root)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	want := []Pair{
		{
			Encrypted: filepath.Join(root, "secrets.encrypted", "a.json.asc"),
			Decrypted: filepath.Join(root, "secrets", "a.decrypted.json"),
		},
		{
			Encrypted: filepath.Join(root, "b.encrypted.json.asc"),
			Decrypted: filepath.Join(root, "b.decrypted.json"),
		},
	}
	if !reflect.DeepEqual(pairs, want) {
		t.Errorf("Search = %v, want %v", pairs, want)
	}
}

func TestSearchDeepRecursion(t *testing.T) {
	root := newTestTree(t)
	writeTestFile(t, filepath.Join(root, "vault.encrypted", "sub", "deep", "creds.json.gpg"), "x")

	pairs, err := Search(root)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(pairs) != 1 {
		t.Fatalf("Expected 1 pair, got %d", len(pairs))
	}
	want := filepath.Join(root, "vault", "sub", "deep", "creds.decrypted.json")
	if pairs[0].Decrypted != want {
		t.Errorf("Decrypted = %q, want %q", pairs[0].Decrypted, want)
	}
}

func TestSearchMarkedFileInsideMarkedDirectory(t *testing.T) {
	root := newTestTree(t)
	// The directory rule is authoritative; the file must not show up a
	// second time in the standalone results.
	writeTestFile(t, filepath.Join(root, "dir.encrypted", "x.encrypted.json.asc"), "x")

	pairs, err := Search(root)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(pairs) != 1 {
		t.Fatalf("Expected 1 pair, got %d: %v", len(pairs), pairs)
	}
	want := filepath.Join(root, "dir", "x.decrypted.json")
	if pairs[0].Decrypted != want {
		t.Errorf("Decrypted = %q, want %q", pairs[0].Decrypted, want)
	}
}

func TestSearchEmptyMarkedDirectory(t *testing.T) {
	root := newTestTree(t)
	if err := os.MkdirAll(filepath.Join(root, "empty.encrypted"), 0o755); err != nil {
		t.Fatalf("Failed to create test directory: %v", err)
	}

	pairs, err := Search(root)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(pairs) != 0 {
		t.Errorf("Expected no pairs, got %v", pairs)
	}
}

func TestSearchIsPermissiveAboutExtensions(t *testing.T) {
	root := newTestTree(t)
	// Extension validation happens at Secret construction, not scan
	// time; the scan still produces a pair.
	writeTestFile(t, filepath.Join(root, "x.encrypted.txt"), "x")

	pairs, err := Search(root)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(pairs) != 1 {
		t.Fatalf("Expected 1 pair, got %d", len(pairs))
	}
}

func TestSearchDeterministicOrdering(t *testing.T) {
	root := newTestTree(t)
	writeTestFile(t, filepath.Join(root, "z.encrypted.json.asc"), "x")
	writeTestFile(t, filepath.Join(root, "a.encrypted.json.gpg"), "x")
	writeTestFile(t, filepath.Join(root, "beta.encrypted", "one.json.asc"), "x")
	writeTestFile(t, filepath.Join(root, "alpha.encrypted", "two.json.asc"), "x")

	first, err := Search(root)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	second, err := Search(root)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Repeated scans disagree: %v vs %v", first, second)
	}

	// Directory-derived pairs come first, in sorted directory order,
	// then standalone files sorted.
	wantEncrypted := []string{
		filepath.Join(root, "alpha.encrypted", "two.json.asc"),
		filepath.Join(root, "beta.encrypted", "one.json.asc"),
		filepath.Join(root, "a.encrypted.json.gpg"),
		filepath.Join(root, "z.encrypted.json.asc"),
	}
	if len(first) != len(wantEncrypted) {
		t.Fatalf("Expected %d pairs, got %d", len(wantEncrypted), len(first))
	}
	for i, want := range wantEncrypted {
		if first[i].Encrypted != want {
			t.Errorf("pair %d encrypted = %q, want %q", i, first[i].Encrypted, want)
		}
	}
}
