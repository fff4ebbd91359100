package configs

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("FIDELIUS_RECIPIENTS", "alice@example.com bob@example.com")
	t.Setenv("EDITOR", "nano")
	t.Setenv("PAGER", "more")

	settings := Load("")
	want := []string{"alice@example.com", "bob@example.com"}
	if !reflect.DeepEqual(settings.Recipients, want) {
		t.Errorf("Recipients = %v, want %v", settings.Recipients, want)
	}
	if settings.Editor != "nano" {
		t.Errorf("Editor = %q", settings.Editor)
	}
	if settings.Pager != "more" {
		t.Errorf("Pager = %q", settings.Pager)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("FIDELIUS_RECIPIENTS", "")
	t.Setenv("EDITOR", "")
	t.Setenv("PAGER", "")
	os.Unsetenv("EDITOR")
	os.Unsetenv("PAGER")

	settings := Load("")
	if len(settings.Recipients) != 0 {
		t.Errorf("Expected no recipients, got %v", settings.Recipients)
	}
	if settings.Editor != "vi" {
		t.Errorf("Editor = %q, want vi", settings.Editor)
	}
	if settings.Pager != "less" {
		t.Errorf("Pager = %q, want less", settings.Pager)
	}
}

func TestLoadEnvFile(t *testing.T) {
	t.Setenv("FIDELIUS_RECIPIENTS", "")
	os.Unsetenv("FIDELIUS_RECIPIENTS")

	root := t.TempDir()
	envFile := filepath.Join(root, EnvFile)
	if err := os.WriteFile(envFile, []byte("FIDELIUS_RECIPIENTS=carol@example.com\n"), 0o644); err != nil {
		t.Fatalf("Failed to write env file: %v", err)
	}

	settings := Load(root)
	want := []string{"carol@example.com"}
	if !reflect.DeepEqual(settings.Recipients, want) {
		t.Errorf("Recipients = %v, want %v", settings.Recipients, want)
	}
}

func TestLoadEnvFileDoesNotOverrideEnvironment(t *testing.T) {
	t.Setenv("FIDELIUS_RECIPIENTS", "alice@example.com")

	root := t.TempDir()
	envFile := filepath.Join(root, EnvFile)
	if err := os.WriteFile(envFile, []byte("FIDELIUS_RECIPIENTS=carol@example.com\n"), 0o644); err != nil {
		t.Fatalf("Failed to write env file: %v", err)
	}

	settings := Load(root)
	want := []string{"alice@example.com"}
	if !reflect.DeepEqual(settings.Recipients, want) {
		t.Errorf("Recipients = %v, want %v", settings.Recipients, want)
	}
}
