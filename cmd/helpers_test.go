package cmd

import (
	"errors"
	"testing"

	"github.com/PolarWolf314/fidelius/internal/configs"
	ferrors "github.com/PolarWolf314/fidelius/internal/errors"
)

func TestRecipientListFlag(t *testing.T) {
	var recipients recipientList
	for _, value := range []string{"alice@example.com", "bob@example.com"} {
		if err := recipients.Set(value); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
	}
	if len(recipients) != 2 {
		t.Fatalf("Expected 2 recipients, got %d", len(recipients))
	}
	if recipients.String() != "alice@example.com bob@example.com" {
		t.Errorf("String = %q", recipients.String())
	}
	if recipients.Type() != "ID" {
		t.Errorf("Type = %q", recipients.Type())
	}
}

func TestResolveRecipients(t *testing.T) {
	defer func() { settings = configs.Settings{} }()

	// Flag recipients win over the environment default.
	settings = configs.Settings{Recipients: []string{"env@example.com"}}
	got, err := resolveRecipients(recipientList{"flag@example.com"})
	if err != nil {
		t.Fatalf("resolveRecipients failed: %v", err)
	}
	if len(got) != 1 || got[0] != "flag@example.com" {
		t.Errorf("Expected flag recipient, got %v", got)
	}

	// Environment default applies when no flags were given.
	got, err = resolveRecipients(nil)
	if err != nil {
		t.Fatalf("resolveRecipients failed: %v", err)
	}
	if len(got) != 1 || got[0] != "env@example.com" {
		t.Errorf("Expected env recipient, got %v", got)
	}

	// Neither is a usage error.
	settings = configs.Settings{}
	if _, err := resolveRecipients(nil); !errors.Is(err, ferrors.ErrNoRecipients) {
		t.Errorf("Expected ErrNoRecipients, got: %v", err)
	}
}
