package secrets

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	ferrors "github.com/PolarWolf314/fidelius/internal/errors"
)

// Gateway is the boundary to the external encryption tool. The
// production implementation shells out to gpg; tests substitute a fake
// that records calls and returns canned bytes.
type Gateway interface {
	// Decrypt reads ciphertext from encrypted and writes plaintext to
	// decrypted, creating the parent directory if it is missing.
	Decrypt(encrypted, decrypted string, armoured bool) error

	// Contents decrypts to memory without persisting plaintext.
	Contents(encrypted string, armoured bool) ([]byte, error)

	// EncryptText encrypts text for recipients, writing to output.
	EncryptText(output string, text []byte, armoured bool, recipients []string) error

	// EncryptFile encrypts an existing plaintext file for recipients,
	// writing to output.
	EncryptFile(output, plaintext string, armoured bool, recipients []string) error
}

// GPG invokes the gpg command. Every call is a blocking subprocess
// invocation; non-zero exits are propagated with gpg's stderr attached
// and are never retried.
type GPG struct {
	// Verbose passes gpg's stderr through to the user instead of
	// capturing it.
	Verbose bool

	// Parents controls whether Decrypt creates missing parent
	// directories for the plaintext file. When false, a missing parent
	// is an error.
	Parents bool
}

// NewGPG returns a gateway with parent-directory creation enabled.
func NewGPG(verbose bool) GPG {
	return GPG{Verbose: verbose, Parents: true}
}

func (g GPG) Decrypt(encrypted, decrypted string, armoured bool) error {
	parent := filepath.Dir(decrypted)
	if _, err := os.Stat(parent); os.IsNotExist(err) {
		if !g.Parents {
			return fmt.Errorf("directory %s does not exist", parent)
		}
		if err := os.MkdirAll(parent, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", parent, err)
		}
	}

	_, err := g.run(gpgArgs(armoured, "--output", decrypted, "--decrypt", encrypted), nil)
	return err
}

func (g GPG) Contents(encrypted string, armoured bool) ([]byte, error) {
	return g.run(gpgArgs(armoured, "--decrypt", encrypted), nil)
}

func (g GPG) EncryptText(output string, text []byte, armoured bool, recipients []string) error {
	args := recipientArgs(recipients)
	args = append(args, "--output", output, "--encrypt")
	_, err := g.run(gpgArgs(armoured, args...), text)
	return err
}

func (g GPG) EncryptFile(output, plaintext string, armoured bool, recipients []string) error {
	args := recipientArgs(recipients)
	args = append(args, "--output", output, "--encrypt", plaintext)
	_, err := g.run(gpgArgs(armoured, args...), nil)
	return err
}

// run executes gpg with the given arguments, feeding input (if any) on
// stdin and returning captured stdout.
func (g GPG) run(args []string, input []byte) ([]byte, error) {
	cmd := exec.Command("gpg", args...)
	if input != nil {
		cmd.Stdin = bytes.NewReader(input)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	if g.Verbose {
		cmd.Stderr = os.Stderr
	} else {
		cmd.Stderr = &stderr
	}

	if err := cmd.Run(); err != nil {
		diagnostic := strings.TrimSpace(stderr.String())
		if diagnostic != "" {
			return nil, fmt.Errorf("%w: %v\n%s", ferrors.ErrGPGFailed, err, diagnostic)
		}
		return nil, fmt.Errorf("%w: %v", ferrors.ErrGPGFailed, err)
	}
	return stdout.Bytes(), nil
}

// gpgArgs builds a full gpg argument list, prepending --yes and the
// armour flag when requested.
func gpgArgs(armoured bool, args ...string) []string {
	command := []string{"--yes"}
	if armoured {
		command = append(command, "--armour")
	}
	return append(command, args...)
}

func recipientArgs(recipients []string) []string {
	var args []string
	for _, recipient := range recipients {
		args = append(args, "--recipient", recipient)
	}
	return args
}
