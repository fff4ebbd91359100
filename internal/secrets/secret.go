package secrets

import (
	"fmt"
	"os"
	"path/filepath"

	ferrors "github.com/PolarWolf314/fidelius/internal/errors"
)

// Secret is one managed (encrypted, decrypted) pair. Both paths are
// absolute and symlink-resolved so that equality and map keying are
// well-defined. A Secret is immutable once constructed; decrypting or
// encrypting mutates the filesystem, never the value.
type Secret struct {
	// Encrypted is the absolute path to the ciphertext file. Always
	// ends in a recognized ciphertext extension.
	Encrypted string

	// Decrypted is the absolute path where plaintext is or would be
	// written.
	Decrypted string

	// paired is true for secrets discovered by a scan. A placeholder
	// built for a not-yet-existing ciphertext file is unpaired.
	paired bool
}

// NewSecret constructs a paired Secret, validating that the encrypted
// path carries a recognized ciphertext extension.
func NewSecret(encrypted, decrypted string) (Secret, error) {
	ext := filepath.Ext(encrypted)
	if ext != ExtArmoured && ext != ExtBinary {
		return Secret{}, fmt.Errorf("%w: don't know how to decrypt %s",
			ferrors.ErrUnknownFormat, filepath.Base(encrypted))
	}
	return Secret{Encrypted: encrypted, Decrypted: decrypted, paired: true}, nil
}

// NewUnpaired builds a placeholder Secret for an encrypted file that
// does not exist yet, deriving the decrypted counterpart from the
// naming convention. Used when creating a brand-new secret.
func NewUnpaired(encrypted string) (Secret, error) {
	ext := filepath.Ext(encrypted)
	if ext != ExtArmoured && ext != ExtBinary {
		return Secret{}, fmt.Errorf("%w: don't know how to encrypt %s",
			ferrors.ErrUnknownFormat, filepath.Base(encrypted))
	}
	return Secret{Encrypted: encrypted, Decrypted: Rename(encrypted)}, nil
}

// Armoured reports whether the ciphertext uses the ASCII-armored
// encoding, which determines whether gpg is invoked with --armour.
func (s Secret) Armoured() bool {
	return filepath.Ext(s.Encrypted) == ExtArmoured
}

// Paired reports whether the secret was discovered by a scan, as
// opposed to being a placeholder for a file that does not exist yet.
func (s Secret) Paired() bool {
	return s.paired
}

// Decrypt writes the secret's plaintext to its decrypted path.
func (s Secret) Decrypt(gpg Gateway) error {
	return gpg.Decrypt(s.Encrypted, s.Decrypted, s.Armoured())
}

// ReEncrypt replaces the ciphertext with a fresh encryption of the
// on-disk plaintext.
func (s Secret) ReEncrypt(gpg Gateway, recipients []string) error {
	return gpg.EncryptFile(s.Encrypted, s.Decrypted, s.Armoured(), recipients)
}

// Contents decrypts the secret to memory without persisting plaintext.
func (s Secret) Contents(gpg Gateway) ([]byte, error) {
	return gpg.Contents(s.Encrypted, s.Armoured())
}

// Plaintext reads the decrypted file from disk.
func (s Secret) Plaintext() ([]byte, error) {
	return os.ReadFile(s.Decrypted)
}
