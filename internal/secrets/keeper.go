package secrets

import (
	"fmt"
	"path/filepath"
	"sort"

	ferrors "github.com/PolarWolf314/fidelius/internal/errors"
)

// Keeper is the registry of every secret discovered in one directory
// tree. It is built once per invocation and read-only afterwards.
type Keeper struct {
	// Directory is the resolved root the secrets were discovered in.
	Directory string

	// GPG is the gateway used by operations on this keeper's secrets.
	GPG Gateway

	secrets     map[string]Secret
	byDecrypted map[string]Secret
}

// NewKeeper scans root and builds the registry. A discovered pair
// whose extension is not a recognized ciphertext format fails the
// whole build; silently dropping secrets could hide data from the
// user, so there is no partial registry.
func NewKeeper(root string, gpg Gateway) (*Keeper, error) {
	directory, err := resolvePath(root)
	if err != nil {
		return nil, err
	}

	pairs, err := Search(directory)
	if err != nil {
		return nil, err
	}

	registry := make(map[string]Secret, len(pairs))
	byDecrypted := make(map[string]Secret, len(pairs))
	for _, pair := range pairs {
		secret, err := NewSecret(pair.Encrypted, pair.Decrypted)
		if err != nil {
			return nil, err
		}
		registry[secret.Encrypted] = secret
		byDecrypted[secret.Decrypted] = secret
	}

	return &Keeper{
		Directory:   directory,
		GPG:         gpg,
		secrets:     registry,
		byDecrypted: byDecrypted,
	}, nil
}

// Len returns the number of managed secrets.
func (k *Keeper) Len() int {
	return len(k.secrets)
}

// Lookup resolves path the same way scan results are resolved and
// returns the matching secret. Every secret is addressable by either
// of its paths. A miss means the path is not managed by this keeper,
// not that the file is absent from disk.
func (k *Keeper) Lookup(path string) (Secret, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Secret{}, err
	}
	if secret, ok := k.secrets[resolved]; ok {
		return secret, nil
	}
	if secret, ok := k.byDecrypted[resolved]; ok {
		return secret, nil
	}
	return Secret{}, fmt.Errorf("%w: %s", ferrors.ErrNotManaged, path)
}

// Get is like Lookup but returns fallback on a miss. Used when an
// operation should synthesize a placeholder for a not-yet-existing
// encrypted file.
func (k *Keeper) Get(path string, fallback Secret) Secret {
	secret, err := k.Lookup(path)
	if err != nil {
		return fallback
	}
	return secret
}

// All returns every secret sorted by encrypted path. Iterating twice
// gives the same order, which keeps listing commands deterministic.
func (k *Keeper) All() []Secret {
	all := make([]Secret, 0, len(k.secrets))
	for _, secret := range k.secrets {
		all = append(all, secret)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].Encrypted < all[j].Encrypted
	})
	return all
}

// Rel renders path relative to the keeper directory for display.
func (k *Keeper) Rel(path string) string {
	rel, err := filepath.Rel(k.Directory, path)
	if err != nil {
		return path
	}
	return rel
}
