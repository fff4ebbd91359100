package secrets

import (
	"bytes"
	"fmt"
	"os/exec"
	"sort"
	"strings"

	ferrors "github.com/PolarWolf314/fidelius/internal/errors"
)

// CheckIgnore verifies that every decrypted path is excluded from
// version control, so plaintext can never be committed by accident.
// All violations are aggregated into a single error so the user gets
// the full remediation list in one pass.
func (k *Keeper) CheckIgnore() error {
	paths := make(map[string]bool, len(k.secrets))
	for _, secret := range k.secrets {
		paths[secret.Decrypted] = true
	}
	if len(paths) == 0 {
		return nil
	}

	excluded, err := checkIgnored(k.Directory, paths)
	if err != nil {
		return err
	}

	var included []string
	for path := range paths {
		if !excluded[path] {
			included = append(included, path)
		}
	}
	if len(included) > 0 {
		sort.Strings(included)
		return fmt.Errorf("%w: %s", ferrors.ErrNotIgnored, strings.Join(included, ", "))
	}
	return nil
}

// checkIgnored queries git for which of the given paths are ignored.
// git check-ignore exits 1 when no path matched, which is a valid
// empty result rather than a failure. Paths go in and come out NUL
// separated so git never C-quotes names with quotes or non-ASCII
// bytes, which would stop them matching the paths we sent.
func checkIgnored(dir string, paths map[string]bool) (map[string]bool, error) {
	sorted := make([]string, 0, len(paths))
	for path := range paths {
		sorted = append(sorted, path)
	}
	sort.Strings(sorted)

	cmd := exec.Command("git", "check-ignore", "--stdin", "-z")
	cmd.Dir = dir
	cmd.Stdin = strings.NewReader(strings.Join(sorted, "\x00"))

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		exit, ok := err.(*exec.ExitError)
		if !ok || exit.ExitCode() != 1 {
			return nil, fmt.Errorf("%w: %v\n%s",
				ferrors.ErrGitFailed, err, strings.TrimSpace(stderr.String()))
		}
	}

	excluded := make(map[string]bool)
	for _, path := range strings.Split(stdout.String(), "\x00") {
		if path != "" {
			excluded[path] = true
		}
	}
	return excluded, nil
}
