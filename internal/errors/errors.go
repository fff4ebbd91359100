package errors

import "errors"

// Configuration errors indicate the invocation cannot start.
var (
	// ErrNoRepository indicates no git working tree was found and no
	// root directory was given explicitly.
	ErrNoRepository = errors.New("not inside a git repository")

	// ErrNoRecipients indicates an encrypt-producing operation was
	// invoked without any recipient identifiers.
	ErrNoRecipients = errors.New("no recipients supplied")
)

// Registry errors indicate issues with secret discovery or lookup.
var (
	// ErrNotManaged indicates a path does not resolve to any secret in
	// the registry. Distinct from "file does not exist".
	ErrNotManaged = errors.New("no secret with that path")

	// ErrUnknownFormat indicates a candidate file's extension is not a
	// recognized ciphertext format.
	ErrUnknownFormat = errors.New("unrecognized encryption format")

	// ErrNotIgnored indicates decrypted paths are not excluded from
	// version control.
	ErrNotIgnored = errors.New("decrypted file(s) not excluded by .gitignore")
)

// External tool errors indicate subprocess failures.
var (
	// ErrGPGFailed indicates the gpg tool exited non-zero or could not
	// be started.
	ErrGPGFailed = errors.New("gpg failed")

	// ErrGitFailed indicates the git tool exited non-zero or could not
	// be started.
	ErrGitFailed = errors.New("git failed")
)

// Edit errors indicate a no-op result from an interactive edit.
var (
	// ErrEmptyContent indicates the edited text was empty.
	ErrEmptyContent = errors.New("file is empty")

	// ErrNoChanges indicates the edited text matched the previous
	// contents byte for byte.
	ErrNoChanges = errors.New("no changes were made to the file")
)
