// Package errors provides typed error values for the Fidelius application.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. This makes
// error handling more robust and refactoring-safe.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Configuration errors: the invocation cannot start (ErrNoRepository, ErrNoRecipients)
//   - Registry errors: discovery and lookup issues (ErrNotManaged, ErrUnknownFormat)
//   - External tool errors: subprocess failures (ErrGPGFailed, ErrGitFailed)
//   - Edit errors: no-op interactive edits (ErrEmptyContent, ErrNoChanges)
//
// # Usage
//
// Return errors from internal packages:
//
//	if len(recipients) == 0 {
//	    return errors.ErrNoRecipients
//	}
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("%w: %s", errors.ErrNotManaged, path)
package errors
