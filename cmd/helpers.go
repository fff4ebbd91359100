package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/pflag"

	ferrors "github.com/PolarWolf314/fidelius/internal/errors"
	"github.com/PolarWolf314/fidelius/internal/secrets"
	"github.com/PolarWolf314/fidelius/internal/ui"
)

// rel renders a path relative to the working directory. Only ever used
// for presentation; computed fresh per call.
func rel(path string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}
	relative, err := filepath.Rel(cwd, path)
	if err != nil {
		return path
	}
	return relative
}

// enc styles a path to an encrypted file.
func enc(secret secrets.Secret) string {
	return ui.Encrypted.Sprint(rel(secret.Encrypted))
}

// dec styles a path to a decrypted file.
func dec(secret secrets.Secret) string {
	return ui.Decrypted.Sprint(rel(secret.Decrypted))
}

// recipientList is a repeatable --recipient flag value.
type recipientList []string

var _ pflag.Value = (*recipientList)(nil)

func (r *recipientList) String() string {
	return strings.Join(*r, " ")
}

func (r *recipientList) Set(value string) error {
	*r = append(*r, value)
	return nil
}

func (r *recipientList) Type() string {
	return "ID"
}

// resolveRecipients returns the recipients for an encrypt-producing
// operation: explicit flags first, then the FIDELIUS_RECIPIENTS
// default. Running with neither is a usage error reported before any
// work starts.
func resolveRecipients(flagged recipientList) ([]string, error) {
	if len(flagged) > 0 {
		return flagged, nil
	}
	if len(settings.Recipients) > 0 {
		return settings.Recipients, nil
	}
	return nil, fmt.Errorf("%w: use --recipient or set FIDELIUS_RECIPIENTS",
		ferrors.ErrNoRecipients)
}

// selectSecrets resolves user-supplied paths against the registry, or
// returns every secret when no paths were given. An unmanaged path
// fails the whole selection.
func selectSecrets(paths []string) ([]secrets.Secret, error) {
	if len(paths) == 0 {
		return keeper.All(), nil
	}
	selected := make([]secrets.Secret, 0, len(paths))
	for _, path := range paths {
		secret, err := keeper.Lookup(path)
		if err != nil {
			return nil, err
		}
		selected = append(selected, secret)
	}
	return selected, nil
}

// startSpinner creates and starts a spinner with the given message when
// not in verbose or debug mode. Returns the spinner and a function that
// should be deferred to clean up.
//
// spinner.FinalMSG values do NOT need trailing newlines; the cleanup
// function calls ui.EnsureNewline() on the final message before
// printing it.
func startSpinner(message string) (*spinner.Spinner, func()) {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	// Ignore color errors - continue without a colored spinner.
	_ = s.Color("cyan")

	if !verbose && !debug {
		s.Start()
		// Ensure log output is discarded unless in verbose mode.
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("%s", message)
	}

	cleanup := func() {
		// Restore log output first.
		if !verbose && !debug {
			log.SetOutput(os.Stdout)
		}

		// Ensure the final message ends with a newline.
		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		// Stop the spinner first to clear the spinner line.
		if !verbose && !debug {
			s.Stop()
		}

		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}
