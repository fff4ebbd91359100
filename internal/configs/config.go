package configs

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/PolarWolf314/fidelius/internal/utils"
)

// EnvFile is the optional per-repository configuration file, loaded
// from the repository root. Values never override variables already
// present in the process environment.
const EnvFile = ".fidelius.env"

// Settings holds the environment-derived configuration for one
// invocation. Command-line flags take precedence over all of it.
type Settings struct {
	// Recipients is the default recipient list for encrypt-producing
	// operations, from FIDELIUS_RECIPIENTS (whitespace-separated).
	Recipients []string

	// Editor is the command used for interactive edits, from EDITOR.
	Editor string

	// Pager is the command used by the view command, from PAGER.
	Pager string
}

// Load reads settings from the process environment, after loading the
// optional env file from the repository root.
func Load(root string) Settings {
	if root != "" {
		// Missing file is fine; godotenv only errors on a file it
		// could not parse or read.
		_ = godotenv.Load(filepath.Join(root, EnvFile))
	}

	settings := Settings{
		Recipients: utils.SplitRecipients(os.Getenv("FIDELIUS_RECIPIENTS")),
		Editor:     os.Getenv("EDITOR"),
		Pager:      os.Getenv("PAGER"),
	}
	if settings.Editor == "" {
		settings.Editor = "vi"
	}
	if settings.Pager == "" {
		settings.Pager = "less"
	}
	return settings
}
