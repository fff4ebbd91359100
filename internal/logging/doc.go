// Package logger provides verbosity-gated logging for Fidelius commands.
//
// Logging behavior is controlled by two persistent flags:
//
//   - --verbose: shows info messages (and passes gpg's stderr through)
//   - --debug: shows all messages including debug details
//
// Without flags, only warnings and errors are shown. Messages are
// prefixed with a colored semantic tag ([info], [debug], [warn],
// [error]).
//
// Commands create a logger in their PersistentPreRun and pass it to
// internal functions:
//
//	log := logger.Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Decrypting %d secrets", keeper.Len())
package logger
