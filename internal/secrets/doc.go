// Package secrets implements the path-pairing and secret-registry
// engine at the heart of Fidelius.
//
// Encrypted sources are identified by a naming convention: any file or
// directory whose name contains ".encrypted" is managed. A scan of a
// directory tree pairs each encrypted file with the decrypted path it
// maps to:
//
//	file.encrypted.ext.asc  -> file.decrypted.ext
//	dir.encrypted/file.ext.asc -> dir/file.decrypted.ext
//
// The Keeper owns the resulting registry for one invocation: a map
// from resolved encrypted path to Secret, with deterministic sorted
// iteration. Files inside a marked directory are paired via the
// directory rule and never show up a second time as standalone files.
//
// All cryptography happens behind the Gateway interface, implemented
// as blocking gpg subprocess calls. The registry itself never touches
// file contents.
package secrets
