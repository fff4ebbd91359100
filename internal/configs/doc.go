// Package configs resolves the environment-derived configuration
// surface: default recipients, editor, and pager.
//
// Configuration comes from three layers, strongest first:
//
//  1. Command-line flags (handled by the cmd package)
//  2. Process environment (FIDELIUS_RECIPIENTS, EDITOR, PAGER)
//  3. An optional .fidelius.env file at the repository root
//
// There is no persisted project state; settings are resolved fresh on
// every invocation.
package configs
