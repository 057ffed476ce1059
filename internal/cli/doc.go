// Package cli defines the Cobra command tree for the context-cli binary.
// Running the root command with no arguments collects a project
// configuration and scaffolds the project; the version, doctor and config
// subcommands each live in their own file. Commands only parse flags, pick
// collaborators and format output; the work happens in internal packages.
package cli
