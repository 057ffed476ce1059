// Package config manages user-level settings stored at
// ~/.context-cli/config.yaml. The settings seed the interactive prompts
// (default package manager and install answer), point the scaffolder at an
// on-disk template tree and set the log level. Every key can be overridden
// with a CONTEXT_CLI_-prefixed environment variable.
package config
