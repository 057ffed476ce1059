// Package project defines the configuration value threaded through a
// scaffold run: the project name, the package manager, and whether to install
// dependencies. It validates names before they are used as path segments and
// decodes non-interactive answers files, checking them against an embedded
// JSON Schema.
package project
