// Package pkgmgr maps a package manager to its install and run commands,
// runs the install command in a generated project, and probes which
// package managers are available on PATH for the doctor command.
package pkgmgr
