// Package scaffold creates a new project on disk. It powers the root
// command: Provision claims the destination directory, the synthesized
// configuration files are written next, the template tree is copied in and
// dependencies are optionally installed with the selected package manager.
//
// All side effects go through injected capabilities (an afero.Fs for the
// destination, an fs.FS for the template source and a pkgmgr.Runner for the
// install step) so the whole pipeline runs in memory under test.
package scaffold
