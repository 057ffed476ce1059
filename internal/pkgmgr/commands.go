package pkgmgr

import (
	"github.com/context-template/context-cli/internal/project"
)

// Commands holds the shell commands a package manager uses.
type Commands struct {
	Install string // e.g. "npm install"
	Run     string // script runner prefix, e.g. "npm run"
}

var commandTable = map[project.PackageManager]Commands{
	project.Bun:  {Install: "bun install", Run: "bun run"},
	project.PNPM: {Install: "pnpm install", Run: "pnpm"},
	project.NPM:  {Install: "npm install", Run: "npm run"},
}

// Lookup returns the commands for pm. Unknown values fall back to npm.
func Lookup(pm project.PackageManager) Commands {
	if c, ok := commandTable[pm]; ok {
		return c
	}
	return commandTable[project.NPM]
}

// InstallCommand returns the dependency install command for pm.
func InstallCommand(pm project.PackageManager) string {
	return Lookup(pm).Install
}

// RunCommand returns the script runner prefix for pm.
func RunCommand(pm project.PackageManager) string {
	return Lookup(pm).Run
}
