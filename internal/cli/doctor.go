package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/context-template/context-cli/internal/branding"
	"github.com/context-template/context-cli/internal/config"
	"github.com/context-template/context-cli/internal/pkgmgr"
	"github.com/context-template/context-cli/internal/project"
	"github.com/context-template/context-cli/internal/skeleton"
	"github.com/context-template/context-cli/internal/synth"
)

var newProber = func() *pkgmgr.Prober { return &pkgmgr.Prober{} }

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that generated projects can be installed and run",
	Long: `Run diagnostic checks on the local toolchain: Node.js and the supported
package managers on PATH, the Node.js version against the engines range of
generated projects, and the ` + branding.CLIName() + ` settings.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		out := cmd.OutOrStdout()

		tools := runToolchainCheck(cmd, out)
		runEngineCheck(out, tools["node"])
		runSettingsCheck(out)
		return nil
	},
}

func runToolchainCheck(cmd *cobra.Command, w io.Writer) map[string]pkgmgr.Tool {
	fmt.Fprintln(w, "Toolchain check:")
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	prober := newProber()
	tools := make(map[string]pkgmgr.Tool, len(pkgmgr.Tools))
	managers := 0
	for _, name := range pkgmgr.Tools {
		tool := prober.Probe(ctx, name)
		tools[name] = tool
		switch {
		case !tool.Found():
			fmt.Fprintf(w, "  [MISS] %s not found\n", name)
		case tool.Version == nil:
			fmt.Fprintf(w, "  [WARN] %s found at %s, version unknown: %v\n", name, tool.Path, tool.Err)
		default:
			fmt.Fprintf(w, "  [ OK ] %s %s found at %s\n", name, tool.Version, tool.Path)
		}
		if tool.Found() && project.PackageManager(name).Valid() {
			managers++
		}
	}
	if managers == 0 {
		fmt.Fprintln(w, "  [WARN] no supported package manager found; install bun, pnpm or npm")
	}
	return tools
}

func runEngineCheck(w io.Writer, node pkgmgr.Tool) {
	fmt.Fprintln(w, "Engine check:")
	if node.Version == nil {
		fmt.Fprintf(w, "  [WARN] cannot check node against %s\n", synth.NodeEngine)
		return
	}
	ok, err := pkgmgr.Satisfies(node.Version, synth.NodeEngine)
	switch {
	case err != nil:
		fmt.Fprintf(w, "  [WARN] %v\n", err)
	case ok:
		fmt.Fprintf(w, "  [ OK ] node %s satisfies %s\n", node.Version, synth.NodeEngine)
	default:
		fmt.Fprintf(w, "  [WARN] node %s does not satisfy %s\n", node.Version, synth.NodeEngine)
	}
}

func runSettingsCheck(w io.Writer) {
	fmt.Fprintln(w, "Settings check:")
	path := config.FilePath()
	if _, err := os.Stat(path); err != nil {
		fmt.Fprintf(w, "  [INFO] no config file at %s, defaults in use\n", path)
	} else {
		fmt.Fprintf(w, "  [ OK ] config file %s\n", path)
	}
	fmt.Fprintf(w, "  [INFO] default package manager: %s\n", config.DefaultPackageManager())

	dir := config.TemplateDir()
	if dir == "" {
		fmt.Fprintln(w, "  [ OK ] using built-in template")
		return
	}
	if _, err := skeleton.Open(dir); err != nil {
		fmt.Fprintf(w, "  [FAIL] template directory %s: %v\n", dir, err)
		return
	}
	fmt.Fprintf(w, "  [ OK ] template directory %s\n", dir)
}
