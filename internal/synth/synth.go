package synth

import (
	"bytes"
	"encoding/json"

	"github.com/context-template/context-cli/internal/pkgmgr"
	"github.com/context-template/context-cli/internal/project"
	"github.com/context-template/context-cli/internal/substitute"
)

// Generated file names, relative to the project root.
const (
	PackageJSONFile = "package.json"
	TSConfigFile    = "tsconfig.json"
	GitignoreFile   = ".gitignore"
	EnvExampleFile  = ".env.example"
	VitestFile      = "vitest.config.ts"
	ReadmeFile      = "README.md"
)

// README template variables.
const (
	VarProjectName    = "PROJECT_NAME"
	VarPackageManager = "PACKAGE_MANAGER"
	VarRunCommand     = "RUN_COMMAND"
	VarInstallCommand = "INSTALL_COMMAND"
)

// File is a generated file: a slash-separated path relative to the project
// root and its full content.
type File struct {
	Path    string
	Content []byte
}

// Files returns the generated file set for cfg in write order.
func Files(cfg project.Config) []File {
	return []File{
		{Path: PackageJSONFile, Content: encodeJSON(PackageJSON(cfg))},
		{Path: TSConfigFile, Content: encodeJSON(TSConfig())},
		{Path: GitignoreFile, Content: []byte(Gitignore)},
		{Path: EnvExampleFile, Content: []byte(EnvExample)},
		{Path: VitestFile, Content: []byte(VitestConfig)},
		{Path: ReadmeFile, Content: []byte(Readme(cfg))},
	}
}

// ReadmeVars returns the four variables bound when rendering the README.
func ReadmeVars(cfg project.Config) map[string]string {
	cmds := pkgmgr.Lookup(cfg.PackageManager)
	return map[string]string{
		VarProjectName:    cfg.ProjectName,
		VarPackageManager: string(cfg.PackageManager),
		VarRunCommand:     cmds.Run,
		VarInstallCommand: cmds.Install,
	}
}

// Readme renders the README template for cfg.
func Readme(cfg project.Config) string {
	return substitute.Replace(readmeTemplate, ReadmeVars(cfg))
}

// encodeJSON renders v with two-space indentation and a trailing newline.
// HTML escaping is off so version ranges such as ">=18.0.0" stay readable.
// It is only called with the fixed manifest types in this package, which
// always encode.
func encodeJSON(v interface{}) []byte {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		panic("synth: encoding " + err.Error())
	}
	return buf.Bytes()
}
