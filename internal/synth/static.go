package synth

import _ "embed"

// Static file contents. None of them depend on the project configuration.
var (
	//go:embed templates/gitignore
	Gitignore string

	//go:embed templates/env.example
	EnvExample string

	//go:embed templates/vitest.config.ts.txt
	VitestConfig string

	//go:embed templates/README.md.tmpl
	readmeTemplate string
)
