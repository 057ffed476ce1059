package synth

import "github.com/context-template/context-cli/internal/project"

// NodeEngine is the Node.js version range generated projects declare.
const NodeEngine = ">=18.0.0"

// Manifest is the generated package.json. Field order is the output order.
type Manifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Type            string            `json:"type"`
	Description     string            `json:"description"`
	Main            string            `json:"main"`
	Scripts         map[string]string `json:"scripts"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
	Engines         map[string]string `json:"engines"`
	Keywords        []string          `json:"keywords"`
}

// PackageJSON builds the manifest for cfg. Only the name varies per project.
func PackageJSON(cfg project.Config) Manifest {
	return Manifest{
		Name:        cfg.ProjectName,
		Version:     "0.1.0",
		Type:        "module",
		Description: "LLM application built with context-template-cli",
		Main:        "dist/index.js",
		Scripts: map[string]string{
			"dev":            "tsx watch src/examples/simple-chat.ts",
			"dev:tool":       "tsx watch src/examples/tool-call.ts",
			"dev:multi-chat": "tsx watch src/examples/multi-chat.ts",
			"build":          "tsc",
			"type-check":     "tsc --noEmit",
			"test":           "vitest run",
			"test:watch":     "vitest",
			"test:ui":        "vitest --ui",
			"eval":           "tsx src/evaluation/example.ts",
			"clean":          "rm -rf dist",
		},
		Dependencies: map[string]string{
			"openai": "^4.70.4",
			"dotenv": "^16.4.7",
		},
		DevDependencies: map[string]string{
			"@types/node": "^22.10.1",
			"tsx":         "^4.19.2",
			"typescript":  "^5.7.2",
			"vitest":      "^2.1.8",
			"@vitest/ui":  "^2.1.8",
		},
		Engines: map[string]string{
			"node": NodeEngine,
		},
		Keywords: []string{"llm", "ai", "deepseek", "context", "tool-calling", "agent"},
	}
}

// CompilerOptions mirrors the tsconfig.json compilerOptions block.
type CompilerOptions struct {
	Target                       string              `json:"target"`
	Module                       string              `json:"module"`
	ModuleResolution             string              `json:"moduleResolution"`
	OutDir                       string              `json:"outDir"`
	RootDir                      string              `json:"rootDir"`
	Strict                       bool                `json:"strict"`
	StrictNullChecks             bool                `json:"strictNullChecks"`
	StrictFunctionTypes          bool                `json:"strictFunctionTypes"`
	NoUnusedLocals               bool                `json:"noUnusedLocals"`
	NoUnusedParameters           bool                `json:"noUnusedParameters"`
	NoImplicitReturns            bool                `json:"noImplicitReturns"`
	ESModuleInterop              bool                `json:"esModuleInterop"`
	AllowSyntheticDefaultImports bool                `json:"allowSyntheticDefaultImports"`
	SkipLibCheck                 bool                `json:"skipLibCheck"`
	ResolveJSONModule            bool                `json:"resolveJsonModule"`
	ExperimentalDecorators       bool                `json:"experimentalDecorators"`
	EmitDecoratorMetadata        bool                `json:"emitDecoratorMetadata"`
	BaseURL                      string              `json:"baseUrl"`
	Paths                        map[string][]string `json:"paths"`
}

// CompilerConfig is the generated tsconfig.json.
type CompilerConfig struct {
	CompilerOptions CompilerOptions `json:"compilerOptions"`
	Include         []string        `json:"include"`
	Exclude         []string        `json:"exclude"`
}

// TSConfig returns the compiler configuration. It is the same for every
// project.
func TSConfig() CompilerConfig {
	return CompilerConfig{
		CompilerOptions: CompilerOptions{
			Target:                       "ES2022",
			Module:                       "ES2022",
			ModuleResolution:             "node",
			OutDir:                       "./dist",
			RootDir:                      "./src",
			Strict:                       true,
			StrictNullChecks:             true,
			StrictFunctionTypes:          true,
			NoUnusedLocals:               true,
			NoUnusedParameters:           true,
			NoImplicitReturns:            true,
			ESModuleInterop:              true,
			AllowSyntheticDefaultImports: true,
			SkipLibCheck:                 true,
			ResolveJSONModule:            true,
			ExperimentalDecorators:       true,
			EmitDecoratorMetadata:        true,
			BaseURL:                      ".",
			Paths: map[string][]string{
				"@/*": {"./src/*"},
			},
		},
		Include: []string{"src/**/*"},
		Exclude: []string{"node_modules", "dist", "**/*.test.ts"},
	}
}
