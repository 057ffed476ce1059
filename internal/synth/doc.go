// Package synth produces the configuration files of a new project in memory:
// package.json, tsconfig.json, .gitignore, .env.example, vitest.config.ts and
// README.md. Every function here is pure; writing the files is the caller's
// job.
package synth
