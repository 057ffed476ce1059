package substitute

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReplace(t *testing.T) {
	tests := []struct {
		name     string
		template string
		vars     map[string]string
		want     string
	}{
		{
			name:     "single placeholder",
			template: "# {{PROJECT_NAME}}",
			vars:     map[string]string{"PROJECT_NAME": "my-app"},
			want:     "# my-app",
		},
		{
			name:     "all occurrences replaced",
			template: "{{RUN}} dev\n{{RUN}} build\n{{RUN}} test",
			vars:     map[string]string{"RUN": "npm run"},
			want:     "npm run dev\nnpm run build\nnpm run test",
		},
		{
			name:     "unknown placeholder passes through",
			template: "{{KNOWN}} and {{UNKNOWN}}",
			vars:     map[string]string{"KNOWN": "x"},
			want:     "x and {{UNKNOWN}}",
		},
		{
			name:     "case sensitive",
			template: "{{name}} {{NAME}}",
			vars:     map[string]string{"NAME": "v"},
			want:     "{{name}} v",
		},
		{
			name:     "keys are not trimmed",
			template: "{{ NAME }} {{NAME}}",
			vars:     map[string]string{"NAME": "v"},
			want:     "{{ NAME }} v",
		},
		{
			name:     "empty mapping",
			template: "{{A}}",
			vars:     map[string]string{},
			want:     "{{A}}",
		},
		{
			name:     "nil mapping",
			template: "{{A}}",
			vars:     nil,
			want:     "{{A}}",
		},
		{
			name:     "empty template",
			template: "",
			vars:     map[string]string{"A": "b"},
			want:     "",
		},
		{
			name:     "adjacent placeholders",
			template: "{{A}}{{B}}{{A}}",
			vars:     map[string]string{"A": "1", "B": "2"},
			want:     "121",
		},
		{
			name:     "extra braces around placeholder",
			template: "{{{{A}}}}",
			vars:     map[string]string{"A": "x"},
			want:     "{{x}}",
		},
		{
			name:     "values are not re-expanded",
			template: "{{A}}",
			vars:     map[string]string{"A": "{{B}}", "B": "nope"},
			want:     "{{B}}",
		},
		{
			name:     "empty value",
			template: "[{{A}}]",
			vars:     map[string]string{"A": ""},
			want:     "[]",
		},
		{
			name:     "unterminated placeholder",
			template: "{{A",
			vars:     map[string]string{"A": "x"},
			want:     "{{A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Replace(tt.template, tt.vars))
		})
	}
}

func TestReplaceDeterministic(t *testing.T) {
	vars := map[string]string{"A": "1", "B": "2", "C": "3", "D": "4"}
	template := "{{D}}{{C}}{{B}}{{A}}{{E}}"

	first := Replace(template, vars)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, Replace(template, vars))
	}
	assert.Equal(t, "4321{{E}}", first)
}

func TestPlaceholder(t *testing.T) {
	assert.Equal(t, "{{RUN_COMMAND}}", Placeholder("RUN_COMMAND"))
}
