package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferLanguage(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "src/app.py", want: "Python"},
		{path: "src/app.PY", want: "Python"},
		{path: "index.js", want: "JavaScript"},
		{path: "web/main.ts", want: "TypeScript"},
		{path: "engine/core.cpp", want: "C++"},
		{path: "Main.java", want: "Java"},
		{path: "cmd/server/main.go", want: "Go"},
		{path: "notes.xyz", want: "JavaScript"},
		{path: "Makefile", want: "JavaScript"},
		{path: "archive.tar.go", want: "Go"},
		{path: "component.tsx", want: "JavaScript"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, InferLanguage(tt.path))
		})
	}
}
