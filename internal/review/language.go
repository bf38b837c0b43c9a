package review

import "strings"

// DefaultLanguage is assumed for files whose extension is not recognised.
const DefaultLanguage = "JavaScript"

var languagesByExtension = map[string]string{
	"js":   "JavaScript",
	"ts":   "TypeScript",
	"py":   "Python",
	"cpp":  "C++",
	"java": "Java",
	"go":   "Go",
}

// InferLanguage maps the extension of path to a language name. The extension
// is whatever follows the last dot, compared case-insensitively.
func InferLanguage(path string) string {
	ext := path
	if idx := strings.LastIndex(path, "."); idx >= 0 {
		ext = path[idx+1:]
	}
	if lang, ok := languagesByExtension[strings.ToLower(ext)]; ok {
		return lang
	}
	return DefaultLanguage
}
