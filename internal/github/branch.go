package github

import "regexp"

// BranchPrefix namespaces every branch the optimizer creates.
const BranchPrefix = "optimized/"

var unsafeBranchChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// BranchName derives the target branch for a file path. Every character outside
// [A-Za-z0-9._-] becomes an underscore, so "src/a b.js" maps to
// "optimized/src_a_b.js".
func BranchName(filePath string) string {
	return BranchPrefix + unsafeBranchChars.ReplaceAllString(filePath, "_")
}

// CommitMessage is the fixed message used when committing an optimized file.
func CommitMessage(filePath string) string {
	return "chore: AI-optimized " + filePath
}
