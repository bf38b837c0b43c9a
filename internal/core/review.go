// Package core defines the essential interfaces and data structures that form the
// backbone of the application. These components are designed to be abstract,
// allowing for flexible and decoupled implementations of the application's logic.
package core

// Report severities.
const (
	SeverityCritical = "critical"
	SeverityMajor    = "major"
	SeverityMinor    = "minor"
	SeverityClean    = "clean"
)

// Issue categories the model is instructed to use.
const (
	CategoryCorrectness     = "correctness"
	CategorySecurity        = "security"
	CategoryPerformance     = "performance"
	CategoryErrorHandling   = "error-handling"
	CategoryReadability     = "readability"
	CategoryMaintainability = "maintainability"
	CategoryBestPractices   = "best-practices"
)

// ReviewRequest is a single snippet submitted for review.
type ReviewRequest struct {
	Code     string `json:"code"`
	Language string `json:"language"`
}

// RepoReviewRequest points at one file inside a hosted repository.
type RepoReviewRequest struct {
	RepoURL  string `json:"repoUrl"`
	FilePath string `json:"filePath"`
}

// Issue is a single finding reported by the model.
type Issue struct {
	Category    string `json:"category" yaml:"category"`
	Severity    string `json:"severity" yaml:"severity"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Suggestion  string `json:"suggestion" yaml:"suggestion"`
}

// Complexity holds the model's Big-O assessment of the submitted code.
type Complexity struct {
	Time     string `json:"time" yaml:"time"`
	Space    string `json:"space" yaml:"space"`
	Analysis string `json:"analysis" yaml:"analysis"`
}

// ReviewReport is the structured review returned by the model and relayed
// to the caller as-is.
type ReviewReport struct {
	Score         int        `json:"score" yaml:"score"`
	Severity      string     `json:"severity" yaml:"severity"`
	Summary       string     `json:"summary" yaml:"summary"`
	Issues        []Issue    `json:"issues" yaml:"issues"`
	Complexity    Complexity `json:"complexity" yaml:"complexity"`
	OptimizedCode string     `json:"optimizedCode" yaml:"optimized_code"`
}

// RepoReviewResult is a ReviewReport plus the branch the rewrite was committed to.
// The report fields are flattened into the same JSON object.
type RepoReviewResult struct {
	ReviewReport `yaml:",inline"`
	Branch       string `json:"branch" yaml:"branch"`
	Message      string `json:"message" yaml:"message"`
}

// IsReportSeverity reports whether s is a valid overall report severity.
func IsReportSeverity(s string) bool {
	switch s {
	case SeverityCritical, SeverityMajor, SeverityMinor, SeverityClean:
		return true
	default:
		return false
	}
}
