package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingEnv matches any *MissingEnvError with errors.Is.
var ErrMissingEnv = errors.New("environment variable is unset")

// MissingEnvError reports a required build variable that is absent.
type MissingEnvError struct {
	Key string
}

func (e *MissingEnvError) Error() string {
	return fmt.Sprintf("environment variable `%s` is unset", e.Key)
}

func (e *MissingEnvError) Is(target error) bool {
	return target == ErrMissingEnv
}

// ValidationError reports a config file that does not match the schema.
type ValidationError struct {
	Path   string
	Issues []ValidationIssue
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "invalid config file %s", e.Path)
	for _, issue := range e.Issues {
		if issue.Path != "" {
			fmt.Fprintf(&b, "\n  %s: %s", issue.Path, issue.Message)
		} else {
			fmt.Fprintf(&b, "\n  %s", issue.Message)
		}
	}
	return b.String()
}
