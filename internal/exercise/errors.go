package exercise

import (
	"fmt"
	"strings"
)

// AssertionError reports the checks that failed during a run.
type AssertionError struct {
	Failed []string
}

func (e *AssertionError) Error() string {
	return fmt.Sprintf("%d assertion(s) failed: %s", len(e.Failed), strings.Join(e.Failed, "; "))
}

// ConfigError reports an unusable configuration value.
type ConfigError struct {
	Key   string
	Value string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid value %q for %s", e.Value, e.Key)
}
