package env

import (
	"os"
	"regexp"
)

var varPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Resolve expands ${VAR} references from the OS environment. Unknown
// variables resolve to empty, which a caller can then treat as missing.
func Resolve(value string) string {
	return varPattern.ReplaceAllStringFunc(value, func(match string) string {
		name := varPattern.FindStringSubmatch(match)[1]
		return os.Getenv(name)
	})
}
