package textutil

import (
	"fmt"
	"regexp"
)

// VersionDisplay canonicalizes a module's display version string: if
// version already contains a parenthesized substring mentioning the
// numeric versionCode, it is returned unchanged; otherwise the code is
// appended in parentheses. The function is idempotent: feeding its own
// output back in returns the same string.
func VersionDisplay(version string, versionCode int64) string {
	re := regexp.MustCompile(fmt.Sprintf(`\(.*?%d.*?\)`, versionCode))
	if re.MatchString(version) {
		return version
	}
	return fmt.Sprintf("%s (%d)", version, versionCode)
}
