package themecookie

import "strings"

// Rejection explains why a theme name was refused. The zero value means the
// name is valid.
type Rejection string

const (
	RejectEmpty     Rejection = "empty"
	RejectTraversal Rejection = "traversal"
	RejectMissing   Rejection = "missing"
)

// Validate checks an untrusted theme name. Names that could step outside the
// themes root are refused before the file system is touched.
func Validate(res *Resources, name string) Rejection {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return RejectEmpty
	}
	if trimmed == "." || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return RejectTraversal
	}
	if !res.HasTheme(trimmed) {
		return RejectMissing
	}
	return ""
}

// ValidThemeName reports whether name can be used as a theme
func ValidThemeName(res *Resources, name string) bool {
	return Validate(res, name) == ""
}
