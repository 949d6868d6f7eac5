package themecookie

import (
	"path"

	"github.com/spf13/afero"
)

// DefaultThemesRoot is the directory holding one sub-directory per theme
const DefaultThemesRoot = "themes"

// Stylesheets a theme directory must contain at least one of
var themeStylesheets = []string{"styles.css", "styles.scss"}

// Resources looks up theme files on a file system
type Resources struct {
	fs   afero.Fs
	root string
}

func NewResources(fs afero.Fs, root string) *Resources {
	if root == "" {
		root = DefaultThemesRoot
	}
	return &Resources{fs: fs, root: root}
}

func (r *Resources) Fs() afero.Fs {
	return r.fs
}

func (r *Resources) Root() string {
	return r.root
}

// Exists reports whether name is a regular file
func (r *Resources) Exists(name string) bool {
	info, err := r.fs.Stat(name)
	return err == nil && !info.IsDir()
}

// Stylesheet returns the file name of the theme's stylesheet, preferring
// styles.css, or "" when the theme has none. theme is not sanitized here; use
// ValidThemeName for untrusted input.
func (r *Resources) Stylesheet(theme string) string {
	dir := path.Join(r.root, theme)
	for _, sheet := range themeStylesheets {
		if r.Exists(path.Join(dir, sheet)) {
			return sheet
		}
	}
	return ""
}

// HasTheme reports whether the theme directory holds a stylesheet
func (r *Resources) HasTheme(theme string) bool {
	return r.Stylesheet(theme) != ""
}

// Themes lists the theme directories that hold a stylesheet
func (r *Resources) Themes() ([]string, error) {
	entries, err := afero.ReadDir(r.fs, r.root)
	if err != nil {
		return nil, err
	}
	var themes []string
	for _, entry := range entries {
		if entry.IsDir() && r.HasTheme(entry.Name()) {
			themes = append(themes, entry.Name())
		}
	}
	return themes, nil
}
