package themecookie

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testResources(t *testing.T) *Resources {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "themes/valo/styles.css", []byte("body{}"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "themes/runo/styles.css", []byte("body{}"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "themes/reindeer/styles.scss", []byte("body{}"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "themes/empty/readme.txt", []byte("no styles"), 0o644))
	require.NoError(t, fs.MkdirAll("themes/dironly/styles.css", 0o755))
	require.NoError(t, afero.WriteFile(fs, "etc/styles.css", []byte("secret"), 0o644))
	return NewResources(fs, DefaultThemesRoot)
}

func TestValidThemeName_RejectsTraversal(t *testing.T) {
	res := testResources(t)

	for _, name := range []string{
		"../etc",
		"../../etc",
		"..",
		".",
		" . ",
		"valo/..",
		"/valo",
		"valo/",
		"themes/valo",
		`..\etc`,
		`valo\`,
		"va..lo",
	} {
		assert.False(t, ValidThemeName(res, name), "name %q", name)
		assert.Equal(t, RejectTraversal, Validate(res, name), "name %q", name)
	}
}

func TestValidThemeName_RejectsBlank(t *testing.T) {
	res := testResources(t)

	for _, name := range []string{"", " ", "\t", "\n  "} {
		assert.False(t, ValidThemeName(res, name), "name %q", name)
		assert.Equal(t, RejectEmpty, Validate(res, name), "name %q", name)
	}
}

func TestValidThemeName_RequiresStylesheet(t *testing.T) {
	res := testResources(t)

	assert.True(t, ValidThemeName(res, "valo"))
	assert.True(t, ValidThemeName(res, "runo"))
	assert.True(t, ValidThemeName(res, "reindeer"), "styles.scss is enough")
	assert.True(t, ValidThemeName(res, " valo "), "surrounding whitespace is trimmed")

	assert.Equal(t, RejectMissing, Validate(res, "unknown"))
	assert.Equal(t, RejectMissing, Validate(res, "empty"))
	assert.Equal(t, RejectMissing, Validate(res, "dironly"), "a directory named styles.css is not a stylesheet")
	assert.Equal(t, RejectMissing, Validate(res, "etc"), "lookups stay under the themes root")
}

func TestResources_Themes(t *testing.T) {
	res := testResources(t)

	themes, err := res.Themes()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"valo", "runo", "reindeer"}, themes)
}

func TestResources_CustomRoot(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "static/skins/dark/styles.css", []byte(""), 0o644))

	res := NewResources(fs, "static/skins")
	assert.True(t, ValidThemeName(res, "dark"))
	assert.False(t, ValidThemeName(res, "valo"))
}

func TestValidThemeName_RejectsRootItself(t *testing.T) {
	res := testResources(t)
	require.NoError(t, afero.WriteFile(res.Fs(), "themes/styles.css", []byte("body{}"), 0o644))

	assert.Equal(t, RejectTraversal, Validate(res, "."))
}

func TestResources_Stylesheet(t *testing.T) {
	res := testResources(t)
	require.NoError(t, afero.WriteFile(res.Fs(), "themes/both/styles.css", []byte("body{}"), 0o644))
	require.NoError(t, afero.WriteFile(res.Fs(), "themes/both/styles.scss", []byte("body{}"), 0o644))

	assert.Equal(t, "styles.css", res.Stylesheet("valo"))
	assert.Equal(t, "styles.scss", res.Stylesheet("reindeer"))
	assert.Equal(t, "styles.css", res.Stylesheet("both"))
	assert.Empty(t, res.Stylesheet("empty"))
	assert.Empty(t, res.Stylesheet("dironly"))
}
