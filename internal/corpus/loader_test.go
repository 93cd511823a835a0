package corpus

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"questions/internal/domain"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestLoad(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"python.txt": "Python is a programming language.",
		"go.txt":     "\ufeffGo was designed at Google.",
		"notes.md":   "ignored",
		"Zebra.TXT":  "Upper-case extension.",
	})
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.txt"), 0o755))

	c, err := NewLoader(Options{}, nil).Load(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"Zebra.TXT", "go.txt", "python.txt"}, c.Names())
	doc, ok := c.Get("go.txt")
	require.True(t, ok)
	assert.Equal(t, "Go was designed at Google.", doc.Text)
}

func TestLoadHTML(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"page.html": `<html><head><title>Cats</title><style>p{color:red}</style></head>
<body><p>Cats   purr.</p><script>var x = 1;</script><p>Dogs bark.</p></body></html>`,
		"plain.txt": "text",
	})

	c, err := NewLoader(Options{Extensions: []string{".html"}}, nil).Load(context.Background(), dir)
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())

	doc, _ := c.Get("page.html")
	assert.Equal(t, "Cats\nCats purr.\nDogs bark.", doc.Text)
}

func TestLoadErrors(t *testing.T) {
	_, err := NewLoader(Options{}, nil).Load(context.Background(), filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	dir := writeFiles(t, map[string]string{"a.md": "x"})
	_, err = NewLoader(Options{}, nil).Load(context.Background(), dir)
	require.ErrorIs(t, err, domain.ErrEmptyCorpus)
}

func TestLoadCanceled(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.txt": "a", "b.txt": "b"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLoader(Options{Concurrency: 1}, nil).Load(ctx, dir)
	require.ErrorIs(t, err, context.Canceled)
}
