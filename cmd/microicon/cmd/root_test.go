package cmd

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/blacktop/go-microicon"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestPNG(t *testing.T, path string, size int) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := range size {
		for x := range size {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8((x * 255) / size),
				G: uint8((y * 255) / size),
				B: uint8((x + y) % 255),
				A: 255,
			})
		}
	}

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	file, err := os.Create(path)
	require.NoError(t, err)
	defer file.Close()

	require.NoError(t, png.Encode(file, img))
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestResolveProfile(t *testing.T) {
	tests := []struct {
		name       string
		in         string
		isTerminal bool
		want       termenv.Profile
		wantErr    bool
	}{
		{name: "detect pipe", in: "", isTerminal: false, want: termenv.Ascii},
		{name: "explicit 256", in: "256", isTerminal: false, want: termenv.ANSI256},
		{name: "explicit ascii", in: "ascii", isTerminal: true, want: termenv.Ascii},
		{name: "unknown", in: "kitty", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveProfile(tt.in, tt.isTerminal)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NotEmpty(t, profileString(got))
		})
	}
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	small := filepath.Join(dir, "small.png")
	large := filepath.Join(dir, "large.png")
	createTestPNG(t, small, 10)
	createTestPNG(t, large, 64)

	out, err := execute(t, "render", "--profile", "ascii", "--max", "32", small)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 10)
	for _, line := range lines {
		assert.Equal(t, strings.Repeat("█", 10), line)
	}

	out, err = execute(t, "render", "--profile", "ascii", "--max", "16", small, large)
	require.NoError(t, err)
	assert.Contains(t, out, small+":")
	assert.Contains(t, out, large+":")
	assert.Contains(t, out, strings.Repeat("█", 16)+"\n")

	_, err = execute(t, "render", "--profile", "ascii", filepath.Join(dir, "missing.png"))
	assert.Error(t, err)

	_, err = execute(t, "render", "--profile", "nope", small)
	assert.Error(t, err)
}

func TestShowCommand(t *testing.T) {
	dir := t.TempDir()
	createTestPNG(t, filepath.Join(dir, "mods/core/icon.png"), 8)
	manifest := filepath.Join(dir, "icons.toml")
	require.NoError(t, os.WriteFile(manifest, []byte(`
[[entity]]
id = "core"
root = "mods/core"
icon = "icon.png"

[[entity]]
id = "bare"
`), 0o644))

	out, err := execute(t, "show", "--profile", "ascii", "--max", "32", "--manifest", manifest)
	require.NoError(t, err)
	assert.Contains(t, out, "core:\n"+strings.Repeat("█", 8)+"\n")
	assert.Contains(t, out, "bare:\n(no icon)")

	out, err = execute(t, "show", "--profile", "ascii", "--manifest", manifest, "core", "core", "unknown")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "core:"))
	assert.Contains(t, out, "unknown:\n(no icon)")
}

func TestListDirIDs(t *testing.T) {
	dir := t.TempDir()
	createTestPNG(t, filepath.Join(dir, "b.png"), 2)
	createTestPNG(t, filepath.Join(dir, "a.png"), 2)
	createTestPNG(t, filepath.Join(dir, "skip.txt"), 2)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	r, err := microicon.NewDirResolver(dir, "")
	require.NoError(t, err)

	ids, err := listDirIDs(dir, r)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids)
}

func TestLoadIconsSharesRepeatedIDs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "x.png")
	createTestPNG(t, path, 4)

	var calls atomic.Int32
	res := microicon.ResolverFunc(func(id string, size int) (string, bool) {
		calls.Add(1)
		return path, id == "x"
	})

	cache := microicon.NewCache()
	icons := loadIcons(cache, res, microicon.NewRasterizer(), []string{"x", "x", "x", "y"}, 4)
	require.Len(t, icons, 4)
	assert.True(t, icons[0].Present())
	assert.Equal(t, icons[0], icons[2])
	assert.False(t, icons[3].Present())
	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, 2, cache.Len())
}

func TestBrowseModel(t *testing.T) {
	icon := microicon.Some(microicon.Grid{{microicon.MapPixel(0xFFFF0000)}})
	loads := map[string]int{}
	load := func(id string) microicon.Icon {
		loads[id]++
		if id == "a" {
			return icon
		}
		return microicon.None
	}
	renderer := microicon.NewRenderer(&bytes.Buffer{}, termenv.Ascii)

	var m tea.Model = newBrowseModel([]string{"a", "b", "c"}, load, renderer)
	assert.Contains(t, m.View(), "█")
	assert.Contains(t, m.View(), "1/3")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Contains(t, m.View(), "(no icon)")
	assert.Contains(t, m.View(), "2/3")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")})
	assert.Contains(t, m.View(), "3/3")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Contains(t, m.View(), "3/3", "cursor stops at the last entity")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	assert.Contains(t, m.View(), "1/3")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	empty := newBrowseModel(nil, load, renderer)
	assert.Equal(t, "No entities found.\n", empty.View())
}
