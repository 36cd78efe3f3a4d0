package filesystem

import (
	"path/filepath"
	"testing"
)

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := map[string]string{
		"":                    "",
		"~":                   home,
		"~/.gemsearch/x.yaml": filepath.Join(home, ".gemsearch", "x.yaml"),
		"/abs/../abs/file":    "/abs/file",
		"rel/./file":          "rel/file",
	}
	for in, want := range tests {
		if got := ExpandPath(in); got != want {
			t.Errorf("ExpandPath(%q) = %q; want %q", in, got, want)
		}
	}
}
