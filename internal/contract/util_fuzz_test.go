package contract

import (
	"testing"
)

// FuzzTruncatePath fuzzes TruncatePath with random paths and widths.
func FuzzTruncatePath(f *testing.F) {
	seeds := []struct {
		path  string
		width int
	}{
		{"main.go", 40},
		{"a_really_long_generated_module_name_for_testing.py", 40},
		{"", 0},
		{"日本語のファイル名.go", 5},
		{"x", -1},
	}
	for _, seed := range seeds {
		f.Add(seed.path, seed.width)
	}

	f.Fuzz(func(t *testing.T, path string, width int) {
		got := TruncatePath(path, width)
		if width > 3 && len([]rune(got)) > width {
			t.Fatalf("TruncatePath(%q, %d) = %q exceeds width", path, width, got)
		}
	})
}
