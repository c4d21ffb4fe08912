package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func numbered(n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("Line %d", i+1)
	}
	return lines
}

func TestTail(t *testing.T) {
	all := numbered(10)
	input := strings.Join(all, "\n") + "\n"

	tests := []struct {
		name string
		n    int
		want []string
	}{
		{"all (0)", 0, all},
		{"all (negative)", -1, all},
		{"last 5", 5, all[5:]},
		{"last 3 with trimming", 3, all[7:]},
		{"exactly all", 10, all},
		{"more than exists", 20, all},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tail(strings.NewReader(input), tt.n)
			if err != nil {
				t.Fatalf("Tail returned error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Tail(%d) mismatch (-want +got):\n%s", tt.n, diff)
			}
		})
	}
}

func TestTail_NoTrailingNewline(t *testing.T) {
	got, err := Tail(strings.NewReader("a\nb"), 1)
	if err != nil {
		t.Fatalf("Tail returned error: %v", err)
	}
	if diff := cmp.Diff([]string{"b"}, got); diff != "" {
		t.Fatalf("Tail mismatch (-want +got):\n%s", diff)
	}
}

func TestTail_LineTooLong(t *testing.T) {
	long := strings.Repeat("x", maxLineBytes+1)
	if _, err := Tail(strings.NewReader(long), 1); err == nil {
		t.Fatalf("Tail returned nil error for an oversized line")
	}
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "browse.log")
	if err := os.WriteFile(path, []byte("one\ntwo\nthree\n"), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}

	got, err := File(path, 2)
	if err != nil {
		t.Fatalf("File returned error: %v", err)
	}
	if diff := cmp.Diff([]string{"two", "three"}, got); diff != "" {
		t.Fatalf("File mismatch (-want +got):\n%s", diff)
	}
}

func TestFile_Missing(t *testing.T) {
	got, err := File(filepath.Join(t.TempDir(), "nope.log"), 5)
	if err != nil || got != nil {
		t.Fatalf("File(missing) = %v, %v; want nil, nil", got, err)
	}
}

func TestFile_Directory(t *testing.T) {
	if _, err := File(t.TempDir(), 5); err == nil {
		t.Fatalf("File(dir) returned nil error")
	}
}
