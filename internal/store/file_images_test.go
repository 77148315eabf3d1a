package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/avdonin/minifeed/internal/config"
	"github.com/avdonin/minifeed/internal/logger"
)

func newTestImageStorage(t *testing.T) (*profileImageStorage, string) {
	t.Helper()

	dir := t.TempDir()
	storage := NewProfileImageStorage(config.Files{
		ProfileImageDir: dir,
		PublicPrefix:    "img/profile",
	}, logger.Nop())

	return storage.(*profileImageStorage), dir
}

func TestSaveProfileImage_Success(t *testing.T) {
	storage, dir := newTestImageStorage(t)

	image, err := storage.SaveProfileImage(context.Background(), "alice", "cat.PNG", strings.NewReader("image-bytes"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if image.FileName != "cat.PNG" {
		t.Errorf("expected sanitized filename cat.PNG, got %s", image.FileName)
	}
	if image.RealPath != "img/profile/alice.png" {
		t.Errorf("expected real path img/profile/alice.png, got %s", image.RealPath)
	}

	data, err := os.ReadFile(filepath.Join(dir, "alice.png"))
	if err != nil {
		t.Fatalf("stored file not readable: %v", err)
	}
	if string(data) != "image-bytes" {
		t.Errorf("stored content mismatch: %q", data)
	}
}

func TestSaveProfileImage_OverwritesPrevious(t *testing.T) {
	storage, dir := newTestImageStorage(t)
	ctx := context.Background()

	if _, err := storage.SaveProfileImage(ctx, "alice", "old.png", strings.NewReader("old")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := storage.SaveProfileImage(ctx, "alice", "new.png", strings.NewReader("new")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "alice.png"))
	if err != nil {
		t.Fatalf("stored file not readable: %v", err)
	}
	if string(data) != "new" {
		t.Errorf("expected second upload to win, got %q", data)
	}
}

func TestSaveProfileImage_PathTraversalStripped(t *testing.T) {
	storage, dir := newTestImageStorage(t)

	image, err := storage.SaveProfileImage(context.Background(), "alice", "../../etc/evil.png", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if image.FileName != "evil.png" {
		t.Errorf("expected directory components stripped, got %s", image.FileName)
	}
	if _, err := os.Stat(filepath.Join(dir, "alice.png")); err != nil {
		t.Errorf("expected file stored inside image dir: %v", err)
	}
}

func TestSaveProfileImage_EmptyAfterSanitization(t *testing.T) {
	storage, _ := newTestImageStorage(t)

	_, err := storage.SaveProfileImage(context.Background(), "alice", "../..", strings.NewReader("x"))
	if err == nil {
		t.Fatal("expected error for filename with no usable characters")
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "cat.png", want: "cat.png"},
		{name: "unix path", in: "/tmp/cat.png", want: "cat.png"},
		{name: "windows path", in: `C:\Users\me\cat.png`, want: "cat.png"},
		{name: "spaces and specials", in: "my cat (1).png", want: "mycat1.png"},
		{name: "leading dots", in: "...hidden.png", want: "hidden.png"},
		{name: "nothing left", in: "日本語", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeFilename(tt.in); got != tt.want {
				t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFileExtension(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "cat.png", want: "png"},
		{in: "cat.PNG", want: "png"},
		{in: "archive.tar.gz", want: "gz"},
		{in: "noext", want: "noext"},
	}

	for _, tt := range tests {
		if got := fileExtension(tt.in); got != tt.want {
			t.Errorf("fileExtension(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
