package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/wpslint/pkg/fsutil"
)

func TestBackupPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		mode fsutil.BackupMode
		want string
	}{
		{"sidecar", fsutil.BackupModeSidecar, "doc.txt" + fsutil.BackupSuffix},
		{"none", fsutil.BackupModeNone, ""},
		{"unknown falls back to sidecar", fsutil.BackupMode("weird"), "doc.txt" + fsutil.BackupSuffix},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := fsutil.BackupPath("doc.txt", tt.mode); got != tt.want {
				t.Errorf("BackupPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCreateBackup(t *testing.T) {
	t.Parallel()

	enabled := fsutil.BackupConfig{Enabled: true, Mode: fsutil.BackupModeSidecar}

	t.Run("creates sidecar copy", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "wps.txt")
		if err := os.WriteFile(path, []byte("original text"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		created, err := fsutil.CreateBackup(context.Background(), path, enabled)
		if err != nil {
			t.Fatalf("CreateBackup() error = %v", err)
		}
		if !created {
			t.Fatal("created = false, want true")
		}

		got, err := os.ReadFile(path + fsutil.BackupSuffix)
		if err != nil {
			t.Fatalf("read backup: %v", err)
		}
		if string(got) != "original text" {
			t.Errorf("backup content = %q, want %q", got, "original text")
		}
	})

	t.Run("does not overwrite existing backup", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "wps.txt")
		if err := os.WriteFile(path, []byte("second run"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}
		if err := os.WriteFile(path+fsutil.BackupSuffix, []byte("first run"), 0644); err != nil {
			t.Fatalf("setup backup: %v", err)
		}

		created, err := fsutil.CreateBackup(context.Background(), path, enabled)
		if err != nil {
			t.Fatalf("CreateBackup() error = %v", err)
		}
		if created {
			t.Error("created = true, want false when backup exists")
		}

		got, err := os.ReadFile(path + fsutil.BackupSuffix)
		if err != nil {
			t.Fatalf("read backup: %v", err)
		}
		if string(got) != "first run" {
			t.Errorf("backup content = %q, want preserved %q", got, "first run")
		}
	})

	t.Run("disabled config is a no-op", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "wps.txt")
		if err := os.WriteFile(path, []byte("text"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		created, err := fsutil.CreateBackup(context.Background(), path, fsutil.DefaultBackupConfig())
		if err != nil {
			t.Fatalf("CreateBackup() error = %v", err)
		}
		if created {
			t.Error("created = true, want false when disabled")
		}
		if fsutil.BackupExists(path, fsutil.BackupModeSidecar) {
			t.Error("backup file should not exist")
		}
	})

	t.Run("missing original", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nope.txt")
		created, err := fsutil.CreateBackup(context.Background(), path, enabled)
		if err != nil {
			t.Fatalf("CreateBackup() error = %v", err)
		}
		if created {
			t.Error("created = true, want false for missing original")
		}
	})
}

func TestBackupExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "wps.txt")

	if fsutil.BackupExists(path, fsutil.BackupModeSidecar) {
		t.Error("BackupExists() = true before creation")
	}
	if err := os.WriteFile(path+fsutil.BackupSuffix, []byte("x"), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if !fsutil.BackupExists(path, fsutil.BackupModeSidecar) {
		t.Error("BackupExists() = false after creation")
	}
	if fsutil.BackupExists(path, fsutil.BackupModeNone) {
		t.Error("BackupExists() = true for mode none")
	}
}
