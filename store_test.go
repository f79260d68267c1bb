package cart

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStore_LoadMissingFile(t *testing.T) {
	store := FileStore{Path: filepath.Join(t.TempDir(), "missing.txt")}
	if _, err := store.Load(); !errors.Is(err, ErrStorageUnavailable) {
		t.Errorf("Load() error = %v, want %v", err, ErrStorageUnavailable)
	}
}

func TestFileStore_LoadReadOnlyFile(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("file permissions are not enforced for root")
	}
	path := writeLedger(t, "A1;apples;3;1.5;EUR\n")
	if err := os.Chmod(path, 0444); err != nil {
		t.Fatalf("failed to change permissions: %v", err)
	}
	if _, err := (FileStore{Path: path}).Load(); !errors.Is(err, ErrStorageUnavailable) {
		t.Errorf("Load() error = %v, want %v", err, ErrStorageUnavailable)
	}
}

func TestFileStore_Append(t *testing.T) {
	path := writeLedger(t, "A1;apples;3;1.5;EUR\n")
	store := FileStore{Path: path}

	if err := store.Append(NewRemoval("A1", 2)); err != nil {
		t.Fatalf("Append() returned an unexpected error: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read ledger file: %v", err)
	}
	want := "A1;apples;3;1.5;EUR\nA1;;-2;;\n"
	if string(got) != want {
		t.Errorf("ledger file = %q, want %q", got, want)
	}
}

func TestFileStore_AppendDoesNotCreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")
	if err := (FileStore{Path: path}).Append(NewRemoval("A1", 2)); err == nil {
		t.Error("Append() on a missing file should fail")
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Append() should not create %q, stat error = %v", path, err)
	}
}

func TestCreateLedgerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tmp", "cart.txt")

	created, err := CreateLedgerFile(path)
	if err != nil || !created {
		t.Fatalf("CreateLedgerFile() = %v, %v, want true, nil", created, err)
	}
	if err := os.WriteFile(path, []byte("A1;apples;3;1.5;EUR\n"), 0644); err != nil {
		t.Fatalf("failed to write ledger file: %v", err)
	}

	created, err = CreateLedgerFile(path)
	if err != nil || created {
		t.Fatalf("second CreateLedgerFile() = %v, %v, want false, nil", created, err)
	}
	content, _ := os.ReadFile(path)
	if string(content) != "A1;apples;3;1.5;EUR\n" {
		t.Errorf("CreateLedgerFile() modified an existing ledger: %q", content)
	}
}
