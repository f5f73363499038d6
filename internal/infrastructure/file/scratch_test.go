package file_test

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/rosterhub/excelsync/internal/infrastructure/file"
)

func TestScratchStoreSaveAndRemove(t *testing.T) {
	t.Parallel()

	store := file.NewScratchStore(t.TempDir())

	path, err := store.Save(context.Background(), strings.NewReader("payload"), "roster.xlsx")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !strings.HasSuffix(path, "-roster.xlsx") {
		t.Fatalf("scratch name must keep the original name suffix: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read scratch file: %v", err)
	}
	if string(data) != "payload" {
		t.Fatalf("unexpected content: %q", data)
	}

	if err := store.Remove(path); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("scratch file must be gone, got %v", err)
	}
}

func TestScratchStoreUniqueNames(t *testing.T) {
	t.Parallel()

	store := file.NewScratchStore(t.TempDir())

	first, err := store.Save(context.Background(), strings.NewReader("a"), "roster.xlsx")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	second, err := store.Save(context.Background(), strings.NewReader("b"), "roster.xlsx")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if first == second {
		t.Fatalf("concurrent uploads of the same name must not collide: %s", first)
	}
}

func TestScratchStoreStripsPathTraversal(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := file.NewScratchStore(dir)

	path, err := store.Save(context.Background(), strings.NewReader("x"), "../../etc/passwd")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !strings.HasPrefix(path, dir) {
		t.Fatalf("scratch file escaped the scratch dir: %s", path)
	}
}
