package file_test

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/Gunvolt24/vendorcache/internal/storage/file"
)

func TestStore_RoundTrip(t *testing.T) {
	store, err := file.New(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if err := store.Set("vendorcache:catalog", `{"a":1}`); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, ok := store.Get("vendorcache:catalog")
	if !ok || got != `{"a":1}` {
		t.Fatalf("get: ok=%v value=%q", ok, got)
	}
}

func TestStore_GetMissing(t *testing.T) {
	store, err := file.New(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if _, ok := store.Get("nope"); ok {
		t.Fatalf("missing key must not be found")
	}
}

func TestStore_SetOverwrite(t *testing.T) {
	store, err := file.New(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if err := store.Set("k", "old"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Set("k", "new"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, _ := store.Get("k")
	if got != "new" {
		t.Fatalf("want overwritten value, got %q", got)
	}
}

func TestStore_DeleteMissingIsNoop(t *testing.T) {
	store, err := file.New(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if err := store.Delete("nope"); err != nil {
		t.Fatalf("delete missing: %v", err)
	}
}

func TestStore_KeysEscapedNames(t *testing.T) {
	dir := t.TempDir()
	store, err := file.New(dir)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	// Ключи с двоеточием недопустимы в именах файлов на части платформ,
	// поэтому имена URL-escaped и должны декодироваться обратно.
	want := []string{"ns:catalog", "ns:user/location"}
	for _, k := range want {
		if err := store.Set(k, "v"); err != nil {
			t.Fatalf("set %q: %v", k, err)
		}
	}

	// Посторонний файл без расширения .json игнорируется.
	if err := os.WriteFile(filepath.Join(dir, "README"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write extra file: %v", err)
	}

	keys, err := store.Keys()
	if err != nil {
		t.Fatalf("keys: %v", err)
	}
	sort.Strings(keys)
	sort.Strings(want)
	if len(keys) != len(want) {
		t.Fatalf("want %v, got %v", want, keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("want %v, got %v", want, keys)
		}
	}
}

func TestNew_EmptyDir(t *testing.T) {
	if _, err := file.New(""); err == nil {
		t.Fatalf("empty dir must be rejected")
	}
}
