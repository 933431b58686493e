// Пакет file — файловый Backend: один ключ — один файл в каталоге данных.
// Имя файла — URL-escaped ключ, значение — как есть (JSON-текст).
package file

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

const fileExt = ".json"

// Store — файловое key/value-хранилище.
type Store struct {
	dir string
}

// New — создаёт каталог данных (если его нет) и возвращает хранилище.
func New(dir string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("file store: empty dir")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("file store: mkdir %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, url.QueryEscape(key)+fileExt)
}

// Get — значение ключа; false, если ключа нет или файл нечитаем.
func (s *Store) Get(key string) (string, bool) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return "", false
	}
	return string(data), true
}

// Set — атомарная запись: во временный файл, затем rename.
// Наполовину записанный файл не должен быть виден читателям.
func (s *Store) Set(key, value string) error {
	tmp, err := os.CreateTemp(s.dir, ".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(value); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, s.path(key)); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}

// Delete — удалить ключ; отсутствие ключа — не ошибка.
func (s *Store) Delete(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Keys — все ключи хранилища (служебные tmp-файлы пропускаются).
func (s *Store) Keys() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, fileExt) {
			continue
		}
		key, err := url.QueryUnescape(strings.TrimSuffix(name, fileExt))
		if err != nil {
			continue
		}
		keys = append(keys, key)
	}
	return keys, nil
}
