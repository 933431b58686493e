// Пакет storage — квотируемая персистентность подсистемы каталога.
// Guard владеет политикой записи/очистки, но не владеет доменными данными.
package storage

// Backend — минимальный контракт нижележащего key/value-хранилища,
// чтобы легко подменять его моками и in-memory реализацией в тестах.
type Backend interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
	Keys() ([]string, error)
}
