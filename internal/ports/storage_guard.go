package ports

import "github.com/Gunvolt24/vendorcache/internal/domain"

// Причины отказа записи в хранилище.
const (
	WriteRejectQuota       = "quota-exceeded"
	WriteRejectSerialize   = "serialize-error"
	WriteRejectUnavailable = "storage-unavailable"
)

// WriteResult — итог записи. При OK=false Reason содержит одну из констант выше,
// а прежнее значение ключа гарантированно не тронуто.
type WriteResult struct {
	OK     bool
	Reason string
}

// StorageGuard — безопасная обёртка над квотируемым key/value-хранилищем.
// Ни одна операция не паникует и не возвращает ошибку наружу: отказ хранилища —
// локально восстановимое состояние, не фатальное для сервиса.
type StorageGuard interface {
	// Write — сериализует value и пишет под ключ; запись, выводящая за мягкий
	// бюджет, отклоняется целиком (никаких частичных записей).
	Write(key string, value any) WriteResult

	// Read — десериализует значение ключа в dst; false при отсутствии ключа
	// или битом содержимом (dst при этом не изменяется).
	Read(key string, dst any) bool

	// Delete — удалить ключ (no-op, если его нет).
	Delete(key string)

	// Usage — сводка занятого места по ключам подсистемы.
	Usage() domain.StorageBudgetSnapshot

	// ClearAll — удалить все ключи подсистемы (чужие ключи не трогаются);
	// возвращает количество удалённых.
	ClearAll() int

	// IsAvailable — доступно ли хранилище (определяется один раз при старте).
	// При false все операции — безопасные no-op.
	IsAvailable() bool
}
