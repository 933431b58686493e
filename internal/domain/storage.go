package domain

// StorageBudgetSnapshot — производная (не персистентная) сводка по занятому
// месту в хранилище: считается на лету обходом всех ключей подсистемы.
type StorageBudgetSnapshot struct {
	UsedBytes      int64   `json:"used_bytes"`
	AvailableBytes int64   `json:"available_bytes"`
	Percentage     float64 `json:"percentage"`
	KeyCount       int     `json:"key_count"`
}

// StorageStatus — сводка плюс доступность самого хранилища
// (false — например, при отключённом API приватного режима).
type StorageStatus struct {
	StorageBudgetSnapshot
	IsAvailable bool `json:"is_available"`
}
