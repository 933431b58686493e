package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Gunvolt24/vendorcache/internal/domain"
	"github.com/Gunvolt24/vendorcache/internal/ports"
)

// ValidateVendorFromJSON — валидация записи каталога из JSON.
// Поля вне известной схемы допускаются (внешний API добавляет поля без
// предупреждения), но данные после объекта — ошибка.
func ValidateVendorFromJSON(ctx context.Context, validator ports.VendorValidator, raw []byte) (*domain.VendorRecord, error) {
	var vendor domain.VendorRecord
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(&vendor); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	// гарантируем отсутствие данных после объекта
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return nil, fmt.Errorf("invalid json: trailing data")
	}
	if err := validator.Validate(ctx, &vendor); err != nil {
		return nil, err
	}
	return &vendor, nil
}
