package validate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Gunvolt24/vendorcache/internal/domain"
	"github.com/Gunvolt24/vendorcache/internal/geo"
	"github.com/Gunvolt24/vendorcache/internal/ports"
)

// Проверка, что VendorValidator удовлетворяет порту приложения.
var _ ports.VendorValidator = (*VendorValidator)(nil)

// ErrInvalidVendor — базовая (sentinel error) ошибка валидации.
var ErrInvalidVendor = errors.New("vendor validation failed")

// VendorValidator — структура для валидации записи каталога.
// Возвращает ErrInvalidVendor (с обёрнутой причиной) при любой проблеме.
type VendorValidator struct{}

// NewVendorValidator — конструктор VendorValidator.
func NewVendorValidator() *VendorValidator { return &VendorValidator{} }

// Validate — проверяет корректность полей записи каталога.
// Отсутствующие координаты — не ошибка («расстояние неизвестно» — рабочее
// состояние); ошибка — только заданные координаты вне диапазона.
func (v *VendorValidator) Validate(_ context.Context, vendor *domain.VendorRecord) error {
	if vendor == nil {
		return fmt.Errorf("%w: запись не может быть nil", ErrInvalidVendor)
	}
	if vendor.ID == "" {
		return fmt.Errorf("%w: id обязателен", ErrInvalidVendor)
	}
	if vendor.DisplayName == "" {
		return fmt.Errorf("%w: display_name обязателен", ErrInvalidVendor)
	}
	if err := v.validateSlug(vendor.Slug); err != nil {
		return err
	}
	return v.validateCoordinates(vendor)
}

// validateSlug — slug должен быть URL-безопасным (пустой допустим).
func (v *VendorValidator) validateSlug(slug string) error {
	if slug == "" {
		return nil
	}
	for _, r := range slug {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return fmt.Errorf("%w: slug %q содержит недопустимый символ %q", ErrInvalidVendor, slug, r)
		}
	}
	if strings.HasPrefix(slug, "-") || strings.HasSuffix(slug, "-") {
		return fmt.Errorf("%w: slug %q начинается/заканчивается дефисом", ErrInvalidVendor, slug)
	}
	return nil
}

// validateCoordinates — если обе координаты заданы, пара должна быть валидной.
// Одна заданная из двух — подозрительно, но не ошибка: трактуется как «неизвестно».
func (v *VendorValidator) validateCoordinates(vendor *domain.VendorRecord) error {
	coords, known := vendor.Coordinates()
	if !known {
		return nil
	}
	if err := geo.Validate(coords); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidVendor, err)
	}
	return nil
}
