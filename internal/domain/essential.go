package domain

// EssentialVendor — усечённая проекция VendorRecord для персистентности:
// только поля, нужные спискам и гидрации detail-страницы. Координаты и прочее
// восстанавливаются свежей загрузкой по ID.
type EssentialVendor struct {
	ID          string     `json:"id"`
	Slug        string     `json:"slug"`
	DisplayName string     `json:"display_name"`
	Active      bool       `json:"active"`
	Meta        VendorMeta `json:"vendor_meta"`
}

// Essential — проекция одной записи.
func (v *VendorRecord) Essential() EssentialVendor {
	return EssentialVendor{
		ID:          v.ID,
		Slug:        v.Slug,
		DisplayName: v.DisplayName,
		Active:      v.Active,
		Meta:        v.Meta,
	}
}

// ProjectEssential — проекция раздела; порядок записей сохраняется.
func ProjectEssential(vendors []VendorRecord) []EssentialVendor {
	if vendors == nil {
		return nil
	}
	out := make([]EssentialVendor, len(vendors))
	for i := range vendors {
		out[i] = vendors[i].Essential()
	}
	return out
}
