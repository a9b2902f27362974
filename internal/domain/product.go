package domain

import "time"

// SizeInfo описывает вариант размера товара и его количество.
type SizeInfo struct {
	// Size — метка размера (например, "M" или "XL").
	Size string
	// Quantity — количество единиц данного размера.
	Quantity int
}

// Product — запись каталога. ID — прикладной последовательный идентификатор,
// видимый наружу; он не совпадает с внутренним идентификатором хранилища.
// Запись неизменяема после создания: путей обновления и удаления нет.
type Product struct {
	ID        int64
	Name      string
	Price     float64
	Sizes     SizeInfo
	CreatedAt time.Time
}

// ValidateInvariants проверяет базовые инварианты товара и возвращает список замечаний.
func (p *Product) ValidateInvariants() []error {
	var errs []error

	if p.Name == "" {
		errs = append(errs, ErrProductNameRequired)
	}
	if p.Price < 0 {
		errs = append(errs, ErrProductPriceNegative)
	}
	if p.Sizes.Size == "" {
		errs = append(errs, ErrSizeLabelRequired)
	}
	if p.Sizes.Quantity < 0 {
		errs = append(errs, ErrSizeQuantityNegative)
	}

	return errs
}

// ProductFilter задаёт необязательные предикаты выборки каталога.
// Пустое поле означает отсутствие предиката; заданные комбинируются через AND.
type ProductFilter struct {
	// Name — подстрока имени без учёта регистра.
	Name string
	// Size — точное совпадение метки размера.
	Size string
}

// IsEmpty сообщает, что ни один предикат не задан.
func (f ProductFilter) IsEmpty() bool {
	return f.Name == "" && f.Size == ""
}
