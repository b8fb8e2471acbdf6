package domain

import "time"

// Product описывает товар каталога. После создания товар неизменяем.
type Product struct {
	// ID назначается хранилищем при вставке (hex ObjectID).
	ID string
	// Name — название товара, хранится в нижнем регистре.
	Name string
	// Description — необязательное описание, хранится в нижнем регистре.
	Description string
	// Price — цена за единицу, строго положительная.
	Price float64
	// Size — необязательный размер, хранится в нижнем регистре.
	Size string
	// CreatedAt фиксирует момент создания товара.
	CreatedAt time.Time
}

// Normalize приводит все текстовые поля товара к каноническому виду.
func (p *Product) Normalize() {
	p.Name = Normalize(p.Name)
	p.Description = Normalize(p.Description)
	p.Size = Normalize(p.Size)
}

// ValidateInvariants проверяет базовые инварианты товара и возвращает список замечаний.
func (p *Product) ValidateInvariants() []error {
	var errs []error

	if p.Name == "" {
		errs = append(errs, ErrNameRequired)
	}
	if p.Price <= 0 {
		errs = append(errs, ErrPriceInvalid)
	}

	return errs
}
