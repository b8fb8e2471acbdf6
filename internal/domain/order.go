package domain

import "time"

// OrderItem представляет одну позицию заказа. Позиции с одинаковым товаром
// не схлопываются: каждая строка учитывается независимо.
type OrderItem struct {
	// ProductID — слабая ссылка на товар (hex ObjectID в нижнем регистре).
	ProductID string
	// Quantity — количество единиц товара, строго положительное.
	Quantity int32
}

// Order агрегирует позиции заказа и зафиксированную на момент создания сумму.
// Заказ неизменяем после создания.
type Order struct {
	// ID назначается хранилищем при вставке.
	ID string
	// UserID — идентификатор пользователя, хранится в нижнем регистре.
	UserID string
	// Items — упорядоченный список позиций; заказ владеет ими целиком.
	Items []OrderItem
	// Total — сумма цена × количество по всем позициям, рассчитанная
	// по актуальным ценам на момент создания.
	Total float64
	// CreatedAt фиксирует момент создания заказа.
	CreatedAt time.Time
}

// Normalize приводит идентификаторы заказа и его позиций к каноническому виду.
func (o *Order) Normalize() {
	o.UserID = Normalize(o.UserID)
	for i := range o.Items {
		o.Items[i].ProductID = Normalize(o.Items[i].ProductID)
	}
}

// ValidateInvariants проверяет базовые инварианты заказа и возвращает список замечаний.
func (o *Order) ValidateInvariants() []error {
	var errs []error

	if o.UserID == "" {
		errs = append(errs, ErrUserRequired)
	}
	if len(o.Items) == 0 {
		errs = append(errs, ErrItemsRequired)
	}
	for _, item := range o.Items {
		if item.ProductID == "" {
			errs = append(errs, ErrItemProductRequired)
		}
		if item.Quantity <= 0 {
			errs = append(errs, ErrItemQuantityInvalid)
		}
	}

	return errs
}

// DistinctProductIDs возвращает множество уникальных идентификаторов товаров
// заказа с сохранением порядка первого появления.
func (o *Order) DistinctProductIDs() []string {
	seen := make(map[string]struct{}, len(o.Items))
	ids := make([]string, 0, len(o.Items))
	for _, item := range o.Items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}
	return ids
}
