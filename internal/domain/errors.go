package domain

import "errors"

var (
	// Ошибка отсутствующего идентификатора пользователя.
	ErrUserRequired = errors.New("user_id is required")
	// Ошибка отсутствующего названия товара.
	ErrNameRequired = errors.New("name is required")
	// Ошибка при неположительной цене товара.
	ErrPriceInvalid = errors.New("price must be greater than zero")
	// Ошибка отсутствия хотя бы одной позиции в заказе.
	ErrItemsRequired = errors.New("order must contain at least one item")
	// Ошибка отсутствующего идентификатора товара в позиции заказа.
	ErrItemProductRequired = errors.New("item product_id is required")
	// Ошибка при некорректном количестве товара в позиции (<= 0).
	ErrItemQuantityInvalid = errors.New("item quantity must be greater than zero")
	// ErrProductsNotFound возвращается, когда хотя бы один товар заказа
	// не удалось разрешить. Текст является частью API-контракта.
	ErrProductsNotFound = errors.New("one or more products not found")
	// ErrProductNotFound возвращается, если товар не найден в хранилище.
	ErrProductNotFound = errors.New("product not found")
	// ErrOrderNotFound возвращается, если заказ не найден в хранилище.
	ErrOrderNotFound = errors.New("order not found")
	// ErrStoreUnavailable сигнализирует о недоступности хранилища документов;
	// вызывающая сторона может безопасно повторить запрос.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// IsValidation проверяет, относится ли ошибка к некорректному пользовательскому вводу.
func IsValidation(err error) bool {
	for _, target := range []error{
		ErrUserRequired,
		ErrNameRequired,
		ErrPriceInvalid,
		ErrItemsRequired,
		ErrItemProductRequired,
		ErrItemQuantityInvalid,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsReferential проверяет, является ли ошибка отказом из-за неразрешимых товаров.
func IsReferential(err error) bool {
	return errors.Is(err, ErrProductsNotFound)
}

// IsNotFound проверяет, является ли ошибка отсутствием записи.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrProductNotFound) || errors.Is(err, ErrOrderNotFound)
}

// IsStoreUnavailable проверяет, вызвана ли ошибка недоступностью хранилища.
func IsStoreUnavailable(err error) bool {
	return errors.Is(err, ErrStoreUnavailable)
}
