package domain

// ProductFilter описывает параметры выборки товаров.
type ProductFilter struct {
	// Name — фильтр по подстроке названия без учёта регистра; пустая строка отключает фильтр.
	Name string
	// Size — точное совпадение размера (в нижнем регистре); пустая строка отключает фильтр.
	Size string
	// Limit ограничивает размер выборки (> 0).
	Limit int
	// Offset задаёт смещение от начала выборки (>= 0).
	Offset int
}

// ProductRepository описывает требования к хранилищу товаров.
// Реализации сами управляют таймаутами своих операций.
type ProductRepository interface {
	// Create сохраняет новый товар и возвращает его с назначенным ID.
	Create(product Product) (Product, error)
	// FindByIDs возвращает товары по множеству идентификаторов одним батчем.
	// На каждый уникальный идентификатор приходится не более одной записи;
	// пустое множество даёт пустой результат без ошибки.
	FindByIDs(ids []string) ([]Product, error)
	// List возвращает товары по фильтру, упорядоченные по возрастанию ID.
	List(filter ProductFilter) ([]Product, error)
}

// OrderRepository описывает требования к хранилищу заказов.
type OrderRepository interface {
	// Create сохраняет новый заказ одной вставкой и возвращает его с назначенным ID.
	Create(order Order) (Order, error)
	// ListByUser возвращает заказы пользователя, упорядоченные по возрастанию ID.
	// Порядок стабилен между вызовами: на неизменном наборе данных пагинация
	// по limit/offset не даёт ни пропусков, ни пересечений.
	ListByUser(userID string, limit, offset int) ([]Order, error)
}
