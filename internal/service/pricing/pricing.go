// Package pricing реализует расчёт стоимости заказа: проверку существования
// товаров и вычисление суммы по актуальным ценам.
package pricing

import (
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// Service рассчитывает заказы поверх доменного репозитория товаров.
type Service struct {
	products domain.ProductRepository
	logger   *log.Entry
}

// NewService конструирует сервис с зависимостями.
func NewService(products domain.ProductRepository, logger *log.Entry) *Service {
	if logger == nil {
		logger = log.WithField("component", "pricing")
	}
	return &Service{
		products: products,
		logger:   logger,
	}
}

// PriceOrder валидирует позиции заказа и возвращает несохранённый заказ
// с нормализованными идентификаторами и рассчитанной суммой.
//
// Разрешение товаров выполняется по принципу «всё или ничего»: если хотя бы
// один идентификатор не разрешается, заказ целиком отклоняется с
// ErrProductsNotFound. Дубликаты позиций не схлопываются — каждая строка
// вносит свой вклад количество × цена. Функция не пишет в хранилище;
// расчёт завершается целиком до единственной вставки заказа.
func (s *Service) PriceOrder(userID string, items []domain.OrderItem) (domain.Order, error) {
	order := domain.Order{
		UserID: userID,
		Items:  items,
	}
	order.Normalize()

	if errs := order.ValidateInvariants(); len(errs) > 0 {
		return domain.Order{}, errors.Join(errs...)
	}

	distinct := order.DistinctProductIDs()
	products, err := s.products.FindByIDs(distinct)
	if err != nil {
		return domain.Order{}, fmt.Errorf("resolve products: %w", err)
	}

	priceByID := make(map[string]float64, len(products))
	for _, product := range products {
		priceByID[product.ID] = product.Price
	}

	if len(priceByID) != len(distinct) {
		s.logger.WithFields(log.Fields{
			"user_id":   order.UserID,
			"requested": len(distinct),
			"resolved":  len(priceByID),
		}).Warn("order references unresolvable products")
		return domain.Order{}, domain.ErrProductsNotFound
	}

	var total float64
	for _, item := range order.Items {
		total += priceByID[item.ProductID] * float64(item.Quantity)
	}

	order.Total = total
	order.CreatedAt = time.Now().UTC()
	return order, nil
}
