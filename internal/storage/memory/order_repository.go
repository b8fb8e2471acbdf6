package memory

import (
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// orderRepositoryInMemory — простая in-memory реализация OrderRepository.
type orderRepositoryInMemory struct {
	mu    sync.RWMutex
	items map[string]domain.Order
	order []string
}

// NewOrderRepository возвращает in-memory репозиторий для локальной разработки и тестов.
func NewOrderRepository() domain.OrderRepository {
	return &orderRepositoryInMemory{
		items: make(map[string]domain.Order),
	}
}

// Create назначает заказу новый ID и сохраняет его одной операцией.
func (r *orderRepositoryInMemory) Create(order domain.Order) (domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order.ID = primitive.NewObjectID().Hex()
	// Сохраняем копию позиций, чтобы избежать непредсказуемых мутаций извне.
	items := make([]domain.OrderItem, len(order.Items))
	copy(items, order.Items)
	order.Items = items

	r.items[order.ID] = order
	r.order = append(r.order, order.ID)
	return order, nil
}

// ListByUser возвращает заказы пользователя в порядке возрастания ID.
func (r *orderRepositoryInMemory) ListByUser(userID string, limit, offset int) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]domain.Order, 0, len(r.order))
	for _, id := range r.order {
		order := r.items[id]
		if order.UserID != userID {
			continue
		}
		matched = append(matched, order)
	}

	if offset >= len(matched) {
		return []domain.Order{}, nil
	}
	matched = matched[offset:]
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}

	return matched, nil
}

var _ domain.OrderRepository = (*orderRepositoryInMemory)(nil)
