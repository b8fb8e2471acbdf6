package memory

import (
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// productRepositoryInMemory — простая in-memory реализация ProductRepository.
type productRepositoryInMemory struct {
	mu    sync.RWMutex
	items map[string]domain.Product
	// order хранит ID в порядке вставки; ObjectID монотонно растут внутри
	// процесса, так что порядок вставки совпадает с возрастанием ID.
	order []string
}

// NewProductRepository возвращает in-memory репозиторий для локальной разработки и тестов.
func NewProductRepository() domain.ProductRepository {
	return &productRepositoryInMemory{
		items: make(map[string]domain.Product),
	}
}

// Create назначает товару новый ID и сохраняет его.
func (r *productRepositoryInMemory) Create(product domain.Product) (domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product.ID = primitive.NewObjectID().Hex()
	r.items[product.ID] = product
	r.order = append(r.order, product.ID)
	return product, nil
}

// FindByIDs возвращает не более одной записи на каждый уникальный идентификатор.
func (r *productRepositoryInMemory) FindByIDs(ids []string) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{}, len(ids))
	result := make([]domain.Product, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if product, ok := r.items[id]; ok {
			result = append(result, product)
		}
	}
	return result, nil
}

// List возвращает товары по фильтру в порядке возрастания ID.
func (r *productRepositoryInMemory) List(filter domain.ProductFilter) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]domain.Product, 0, len(r.order))
	for _, id := range r.order {
		product := r.items[id]
		if filter.Name != "" && !strings.Contains(product.Name, domain.Normalize(filter.Name)) {
			continue
		}
		if filter.Size != "" && product.Size != filter.Size {
			continue
		}
		matched = append(matched, product)
	}

	if filter.Offset >= len(matched) {
		return []domain.Product{}, nil
	}
	matched = matched[filter.Offset:]
	if filter.Limit > 0 && len(matched) > filter.Limit {
		matched = matched[:filter.Limit]
	}

	return matched, nil
}

var _ domain.ProductRepository = (*productRepositoryInMemory)(nil)
