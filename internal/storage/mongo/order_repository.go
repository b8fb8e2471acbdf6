package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

type orderItemDocument struct {
	ProductID string `bson:"product_id"`
	Quantity  int32  `bson:"quantity"`
}

type orderDocument struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty"`
	UserID    string              `bson:"user_id"`
	Items     []orderItemDocument `bson:"items"`
	Total     float64             `bson:"total"`
	CreatedAt time.Time           `bson:"created_at"`
}

func (d orderDocument) toDomain() domain.Order {
	items := make([]domain.OrderItem, 0, len(d.Items))
	for _, item := range d.Items {
		items = append(items, domain.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	return domain.Order{
		ID:        d.ID.Hex(),
		UserID:    d.UserID,
		Items:     items,
		Total:     d.Total,
		CreatedAt: d.CreatedAt,
	}
}

type orderRepository struct {
	collection *mongo.Collection
}

// NewOrderRepository создаёт MongoDB-реализацию OrderRepository.
func NewOrderRepository(store *Store) domain.OrderRepository {
	return &orderRepository{
		collection: store.Database().Collection(ordersCollection),
	}
}

// Create сохраняет денормализованный документ заказа одной вставкой.
func (r *orderRepository) Create(order domain.Order) (domain.Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	items := make([]orderItemDocument, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, orderItemDocument{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	doc := orderDocument{
		UserID:    order.UserID,
		Items:     items,
		Total:     order.Total,
		CreatedAt: order.CreatedAt,
	}

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return domain.Order{}, wrapStoreError("insert order", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return domain.Order{}, wrapStoreError("insert order", mongo.ErrNilDocument)
	}
	order.ID = oid.Hex()
	return order, nil
}

func (r *orderRepository) ListByUser(userID string, limit, offset int) ([]domain.Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, wrapStoreError("list orders", err)
	}

	var docs []orderDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, wrapStoreError("decode orders", err)
	}

	orders := make([]domain.Order, 0, len(docs))
	for _, doc := range docs {
		orders = append(orders, doc.toDomain())
	}
	return orders, nil
}

var _ domain.OrderRepository = (*orderRepository)(nil)
