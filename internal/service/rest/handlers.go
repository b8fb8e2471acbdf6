// Package rest реализует HTTP API поверх доменных репозиториев и сервиса расчёта.
package rest

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/storefront/internal/metrics"
	"github.com/vladislavdragonenkov/storefront/internal/service/pricing"
)

// Handler связывает HTTP-маршруты с доменными зависимостями.
type Handler struct {
	products domain.ProductRepository
	orders   domain.OrderRepository
	pricing  *pricing.Service
	// events публикует order.created в Kafka; nil отключает публикацию.
	events *kafka.Producer
	logger *log.Entry
}

// NewHandler конструирует обработчик с зависимостями.
func NewHandler(
	products domain.ProductRepository,
	orders domain.OrderRepository,
	pricingSvc *pricing.Service,
	events *kafka.Producer,
	logger *log.Entry,
) *Handler {
	if logger == nil {
		logger = log.WithField("component", "rest")
	}
	return &Handler{
		products: products,
		orders:   orders,
		pricing:  pricingSvc,
		events:   events,
		logger:   logger,
	}
}

// Router собирает маршруты API; httpMetrics может быть nil (в тестах).
func (h *Handler) Router(httpMetrics *metrics.HTTPMetrics) *mux.Router {
	r := mux.NewRouter()
	r.Handle("/products", instrument(httpMetrics, "create_product", h.createProduct)).Methods(http.MethodPost)
	r.Handle("/products", instrument(httpMetrics, "list_products", h.listProducts)).Methods(http.MethodGet)
	r.Handle("/orders", instrument(httpMetrics, "create_order", h.createOrder)).Methods(http.MethodPost)
	r.Handle("/orders/{user_id}", instrument(httpMetrics, "list_orders", h.listOrders)).Methods(http.MethodGet)
	return r
}

// createProduct обрабатывает POST /products.
func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product := domain.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Size:        req.Size,
		CreatedAt:   time.Now().UTC(),
	}
	product.Normalize()

	if errs := product.ValidateInvariants(); len(errs) > 0 {
		writeErrorMessage(w, http.StatusBadRequest, joinErrors(errs))
		return
	}

	created, err := h.products.Create(product)
	if err != nil {
		h.logger.WithError(err).Error("failed to create product")
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toProductResponse(created))
}

// listProducts обрабатывает GET /products.
func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := parseListParams(r)
	if err != nil {
		writeErrorMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	filter := domain.ProductFilter{
		Name:   r.URL.Query().Get("name"),
		Size:   domain.Normalize(r.URL.Query().Get("size")),
		Limit:  limit,
		Offset: offset,
	}

	products, err := h.products.List(filter)
	if err != nil {
		h.logger.WithError(err).Error("failed to list products")
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toProductResponses(products))
}

// createOrder обрабатывает POST /orders: расчёт выполняется целиком до
// единственной вставки, частичные записи невозможны.
func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := h.pricing.PriceOrder(req.UserID, toOrderItems(req.Items))
	if err != nil {
		h.writeError(w, err)
		return
	}

	created, err := h.orders.Create(order)
	if err != nil {
		h.logger.WithError(err).Error("failed to persist order")
		h.writeError(w, err)
		return
	}

	h.publishOrderCreated(created)

	writeJSON(w, http.StatusCreated, toOrderResponse(created))
}

// listOrders обрабатывает GET /orders/{user_id}.
func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := parseListParams(r)
	if err != nil {
		writeErrorMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	userID := domain.Normalize(mux.Vars(r)["user_id"])

	orders, err := h.orders.ListByUser(userID, limit, offset)
	if err != nil {
		h.logger.WithError(err).Error("failed to list orders")
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toOrderResponses(orders))
}

// publishOrderCreated отправляет событие после вставки. Ошибка публикации
// не влияет на ответ клиенту: заказ уже сохранён.
func (h *Handler) publishOrderCreated(order domain.Order) {
	if h.events == nil {
		return
	}

	event := kafka.NewOrderCreatedEvent(order.ID, order.UserID, order.Total)
	if err := h.events.PublishEvent(kafka.TopicOrderEvents, order.ID, event); err != nil {
		h.logger.WithError(err).WithField("order_id", order.ID).Warn("failed to publish order event")
	}
}
