package rest

import "github.com/vladislavdragonenkov/storefront/internal/domain"

// Типизированные формы запросов и ответов API. Полезные нагрузки проверяются
// на границе до передачи в доменный слой.

type createProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Size        string  `json:"size"`
}

type productResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Size        string  `json:"size,omitempty"`
}

type orderItemPayload struct {
	ProductID string `json:"product_id"`
	Quantity  int32  `json:"quantity"`
}

type createOrderRequest struct {
	UserID string             `json:"user_id"`
	Items  []orderItemPayload `json:"items"`
}

type orderResponse struct {
	ID     string             `json:"id"`
	UserID string             `json:"user_id"`
	Items  []orderItemPayload `json:"items"`
	Total  float64            `json:"total"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func toProductResponse(p domain.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Size:        p.Size,
	}
}

func toProductResponses(products []domain.Product) []productResponse {
	result := make([]productResponse, 0, len(products))
	for _, p := range products {
		result = append(result, toProductResponse(p))
	}
	return result
}

func toOrderItems(payload []orderItemPayload) []domain.OrderItem {
	items := make([]domain.OrderItem, 0, len(payload))
	for _, item := range payload {
		items = append(items, domain.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	return items
}

func toOrderResponse(o domain.Order) orderResponse {
	items := make([]orderItemPayload, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, orderItemPayload{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	return orderResponse{
		ID:     o.ID,
		UserID: o.UserID,
		Items:  items,
		Total:  o.Total,
	}
}

func toOrderResponses(orders []domain.Order) []orderResponse {
	result := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		result = append(result, toOrderResponse(o))
	}
	return result
}
