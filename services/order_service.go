package services

import (
	"errors"
	"time"

	"github.com/LINMINXUAN/aphelion-apollo-pos/entity"
	"github.com/LINMINXUAN/aphelion-apollo-pos/pkg/apperr"
	"github.com/LINMINXUAN/aphelion-apollo-pos/repository"

	"github.com/rs/zerolog"
)

// unknownProductName is snapshotted onto an order line whose product no
// longer exists, e.g. deleted after being added to a client-side cart.
const unknownProductName = "未知商品"

type OrderService struct {
	store   repository.Store
	catalog *CatalogService
	policy  TransitionPolicy
	log     zerolog.Logger
}

func NewOrderService(store repository.Store, catalog *CatalogService, policy TransitionPolicy, log zerolog.Logger) *OrderService {
	if policy == nil {
		policy = AnyTransition{}
	}
	return &OrderService{
		store:   store,
		catalog: catalog,
		policy:  policy,
		log:     log.With().Str("component", "orders").Logger(),
	}
}

// ----- DTOs from Controller -----

type OrderItemInput struct {
	ProductID uint   `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
	Modifiers string `json:"modifiers"`
}

type CreateOrderInput struct {
	Type           string           `json:"type" binding:"required"`
	TableNumber    string           `json:"tableNumber"`
	IdempotencyKey string           `json:"idempotencyKey"`
	Items          []OrderItemInput `json:"items" binding:"required,min=1"`
}

// Create prices and persists a new order. Line prices and names are
// snapshotted from the catalog at this moment and never re-resolved: later
// catalog edits must not alter the financial record.
func (s *OrderService) Create(in CreateOrderInput) (*entity.Order, error) {
	orderType := entity.OrderType(in.Type)
	if !orderType.Valid() {
		return nil, apperr.New(apperr.Validation, "訂單類型不正確")
	}
	if len(in.Items) == 0 {
		return nil, apperr.New(apperr.Validation, "訂單內容不能為空")
	}

	if in.IdempotencyKey != "" {
		existing, err := s.store.FindOrderByIdempotencyKey(in.IdempotencyKey)
		if err == nil {
			s.log.Info().Uint("id", existing.ID).Str("key", in.IdempotencyKey).
				Msg("duplicate order submission, returning existing order")
			return existing, nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
	}

	items := make([]entity.OrderItem, 0, len(in.Items))
	var total float64
	for _, line := range in.Items {
		name := unknownProductName
		var unitPrice float64
		product, err := s.catalog.GetProduct(line.ProductID)
		switch {
		case err == nil:
			name = product.Name
			unitPrice = product.Price
		case apperr.IsKind(err, apperr.NotFound):
			// Degrade gracefully: the line survives with a sentinel name and
			// zero price instead of failing the whole order.
		default:
			return nil, err
		}

		subtotal := unitPrice * float64(line.Quantity)
		total += subtotal
		items = append(items, entity.OrderItem{
			ProductID:   line.ProductID,
			ProductName: name,
			Quantity:    line.Quantity,
			UnitPrice:   unitPrice,
			Modifiers:   line.Modifiers,
			Subtotal:    subtotal,
		})
	}

	order := &entity.Order{
		Status:         entity.OrderPending,
		Type:           orderType,
		TableNumber:    in.TableNumber,
		TotalAmount:    total,
		IdempotencyKey: in.IdempotencyKey,
		CreatedAt:      time.Now().UTC(),
		Items:          items,
	}
	if err := s.store.InsertOrder(order); err != nil {
		return nil, err
	}
	s.log.Info().Uint("id", order.ID).Float64("total", order.TotalAmount).
		Int("items", len(order.Items)).Msg("order created")
	return order, nil
}

// List returns orders newest-first. page/limit of 0 disables paging.
func (s *OrderService) List(page, limit int) ([]entity.Order, error) {
	orders, err := s.store.ListOrders()
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		return orders, nil
	}
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * limit
	if offset >= len(orders) {
		return []entity.Order{}, nil
	}
	end := offset + limit
	if end > len(orders) {
		end = len(orders)
	}
	return orders[offset:end], nil
}

func (s *OrderService) Get(id uint) (*entity.Order, error) {
	order, err := s.store.GetOrder(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.New(apperr.NotFound, "訂單不存在")
		}
		return nil, err
	}
	return order, nil
}

func (s *OrderService) UpdateStatus(id uint, status string) (*entity.Order, error) {
	next := entity.OrderStatus(status)
	if !next.Valid() {
		return nil, apperr.New(apperr.Validation, "訂單狀態不正確")
	}

	order, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if !s.policy.Allowed(order.Status, next) {
		return nil, apperr.New(apperr.Conflict, "訂單狀態無法變更")
	}
	if err := s.store.UpdateOrderStatus(id, next); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.New(apperr.NotFound, "訂單不存在")
		}
		return nil, err
	}
	order.Status = next
	return order, nil
}
