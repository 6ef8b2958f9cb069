package repository

import (
	"errors"

	"github.com/LINMINXUAN/aphelion-apollo-pos/entity"
)

// ErrNotFound reports that the requested record does not exist in the store.
var ErrNotFound = errors.New("record not found")

// Store is the entity-store contract shared by both persistence backends.
// Identifier assignment is monotonic per entity type and never reused within
// a running instance. Implementations only move bytes; every business rule
// (validation, referential checks, pricing) lives in the service layer so the
// two backends cannot drift apart.
//
// Ordering contract: categories come back ascending by display order with
// insertion order breaking ties, products newest-first, orders newest-first
// with their items attached.
type Store interface {
	ListCategories() ([]entity.Category, error)
	GetCategory(id uint) (*entity.Category, error)
	InsertCategory(category *entity.Category) error
	UpdateCategory(category *entity.Category) error
	DeleteCategory(id uint) error
	CountCategories() (int64, error)

	ListProducts() ([]entity.Product, error)
	GetProduct(id uint) (*entity.Product, error)
	InsertProduct(product *entity.Product) error
	UpdateProduct(product *entity.Product) error
	DeleteProduct(id uint) error
	CountProducts() (int64, error)
	CountProductsByCategory(categoryID uint) (int64, error)

	ListOrders() ([]entity.Order, error)
	GetOrder(id uint) (*entity.Order, error)
	FindOrderByIdempotencyKey(key string) (*entity.Order, error)
	// InsertOrder persists the order and all of its items as one atomic unit;
	// a partially written order must never be observable.
	InsertOrder(order *entity.Order) error
	UpdateOrderStatus(id uint, status entity.OrderStatus) error
}
