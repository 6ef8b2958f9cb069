package repository

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/LINMINXUAN/aphelion-apollo-pos/entity"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newBlobStore(t *testing.T) (*BlobStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pos-local-db.json")
	s, err := OpenBlobStore(path, zerolog.Nop())
	require.NoError(t, err)
	return s, path
}

func TestBlobStoreSeedsWhenEmpty(t *testing.T) {
	s, path := newBlobStore(t)

	categories, err := s.ListCategories()
	require.NoError(t, err)
	require.Len(t, categories, 3)
	require.Equal(t, "主餐", categories[0].Name)

	products, err := s.ListProducts()
	require.NoError(t, err)
	require.Len(t, products, 3)

	orders, err := s.ListOrders()
	require.NoError(t, err)
	require.Empty(t, orders)

	// seed must already be on disk
	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestBlobStoreResetsOnCorruptedDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pos-local-db.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s, err := OpenBlobStore(path, zerolog.Nop())
	require.NoError(t, err)

	categories, err := s.ListCategories()
	require.NoError(t, err)
	require.Len(t, categories, 3)
}

func TestBlobStoreSurvivesReopen(t *testing.T) {
	s, path := newBlobStore(t)

	category := &entity.Category{Name: "限定", Description: "", DisplayOrder: 9}
	require.NoError(t, s.InsertCategory(category))
	require.Equal(t, uint(4), category.ID)

	reopened, err := OpenBlobStore(path, zerolog.Nop())
	require.NoError(t, err)

	got, err := reopened.GetCategory(4)
	require.NoError(t, err)
	require.Equal(t, "限定", got.Name)

	// counters persist too: the next id continues the sequence
	next := &entity.Category{Name: "早鳥", DisplayOrder: 10}
	require.NoError(t, reopened.InsertCategory(next))
	require.Equal(t, uint(5), next.ID)
}

func TestBlobStoreIDsAreMonotonicAfterDelete(t *testing.T) {
	s, _ := newBlobStore(t)

	p := &entity.Product{Name: "豆漿", Price: 25, CategoryID: 2, Available: true}
	require.NoError(t, s.InsertProduct(p))
	require.Equal(t, uint(4), p.ID)

	require.NoError(t, s.DeleteProduct(p.ID))

	again := &entity.Product{Name: "紅茶", Price: 20, CategoryID: 2, Available: true}
	require.NoError(t, s.InsertProduct(again))
	require.Equal(t, uint(5), again.ID, "deleted ids must not be reused")
}

func TestBlobStoreCategoryOrderingTiesKeepInsertionOrder(t *testing.T) {
	s, _ := newBlobStore(t)

	first := &entity.Category{Name: "同序一", DisplayOrder: 5}
	second := &entity.Category{Name: "同序二", DisplayOrder: 5}
	require.NoError(t, s.InsertCategory(first))
	require.NoError(t, s.InsertCategory(second))

	categories, err := s.ListCategories()
	require.NoError(t, err)
	require.Len(t, categories, 5)
	require.Equal(t, "同序一", categories[3].Name)
	require.Equal(t, "同序二", categories[4].Name)
}

func TestBlobStoreInsertOrderIsAtomicAndAssignsItemIDs(t *testing.T) {
	s, path := newBlobStore(t)

	order := &entity.Order{
		Status:      entity.OrderPending,
		Type:        entity.OrderDineIn,
		TableNumber: "A1",
		TotalAmount: 110,
		CreatedAt:   time.Now().UTC(),
		Items: []entity.OrderItem{
			{ProductID: 1, ProductName: "招牌蛋堡", Quantity: 2, UnitPrice: 55, Subtotal: 110},
		},
	}
	require.NoError(t, s.InsertOrder(order))
	require.Equal(t, uint(1), order.ID)
	require.Equal(t, uint(1), order.Items[0].ID)
	require.Equal(t, order.ID, order.Items[0].OrderID)

	reopened, err := OpenBlobStore(path, zerolog.Nop())
	require.NoError(t, err)
	got, err := reopened.GetOrder(order.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	require.Equal(t, 110.0, got.TotalAmount)
}

func TestBlobStoreNotFound(t *testing.T) {
	s, _ := newBlobStore(t)

	_, err := s.GetCategory(99)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = s.GetProduct(99)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = s.GetOrder(99)
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, s.UpdateOrderStatus(99, entity.OrderServed), ErrNotFound)
	require.ErrorIs(t, s.DeleteCategory(99), ErrNotFound)
}
