package services

import (
	"path/filepath"
	"testing"

	"github.com/LINMINXUAN/aphelion-apollo-pos/pkg/apperr"
	"github.com/LINMINXUAN/aphelion-apollo-pos/repository"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) repository.Store {
	t.Helper()
	store, err := repository.OpenBlobStore(filepath.Join(t.TempDir(), "db.json"), zerolog.Nop())
	require.NoError(t, err)
	return store
}

func newCatalog(t *testing.T) *CatalogService {
	t.Helper()
	return NewCatalogService(newTestStore(t), zerolog.Nop())
}

func intPtr(v int) *int { return &v }

func TestListCategoriesSortedByDisplayOrder(t *testing.T) {
	catalog := newCatalog(t)

	_, err := catalog.CreateCategory(CategoryInput{Name: "宵夜", DisplayOrder: intPtr(1)})
	require.NoError(t, err)

	categories, err := catalog.ListCategories()
	require.NoError(t, err)
	for i := 1; i < len(categories); i++ {
		require.LessOrEqual(t, categories[i-1].DisplayOrder, categories[i].DisplayOrder)
	}
}

func TestCreateCategoryDefaultsAppendAtEnd(t *testing.T) {
	catalog := newCatalog(t)

	category, err := catalog.CreateCategory(CategoryInput{Name: "  湯品  "})
	require.NoError(t, err)
	require.Equal(t, "湯品", category.Name)
	require.Equal(t, 3, category.DisplayOrder, "three seeded categories precede it")
	require.Equal(t, "", category.Description)
}

func TestCreateCategoryValidatesNameLength(t *testing.T) {
	catalog := newCatalog(t)

	_, err := catalog.CreateCategory(CategoryInput{Name: "湯"})
	require.True(t, apperr.IsKind(err, apperr.Validation))

	_, err = catalog.CreateCategory(CategoryInput{Name: "   "})
	require.True(t, apperr.IsKind(err, apperr.Validation))
}

func TestUpdateCategoryKeepsDisplayOrderWhenUnset(t *testing.T) {
	catalog := newCatalog(t)

	updated, err := catalog.UpdateCategory(2, CategoryInput{Name: "手沖飲品"})
	require.NoError(t, err)
	require.Equal(t, "手沖飲品", updated.Name)
	require.Equal(t, 1, updated.DisplayOrder, "previous value survives")

	_, err = catalog.UpdateCategory(99, CategoryInput{Name: "不存在的"})
	require.True(t, apperr.IsKind(err, apperr.NotFound))
}

func TestUpdateCategoryNameReflectsOnProductReads(t *testing.T) {
	catalog := newCatalog(t)

	_, err := catalog.UpdateCategory(1, CategoryInput{Name: "招牌主餐"})
	require.NoError(t, err)

	product, err := catalog.GetProduct(1)
	require.NoError(t, err)
	require.Equal(t, "招牌主餐", product.CategoryName)
}

func TestDeleteCategoryBlockedWhileProductsReferenceIt(t *testing.T) {
	catalog := newCatalog(t)

	err := catalog.DeleteCategory(1)
	require.True(t, apperr.IsKind(err, apperr.Conflict))

	empty, err := catalog.CreateCategory(CategoryInput{Name: "待刪分類"})
	require.NoError(t, err)
	require.NoError(t, catalog.DeleteCategory(empty.ID))

	categories, err := catalog.ListCategories()
	require.NoError(t, err)
	for _, c := range categories {
		require.NotEqual(t, empty.ID, c.ID)
	}
}

func TestProductRoundTrip(t *testing.T) {
	catalog := newCatalog(t)

	in := ProductInput{
		Name:        "鮪魚吐司",
		Description: "現烤",
		Price:       50,
		CategoryID:  1,
		Available:   true,
		ImageURL:    "https://example.test/tuna.jpg",
	}
	created, err := catalog.CreateProduct(in)
	require.NoError(t, err)
	require.Equal(t, "主餐", created.CategoryName)

	got, err := catalog.GetProduct(created.ID)
	require.NoError(t, err)
	require.Equal(t, in.Name, got.Name)
	require.Equal(t, in.Description, got.Description)
	require.Equal(t, in.Price, got.Price)
	require.Equal(t, in.CategoryID, got.CategoryID)
	require.Equal(t, in.Available, got.Available)
	require.Equal(t, in.ImageURL, got.ImageURL)
}

func TestProductCategoryNameFallsBackWhenUncategorized(t *testing.T) {
	catalog := newCatalog(t)

	orphan, err := catalog.CreateProduct(ProductInput{Name: "神秘商品", Price: 10})
	require.NoError(t, err)
	require.Equal(t, uncategorizedName, orphan.CategoryName)

	dangling, err := catalog.CreateProduct(ProductInput{Name: "懸空商品", Price: 10, CategoryID: 77})
	require.NoError(t, err)
	require.Equal(t, uncategorizedName, dangling.CategoryName)
}

func TestProductValidation(t *testing.T) {
	catalog := newCatalog(t)

	_, err := catalog.CreateProduct(ProductInput{Name: "  ", Price: 10})
	require.True(t, apperr.IsKind(err, apperr.Validation))

	_, err = catalog.CreateProduct(ProductInput{Name: "賠錢貨", Price: -1})
	require.True(t, apperr.IsKind(err, apperr.Validation))
}

func TestDeleteProductIsUnconditional(t *testing.T) {
	catalog := newCatalog(t)
	store := catalog.store
	orders := NewOrderService(store, catalog, AnyTransition{}, zerolog.Nop())

	_, err := orders.Create(CreateOrderInput{
		Type:  "TAKEAWAY",
		Items: []OrderItemInput{{ProductID: 1, Quantity: 1}},
	})
	require.NoError(t, err)

	// historical order items never block product deletion
	require.NoError(t, catalog.DeleteProduct(1))

	_, err = catalog.GetProduct(1)
	require.True(t, apperr.IsKind(err, apperr.NotFound))
}

func TestToggleAvailability(t *testing.T) {
	catalog := newCatalog(t)

	product, err := catalog.ToggleAvailability(1)
	require.NoError(t, err)
	require.False(t, product.Available)

	product, err = catalog.ToggleAvailability(1)
	require.NoError(t, err)
	require.True(t, product.Available)
}
