package services

import (
	"testing"
	"time"

	"github.com/LINMINXUAN/aphelion-apollo-pos/entity"
	"github.com/LINMINXUAN/aphelion-apollo-pos/repository"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

var statsNow = time.Date(2026, 8, 28, 14, 0, 0, 0, time.UTC)

func newStatsService(t *testing.T) (*StatisticsService, repository.Store) {
	t.Helper()
	store := newTestStore(t)
	stats := NewStatisticsService(store, zerolog.Nop())
	stats.now = func() time.Time { return statsNow }
	return stats, store
}

func insertOrderAt(t *testing.T, store repository.Store, createdAt time.Time, items []entity.OrderItem) {
	t.Helper()
	var total float64
	for _, item := range items {
		total += item.Subtotal
	}
	order := &entity.Order{
		Status:      entity.OrderPending,
		Type:        entity.OrderTakeaway,
		TotalAmount: total,
		CreatedAt:   createdAt,
		Items:       items,
	}
	require.NoError(t, store.InsertOrder(order))
}

func TestTodayStatistics(t *testing.T) {
	stats, store := newStatsService(t)

	insertOrderAt(t, store, statsNow, []entity.OrderItem{
		{ProductID: 1, ProductName: "招牌蛋堡", Quantity: 2, UnitPrice: 55, Subtotal: 110},
	})
	insertOrderAt(t, store, statsNow.Add(-2*time.Hour), []entity.OrderItem{
		{ProductID: 2, ProductName: "熱美式", Quantity: 1, UnitPrice: 45, Subtotal: 45},
	})
	// yesterday: excluded from today's figures
	insertOrderAt(t, store, statsNow.AddDate(0, 0, -1), []entity.OrderItem{
		{ProductID: 3, ProductName: "可頌", Quantity: 1, UnitPrice: 40, Subtotal: 40},
	})

	got, err := stats.Today()
	require.NoError(t, err)
	require.Equal(t, 2, got.TodayOrders)
	require.Equal(t, 155.0, got.TodayRevenue)
	require.Equal(t, 3, got.TotalProducts, "seeded catalog")
	require.Equal(t, 0, got.LowStockCount, "stock tracking is stubbed")
}

func TestRevenueBucketsAreDenseAndAscending(t *testing.T) {
	stats, store := newStatsService(t)

	got, err := stats.Revenue(3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, "2026-08-26", got[0].Date)
	require.Equal(t, "2026-08-27", got[1].Date)
	require.Equal(t, "2026-08-28", got[2].Date)
	for _, bucket := range got {
		require.Equal(t, 0.0, bucket.Revenue)
	}

	insertOrderAt(t, store, statsNow, []entity.OrderItem{
		{ProductID: 1, ProductName: "招牌蛋堡", Quantity: 1, UnitPrice: 55, Subtotal: 55},
	})
	insertOrderAt(t, store, statsNow.AddDate(0, 0, -2), []entity.OrderItem{
		{ProductID: 2, ProductName: "熱美式", Quantity: 2, UnitPrice: 45, Subtotal: 90},
	})
	// outside the window: silently ignored
	insertOrderAt(t, store, statsNow.AddDate(0, 0, -10), []entity.OrderItem{
		{ProductID: 3, ProductName: "可頌", Quantity: 1, UnitPrice: 40, Subtotal: 40},
	})

	got, err = stats.Revenue(3)
	require.NoError(t, err)
	require.Equal(t, 90.0, got[0].Revenue)
	require.Equal(t, 0.0, got[1].Revenue)
	require.Equal(t, 55.0, got[2].Revenue)
}

func TestRevenueDefaultsToSevenDays(t *testing.T) {
	stats, _ := newStatsService(t)

	got, err := stats.Revenue(0)
	require.NoError(t, err)
	require.Len(t, got, 7)
}

func TestTopProductsMergesByName(t *testing.T) {
	stats, store := newStatsService(t)

	// two distinct products share the display name 咖啡
	insertOrderAt(t, store, statsNow, []entity.OrderItem{
		{ProductID: 10, ProductName: "咖啡", Quantity: 2, UnitPrice: 50, Subtotal: 100},
		{ProductID: 1, ProductName: "招牌蛋堡", Quantity: 1, UnitPrice: 55, Subtotal: 55},
	})
	insertOrderAt(t, store, statsNow, []entity.OrderItem{
		{ProductID: 11, ProductName: "咖啡", Quantity: 3, UnitPrice: 60, Subtotal: 180},
	})

	got, err := stats.TopProducts(5)
	require.NoError(t, err)
	require.Len(t, got, 2)

	require.Equal(t, "咖啡", got[0].ProductName)
	require.Equal(t, 5, got[0].TotalSold)
	require.Equal(t, 280.0, got[0].TotalRevenue)
	// the id is only the ordinal rank, not a catalog identifier
	require.Equal(t, uint(1), got[0].ProductID)
	require.Equal(t, uint(2), got[1].ProductID)
}

func TestTopProductsByIDKeepsSameNamedProductsApart(t *testing.T) {
	stats, store := newStatsService(t)

	insertOrderAt(t, store, statsNow, []entity.OrderItem{
		{ProductID: 10, ProductName: "咖啡", Quantity: 2, UnitPrice: 50, Subtotal: 100},
	})
	insertOrderAt(t, store, statsNow, []entity.OrderItem{
		{ProductID: 11, ProductName: "咖啡", Quantity: 3, UnitPrice: 60, Subtotal: 180},
	})

	got, err := stats.TopProductsByID(5)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, uint(11), got[0].ProductID)
	require.Equal(t, 3, got[0].TotalSold)
	require.Equal(t, uint(10), got[1].ProductID)
}

func TestTopProductsHonorsLimit(t *testing.T) {
	stats, store := newStatsService(t)

	names := []string{"一", "二", "三", "四", "五", "六"}
	for i, name := range names {
		insertOrderAt(t, store, statsNow, []entity.OrderItem{
			{ProductID: uint(i + 1), ProductName: name + "號餐", Quantity: i + 1, UnitPrice: 10, Subtotal: float64(10 * (i + 1))},
		})
	}

	got, err := stats.TopProducts(5)
	require.NoError(t, err)
	require.Len(t, got, 5)
	require.Equal(t, "六號餐", got[0].ProductName)
	require.Equal(t, 6, got[0].TotalSold)
}
