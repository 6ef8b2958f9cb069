package services

import (
	"sort"
	"time"

	"github.com/LINMINXUAN/aphelion-apollo-pos/repository"

	"github.com/rs/zerolog"
)

const dayLayout = "2006-01-02"

type TodayStatistics struct {
	TodayRevenue  float64 `json:"todayRevenue"`
	TodayOrders   int     `json:"todayOrders"`
	TotalProducts int     `json:"totalProducts"`
	// Stock tracking is not implemented; the field is kept for the dashboard
	// and always reads 0.
	LowStockCount int `json:"lowStockCount"`
}

type RevenueData struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

type TopProduct struct {
	ProductID    uint    `json:"productId"`
	ProductName  string  `json:"productName"`
	TotalSold    int     `json:"totalSold"`
	TotalRevenue float64 `json:"totalRevenue"`
}

// StatisticsService derives every figure from the stored order history on
// each call; there is no separate ledger or materialized view, so every
// method is O(total orders) per call. Acceptable for a single terminal.
type StatisticsService struct {
	store repository.Store
	log   zerolog.Logger
	now   func() time.Time
}

func NewStatisticsService(store repository.Store, log zerolog.Logger) *StatisticsService {
	return &StatisticsService{
		store: store,
		log:   log.With().Str("component", "statistics").Logger(),
		now:   time.Now,
	}
}

func (s *StatisticsService) Today() (*TodayStatistics, error) {
	orders, err := s.store.ListOrders()
	if err != nil {
		return nil, err
	}

	today := s.now().UTC().Format(dayLayout)
	stats := &TodayStatistics{}
	for _, o := range orders {
		if o.CreatedAt.UTC().Format(dayLayout) != today {
			continue
		}
		stats.TodayOrders++
		stats.TodayRevenue += o.TotalAmount
	}

	products, err := s.store.CountProducts()
	if err != nil {
		return nil, err
	}
	stats.TotalProducts = int(products)
	return stats, nil
}

// Revenue returns one bucket per calendar day, oldest first, ending today.
// Days without orders stay at 0; orders outside the window are ignored.
func (s *StatisticsService) Revenue(days int) ([]RevenueData, error) {
	if days <= 0 {
		days = 7
	}

	buckets := make([]RevenueData, 0, days)
	index := make(map[string]int, days)
	today := s.now().UTC()
	for i := days - 1; i >= 0; i-- {
		date := today.AddDate(0, 0, -i).Format(dayLayout)
		index[date] = len(buckets)
		buckets = append(buckets, RevenueData{Date: date})
	}

	orders, err := s.store.ListOrders()
	if err != nil {
		return nil, err
	}
	for _, o := range orders {
		if i, ok := index[o.CreatedAt.UTC().Format(dayLayout)]; ok {
			buckets[i].Revenue += o.TotalAmount
		}
	}
	return buckets, nil
}

// TopProducts ranks order lines by units sold, grouped by product name.
// Grouping by the snapshotted name means two distinct products sharing a
// display name merge into one entry, and the returned productId is only the
// ordinal rank, not a real identifier. Downstream consumers may rely on
// this shape, so it is preserved as-is; TopProductsByID is the id-accurate
// alternative.
func (s *StatisticsService) TopProducts(limit int) ([]TopProduct, error) {
	if limit <= 0 {
		limit = 5
	}

	orders, err := s.store.ListOrders()
	if err != nil {
		return nil, err
	}

	index := make(map[string]int)
	ranked := make([]TopProduct, 0)
	for _, o := range orders {
		for _, item := range o.Items {
			i, ok := index[item.ProductName]
			if !ok {
				i = len(ranked)
				index[item.ProductName] = i
				ranked = append(ranked, TopProduct{ProductName: item.ProductName})
			}
			ranked[i].TotalSold += item.Quantity
			ranked[i].TotalRevenue += item.Subtotal
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalSold > ranked[j].TotalSold
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	for i := range ranked {
		ranked[i].ProductID = uint(i + 1)
	}
	return ranked, nil
}

// TopProductsByID is the id-grouped variant: entries keep the true product
// identifier and products sharing a display name stay separate.
func (s *StatisticsService) TopProductsByID(limit int) ([]TopProduct, error) {
	if limit <= 0 {
		limit = 5
	}

	orders, err := s.store.ListOrders()
	if err != nil {
		return nil, err
	}

	index := make(map[uint]int)
	ranked := make([]TopProduct, 0)
	for _, o := range orders {
		for _, item := range o.Items {
			i, ok := index[item.ProductID]
			if !ok {
				i = len(ranked)
				index[item.ProductID] = i
				ranked = append(ranked, TopProduct{ProductID: item.ProductID, ProductName: item.ProductName})
			}
			ranked[i].TotalSold += item.Quantity
			ranked[i].TotalRevenue += item.Subtotal
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalSold > ranked[j].TotalSold
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}
