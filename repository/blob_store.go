package repository

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"slices"
	"sort"
	"sync"

	"github.com/LINMINXUAN/aphelion-apollo-pos/entity"
	"github.com/LINMINXUAN/aphelion-apollo-pos/pkg/apperr"

	"github.com/rs/zerolog"
)

// blobCounters are the per-entity auto-increment sequences persisted with the
// document so identifiers stay monotonic across restarts.
type blobCounters struct {
	CategoryID  uint `json:"categoryId"`
	ProductID   uint `json:"productId"`
	OrderID     uint `json:"orderId"`
	OrderItemID uint `json:"orderItemId"`
}

type blobState struct {
	Categories []entity.Category `json:"categories"`
	Products   []entity.Product  `json:"products"`
	Orders     []entity.Order    `json:"orders"`
	Counters   blobCounters      `json:"counters"`
}

func (st blobState) clone() blobState {
	out := st
	out.Categories = slices.Clone(st.Categories)
	out.Products = slices.Clone(st.Products)
	out.Orders = slices.Clone(st.Orders)
	return out
}

func seedState() blobState {
	return blobState{
		Categories: seedCategories(),
		Products:   seedProducts(),
		Orders:     []entity.Order{},
		Counters:   blobCounters{CategoryID: 4, ProductID: 4, OrderID: 1, OrderItemID: 1},
	}
}

// BlobStore keeps the whole database as one JSON document, the way a browser
// runtime would keep it in its persisted key-value store. Every mutation is a
// read-modify-write-persist cycle executed under one lock, so two logical
// callers can never interleave halfway.
type BlobStore struct {
	mu    sync.Mutex
	path  string
	state blobState
	log   zerolog.Logger
}

func OpenBlobStore(path string, log zerolog.Logger) (*BlobStore, error) {
	s := &BlobStore{path: path, log: log.With().Str("store", "file").Logger()}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *BlobStore) load() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.log.Info().Str("path", s.path).Msg("no local database, installing default catalog")
		s.state = seedState()
		return s.persist(&s.state)
	}
	if err != nil {
		return apperr.Wrap(apperr.Storage, "讀取本地資料失敗", err)
	}

	var st blobState
	if err := json.Unmarshal(data, &st); err != nil {
		// Keep the terminal usable over keeping broken data: a corrupted
		// document is discarded and the seed reinstalled.
		s.log.Warn().Err(err).Str("path", s.path).
			Msg("local database corrupted, resetting to default catalog (existing data is lost)")
		s.state = seedState()
		return s.persist(&s.state)
	}
	s.state = st
	return nil
}

// persist writes the document to a temp file and renames it into place, so a
// crash mid-write can never leave a half-written database behind.
func (s *BlobStore) persist(st *blobState) error {
	data, err := json.Marshal(st)
	if err != nil {
		return apperr.Wrap(apperr.Storage, "序列化本地資料失敗", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return apperr.Wrap(apperr.Storage, "寫入本地資料失敗", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return apperr.Wrap(apperr.Storage, "寫入本地資料失敗", err)
	}
	return nil
}

// mutate runs fn against a copy of the state, persists the copy, and only
// then commits it in memory. A failed persist leaves the previous state
// intact.
func (s *BlobStore) mutate(fn func(st *blobState) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.state.clone()
	if err := fn(&next); err != nil {
		return err
	}
	if err := s.persist(&next); err != nil {
		return err
	}
	s.state = next
	return nil
}

// ---------------- Categories ----------------

func (s *BlobStore) ListCategories() ([]entity.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := slices.Clone(s.state.Categories)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DisplayOrder < out[j].DisplayOrder
	})
	return out, nil
}

func (s *BlobStore) GetCategory(id uint) (*entity.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.state.Categories {
		if c.ID == id {
			c := c
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (s *BlobStore) InsertCategory(category *entity.Category) error {
	return s.mutate(func(st *blobState) error {
		category.ID = st.Counters.CategoryID
		st.Counters.CategoryID++
		st.Categories = append(st.Categories, *category)
		return nil
	})
}

func (s *BlobStore) UpdateCategory(category *entity.Category) error {
	return s.mutate(func(st *blobState) error {
		for i := range st.Categories {
			if st.Categories[i].ID == category.ID {
				st.Categories[i] = *category
				return nil
			}
		}
		return ErrNotFound
	})
}

func (s *BlobStore) DeleteCategory(id uint) error {
	return s.mutate(func(st *blobState) error {
		for i := range st.Categories {
			if st.Categories[i].ID == id {
				st.Categories = append(st.Categories[:i], st.Categories[i+1:]...)
				return nil
			}
		}
		return ErrNotFound
	})
}

func (s *BlobStore) CountCategories() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.state.Categories)), nil
}

// ---------------- Products ----------------

func (s *BlobStore) ListProducts() ([]entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := slices.Clone(s.state.Products)
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (s *BlobStore) GetProduct(id uint) (*entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.state.Products {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (s *BlobStore) InsertProduct(product *entity.Product) error {
	return s.mutate(func(st *blobState) error {
		product.ID = st.Counters.ProductID
		st.Counters.ProductID++
		st.Products = append(st.Products, *product)
		return nil
	})
}

func (s *BlobStore) UpdateProduct(product *entity.Product) error {
	return s.mutate(func(st *blobState) error {
		for i := range st.Products {
			if st.Products[i].ID == product.ID {
				st.Products[i] = *product
				return nil
			}
		}
		return ErrNotFound
	})
}

func (s *BlobStore) DeleteProduct(id uint) error {
	return s.mutate(func(st *blobState) error {
		for i := range st.Products {
			if st.Products[i].ID == id {
				st.Products = append(st.Products[:i], st.Products[i+1:]...)
				return nil
			}
		}
		return ErrNotFound
	})
}

func (s *BlobStore) CountProducts() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.state.Products)), nil
}

func (s *BlobStore) CountProductsByCategory(categoryID uint) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int64
	for _, p := range s.state.Products {
		if p.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

// ---------------- Orders ----------------

func (s *BlobStore) ListOrders() ([]entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := slices.Clone(s.state.Orders)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *BlobStore) GetOrder(id uint) (*entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.state.Orders {
		if o.ID == id {
			o := o
			return &o, nil
		}
	}
	return nil, ErrNotFound
}

func (s *BlobStore) FindOrderByIdempotencyKey(key string) (*entity.Order, error) {
	if key == "" {
		return nil, ErrNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.state.Orders {
		if o.IdempotencyKey == key {
			o := o
			return &o, nil
		}
	}
	return nil, ErrNotFound
}

func (s *BlobStore) InsertOrder(order *entity.Order) error {
	return s.mutate(func(st *blobState) error {
		order.ID = st.Counters.OrderID
		st.Counters.OrderID++
		for i := range order.Items {
			order.Items[i].ID = st.Counters.OrderItemID
			st.Counters.OrderItemID++
			order.Items[i].OrderID = order.ID
		}
		st.Orders = append(st.Orders, *order)
		return nil
	})
}

func (s *BlobStore) UpdateOrderStatus(id uint, status entity.OrderStatus) error {
	return s.mutate(func(st *blobState) error {
		for i := range st.Orders {
			if st.Orders[i].ID == id {
				st.Orders[i].Status = status
				return nil
			}
		}
		return ErrNotFound
	})
}
