package repository

import (
	"errors"

	"github.com/LINMINXUAN/aphelion-apollo-pos/entity"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// GormStore backs the entity store with the embedded sqlite file. Statement
// execution is serialized by the driver, which gives the single-writer
// semantics the core assumes.
type GormStore struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewGormStore(db *gorm.DB, log zerolog.Logger) (*GormStore, error) {
	s := &GormStore{db: db, log: log.With().Str("store", "sqlite").Logger()}
	if err := s.seedIfEmpty(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *GormStore) seedIfEmpty() error {
	var count int64
	if err := s.db.Model(&entity.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	s.log.Info().Msg("empty database, installing default catalog")
	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, c := range seedCategories() {
			if err := tx.Create(&c).Error; err != nil {
				return err
			}
		}
		for _, p := range seedProducts() {
			if err := tx.Create(&p).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ---------------- Categories ----------------

func (s *GormStore) ListCategories() ([]entity.Category, error) {
	var categories []entity.Category
	err := s.db.Order("display_order ASC, id ASC").Find(&categories).Error
	return categories, err
}

func (s *GormStore) GetCategory(id uint) (*entity.Category, error) {
	var category entity.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (s *GormStore) InsertCategory(category *entity.Category) error {
	return s.db.Create(category).Error
}

func (s *GormStore) UpdateCategory(category *entity.Category) error {
	res := s.db.Model(&entity.Category{}).Where("id = ?", category.ID).Updates(map[string]any{
		"name":          category.Name,
		"description":   category.Description,
		"display_order": category.DisplayOrder,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) DeleteCategory(id uint) error {
	res := s.db.Delete(&entity.Category{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) CountCategories() (int64, error) {
	var count int64
	err := s.db.Model(&entity.Category{}).Count(&count).Error
	return count, err
}

// ---------------- Products ----------------

func (s *GormStore) ListProducts() ([]entity.Product, error) {
	var products []entity.Product
	err := s.db.Order("id DESC").Find(&products).Error
	return products, err
}

func (s *GormStore) GetProduct(id uint) (*entity.Product, error) {
	var product entity.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (s *GormStore) InsertProduct(product *entity.Product) error {
	return s.db.Create(product).Error
}

func (s *GormStore) UpdateProduct(product *entity.Product) error {
	res := s.db.Model(&entity.Product{}).Where("id = ?", product.ID).Updates(map[string]any{
		"name":        product.Name,
		"description": product.Description,
		"price":       product.Price,
		"category_id": product.CategoryID,
		"available":   product.Available,
		"image_url":   product.ImageURL,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) DeleteProduct(id uint) error {
	res := s.db.Delete(&entity.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) CountProducts() (int64, error) {
	var count int64
	err := s.db.Model(&entity.Product{}).Count(&count).Error
	return count, err
}

func (s *GormStore) CountProductsByCategory(categoryID uint) (int64, error) {
	var count int64
	err := s.db.Model(&entity.Product{}).Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}

// ---------------- Orders ----------------

func (s *GormStore) ListOrders() ([]entity.Order, error) {
	var orders []entity.Order
	err := s.db.Preload("Items").Order("created_at DESC, id DESC").Find(&orders).Error
	return orders, err
}

func (s *GormStore) GetOrder(id uint) (*entity.Order, error) {
	var order entity.Order
	if err := s.db.Preload("Items").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (s *GormStore) FindOrderByIdempotencyKey(key string) (*entity.Order, error) {
	if key == "" {
		return nil, ErrNotFound
	}
	var order entity.Order
	err := s.db.Preload("Items").Where("idempotency_key = ?", key).First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (s *GormStore) InsertOrder(order *entity.Order) error {
	items := order.Items
	order.Items = nil
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	order.Items = items
	return err
}

func (s *GormStore) UpdateOrderStatus(id uint, status entity.OrderStatus) error {
	res := s.db.Model(&entity.Order{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
