package services

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/LINMINXUAN/aphelion-apollo-pos/entity"
	"github.com/LINMINXUAN/aphelion-apollo-pos/pkg/apperr"
	"github.com/LINMINXUAN/aphelion-apollo-pos/repository"

	"github.com/rs/zerolog"
)

// uncategorizedName is shown when a product's category is missing or unset.
const uncategorizedName = "未分類"

type CatalogService struct {
	store repository.Store
	log   zerolog.Logger
}

func NewCatalogService(store repository.Store, log zerolog.Logger) *CatalogService {
	return &CatalogService{store: store, log: log.With().Str("component", "catalog").Logger()}
}

// ----- DTOs from Controller -----

type CategoryInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	// nil means "not supplied": create appends at the end, update keeps the
	// previous value.
	DisplayOrder *int `json:"displayOrder"`
}

type ProductInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	CategoryID  uint    `json:"categoryId"`
	Available   bool    `json:"available"`
	ImageURL    string  `json:"imageUrl"`
}

// ----- Categories -----

func (s *CatalogService) ListCategories() ([]entity.Category, error) {
	return s.store.ListCategories()
}

func (s *CatalogService) CreateCategory(in CategoryInput) (*entity.Category, error) {
	name, err := normalizeCategoryName(in.Name)
	if err != nil {
		return nil, err
	}

	order := 0
	if in.DisplayOrder != nil {
		order = *in.DisplayOrder
	} else {
		count, err := s.store.CountCategories()
		if err != nil {
			return nil, err
		}
		order = int(count)
	}

	category := &entity.Category{
		Name:         name,
		Description:  strings.TrimSpace(in.Description),
		DisplayOrder: order,
	}
	if err := s.store.InsertCategory(category); err != nil {
		return nil, err
	}
	s.log.Info().Uint("id", category.ID).Str("name", category.Name).Msg("category created")
	return category, nil
}

func (s *CatalogService) UpdateCategory(id uint, in CategoryInput) (*entity.Category, error) {
	category, err := s.store.GetCategory(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.New(apperr.NotFound, "分類不存在")
		}
		return nil, err
	}

	name, err := normalizeCategoryName(in.Name)
	if err != nil {
		return nil, err
	}

	category.Name = name
	category.Description = strings.TrimSpace(in.Description)
	if in.DisplayOrder != nil {
		category.DisplayOrder = *in.DisplayOrder
	}
	if err := s.store.UpdateCategory(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CatalogService) DeleteCategory(id uint) error {
	if _, err := s.store.GetCategory(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.New(apperr.NotFound, "分類不存在")
		}
		return err
	}

	count, err := s.store.CountProductsByCategory(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperr.New(apperr.Conflict, "刪除失敗，可能有商品使用此分類")
	}
	return s.store.DeleteCategory(id)
}

func normalizeCategoryName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if n := utf8.RuneCountInString(name); n < 2 || n > 30 {
		return "", apperr.New(apperr.Validation, "分類名稱需為 2 到 30 個字")
	}
	return name, nil
}

// ----- Products -----

func (s *CatalogService) ListProducts() ([]entity.Product, error) {
	products, err := s.store.ListProducts()
	if err != nil {
		return nil, err
	}
	names, err := s.categoryNames()
	if err != nil {
		return nil, err
	}
	for i := range products {
		products[i].CategoryName = resolveCategoryName(names, products[i].CategoryID)
	}
	return products, nil
}

func (s *CatalogService) GetProduct(id uint) (*entity.Product, error) {
	product, err := s.store.GetProduct(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.New(apperr.NotFound, "商品不存在")
		}
		return nil, err
	}
	names, err := s.categoryNames()
	if err != nil {
		return nil, err
	}
	product.CategoryName = resolveCategoryName(names, product.CategoryID)
	return product, nil
}

func (s *CatalogService) CreateProduct(in ProductInput) (*entity.Product, error) {
	product, err := s.buildProduct(in)
	if err != nil {
		return nil, err
	}
	if err := s.store.InsertProduct(product); err != nil {
		return nil, err
	}
	names, err := s.categoryNames()
	if err != nil {
		return nil, err
	}
	product.CategoryName = resolveCategoryName(names, product.CategoryID)
	s.log.Info().Uint("id", product.ID).Str("name", product.Name).Msg("product created")
	return product, nil
}

func (s *CatalogService) UpdateProduct(id uint, in ProductInput) (*entity.Product, error) {
	if _, err := s.store.GetProduct(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.New(apperr.NotFound, "商品不存在")
		}
		return nil, err
	}
	product, err := s.buildProduct(in)
	if err != nil {
		return nil, err
	}
	product.ID = id
	if err := s.store.UpdateProduct(product); err != nil {
		return nil, err
	}
	names, err := s.categoryNames()
	if err != nil {
		return nil, err
	}
	product.CategoryName = resolveCategoryName(names, product.CategoryID)
	return product, nil
}

func (s *CatalogService) DeleteProduct(id uint) error {
	// Unconditional: historical order items carry their own snapshot and do
	// not block product deletion.
	if err := s.store.DeleteProduct(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.New(apperr.NotFound, "商品不存在")
		}
		return err
	}
	return nil
}

// ToggleAvailability flips the sellable flag without touching other fields.
func (s *CatalogService) ToggleAvailability(id uint) (*entity.Product, error) {
	product, err := s.store.GetProduct(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.New(apperr.NotFound, "商品不存在")
		}
		return nil, err
	}
	product.Available = !product.Available
	if err := s.store.UpdateProduct(product); err != nil {
		return nil, err
	}
	names, err := s.categoryNames()
	if err != nil {
		return nil, err
	}
	product.CategoryName = resolveCategoryName(names, product.CategoryID)
	return product, nil
}

func (s *CatalogService) buildProduct(in ProductInput) (*entity.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperr.New(apperr.Validation, "商品名稱不能為空")
	}
	if in.Price < 0 {
		return nil, apperr.New(apperr.Validation, "商品價格不正確")
	}
	return &entity.Product{
		Name:        name,
		Description: in.Description,
		Price:       in.Price,
		CategoryID:  in.CategoryID,
		Available:   in.Available,
		ImageURL:    in.ImageURL,
	}, nil
}

func (s *CatalogService) categoryNames() (map[uint]string, error) {
	categories, err := s.store.ListCategories()
	if err != nil {
		return nil, err
	}
	names := make(map[uint]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	return names, nil
}

func resolveCategoryName(names map[uint]string, categoryID uint) string {
	if name, ok := names[categoryID]; ok && categoryID != 0 {
		return name
	}
	return uncategorizedName
}
