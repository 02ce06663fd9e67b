package catalog

import (
	"context"

	"github.com/aryangupta0810/ecart-backend/pkg/db/models"
	"gorm.io/gorm"
)

// catalogOrder keeps listings in fixture order. IDs are numeric strings.
const catalogOrder = "CAST(id AS INTEGER)"

// Repository wires together catalog persistence helpers.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Seed migrates the catalog schema and loads the fixture when the store is empty.
func (r *Repository) Seed(ctx context.Context) error {
	tx := r.db.WithContext(ctx)
	if err := tx.AutoMigrate(&models.Product{}, &models.Variant{}, &models.Collection{}); err != nil {
		return err
	}

	var count int64
	if err := tx.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	products := fixtureProducts()
	if err := tx.Create(&products).Error; err != nil {
		return err
	}
	collections := fixtureCollections()
	return tx.Create(&collections).Error
}

// ListProducts loads every product with variants in fixture order.
func (r *Repository) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.WithContext(ctx).
		Preload("Variants", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Order(catalogOrder).
		Find(&products).
		Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindProductByID loads a single product with its variants.
func (r *Repository) FindProductByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).
		Preload("Variants", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		First(&product, "id = ?", id).
		Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// ListByCategory loads all products in the given category, variants
// included. Categories match case-insensitively.
func (r *Repository) ListByCategory(ctx context.Context, category string) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.WithContext(ctx).
		Preload("Variants", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("category = ? COLLATE NOCASE", category).
		Order(catalogOrder).
		Find(&products).
		Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ListCollections loads every collection in fixture order.
func (r *Repository) ListCollections(ctx context.Context) ([]models.Collection, error) {
	var collections []models.Collection
	if err := r.db.WithContext(ctx).Order(catalogOrder).Find(&collections).Error; err != nil {
		return nil, err
	}
	return collections, nil
}

// FindCollectionByID loads a single collection.
func (r *Repository) FindCollectionByID(ctx context.Context, id string) (*models.Collection, error) {
	var collection models.Collection
	if err := r.db.WithContext(ctx).First(&collection, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &collection, nil
}
