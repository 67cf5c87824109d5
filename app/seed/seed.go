// Package seed hydrates a catalog from a YAML document. The sample
// catalog of a small bicycle shop is embedded and used when no document
// is configured.
package seed

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/mytheresa/inventory-system/models"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var sample []byte

var (
	// ErrInvalidSeed is returned when a seed document fails validation.
	ErrInvalidSeed = errors.New("invalid seed")
	// ErrUnknownComponent is returned when a product lists an item id the
	// document does not define.
	ErrUnknownComponent = errors.New("unknown component")
)

var validate = validator.New()

type File struct {
	FirstItemID    int       `yaml:"first_item_id" validate:"gte=0"`
	FirstProductID int       `yaml:"first_product_id" validate:"gte=0"`
	Items          []Item    `yaml:"items" validate:"dive"`
	Products       []Product `yaml:"products" validate:"dive"`
}

// Item is one item record. Exactly one of MachineID and Supplier is set.
// Listed defaults to true; unlisted items exist only as product components.
type Item struct {
	ID        int    `yaml:"id" validate:"gt=0"`
	Name      string `yaml:"name" validate:"required"`
	Price     string `yaml:"price" validate:"required,numeric"`
	Stock     int    `yaml:"stock" validate:"gte=0"`
	Min       int    `yaml:"min" validate:"gte=0"`
	Max       int    `yaml:"max" validate:"gtefield=Min"`
	MachineID *int   `yaml:"machine_id" validate:"required_without=Supplier"`
	Supplier  string `yaml:"supplier" validate:"excluded_with=MachineID"`
	Listed    *bool  `yaml:"listed"`
}

type Product struct {
	ID         int    `yaml:"id" validate:"gt=0"`
	Name       string `yaml:"name" validate:"required"`
	Price      string `yaml:"price" validate:"required,numeric"`
	Stock      int    `yaml:"stock" validate:"gte=0"`
	Min        int    `yaml:"min" validate:"gte=0"`
	Max        int    `yaml:"max" validate:"gtefield=Min"`
	Components []int  `yaml:"components" validate:"dive,gt=0"`
}

// Sample returns the embedded sample document.
func Sample() []byte {
	return sample
}

// Read returns the document at path, or the embedded sample when path is
// empty.
func Read(path string) ([]byte, error) {
	if path == "" {
		return sample, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed: %w", err)
	}
	return data, nil
}

// Parse decodes and validates a seed document.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	if err := validate.Struct(&f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSeed, err)
	}
	return &f, nil
}

// Generator returns an id generator starting at the document's first ids.
// Unset values start at 1.
func (f *File) Generator() *models.SequenceGenerator {
	return models.NewSequenceGenerator(max(f.FirstItemID, 1), max(f.FirstProductID, 1))
}

// Hydrate adds the document's records to cat in document order. Products
// share the item records they list, including unlisted ones.
func (f *File) Hydrate(cat *models.Catalog) error {
	items := make(map[int]*models.Item, len(f.Items))
	for _, rec := range f.Items {
		if _, ok := items[rec.ID]; ok {
			return fmt.Errorf("seed item %d: %w", rec.ID, models.ErrDuplicateID)
		}
		item, err := rec.model()
		if err != nil {
			return err
		}
		items[rec.ID] = item
		if rec.Listed != nil && !*rec.Listed {
			continue
		}
		if err := cat.AddItem(item); err != nil {
			return err
		}
	}

	for _, rec := range f.Products {
		price, err := decimal.NewFromString(rec.Price)
		if err != nil {
			return fmt.Errorf("%w: product %d price: %v", ErrInvalidSeed, rec.ID, err)
		}
		product := models.NewProduct(rec.ID, rec.Name, price, rec.Stock, rec.Min, rec.Max)
		for _, id := range rec.Components {
			item, ok := items[id]
			if !ok {
				return fmt.Errorf("product %d: %w %d", rec.ID, ErrUnknownComponent, id)
			}
			product.AddComponent(item)
		}
		if err := cat.AddProduct(product); err != nil {
			return err
		}
	}
	return nil
}

func (rec Item) model() (*models.Item, error) {
	price, err := decimal.NewFromString(rec.Price)
	if err != nil {
		return nil, fmt.Errorf("%w: item %d price: %v", ErrInvalidSeed, rec.ID, err)
	}
	var source models.Source = models.Sourced{SupplierName: rec.Supplier}
	if rec.MachineID != nil {
		source = models.Manufactured{MachineID: *rec.MachineID}
	}
	return models.NewItem(rec.ID, rec.Name, price, rec.Stock, rec.Min, rec.Max, source), nil
}

// Load parses data and hydrates cat with it.
func Load(data []byte, cat *models.Catalog) error {
	f, err := Parse(data)
	if err != nil {
		return err
	}
	return f.Hydrate(cat)
}
