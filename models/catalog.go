package models

import (
	"errors"
	"fmt"
	"log/slog"
)

var (
	// ErrItemNotFound is returned when an item is not in the catalog.
	ErrItemNotFound = errors.New("item not found")
	// ErrProductNotFound is returned when a product is not in the catalog.
	ErrProductNotFound = errors.New("product not found")
	// ErrIndexOutOfRange is returned for positions outside a collection.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrDuplicateID is returned when a write would leave two records with the same id.
	ErrDuplicateID = errors.New("duplicate id")
	// ErrNilRecord is returned when a nil item or product is passed in.
	ErrNilRecord = errors.New("nil record")
)

// ItemList is an ordered list of items. The catalog hands out a pointer
// to its own list, so holders see additions, removals and reorders as
// they happen; dereferencing that pointer takes a snapshot.
type ItemList []*Item

// Len reports the number of items.
func (l ItemList) Len() int { return len(l) }

// ProductList is the product counterpart of ItemList.
type ProductList []*Product

// Len reports the number of products.
func (l ProductList) Len() int { return len(l) }

// Catalog owns the ordered item and product collections.
// Insertion order is preserved and is the order a table view displays.
//
// A Catalog is not safe for concurrent use. Callers that share one across
// goroutines must serialize access themselves.
type Catalog struct {
	ids      IDGenerator
	log      *slog.Logger
	items    collection[*Item]
	products collection[*Product]
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithLogger sets the logger used for record lifecycle events.
func WithLogger(log *slog.Logger) Option {
	return func(c *Catalog) {
		if log != nil {
			c.log = log
		}
	}
}

// NewCatalog returns an empty catalog. A nil generator defaults to
// sequences starting at 1.
func NewCatalog(ids IDGenerator, opts ...Option) *Catalog {
	if ids == nil {
		ids = NewSequenceGenerator(1, 1)
	}
	c := &Catalog{
		ids:      ids,
		log:      slog.Default(),
		items:    newCollection[*Item](ErrItemNotFound),
		products: newCollection[*Product](ErrProductNotFound),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NextItemID draws the next id for a new item.
func (c *Catalog) NextItemID() int { return c.ids.NextItemID() }

// NextProductID draws the next id for a new product.
func (c *Catalog) NextProductID() int { return c.ids.NextProductID() }

func (c *Catalog) AddItem(item *Item) error {
	if err := c.items.add(item); err != nil {
		return fmt.Errorf("add item: %w", err)
	}
	if o, ok := c.ids.(itemIDObserver); ok {
		o.ObserveItemID(item.ID)
	}
	c.log.Debug("item added", "id", item.ID, "name", item.Name, "kind", item.Kind())
	return nil
}

func (c *Catalog) AddProduct(product *Product) error {
	if err := c.products.add(product); err != nil {
		return fmt.Errorf("add product: %w", err)
	}
	if o, ok := c.ids.(productIDObserver); ok {
		o.ObserveProductID(product.ID)
	}
	c.log.Debug("product added", "id", product.ID, "name", product.Name, "components", len(product.Components))
	return nil
}

// RemoveItem removes item by reference. Products that list the item as a
// component keep their reference.
func (c *Catalog) RemoveItem(item *Item) error {
	if err := c.items.remove(item); err != nil {
		return fmt.Errorf("remove item: %w", err)
	}
	c.log.Debug("item removed", "id", item.ID)
	return nil
}

func (c *Catalog) RemoveProduct(product *Product) error {
	if err := c.products.remove(product); err != nil {
		return fmt.Errorf("remove product: %w", err)
	}
	c.log.Debug("product removed", "id", product.ID)
	return nil
}

// UpdateItem overwrites the item stored at position.
func (c *Catalog) UpdateItem(position int, item *Item) error {
	if err := c.items.set(position, item); err != nil {
		return fmt.Errorf("update item at %d: %w", position, err)
	}
	c.log.Debug("item updated", "id", item.ID, "position", position)
	return nil
}

// UpdateProduct overwrites the product stored at position.
func (c *Catalog) UpdateProduct(position int, product *Product) error {
	if err := c.products.set(position, product); err != nil {
		return fmt.Errorf("update product at %d: %w", position, err)
	}
	c.log.Debug("product updated", "id", product.ID, "position", position)
	return nil
}

// ReplaceItem writes item over the stored item with the same id.
func (c *Catalog) ReplaceItem(item *Item) error {
	if item == nil {
		return fmt.Errorf("replace item: %w", ErrNilRecord)
	}
	pos, ok := c.items.position(item.ID)
	if !ok {
		return fmt.Errorf("replace item %d: %w", item.ID, ErrItemNotFound)
	}
	return c.UpdateItem(pos, item)
}

// ReplaceProduct writes product over the stored product with the same id.
func (c *Catalog) ReplaceProduct(product *Product) error {
	if product == nil {
		return fmt.Errorf("replace product: %w", ErrNilRecord)
	}
	pos, ok := c.products.position(product.ID)
	if !ok {
		return fmt.Errorf("replace product %d: %w", product.ID, ErrProductNotFound)
	}
	return c.UpdateProduct(pos, product)
}

// ItemAt returns the item at a list position. Positions are not ids.
func (c *Catalog) ItemAt(position int) (*Item, error) {
	return c.items.at(position)
}

// ProductAt returns the product at a list position. Positions are not ids.
func (c *Catalog) ProductAt(position int) (*Product, error) {
	return c.products.at(position)
}

// ItemByID returns the stored item with id.
func (c *Catalog) ItemByID(id int) (*Item, error) {
	pos, ok := c.items.position(id)
	if !ok {
		return nil, ErrItemNotFound
	}
	return c.items.records[pos], nil
}

// ProductByID returns the stored product with id.
func (c *Catalog) ProductByID(id int) (*Product, error) {
	pos, ok := c.products.position(id)
	if !ok {
		return nil, ErrProductNotFound
	}
	return c.products.records[pos], nil
}

// ItemPosition resolves an item id to its current list position.
func (c *Catalog) ItemPosition(id int) (int, bool) {
	return c.items.position(id)
}

// ProductPosition resolves a product id to its current list position.
func (c *Catalog) ProductPosition(id int) (int, bool) {
	return c.products.position(id)
}

// AllItems returns the catalog's live item list. Writes through it,
// including sorting, change the catalog.
func (c *Catalog) AllItems() *ItemList {
	return (*ItemList)(&c.items.records)
}

// AllProducts returns the catalog's live product list.
func (c *Catalog) AllProducts() *ProductList {
	return (*ProductList)(&c.products.records)
}
