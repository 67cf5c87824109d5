package products

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/mytheresa/inventory-system/app/validation"
	"github.com/mytheresa/inventory-system/models"
)

var (
	// ErrNoSelection is returned when an action needs a record and none was given.
	ErrNoSelection = errors.New("no selection")
	// ErrCancelled is returned when the user declines a confirmation prompt.
	ErrCancelled = errors.New("cancelled")
)

const collection = "products"

type ProductStore interface {
	NextProductID() int
	AddProduct(product *models.Product) error
	ReplaceProduct(product *models.Product) error
	RemoveProduct(product *models.Product) error
	ProductByID(id int) (*models.Product, error)
}

type Confirmer interface {
	Confirm(prompt string) bool
}

type RejectionObserver interface {
	ObserveRejection(collection string, signal string)
}

// Form holds the text of a product form as typed.
type Form struct {
	Name  string
	Price string
	Stock string
	Min   string
	Max   string
}

// Draft is a product being authored or modified. Its component list is a
// working copy: the stored product only changes when the draft is saved.
type Draft struct {
	ID         int
	Form       Form
	Components []*models.Item

	loaded     Form
	components []*models.Item
}

// NewDraft starts a draft for a product that is not in the catalog yet.
func NewDraft() *Draft {
	return &Draft{Components: []*models.Item{}}
}

// DraftFor starts a draft over a stored product.
func DraftFor(p *models.Product) *Draft {
	f := Form{
		Name:  p.Name,
		Price: p.Price.StringFixed(2),
		Stock: fmt.Sprint(p.Stock),
		Min:   fmt.Sprint(p.Min),
		Max:   fmt.Sprint(p.Max),
	}
	return &Draft{
		ID:         p.ID,
		Form:       f,
		Components: slices.Clone(p.Components),
		loaded:     f,
		components: slices.Clone(p.Components),
	}
}

// Associate appends item to the draft's components. The same item may be
// associated more than once.
func (d *Draft) Associate(item *models.Item) error {
	if item == nil {
		return ErrNoSelection
	}
	d.Components = append(d.Components, item)
	return nil
}

// Dirty reports whether the draft differs from what it was started with.
func (d *Draft) Dirty() bool {
	return d.Form != d.loaded || !slices.Equal(d.Components, d.components)
}

// Editor applies drafts to a product store after running the save checks.
type Editor struct {
	store    ProductStore
	confirm  Confirmer
	log      *slog.Logger
	observer RejectionObserver
}

// Option configures an Editor.
type Option func(*Editor)

// WithLogger sets the logger. A nil logger keeps slog.Default.
func WithLogger(log *slog.Logger) Option {
	return func(e *Editor) {
		if log != nil {
			e.log = log
		}
	}
}

// WithObserver reports rejected saves to o.
func WithObserver(o RejectionObserver) Option {
	return func(e *Editor) { e.observer = o }
}

// NewEditor returns an editor writing to store and asking confirm before
// destructive actions.
func NewEditor(store ProductStore, confirm Confirmer, opts ...Option) *Editor {
	e := &Editor{
		store:   store,
		confirm: confirm,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Disassociate removes the first occurrence of item from the draft after
// the user confirms.
func (e *Editor) Disassociate(d *Draft, item *models.Item) error {
	if item == nil {
		return ErrNoSelection
	}
	i := slices.Index(d.Components, item)
	if i < 0 {
		return fmt.Errorf("disassociate item %d: %w", item.ID, models.ErrItemNotFound)
	}
	if !e.confirm.Confirm(fmt.Sprintf("Remove part: %q ?", item.Name)) {
		return ErrCancelled
	}
	d.Components = slices.Delete(d.Components, i, i+1)
	return nil
}

// Cancel abandons the draft, asking first when it has unsaved changes.
func (e *Editor) Cancel(d *Draft) error {
	if !d.Dirty() {
		return nil
	}
	if !e.confirm.Confirm("Do you wish to cancel?") {
		return ErrCancelled
	}
	return nil
}

// Save commits the draft. Checks run in order and the first failure wins:
// no components, price below the components' cost, max below min, stock
// out of range. Nothing is written when a check fails.
func (e *Editor) Save(d *Draft) (*models.Product, error) {
	product, err := build(d)
	if err != nil {
		return nil, err
	}
	if err := validation.CheckProduct(product); err != nil {
		e.reject(err)
		return nil, err
	}

	if d.ID == 0 {
		product.ID = e.store.NextProductID()
		if err := e.store.AddProduct(product); err != nil {
			return nil, err
		}
		d.ID = product.ID
		e.log.Info("product saved", "id", product.ID, "name", product.Name, "components", len(product.Components))
	} else {
		if _, err := e.store.ProductByID(d.ID); err != nil {
			return nil, fmt.Errorf("modify product %d: %w", d.ID, err)
		}
		if err := e.store.ReplaceProduct(product); err != nil {
			return nil, err
		}
		e.log.Info("product modified", "id", product.ID, "name", product.Name, "components", len(product.Components))
	}

	d.loaded = d.Form
	d.components = slices.Clone(d.Components)
	return product, nil
}

// Delete removes product from the catalog after the user confirms.
func (e *Editor) Delete(product *models.Product) error {
	if product == nil {
		return ErrNoSelection
	}
	if !e.confirm.Confirm(fmt.Sprintf("Delete product: %q ?", product.Name)) {
		return ErrCancelled
	}
	if err := e.store.RemoveProduct(product); err != nil {
		return err
	}
	e.log.Info("product deleted", "id", product.ID, "name", product.Name)
	return nil
}

func (e *Editor) reject(err error) {
	rej, ok := validation.AsRejection(err)
	if !ok {
		return
	}
	e.log.Info("product rejected", "signal", rej.Signal)
	if e.observer != nil {
		e.observer.ObserveRejection(collection, string(rej.Signal))
	}
}

func build(d *Draft) (*models.Product, error) {
	stock, err := validation.ParseQuantity("stock", d.Form.Stock)
	if err != nil {
		return nil, err
	}
	min, err := validation.ParseQuantity("min", d.Form.Min)
	if err != nil {
		return nil, err
	}
	max, err := validation.ParseQuantity("max", d.Form.Max)
	if err != nil {
		return nil, err
	}

	p := models.NewProduct(d.ID, strings.TrimSpace(d.Form.Name), validation.ParseCurrency(d.Form.Price), stock, min, max)
	for _, c := range d.Components {
		p.AddComponent(c)
	}
	return p, nil
}
