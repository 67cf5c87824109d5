package items

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mytheresa/inventory-system/app/validation"
	"github.com/mytheresa/inventory-system/models"
)

var (
	// ErrNoSelection is returned when an action needs an item and none was given.
	ErrNoSelection = errors.New("no item selected")
	// ErrCancelled is returned when the user declines a confirmation prompt.
	ErrCancelled = errors.New("cancelled")
)

const collection = "items"

type ItemStore interface {
	NextItemID() int
	AddItem(item *models.Item) error
	ReplaceItem(item *models.Item) error
	RemoveItem(item *models.Item) error
	ItemByID(id int) (*models.Item, error)
}

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(prompt string) bool
}

// RejectionObserver is told about every save the checks turned down.
type RejectionObserver interface {
	ObserveRejection(collection string, signal string)
}

// Form holds the text of an item form as the user typed it.
type Form struct {
	Name         string
	Price        string
	Stock        string
	Min          string
	Max          string
	Kind         models.SourceKind
	MachineID    string
	SupplierName string
}

// Draft is an item being authored or modified. ID is zero for a part that
// is not in the catalog yet.
type Draft struct {
	ID   int
	Form Form

	loaded Form
}

// NewDraft starts a draft for a part that is not in the catalog yet.
func NewDraft() *Draft {
	return &Draft{}
}

// DraftFor starts a draft over a stored item.
func DraftFor(item *models.Item) *Draft {
	f := Form{
		Name:  item.Name,
		Price: item.Price.StringFixed(2),
		Stock: fmt.Sprint(item.Stock),
		Min:   fmt.Sprint(item.Min),
		Max:   fmt.Sprint(item.Max),
		Kind:  item.Kind(),
	}
	if id, ok := item.MachineID(); ok {
		f.MachineID = fmt.Sprint(id)
	}
	if name, ok := item.SupplierName(); ok {
		f.SupplierName = name
	}
	return &Draft{ID: item.ID, Form: f, loaded: f}
}

// Dirty reports whether the form differs from what the draft was started with.
func (d *Draft) Dirty() bool {
	return d.Form != d.loaded
}

// Editor applies drafts to an item store after running the save checks.
type Editor struct {
	store    ItemStore
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
func NewEditor(store ItemStore, confirm Confirmer, opts ...Option) *Editor {
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

// Save commits the draft. A draft without an ID adds a new item with a
// freshly generated id, which is written back to d; otherwise the stored
// item with that id is replaced, which is also how an item changes
// variant. Nothing is written when a check fails.
func (e *Editor) Save(d *Draft) (*models.Item, error) {
	item, err := build(d)
	if err != nil {
		return nil, err
	}
	if err := validation.CheckItem(item); err != nil {
		e.reject(err)
		return nil, err
	}

	if d.ID == 0 {
		item.ID = e.store.NextItemID()
		if err := e.store.AddItem(item); err != nil {
			return nil, err
		}
		d.ID = item.ID
		e.log.Info("item saved", "id", item.ID, "name", item.Name, "kind", item.Kind())
	} else {
		if _, err := e.store.ItemByID(d.ID); err != nil {
			return nil, fmt.Errorf("modify item %d: %w", d.ID, err)
		}
		if err := e.store.ReplaceItem(item); err != nil {
			return nil, err
		}
		e.log.Info("item modified", "id", item.ID, "name", item.Name, "kind", item.Kind())
	}

	d.loaded = d.Form
	return item, nil
}

// Delete removes item from the catalog after the user confirms.
func (e *Editor) Delete(item *models.Item) error {
	if item == nil {
		return ErrNoSelection
	}
	if !e.confirm.Confirm(fmt.Sprintf("Delete part: %q ?", item.Name)) {
		return ErrCancelled
	}
	if err := e.store.RemoveItem(item); err != nil {
		return err
	}
	e.log.Info("item deleted", "id", item.ID, "name", item.Name)
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

func (e *Editor) reject(err error) {
	rej, ok := validation.AsRejection(err)
	if !ok {
		return
	}
	e.log.Info("item rejected", "signal", rej.Signal)
	if e.observer != nil {
		e.observer.ObserveRejection(collection, string(rej.Signal))
	}
}

func build(d *Draft) (*models.Item, error) {
	form := d.Form
	stock, err := validation.ParseQuantity("stock", form.Stock)
	if err != nil {
		return nil, err
	}
	min, err := validation.ParseQuantity("min", form.Min)
	if err != nil {
		return nil, err
	}
	max, err := validation.ParseQuantity("max", form.Max)
	if err != nil {
		return nil, err
	}

	var source models.Source
	switch form.Kind {
	case models.SourceManufactured:
		machineID, err := validation.ParseQuantity("machine id", form.MachineID)
		if err != nil {
			return nil, err
		}
		source = models.Manufactured{MachineID: machineID}
	default:
		source = models.Sourced{SupplierName: strings.TrimSpace(form.SupplierName)}
	}

	price := validation.ParseCurrency(form.Price)
	return models.NewItem(d.ID, strings.TrimSpace(form.Name), price, stock, min, max, source), nil
}
