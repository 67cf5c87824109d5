package search

import (
	"cmp"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/mytheresa/inventory-system/models"
	"github.com/shopspring/decimal"
)

// ErrMalformedQuery is returned when an id or stock token cannot be read
// as an integer, e.g. because it overflows.
var ErrMalformedQuery = errors.New("malformed query")

const (
	CollectionItems    = "items"
	CollectionProducts = "products"
)

// Observer receives one call per finished search.
type Observer interface {
	ObserveSearch(collection string, field string, found bool)
}

// Result is the outcome of a search: at most one record.
type Result[T models.Entry] struct {
	Collection string
	Query      Query
	Match      T
	Found      bool
}

// Engine runs searches against catalog views and reports each one to an
// optional observer.
type Engine struct {
	log      *slog.Logger
	observer Observer
}

// NewEngine returns a search engine. Both arguments may be nil.
func NewEngine(log *slog.Logger, observer Observer) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{log: log, observer: observer}
}

// Items searches the item list. The list is sorted in place by the
// queried field before the binary search runs. A nil list is empty.
func (e *Engine) Items(items *models.ItemList, raw string) (Result[*models.Item], error) {
	var list []*models.Item
	if items != nil {
		list = *items
	}
	return run(e, CollectionItems, list, raw)
}

// Products searches the product list, sorting it in place like Items.
func (e *Engine) Products(products *models.ProductList, raw string) (Result[*models.Product], error) {
	var list []*models.Product
	if products != nil {
		list = *products
	}
	return run(e, CollectionProducts, list, raw)
}

func run[T models.Entry](e *Engine, collection string, list []T, raw string) (Result[T], error) {
	q := Classify(raw)
	res := Result[T]{Collection: collection, Query: q}

	match, found, err := Find(list, q)
	if err != nil {
		return res, err
	}
	res.Match, res.Found = match, found

	if e.observer != nil {
		e.observer.ObserveSearch(collection, q.Field.String(), found)
	}
	if !found {
		e.log.Debug("search miss", "collection", collection, "field", q.Field.String(), "token", q.Token)
	}
	return res, nil
}

// Find runs a classified query against list, which is sorted in place by
// the query's field. Only the first record hit by the probe sequence is
// returned; with duplicate keys that need not be the first in order.
//
// Name queries test substring containment at each probe and use lexical
// order only to choose the half to keep. A match lying in the discarded
// half is not found.
func Find[T models.Entry](list []T, q Query) (T, bool, error) {
	var zero T
	if q.Token == "" {
		return zero, false, nil
	}

	switch q.Field {
	case FieldID:
		want, err := strconv.Atoi(q.Token)
		if err != nil {
			return zero, false, fmt.Errorf("%w: id %q", ErrMalformedQuery, q.Token)
		}
		sortBy(list, func(r *models.Record) int { return r.ID })
		m, ok := probe(list, func(r *models.Record) int { return cmp.Compare(r.ID, want) })
		return m, ok, nil

	case FieldStock:
		want, err := strconv.Atoi(q.Token)
		if err != nil {
			return zero, false, fmt.Errorf("%w: stock %q", ErrMalformedQuery, q.Token)
		}
		sortBy(list, func(r *models.Record) int { return r.Stock })
		m, ok := probe(list, func(r *models.Record) int { return cmp.Compare(r.Stock, want) })
		return m, ok, nil

	case FieldPrice:
		want, err := decimal.NewFromString(q.Token)
		if err != nil {
			return zero, false, nil
		}
		want = truncatePrice(want)
		slices.SortStableFunc(list, func(a, b T) int {
			return a.Fields().Price.Cmp(b.Fields().Price)
		})
		m, ok := probe(list, func(r *models.Record) int { return truncatePrice(r.Price).Cmp(want) })
		return m, ok, nil

	default:
		sortBy(list, func(r *models.Record) string { return NormalizeName(r.Name) })
		m, ok := probe(list, func(r *models.Record) int {
			name := NormalizeName(r.Name)
			if strings.Contains(name, q.Token) {
				return 0
			}
			return strings.Compare(name, q.Token)
		})
		return m, ok, nil
	}
}

// truncatePrice floors a price to whole cents.
func truncatePrice(d decimal.Decimal) decimal.Decimal {
	return d.RoundFloor(2)
}

func sortBy[T models.Entry, K cmp.Ordered](list []T, key func(*models.Record) K) {
	slices.SortStableFunc(list, func(a, b T) int {
		return cmp.Compare(key(a.Fields()), key(b.Fields()))
	})
}

// probe is a classic binary search over a sorted list. compare reports the
// candidate's order relative to the target: zero on a match.
func probe[T models.Entry](list []T, compare func(*models.Record) int) (T, bool) {
	low, high := 0, len(list)-1
	for low <= high {
		mid := low + (high-low)/2
		c := compare(list[mid].Fields())
		if c == 0 {
			return list[mid], true
		}
		if c < 0 {
			low = mid + 1
		} else {
			high = mid - 1
		}
	}
	var zero T
	return zero, false
}
