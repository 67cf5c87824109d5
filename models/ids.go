package models

// IDGenerator hands out ids for newly authored records. Item ids and
// product ids are separate spaces; each is a single counter shared by all
// variants of that kind.
type IDGenerator interface {
	NextItemID() int
	NextProductID() int
}

// SequenceGenerator is the default IDGenerator: two monotonically
// increasing counters. Ids are never reused, even after deletion.
type SequenceGenerator struct {
	nextItem    int
	nextProduct int
}

func NewSequenceGenerator(firstItemID, firstProductID int) *SequenceGenerator {
	return &SequenceGenerator{
		nextItem:    firstItemID,
		nextProduct: firstProductID,
	}
}

func (g *SequenceGenerator) NextItemID() int {
	id := g.nextItem
	g.nextItem++
	return id
}

func (g *SequenceGenerator) NextProductID() int {
	id := g.nextProduct
	g.nextProduct++
	return id
}

// ObserveItemID moves the item counter past id, so records added with an
// explicit id never collide with later generated ones.
func (g *SequenceGenerator) ObserveItemID(id int) {
	if id >= g.nextItem {
		g.nextItem = id + 1
	}
}

// ObserveProductID is the product-space counterpart of ObserveItemID.
func (g *SequenceGenerator) ObserveProductID(id int) {
	if id >= g.nextProduct {
		g.nextProduct = id + 1
	}
}

type itemIDObserver interface {
	ObserveItemID(id int)
}

type productIDObserver interface {
	ObserveProductID(id int)
}
