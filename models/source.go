package models

// SourceKind names where an item comes from.
type SourceKind string

const (
	SourceManufactured SourceKind = "manufactured"
	SourceSourced      SourceKind = "sourced"
)

// Source is the closed set of item variants: Manufactured or Sourced.
// The unexported marker keeps other packages from adding variants, so a
// switch over the two concrete types is exhaustive.
type Source interface {
	Kind() SourceKind
	isSource()
}

// Manufactured marks an item built in-house on a given machine.
type Manufactured struct {
	MachineID int
}

func (Manufactured) Kind() SourceKind { return SourceManufactured }
func (Manufactured) isSource()        {}

// Sourced marks an item bought from a supplier.
type Sourced struct {
	SupplierName string
}

func (Sourced) Kind() SourceKind { return SourceSourced }
func (Sourced) isSource()        {}
