package statuscolor

// SourceKind tells which order collection a page handed over.
type SourceKind int

const (
	SourceEmpty SourceKind = iota
	SourcePaginated
	SourceFlat
)

func (k SourceKind) String() string {
	switch k {
	case SourcePaginated:
		return "paginated"
	case SourceFlat:
		return "flat"
	default:
		return "empty"
	}
}

// OrderSource is the order collection picked for indexing.
type OrderSource struct {
	Kind  SourceKind
	Items []Order
}

// Paginated wraps the items of a paginated result.
func Paginated(items []Order) OrderSource {
	return OrderSource{Kind: SourcePaginated, Items: items}
}

// Flat wraps a plain order list.
func Flat(items []Order) OrderSource {
	return OrderSource{Kind: SourceFlat, Items: items}
}

// Empty is the source used when the page provides no orders at all.
func Empty() OrderSource {
	return OrderSource{Kind: SourceEmpty}
}

// SelectOrderSource prefers the paginated items whenever there is at least one,
// and only then looks at the flat list.
func SelectOrderSource(primary, secondary []Order) OrderSource {
	if len(primary) > 0 {
		return Paginated(primary)
	}
	if len(secondary) > 0 {
		return Flat(secondary)
	}
	return Empty()
}
