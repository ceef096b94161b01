package statuscolor

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeShipment int

func (s fakeShipment) ShipmentID() int { return int(s) }

type fakeOrder struct {
	status    int
	hasStatus bool
	shipments []Shipment
	err       error
}

func (o *fakeOrder) StatusID() (int, bool) { return o.status, o.hasStatus }

func (o *fakeOrder) Shipments() ([]Shipment, error) { return o.shipments, o.err }

type identifiedOrder struct {
	fakeOrder
	id int
}

func (o *identifiedOrder) OrderID() int { return o.id }

func order(status int, shipmentIDs ...int) *fakeOrder {
	o := &fakeOrder{status: status, hasStatus: true}
	for _, id := range shipmentIDs {
		o.shipments = append(o.shipments, fakeShipment(id))
	}
	return o
}

func TestIndex_SingleOrder(t *testing.T) {
	res := NewShipmentStatusIndexer().Index([]Order{order(5, 42)})

	if diff := cmp.Diff(ShipmentStatusIndex{42: 5}, res.Index); diff != "" {
		t.Errorf("index mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, res.Diagnostics)
}

func TestIndex_DuplicateShipmentLastWins(t *testing.T) {
	res := NewShipmentStatusIndexer().Index([]Order{
		order(1, 10, 11),
		order(3, 11),
	})

	if diff := cmp.Diff(ShipmentStatusIndex{10: 1, 11: 3}, res.Index); diff != "" {
		t.Errorf("index mismatch (-want +got):\n%s", diff)
	}
}

func TestIndex_SkipsOrdersWithoutCapability(t *testing.T) {
	res := NewShipmentStatusIndexer().Index([]Order{
		&fakeOrder{hasStatus: false, shipments: []Shipment{fakeShipment(1)}},
		order(2),
		order(4, 7),
	})

	if diff := cmp.Diff(ShipmentStatusIndex{7: 4}, res.Index); diff != "" {
		t.Errorf("index mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, res.Diagnostics)
}

func TestIndex_FailedOrderIsIsolated(t *testing.T) {
	broken := &identifiedOrder{
		fakeOrder: fakeOrder{status: 2, hasStatus: true, err: errors.New("lazy load failed")},
		id:        77,
	}
	partial := order(6, 20, 0)
	partial.shipments[1] = nil

	res := NewShipmentStatusIndexer().Index([]Order{
		order(1, 5),
		broken,
		nil,
		partial,
		order(8, 9),
	})

	if diff := cmp.Diff(ShipmentStatusIndex{5: 1, 9: 8}, res.Index); diff != "" {
		t.Errorf("index mismatch (-want +got):\n%s", diff)
	}
	require.Len(t, res.Diagnostics, 3)
	assert.Equal(t, "77", res.Diagnostics[0].OrderID)
	assert.Contains(t, res.Diagnostics[0].Error(), "lazy load failed")
	assert.Equal(t, UnknownOrderID, res.Diagnostics[1].OrderID)
	assert.Equal(t, UnknownOrderID, res.Diagnostics[2].OrderID)
}

func TestIndex_Empty(t *testing.T) {
	res := NewShipmentStatusIndexer().Index(nil)

	assert.NotNil(t, res.Index)
	assert.Empty(t, res.Index)
}

func TestSelectOrderSource(t *testing.T) {
	a := order(1, 100)
	b := order(2, 200)

	t.Run("primary empty uses fallback", func(t *testing.T) {
		src := SelectOrderSource(nil, []Order{a})
		assert.Equal(t, SourceFlat, src.Kind)
		assert.Equal(t, []Order{a}, src.Items)

		res := NewShipmentStatusIndexer().Index(src.Items)
		assert.Equal(t, ShipmentStatusIndex{100: 1}, res.Index)
	})

	t.Run("primary wins when both present", func(t *testing.T) {
		src := SelectOrderSource([]Order{b}, []Order{a})
		assert.Equal(t, SourcePaginated, src.Kind)
		assert.Equal(t, []Order{b}, src.Items)
	})

	t.Run("both empty", func(t *testing.T) {
		src := SelectOrderSource([]Order{}, nil)
		assert.Equal(t, SourceEmpty, src.Kind)
		assert.Empty(t, src.Items)
		assert.Equal(t, "empty", src.Kind.String())
	})
}
