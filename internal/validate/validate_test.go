package validate

import (
	"strings"
	"testing"

	"github.com/sells-group/comps-cli/internal/model"
)

func dataset(columns []string, rows ...[]string) model.Dataset {
	return model.Dataset{Columns: columns, Rows: rows}
}

func TestDataset_PriceColumnMissing(t *testing.T) {
	ds := dataset([]string{"Address", "Beds"}, []string{"1 Elm", "3"})
	fm := model.FieldMap{model.FieldAddress: "Address", model.FieldBeds: "Beds"}

	ok, msg := Dataset(ds, fm, 1000)
	if ok {
		t.Fatal("expected validation failure")
	}
	if msg != MsgPriceColumnNotFound {
		t.Errorf("message = %q, want %q", msg, MsgPriceColumnNotFound)
	}
}

func TestDataset_NoValidPrices(t *testing.T) {
	ds := dataset([]string{"Price"},
		[]string{"$900"},
		[]string{"1000"}, // floor is strict: exactly 1000 is noise
		[]string{"garbage"},
		[]string{""},
	)
	fm := model.FieldMap{model.FieldPrice: "Price"}

	ok, msg := Dataset(ds, fm, 1000)
	if ok {
		t.Fatal("expected validation failure")
	}
	if msg != MsgNoValidPriceData {
		t.Errorf("message = %q, want %q", msg, MsgNoValidPriceData)
	}
}

func TestDataset_OK(t *testing.T) {
	ds := dataset([]string{"Price", "Living"},
		[]string{"$350,000", "1800"},
		[]string{"junk", "not-a-number"},
	)
	fm := model.FieldMap{model.FieldPrice: "Price", model.FieldSqft: "Living"}

	ok, msg := Dataset(ds, fm, 1000)
	if !ok {
		t.Fatalf("expected success, got %q", msg)
	}
	if !strings.HasPrefix(msg, MsgValidationOK) {
		t.Errorf("message = %q, want %q prefix", msg, MsgValidationOK)
	}
}

func TestDataset_OnePlausiblePriceIsEnough(t *testing.T) {
	ds := dataset([]string{"Price"},
		[]string{"500"},
		[]string{"1000.01"},
	)
	fm := model.FieldMap{model.FieldPrice: "Price"}

	if ok, msg := Dataset(ds, fm, 1000); !ok {
		t.Fatalf("expected success, got %q", msg)
	}
}

func TestDataset_SqftProblemsAreNonFatal(t *testing.T) {
	ds := dataset([]string{"Price", "SqFt"},
		[]string{"250000", "-50"},
		[]string{"300000", "abc"},
	)
	fm := model.FieldMap{model.FieldPrice: "Price", model.FieldSqft: "SqFt"}

	if ok, msg := Dataset(ds, fm, 1000); !ok {
		t.Fatalf("sqft issues must not fail validation, got %q", msg)
	}
}
