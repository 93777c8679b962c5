package holidays

import (
	"testing"

	"github.com/openhours/ohgo/calendar"
)

func TestStaticProviderLookup(t *testing.T) {
	p := NewStaticProvider()

	public := calendar.NewCalendar(2024, 1)
	public.Add(2024, 12, 25)
	p.Register("de", Set{Public: public})

	set, ok := p.Lookup("DE")
	if !ok {
		t.Fatal("expected country DE to be registered")
	}
	if !set.Public.Contains(2024, 12, 25) {
		t.Error("expected registered public holiday to be present")
	}
	if set.School != nil {
		t.Error("expected nil school calendar for DE")
	}

	if _, ok := p.Lookup("zz"); ok {
		t.Error("expected unregistered country to return false")
	}
}

func TestErrUnknownCountry(t *testing.T) {
	err := &ErrUnknownCountry{Country: "zz"}
	if err.Error() == "" {
		t.Error("expected non-empty error message")
	}
}
