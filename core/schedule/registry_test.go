package schedule

import (
	"testing"

	"github.com/progtools/conplan/core/clock"
	"github.com/progtools/conplan/core/model"
)

func itemAt(t *testing.T, room string) *model.Item {
	t.Helper()
	week := clock.DefaultWeek()
	tm, err := week.Parse("Friday 2 pm")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return &model.Item{Time: tm, Length: 1, Room: room, Parms: model.NewParmDict()}
}

func TestRegistryUniquifies(t *testing.T) {
	reg := NewRegistry(clock.DefaultWeek())

	first := itemAt(t, "RoomX")
	if got := reg.Register("Panel", first); got != "Panel" {
		t.Fatalf("first Register = %q", got)
	}
	second := itemAt(t, "RoomY")
	got := reg.Register("Panel", second)
	want := "Panel {RoomY Friday 2 pm}"
	if got != want {
		t.Fatalf("second Register = %q, want %q", got, want)
	}
	if second.Name != want {
		t.Errorf("final name not stored on item: %q", second.Name)
	}
	if _, ok := reg.Lookup(want); !ok {
		t.Errorf("decorated key not in registry")
	}
	if reg.Len() != 2 {
		t.Errorf("Len = %d", reg.Len())
	}
	names := reg.Names()
	if names[0] != "Panel" || names[1] != want {
		t.Errorf("Names = %v", names)
	}
}
