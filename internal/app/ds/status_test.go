package ds

import "testing"

func TestStatusNameValid(t *testing.T) {
	for _, name := range AllStatuses() {
		if !name.Valid() {
			t.Errorf("%q must be valid", name)
		}
	}
	if StatusName("closed").Valid() {
		t.Error("unknown status must be invalid")
	}
	if StatusName("").Valid() {
		t.Error("empty status must be invalid")
	}
}

func TestStatusNameTerminal(t *testing.T) {
	cases := map[StatusName]bool{
		StatusNew:        false,
		StatusInProgress: false,
		StatusCompleted:  true,
		StatusCancel:     true,
	}
	for name, want := range cases {
		if got := name.Terminal(); got != want {
			t.Errorf("%q.Terminal() = %v, want %v", name, got, want)
		}
	}
}

func TestAllStatusesOrder(t *testing.T) {
	// Порядок фиксирован: на него опирается сидирование справочника
	want := []StatusName{StatusNew, StatusInProgress, StatusCompleted, StatusCancel}
	got := AllStatuses()
	if len(got) != len(want) {
		t.Fatalf("statuses = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("statuses[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
