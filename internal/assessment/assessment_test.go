package assessment

import (
	"testing"

	"github.com/harukimoto/careplan/internal/types"
)

func TestGet_MissingCategory(t *testing.T) {
	// Unknown categories come back as an empty entry, not a panic.
	s := New()
	e := s.Get("adl")
	if len(e.CheckedItems) != 0 || e.DetailText != "" {
		t.Errorf("got %+v, want empty entry", e)
	}
}

func TestSetChecked_CopiesInput(t *testing.T) {
	// Mutating the caller's slice after SetChecked must not leak in.
	s := New()
	items := []string{"歩行が不安定"}
	s.SetChecked("adl", items)
	items[0] = "changed"
	if got := s.Get("adl").CheckedItems[0]; got != "歩行が不安定" {
		t.Errorf("stored item = %q", got)
	}
}

func TestToggle_AddThenRemove(t *testing.T) {
	// Toggling twice returns to the original state and reports each flip.
	s := New()
	if on := s.Toggle("adl", "転倒リスクがある"); !on {
		t.Error("first toggle should check the item")
	}
	if on := s.Toggle("adl", "転倒リスクがある"); on {
		t.Error("second toggle should uncheck the item")
	}
	if n := len(s.Get("adl").CheckedItems); n != 0 {
		t.Errorf("items left = %d", n)
	}
}

func TestToggle_PreservesOrder(t *testing.T) {
	// Removing a middle item keeps the check order of the rest.
	s := New()
	s.SetChecked("adl", []string{"a", "b", "c"})
	s.Toggle("adl", "b")
	got := s.Get("adl").CheckedItems
	if len(got) != 2 || got[0] != "a" || got[1] != "c" {
		t.Errorf("got %v", got)
	}
}

func TestCountCategoriesWithData_DetailOnlyDoesNotCount(t *testing.T) {
	// A category with only free text and no checks is not counted; the
	// counter gates generation, which needs checked items.
	s := New()
	s.SetDetail("adl", "夜間にふらつきが強い")
	if n := s.CountCategoriesWithData(); n != 0 {
		t.Errorf("count = %d, want 0", n)
	}
	s.SetChecked("adl", []string{"歩行が不安定"})
	if n := s.CountCategoriesWithData(); n != 1 {
		t.Errorf("count = %d, want 1", n)
	}
}

func TestCategoriesWithData_TaxonomyOrder(t *testing.T) {
	// Output follows taxonomy order, not insertion order.
	s := New()
	s.SetChecked("oral", []string{"口臭がある"})
	s.SetChecked("adl", []string{"歩行が不安定"})
	got := s.CategoriesWithData()
	if len(got) != 2 || got[0].ID != "adl" || got[1].ID != "oral" {
		ids := make([]string, len(got))
		for i, c := range got {
			ids[i] = c.ID
		}
		t.Errorf("order = %v, want [adl oral]", ids)
	}
}

func TestCheckedSet_AcrossCategories(t *testing.T) {
	// The flattened set spans every category.
	s := New()
	s.SetChecked("adl", []string{"歩行が不安定"})
	s.SetChecked("oral", []string{"口臭がある"})
	set := s.CheckedSet()
	if !set["歩行が不安定"] || !set["口臭がある"] {
		t.Errorf("set = %v", set)
	}
}

func TestSnapshot_OmitsEmptyEntries(t *testing.T) {
	// Entries that were written and then cleared do not persist.
	s := New()
	s.SetChecked("adl", []string{"歩行が不安定"})
	s.SetChecked("adl", nil)
	s.SetDetail("oral", "義歯の調整中")
	snap := s.Snapshot()
	if _, ok := snap["adl"]; ok {
		t.Error("empty adl entry should be omitted")
	}
	if snap["oral"].DetailText != "義歯の調整中" {
		t.Errorf("oral = %+v", snap["oral"])
	}
}

func TestRestore_RoundTrip(t *testing.T) {
	// Restore reproduces a snapshot and detaches from it.
	s := New()
	s.SetChecked("adl", []string{"歩行が不安定", "転倒リスクがある"})
	s.SetDetail("adl", "屋外は車いす")
	snap := s.Snapshot()

	r := New()
	r.Restore(snap)
	e := r.Get("adl")
	if len(e.CheckedItems) != 2 || e.DetailText != "屋外は車いす" {
		t.Fatalf("restored = %+v", e)
	}

	snap["adl"] = types.AssessmentEntry{CheckedItems: []string{"x"}}
	if r.Get("adl").CheckedItems[0] != "歩行が不安定" {
		t.Error("restore should copy, not alias, the snapshot")
	}
}

func TestRestore_NilClears(t *testing.T) {
	// Restoring nil empties the state.
	s := New()
	s.SetChecked("adl", []string{"歩行が不安定"})
	s.Restore(nil)
	if n := s.CountCategoriesWithData(); n != 0 {
		t.Errorf("count after clear = %d", n)
	}
}
