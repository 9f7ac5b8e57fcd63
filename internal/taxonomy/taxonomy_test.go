package taxonomy

import "testing"

func TestCategories_Count(t *testing.T) {
	// The assessment taxonomy has exactly 14 categories.
	if len(Categories) != 14 {
		t.Fatalf("len(Categories) = %d, want 14", len(Categories))
	}
}

func TestByID_Known(t *testing.T) {
	// ByID resolves a known id to the matching category.
	c := ByID("adl")
	if c == nil {
		t.Fatal("ByID(adl) returned nil")
	}
	if c.Name != "ADL（日常生活動作）" {
		t.Errorf("name = %q", c.Name)
	}
}

func TestByID_Unknown(t *testing.T) {
	// Unknown ids resolve to nil rather than a zero value.
	if c := ByID("nope"); c != nil {
		t.Errorf("ByID(nope) = %+v, want nil", c)
	}
}

func TestTemplate_EveryChecklistItemCovered(t *testing.T) {
	// Every checklist item across all categories has a plan template.
	for _, cat := range Categories {
		for _, item := range cat.CheckItems {
			if _, ok := Template(item); !ok {
				t.Errorf("no template for %q (category %s)", item, cat.ID)
			}
		}
	}
}

func TestTemplate_FieldsNonEmpty(t *testing.T) {
	// Templates never have blank fields; all four lines must carry text.
	for item := range itemTemplates {
		f, _ := Template(item)
		if f.Needs == "" || f.LongTermGoal == "" || f.ShortTermGoal == "" || f.ServiceContent == "" {
			t.Errorf("template for %q has an empty field", item)
		}
	}
}

func TestIntegratedCategories_ItemsHaveTemplates(t *testing.T) {
	// Integrated groups only reference items that exist in the item
	// template table, so compression can always fall back per item.
	for _, ic := range IntegratedCategories {
		for _, item := range ic.Items {
			if _, ok := Template(item); !ok {
				t.Errorf("integrated %s references unknown item %q", ic.ID, item)
			}
		}
	}
}

func TestIntegratedByID_Order(t *testing.T) {
	// The seven integrated groups keep plan-sheet order, meal first.
	want := []string{"meal", "excretion", "bathing", "grooming", "mobility", "medical", "psychosocial"}
	if len(IntegratedCategories) != len(want) {
		t.Fatalf("len = %d, want %d", len(IntegratedCategories), len(want))
	}
	for i, id := range want {
		if IntegratedCategories[i].ID != id {
			t.Errorf("position %d = %s, want %s", i, IntegratedCategories[i].ID, id)
		}
		if IntegratedByID(id) == nil {
			t.Errorf("IntegratedByID(%s) = nil", id)
		}
	}
}

func TestCheckedIn_PreservesGroupOrder(t *testing.T) {
	// CheckedIn returns the group's own ordering regardless of how the
	// checked set was built.
	meal := IntegratedByID("meal")
	checked := map[string]bool{
		"経管栄養を使用": true,
		"食欲不振がある": true,
		"偏食がある":   true,
	}
	got := meal.CheckedIn(checked)
	want := []string{"食欲不振がある", "偏食がある", "経管栄養を使用"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestStateSuggestions_DefaultFirst(t *testing.T) {
	// The default state leads the suggestion list, followed by variants.
	got := StateSuggestions("歩行が不安定", "歩行が不安定")
	if len(got) != 4 {
		t.Fatalf("len = %d, want 4: %v", len(got), got)
	}
	if got[0] != "歩行が不安定" {
		t.Errorf("first = %q", got[0])
	}
}

func TestStateSuggestions_NoVariants(t *testing.T) {
	// Items without variants still return the default state alone.
	got := StateSuggestions("調理が困難", "調理が困難だ")
	if len(got) != 1 || got[0] != "調理が困難だ" {
		t.Errorf("got %v", got)
	}
}

func TestStateSuggestions_Dedup(t *testing.T) {
	// A default that matches a variant is not listed twice.
	got := StateSuggestions("歩行が不安定", "ふらつきがある")
	for i, s := range got {
		for j, other := range got {
			if i != j && s == other {
				t.Fatalf("duplicate %q in %v", s, got)
			}
		}
	}
	if len(got) != 3 {
		t.Errorf("len = %d, want 3: %v", len(got), got)
	}
}
