package plangen

import (
	"strings"
	"testing"

	"github.com/harukimoto/careplan/internal/types"
)

func TestSplitNeeds_FullSeparator(t *testing.T) {
	// だが、 splits into state and wish.
	state, wish := SplitNeeds("歩行が不安定だが、転倒せずに歩きたい")
	if state != "歩行が不安定" || wish != "転倒せずに歩きたい" {
		t.Errorf("state=%q wish=%q", state, wish)
	}
}

func TestSplitNeeds_BareSeparator(t *testing.T) {
	// だが without the comma still splits.
	state, wish := SplitNeeds("独居だが安心して暮らしたい")
	if state != "独居" || wish != "安心して暮らしたい" {
		t.Errorf("state=%q wish=%q", state, wish)
	}
}

func TestSplitNeeds_NoSeparator(t *testing.T) {
	// A sentence with no だが is all state.
	state, wish := SplitNeeds("本人の希望を叶えたい")
	if state != "本人の希望を叶えたい" || wish != "" {
		t.Errorf("state=%q wish=%q", state, wish)
	}
}

func TestComposeNeeds_EmptyWish(t *testing.T) {
	// No wish means no separator either.
	if got := ComposeNeeds("状態", ""); got != "状態" {
		t.Errorf("got %q", got)
	}
	if got := ComposeNeeds("状態", "希望したい"); got != "状態だが、希望したい" {
		t.Errorf("got %q", got)
	}
}

func TestFromChecklist_SkipsUnknownItems(t *testing.T) {
	// Items without a template are dropped silently, not errored.
	entry := types.AssessmentEntry{CheckedItems: []string{"歩行が不安定", "存在しない項目"}}
	got := FromChecklist(entry)
	if len(got) != 1 || got[0].Item != "歩行が不安定" {
		t.Fatalf("got %+v", got)
	}
}

func TestFromChecklist_DetailSuffix(t *testing.T) {
	// Detail text lands on service content behind 【詳細】 and nowhere else.
	entry := types.AssessmentEntry{
		CheckedItems: []string{"歩行が不安定"},
		DetailText:   "  夜間にふらつきが強い  ",
	}
	s := FromChecklist(entry)[0]
	if s.Fields.ServiceContent != "歩行訓練、見守り、福祉用具【詳細】夜間にふらつきが強い" {
		t.Errorf("serviceContent = %q", s.Fields.ServiceContent)
	}
	if strings.Contains(s.Fields.Needs, "詳細") || strings.Contains(s.Fields.LongTermGoal, "詳細") {
		t.Error("detail leaked outside service content")
	}
}

func TestFromChecklist_StateWishPreSplit(t *testing.T) {
	// Each suggestion arrives pre-split with the default state first in
	// the suggestion list.
	entry := types.AssessmentEntry{CheckedItems: []string{"歩行が不安定"}}
	s := FromChecklist(entry)[0]
	if s.State != "歩行が不安定" || s.Wish != "転倒せずに歩きたい" {
		t.Errorf("state=%q wish=%q", s.State, s.Wish)
	}
	if len(s.StateSuggestions) != 4 || s.StateSuggestions[0] != "歩行が不安定" {
		t.Errorf("suggestions = %v", s.StateSuggestions)
	}
}

func TestResolve_CustomState(t *testing.T) {
	// Resolving with a chosen state rewrites only the needs sentence.
	entry := types.AssessmentEntry{CheckedItems: []string{"歩行が不安定"}}
	s := FromChecklist(entry)[0]
	f := s.Resolve("ふらつきがある")
	if f.Needs != "ふらつきがあるだが、転倒せずに歩きたい" {
		t.Errorf("needs = %q", f.Needs)
	}
	if f.LongTermGoal != s.Fields.LongTermGoal {
		t.Error("long-term goal should be untouched")
	}
}

func TestCarePlanItem_CategoryIsItemName(t *testing.T) {
	// On the template path the checklist item doubles as the category.
	entry := types.AssessmentEntry{CheckedItems: []string{"歩行が不安定"}}
	item := FromChecklist(entry)[0].CarePlanItem("")
	if item.CategoryName != "歩行が不安定" {
		t.Errorf("categoryName = %q", item.CategoryName)
	}
	if item.Needs != "歩行が不安定だが、転倒せずに歩きたい" {
		t.Errorf("needs = %q", item.Needs)
	}
}

func TestFromIntegrated_RequiredServiceAppended(t *testing.T) {
	// A group's required-service override joins the service content with
	// a comma; groups without one keep the template text.
	got := FromIntegrated([]string{"meal", "excretion"}, map[string]string{
		"meal": "とろみ付き水分の提供",
	})
	if len(got) != 2 {
		t.Fatalf("len = %d", len(got))
	}
	if !strings.HasSuffix(got[0].Fields.ServiceContent, "、とろみ付き水分の提供") {
		t.Errorf("meal service = %q", got[0].Fields.ServiceContent)
	}
	if got[1].Fields.ServiceContent != "排泄誘導、パッド使用、陰部清拭" {
		t.Errorf("excretion service = %q", got[1].Fields.ServiceContent)
	}
}

func TestFromIntegrated_IconTaggedName(t *testing.T) {
	// Group rows carry icon-tagged category names.
	got := FromIntegrated([]string{"meal"}, nil)
	if got[0].CategoryName != "🍽️ 食事・水分摂取" {
		t.Errorf("categoryName = %q", got[0].CategoryName)
	}
}

func TestFromIntegrated_UnknownGroupSkipped(t *testing.T) {
	// Unknown ids are skipped, known ones kept.
	got := FromIntegrated([]string{"nope", "mobility"}, nil)
	if len(got) != 1 || got[0].GroupID != "mobility" {
		t.Errorf("got %+v", got)
	}
}
