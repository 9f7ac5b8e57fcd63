package generate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/harukimoto/careplan/internal/gemini"
	"github.com/harukimoto/careplan/internal/parse"
	"github.com/harukimoto/careplan/internal/types"
)

// newTextService returns a Service whose model always answers with text.
func newTextService(t *testing.T, text string) *Service {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]string{{"text": text}}}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)
	return New(gemini.New(gemini.WithBaseURL(srv.URL), gemini.WithAPIKey("test-key")))
}

func sessionWithHealth(t *testing.T) *Session {
	t.Helper()
	s := NewSession(types.ServiceFacility)
	s.Assessment.SetChecked("health_status", []string{"持病の管理が必要"})
	return s
}

func TestCategory_AppendsParsedRow(t *testing.T) {
	// A JSON object answer becomes one row tagged with the category name.
	g := newTextService(t, `{"needs":"ニーズA","longTermGoal":"長A","shortTermGoal":"短A","serviceContent":"サA"}`)
	s := sessionWithHealth(t)

	if err := g.Category(context.Background(), s, "health_status"); err != nil {
		t.Fatalf("Category: %v", err)
	}
	if s.Plan.Len() != 1 {
		t.Fatalf("plan rows = %d, want 1", s.Plan.Len())
	}
	item, _ := s.Plan.Get(0)
	if item.CategoryName != "健康状態" {
		t.Errorf("category name = %q", item.CategoryName)
	}
	if item.Needs != "ニーズA" {
		t.Errorf("needs = %q", item.Needs)
	}
}

func TestCategory_NoCheckedItems(t *testing.T) {
	// A category with nothing checked is rejected before any model call.
	g := newTextService(t, "unused")
	s := NewSession(types.ServiceFacility)

	if err := g.Category(context.Background(), s, "health_status"); err != ErrNoCheckedItems {
		t.Fatalf("err = %v, want ErrNoCheckedItems", err)
	}
}

func TestCategory_UnknownID(t *testing.T) {
	// An unknown category id is an error, not a silent no-op.
	g := newTextService(t, "unused")
	s := sessionWithHealth(t)

	if err := g.Category(context.Background(), s, "nope"); err == nil {
		t.Fatal("expected error for unknown category")
	}
}

func TestCategory_GarbageFallsBack(t *testing.T) {
	// Unparseable model output still appends the fixed fallback record.
	g := newTextService(t, "すみません、JSONでは出力できません。")
	s := sessionWithHealth(t)

	if err := g.Category(context.Background(), s, "health_status"); err != nil {
		t.Fatalf("Category: %v", err)
	}
	item, _ := s.Plan.Get(0)
	if item.PlanFields != parse.Fallback() {
		t.Errorf("fields = %+v, want fallback record", item.PlanFields)
	}
}

func TestAllCategories_AppendsArray(t *testing.T) {
	// An array answer appends one row per element, keeping existing rows.
	g := newTextService(t, `[{"categoryName":"健康状態","needs":"n1","longTermGoal":"l1","shortTermGoal":"s1","serviceContent":"c1"},{"categoryName":"ADL","needs":"n2","longTermGoal":"l2","shortTermGoal":"s2","serviceContent":"c2"}]`)
	s := sessionWithHealth(t)
	s.Plan.Push(types.CarePlanItem{CategoryName: "既存"})

	if err := g.AllCategories(context.Background(), s); err != nil {
		t.Fatalf("AllCategories: %v", err)
	}
	if s.Plan.Len() != 3 {
		t.Fatalf("plan rows = %d, want 3", s.Plan.Len())
	}
	item, _ := s.Plan.Get(2)
	if item.CategoryName != "ADL" {
		t.Errorf("last row category = %q", item.CategoryName)
	}
}

func TestAllCategories_FallbackRecord(t *testing.T) {
	// When no array can be recovered, one 未分類 fallback row is appended.
	g := newTextService(t, "モデルの気まぐれな散文")
	s := sessionWithHealth(t)

	if err := g.AllCategories(context.Background(), s); err != nil {
		t.Fatalf("AllCategories: %v", err)
	}
	item, ok := s.Plan.Get(0)
	if !ok || item.CategoryName != "未分類" {
		t.Fatalf("row = %+v, want 未分類 fallback", item)
	}
}

func TestAllCategories_NoData(t *testing.T) {
	// An empty assessment means nothing to generate from.
	g := newTextService(t, "unused")
	s := NewSession(types.ServiceFacility)

	if err := g.AllCategories(context.Background(), s); err != ErrNoCheckedItems {
		t.Fatalf("err = %v, want ErrNoCheckedItems", err)
	}
}

func TestIntegrated_ReplacesPlan(t *testing.T) {
	// Integrated generation replaces the whole plan, not appends to it.
	g := newTextService(t, `[{"categoryName":"🍽️ 食事・水分摂取","needs":"n","longTermGoal":"l","shortTermGoal":"s","serviceContent":"c"}]`)
	s := NewSession(types.ServiceFacility)
	s.Plan.Push(types.CarePlanItem{CategoryName: "古い行"})

	if err := g.Integrated(context.Background(), s, []string{"meal"}); err != nil {
		t.Fatalf("Integrated: %v", err)
	}
	if s.Plan.Len() != 1 {
		t.Fatalf("plan rows = %d, want 1", s.Plan.Len())
	}
	item, _ := s.Plan.Get(0)
	if item.CategoryName != "🍽️ 食事・水分摂取" {
		t.Errorf("category = %q", item.CategoryName)
	}
}

func TestIntegrated_KeyedTextFallback(t *testing.T) {
	// When the answer is keyed text instead of JSON, sections are recovered.
	text := "【🍽️ 食事・水分摂取】\nニーズ: 食事n\n長期目標: 食事l\n短期目標: 食事s\nサービス内容: 食事c\n【🚽 排泄】\nニーズ: 排泄n\n長期目標: 排泄l\n短期目標: 排泄s\n"
	g := newTextService(t, text)
	s := NewSession(types.ServiceFacility)

	if err := g.Integrated(context.Background(), s, []string{"meal", "excretion"}); err != nil {
		t.Fatalf("Integrated: %v", err)
	}
	if s.Plan.Len() != 2 {
		t.Fatalf("plan rows = %d, want 2", s.Plan.Len())
	}
	second, _ := s.Plan.Get(1)
	if second.ServiceContent != "個別対応" {
		t.Errorf("missing service line should default, got %q", second.ServiceContent)
	}
}

func TestIntegrated_UnrecoverableKeepsPlan(t *testing.T) {
	// A fully unparseable answer errors and leaves the current plan alone.
	g := newTextService(t, "解析不能なテキスト")
	s := NewSession(types.ServiceFacility)
	s.Plan.Push(types.CarePlanItem{CategoryName: "残すべき行"})

	if err := g.Integrated(context.Background(), s, []string{"meal"}); err == nil {
		t.Fatal("expected error")
	}
	if s.Plan.Len() != 1 {
		t.Fatalf("plan rows = %d, want untouched 1", s.Plan.Len())
	}
}

func TestIntegrated_NoGroups(t *testing.T) {
	// Unknown group ids are skipped; all unknown means an error.
	g := newTextService(t, "unused")
	s := NewSession(types.ServiceFacility)

	if err := g.Integrated(context.Background(), s, []string{"nope"}); err == nil {
		t.Fatal("expected error for no selectable groups")
	}
}

func TestRewriteField_ReplacesField(t *testing.T) {
	// The rewritten text replaces only the targeted field.
	g := newTextService(t, "書き直されたニーズ")
	s := NewSession(types.ServiceFacility)
	s.Plan.Push(types.CarePlanItem{PlanFields: types.PlanFields{Needs: "元のニーズ", LongTermGoal: "長"}})

	if err := g.RewriteField(context.Background(), s, 0, "needs", "concise"); err != nil {
		t.Fatalf("RewriteField: %v", err)
	}
	item, _ := s.Plan.Get(0)
	if item.Needs != "書き直されたニーズ" {
		t.Errorf("needs = %q", item.Needs)
	}
	if item.LongTermGoal != "長" {
		t.Errorf("other fields must be untouched, got %q", item.LongTermGoal)
	}
}

func TestRewriteField_EmptyField(t *testing.T) {
	// Rewriting an empty field is rejected up front.
	g := newTextService(t, "unused")
	s := NewSession(types.ServiceFacility)
	s.Plan.Push(types.CarePlanItem{})

	if err := g.RewriteField(context.Background(), s, 0, "needs", "concise"); err == nil {
		t.Fatal("expected error for empty field")
	}
}

func TestRewriteRecord_EmptyKeepsOriginal(t *testing.T) {
	// Fields the model left out keep their current value after a rewrite.
	text := "ニーズ: 新n\n長期目標: 新l\n短期目標: 新s\n"
	g := newTextService(t, text)
	s := NewSession(types.ServiceFacility)
	s.Plan.Push(types.CarePlanItem{
		CategoryName: "健康状態",
		PlanFields:   types.PlanFields{Needs: "旧n", LongTermGoal: "旧l", ShortTermGoal: "旧s", ServiceContent: "旧c"},
	})

	if err := g.RewriteRecord(context.Background(), s, 0, "polite"); err != nil {
		t.Fatalf("RewriteRecord: %v", err)
	}
	item, _ := s.Plan.Get(0)
	if item.Needs != "新n" || item.ServiceContent != "旧c" {
		t.Errorf("merged = %+v", item.PlanFields)
	}
	if item.CategoryName != "健康状態" {
		t.Errorf("category must survive a rewrite, got %q", item.CategoryName)
	}
}

func TestTemplateCategory_Suggestions(t *testing.T) {
	// Checked items with templates yield one suggestion each, no model call.
	s := sessionWithHealth(t)

	suggestions, err := TemplateCategory(s, "health_status")
	if err != nil {
		t.Fatalf("TemplateCategory: %v", err)
	}
	if len(suggestions) != 1 {
		t.Fatalf("suggestions = %d, want 1", len(suggestions))
	}
	if suggestions[0].Item != "持病の管理が必要" {
		t.Errorf("item = %q", suggestions[0].Item)
	}
}

func TestTemplateCategory_NothingChecked(t *testing.T) {
	// No checked items means no suggestions and the sentinel error.
	s := NewSession(types.ServiceFacility)

	if _, err := TemplateCategory(s, "health_status"); err != ErrNoCheckedItems {
		t.Fatalf("err = %v, want ErrNoCheckedItems", err)
	}
}

func TestTemplateIntegrated_RequiredServiceApplied(t *testing.T) {
	// Required-service overrides show up in the suggested service content.
	suggestions, err := TemplateIntegrated([]string{"meal"}, map[string]string{"meal": "とろみ対応"})
	if err != nil {
		t.Fatalf("TemplateIntegrated: %v", err)
	}
	if !strings.Contains(suggestions[0].Fields.ServiceContent, "とろみ対応") {
		t.Errorf("service content = %q", suggestions[0].Fields.ServiceContent)
	}
}

func TestHooks_FireOnPlanMutation(t *testing.T) {
	// Registered hooks fire exactly once per plan-mutating operation.
	g := newTextService(t, `{"needs":"n","longTermGoal":"l","shortTermGoal":"s","serviceContent":"c"}`)
	s := sessionWithHealth(t)
	fired := 0
	s.AddHook(func(*Session) { fired++ })

	if err := g.Category(context.Background(), s, "health_status"); err != nil {
		t.Fatalf("Category: %v", err)
	}
	if fired != 1 {
		t.Errorf("hook fired %d times, want 1", fired)
	}
	s.Changed()
	if fired != 2 {
		t.Errorf("hook fired %d times after manual Changed, want 2", fired)
	}
}

func TestHooks_NotFiredOnFailure(t *testing.T) {
	// A rejected operation must not fire hooks; nothing changed.
	g := newTextService(t, "unused")
	s := NewSession(types.ServiceFacility)
	fired := 0
	s.AddHook(func(*Session) { fired++ })

	if err := g.Category(context.Background(), s, "health_status"); err != ErrNoCheckedItems {
		t.Fatalf("err = %v", err)
	}
	if fired != 0 {
		t.Errorf("hook fired %d times on failure, want 0", fired)
	}
}

func TestAvailable_NoKey(t *testing.T) {
	// Without an API key the model path reports itself unavailable.
	t.Setenv("GEMINI_API_KEY", "")
	g := New(gemini.New())
	if g.Available() {
		t.Fatal("expected unavailable without a key")
	}
}
