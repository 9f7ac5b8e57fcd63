package generate

import (
	"path/filepath"
	"testing"

	"github.com/harukimoto/careplan/internal/store"
	"github.com/harukimoto/careplan/internal/types"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func sessionWithPlan(t *testing.T, userID string) *Session {
	t.Helper()
	s := NewSession(types.ServiceHome)
	s.UserID = userID
	s.Assessment.SetChecked("adl", []string{"歩行が不安定"})
	s.Plan.Push(types.CarePlanItem{
		CategoryName: "ADL（日常生活動作）",
		PlanFields:   types.PlanFields{Needs: "n", LongTermGoal: "l", ShortTermGoal: "s", ServiceContent: "c"},
	})
	return s
}

func TestSavePlan_New(t *testing.T) {
	// A fresh save mints an id, stamps both timestamps, and binds the session.
	st := openTestStore(t)
	s := sessionWithPlan(t, "u1")

	p, err := SavePlan(st, s, false)
	if err != nil {
		t.Fatalf("SavePlan: %v", err)
	}
	if p.ID == "" {
		t.Fatal("expected a minted plan id")
	}
	if p.CreatedAt == "" || p.CreatedAt != p.UpdatedAt {
		t.Errorf("timestamps = %q / %q", p.CreatedAt, p.UpdatedAt)
	}
	if s.PlanID != p.ID {
		t.Errorf("session plan id = %q, want %q", s.PlanID, p.ID)
	}
	got, ok, err := st.GetPlan(p.ID)
	if err != nil || !ok {
		t.Fatalf("GetPlan: ok=%v err=%v", ok, err)
	}
	if len(got.Items) != 1 || got.Items[0].Needs != "n" {
		t.Errorf("stored items = %+v", got.Items)
	}
	if len(got.AssessmentSnapshot) != 1 {
		t.Errorf("snapshot categories = %d, want 1", len(got.AssessmentSnapshot))
	}
}

func TestSavePlan_OverwriteKeepsCreatedAt(t *testing.T) {
	// Overwrite updates the same record and preserves its creation time.
	st := openTestStore(t)
	s := sessionWithPlan(t, "u1")

	first, err := SavePlan(st, s, false)
	if err != nil {
		t.Fatalf("first save: %v", err)
	}
	s.Plan.SetField(0, "needs", "書き換え後")

	second, err := SavePlan(st, s, true)
	if err != nil {
		t.Fatalf("overwrite save: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("id changed on overwrite: %q -> %q", first.ID, second.ID)
	}
	if second.CreatedAt != first.CreatedAt {
		t.Errorf("createdAt changed on overwrite")
	}
	got, _, _ := st.GetPlan(first.ID)
	if got.Items[0].Needs != "書き換え後" {
		t.Errorf("stored needs = %q", got.Items[0].Needs)
	}
}

func TestSavePlan_SaveAsNew(t *testing.T) {
	// Saving without overwrite from a loaded plan forks a new record.
	st := openTestStore(t)
	s := sessionWithPlan(t, "u1")

	first, _ := SavePlan(st, s, false)
	second, err := SavePlan(st, s, false)
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if second.ID == first.ID {
		t.Fatal("expected a new id when not overwriting")
	}
	plans, err := st.PlansForUser("u1")
	if err != nil {
		t.Fatalf("PlansForUser: %v", err)
	}
	if len(plans) != 2 {
		t.Errorf("plans = %d, want 2", len(plans))
	}
}

func TestSavePlan_Rejections(t *testing.T) {
	// No user or an empty plan both refuse to save.
	st := openTestStore(t)

	noUser := sessionWithPlan(t, "")
	if _, err := SavePlan(st, noUser, false); err == nil {
		t.Error("expected error without a user")
	}

	empty := NewSession(types.ServiceHome)
	empty.UserID = "u1"
	if _, err := SavePlan(st, empty, false); err == nil {
		t.Error("expected error for an empty plan")
	}
}

func TestLoadPlan_RestoresSession(t *testing.T) {
	// Loading a saved plan restores rows, assessment, user, and binding.
	st := openTestStore(t)
	saved := sessionWithPlan(t, "u1")
	p, _ := SavePlan(st, saved, false)

	s := NewSession(types.ServiceFacility)
	if err := LoadPlan(st, s, p.ID); err != nil {
		t.Fatalf("LoadPlan: %v", err)
	}
	if s.Plan.Len() != 1 || s.UserID != "u1" || s.PlanID != p.ID {
		t.Errorf("session = rows %d user %q plan %q", s.Plan.Len(), s.UserID, s.PlanID)
	}
	if s.ServiceType != types.ServiceHome {
		t.Errorf("service type = %q, want home", s.ServiceType)
	}
	if got := s.Assessment.Get("adl"); len(got.CheckedItems) != 1 {
		t.Errorf("restored assessment = %+v", got)
	}
}

func TestLoadPlan_Unknown(t *testing.T) {
	// Loading a missing id errors without touching the session.
	st := openTestStore(t)
	s := sessionWithPlan(t, "u1")

	if err := LoadPlan(st, s, "nope"); err == nil {
		t.Fatal("expected error for unknown plan")
	}
	if s.Plan.Len() != 1 {
		t.Errorf("plan rows = %d, want untouched 1", s.Plan.Len())
	}
}

func TestProgress_RoundTrip(t *testing.T) {
	// Progress saved for a session resumes into a fresh one.
	st := openTestStore(t)
	s := sessionWithPlan(t, "u1")
	s.CategoryIndex = 3

	if err := SaveProgress(st, s); err != nil {
		t.Fatalf("SaveProgress: %v", err)
	}

	resumed := NewSession(types.ServiceFacility)
	resumed.UserID = "u1"
	ok, err := LoadProgress(st, resumed)
	if err != nil || !ok {
		t.Fatalf("LoadProgress: ok=%v err=%v", ok, err)
	}
	if resumed.CategoryIndex != 3 {
		t.Errorf("category index = %d, want 3", resumed.CategoryIndex)
	}
	if resumed.ServiceType != types.ServiceHome {
		t.Errorf("service type = %q, want home", resumed.ServiceType)
	}
	if got := resumed.Assessment.Get("adl"); len(got.CheckedItems) != 1 {
		t.Errorf("resumed assessment = %+v", got)
	}
}

func TestProgress_AnonymousSlot(t *testing.T) {
	// A session without a user saves into the shared anonymous slot.
	st := openTestStore(t)
	s := NewSession(types.ServiceFacility)
	s.Assessment.SetDetail("other", "メモ")

	if err := SaveProgress(st, s); err != nil {
		t.Fatalf("SaveProgress: %v", err)
	}
	resumed := NewSession(types.ServiceFacility)
	ok, err := LoadProgress(st, resumed)
	if err != nil || !ok {
		t.Fatalf("LoadProgress: ok=%v err=%v", ok, err)
	}
	if got := resumed.Assessment.Get("other"); got.DetailText != "メモ" {
		t.Errorf("resumed detail = %q", got.DetailText)
	}
}
