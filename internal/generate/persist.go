package generate

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/harukimoto/careplan/internal/store"
	"github.com/harukimoto/careplan/internal/types"
)

// SavePlan persists the session's plan for its current user. With
// overwrite set and a loaded plan id present, the existing record is
// updated in place; otherwise a new plan gets a fresh id. The session
// adopts the saved id either way.
func SavePlan(st *store.Store, s *Session, overwrite bool) (types.SavedPlan, error) {
	if s.UserID == "" {
		return types.SavedPlan{}, fmt.Errorf("generate: no user selected")
	}
	if s.Plan.Len() == 0 {
		return types.SavedPlan{}, fmt.Errorf("generate: plan is empty")
	}

	now := time.Now().UTC().Format(time.RFC3339)
	p := types.SavedPlan{
		ID:                 s.PlanID,
		UserID:             s.UserID,
		ServiceType:        s.ServiceType,
		Items:              append([]types.CarePlanItem(nil), s.Plan.Items()...),
		AssessmentSnapshot: s.Assessment.Snapshot(),
		UpdatedAt:          now,
	}

	if overwrite && s.PlanID != "" {
		existing, ok, err := st.GetPlan(s.PlanID)
		if err != nil {
			return types.SavedPlan{}, err
		}
		if ok {
			p.CreatedAt = existing.CreatedAt
		} else {
			p.CreatedAt = now
		}
	} else {
		p.ID = uuid.NewString()
		p.CreatedAt = now
	}

	if err := st.PutPlan(p); err != nil {
		return types.SavedPlan{}, err
	}
	s.PlanID = p.ID
	return p, nil
}

// LoadPlan replaces the session's plan and assessment with a saved
// plan's contents and binds the session to it for later overwrites.
func LoadPlan(st *store.Store, s *Session, planID string) error {
	p, ok, err := st.GetPlan(planID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("generate: plan %q not found", planID)
	}
	s.Plan.Replace(p.Items)
	s.Assessment.Restore(p.AssessmentSnapshot)
	s.UserID = p.UserID
	s.PlanID = p.ID
	if p.ServiceType != "" {
		s.ServiceType = p.ServiceType
	}
	s.Changed()
	return nil
}

// SaveProgress stores the session's assessment so it can be resumed
// later, keyed by the session's user (or the anonymous slot).
func SaveProgress(st *store.Store, s *Session) error {
	return st.SaveProgress(s.UserID, s.Snapshot())
}

// LoadProgress resumes the session from the stored snapshot for its
// user, reporting whether one existed.
func LoadProgress(st *store.Store, s *Session) (bool, error) {
	snap, ok, err := st.LoadProgress(s.UserID)
	if err != nil || !ok {
		return false, err
	}
	s.RestoreProgress(snap)
	return true, nil
}
