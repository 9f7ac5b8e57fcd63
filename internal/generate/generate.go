// Package generate orchestrates the two generation paths over a working
// session: model-assisted (Gemini) and template-only. Model output is
// recovered through parse; the template path cannot fail.
package generate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/harukimoto/careplan/internal/assessment"
	"github.com/harukimoto/careplan/internal/gemini"
	"github.com/harukimoto/careplan/internal/parse"
	"github.com/harukimoto/careplan/internal/plan"
	"github.com/harukimoto/careplan/internal/plangen"
	"github.com/harukimoto/careplan/internal/prompt"
	"github.com/harukimoto/careplan/internal/taxonomy"
	"github.com/harukimoto/careplan/internal/types"
)

// Session is the live working set: the assessment under way, the plan
// rows produced so far, and which user and saved plan they belong to.
type Session struct {
	Assessment    *assessment.State
	Plan          *plan.Collection
	ServiceType   types.ServiceType
	UserID        string
	PlanID        string // id of the loaded saved plan, "" when fresh
	CategoryIndex int

	hooks []Hook
}

// Hook observes the session after its plan collection changed. Hooks
// are registered at composition time; the REPL uses one to refresh the
// view and autosave progress.
type Hook func(*Session)

// AddHook registers a hook. Not safe for concurrent use; registration
// happens before the session is in play.
func (s *Session) AddHook(h Hook) {
	s.hooks = append(s.hooks, h)
}

// Changed fires the registered hooks. Operations that mutate the plan
// call this; callers mutating the collection directly should too.
func (s *Session) Changed() {
	for _, h := range s.hooks {
		h(s)
	}
}

// NewSession starts an empty session for the given service type.
func NewSession(st types.ServiceType) *Session {
	return &Session{
		Assessment:  assessment.New(),
		Plan:        &plan.Collection{},
		ServiceType: st,
	}
}

// Snapshot captures the session as a progress record for persistence.
func (s *Session) Snapshot() types.ProgressSnapshot {
	return types.ProgressSnapshot{
		Assessment:    s.Assessment.Snapshot(),
		ServiceType:   s.ServiceType,
		CategoryIndex: s.CategoryIndex,
	}
}

// RestoreProgress resumes the session from a progress record. The plan
// collection is untouched; progress snapshots carry assessment only.
func (s *Session) RestoreProgress(snap types.ProgressSnapshot) {
	s.Assessment.Restore(snap.Assessment)
	if snap.ServiceType != "" {
		s.ServiceType = snap.ServiceType
	}
	s.CategoryIndex = snap.CategoryIndex
}

// State rebuilds the session into a SessionState for backup envelopes.
func (s *Session) State() *types.SessionState {
	return &types.SessionState{
		Assessment:    s.Assessment.Snapshot(),
		CarePlanItems: s.Plan.Items(),
		ServiceType:   s.ServiceType,
		CurrentUserID: s.UserID,
	}
}

// Service runs model-assisted generation against a Gemini client.
type Service struct {
	client *gemini.Client
}

// New creates a Service.
func New(client *gemini.Client) *Service {
	return &Service{client: client}
}

// Available reports whether the model path can be used at all.
func (g *Service) Available() bool {
	return g.client.Configured()
}

// ErrNoCheckedItems rejects generation for a category with nothing
// checked; the prompt would have no material to work from.
var ErrNoCheckedItems = fmt.Errorf("generate: no checked items")

// Category generates one plan row from a single category's assessment
// and appends it to the session's plan. Unparseable model output
// degrades to the fixed fallback record rather than failing.
func (g *Service) Category(ctx context.Context, s *Session, categoryID string) error {
	cat := taxonomy.ByID(categoryID)
	if cat == nil {
		return fmt.Errorf("generate: unknown category %q", categoryID)
	}
	entry := s.Assessment.Get(categoryID)
	if len(entry.CheckedItems) == 0 {
		return ErrNoCheckedItems
	}

	text, err := g.client.Generate(ctx, prompt.Single(s.ServiceType, prompt.CategoryInput{
		Category: *cat,
		Entry:    entry,
	}))
	if err != nil {
		return err
	}

	fields := parse.Single(text)
	s.Plan.Push(types.CarePlanItem{CategoryName: cat.Name, PlanFields: fields})
	slog.Info("[GEN] category generated", "category", categoryID)
	s.Changed()
	return nil
}

// AllCategories generates one row per category with data, in a single
// model call, and appends the results. When the array cannot be
// recovered the fixed fallback record stands in, so a degraded answer
// still moves the session forward.
func (g *Service) AllCategories(ctx context.Context, s *Session) error {
	cats := s.Assessment.CategoriesWithData()
	if len(cats) == 0 {
		return ErrNoCheckedItems
	}
	inputs := make([]prompt.CategoryInput, 0, len(cats))
	for _, cat := range cats {
		inputs = append(inputs, prompt.CategoryInput{Category: cat, Entry: s.Assessment.Get(cat.ID)})
	}

	text, err := g.client.Generate(ctx, prompt.Integrated(s.ServiceType, inputs))
	if err != nil {
		return err
	}

	items, ok := parse.Array(text)
	if !ok || len(items) == 0 {
		slog.Warn("[GEN] array recovery failed, using fallback record")
		items = []types.CarePlanItem{{CategoryName: "未分類", PlanFields: parse.Fallback()}}
	}
	s.Plan.Push(items...)
	s.Changed()
	return nil
}

// Integrated generates one row per selected integrated group and
// REPLACES the whole plan with the result: integrated generation is a
// rewrite of the sheet, not an addition to it. JSON is tried first,
// then 【...】-keyed text; when neither yields a single row the existing
// plan is left untouched and an error is returned.
func (g *Service) Integrated(ctx context.Context, s *Session, groupIDs []string) error {
	checked := s.Assessment.CheckedSet()
	var groups []prompt.GroupInput
	var sections []parse.Section
	for _, id := range groupIDs {
		group := taxonomy.IntegratedByID(id)
		if group == nil {
			continue
		}
		groups = append(groups, prompt.GroupInput{Group: *group, Items: group.CheckedIn(checked)})
		sections = append(sections, parse.Section{Name: group.Name, Icon: group.Icon})
	}
	if len(groups) == 0 {
		return fmt.Errorf("generate: no groups selected")
	}

	text, err := g.client.Generate(ctx, prompt.IntegratedGroups(groups))
	if err != nil {
		return err
	}

	items, ok := parse.Array(text)
	if !ok || len(items) == 0 {
		items = parse.KeyedSections(text, sections)
	}
	if len(items) == 0 {
		return fmt.Errorf("generate: could not recover any plan rows from model output")
	}
	s.Plan.Replace(items)
	slog.Info("[GEN] integrated generation replaced plan", "rows", len(items))
	s.Changed()
	return nil
}

// RewriteField reworks one field of the row at index in the given
// style. The rewritten text replaces the field only when the model
// returned something non-empty after stripping stray fenced blocks.
func (g *Service) RewriteField(ctx context.Context, s *Session, index int, field string, style prompt.RewriteStyle) error {
	item, ok := s.Plan.Get(index)
	if !ok {
		return fmt.Errorf("generate: no plan row at %d", index)
	}
	current := fieldValue(item.PlanFields, field)
	if current == "" {
		return fmt.Errorf("generate: field %q is empty", field)
	}

	text, err := g.client.Generate(ctx, prompt.RewriteField(field, style, current))
	if err != nil {
		return err
	}
	cleaned := parse.StripFencedBlocks(text)
	if cleaned == "" {
		return fmt.Errorf("generate: empty rewrite")
	}
	s.Plan.SetField(index, field, cleaned)
	s.Changed()
	return nil
}

// RewriteRecord reworks all four fields of the row at index. Fields the
// model left out keep their current value.
func (g *Service) RewriteRecord(ctx context.Context, s *Session, index int, style prompt.RewriteStyle) error {
	item, ok := s.Plan.Get(index)
	if !ok {
		return fmt.Errorf("generate: no plan row at %d", index)
	}

	text, err := g.client.Generate(ctx, prompt.RewriteRecord(style, item.PlanFields))
	if err != nil {
		return err
	}
	edited, ok := parse.Edited(text)
	if !ok {
		return fmt.Errorf("generate: could not parse rewrite output")
	}
	merged := item
	if edited.Needs != "" {
		merged.Needs = edited.Needs
	}
	if edited.LongTermGoal != "" {
		merged.LongTermGoal = edited.LongTermGoal
	}
	if edited.ShortTermGoal != "" {
		merged.ShortTermGoal = edited.ShortTermGoal
	}
	if edited.ServiceContent != "" {
		merged.ServiceContent = edited.ServiceContent
	}
	s.Plan.Set(index, merged)
	s.Changed()
	return nil
}

func fieldValue(f types.PlanFields, field string) string {
	switch field {
	case "needs":
		return f.Needs
	case "longTermGoal":
		return f.LongTermGoal
	case "shortTermGoal":
		return f.ShortTermGoal
	case "serviceContent":
		return f.ServiceContent
	default:
		return ""
	}
}

// TemplateCategory offers template suggestions for one category; the
// caller resolves states and appends the chosen ones. No model, no key.
func TemplateCategory(s *Session, categoryID string) ([]plangen.Suggestion, error) {
	entry := s.Assessment.Get(categoryID)
	if len(entry.CheckedItems) == 0 {
		return nil, ErrNoCheckedItems
	}
	suggestions := plangen.FromChecklist(entry)
	if len(suggestions) == 0 {
		return nil, fmt.Errorf("generate: no templates for the checked items")
	}
	return suggestions, nil
}

// TemplateIntegrated offers one template suggestion per selected group,
// with required-service overrides worked in. Accepting them replaces
// the plan, mirroring the model-path integrated semantics.
func TemplateIntegrated(groupIDs []string, requiredServices map[string]string) ([]plangen.GroupSuggestion, error) {
	suggestions := plangen.FromIntegrated(groupIDs, requiredServices)
	if len(suggestions) == 0 {
		return nil, fmt.Errorf("generate: no groups selected")
	}
	return suggestions, nil
}
