// Package plangen is the template generation path: plan records built
// from the fixed taxonomy with no model call. It also owns the
// state/wish split of a needs sentence, which the editing flow uses to
// let the state half be reworded while the wish half stays put.
package plangen

import (
	"strings"

	"github.com/harukimoto/careplan/internal/taxonomy"
	"github.com/harukimoto/careplan/internal/types"
)

// SplitNeeds divides a 「〜〜だが、〜〜したい」 sentence into its state and
// wish halves. だが、 splits before だが; a sentence with neither is all
// state and no wish.
func SplitNeeds(needs string) (state, wish string) {
	if i := strings.Index(needs, "だが、"); i >= 0 {
		return needs[:i], needs[i+len("だが、"):]
	}
	if i := strings.Index(needs, "だが"); i >= 0 {
		return needs[:i], needs[i+len("だが"):]
	}
	return needs, ""
}

// ComposeNeeds is the inverse of SplitNeeds. An empty wish yields the
// state alone, with no dangling separator.
func ComposeNeeds(state, wish string) string {
	if wish == "" {
		return state
	}
	return state + "だが、" + wish
}

// Suggestion is one checklist item's template offer, with the needs
// sentence pre-split so the caller can offer alternate state wordings.
type Suggestion struct {
	Item             string
	State            string
	Wish             string
	StateSuggestions []string
	Fields           types.PlanFields
}

// Resolve builds the final plan fields with the chosen state worded in.
// An empty state keeps the template's own.
func (s Suggestion) Resolve(state string) types.PlanFields {
	if state == "" {
		state = s.State
	}
	f := s.Fields
	f.Needs = ComposeNeeds(state, s.Wish)
	return f
}

// FromChecklist offers one suggestion per checked item that has a
// template; items without one are skipped silently. Detail text, when
// present, is appended to every suggestion's service content behind a
// 【詳細】 marker. Detail never touches the other three fields.
func FromChecklist(entry types.AssessmentEntry) []Suggestion {
	detail := strings.TrimSpace(entry.DetailText)
	var out []Suggestion
	for _, item := range entry.CheckedItems {
		tpl, ok := taxonomy.Template(item)
		if !ok {
			continue
		}
		if detail != "" {
			tpl.ServiceContent += "【詳細】" + detail
		}
		state, wish := SplitNeeds(tpl.Needs)
		out = append(out, Suggestion{
			Item:             item,
			State:            state,
			Wish:             wish,
			StateSuggestions: taxonomy.StateSuggestions(item, state),
			Fields:           tpl,
		})
	}
	return out
}

// CarePlanItem converts a resolved suggestion into a plan row. The checklist
// item name doubles as the row's category label on the template path.
func (s Suggestion) CarePlanItem(state string) types.CarePlanItem {
	return types.CarePlanItem{CategoryName: s.Item, PlanFields: s.Resolve(state)}
}

// GroupSuggestion is one integrated group's template offer.
type GroupSuggestion struct {
	GroupID          string
	CategoryName     string
	State            string
	Wish             string
	StateSuggestions []string
	Fields           types.PlanFields
}

// Resolve builds the group's plan fields with the chosen state.
func (g GroupSuggestion) Resolve(state string) types.PlanFields {
	if state == "" {
		state = g.State
	}
	f := g.Fields
	f.Needs = ComposeNeeds(state, g.Wish)
	return f
}

// CarePlanItem converts a resolved group suggestion into a plan row.
func (g GroupSuggestion) CarePlanItem(state string) types.CarePlanItem {
	return types.CarePlanItem{CategoryName: g.CategoryName, PlanFields: g.Resolve(state)}
}

// FromIntegrated offers one suggestion per selected integrated group.
// Groups work even with no matching checks; the template stands on its
// own. A required-service override for the group is appended to its
// service content, comma separated. Unknown group ids are skipped.
func FromIntegrated(groupIDs []string, requiredServices map[string]string) []GroupSuggestion {
	var out []GroupSuggestion
	for _, id := range groupIDs {
		group := taxonomy.IntegratedByID(id)
		if group == nil {
			continue
		}
		fields := group.Template
		if req := requiredServices[id]; req != "" {
			fields.ServiceContent += "、" + req
		}
		state, wish := SplitNeeds(fields.Needs)
		out = append(out, GroupSuggestion{
			GroupID:          id,
			CategoryName:     group.Icon + " " + group.Name,
			State:            state,
			Wish:             wish,
			StateSuggestions: taxonomy.StateSuggestions(group.Name, state),
			Fields:           fields,
		})
	}
	return out
}
