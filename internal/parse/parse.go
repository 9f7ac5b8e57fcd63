// Package parse recovers structured plan fields from model output. Model
// text is hostile input: it may be fenced, wrapped in prose, or not JSON
// at all, so every entry point degrades instead of failing where the
// caller has a usable fallback.
package parse

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/harukimoto/careplan/internal/types"
)

var (
	fenceOpenRe   = regexp.MustCompile("(?i)```json\\s*")
	fenceRe       = regexp.MustCompile("```\\s*")
	fencedBlockRe = regexp.MustCompile("(?s)```.*?```")

	arrayRe  = regexp.MustCompile(`(?s)\[.*\]`)
	objectRe = regexp.MustCompile(`(?s)\{.*\}`)

	needsLineRe   = regexp.MustCompile(`ニーズ[:：]\s*(.+)`)
	longLineRe    = regexp.MustCompile(`長期目標[:：]\s*(.+)`)
	shortLineRe   = regexp.MustCompile(`短期目標[:：]\s*(.+)`)
	serviceLineRe = regexp.MustCompile(`サービス内容[:：]\s*(.+)`)
)

// StripFences removes markdown code fences so the payload can be parsed
// as JSON.
func StripFences(s string) string {
	s = fenceOpenRe.ReplaceAllString(s, "")
	s = fenceRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// StripFencedBlocks drops whole fenced blocks, fences and contents both.
// Used for rewrite output where a stray block is commentary, not payload.
func StripFencedBlocks(s string) string {
	return strings.TrimSpace(fencedBlockRe.ReplaceAllString(s, ""))
}

// Fallback is the fixed record substituted when model output cannot be
// recovered at all. Generation never fails outright over a parse error.
func Fallback() types.PlanFields {
	return types.PlanFields{
		Needs:          "課題の把握が必要である",
		LongTermGoal:   "適切なケアを受けて安心して生活できる",
		ShortTermGoal:  "日常生活の課題を改善できる",
		ServiceContent: "個別のケアプランに基づくサービス提供",
	}
}

// Single extracts one plan record from model text. The first JSON object
// found wins; an array answer yields its first element. Unrecoverable
// text yields Fallback.
func Single(text string) types.PlanFields {
	cleaned := StripFences(text)

	if m := arrayRe.FindString(cleaned); m != "" {
		var arr []types.PlanFields
		if err := json.Unmarshal([]byte(m), &arr); err == nil && len(arr) > 0 {
			return arr[0]
		}
	}
	if m := objectRe.FindString(cleaned); m != "" {
		var f types.PlanFields
		if err := json.Unmarshal([]byte(m), &f); err == nil {
			return f
		}
	}
	return Fallback()
}

type arrayItem struct {
	CategoryName string `json:"categoryName"`
	types.PlanFields
}

// Array extracts a list of categorized plan records from model text.
// Missing category names become 未分類 and missing service content
// becomes 個別対応; ok is false when no JSON array could be recovered.
func Array(text string) ([]types.CarePlanItem, bool) {
	cleaned := StripFences(text)
	m := arrayRe.FindString(cleaned)
	if m == "" {
		return nil, false
	}
	var raw []arrayItem
	if err := json.Unmarshal([]byte(m), &raw); err != nil {
		return nil, false
	}
	items := make([]types.CarePlanItem, 0, len(raw))
	for _, r := range raw {
		name := r.CategoryName
		if name == "" {
			name = "未分類"
		}
		f := r.PlanFields
		if f.ServiceContent == "" {
			f.ServiceContent = "個別対応"
		}
		items = append(items, types.CarePlanItem{CategoryName: name, PlanFields: f})
	}
	return items, true
}

// Section names a plan section to look for in keyed text output.
type Section struct {
	Name string
	Icon string
}

// KeyedSections recovers records from 【...】-headed text, one section
// per requested name. A section missing any of ニーズ, 長期目標 or 短期目標
// is dropped whole; a missing サービス内容 line defaults to 個別対応.
func KeyedSections(text string, sections []Section) []types.CarePlanItem {
	var items []types.CarePlanItem
	for _, sec := range sections {
		re := regexp.MustCompile(`(?s)【[^】]*` + regexp.QuoteMeta(sec.Name) + `[^】]*】(.*?)(?:【|$)`)
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		body := m[1]
		needs := needsLineRe.FindStringSubmatch(body)
		long := longLineRe.FindStringSubmatch(body)
		short := shortLineRe.FindStringSubmatch(body)
		if needs == nil || long == nil || short == nil {
			continue
		}
		service := "個別対応"
		if sm := serviceLineRe.FindStringSubmatch(body); sm != nil {
			service = strings.TrimSpace(sm[1])
		}
		items = append(items, types.CarePlanItem{
			CategoryName: sec.Icon + " " + sec.Name,
			PlanFields: types.PlanFields{
				Needs:          strings.TrimSpace(needs[1]),
				LongTermGoal:   strings.TrimSpace(long[1]),
				ShortTermGoal:  strings.TrimSpace(short[1]),
				ServiceContent: service,
			},
		})
	}
	return items
}

// Edited recovers a whole-record rewrite. Fields left empty mean the
// original value should be kept. Tries JSON first, then ラベル: lines;
// ok is false when neither form is present.
func Edited(text string) (types.PlanFields, bool) {
	cleaned := StripFences(text)
	if m := objectRe.FindString(cleaned); m != "" {
		var f types.PlanFields
		if err := json.Unmarshal([]byte(m), &f); err == nil && (f.Needs != "" || f.LongTermGoal != "") {
			return f, true
		}
	}

	needs := needsLineRe.FindStringSubmatch(text)
	long := longLineRe.FindStringSubmatch(text)
	short := shortLineRe.FindStringSubmatch(text)
	if needs == nil || long == nil || short == nil {
		return types.PlanFields{}, false
	}
	f := types.PlanFields{
		Needs:         strings.TrimSpace(needs[1]),
		LongTermGoal:  strings.TrimSpace(long[1]),
		ShortTermGoal: strings.TrimSpace(short[1]),
	}
	if sm := serviceLineRe.FindStringSubmatch(text); sm != nil {
		f.ServiceContent = strings.TrimSpace(sm[1])
	}
	return f, true
}
