// Package ui renders the terminal views: the assessment checklist, the
// plan table, progress, and user-facing error guidance. All renderers
// return strings so they can be tested without a terminal.
package ui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/harukimoto/careplan/internal/taxonomy"
	"github.com/harukimoto/careplan/internal/types"
)

// ANSI codes
const (
	ansiReset  = "\033[0m"
	ansiBold   = "\033[1m"
	ansiDim    = "\033[2m"
	ansiCyan   = "\033[36m"
	ansiYellow = "\033[33m"
	ansiGreen  = "\033[32m"
	ansiRed    = "\033[31m"
)

// fieldWidth is the display-cell budget for one plan field in the table
// view. Longer text is truncated with an ellipsis; export paths always
// carry the full text.
const fieldWidth = 55

// goalLimit is the conventional character ceiling for goal text on the
// printed 第2表. Not enforced; overruns get a visible count instead.
const goalLimit = 55

// Checklist renders one category's checklist with the current marks.
func Checklist(cat taxonomy.Category, entry types.AssessmentEntry, index, total int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s%s %s%s %s(%d/%d)%s\n", ansiBold, cat.Icon, cat.Name, ansiReset, ansiDim, index, total, ansiReset)
	checked := make(map[string]bool, len(entry.CheckedItems))
	for _, item := range entry.CheckedItems {
		checked[item] = true
	}
	for i, item := range cat.CheckItems {
		mark := "[ ]"
		color := ""
		if checked[item] {
			mark = "[✓]"
			color = ansiGreen
		}
		fmt.Fprintf(&b, "  %s%2d. %s %s%s\n", color, i+1, mark, item, ansiReset)
	}
	if entry.DetailText != "" {
		fmt.Fprintf(&b, "  %s📝 %s%s\n", ansiDim, entry.DetailText, ansiReset)
	}
	return b.String()
}

// ProgressBar renders assessment progress as a fixed-width bar.
func ProgressBar(done, total int) string {
	const cells = 14
	filled := 0
	if total > 0 {
		filled = done * cells / total
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", cells-filled)
	return fmt.Sprintf("%s%s%s %d/%d", ansiCyan, bar, ansiReset, done, total)
}

// PlanTable renders the care plan rows as numbered blocks with labeled
// fields, each field truncated to the table's display width.
func PlanTable(items []types.CarePlanItem) string {
	if len(items) == 0 {
		return ansiDim + "（計画項目はまだありません）" + ansiReset + "\n"
	}
	var b strings.Builder
	for i, item := range items {
		fmt.Fprintf(&b, "%s%d. %s%s\n", ansiBold, i+1, item.CategoryName, ansiReset)
		writeField(&b, "ニーズ", item.Needs, false)
		writeField(&b, "長期目標", item.LongTermGoal, true)
		writeField(&b, "短期目標", item.ShortTermGoal, true)
		writeField(&b, "サービス内容", item.ServiceContent, false)
	}
	return b.String()
}

func writeField(b *strings.Builder, label, value string, goal bool) {
	padded := runewidth.FillRight(label, 12)
	suffix := ""
	if goal {
		if n := len([]rune(value)); n > goalLimit {
			suffix = fmt.Sprintf(" %s(%d字)%s", ansiYellow, n, ansiReset)
		}
	}
	fmt.Fprintf(b, "   %s%s%s %s%s\n", ansiDim, padded, ansiReset, runewidth.Truncate(value, fieldWidth, "…"), suffix)
}

// UserList renders the registered users with aligned columns.
func UserList(users []types.User) string {
	if len(users) == 0 {
		return ansiDim + "（登録された利用者はいません）" + ansiReset + "\n"
	}
	var b strings.Builder
	for i, u := range users {
		initial := runewidth.FillRight(u.Initial, 6)
		fmt.Fprintf(&b, "%2d. %s %3d歳  %s\n", i+1, initial, u.Age, u.CareLevel)
	}
	return b.String()
}

// PlanList renders saved plans with their owner's initial and save time.
func PlanList(plans []types.SavedPlan, users map[string]types.User) string {
	if len(plans) == 0 {
		return ansiDim + "（保存された計画はありません）" + ansiReset + "\n"
	}
	var b strings.Builder
	for i, p := range plans {
		owner := "不明"
		if u, ok := users[p.UserID]; ok {
			owner = u.Initial
		}
		fmt.Fprintf(&b, "%2d. %s  %s  %d項目  %s%s%s\n",
			i+1, runewidth.FillRight(owner, 6), p.ServiceType.Name(), len(p.Items), ansiDim, p.UpdatedAt, ansiReset)
	}
	return b.String()
}

// Suggestions renders template suggestions as a numbered pick list with
// the state variants shown beneath each entry.
func Suggestions(items []string, states [][]string) string {
	var b strings.Builder
	for i, item := range items {
		fmt.Fprintf(&b, "%s%d. %s%s\n", ansiBold, i+1, item, ansiReset)
		if i < len(states) {
			for j, s := range states[i] {
				fmt.Fprintf(&b, "   %s%c) %s%s\n", ansiDim, 'a'+j, s, ansiReset)
			}
		}
	}
	return b.String()
}

// ErrorBox renders user-facing error guidance in a red frame.
func ErrorBox(text string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s┌%s┐%s\n", ansiRed, strings.Repeat("─", 50), ansiReset)
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		fmt.Fprintf(&b, "%s│%s %s\n", ansiRed, ansiReset, line)
	}
	fmt.Fprintf(&b, "%s└%s┘%s\n", ansiRed, strings.Repeat("─", 50), ansiReset)
	return b.String()
}

// Notice renders a one-line highlighted status message.
func Notice(text string) string {
	return ansiYellow + text + ansiReset
}

// Strip removes the ANSI codes a renderer emitted, for tests and for
// writing plain-text output.
func Strip(s string) string {
	for _, code := range []string{ansiReset, ansiBold, ansiDim, ansiCyan, ansiYellow, ansiGreen, ansiRed} {
		s = strings.ReplaceAll(s, code, "")
	}
	return s
}
