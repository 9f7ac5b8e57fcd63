// Package plan holds the working care-plan collection and its export
// formats. Rows have no identity beyond their position, so every
// operation is positional.
package plan

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/harukimoto/careplan/internal/types"
)

// Collection is an ordered list of plan rows for one session.
type Collection struct {
	items []types.CarePlanItem
}

// Items returns the rows in order. The returned slice is shared; treat
// it as read-only.
func (c *Collection) Items() []types.CarePlanItem {
	return c.items
}

// Len reports the row count.
func (c *Collection) Len() int {
	return len(c.items)
}

// Push appends rows, keeping insertion order.
func (c *Collection) Push(items ...types.CarePlanItem) {
	c.items = append(c.items, items...)
}

// Delete removes the row at index. Out-of-range indexes are a no-op so
// a stale index from the UI cannot corrupt the collection.
func (c *Collection) Delete(index int) {
	if index < 0 || index >= len(c.items) {
		return
	}
	c.items = append(c.items[:index], c.items[index+1:]...)
}

// Get returns the row at index and whether it exists.
func (c *Collection) Get(index int) (types.CarePlanItem, bool) {
	if index < 0 || index >= len(c.items) {
		return types.CarePlanItem{}, false
	}
	return c.items[index], true
}

// Set replaces the row at index. Out-of-range indexes are a no-op.
func (c *Collection) Set(index int, item types.CarePlanItem) {
	if index < 0 || index >= len(c.items) {
		return
	}
	c.items[index] = item
}

// SetField updates one named field of the row at index. Unknown fields
// and out-of-range indexes are a no-op.
func (c *Collection) SetField(index int, field, value string) {
	if index < 0 || index >= len(c.items) {
		return
	}
	switch field {
	case "needs":
		c.items[index].Needs = value
	case "longTermGoal":
		c.items[index].LongTermGoal = value
	case "shortTermGoal":
		c.items[index].ShortTermGoal = value
	case "serviceContent":
		c.items[index].ServiceContent = value
	}
}

// Replace swaps the whole collection for items. Integrated regeneration
// uses this: the new rows stand in for everything, never merge.
func (c *Collection) Replace(items []types.CarePlanItem) {
	c.items = append([]types.CarePlanItem(nil), items...)
}

// Clear drops all rows.
func (c *Collection) Clear() {
	c.items = nil
}

// csvHeader matches the column layout office software expects for the
// 第2表.
var csvHeader = []string{"No.", "カテゴリ", "ニーズ", "長期目標", "短期目標", "サービス内容"}

// CSV renders the collection as RFC 4180 CSV with a UTF-8 BOM so Excel
// opens the Japanese text correctly.
func (c *Collection) CSV() string {
	var b strings.Builder
	b.WriteString("\ufeff")
	w := csv.NewWriter(&b)
	w.Write(csvHeader)
	for i, item := range c.items {
		w.Write([]string{
			strconv.Itoa(i + 1),
			item.CategoryName,
			item.Needs,
			item.LongTermGoal,
			item.ShortTermGoal,
			item.ServiceContent,
		})
	}
	w.Flush()
	return b.String()
}

// ClipboardText renders the collection as labeled text blocks for
// pasting into care-record software.
func (c *Collection) ClipboardText(serviceType types.ServiceType) string {
	var b strings.Builder
	fmt.Fprintf(&b, "【%s】\n\n", serviceType.PlanName())
	for i, item := range c.items {
		fmt.Fprintf(&b, "■ %d. %s\n", i+1, item.CategoryName)
		fmt.Fprintf(&b, "【ニーズ】%s\n", item.Needs)
		fmt.Fprintf(&b, "【長期目標】%s\n", item.LongTermGoal)
		fmt.Fprintf(&b, "【短期目標】%s\n", item.ShortTermGoal)
		fmt.Fprintf(&b, "【サービス内容】%s\n\n", item.ServiceContent)
	}
	return b.String()
}
