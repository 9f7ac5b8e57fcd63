// Package prompt builds the Japanese instruction text sent to the model.
// The wording is load-bearing: the writing rules (「〜〜だが、〜〜したい」,
// 55文字以内) and the requested output shapes are what parse recovers.
package prompt

import (
	"fmt"
	"strings"

	"github.com/harukimoto/careplan/internal/taxonomy"
	"github.com/harukimoto/careplan/internal/types"
)

// CategoryInput is one category's worth of assessment data for prompting.
type CategoryInput struct {
	Category taxonomy.Category
	Entry    types.AssessmentEntry
}

// Single builds the per-category generation prompt, asking for one JSON
// object.
func Single(serviceType types.ServiceType, in CategoryInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "あなたは介護支援専門員（ケアマネジャー）です。以下の情報から%sを作成してください。\n\n", serviceType.PlanName())
	fmt.Fprintf(&b, "【カテゴリ】%s\n", in.Category.Name)
	fmt.Fprintf(&b, "【課題項目】%s\n", strings.Join(in.Entry.CheckedItems, "、"))
	if in.Entry.DetailText != "" {
		fmt.Fprintf(&b, "【具体的内容】%s\n", in.Entry.DetailText)
	}
	b.WriteString(`
【記述ルール】
- ニーズは「〜〜だが、〜〜したい」という形式で1文にまとめる
- 長期目標は55文字以内で「〜〜できる」で終わる
- 短期目標は55文字以内で「〜〜できる」で終わる

以下のJSON形式で出力してください：
{
  "needs": "ニーズ（〜〜だが、〜〜したい）",
  "longTermGoal": "長期目標（55文字以内、〜〜できる）",
  "shortTermGoal": "短期目標（55文字以内、〜〜できる）",
  "serviceContent": "サービス内容"
}`)
	return b.String()
}

// Integrated builds the compact all-category prompt asking for a JSON
// array. Categories without checks or detail are compressed out, and the
// requested record count is capped at 5 to keep output bounded.
func Integrated(serviceType types.ServiceType, inputs []CategoryInput) string {
	compressed := make([]CategoryInput, 0, len(inputs))
	for _, in := range inputs {
		if in.Entry.HasData() {
			compressed = append(compressed, in)
		}
	}

	var info strings.Builder
	for i, in := range compressed {
		fmt.Fprintf(&info, "%d. %s", i+1, in.Category.Name)
		if len(in.Entry.CheckedItems) > 0 {
			fmt.Fprintf(&info, "\n   課題: %s", strings.Join(in.Entry.CheckedItems, "、"))
		}
		if in.Entry.DetailText != "" {
			fmt.Fprintf(&info, "\n   詳細: %s", in.Entry.DetailText)
		}
		info.WriteString("\n")
	}

	outputCount := len(compressed)
	if outputCount > 5 {
		outputCount = 5
	}

	return fmt.Sprintf(`【%s生成】

%s
【ルール】
- ニーズ: 「〜だが、〜したい」形式
- 長期目標: 55文字以内「〜できる」
- 短期目標: 55文字以内「〜できる」

【出力】JSON配列で%d件:
[{"categoryName":"名前","needs":"ニーズ","longTermGoal":"長期目標","shortTermGoal":"短期目標","serviceContent":"サービス"}]`,
		serviceType.PlanName(), info.String(), outputCount)
}

// GroupInput is one integrated group with the subset of its items that
// are actually checked.
type GroupInput struct {
	Group taxonomy.IntegratedCategory
	Items []string
}

// IntegratedGroups builds the seven-group generation prompt, asking for
// one JSON record per group with an icon-tagged category name.
func IntegratedGroups(groups []GroupInput) string {
	descs := make([]string, 0, len(groups))
	for _, g := range groups {
		descs = append(descs, fmt.Sprintf("【%s %s】\n課題: %s", g.Group.Icon, g.Group.Name, strings.Join(g.Items, "、")))
	}

	return fmt.Sprintf(`あなたは介護支援専門員（ケアマネジャー）です。
以下のアセスメント結果をもとに、各カテゴリについてケアプランを作成してください。

%s

各カテゴリについて、以下のJSON配列の形式のみで出力してください（マークダウンや余計なテキストは不要です）：

[
  {
    "categoryName": "（アイコン付きのカテゴリ名。例：【🏥 医療・健康】）",
    "needs": "（本人の希望を含めた課題）",
    "longTermGoal": "（6ヶ月〜1年の目標）",
    "shortTermGoal": "（3ヶ月程度の目標）",
    "serviceContent": "（具体的な援助内容）"
  },
  ...
]

すべてのカテゴリについて出力してください。`, strings.Join(descs, "\n\n"))
}

// RewriteStyle selects how a rewrite prompt reshapes existing text.
type RewriteStyle string

const (
	StyleConcise  RewriteStyle = "concise"
	StylePolite   RewriteStyle = "polite"
	StyleSpecific RewriteStyle = "specific"
)

// FieldLabels maps plan field keys to their display labels.
var FieldLabels = map[string]string{
	"needs":          "ニーズ",
	"longTermGoal":   "長期目標",
	"shortTermGoal":  "短期目標",
	"serviceContent": "サービス内容",
}

func fieldStyleInstruction(label string, style RewriteStyle) string {
	switch style {
	case StylePolite:
		return fmt.Sprintf("以下の%sを丁寧な表現に書き直してください。利用者様への配慮を示す表現を使ってください。", label)
	case StyleSpecific:
		return fmt.Sprintf("以下の%sをより具体的に書き直してください。具体的な方法や回数、時間などを追加してください。", label)
	default:
		return fmt.Sprintf("以下の%sを短く簡潔に書き直してください。要点を絞り、無駄な言葉を省いてください。", label)
	}
}

// RewriteField builds the prompt that rewrites a single field in the
// given style, expecting raw text back.
func RewriteField(field string, style RewriteStyle, current string) string {
	label := FieldLabels[field]
	if label == "" {
		label = field
	}
	return fmt.Sprintf(`%s

【編集対象】
%s

書き直した結果のみを出力してください（説明不要）。`, fieldStyleInstruction(label, style), current)
}

func recordStyleInstruction(style RewriteStyle) string {
	switch style {
	case StylePolite:
		return "以下の内容を丁寧な敬語表現に書き直してください。利用者様への配慮を示す表現を使ってください。"
	case StyleSpecific:
		return "以下の内容をより具体的に書き直してください。具体的な方法や回数、時間などを追加してください。"
	default:
		return "以下の内容を短く簡潔に書き直してください。要点を絞り、無駄な言葉を省いてください。"
	}
}

// RewriteRecord builds the prompt that rewrites a whole record in the
// given style, expecting ラベル: lines back.
func RewriteRecord(style RewriteStyle, f types.PlanFields) string {
	return fmt.Sprintf(`%s

【編集対象】
ニーズ: %s
長期目標: %s
短期目標: %s
サービス内容: %s

以下の形式で出力してください：
ニーズ: （編集後）
長期目標: （編集後）
短期目標: （編集後）
サービス内容: （編集後）`,
		recordStyleInstruction(style), f.Needs, f.LongTermGoal, f.ShortTermGoal, f.ServiceContent)
}
