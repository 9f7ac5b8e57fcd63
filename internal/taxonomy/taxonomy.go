// Package taxonomy carries the fixed assessment taxonomy: the 14
// 課題分析 categories with their checklist items, the per-item care-plan
// templates, and the 7 integrated categories used for one-shot plan
// generation. All data is defined at process start and never mutated;
// checklist item strings double as template lookup keys, so they must
// match by identity.
package taxonomy

import "github.com/harukimoto/careplan/internal/types"

// Category is one assessment category with its ordered checklist.
type Category struct {
	ID         string
	Name       string
	Icon       string
	CheckItems []string
}

// Categories is the fixed assessment category list, in display order.
var Categories = []Category{
	{
		ID:   "health_status",
		Name: "健康状態",
		Icon: "🏥",
		CheckItems: []string{
			"持病の管理が必要",
			"体調の変動がある",
			"痛みの訴えがある",
			"発熱しやすい",
			"血圧管理が必要",
			"糖尿病の管理が必要",
			"心疾患がある",
			"呼吸器疾患がある",
		},
	},
	{
		ID:   "adl",
		Name: "ADL（日常生活動作）",
		Icon: "🚶",
		CheckItems: []string{
			"寝返りが困難",
			"起き上がりが困難",
			"立ち上がりが困難",
			"歩行が不安定",
			"移乗に介助が必要",
			"車いすを使用",
			"杖・歩行器を使用",
			"転倒リスクがある",
		},
	},
	{
		ID:   "iadl",
		Name: "IADL（手段的日常生活動作）",
		Icon: "🏠",
		CheckItems: []string{
			"買い物が困難",
			"調理が困難",
			"掃除が困難",
			"洗濯が困難",
			"金銭管理が困難",
			"服薬管理が困難",
			"電話の使用が困難",
			"交通機関の利用が困難",
		},
	},
	{
		ID:   "cognition",
		Name: "認知機能",
		Icon: "🧠",
		CheckItems: []string{
			"物忘れがある",
			"見当識障害がある",
			"判断力の低下がある",
			"徘徊がある",
			"妄想・幻覚がある",
			"昼夜逆転がある",
			"暴言・暴力がある",
			"介護への抵抗がある",
		},
	},
	{
		ID:   "communication",
		Name: "コミュニケーション能力",
		Icon: "💬",
		CheckItems: []string{
			"聴力の低下がある",
			"視力の低下がある",
			"言語障害がある",
			"意思疎通が困難",
			"発語が少ない",
			"理解力の低下がある",
		},
	},
	{
		ID:   "social_interaction",
		Name: "社会との交流",
		Icon: "👥",
		CheckItems: []string{
			"外出機会が少ない",
			"閉じこもりがち",
			"社会参加の意欲低下",
			"趣味・活動がない",
			"友人・知人との交流減少",
			"孤立傾向がある",
		},
	},
	{
		ID:   "excretion",
		Name: "排泄",
		Icon: "🚽",
		CheckItems: []string{
			"尿失禁がある",
			"便失禁がある",
			"トイレまでの移動が困難",
			"夜間の排泄介助が必要",
			"おむつを使用",
			"ポータブルトイレを使用",
			"排泄の訴えができない",
			"便秘傾向がある",
		},
	},
	{
		ID:   "nutrition",
		Name: "栄養",
		Icon: "🍽️",
		CheckItems: []string{
			"食欲不振がある",
			"体重減少がある",
			"嚥下困難がある",
			"食事摂取量が少ない",
			"偏食がある",
			"水分摂取が不十分",
			"食事形態の工夫が必要",
			"経管栄養を使用",
		},
	},
	{
		ID:   "oral",
		Name: "口腔",
		Icon: "🦷",
		CheckItems: []string{
			"口腔内の清潔保持が困難",
			"義歯の不具合がある",
			"歯・歯肉に問題がある",
			"口臭がある",
			"口腔乾燥がある",
			"嚥下機能の低下がある",
		},
	},
	{
		ID:   "skin",
		Name: "皮膚・排泄管理",
		Icon: "🩹",
		CheckItems: []string{
			"褥瘡がある",
			"褥瘡リスクが高い",
			"皮膚トラブルがある",
			"ストーマを使用",
			"カテーテルを使用",
			"皮膚の乾燥がある",
		},
	},
	{
		ID:   "environment",
		Name: "環境",
		Icon: "🏡",
		CheckItems: []string{
			"住環境に段差がある",
			"手すりが不足",
			"トイレ・浴室が使いにくい",
			"室温管理が不十分",
			"照明が不十分",
			"福祉用具の導入が必要",
		},
	},
	{
		ID:   "family_status",
		Name: "家族の状況",
		Icon: "👨‍👩‍👧",
		CheckItems: []string{
			"主介護者の負担が大きい",
			"介護者が高齢",
			"介護者の健康問題",
			"介護者の就労との両立",
			"家族間の意見相違",
			"独居である",
			"介護力が不足",
			"経済的な課題がある",
		},
	},
	{
		ID:   "special_medical",
		Name: "特別な医療",
		Icon: "💉",
		CheckItems: []string{
			"点滴・注射が必要",
			"酸素療法を実施",
			"人工呼吸器を使用",
			"気管切開がある",
			"経管栄養を実施",
			"透析を実施",
			"吸引が必要",
			"インスリン注射が必要",
		},
	},
	{
		ID:   "other",
		Name: "その他",
		Icon: "📋",
		CheckItems: []string{
			"上記以外の課題がある",
			"本人の希望がある",
			"家族の希望がある",
			"専門職の意見がある",
		},
	},
}

var categoryIndex = func() map[string]*Category {
	m := make(map[string]*Category, len(Categories))
	for i := range Categories {
		m[Categories[i].ID] = &Categories[i]
	}
	return m
}()

// ByID returns the category with the given id, or nil when unknown.
func ByID(id string) *Category {
	return categoryIndex[id]
}

// Template returns the care-plan template for a checklist item. The
// taxonomy is not guaranteed complete; ok is false for items without a
// template and callers skip those silently.
func Template(item string) (types.PlanFields, bool) {
	t, ok := itemTemplates[item]
	return t, ok
}
