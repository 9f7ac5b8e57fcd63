package taxonomy

import "github.com/harukimoto/careplan/internal/types"

// IntegratedCategory groups related checklist items from one or more
// assessment categories into a single plan entry. The seven groups map
// onto the sections of a standard care plan sheet.
type IntegratedCategory struct {
	ID               string
	Name             string
	Icon             string
	SourceCategories []string
	Items            []string
	Template         types.PlanFields
}

// IntegratedCategories is ordered the way the entries appear on the plan
// sheet. Generation walks this slice, so order here is output order.
var IntegratedCategories = []IntegratedCategory{
	{
		ID:               "meal",
		Name:             "食事・水分摂取",
		Icon:             "🍽️",
		SourceCategories: []string{"nutrition"},
		Items: []string{
			"食欲不振がある",
			"体重減少がある",
			"嚥下困難がある",
			"食事摂取量が少ない",
			"偏食がある",
			"水分摂取が不十分",
			"食事形態の工夫が必要",
			"経管栄養を使用",
		},
		Template: types.PlanFields{
			Needs:          "嚥下が困難だが、安全においしく食事をし、必要な栄養と水分を摂取したい",
			LongTermGoal:   "食事形態の工夫により誤嚥を防ぎ、適切な栄養・水分を摂取できる",
			ShortTermGoal:  "食事・水分摂取量が安定し、体重が維持できる",
			ServiceContent: "食事形態調整、嚥下訓練、食事見守り・介助、水分補給促進、栄養管理、体重測定",
		},
	},
	{
		ID:               "excretion",
		Name:             "排泄",
		Icon:             "🚽",
		SourceCategories: []string{"excretion"},
		Items: []string{
			"尿失禁がある",
			"便失禁がある",
			"トイレまでの移動が困難",
			"夜間の排泄介助が必要",
			"おむつを使用",
			"ポータブルトイレを使用",
			"排泄の訴えができない",
			"便秘傾向がある",
		},
		Template: types.PlanFields{
			Needs:          "尿失禁があるが、清潔に過ごしたい",
			LongTermGoal:   "適切な排泄管理ができる",
			ShortTermGoal:  "時間を決めてトイレに行ける",
			ServiceContent: "排泄誘導、パッド使用、陰部清拭",
		},
	},
	{
		ID:               "bathing",
		Name:             "入浴・清拭",
		Icon:             "🛁",
		SourceCategories: []string{"skin"},
		Items: []string{
			"褥瘡がある",
			"褥瘡リスクが高い",
			"皮膚トラブルがある",
			"ストーマを使用",
			"カテーテルを使用",
			"皮膚の乾燥がある",
		},
		Template: types.PlanFields{
			Needs:          "皮膚トラブルや褥瘡のリスクがあるが、清潔で健康な皮膚を保ちたい",
			LongTermGoal:   "褥瘡を予防し、皮膚の清潔と健康を維持できる",
			ShortTermGoal:  "定期的な入浴・清拭により皮膚を清潔に保てる",
			ServiceContent: "入浴介助、清拭、皮膚観察、体位変換、保湿ケア、褥瘡予防",
		},
	},
	{
		ID:               "grooming",
		Name:             "洗面・口腔・整容・更衣",
		Icon:             "🪥",
		SourceCategories: []string{"oral"},
		Items: []string{
			"口腔内の清潔保持が困難",
			"義歯の不具合がある",
			"歯・歯肉に問題がある",
			"口臭がある",
			"口腔乾燥がある",
			"嚥下機能の低下がある",
		},
		Template: types.PlanFields{
			Needs:          "口腔ケアが困難だが、口腔内を清潔に保ち、食事を楽しみたい",
			LongTermGoal:   "口腔内を清潔に保ち、誤嚥を予防できる",
			ShortTermGoal:  "毎食後の口腔ケアを継続できる",
			ServiceContent: "口腔ケア支援、歯磨き介助、義歯管理、嚥下訓練、歯科受診支援",
		},
	},
	{
		ID:               "mobility",
		Name:             "基本動作・リハビリ",
		Icon:             "🚶",
		SourceCategories: []string{"adl"},
		Items: []string{
			"寝返りが困難",
			"起き上がりが困難",
			"立ち上がりが困難",
			"歩行が不安定",
			"移乗に介助が必要",
			"車いすを使用",
			"杖・歩行器を使用",
			"転倒リスクがある",
		},
		Template: types.PlanFields{
			Needs:          "移動動作が困難だが、転倒せず安全に移動し、できる限り自立した生活を送りたい",
			LongTermGoal:   "必要な介助・福祉用具を使って安全に移動でき、ADLを維持できる",
			ShortTermGoal:  "転倒なく日常生活の基本動作ができる",
			ServiceContent: "移動・移乗介助、歩行訓練、起居動作訓練、福祉用具導入、環境整備、転倒予防",
		},
	},
	{
		ID:               "medical",
		Name:             "医療・健康",
		Icon:             "🏥",
		SourceCategories: []string{"health_status", "special_medical"},
		Items: []string{
			"持病の管理が必要",
			"体調の変動がある",
			"痛みの訴えがある",
			"発熱しやすい",
			"血圧管理が必要",
			"糖尿病の管理が必要",
			"心疾患がある",
			"呼吸器疾患がある",
			"点滴・注射が必要",
			"酸素療法を実施",
			"人工呼吸器を使用",
			"気管切開がある",
			"透析を実施",
			"吸引が必要",
			"インスリン注射が必要",
		},
		Template: types.PlanFields{
			Needs:          "持病があるが、安定した健康状態を維持したい",
			LongTermGoal:   "定期的な通院と服薬管理により健康を維持できる",
			ShortTermGoal:  "毎日の服薬を忘れずにできる",
			ServiceContent: "服薬確認、健康観察、受診同行",
		},
	},
	{
		ID:               "psychosocial",
		Name:             "心理・社会面",
		Icon:             "💭",
		SourceCategories: []string{"cognition", "communication", "social_interaction"},
		Items: []string{
			"物忘れがある",
			"見当識障害がある",
			"判断力の低下がある",
			"徘徊がある",
			"妄想・幻覚がある",
			"昼夜逆転がある",
			"暴言・暴力がある",
			"介護への抵抗がある",
			"聴力の低下がある",
			"視力の低下がある",
			"言語障害がある",
			"意思疎通が困難",
			"発語が少ない",
			"理解力の低下がある",
			"外出機会が少ない",
			"閉じこもりがち",
			"社会参加の意欲低下",
			"趣味・活動がない",
			"友人・知人との交流減少",
			"孤立傾向がある",
		},
		Template: types.PlanFields{
			Needs:          "認知機能やコミュニケーションに課題があるが、穏やかに安心して暮らし、社会とのつながりを持ちたい",
			LongTermGoal:   "見守りの中で安全に生活し、社会参加の機会を持てる",
			ShortTermGoal:  "日中の活動に参加し、穏やかに過ごせる時間が増える",
			ServiceContent: "認知症ケア、見守り、生活支援、コミュニケーション支援、通所サービス、社会参加支援",
		},
	},
}

var integratedIndex = func() map[string]*IntegratedCategory {
	m := make(map[string]*IntegratedCategory, len(IntegratedCategories))
	for i := range IntegratedCategories {
		m[IntegratedCategories[i].ID] = &IntegratedCategories[i]
	}
	return m
}()

// IntegratedByID returns the integrated category with the given id, or nil.
func IntegratedByID(id string) *IntegratedCategory {
	return integratedIndex[id]
}

// CheckedIn filters the group's item list down to the ones present in
// checked, preserving the group's own item order.
func (c *IntegratedCategory) CheckedIn(checked map[string]bool) []string {
	var out []string
	for _, item := range c.Items {
		if checked[item] {
			out = append(out, item)
		}
	}
	return out
}
