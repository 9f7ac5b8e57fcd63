package taxonomy

// stateVariants lists alternative state phrasings offered when editing the
// 「〜〜だが、」 half of a needs sentence. Only items with commonly reworded
// states carry variants.
var stateVariants = map[string][]string{
	"歩行が不安定":      {"ふらつきがある", "すり足になっている", "歩行時にバランスを崩しやすい"},
	"転倒リスクがある":    {"足元がふらつく", "転倒の恐れがある", "足腰が弱っている"},
	"物忘れがある":      {"短期記憶が低下している", "最近のことを忘れやすい", "何度も同じことを聞く"},
	"見当識障害がある":    {"日時や場所がわからなくなる", "時間の感覚が曖昧である", "自分の居場所がわからない"},
	"尿失禁がある":      {"尿意を感じにくい", "トイレが間に合わないことがある", "排尿のコントロールが難しい"},
	"便秘傾向がある":     {"排便が不規則である", "便が硬くなりやすい", "排便に苦労することがある"},
	"食欲不振がある":     {"食事への意欲が低下している", "食べる量が減っている", "食事を残すことが多い"},
	"嚥下困難がある":     {"飲み込みにくさがある", "むせやすい", "食事に時間がかかる"},
	"口腔内の清潔保持が困難": {"自分で歯磨きが難しい", "口腔ケアに介助が必要", "口腔内が乾燥しやすい"},
	"褥瘡リスクが高い":    {"皮膚が弱い", "同じ姿勢が続きやすい", "体圧分散が必要"},
	"外出機会が少ない":    {"家にこもりがち", "外に出る機会がない", "外出への意欲が低い"},
	"閉じこもりがち":     {"人との交流が少ない", "家から出たがらない", "活動量が減っている"},
	"聴力の低下がある":    {"耳が遠くなっている", "会話が聞き取りにくい", "大きな声でないと聞こえない"},
	"視力の低下がある":    {"目が見えにくい", "細かいものが見えにくい", "視野が狭くなっている"},
}

// StateSuggestions returns candidate state phrasings for an item, starting
// with defaultState and followed by any known variants. Duplicates are
// removed while keeping first-seen order.
func StateSuggestions(item, defaultState string) []string {
	candidates := append([]string{defaultState}, stateVariants[item]...)
	seen := make(map[string]bool, len(candidates))
	out := make([]string, 0, len(candidates))
	for _, s := range candidates {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
