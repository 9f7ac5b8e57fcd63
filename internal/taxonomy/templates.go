package taxonomy

import "github.com/harukimoto/careplan/internal/types"

// itemTemplates maps checklist items to their fixed care-plan wording.
// Needs follows the 「〜〜だが、〜〜したい」 construction; goals stay within
// the 55-character convention.
var itemTemplates = map[string]types.PlanFields{
	// 健康状態
	"持病の管理が必要": {
		Needs:          "持病があるが、安定した健康状態を維持したい",
		LongTermGoal:   "定期的な通院と服薬管理により健康を維持できる",
		ShortTermGoal:  "毎日の服薬を忘れずにできる",
		ServiceContent: "服薬確認、健康観察、受診同行",
	},
	"体調の変動がある": {
		Needs:          "体調に変動があるが、安定した状態で過ごしたい",
		LongTermGoal:   "体調の変化に早期対応し安定した生活を送れる",
		ShortTermGoal:  "体調の変化を周囲に伝えることができる",
		ServiceContent: "バイタルチェック、体調観察、医療連携",
	},
	"痛みの訴えがある": {
		Needs:          "痛みがあるが、痛みを軽減して快適に過ごしたい",
		LongTermGoal:   "痛みがコントロールされ日常生活を送れる",
		ShortTermGoal:  "痛みを適切に訴えることができる",
		ServiceContent: "疼痛管理、医師との連携、姿勢の工夫",
	},
	"発熱しやすい": {
		Needs:          "発熱しやすいが、体調を安定させたい",
		LongTermGoal:   "感染予防に努め発熱を防ぐことができる",
		ShortTermGoal:  "手洗い・うがいを習慣化できる",
		ServiceContent: "感染予防、体温管理、環境調整",
	},
	"血圧管理が必要": {
		Needs:          "血圧が不安定だが、適正な血圧を維持したい",
		LongTermGoal:   "血圧が安定し安心して生活できる",
		ShortTermGoal:  "毎日血圧を測定できる",
		ServiceContent: "血圧測定、服薬管理、生活指導",
	},
	"糖尿病の管理が必要": {
		Needs:          "糖尿病があるが、血糖値を安定させたい",
		LongTermGoal:   "血糖コントロールができ合併症を予防できる",
		ShortTermGoal:  "食事療法を継続できる",
		ServiceContent: "血糖測定、食事管理、インスリン管理",
	},
	"心疾患がある": {
		Needs:          "心疾患があるが、心臓に負担をかけずに生活したい",
		LongTermGoal:   "心臓の状態が安定し安全に生活できる",
		ShortTermGoal:  "無理のない活動量を守れる",
		ServiceContent: "心機能観察、活動量調整、緊急対応",
	},
	"呼吸器疾患がある": {
		Needs:          "呼吸が苦しいことがあるが、楽に呼吸したい",
		LongTermGoal:   "呼吸状態が安定し日常生活を送れる",
		ShortTermGoal:  "呼吸法を習得できる",
		ServiceContent: "呼吸状態観察、酸素管理、環境調整",
	},

	// ADL
	"寝返りが困難": {
		Needs:          "寝返りが困難だが、床ずれを防ぎたい",
		LongTermGoal:   "褥瘡を予防し快適に過ごせる",
		ShortTermGoal:  "定期的な体位変換ができる",
		ServiceContent: "体位変換、褥瘡予防、福祉用具",
	},
	"起き上がりが困難": {
		Needs:          "起き上がりが困難だが、自分で起き上がりたい",
		LongTermGoal:   "介助があれば起き上がることができる",
		ShortTermGoal:  "ベッド柵を使って起き上がれる",
		ServiceContent: "起き上がり訓練、福祉用具導入",
	},
	"立ち上がりが困難": {
		Needs:          "立ち上がりが困難だが、自力で立ちたい",
		LongTermGoal:   "安全に立ち上がることができる",
		ShortTermGoal:  "手すりを使って立ち上がれる",
		ServiceContent: "立ち上がり訓練、手すり設置",
	},
	"歩行が不安定": {
		Needs:          "歩行が不安定だが、転倒せずに歩きたい",
		LongTermGoal:   "安全に歩行して外出できる",
		ShortTermGoal:  "杖を使って安全に歩ける",
		ServiceContent: "歩行訓練、見守り、福祉用具",
	},
	"移乗に介助が必要": {
		Needs:          "移乗に介助が必要だが、安全に移動したい",
		LongTermGoal:   "安全に車いすへ移乗できる",
		ShortTermGoal:  "介助者と協力して移乗できる",
		ServiceContent: "移乗介助、移乗訓練",
	},
	"車いすを使用": {
		Needs:          "車いすを使用しているが、自分で操作したい",
		LongTermGoal:   "車いすで自由に移動できる",
		ShortTermGoal:  "室内を車いすで移動できる",
		ServiceContent: "車いす操作訓練、環境整備",
	},
	"杖・歩行器を使用": {
		Needs:          "杖・歩行器を使用しているが、安全に歩きたい",
		LongTermGoal:   "補助具を使って安全に歩行できる",
		ShortTermGoal:  "杖・歩行器を正しく使える",
		ServiceContent: "歩行訓練、福祉用具調整",
	},
	"転倒リスクがある": {
		Needs:          "転倒しやすいが、転ばずに生活したい",
		LongTermGoal:   "転倒を予防し安全に生活できる",
		ShortTermGoal:  "危険な場所を避けられる",
		ServiceContent: "転倒予防訓練、環境整備、見守り",
	},

	// IADL
	"買い物が困難": {
		Needs:          "買い物が困難だが、必要なものを入手したい",
		LongTermGoal:   "必要な買い物ができ生活を維持できる",
		ShortTermGoal:  "買い物リストを作成できる",
		ServiceContent: "買い物支援、同行援助",
	},
	"調理が困難": {
		Needs:          "調理が困難だが、栄養のある食事をとりたい",
		LongTermGoal:   "バランスの良い食事ができる",
		ShortTermGoal:  "簡単な調理ができる",
		ServiceContent: "調理支援、配食サービス",
	},
	"掃除が困難": {
		Needs:          "掃除が困難だが、清潔な環境で暮らしたい",
		LongTermGoal:   "清潔な住環境を維持できる",
		ShortTermGoal:  "身の回りの整理ができる",
		ServiceContent: "掃除支援、生活援助",
	},
	"洗濯が困難": {
		Needs:          "洗濯が困難だが、清潔な衣類を着たい",
		LongTermGoal:   "清潔な衣類で過ごせる",
		ShortTermGoal:  "洗濯物をたためる",
		ServiceContent: "洗濯支援、生活援助",
	},
	"金銭管理が困難": {
		Needs:          "金銭管理が困難だが、お金を適切に使いたい",
		LongTermGoal:   "日常的な金銭管理ができる",
		ShortTermGoal:  "日常の買い物の金額を理解できる",
		ServiceContent: "金銭管理支援、成年後見制度利用検討",
	},
	"服薬管理が困難": {
		Needs:          "服薬管理が困難だが、薬を正しく飲みたい",
		LongTermGoal:   "処方された薬を正しく服用できる",
		ShortTermGoal:  "お薬カレンダーを使える",
		ServiceContent: "服薬管理、お薬カレンダー導入",
	},
	"電話の使用が困難": {
		Needs:          "電話が困難だが、必要な連絡をしたい",
		LongTermGoal:   "必要な時に連絡を取れる",
		ShortTermGoal:  "緊急連絡先に電話できる",
		ServiceContent: "電話使用訓練、緊急通報装置",
	},
	"交通機関の利用が困難": {
		Needs:          "交通機関の利用が困難だが、外出したい",
		LongTermGoal:   "必要な場所に行くことができる",
		ShortTermGoal:  "付き添いがあれば外出できる",
		ServiceContent: "外出支援、移送サービス",
	},

	// 認知機能
	"物忘れがある": {
		Needs:          "物忘れがあるが、安心して生活したい",
		LongTermGoal:   "見守りの中で安全に生活できる",
		ShortTermGoal:  "メモを活用できる",
		ServiceContent: "認知症ケア、見守り、生活支援",
	},
	"見当識障害がある": {
		Needs:          "時間や場所がわからなくなるが、混乱せずに過ごしたい",
		LongTermGoal:   "穏やかに日常生活を送れる",
		ShortTermGoal:  "カレンダーで日付を確認できる",
		ServiceContent: "見当識訓練、環境調整、声かけ",
	},
	"判断力の低下がある": {
		Needs:          "判断力が低下しているが、適切な判断をしたい",
		LongTermGoal:   "支援を受けながら生活できる",
		ShortTermGoal:  "日常の簡単な判断ができる",
		ServiceContent: "意思決定支援、見守り",
	},
	"徘徊がある": {
		Needs:          "徘徊があるが、安全に過ごしたい",
		LongTermGoal:   "安全な環境で穏やかに生活できる",
		ShortTermGoal:  "見守りの中で安全に過ごせる",
		ServiceContent: "見守り、GPS活用、環境整備",
	},
	"妄想・幻覚がある": {
		Needs:          "妄想・幻覚があるが、穏やかに過ごしたい",
		LongTermGoal:   "不安なく安心して生活できる",
		ShortTermGoal:  "落ち着いて過ごせる時間が増える",
		ServiceContent: "傾聴、環境調整、医療連携",
	},
	"昼夜逆転がある": {
		Needs:          "昼夜逆転があるが、規則正しく生活したい",
		LongTermGoal:   "規則正しい生活リズムを維持できる",
		ShortTermGoal:  "日中の活動時間が増える",
		ServiceContent: "生活リズム調整、日中活動支援",
	},
	"暴言・暴力がある": {
		Needs:          "暴言・暴力があるが、穏やかに過ごしたい",
		LongTermGoal:   "穏やかな気持ちで生活できる",
		ShortTermGoal:  "イライラの原因が軽減される",
		ServiceContent: "環境調整、原因除去、専門的ケア",
	},
	"介護への抵抗がある": {
		Needs:          "介護への抵抗があるが、必要なケアを受けたい",
		LongTermGoal:   "信頼関係の中でケアを受け入れられる",
		ShortTermGoal:  "特定の介護者からケアを受けられる",
		ServiceContent: "関係構築、声かけの工夫、ペース配慮",
	},

	// コミュニケーション
	"聴力の低下がある": {
		Needs:          "聴力が低下しているが、会話を楽しみたい",
		LongTermGoal:   "コミュニケーションを維持できる",
		ShortTermGoal:  "補聴器を使用できる",
		ServiceContent: "補聴器調整、筆談、ゆっくり話す",
	},
	"視力の低下がある": {
		Needs:          "視力が低下しているが、安全に生活したい",
		LongTermGoal:   "視覚補助を使って安全に生活できる",
		ShortTermGoal:  "眼鏡・拡大鏡を使用できる",
		ServiceContent: "視覚補助、環境整備、読み上げ支援",
	},
	"言語障害がある": {
		Needs:          "言語障害があるが、意思を伝えたい",
		LongTermGoal:   "自分の意思を伝えられる",
		ShortTermGoal:  "ジェスチャーで意思を伝えられる",
		ServiceContent: "言語訓練、コミュニケーション支援",
	},
	"意思疎通が困難": {
		Needs:          "意思疎通が困難だが、気持ちを理解してほしい",
		LongTermGoal:   "コミュニケーション手段が確立できる",
		ShortTermGoal:  "表情や仕草で意思を伝えられる",
		ServiceContent: "非言語コミュニケーション支援",
	},
	"発語が少ない": {
		Needs:          "発語が少ないが、もっと話したい",
		LongTermGoal:   "自発的な発語が増える",
		ShortTermGoal:  "声かけに反応できる",
		ServiceContent: "傾聴、会話促進、言語訓練",
	},
	"理解力の低下がある": {
		Needs:          "理解力が低下しているが、説明を理解したい",
		LongTermGoal:   "簡単な説明を理解できる",
		ShortTermGoal:  "短い文で理解できる",
		ServiceContent: "わかりやすい説明、繰り返し説明",
	},

	// 社会との交流
	"外出機会が少ない": {
		Needs:          "外出機会が少ないが、外に出たい",
		LongTermGoal:   "定期的に外出できる",
		ShortTermGoal:  "週1回は外出できる",
		ServiceContent: "外出支援、通所サービス",
	},
	"閉じこもりがち": {
		Needs:          "閉じこもりがちだが、人と交流したい",
		LongTermGoal:   "社会参加の機会が持てる",
		ShortTermGoal:  "デイサービスに参加できる",
		ServiceContent: "通所サービス、社会参加支援",
	},
	"社会参加の意欲低下": {
		Needs:          "社会参加の意欲が低下しているが、楽しみを見つけたい",
		LongTermGoal:   "楽しみながら社会参加できる",
		ShortTermGoal:  "興味のある活動に参加できる",
		ServiceContent: "活動参加支援、趣味活動支援",
	},
	"趣味・活動がない": {
		Needs:          "趣味・活動がないが、楽しみを見つけたい",
		LongTermGoal:   "趣味を持ち充実した日々を送れる",
		ShortTermGoal:  "興味のある活動を見つけられる",
		ServiceContent: "レクリエーション、趣味活動紹介",
	},
	"友人・知人との交流減少": {
		Needs:          "友人との交流が減っているが、つながりを持ちたい",
		LongTermGoal:   "人とのつながりを維持できる",
		ShortTermGoal:  "定期的に人と会える",
		ServiceContent: "交流機会の提供、訪問支援",
	},
	"孤立傾向がある": {
		Needs:          "孤立しがちだが、誰かとつながりたい",
		LongTermGoal:   "地域社会とのつながりが持てる",
		ShortTermGoal:  "定期的な訪問を受け入れられる",
		ServiceContent: "見守り訪問、通所サービス",
	},

	// 排泄
	"尿失禁がある": {
		Needs:          "尿失禁があるが、清潔に過ごしたい",
		LongTermGoal:   "適切な排泄管理ができる",
		ShortTermGoal:  "時間を決めてトイレに行ける",
		ServiceContent: "排泄誘導、パッド使用、陰部清拭",
	},
	"便失禁がある": {
		Needs:          "便失禁があるが、清潔に過ごしたい",
		LongTermGoal:   "排便コントロールができる",
		ShortTermGoal:  "便意を伝えられる",
		ServiceContent: "排便管理、おむつ交換、清拭",
	},
	"トイレまでの移動が困難": {
		Needs:          "トイレまでの移動が困難だが、トイレで排泄したい",
		LongTermGoal:   "トイレで排泄できる",
		ShortTermGoal:  "介助があればトイレに行ける",
		ServiceContent: "トイレ誘導、移動介助、手すり設置",
	},
	"夜間の排泄介助が必要": {
		Needs:          "夜間の排泄介助が必要だが、安眠したい",
		LongTermGoal:   "安心して夜間も過ごせる",
		ShortTermGoal:  "夜間1回のトイレで済む",
		ServiceContent: "夜間排泄介助、ポータブルトイレ",
	},
	"おむつを使用": {
		Needs:          "おむつを使用しているが、快適に過ごしたい",
		LongTermGoal:   "皮膚トラブルなく過ごせる",
		ShortTermGoal:  "適切なおむつ交換ができる",
		ServiceContent: "おむつ交換、皮膚観察、清潔保持",
	},
	"ポータブルトイレを使用": {
		Needs:          "ポータブルトイレを使用しているが、自分で使いたい",
		LongTermGoal:   "ポータブルトイレを自立して使える",
		ShortTermGoal:  "介助があれば使える",
		ServiceContent: "排泄介助、ポータブルトイレ管理",
	},
	"排泄の訴えができない": {
		Needs:          "排泄の訴えができないが、清潔に過ごしたい",
		LongTermGoal:   "定時誘導で排泄管理ができる",
		ShortTermGoal:  "排泄サインを介護者が把握できる",
		ServiceContent: "定時排泄誘導、サイン観察",
	},
	"便秘傾向がある": {
		Needs:          "便秘傾向があるが、スムーズに排便したい",
		LongTermGoal:   "規則正しい排便習慣ができる",
		ShortTermGoal:  "水分・食物繊維を摂取できる",
		ServiceContent: "排便管理、水分補給、運動促進",
	},

	// 栄養
	"食欲不振がある": {
		Needs:          "食欲がないが、しっかり食べたい",
		LongTermGoal:   "食欲が回復し必要な栄養を摂れる",
		ShortTermGoal:  "少量でも食事ができる",
		ServiceContent: "食事観察、嗜好調査、栄養管理",
	},
	"体重減少がある": {
		Needs:          "体重が減っているが、体重を維持したい",
		LongTermGoal:   "適正体重を維持できる",
		ShortTermGoal:  "必要なカロリーを摂取できる",
		ServiceContent: "栄養管理、体重測定、食事調整",
	},
	"嚥下困難がある": {
		Needs:          "嚥下が困難だが、安全に食事をしたい",
		LongTermGoal:   "誤嚥なく食事ができる",
		ShortTermGoal:  "食事形態を工夫して食べられる",
		ServiceContent: "嚥下訓練、食事形態調整、見守り",
	},
	"食事摂取量が少ない": {
		Needs:          "食事量が少ないが、しっかり食べたい",
		LongTermGoal:   "必要な食事量を摂取できる",
		ShortTermGoal:  "配膳された食事の半分を食べられる",
		ServiceContent: "食事介助、嗜好調査、少量多回食",
	},
	"偏食がある": {
		Needs:          "偏食があるが、バランスよく食べたい",
		LongTermGoal:   "バランスの良い食事ができる",
		ShortTermGoal:  "苦手な食材を少し食べられる",
		ServiceContent: "栄養指導、調理の工夫",
	},
	"水分摂取が不十分": {
		Needs:          "水分摂取が不十分だが、脱水を防ぎたい",
		LongTermGoal:   "必要な水分を摂取できる",
		ShortTermGoal:  "1日1000ml以上水分を摂れる",
		ServiceContent: "水分補給促進、こまめな声かけ",
	},
	"食事形態の工夫が必要": {
		Needs:          "食事形態の工夫が必要だが、食事を楽しみたい",
		LongTermGoal:   "安全においしく食事ができる",
		ShortTermGoal:  "適切な食事形態で食べられる",
		ServiceContent: "食事形態調整、調理の工夫",
	},
	"経管栄養を使用": {
		Needs:          "経管栄養を使用しているが、安全に栄養を摂りたい",
		LongTermGoal:   "合併症なく栄養を摂取できる",
		ShortTermGoal:  "経管栄養の管理ができる",
		ServiceContent: "経管栄養管理、口腔ケア、医療連携",
	},

	// 口腔
	"口腔内の清潔保持が困難": {
		Needs:          "口腔ケアが困難だが、口の中を清潔にしたい",
		LongTermGoal:   "口腔内を清潔に保てる",
		ShortTermGoal:  "毎食後に歯磨きができる",
		ServiceContent: "口腔ケア支援、歯磨き介助",
	},
	"義歯の不具合がある": {
		Needs:          "義歯が合わないが、しっかり噛みたい",
		LongTermGoal:   "義歯で食事ができる",
		ShortTermGoal:  "義歯の調整ができる",
		ServiceContent: "義歯管理、歯科受診支援",
	},
	"歯・歯肉に問題がある": {
		Needs:          "歯や歯肉に問題があるが、食事を楽しみたい",
		LongTermGoal:   "口腔状態が改善できる",
		ShortTermGoal:  "歯科受診ができる",
		ServiceContent: "口腔ケア、歯科受診支援",
	},
	"口臭がある": {
		Needs:          "口臭があるが、口の中を快適にしたい",
		LongTermGoal:   "口臭が改善できる",
		ShortTermGoal:  "口腔ケアを習慣化できる",
		ServiceContent: "口腔ケア、舌苔除去、歯科連携",
	},
	"口腔乾燥がある": {
		Needs:          "口が乾燥するが、口の中を潤したい",
		LongTermGoal:   "口腔乾燥が改善できる",
		ShortTermGoal:  "こまめに水分を摂れる",
		ServiceContent: "口腔保湿、唾液腺マッサージ",
	},
	"嚥下機能の低下がある": {
		Needs:          "嚥下機能が低下しているが、安全に飲み込みたい",
		LongTermGoal:   "誤嚥を予防できる",
		ShortTermGoal:  "嚥下体操ができる",
		ServiceContent: "嚥下訓練、食事形態調整、姿勢調整",
	},

	// 皮膚
	"褥瘡がある": {
		Needs:          "褥瘡があるが、早く治したい",
		LongTermGoal:   "褥瘡が治癒できる",
		ShortTermGoal:  "褥瘡が悪化しない",
		ServiceContent: "褥瘡ケア、体位変換、栄養管理",
	},
	"褥瘡リスクが高い": {
		Needs:          "褥瘡リスクが高いが、褥瘡を防ぎたい",
		LongTermGoal:   "褥瘡を予防できる",
		ShortTermGoal:  "定期的な体位変換ができる",
		ServiceContent: "体位変換、除圧マット、皮膚観察",
	},
	"皮膚トラブルがある": {
		Needs:          "皮膚トラブルがあるが、肌を健康にしたい",
		LongTermGoal:   "皮膚の状態が改善できる",
		ShortTermGoal:  "皮膚の清潔を保てる",
		ServiceContent: "皮膚ケア、清潔保持、軟膏塗布",
	},
	"ストーマを使用": {
		Needs:          "ストーマを使用しているが、管理を続けたい",
		LongTermGoal:   "ストーマの自己管理ができる",
		ShortTermGoal:  "パウチ交換ができる",
		ServiceContent: "ストーマケア、皮膚観察、医療連携",
	},
	"カテーテルを使用": {
		Needs:          "カテーテルを使用しているが、感染を防ぎたい",
		LongTermGoal:   "感染なく管理できる",
		ShortTermGoal:  "清潔操作ができる",
		ServiceContent: "カテーテル管理、感染予防、医療連携",
	},
	"皮膚の乾燥がある": {
		Needs:          "皮膚が乾燥しているが、しっとりさせたい",
		LongTermGoal:   "皮膚の乾燥が改善できる",
		ShortTermGoal:  "保湿剤を塗れる",
		ServiceContent: "保湿ケア、入浴介助、スキンケア",
	},

	// 環境
	"住環境に段差がある": {
		Needs:          "住環境に段差があるが、安全に移動したい",
		LongTermGoal:   "安全な住環境で生活できる",
		ShortTermGoal:  "段差を認識して注意できる",
		ServiceContent: "住宅改修、段差解消、手すり設置",
	},
	"手すりが不足": {
		Needs:          "手すりが不足しているが、安全に移動したい",
		LongTermGoal:   "手すりを使って安全に移動できる",
		ShortTermGoal:  "必要な場所に手すりが設置される",
		ServiceContent: "住宅改修、手すり設置",
	},
	"トイレ・浴室が使いにくい": {
		Needs:          "トイレ・浴室が使いにくいが、自分で使いたい",
		LongTermGoal:   "トイレ・浴室を自分で使える",
		ShortTermGoal:  "改修後のトイレ・浴室に慣れる",
		ServiceContent: "住宅改修、福祉用具導入",
	},
	"室温管理が不十分": {
		Needs:          "室温管理が不十分だが、快適に過ごしたい",
		LongTermGoal:   "適切な室温で快適に過ごせる",
		ShortTermGoal:  "エアコンを使用できる",
		ServiceContent: "室温管理支援、見守り",
	},
	"照明が不十分": {
		Needs:          "照明が不十分だが、転倒せずに歩きたい",
		LongTermGoal:   "十分な照明で安全に生活できる",
		ShortTermGoal:  "足元灯を使用できる",
		ServiceContent: "環境整備、照明改善",
	},
	"福祉用具の導入が必要": {
		Needs:          "福祉用具が必要だが、適切なものを使いたい",
		LongTermGoal:   "適切な福祉用具で生活できる",
		ShortTermGoal:  "福祉用具の使い方を習得できる",
		ServiceContent: "福祉用具選定、使用訓練",
	},

	// 家族の状況
	"主介護者の負担が大きい": {
		Needs:          "介護者の負担が大きいが、在宅生活を続けたい",
		LongTermGoal:   "介護者の負担が軽減できる",
		ShortTermGoal:  "レスパイトを利用できる",
		ServiceContent: "レスパイトケア、介護者支援",
	},
	"介護者が高齢": {
		Needs:          "介護者が高齢だが、無理なく介護を続けたい",
		LongTermGoal:   "介護者の健康を維持できる",
		ShortTermGoal:  "介護サービスを適切に利用できる",
		ServiceContent: "介護サービス調整、介護者支援",
	},
	"介護者の健康問題": {
		Needs:          "介護者に健康問題があるが、介護を続けたい",
		LongTermGoal:   "介護者が健康を維持できる",
		ShortTermGoal:  "介護者が通院できる",
		ServiceContent: "介護者支援、サービス調整",
	},
	"介護者の就労との両立": {
		Needs:          "介護と仕事の両立が難しいが、続けたい",
		LongTermGoal:   "介護と仕事を両立できる",
		ShortTermGoal:  "日中のサービスを利用できる",
		ServiceContent: "通所サービス、ショートステイ",
	},
	"家族間の意見相違": {
		Needs:          "家族間で意見が違うが、協力して介護したい",
		LongTermGoal:   "家族で協力して介護できる",
		ShortTermGoal:  "家族会議ができる",
		ServiceContent: "家族調整、カンファレンス開催",
	},
	"独居である": {
		Needs:          "独居だが、安心して暮らしたい",
		LongTermGoal:   "見守りの中で安全に生活できる",
		ShortTermGoal:  "定期的な見守りを受けられる",
		ServiceContent: "見守りサービス、緊急通報装置",
	},
	"介護力が不足": {
		Needs:          "介護力が不足しているが、在宅生活を続けたい",
		LongTermGoal:   "必要な介護サービスを受けられる",
		ShortTermGoal:  "適切なサービスを利用できる",
		ServiceContent: "サービス調整、地域資源活用",
	},
	"経済的な課題がある": {
		Needs:          "経済的な課題があるが、必要なサービスを受けたい",
		LongTermGoal:   "経済状況に応じたサービスを受けられる",
		ShortTermGoal:  "利用可能な制度を把握できる",
		ServiceContent: "制度紹介、減額申請支援",
	},

	// 特別な医療
	"点滴・注射が必要": {
		Needs:          "点滴・注射が必要だが、安全に管理したい",
		LongTermGoal:   "点滴・注射を安全に継続できる",
		ShortTermGoal:  "医療処置を受け入れられる",
		ServiceContent: "医療処置、訪問看護",
	},
	"酸素療法を実施": {
		Needs:          "酸素療法を行っているが、安全に管理したい",
		LongTermGoal:   "酸素療法を継続できる",
		ShortTermGoal:  "酸素機器を正しく使える",
		ServiceContent: "酸素管理、呼吸状態観察",
	},
	"人工呼吸器を使用": {
		Needs:          "人工呼吸器を使用しているが、安全に生活したい",
		LongTermGoal:   "人工呼吸器を安全に管理できる",
		ShortTermGoal:  "家族が機器操作できる",
		ServiceContent: "呼吸器管理、緊急対応、医療連携",
	},
	"気管切開がある": {
		Needs:          "気管切開があるが、安全に管理したい",
		LongTermGoal:   "気管切開部を清潔に保てる",
		ShortTermGoal:  "吸引ができる",
		ServiceContent: "気管切開ケア、吸引、医療連携",
	},
	"経管栄養を実施": {
		Needs:          "経管栄養を実施しているが、安全に管理したい",
		LongTermGoal:   "経管栄養を安全に継続できる",
		ShortTermGoal:  "注入の手順を守れる",
		ServiceContent: "経管栄養管理、口腔ケア",
	},
	"透析を実施": {
		Needs:          "透析を行っているが、体調を維持したい",
		LongTermGoal:   "透析を継続しながら生活できる",
		ShortTermGoal:  "透析のスケジュールを守れる",
		ServiceContent: "透析通院支援、体調管理",
	},
	"吸引が必要": {
		Needs:          "吸引が必要だが、苦しくならないようにしたい",
		LongTermGoal:   "痰の管理ができる",
		ShortTermGoal:  "定期的な吸引を受けられる",
		ServiceContent: "吸引、呼吸状態観察、姿勢調整",
	},
	"インスリン注射が必要": {
		Needs:          "インスリン注射が必要だが、正しく続けたい",
		LongTermGoal:   "インスリン管理を継続できる",
		ShortTermGoal:  "正しく注射できる",
		ServiceContent: "インスリン管理、血糖測定支援",
	},

	// その他
	"上記以外の課題がある": {
		Needs:          "個別の課題があるが、解決したい",
		LongTermGoal:   "課題が解決できる",
		ShortTermGoal:  "課題への対応策が見つかる",
		ServiceContent: "個別支援計画の作成",
	},
	"本人の希望がある": {
		Needs:          "本人の希望を叶えたい",
		LongTermGoal:   "本人の希望が実現できる",
		ShortTermGoal:  "希望実現に向けて取り組める",
		ServiceContent: "希望に沿ったサービス調整",
	},
	"家族の希望がある": {
		Needs:          "家族の希望を考慮したい",
		LongTermGoal:   "家族の希望も踏まえた生活ができる",
		ShortTermGoal:  "家族と話し合いができる",
		ServiceContent: "家族との連携、サービス調整",
	},
	"専門職の意見がある": {
		Needs:          "専門職の意見を反映したい",
		LongTermGoal:   "専門職の意見を踏まえたケアができる",
		ShortTermGoal:  "専門職と連携できる",
		ServiceContent: "多職種連携、専門的支援",
	},
}
