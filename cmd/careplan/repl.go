package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/google/uuid"

	"github.com/harukimoto/careplan/internal/config"
	"github.com/harukimoto/careplan/internal/gemini"
	"github.com/harukimoto/careplan/internal/generate"
	"github.com/harukimoto/careplan/internal/plangen"
	"github.com/harukimoto/careplan/internal/prompt"
	"github.com/harukimoto/careplan/internal/store"
	"github.com/harukimoto/careplan/internal/taxonomy"
	"github.com/harukimoto/careplan/internal/types"
	"github.com/harukimoto/careplan/internal/ui"
)

var careLevels = []string{"要支援1", "要支援2", "要介護1", "要介護2", "要介護3", "要介護4", "要介護5"}

type repl struct {
	st      *store.Store
	gen     *generate.Service
	cfg     *config.Config
	session *generate.Session
	rl      *readline.Instance
}

func newREPL(st *store.Store, gen *generate.Service, cfg *config.Config, serviceType types.ServiceType) *repl {
	r := &repl{st: st, gen: gen, cfg: cfg, session: generate.NewSession(serviceType)}
	// Autosave progress whenever the plan changes.
	r.session.AddHook(func(s *generate.Session) {
		if err := generate.SaveProgress(st, s); err != nil {
			slog.Warn("[REPL] progress autosave failed", "error", err)
		}
	})
	return r
}

func (r *repl) run(ctx context.Context) {
	rl, err := readline.NewEx(&readline.Config{Prompt: "careplan> "})
	if err != nil {
		fmt.Fprintf(os.Stderr, "careplan: readline: %v\n", err)
		return
	}
	defer rl.Close()
	r.rl = rl

	fmt.Println("careplan — ケアプラン第2表作成ツール（help でコマンド一覧）")
	if !r.gen.Available() {
		fmt.Println(ui.Notice("GEMINI_API_KEY 未設定: テンプレート生成のみ利用できます"))
	}
	r.offerResume()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return
		}
		args := strings.Fields(strings.TrimSpace(line))
		if len(args) == 0 {
			continue
		}
		if args[0] == "exit" || args[0] == "quit" {
			return
		}
		if err := r.dispatch(ctx, args[0], args[1:]); err != nil {
			r.fail(err)
		}
	}
}

func (r *repl) dispatch(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "help":
		r.printHelp()
	case "status":
		r.printStatus()
	case "type":
		return r.toggleServiceType()
	case "user":
		return r.userCommand(args)
	case "assess":
		return r.assessWalk()
	case "gen":
		return r.generateCommand(ctx, args)
	case "plan":
		fmt.Print(ui.PlanTable(r.session.Plan.Items()))
	case "del":
		return r.deleteRow(args)
	case "edit":
		return r.editRow(args)
	case "rewrite":
		return r.rewriteRow(ctx, args)
	case "manual":
		return r.manualEntry()
	case "export":
		return r.exportPlan(args)
	case "save":
		return r.savePlan()
	case "load":
		return r.loadPlan()
	case "plans":
		return r.listPlans()
	case "delplan":
		return r.deletePlan(args)
	case "progress":
		return r.progressCommand(args)
	case "reqsvc":
		return r.requiredServices()
	case "backup":
		// Unlike the one-shot subcommand, the REPL has live work to
		// carry: the envelope travels with the current session.
		return writeBackup(r.st, r.session.State(), r.cfg, args)
	case "restore":
		return r.restoreBackup(args)
	default:
		return fmt.Errorf("不明なコマンド: %s（help 参照）", cmd)
	}
	return nil
}

func (r *repl) printHelp() {
	fmt.Println(`コマンド:
  assess            アセスメント入力（14カテゴリを順に確認）
  gen template      現在のカテゴリからテンプレート生成
  gen ai            現在のカテゴリからAI生成
  gen all           データのある全カテゴリを一括AI生成
  gen integrated    統合カテゴリ生成（計画を置き換え）
  plan              計画表を表示
  edit <番号>       項目を編集（ニーズは状態＋希望に分解）
  rewrite <番号> <ニーズ|長期|短期|サービス|全体> <簡潔|丁寧|具体的>
  del <番号>        項目を削除
  manual            手動で項目を追加
  save / load / plans / delplan <番号>
  export csv|text [ファイル]
  user list|add|use <番号>|del <番号>
  progress save|load|clear
  reqsvc            統合カテゴリの必須サービス設定
  backup [ファイル] / restore <ファイル>
  type              施設/居宅の切り替え
  exit`)
}

func (r *repl) printStatus() {
	s := r.session
	fmt.Printf("サービス種別: %s\n", s.ServiceType.Name())
	if s.UserID != "" {
		if u, ok, _ := r.st.GetUser(s.UserID); ok {
			fmt.Printf("利用者: %s（%d歳 %s）\n", u.Initial, u.Age, u.CareLevel)
		}
	} else {
		fmt.Println("利用者: 未選択")
	}
	fmt.Printf("アセスメント: %s\n", ui.ProgressBar(s.Assessment.CountCategoriesWithData(), len(taxonomy.Categories)))
	fmt.Printf("計画項目: %d件\n", s.Plan.Len())
}

func (r *repl) toggleServiceType() error {
	if r.session.ServiceType == types.ServiceFacility {
		r.session.ServiceType = types.ServiceHome
	} else {
		r.session.ServiceType = types.ServiceFacility
	}
	fmt.Printf("サービス種別: %s\n", r.session.ServiceType.Name())
	return nil
}

// fail prints an error; classified API errors get the framed Japanese
// remediation instead of a bare message.
func (r *repl) fail(err error) {
	var apiErr *gemini.APIError
	if errors.As(err, &apiErr) {
		fmt.Print(ui.ErrorBox(apiErr.Remedy()))
		return
	}
	fmt.Printf("エラー: %v\n", err)
}

// ask reads one line with a temporary prompt.
func (r *repl) ask(label string) (string, error) {
	r.rl.SetPrompt(label)
	defer r.rl.SetPrompt("careplan> ")
	line, err := r.rl.Readline()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (r *repl) offerResume() {
	snap, ok, err := r.st.LoadProgress(r.session.UserID)
	if err != nil || !ok {
		return
	}
	ans, err := r.ask(fmt.Sprintf("前回の途中保存（%s）があります。再開しますか? [y/N] ", snap.SavedAt))
	if err != nil || !strings.EqualFold(ans, "y") {
		return
	}
	r.session.RestoreProgress(snap)
	fmt.Printf("再開しました: %s\n", ui.ProgressBar(r.session.Assessment.CountCategoriesWithData(), len(taxonomy.Categories)))
}

// --- assessment walk ---

func (r *repl) assessWalk() error {
	total := len(taxonomy.Categories)
	i := r.session.CategoryIndex
	if i < 0 || i >= total {
		i = 0
	}
	for {
		cat := taxonomy.Categories[i]
		entry := r.session.Assessment.Get(cat.ID)
		fmt.Print(ui.Checklist(cat, entry, i+1, total))
		in, err := r.ask("番号=チェック切替, d <メモ>, n=次へ, p=前へ, q=終了 > ")
		if err != nil {
			return nil
		}
		switch {
		case in == "q":
			r.session.CategoryIndex = i
			return nil
		case in == "n" || in == "":
			if i < total-1 {
				i++
			} else {
				r.session.CategoryIndex = i
				fmt.Println(ui.Notice("最後のカテゴリです。gen でケアプランを生成できます"))
				return nil
			}
		case in == "p":
			if i > 0 {
				i--
			}
		case strings.HasPrefix(in, "d "):
			r.session.Assessment.SetDetail(cat.ID, strings.TrimSpace(in[2:]))
		case in == "d":
			r.session.Assessment.SetDetail(cat.ID, "")
		default:
			n, err := strconv.Atoi(in)
			if err != nil || n < 1 || n > len(cat.CheckItems) {
				fmt.Println("番号が不正です")
				continue
			}
			r.session.Assessment.Toggle(cat.ID, cat.CheckItems[n-1])
		}
	}
}

func (r *repl) currentCategory() taxonomy.Category {
	i := r.session.CategoryIndex
	if i < 0 || i >= len(taxonomy.Categories) {
		i = 0
	}
	return taxonomy.Categories[i]
}

// --- generation ---

func (r *repl) generateCommand(ctx context.Context, args []string) error {
	mode := "template"
	if len(args) > 0 {
		mode = args[0]
	}
	switch mode {
	case "template":
		return r.genTemplate()
	case "ai":
		if err := r.gen.Category(ctx, r.session, r.currentCategory().ID); err != nil {
			return err
		}
	case "all":
		if err := r.gen.AllCategories(ctx, r.session); err != nil {
			return err
		}
	case "integrated":
		return r.genIntegrated(ctx, args[1:])
	default:
		return fmt.Errorf("gen template|ai|all|integrated [ai]")
	}
	fmt.Print(ui.PlanTable(r.session.Plan.Items()))
	return nil
}

func (r *repl) genTemplate() error {
	cat := r.currentCategory()
	suggestions, err := generate.TemplateCategory(r.session, cat.ID)
	if err != nil {
		return err
	}
	fmt.Printf("%s %s のテンプレート候補:\n", cat.Icon, cat.Name)
	for _, sg := range suggestions {
		state, err := r.pickState(sg.Item, sg.StateSuggestions)
		if err != nil {
			return nil
		}
		if state == "skip" {
			continue
		}
		r.session.Plan.Push(sg.CarePlanItem(state))
	}
	r.session.Changed()
	fmt.Print(ui.PlanTable(r.session.Plan.Items()))
	return nil
}

// pickState offers the state variants for one suggestion. Enter keeps
// the default wording; a letter picks a variant; s skips the item; any
// other text is used as the state verbatim.
func (r *repl) pickState(item string, states []string) (string, error) {
	fmt.Print(ui.Suggestions([]string{item}, [][]string{states}))
	in, err := r.ask("状態 (Enter=そのまま, a-z=候補, s=スキップ, 自由入力可) > ")
	if err != nil {
		return "", err
	}
	switch {
	case in == "":
		return "", nil
	case in == "s":
		return "skip", nil
	case len(in) == 1 && in[0] >= 'a' && int(in[0]-'a') < len(states):
		return states[in[0]-'a'], nil
	default:
		return in, nil
	}
}

func (r *repl) genIntegrated(ctx context.Context, args []string) error {
	checked := r.session.Assessment.CheckedSet()
	fmt.Println("統合カテゴリ（番号をスペース区切りで選択、Enter=全て）:")
	for i, g := range taxonomy.IntegratedCategories {
		fmt.Printf("%2d. %s %s（該当 %d項目）\n", i+1, g.Icon, g.Name, len(g.CheckedIn(checked)))
	}
	in, err := r.ask("> ")
	if err != nil {
		return nil
	}
	var ids []string
	if in == "" {
		for _, g := range taxonomy.IntegratedCategories {
			ids = append(ids, g.ID)
		}
	} else {
		for _, f := range strings.Fields(in) {
			n, err := strconv.Atoi(f)
			if err != nil || n < 1 || n > len(taxonomy.IntegratedCategories) {
				return fmt.Errorf("番号が不正です: %s", f)
			}
			ids = append(ids, taxonomy.IntegratedCategories[n-1].ID)
		}
	}

	if len(args) > 0 && args[0] == "ai" {
		if r.session.Plan.Len() > 0 {
			ans, err := r.ask("現在の計画を置き換えます。よろしいですか? [y/N] ")
			if err != nil || !strings.EqualFold(ans, "y") {
				return nil
			}
		}
		if err := r.gen.Integrated(ctx, r.session, ids); err != nil {
			return err
		}
		fmt.Print(ui.PlanTable(r.session.Plan.Items()))
		return nil
	}

	required, err := r.st.RequiredServices()
	if err != nil {
		return err
	}
	suggestions, err := generate.TemplateIntegrated(ids, required)
	if err != nil {
		return err
	}
	var items []types.CarePlanItem
	for _, sg := range suggestions {
		state, err := r.pickState(sg.CategoryName, sg.StateSuggestions)
		if err != nil {
			return nil
		}
		if state == "skip" {
			continue
		}
		items = append(items, sg.CarePlanItem(state))
	}
	if len(items) == 0 {
		return fmt.Errorf("項目が選択されませんでした")
	}
	if r.session.Plan.Len() > 0 {
		ans, err := r.ask(fmt.Sprintf("現在の計画（%d件）を%d件で置き換えます。よろしいですか? [y/N] ", r.session.Plan.Len(), len(items)))
		if err != nil || !strings.EqualFold(ans, "y") {
			return nil
		}
	}
	r.session.Plan.Replace(items)
	r.session.Changed()
	fmt.Print(ui.PlanTable(r.session.Plan.Items()))
	return nil
}

// --- row operations ---

func (r *repl) rowIndex(args []string) (int, error) {
	if len(args) < 1 {
		return 0, fmt.Errorf("項目番号を指定してください")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > r.session.Plan.Len() {
		return 0, fmt.Errorf("項目番号が不正です: %s", args[0])
	}
	return n - 1, nil
}

func (r *repl) deleteRow(args []string) error {
	i, err := r.rowIndex(args)
	if err != nil {
		return err
	}
	r.session.Plan.Delete(i)
	r.session.Changed()
	fmt.Printf("削除しました（残り%d件）\n", r.session.Plan.Len())
	return nil
}

func (r *repl) editRow(args []string) error {
	i, err := r.rowIndex(args)
	if err != nil {
		return err
	}
	item, _ := r.session.Plan.Get(i)
	fmt.Print(ui.PlanTable([]types.CarePlanItem{item}))
	in, err := r.ask("編集する項目 (1=ニーズ 2=長期目標 3=短期目標 4=サービス内容) > ")
	if err != nil {
		return nil
	}
	switch in {
	case "1":
		return r.editNeeds(i, item)
	case "2", "3", "4":
		fields := map[string]string{"2": "longTermGoal", "3": "shortTermGoal", "4": "serviceContent"}
		v, err := r.ask("新しい内容 (Enter=変更なし) > ")
		if err != nil || v == "" {
			return nil
		}
		r.session.Plan.SetField(i, fields[in], v)
		r.session.Changed()
		return nil
	default:
		return fmt.Errorf("1〜4を指定してください")
	}
}

// editNeeds decomposes the needs field into state and wish, offers the
// state variants for the row's source item, and recomposes.
func (r *repl) editNeeds(i int, item types.CarePlanItem) error {
	state, wish := plangen.SplitNeeds(item.Needs)
	fmt.Printf("現在の状態: %s\n現在の希望: %s\n", state, wish)

	// The variant table is keyed by checklist item name. Template rows
	// carry the item name in CategoryName; AI and integrated rows carry
	// a category label there, so they get only the current state back.
	variants := taxonomy.StateSuggestions(item.CategoryName, state)
	newState, err := r.pickState(item.CategoryName, variants)
	if err != nil {
		return nil
	}
	if newState == "skip" {
		return nil
	}
	if newState == "" {
		newState = state
	}
	newWish, err := r.ask("希望 (Enter=変更なし) > ")
	if err != nil {
		return nil
	}
	if newWish == "" {
		newWish = wish
	}
	r.session.Plan.SetField(i, "needs", plangen.ComposeNeeds(newState, newWish))
	r.session.Changed()
	return nil
}

var rewriteFields = map[string]string{
	"ニーズ": "needs", "長期": "longTermGoal", "短期": "shortTermGoal", "サービス": "serviceContent",
	"needs": "needs", "long": "longTermGoal", "short": "shortTermGoal", "service": "serviceContent",
}

var rewriteStyles = map[string]prompt.RewriteStyle{
	"簡潔": prompt.StyleConcise, "丁寧": prompt.StylePolite, "具体的": prompt.StyleSpecific,
	"concise": prompt.StyleConcise, "polite": prompt.StylePolite, "specific": prompt.StyleSpecific,
}

func (r *repl) rewriteRow(ctx context.Context, args []string) error {
	i, err := r.rowIndex(args)
	if err != nil {
		return err
	}
	if len(args) < 3 {
		return fmt.Errorf("rewrite <番号> <ニーズ|長期|短期|サービス|全体> <簡潔|丁寧|具体的>")
	}
	style, ok := rewriteStyles[args[2]]
	if !ok {
		return fmt.Errorf("スタイルが不正です: %s", args[2])
	}
	if args[1] == "全体" || args[1] == "all" {
		if err := r.gen.RewriteRecord(ctx, r.session, i, style); err != nil {
			return err
		}
	} else {
		field, ok := rewriteFields[args[1]]
		if !ok {
			return fmt.Errorf("項目が不正です: %s", args[1])
		}
		if err := r.gen.RewriteField(ctx, r.session, i, field, style); err != nil {
			return err
		}
	}
	item, _ := r.session.Plan.Get(i)
	fmt.Print(ui.PlanTable([]types.CarePlanItem{item}))
	return nil
}

func (r *repl) manualEntry() error {
	cat := r.currentCategory()
	name, err := r.ask(fmt.Sprintf("カテゴリ名 (Enter=%s) > ", cat.Name))
	if err != nil {
		return nil
	}
	if name == "" {
		name = cat.Name
	}
	var f types.PlanFields
	prompts := []struct {
		label    string
		dst      *string
		required bool
	}{
		{"ニーズ", &f.Needs, true},
		{"長期目標", &f.LongTermGoal, true},
		{"短期目標", &f.ShortTermGoal, true},
		{"サービス内容", &f.ServiceContent, false},
	}
	for _, p := range prompts {
		v, err := r.ask(p.label + " > ")
		if err != nil {
			return nil
		}
		if v == "" && p.required {
			return fmt.Errorf("%sは必須です", p.label)
		}
		*p.dst = v
	}
	r.session.Plan.Push(types.CarePlanItem{CategoryName: name, PlanFields: f})
	r.session.Changed()
	return nil
}

// --- export ---

func (r *repl) exportPlan(args []string) error {
	if r.session.Plan.Len() == 0 {
		return fmt.Errorf("計画項目がありません")
	}
	kind := "csv"
	if len(args) > 0 {
		kind = args[0]
	}
	switch kind {
	case "csv":
		out := filepath.Join(r.cfg.ExportDir, "careplan_"+time.Now().Format("20060102_150405")+".csv")
		if len(args) > 1 {
			out = args[1]
		}
		if err := os.WriteFile(out, []byte(r.session.Plan.CSV()), 0644); err != nil {
			return err
		}
		fmt.Printf("CSVを書き出しました: %s\n", out)
	case "text":
		text := r.session.Plan.ClipboardText(r.session.ServiceType)
		if len(args) > 1 {
			if err := os.WriteFile(args[1], []byte(text), 0644); err != nil {
				return err
			}
			fmt.Printf("テキストを書き出しました: %s\n", args[1])
		} else {
			fmt.Println(text)
		}
	default:
		return fmt.Errorf("export csv|text [ファイル]")
	}
	return nil
}

// --- users ---

func (r *repl) userCommand(args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}
	switch args[0] {
	case "list":
		users, err := r.st.Users()
		if err != nil {
			return err
		}
		fmt.Print(ui.UserList(users))
	case "add":
		return r.addUser()
	case "use":
		return r.selectUser(args[1:])
	case "del":
		return r.deleteUser(args[1:])
	default:
		return fmt.Errorf("user list|add|use <番号>|del <番号>")
	}
	return nil
}

func (r *repl) addUser() error {
	initial, err := r.ask("イニシャル（例: T.S）> ")
	if err != nil || initial == "" {
		return fmt.Errorf("イニシャルは必須です")
	}
	ageStr, err := r.ask("年齢 > ")
	if err != nil {
		return nil
	}
	age, err := strconv.Atoi(ageStr)
	if err != nil || age < 0 {
		return fmt.Errorf("年齢が不正です")
	}
	for i, lv := range careLevels {
		fmt.Printf("%d. %s\n", i+1, lv)
	}
	lvStr, err := r.ask("介護度 > ")
	if err != nil {
		return nil
	}
	lv, err := strconv.Atoi(lvStr)
	if err != nil || lv < 1 || lv > len(careLevels) {
		return fmt.Errorf("介護度が不正です")
	}
	u := types.User{
		ID:        uuid.NewString(),
		Initial:   initial,
		Age:       age,
		CareLevel: careLevels[lv-1],
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := r.st.PutUser(u); err != nil {
		return err
	}
	r.session.UserID = u.ID
	fmt.Printf("登録しました: %s（選択中）\n", u.Initial)
	return nil
}

func (r *repl) userAt(args []string) (types.User, error) {
	users, err := r.st.Users()
	if err != nil {
		return types.User{}, err
	}
	if len(args) < 1 {
		return types.User{}, fmt.Errorf("利用者番号を指定してください")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(users) {
		return types.User{}, fmt.Errorf("利用者番号が不正です: %s", args[0])
	}
	return users[n-1], nil
}

func (r *repl) selectUser(args []string) error {
	u, err := r.userAt(args)
	if err != nil {
		return err
	}
	r.session.UserID = u.ID
	r.session.PlanID = ""
	fmt.Printf("選択しました: %s\n", u.Initial)
	// A selected user may have their own saved progress.
	if _, ok, _ := r.st.LoadProgress(u.ID); ok {
		r.offerResume()
	}
	return nil
}

func (r *repl) deleteUser(args []string) error {
	u, err := r.userAt(args)
	if err != nil {
		return err
	}
	ans, err := r.ask(fmt.Sprintf("%s と保存済み計画を全て削除します。よろしいですか? [y/N] ", u.Initial))
	if err != nil || !strings.EqualFold(ans, "y") {
		return nil
	}
	if err := r.st.DeleteUser(u.ID); err != nil {
		return err
	}
	if r.session.UserID == u.ID {
		r.session.UserID = ""
		r.session.PlanID = ""
	}
	fmt.Println("削除しました")
	return nil
}

// --- saved plans ---

func (r *repl) savePlan() error {
	if r.session.UserID == "" {
		return fmt.Errorf("先に user use で利用者を選択してください")
	}
	overwrite := false
	if r.session.PlanID != "" {
		ans, err := r.ask("上書き保存しますか? (n=新規保存) [Y/n] ")
		if err != nil {
			return nil
		}
		overwrite = !strings.EqualFold(ans, "n")
	}
	p, err := generate.SavePlan(r.st, r.session, overwrite)
	if err != nil {
		return err
	}
	fmt.Printf("保存しました: %d項目（ID %s）\n", len(p.Items), p.ID)
	return nil
}

func (r *repl) plansInScope() ([]types.SavedPlan, error) {
	if r.session.UserID != "" {
		return r.st.PlansForUser(r.session.UserID)
	}
	return r.st.Plans()
}

func (r *repl) listPlans() error {
	plans, err := r.plansInScope()
	if err != nil {
		return err
	}
	users, err := r.st.Users()
	if err != nil {
		return err
	}
	byID := make(map[string]types.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	fmt.Print(ui.PlanList(plans, byID))
	return nil
}

func (r *repl) planAt(args []string) (types.SavedPlan, error) {
	plans, err := r.plansInScope()
	if err != nil {
		return types.SavedPlan{}, err
	}
	if len(args) < 1 {
		return types.SavedPlan{}, fmt.Errorf("計画番号を指定してください")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(plans) {
		return types.SavedPlan{}, fmt.Errorf("計画番号が不正です: %s", args[0])
	}
	return plans[n-1], nil
}

func (r *repl) loadPlan() error {
	if err := r.listPlans(); err != nil {
		return err
	}
	in, err := r.ask("読み込む計画番号 > ")
	if err != nil || in == "" {
		return nil
	}
	p, err := r.planAt([]string{in})
	if err != nil {
		return err
	}
	if err := generate.LoadPlan(r.st, r.session, p.ID); err != nil {
		return err
	}
	fmt.Print(ui.PlanTable(r.session.Plan.Items()))
	return nil
}

func (r *repl) deletePlan(args []string) error {
	p, err := r.planAt(args)
	if err != nil {
		return err
	}
	ans, err := r.ask(fmt.Sprintf("計画（%d項目）を削除します。よろしいですか? [y/N] ", len(p.Items)))
	if err != nil || !strings.EqualFold(ans, "y") {
		return nil
	}
	if err := r.st.DeletePlan(p.ID); err != nil {
		return err
	}
	if r.session.PlanID == p.ID {
		r.session.PlanID = ""
	}
	fmt.Println("削除しました")
	return nil
}

// --- progress ---

func (r *repl) progressCommand(args []string) error {
	mode := "save"
	if len(args) > 0 {
		mode = args[0]
	}
	switch mode {
	case "save":
		if err := generate.SaveProgress(r.st, r.session); err != nil {
			return err
		}
		fmt.Println("途中保存しました")
	case "load":
		ok, err := generate.LoadProgress(r.st, r.session)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("途中保存はありません")
		}
		fmt.Printf("再開しました: %s\n", ui.ProgressBar(r.session.Assessment.CountCategoriesWithData(), len(taxonomy.Categories)))
	case "clear":
		if err := r.st.ClearProgress(r.session.UserID); err != nil {
			return err
		}
		fmt.Println("途中保存を削除しました")
	default:
		return fmt.Errorf("progress save|load|clear")
	}
	return nil
}

// --- required services ---

func (r *repl) requiredServices() error {
	current, err := r.st.RequiredServices()
	if err != nil {
		return err
	}
	updated := make(map[string]string, len(taxonomy.IntegratedCategories))
	for _, g := range taxonomy.IntegratedCategories {
		cur := current[g.ID]
		label := fmt.Sprintf("%s %s (現在: %s, Enter=維持, -=削除) > ", g.Icon, g.Name, orNone(cur))
		in, err := r.ask(label)
		if err != nil {
			return nil
		}
		switch in {
		case "":
			updated[g.ID] = cur
		case "-":
			updated[g.ID] = ""
		default:
			updated[g.ID] = in
		}
	}
	if err := r.st.SetRequiredServices(updated); err != nil {
		return err
	}
	fmt.Println("必須サービスを更新しました")
	return nil
}

// restoreBackup imports an envelope into the store. The envelope's
// carried session is adopted only when the local session is empty, so
// an import never clobbers live work.
func (r *repl) restoreBackup(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("restore: バックアップファイルを指定してください")
	}
	env, err := readBackup(args[0])
	if err != nil {
		return err
	}
	if err := r.st.Restore(env); err != nil {
		return err
	}
	fmt.Printf("取り込みました: 利用者%d名, 計画%d件\n", len(env.Data.Users), len(env.Data.Plans))

	cs := env.Data.CurrentSession
	if cs != nil && r.session.Plan.Len() == 0 && r.session.Assessment.CountCategoriesWithData() == 0 {
		r.session.Assessment.Restore(cs.Assessment)
		r.session.Plan.Replace(cs.CarePlanItems)
		if cs.ServiceType != "" {
			r.session.ServiceType = cs.ServiceType
		}
		r.session.UserID = cs.CurrentUserID
		fmt.Println(ui.Notice("バックアップ内の作業セッションを復元しました"))
	}
	return nil
}

func orNone(s string) string {
	if s == "" {
		return "なし"
	}
	return s
}
