package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/harukimoto/careplan/internal/config"
	"github.com/harukimoto/careplan/internal/gemini"
	"github.com/harukimoto/careplan/internal/generate"
	"github.com/harukimoto/careplan/internal/store"
	"github.com/harukimoto/careplan/internal/types"
)

func main() {
	// Load env
	_ = godotenv.Load(".env")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "careplan: config: %v\n", err)
		os.Exit(1)
	}

	setupLogging(cfg.DataDir)

	st, err := store.Open(filepath.Join(cfg.DataDir, "careplan.db"))
	if err != nil {
		// Logs go to the debug file, so the user-facing message writes
		// to stderr directly.
		fmt.Fprintf(os.Stderr, "\033[31mcareplan: データベースを開けません: %v\033[0m\n", err)
		fmt.Fprintf(os.Stderr, "\033[2m別の careplan プロセスが実行中かもしれません（LevelDBは単一プロセス専用）。終了してから再実行してください。\033[0m\n")
		os.Exit(1)
	}
	defer st.Close()

	client := gemini.New(
		gemini.WithModel(cfg.Gemini.Model),
		gemini.WithTimeout(time.Duration(cfg.Gemini.TimeoutSeconds)*time.Second),
	)

	// Context with signal handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\ncareplan: 終了します")
		cancel()
	}()

	serviceType := types.ServiceType(cfg.ServiceType)

	// One-shot subcommands skip the REPL entirely.
	if len(os.Args) > 1 {
		if err := runSubcommand(st, cfg, serviceType, os.Args[1], os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "careplan: %v\n", err)
			st.Close()
			os.Exit(1)
		}
		return
	}

	r := newREPL(st, generate.New(client), cfg, serviceType)
	r.run(ctx)
}

// setupLogging sends slog to a debug file under the data dir so the
// interactive screen stays clean. CAREPLAN_DEBUG=1 lowers the level.
func setupLogging(dataDir string) {
	level := slog.LevelInfo
	if os.Getenv("CAREPLAN_DEBUG") != "" {
		level = slog.LevelDebug
	}
	var w io.Writer = io.Discard
	if err := os.MkdirAll(dataDir, 0755); err == nil {
		if f, err := os.OpenFile(filepath.Join(dataDir, "debug.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644); err == nil {
			w = f
		}
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

func runSubcommand(st *store.Store, cfg *config.Config, serviceType types.ServiceType, cmd string, args []string) error {
	switch cmd {
	case "export":
		return cmdExport(st, cfg, serviceType, args)
	case "backup":
		return cmdBackup(st, cfg, args)
	case "restore":
		return cmdRestore(st, args)
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		printUsage()
		return fmt.Errorf("不明なコマンド: %s", cmd)
	}
}

func printUsage() {
	fmt.Println(`careplan — ケアプラン第2表作成ツール

使い方:
  careplan                     対話モードを開始
  careplan export <計画ID> [ファイル]   保存した計画をCSV（.txtならテキスト）で出力
  careplan backup [ファイル]            全データをJSONバックアップに書き出し
  careplan restore <ファイル>           バックアップを取り込み（IDで統合）`)
}

// cmdExport writes a saved plan to a file. A .txt destination gets the
// clipboard-style text block; anything else gets CSV.
func cmdExport(st *store.Store, cfg *config.Config, serviceType types.ServiceType, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("export: 計画IDを指定してください")
	}
	p, ok, err := st.GetPlan(args[0])
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("export: 計画 %q が見つかりません", args[0])
	}
	if p.ServiceType != "" {
		serviceType = p.ServiceType
	}

	s := generate.NewSession(serviceType)
	s.Plan.Replace(p.Items)

	out := filepath.Join(cfg.ExportDir, "careplan_"+p.ID+".csv")
	if len(args) > 1 {
		out = args[1]
	}
	var content string
	if strings.HasSuffix(out, ".txt") {
		content = s.Plan.ClipboardText(serviceType)
	} else {
		content = s.Plan.CSV()
	}
	if err := os.WriteFile(out, []byte(content), 0644); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	fmt.Printf("書き出しました: %s（%d項目）\n", out, len(p.Items))
	return nil
}

// cmdBackup is the one-shot variant; there is no live session to carry.
func cmdBackup(st *store.Store, cfg *config.Config, args []string) error {
	return writeBackup(st, nil, cfg, args)
}

// writeBackup collects everything into an envelope, with the working
// session when one exists, and writes it as indented JSON.
func writeBackup(st *store.Store, session *types.SessionState, cfg *config.Config, args []string) error {
	env, err := st.Backup(session)
	if err != nil {
		return err
	}
	out := filepath.Join(cfg.ExportDir, "careplan_backup_"+time.Now().Format("20060102")+".json")
	if len(args) > 0 {
		out = args[0]
	}
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return fmt.Errorf("backup: %w", err)
	}
	if err := os.WriteFile(out, data, 0644); err != nil {
		return fmt.Errorf("backup: %w", err)
	}
	fmt.Printf("バックアップを書き出しました: %s\n", out)
	return nil
}

func readBackup(path string) (types.BackupEnvelope, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.BackupEnvelope{}, fmt.Errorf("restore: %w", err)
	}
	var env types.BackupEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return types.BackupEnvelope{}, fmt.Errorf("restore: 不正なバックアップファイルです: %w", err)
	}
	return env, nil
}

func cmdRestore(st *store.Store, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("restore: バックアップファイルを指定してください")
	}
	env, err := readBackup(args[0])
	if err != nil {
		return err
	}
	if err := st.Restore(env); err != nil {
		return err
	}
	fmt.Printf("取り込みました: 利用者%d名, 計画%d件\n", len(env.Data.Users), len(env.Data.Plans))
	return nil
}
