package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/fifty-one/internal/app"
	"github.com/palemoky/fifty-one/internal/config"
	"github.com/palemoky/fifty-one/internal/game"
	"github.com/palemoky/fifty-one/internal/logger"
	"github.com/palemoky/fifty-one/internal/ui"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "配置文件路径")
	interactive := flag.Bool("interactive", false, "在终端中亲自与 CPU 对局")
	flag.Parse()

	if err := run(*configPath, *interactive); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, interactive bool) (err error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return err
	}

	if err := logger.Init(cfg.Log.Dir); err != nil {
		log.Printf("无法初始化日志，输出到 stderr: %v", err)
	}
	defer logger.Close()

	defer func() {
		if r := recover(); r != nil {
			logger.LogPanic(r)
			err = fmt.Errorf("程序异常退出: %v", r)
		}
	}()

	ctx := context.Background()
	a, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	var outcome *game.Outcome
	if interactive {
		outcome, err = playInteractive(ctx, a)
	} else {
		outcome, err = a.Simulate(ctx)
	}
	if err != nil {
		return err
	}
	if outcome != nil {
		fmt.Println(ui.Summary(outcome))
	}
	return nil
}

// loadConfig 读取配置文件，文件不存在时使用默认配置，其他错误直接返回
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("配置文件 %s 不存在，使用默认配置", path)
		return config.Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("加载配置文件 %s 失败: %w", path, err)
	}
	return cfg, nil
}

func playInteractive(ctx context.Context, a *app.App) (*game.Outcome, error) {
	g, release := a.NewGame(ctx)
	defer release()

	if err := g.Init(); err != nil {
		return nil, err
	}

	model := ui.NewLocalModel(g, a.CpuBrain(), a.MaxTurns())
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return nil, fmt.Errorf("启动终端界面时出错: %w", err)
	}
	if err := model.Err(); err != nil {
		return nil, err
	}
	return model.Outcome(), nil
}
