package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/Zacy-Sokach/Sitee/internal/config"
	"github.com/Zacy-Sokach/Sitee/internal/logging"
	"github.com/Zacy-Sokach/Sitee/internal/tui"
	"github.com/Zacy-Sokach/Sitee/internal/utils"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	Version = "dev"
)

func main() {
	// 处理命令行参数
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "-v", "--version":
			fmt.Printf("Sitee %s\n", Version)
			os.Exit(0)
		case "-h", "--help":
			fmt.Println("Sitee - 用一句话生成网站的终端客户端")
			fmt.Println()
			fmt.Println("Usage:")
			fmt.Println("  sitee                  Start the interactive TUI")
			fmt.Println("  sitee -v, --version    Show version information")
			fmt.Println("  sitee -h, --help       Show help information")
			fmt.Println()
			fmt.Println("需要一个实现 POST /generate/ 的生成服务，")
			fmt.Println("默认地址 http://localhost:8000/generate/，可在配置文件中修改。")
			fmt.Printf("配置文件位置: %s\n", utils.GetConfigPathForDisplay())
			fmt.Println("本地联调可以先启动 siteestub。")
			os.Exit(0)
		}
	}

	// 添加panic恢复
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("程序发生panic: %v\n", r)
			fmt.Println("堆栈跟踪:")
			debug.PrintStack()
			os.Exit(1)
		}
	}()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("加载配置失败: %v\n", err)
		os.Exit(1)
	}

	logging.Init(cfg.Logging)

	// 检查是否在交互式终端中
	if isTerminal() {
		tui.Version = Version

		model := tui.InitialModel(cfg)
		p := tea.NewProgram(&model, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Printf("程序运行错误: %v\n", err)
			os.Exit(1)
		}
	} else {
		// 非交互式环境，使用简单模式
		fmt.Println("Sitee 运行在非交互式模式")
		fmt.Println("请确保在交互式终端中运行以获得完整TUI体验")
		fmt.Printf("当前生成服务地址: %s\n", cfg.Endpoint)
		fmt.Println("程序将在非交互式环境中退出")
	}
}

func isTerminal() bool {
	fileInfo, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
