package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/Zacy-Sokach/Sitee/internal/api"
	"github.com/Zacy-Sokach/Sitee/internal/config"
	"github.com/Zacy-Sokach/Sitee/internal/utils"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Version 是当前的 Sitee 版本，由 main 包设置
var Version string

const welcomeMessage = "欢迎使用 Sitee - 用一句话生成网站\n\n在下方输入你想要的网站，按 Enter 生成。\n"

type Model struct {
	viewport      viewport.Model
	textarea      textarea.Model
	generatedCode string
	prompts       []string
	history       []string
	historyIdx    int
	ready         bool
	cfg           *config.Config
}

func InitialModel(cfg *config.Config) Model {
	ta := textarea.New()
	ta.Placeholder = "描述你想要的网站..."
	ta.Focus()
	ta.CharLimit = 0
	ta.SetWidth(80)
	ta.SetHeight(3)
	ta.ShowLineNumbers = false
	ta.KeyMap.InsertNewline.SetEnabled(false)

	vp := viewport.New(80, 20)
	vp.SetContent(welcomeMessage)

	// 上次会话的提示词进入回溯缓冲，输入框本身保持为空
	var history []string
	if entries, err := utils.LoadHistory(); err == nil {
		for _, entry := range entries {
			history = append(history, entry.Prompt)
		}
	} else {
		logrus.WithError(err).Debug("加载提示词历史失败")
	}

	return Model{
		textarea:   ta,
		viewport:   vp,
		history:    history,
		historyIdx: len(history),
		cfg:        cfg,
	}
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			m.savePromptHistory()
			return m, tea.Quit
		case tea.KeyEnter:
			input := m.textarea.Value()
			if strings.TrimSpace(input) != "" {
				// 不清空输入框也不锁定界面，再按一次 Enter 会发起
				// 一个独立的并发请求，后返回的响应覆盖先返回的
				m.prompts = append(m.prompts, input)
				m.history = append(m.history, input)
				m.historyIdx = len(m.history)
				return m, m.generate(input)
			}
		case tea.KeyCtrlP:
			// 回溯历史提示词（含上次会话）
			if len(m.history) > 0 && m.historyIdx > 0 {
				m.historyIdx--
				m.textarea.SetValue(m.history[m.historyIdx])
				return m, nil
			}
		case tea.KeyCtrlN:
			if m.historyIdx < len(m.history) {
				m.historyIdx++
				if m.historyIdx == len(m.history) {
					m.textarea.Reset()
				} else {
					m.textarea.SetValue(m.history[m.historyIdx])
				}
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-6)
			m.viewport.YPosition = 0
			m.viewport.SetContent(welcomeMessage)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 6
		}
		m.textarea.SetWidth(msg.Width)

	case GenerateResultMsg:
		// 整体覆盖上一次的结果，按响应到达顺序生效
		m.generatedCode = msg.Code
		m.viewport.SetContent(msg.Code)
		m.viewport.GotoTop()
		logrus.WithField("request_id", msg.RequestID).
			WithField("bytes", len(msg.Code)).
			Info("生成完成")
		return m, nil

	case GenerateErrorMsg:
		// 失败不改变任何显示状态，只记日志
		logrus.WithField("request_id", msg.RequestID).
			WithError(msg.Err).
			Warn("生成请求失败")
		return m, nil
	}

	m.textarea, cmd = m.textarea.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// generate 发起一次生成请求，结果通过消息送回 Update
func (m Model) generate(prompt string) tea.Cmd {
	client := api.NewClient(m.cfg.Endpoint, m.cfg.TimeoutSeconds)
	requestID := uuid.NewString()

	logrus.WithField("request_id", requestID).
		WithField("prompt_len", len(prompt)).
		Info("发起生成请求")

	return func() tea.Msg {
		resp, err := client.Generate(context.Background(), prompt)
		if err != nil {
			return GenerateErrorMsg{RequestID: requestID, Err: err}
		}
		return GenerateResultMsg{RequestID: requestID, Code: resp.Code}
	}
}

func (m *Model) savePromptHistory() {
	if len(m.prompts) > 0 {
		if err := utils.SaveHistory(m.prompts); err != nil {
			logrus.WithError(err).Warn("保存提示词历史失败")
		}
	}
}

// GeneratedCode 返回当前显示的生成代码
func (m Model) GeneratedCode() string {
	return m.generatedCode
}

// PromptValue 返回输入框当前内容
func (m Model) PromptValue() string {
	return m.textarea.Value()
}

func (m Model) View() string {
	if !m.ready {
		return "初始化中..."
	}

	return fmt.Sprintf(
		"%s\n%s\n\n%s\n%s",
		m.titleView(),
		m.viewport.View(),
		m.textarea.View(),
		m.helpView(),
	)
}

func (m Model) titleView() string {
	title := "Sitee"
	if Version != "" {
		title = fmt.Sprintf("Sitee %s", Version)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true).Render(title)
}

func (m Model) helpView() string {
	help := "Enter: 生成网站 • Ctrl+P/N: 历史提示词 • PgUp/PgDn: 滚动结果 • Ctrl+C: 退出"
	return lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(help)
}
