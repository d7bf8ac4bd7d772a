package tui

// Message types for tea.Model

// GenerateResultMsg 表示一次生成请求成功返回
type GenerateResultMsg struct {
	RequestID string
	Code      string
}

// GenerateErrorMsg 表示一次生成请求失败
// 界面不展示错误，只写日志，显示区保持原内容
type GenerateErrorMsg struct {
	RequestID string
	Err       error
}
