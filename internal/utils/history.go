package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

type HistoryEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Prompt    string    `json:"prompt"`
}

// SaveHistory 把本次会话提交过的提示词追加到历史文件
func SaveHistory(prompts []string) error {
	if len(prompts) == 0 {
		return nil
	}

	historyPath, err := getHistoryPath()
	if err != nil {
		return fmt.Errorf("获取历史文件路径失败: %w", err)
	}

	var history []HistoryEntry

	if _, err := os.Stat(historyPath); err == nil {
		data, err := os.ReadFile(historyPath)
		if err == nil {
			json.Unmarshal(data, &history)
		}
	}

	now := time.Now()
	for _, p := range prompts {
		history = append(history, HistoryEntry{Timestamp: now, Prompt: p})
	}

	if len(history) > 100 {
		history = history[len(history)-100:]
	}

	data, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return fmt.Errorf("序列化历史失败: %w", err)
	}

	historyDir := filepath.Dir(historyPath)
	if err := os.MkdirAll(historyDir, 0755); err != nil {
		return fmt.Errorf("创建历史目录失败: %w", err)
	}

	if err := os.WriteFile(historyPath, data, 0644); err != nil {
		return fmt.Errorf("写入历史文件失败: %w", err)
	}

	return nil
}

func LoadHistory() ([]HistoryEntry, error) {
	historyPath, err := getHistoryPath()
	if err != nil {
		return nil, fmt.Errorf("获取历史文件路径失败: %w", err)
	}

	if _, err := os.Stat(historyPath); os.IsNotExist(err) {
		return []HistoryEntry{}, nil
	}

	data, err := os.ReadFile(historyPath)
	if err != nil {
		return nil, fmt.Errorf("读取历史文件失败: %w", err)
	}

	var history []HistoryEntry
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, fmt.Errorf("解析历史文件失败: %w", err)
	}

	return history, nil
}

func getHistoryPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", fmt.Errorf("获取配置目录失败: %w", err)
	}
	return filepath.Join(configDir, "history.json"), nil
}
