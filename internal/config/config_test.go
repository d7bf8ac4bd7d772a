package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigStruct(t *testing.T) {
	// 测试Config结构体
	config := &Config{
		Endpoint:       "http://localhost:8000/generate/",
		TimeoutSeconds: 120,
	}

	if config.Endpoint != "http://localhost:8000/generate/" {
		t.Errorf("Endpoint not set correctly: %s", config.Endpoint)
	}
	if config.TimeoutSeconds != 120 {
		t.Errorf("TimeoutSeconds not set correctly: %d", config.TimeoutSeconds)
	}
}

func TestGetConfigPath(t *testing.T) {
	tmpDir := t.TempDir()

	originalHome := os.Getenv("SITEE_CONFIG_HOME")
	os.Setenv("SITEE_CONFIG_HOME", tmpDir)
	defer os.Setenv("SITEE_CONFIG_HOME", originalHome)

	path, err := getConfigPath()
	if err != nil {
		t.Fatalf("getConfigPath failed: %v", err)
	}

	expectedPath := filepath.Join(tmpDir, "config.yaml")
	if path != expectedPath {
		t.Errorf("Config path mismatch: got %s, want %s", path, expectedPath)
	}
}

func TestSaveAndLoadConfigIntegration(t *testing.T) {
	tmpDir := t.TempDir()

	originalHome := os.Getenv("SITEE_CONFIG_HOME")
	os.Setenv("SITEE_CONFIG_HOME", tmpDir)
	defer os.Setenv("SITEE_CONFIG_HOME", originalHome)

	// 测试保存配置
	testConfig := &Config{
		Endpoint:       "http://127.0.0.1:9000/generate/",
		TimeoutSeconds: 60,
		Logging: LoggingConfig{
			Level:  "debug",
			Format: "json",
		},
	}

	err := SaveConfig(testConfig)
	if err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	// 验证配置文件已创建
	configPath, err := getConfigPath()
	if err != nil {
		t.Fatalf("getConfigPath failed: %v", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatal("Config file was not created")
	}

	// 测试加载配置
	loadedConfig, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if loadedConfig.Endpoint != testConfig.Endpoint {
		t.Errorf("Loaded Endpoint %q doesn't match saved %q", loadedConfig.Endpoint, testConfig.Endpoint)
	}
	if loadedConfig.TimeoutSeconds != testConfig.TimeoutSeconds {
		t.Errorf("Loaded TimeoutSeconds %d doesn't match saved %d", loadedConfig.TimeoutSeconds, testConfig.TimeoutSeconds)
	}
	if loadedConfig.Logging.Level != "debug" {
		t.Errorf("Loaded log level %q doesn't match saved %q", loadedConfig.Logging.Level, "debug")
	}
}

func TestLoadConfigWhenNotExists(t *testing.T) {
	tmpDir := t.TempDir()

	originalHome := os.Getenv("SITEE_CONFIG_HOME")
	os.Setenv("SITEE_CONFIG_HOME", tmpDir)
	defer os.Setenv("SITEE_CONFIG_HOME", originalHome)

	// 加载不存在的配置应该返回默认值
	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed when config doesn't exist: %v", err)
	}

	if config.Endpoint != DefaultEndpoint {
		t.Errorf("Expected default endpoint %q, got %q", DefaultEndpoint, config.Endpoint)
	}
	if config.TimeoutSeconds != DefaultTimeoutSeconds {
		t.Errorf("Expected default timeout %d, got %d", DefaultTimeoutSeconds, config.TimeoutSeconds)
	}
	if config.Logging.Level != "info" {
		t.Errorf("Expected default log level 'info', got %q", config.Logging.Level)
	}
}

func TestLoadPartialConfigFillsDefaults(t *testing.T) {
	tmpDir := t.TempDir()

	originalHome := os.Getenv("SITEE_CONFIG_HOME")
	os.Setenv("SITEE_CONFIG_HOME", tmpDir)
	defer os.Setenv("SITEE_CONFIG_HOME", originalHome)

	// 只写入部分字段，缺失的字段应回落到默认值
	configPath := filepath.Join(tmpDir, "config.yaml")
	os.WriteFile(configPath, []byte("logging:\n  level: warn\n"), 0644)

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if config.Endpoint != DefaultEndpoint {
		t.Errorf("Expected default endpoint, got %q", config.Endpoint)
	}
	if config.TimeoutSeconds != DefaultTimeoutSeconds {
		t.Errorf("Expected default timeout, got %d", config.TimeoutSeconds)
	}
	if config.Logging.Level != "warn" {
		t.Errorf("Expected configured level 'warn', got %q", config.Logging.Level)
	}
}

func TestLoadInvalidConfig(t *testing.T) {
	tmpDir := t.TempDir()

	originalHome := os.Getenv("SITEE_CONFIG_HOME")
	os.Setenv("SITEE_CONFIG_HOME", tmpDir)
	defer os.Setenv("SITEE_CONFIG_HOME", originalHome)

	// 创建无效的配置文件
	configPath := filepath.Join(tmpDir, "config.yaml")
	os.WriteFile(configPath, []byte("invalid: yaml: content: [}"), 0644)

	// 加载无效配置应该返回错误
	_, err := LoadConfig()
	if err == nil {
		t.Error("Expected error for invalid YAML")
	}
}
