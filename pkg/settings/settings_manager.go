// Package settings 管理可视化验证工具的持久化设置
package settings

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// DemoSettings 验证工具的设置
// 注意：这些设置是全局的，跨运行保留上次调好的参数
type DemoSettings struct {
	// OpenDuration 开门时长（秒）
	OpenDuration float64 `yaml:"openDuration"`
	// Fullscreen 启动时是否全屏
	Fullscreen bool `yaml:"fullscreen"`
}

// DefaultSettings 返回默认设置
func DefaultSettings() *DemoSettings {
	return &DemoSettings{
		OpenDuration: 2.0,
		Fullscreen:   false,
	}
}

// SettingsManager 设置管理器
// 负责验证工具设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *DemoSettings  // 当前设置
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "demo"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 返回：
//   - *SettingsManager: 设置管理器实例
//   - error: 如果加载设置失败返回错误（不影响创建）
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	// 尝试加载已保存的设置
	if err := sm.Load(); err != nil {
		// 加载失败不是致命错误，使用默认设置
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm, nil
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或文件不存在，使用默认设置
//
// 返回：
//   - error: 如果反序列化失败返回错误
func (sm *SettingsManager) Load() error {
	// 降级模式：无法持久化，使用默认设置
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	// 检查设置文件是否存在
	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	// 从 gdata 加载数据
	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	// 反序列化 YAML 数据
	var loaded DemoSettings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	sm.settings = &loaded
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
//
// 返回：
//   - error: 如果序列化或保存失败返回错误
func (sm *SettingsManager) Save() error {
	// 降级模式：无法持久化，但不报错
	if sm.gdataManager == nil {
		return nil
	}

	// 序列化设置为 YAML
	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	// 保存到 gdata
	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *DemoSettings {
	return sm.settings
}

// SetOpenDuration 更新开门时长并立即保存
func (sm *SettingsManager) SetOpenDuration(seconds float64) error {
	if seconds <= 0 {
		return fmt.Errorf("open duration must be positive, got %v", seconds)
	}
	sm.settings.OpenDuration = seconds
	return sm.Save()
}

// OverrideOpenDuration 仅在内存中覆盖开门时长，不写入存储
// 用于命令行参数等只对本次运行生效的场合
func (sm *SettingsManager) OverrideOpenDuration(seconds float64) error {
	if seconds <= 0 {
		return fmt.Errorf("open duration must be positive, got %v", seconds)
	}
	sm.settings.OpenDuration = seconds
	return nil
}

// SetFullscreen 更新全屏开关并立即保存
func (sm *SettingsManager) SetFullscreen(fullscreen bool) error {
	sm.settings.Fullscreen = fullscreen
	return sm.Save()
}
