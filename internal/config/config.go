package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/John-Robertt/cleave/internal/domain"
	"github.com/John-Robertt/cleave/internal/naming"
)

// ConfigName 是工作目录下的可选配置文件名。文件不存在不是错误：
// 本工具必须在零配置下可用。
const ConfigName = "cleave.json"

// MinPracticalSize 是分块大小的实用下限（字节）。低于它的拆分会产生
// 大量碎片文件，按约定直接拒绝。
const MinPracticalSize = 1000

// CLIArgs 只包含命令行暴露的三个可共享项（suffix/extension/size），
// 并保留“是否显式指定”的信息。这能保证覆盖优先级可实现：
// 例如 CLI 的裸 -extension 必须能覆盖配置中的 extension。
type CLIArgs struct {
	Suffix    string
	SuffixSet bool

	Extension    string
	ExtensionSet bool

	Size    int64
	SizeSet bool
}

// FileConfig 对应 cleave.json 的解析结构。指针字段区分“未出现”与
// “出现但为零值”（extension 为空串表示请求默认扩展名）。
type FileConfig struct {
	Suffix    string  `json:"suffix"`
	Extension *string `json:"extension"`
	Size      *int64  `json:"size"`
}

// Effective 是合并并规范化后的最终配置（实现层直接消费，
// 不再做二次默认/优先级判断）。Extension 已经解析完分隔符规则：
// 空串表示部件没有扩展名。
type Effective struct {
	Suffix    string
	Extension string

	Size    int64
	SizeSet bool
}

// LoadEffective 读取 <cwd>/cleave.json（可选），再与 CLI 参数合并。
//
// 覆盖优先级（固定，逐字段）：
// - suffix：CLI > config > 默认 "_part"
// - extension：CLI > config > 不请求（部件无扩展名）
// - size：CLI > config > 未指定（拆分模式下由前端报 usage 错误）
func LoadEffective(cwd string, cli CLIArgs) (Effective, error) {
	cfgPath := filepath.Join(cwd, ConfigName)
	fc, exists, err := readFileConfig(cfgPath)
	if err != nil {
		return Effective{}, &domain.Error{Code: domain.ErrCodeConfigInvalid, Path: cfgPath, Err: err}
	}
	_ = exists // 不存在按全默认处理

	eff := Effective{Suffix: naming.DefaultSuffix}

	if cli.SuffixSet {
		eff.Suffix = cli.Suffix
	} else if strings.TrimSpace(fc.Suffix) != "" {
		eff.Suffix = fc.Suffix
	}

	switch {
	case cli.ExtensionSet:
		eff.Extension = naming.ResolveExtension(cli.Extension, true)
	case fc.Extension != nil:
		eff.Extension = naming.ResolveExtension(*fc.Extension, true)
	}

	if cli.SizeSet {
		eff.Size = cli.Size
		eff.SizeSet = true
	} else if fc.Size != nil {
		eff.Size = *fc.Size
		eff.SizeSet = true
	}

	return eff, nil
}

// ValidateSize 按前端契约检查分块大小：非正数与小于实用下限的值
// 都在进入拆分逻辑之前拒绝。
func ValidateSize(n int64) error {
	if n < 1 {
		return &domain.Error{
			Code: domain.ErrCodeInvalidSize,
			Err:  fmt.Errorf("分块大小不能小于 1 字节，实际是 %d", n),
		}
	}
	if n < MinPracticalSize {
		return &domain.Error{
			Code: domain.ErrCodeInvalidSize,
			Err:  fmt.Errorf("分块小于 %d 字节不实用，文件不会被拆分（实际是 %d）", MinPracticalSize, n),
		}
	}
	return nil
}

// readFileConfig 读取并解析 JSON 配置文件。
// 返回值 exists 表示该文件是否存在（不存在不算错误）。
func readFileConfig(path string) (fc FileConfig, exists bool, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, false, nil
		}
		return FileConfig{}, false, err
	}
	if err := json.Unmarshal(b, &fc); err != nil {
		return FileConfig{}, true, err
	}
	return fc, true, nil
}
