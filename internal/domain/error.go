package domain

import (
	"errors"
	"fmt"
)

const (
	// ErrCodeUsage 表示命令行参数缺失/冲突（例如 -split 与 -unsplit 同时出现）。
	ErrCodeUsage = "usage"
	// ErrCodeFileNotFound 表示拆分的源文件不存在、不可读、或不是常规文件。
	ErrCodeFileNotFound = "file_not_found"
	// ErrCodeDirNotFound 表示合并的源目录不存在或不是目录。
	ErrCodeDirNotFound = "dir_not_found"
	// ErrCodeFileCreate 表示合并的输出文件无法创建/打开。
	ErrCodeFileCreate = "file_create_failed"
	// ErrCodeFileWrite 表示部件文件或输出文件写入失败。
	ErrCodeFileWrite = "file_write_failed"
	// ErrCodeFileRead 表示合并时某个匹配文件无法读取。
	ErrCodeFileRead = "file_read_failed"
	// ErrCodeDirCreate 表示 output 子目录创建失败。
	ErrCodeDirCreate = "dir_create_failed"
	// ErrCodeNoMatch 表示目录里没有任何文件名包含后缀标记的文件。
	ErrCodeNoMatch = "no_matching_files"
	// ErrCodeInvalidSize 表示分块大小非正数，或小于实用下限。
	ErrCodeInvalidSize = "invalid_size"
	// ErrCodeConfigInvalid 表示 cleave.json 无法读取或解析。
	ErrCodeConfigInvalid = "config_invalid"
)

// Error 是贯穿全工具的结构化错误（带 error_code 与出错路径）。
// 所有错误都是终止性的：不重试，报告后进程以非零退出。
type Error struct {
	Code string
	Path string
	Err  error
}

func (e *Error) Error() string {
	switch e.Code {
	case ErrCodeFileNotFound:
		return fmt.Sprintf("%s：文件 %q 不存在或不可读", e.Code, e.Path)
	case ErrCodeDirNotFound:
		return fmt.Sprintf("%s：目录 %q 不存在", e.Code, e.Path)
	case ErrCodeFileCreate:
		return fmt.Sprintf("%s：无法创建文件 %q：%v", e.Code, e.Path, e.Err)
	case ErrCodeFileWrite:
		return fmt.Sprintf("%s：写入文件 %q 失败：%v", e.Code, e.Path, e.Err)
	case ErrCodeFileRead:
		return fmt.Sprintf("%s：读取文件 %q 失败：%v", e.Code, e.Path, e.Err)
	case ErrCodeDirCreate:
		return fmt.Sprintf("%s：无法创建目录 %q：%v", e.Code, e.Path, e.Err)
	case ErrCodeNoMatch:
		return fmt.Sprintf("%s：目录 %q 中没有文件名包含后缀标记的文件", e.Code, e.Path)
	case ErrCodeInvalidSize:
		if e.Err != nil {
			return fmt.Sprintf("%s：%v", e.Code, e.Err)
		}
		return e.Code
	case ErrCodeConfigInvalid:
		if e.Err != nil {
			return fmt.Sprintf("%s：配置文件 %q 无效：%v", e.Code, e.Path, e.Err)
		}
		return fmt.Sprintf("%s：配置文件 %q 无效", e.Code, e.Path)
	default:
		if e.Err != nil {
			return fmt.Sprintf("%s：%v", e.Code, e.Err)
		}
		return e.Code
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Code 从 error 中提取 error_code；若不是 *Error 则返回空串。
func Code(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
