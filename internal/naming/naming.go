// Package naming 集中部件文件名的构造规则：拆分用它生成文件名，
// 合并用同一套规则推导默认值，两边永远不会各写一份。
package naming

import (
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultSuffix 是部件文件名中数字序号前的默认标记。
// 合并时同一标记用作子串过滤器。
const DefaultSuffix = "_part"

// DefaultExtension 是 -extension 出现但未给值时的默认扩展名。
const DefaultExtension = ".bin"

// BaseName 返回 path 的文件名去掉扩展名后的部分（"a/b.tar" → "b"）。
func BaseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// ResolveExtension 把用户输入规范化为最终追加到文件名上的扩展名。
//
// 规则（固定）：
// - 未请求扩展名：返回空串，部件没有扩展名
// - 请求但未给值：默认 ".bin"
// - 值里已含分隔符："tar.gz"、".bin" 原样使用
// - 值里不含分隔符：前面补一个 "."
func ResolveExtension(ext string, requested bool) string {
	if !requested {
		return ""
	}
	if ext == "" {
		return DefaultExtension
	}
	if strings.Contains(ext, ".") {
		return ext
	}
	return "." + ext
}

// PartFile 生成第 index 个部件的文件名：{base}{suffix}{index}{ext}。
// 序号不补零：超过 10 个部件时字典序与数字序不一致，需要补零的
// 调用方自行把补零编进 suffix。
func PartFile(base, suffix string, index int, ext string) string {
	return base + suffix + strconv.Itoa(index) + ext
}
