// Package join 把目录里文件名包含后缀标记的文件按字典序拼接回一个文件。
package join

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/John-Robertt/cleave/internal/domain"
)

// DefaultOutputSuffix 拼在目录基础名后面，构成默认输出文件名。
const DefaultOutputSuffix = " - unsplit"

// Options 是一次合并的全部输入。
type Options struct {
	// Folder 是部件所在目录；空串表示 Dir 本身。
	Folder string
	// Output 是输出文件路径；空串表示 "{目录基础名} - unsplit"（落在 Dir 下）。
	Output string
	// Suffix 是过滤标记：文件名包含它（子串匹配）才参与合并。
	Suffix string
	// Dir 是调用时的工作目录，相对路径都相对它解释。
	Dir string
}

// Join 枚举目录里文件名包含 Suffix 的常规文件，按路径字典序逐个读取
// 并追加到输出文件，不插入任何分隔字节。
//
// 排序是普通字典序而非数字序："part10" 排在 "part2" 之前。部件超过
// 10 个且序号未补零时顺序会错，这是沿袭下来的行为，不在这里修正。
//
// 输出文件在检查目录之前创建（沿袭原有操作顺序）：目录不存在或
// 没有匹配文件时，磁盘上可能留下一个空的输出文件。中途读取失败
// 即中止，输出文件保持写到一半的状态（不回滚）。
func Join(opts Options) (domain.JoinResult, error) {
	res := domain.JoinResult{Inputs: []domain.Part{}}

	folder := opts.Dir
	if strings.TrimSpace(opts.Folder) != "" {
		folder = absCleanFrom(opts.Dir, opts.Folder)
	}
	res.Folder = folder

	outPath := opts.Output
	if strings.TrimSpace(outPath) == "" {
		outPath = filepath.Base(folder) + DefaultOutputSuffix
	}
	outPath = absCleanFrom(opts.Dir, outPath)
	res.Output = outPath

	out, err := os.Create(outPath)
	if err != nil {
		return res, &domain.Error{Code: domain.ErrCodeFileCreate, Path: outPath, Err: err}
	}
	defer out.Close()

	fi, err := os.Stat(folder)
	if err != nil || !fi.IsDir() {
		return res, &domain.Error{Code: domain.ErrCodeDirNotFound, Path: folder, Err: err}
	}

	entries, err := os.ReadDir(folder)
	if err != nil {
		return res, &domain.Error{Code: domain.ErrCodeDirNotFound, Path: folder, Err: err}
	}

	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		if !strings.Contains(e.Name(), opts.Suffix) {
			continue
		}
		p := filepath.Join(folder, e.Name())
		// Stat 而非 Lstat：指向常规文件的符号链接也参与合并，
		// 目录与其他非常规条目排除。
		fi, err := os.Stat(p)
		if err != nil || !fi.Mode().IsRegular() {
			continue
		}
		paths = append(paths, p)
	}

	// ReadDir 已按文件名排序；同目录下全路径字典序与之一致。
	// 仍显式排序，把顺序契约写死在这里而不是依赖枚举实现。
	sort.Strings(paths)

	if len(paths) == 0 {
		return res, &domain.Error{Code: domain.ErrCodeNoMatch, Path: folder, Err: nil}
	}

	for i, p := range paths {
		b, err := os.ReadFile(p)
		if err != nil {
			return res, &domain.Error{Code: domain.ErrCodeFileRead, Path: p, Err: err}
		}
		if err := writeAll(out, b); err != nil {
			return res, &domain.Error{Code: domain.ErrCodeFileWrite, Path: outPath, Err: err}
		}
		res.Inputs = append(res.Inputs, domain.Part{Index: i, Path: p, Size: int64(len(b))})
		res.TotalBytes += int64(len(b))
	}

	if err := out.Close(); err != nil {
		return res, &domain.Error{Code: domain.ErrCodeFileWrite, Path: outPath, Err: err}
	}
	return res, nil
}

func writeAll(f *os.File, b []byte) error {
	for len(b) > 0 {
		n, err := f.Write(b)
		if err != nil {
			return err
		}
		b = b[n:]
	}
	return nil
}

// absCleanFrom 以 base 为基准，把 p 变为 clean + absolute。
func absCleanFrom(base, p string) string {
	p = filepath.Clean(p)
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Clean(filepath.Join(base, p))
}
