// Package split 把一个文件拆成按序号命名、受字节上限约束的部件文件。
package split

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/John-Robertt/cleave/internal/domain"
	"github.com/John-Robertt/cleave/internal/naming"
)

// OutputDirName 是部件数超过阈值时使用的子目录名。
const OutputDirName = "output"

// OutputDirThreshold：部件数超过它才启用子目录，避免少量部件时
// 多出一层没必要的目录。
const OutputDirThreshold = 10

// Options 是一次拆分的全部输入。Extension 必须已经过
// naming.ResolveExtension（空串表示部件无扩展名）。
type Options struct {
	// Filename 是源文件路径（相对路径相对 Dir 解释）。
	Filename string
	// Limit 是单个部件的字节上限，必须为正。
	Limit int64
	// Suffix 插在基础名与序号之间，同时是合并时的过滤标记。
	Suffix string
	// Extension 追加在每个部件文件名末尾（含分隔符），可为空。
	Extension string
	// Dir 是调用时的工作目录：部件（或 output 子目录）落在这里。
	Dir string
}

// Split 把源文件整体读入内存，按 Limit 切成 ceil(T/Limit) 个部件并
// 依序写盘。中途失败即中止，已写出的部件留在磁盘上（不回滚），
// 返回值里的 Parts 如实记录它们。
//
// 保证：部件序号从 0 开始严格递增；每个字节恰好出现在一个部件中；
// 除最后一个部件外大小都等于 Limit，最后一个在 [1, Limit] 内。
// 空文件拆出 0 个部件，算成功。
func Split(opts Options) (domain.SplitResult, error) {
	res := domain.SplitResult{Parts: []domain.Part{}}
	if opts.Limit < 1 {
		return res, &domain.Error{
			Code: domain.ErrCodeInvalidSize,
			Err:  fmt.Errorf("分块大小必须为正，实际是 %d", opts.Limit),
		}
	}

	src := absCleanFrom(opts.Dir, opts.Filename)
	res.Source = src

	fi, err := os.Stat(src)
	if err != nil || !fi.Mode().IsRegular() {
		return res, &domain.Error{Code: domain.ErrCodeFileNotFound, Path: src, Err: err}
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return res, &domain.Error{Code: domain.ErrCodeFileNotFound, Path: src, Err: err}
	}
	total := int64(len(data))
	res.TotalBytes = total

	numParts := (total + opts.Limit - 1) / opts.Limit

	// 超过阈值才建子目录；目录已存在时 MkdirAll 幂等。
	outDir := opts.Dir
	if numParts > OutputDirThreshold {
		outDir = filepath.Join(opts.Dir, OutputDirName)
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return res, &domain.Error{Code: domain.ErrCodeDirCreate, Path: outDir, Err: err}
		}
	}
	res.OutputDir = outDir

	base := naming.BaseName(src)
	var offset int64
	for i := 0; offset < total; i++ {
		size := opts.Limit
		if remaining := total - offset; remaining < size {
			size = remaining
		}

		path := filepath.Join(outDir, naming.PartFile(base, opts.Suffix, i, opts.Extension))
		if err := os.WriteFile(path, data[offset:offset+size], 0o644); err != nil {
			return res, &domain.Error{Code: domain.ErrCodeFileWrite, Path: path, Err: err}
		}

		res.Parts = append(res.Parts, domain.Part{Index: i, Path: path, Size: size})
		offset += size
	}

	return res, nil
}

// absCleanFrom 以 base 为基准，把 p 变为 clean + absolute。
func absCleanFrom(base, p string) string {
	p = filepath.Clean(p)
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Clean(filepath.Join(base, p))
}
