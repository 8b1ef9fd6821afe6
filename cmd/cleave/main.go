package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/John-Robertt/cleave/internal/config"
	"github.com/John-Robertt/cleave/internal/domain"
	"github.com/John-Robertt/cleave/internal/infra/fsx"
	"github.com/John-Robertt/cleave/internal/join"
	"github.com/John-Robertt/cleave/internal/split"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	for _, a := range args {
		if isHelp(a) {
			printUsage()
			return 0
		}
	}

	pa, err := parseArgs(args)
	if err != nil {
		return usageError(err)
	}

	// 两种模式互斥：都给或都不给，都是用法错误。
	if pa.Split == pa.Unsplit {
		return usageError(fmt.Errorf("必须且只能指定 -split 与 -unsplit 之一"))
	}

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stdout, "读取当前目录失败：%v\n", err)
		return 1
	}

	eff, err := config.LoadEffective(cwd, config.CLIArgs{
		Suffix:       pa.Suffix,
		SuffixSet:    pa.SuffixSet,
		Extension:    pa.Extension,
		ExtensionSet: pa.ExtensionSet,
		Size:         pa.Size,
		SizeSet:      pa.SizeSet,
	})
	if err != nil {
		fmt.Fprintf(os.Stdout, "%v\n", err)
		return 1
	}

	if pa.Split {
		return runSplit(cwd, pa, eff)
	}
	return runJoin(cwd, pa, eff)
}

func runSplit(cwd string, pa cliArgs, eff config.Effective) int {
	if strings.TrimSpace(pa.Filename) == "" {
		return usageError(fmt.Errorf("拆分模式需要指定 -filename"))
	}
	if !eff.SizeSet {
		return usageError(fmt.Errorf("拆分模式需要指定 -size"))
	}
	if err := config.ValidateSize(eff.Size); err != nil {
		fmt.Fprintf(os.Stdout, "%v\n", err)
		return 1
	}

	started := time.Now()
	res, opErr := split.Split(split.Options{
		Filename:  pa.Filename,
		Limit:     eff.Size,
		Suffix:    eff.Suffix,
		Extension: eff.Extension,
		Dir:       cwd,
	})
	finished := time.Now()

	if pa.Report != "" {
		rr := domain.NewSplitReport(res, started, finished, opErr)
		if err := writeReportFile(cwd, pa.Report, rr); err != nil {
			fmt.Fprintf(os.Stdout, "写入报告 %q 失败：%v\n", pa.Report, err)
			return 1
		}
	}

	if opErr != nil {
		fmt.Fprintf(os.Stdout, "%v\n", opErr)
		return 1
	}

	fmt.Fprintf(os.Stdout, "成功拆分 %s：%d 个部件，共 %d 字节。\n",
		res.Source, len(res.Parts), res.TotalBytes)
	if res.OutputDir != cwd {
		fmt.Fprintf(os.Stdout, "部件位于 %s\n", res.OutputDir)
	}
	return 0
}

func runJoin(cwd string, pa cliArgs, eff config.Effective) int {
	// 合并模式下 -extension 一律忽略（匹配只看后缀标记）。
	started := time.Now()
	res, opErr := join.Join(join.Options{
		Folder: pa.Folder,
		Output: pa.Filename,
		Suffix: eff.Suffix,
		Dir:    cwd,
	})
	finished := time.Now()

	if pa.Report != "" {
		rr := domain.NewJoinReport(res, started, finished, opErr)
		if err := writeReportFile(cwd, pa.Report, rr); err != nil {
			fmt.Fprintf(os.Stdout, "写入报告 %q 失败：%v\n", pa.Report, err)
			return 1
		}
	}

	if opErr != nil {
		fmt.Fprintf(os.Stdout, "%v\n", opErr)
		return 1
	}

	fmt.Fprintf(os.Stdout, "成功把 %d 个文件合并到 %s（共 %d 字节）。\n",
		len(res.Inputs), res.Output, res.TotalBytes)
	return 0
}

type cliArgs struct {
	Split   bool
	Unsplit bool

	Filename string
	Folder   string
	Report   string

	Suffix    string
	SuffixSet bool

	Extension    string
	ExtensionSet bool

	Size    int64
	SizeSet bool
}

// parseArgs 手工解析参数。取值旗标同时接受 "-flag 值" 与 "-flag=值"；
// -extension 允许裸旗标（请求默认扩展名），其值以 "-" 开头时只能用
// "=" 形式书写。
func parseArgs(args []string) (cliArgs, error) {
	pa := cliArgs{}

	for i := 0; i < len(args); i++ {
		a := args[i]
		if !strings.HasPrefix(a, "-") {
			return cliArgs{}, fmt.Errorf("多余的参数 %q", a)
		}
		name, val, hasVal := cutFlag(a)

		switch name {
		case "split":
			if hasVal {
				return cliArgs{}, fmt.Errorf("-split 不接受值")
			}
			pa.Split = true
		case "unsplit":
			if hasVal {
				return cliArgs{}, fmt.Errorf("-unsplit 不接受值")
			}
			pa.Unsplit = true
		case "filename", "foldername", "suffix", "size", "report":
			if !hasVal {
				if i+1 >= len(args) {
					return cliArgs{}, fmt.Errorf("-%s 需要一个值", name)
				}
				i++
				val = args[i]
			}
			if err := pa.set(name, val); err != nil {
				return cliArgs{}, err
			}
		case "extension":
			if !hasVal && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				i++
				val = args[i]
			}
			pa.Extension = val
			pa.ExtensionSet = true
		default:
			return cliArgs{}, fmt.Errorf("未知参数 %q", a)
		}
	}

	return pa, nil
}

func (pa *cliArgs) set(name, val string) error {
	switch name {
	case "filename":
		pa.Filename = val
	case "foldername":
		pa.Folder = val
	case "suffix":
		if val == "" {
			return fmt.Errorf("-suffix 不能为空")
		}
		pa.Suffix = val
		pa.SuffixSet = true
	case "size":
		n, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return fmt.Errorf("-size 必须是整数，实际是 %q", val)
		}
		pa.Size = n
		pa.SizeSet = true
	case "report":
		pa.Report = val
	}
	return nil
}

// cutFlag 把 "-flag=值" 拆开；"--flag" 与 "-flag" 等价。
func cutFlag(a string) (name, val string, hasVal bool) {
	a = strings.TrimPrefix(a, "-")
	a = strings.TrimPrefix(a, "-")
	name, val, hasVal = strings.Cut(a, "=")
	return name, val, hasVal
}

// usageError 报告一个用法错误并附上用法说明；固定返回退出码 1。
func usageError(err error) int {
	fmt.Fprintf(os.Stdout, "%v\n\n", &domain.Error{Code: domain.ErrCodeUsage, Err: err})
	printUsage()
	return 1
}

func isHelp(s string) bool {
	return s == "-h" || s == "--help" || s == "help"
}

func writeReportFile(cwd, path string, rr domain.Report) error {
	b, err := json.MarshalIndent(rr, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')

	abs := filepath.Clean(path)
	if !filepath.IsAbs(abs) {
		abs = filepath.Clean(filepath.Join(cwd, abs))
	}
	return fsx.WriteFileAtomicReplace(filepath.Dir(abs), filepath.Base(abs), b)
}

func printUsage() {
	fmt.Fprint(os.Stdout, `用法：
  cleave -split -filename <文件> -size <字节数> [-suffix <标记>] [-extension [<扩展名>]] [-report <路径>]
  cleave -unsplit [-foldername <目录>] [-filename <输出文件>] [-suffix <标记>] [-report <路径>]

模式（必须且只能选一个）：
  -split       把 -filename 指定的文件拆成若干部件
  -unsplit     把 -foldername 目录下的部件合并回一个文件

拆分参数：
  -filename    要拆分的文件（必填）
  -size        单个部件的字节上限（必填；小于 1000 视为不实用并拒绝）
  -suffix      部件文件名中序号前的标记，默认 "_part"；如 MyFile_part1.bin
  -extension   部件的扩展名。给出裸旗标时默认 ".bin"；不给该旗标时部件没有扩展名
  -report      将本次结果的 JSON 报告写到指定路径

合并参数：
  -foldername  部件所在目录，默认当前目录
  -filename    输出文件名，默认 "{目录名} - unsplit"
  -suffix      过滤标记：文件名包含它才参与合并，默认 "_part"
  -extension   合并时一律忽略
  -report      将本次结果的 JSON 报告写到指定路径

说明：
  合并按文件名普通字典序排序（非数字序）："part10" 排在 "part2" 之前。
  部件超过 10 个时请自行在 -suffix 里补零。
  拆出超过 10 个部件时，部件写入当前目录下的 output/ 子目录。
  工作目录下若存在 cleave.json，可为 suffix/extension/size 提供默认值，
  命令行参数优先于配置文件。
`)
}
