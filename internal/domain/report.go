package domain

import "time"

const (
	ModeSplit   = "split"
	ModeUnsplit = "unsplit"
)

// Report 是 -report 落盘的稳定 JSON 结构：一次调用做了什么、产物在哪、
// 失败在哪。失败时已落盘的部分产物照常列出（本工具不做回滚）。
type Report struct {
	Mode string `json:"mode"`

	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`

	Source     string `json:"source,omitempty"`
	Folder     string `json:"folder,omitempty"`
	Output     string `json:"output,omitempty"`
	OutputDir  string `json:"output_dir,omitempty"`
	TotalBytes int64  `json:"total_bytes"`
	Files      []Part `json:"files"`

	ErrorCode string `json:"error_code,omitempty"`
	ErrorMsg  string `json:"error_msg,omitempty"`
}

// NewSplitReport 由拆分结果构造 Report；err 为 nil 表示成功。
func NewSplitReport(res SplitResult, started, finished time.Time, err error) Report {
	r := Report{
		Mode:       ModeSplit,
		StartedAt:  started.UTC(),
		FinishedAt: finished.UTC(),
		Source:     res.Source,
		OutputDir:  res.OutputDir,
		TotalBytes: res.TotalBytes,
		Files:      res.Parts,
	}
	r.setError(err)
	return r
}

// NewJoinReport 由合并结果构造 Report；err 为 nil 表示成功。
func NewJoinReport(res JoinResult, started, finished time.Time, err error) Report {
	r := Report{
		Mode:       ModeUnsplit,
		StartedAt:  started.UTC(),
		FinishedAt: finished.UTC(),
		Folder:     res.Folder,
		Output:     res.Output,
		TotalBytes: res.TotalBytes,
		Files:      res.Inputs,
	}
	r.setError(err)
	return r
}

func (r *Report) setError(err error) {
	if r.Files == nil {
		// 对外 JSON 固定输出数组，避免消费端处理 null。
		r.Files = []Part{}
	}
	if err == nil {
		return
	}
	r.ErrorCode = Code(err)
	r.ErrorMsg = err.Error()
}
