package domain

// Part 描述拆分产生的一个部件文件。
//
// 不变量（实现必须遵守）：
// - Index 从 0 开始、严格递增，与写盘顺序一致
// - 各部件的字节区间两两不相交，按 Index 顺序拼接恰好还原源文件
// - 写盘后不再修改；部件之间没有共享的内存状态
type Part struct {
	Index int    `json:"index"`
	Path  string `json:"path"`
	Size  int64  `json:"size"`
}

// SplitResult 是一次拆分的结果。操作中途失败时，Parts 仍包含已经落盘的
// 部件（不做回滚），便于调用方如实报告磁盘上留下了什么。
type SplitResult struct {
	Source     string `json:"source"`
	TotalBytes int64  `json:"total_bytes"`
	OutputDir  string `json:"output_dir"`
	Parts      []Part `json:"parts"`
}

// JoinResult 是一次合并的结果。Inputs 按实际拼接顺序排列（字典序）。
type JoinResult struct {
	Folder     string `json:"folder"`
	Output     string `json:"output"`
	TotalBytes int64  `json:"total_bytes"`
	Inputs     []Part `json:"inputs"`
}
