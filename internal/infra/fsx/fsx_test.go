package fsx

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteFileAtomicReplace_WritesAndOverwrites(t *testing.T) {
	dir := t.TempDir()

	if err := WriteFileAtomicReplace(dir, "report.json", []byte(`{"v":1}`)); err != nil {
		t.Fatalf("首次写入失败：%v", err)
	}
	if err := WriteFileAtomicReplace(dir, "report.json", []byte(`{"v":2}`)); err != nil {
		t.Fatalf("覆盖写入失败：%v", err)
	}

	b, err := os.ReadFile(filepath.Join(dir, "report.json"))
	if err != nil {
		t.Fatalf("读取失败：%v", err)
	}
	if string(b) != `{"v":2}` {
		t.Fatalf("期望覆盖后的内容，实际 %q", b)
	}

	// 不应留下临时文件。
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("读目录失败：%v", err)
	}
	for _, e := range entries {
		if strings.Contains(e.Name(), ".tmp-") {
			t.Fatalf("遗留了临时文件：%s", e.Name())
		}
	}
}

func TestWriteFileAtomicReplace_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "deep")

	if err := WriteFileAtomicReplace(dir, "r.json", []byte("x")); err != nil {
		t.Fatalf("写入失败：%v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "r.json")); err != nil {
		t.Fatalf("目标文件不存在：%v", err)
	}
}
