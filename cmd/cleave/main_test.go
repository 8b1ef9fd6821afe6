package main

import "testing"

func TestParseArgs_BothForms(t *testing.T) {
	pa, err := parseArgs([]string{"-split", "-filename", "a.bin", "-size=1000", "--suffix", "_p"})
	if err != nil {
		t.Fatalf("不期望错误：%v", err)
	}
	if !pa.Split || pa.Unsplit {
		t.Fatalf("模式解析错误：split=%v unsplit=%v", pa.Split, pa.Unsplit)
	}
	if pa.Filename != "a.bin" {
		t.Fatalf("期望 filename=a.bin，实际 %q", pa.Filename)
	}
	if !pa.SizeSet || pa.Size != 1000 {
		t.Fatalf("期望 size=1000，实际 set=%v size=%d", pa.SizeSet, pa.Size)
	}
	if !pa.SuffixSet || pa.Suffix != "_p" {
		t.Fatalf("期望 suffix=_p，实际 %q", pa.Suffix)
	}
}

func TestParseArgs_ExtensionBare(t *testing.T) {
	// 裸 -extension：请求默认扩展名，且不吞掉后面的旗标。
	pa, err := parseArgs([]string{"-split", "-extension", "-filename", "a"})
	if err != nil {
		t.Fatalf("不期望错误：%v", err)
	}
	if !pa.ExtensionSet || pa.Extension != "" {
		t.Fatalf("期望裸旗标：set=%v val=%q", pa.ExtensionSet, pa.Extension)
	}
	if pa.Filename != "a" {
		t.Fatalf("裸 -extension 吞掉了后续旗标：filename=%q", pa.Filename)
	}
}

func TestParseArgs_ExtensionWithValue(t *testing.T) {
	pa, err := parseArgs([]string{"-extension", "bin"})
	if err != nil {
		t.Fatalf("不期望错误：%v", err)
	}
	if pa.Extension != "bin" {
		t.Fatalf("期望 extension=bin，实际 %q", pa.Extension)
	}

	pa, err = parseArgs([]string{"-extension=.tar.gz"})
	if err != nil {
		t.Fatalf("不期望错误：%v", err)
	}
	if pa.Extension != ".tar.gz" {
		t.Fatalf("期望 extension=.tar.gz，实际 %q", pa.Extension)
	}
}

func TestParseArgs_Errors(t *testing.T) {
	cases := [][]string{
		{"-size", "abc"},    // 非整数
		{"-bogus"},          // 未知旗标
		{"stray"},           // 多余的位置参数
		{"-filename"},       // 缺值
		{"-split=yes"},      // 布尔旗标带值
		{"-suffix="},        // 空 suffix
	}
	for _, c := range cases {
		if _, err := parseArgs(c); err == nil {
			t.Fatalf("%v 应报参数错误", c)
		}
	}
}

func TestRun_ModeValidation(t *testing.T) {
	// 两个模式都给、都不给，都是用法错误（退出码 1）。
	if code := run([]string{"-split", "-unsplit"}); code != 1 {
		t.Fatalf("同时给两个模式期望退出码 1，实际 %d", code)
	}
	if code := run([]string{}); code != 1 {
		t.Fatalf("不给模式期望退出码 1，实际 %d", code)
	}
	if code := run([]string{"-h"}); code != 0 {
		t.Fatalf("-h 期望退出码 0，实际 %d", code)
	}
}
