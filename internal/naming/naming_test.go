package naming

import "testing"

func TestBaseName(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"a/b/video.mp4", "video"},
		{"archive.tar", "archive"},
		{"noext", "noext"},
		{"a.b.c", "a.b"},
	}
	for _, c := range cases {
		if got := BaseName(c.in); got != c.want {
			t.Fatalf("BaseName(%q)：期望 %q，实际 %q", c.in, c.want, got)
		}
	}
}

func TestResolveExtension(t *testing.T) {
	// 未请求：没有扩展名。
	if got := ResolveExtension("", false); got != "" {
		t.Fatalf("未请求扩展名时期望空串，实际 %q", got)
	}
	// 请求但未给值：默认 .bin。
	if got := ResolveExtension("", true); got != ".bin" {
		t.Fatalf("裸旗标期望 .bin，实际 %q", got)
	}
	// 已含分隔符：原样。
	if got := ResolveExtension(".bin", true); got != ".bin" {
		t.Fatalf("期望 .bin，实际 %q", got)
	}
	if got := ResolveExtension("tar.gz", true); got != "tar.gz" {
		t.Fatalf("含点的值应原样使用，实际 %q", got)
	}
	// 不含分隔符：补一个点。
	if got := ResolveExtension("bin", true); got != ".bin" {
		t.Fatalf("期望补点得到 .bin，实际 %q", got)
	}
}

func TestPartFile(t *testing.T) {
	if got := PartFile("name", "_part", 2, ".bin"); got != "name_part2.bin" {
		t.Fatalf("期望 name_part2.bin，实际 %q", got)
	}
	// 无扩展名时不应出现孤立的点。
	if got := PartFile("name", "_part", 0, ""); got != "name_part0" {
		t.Fatalf("期望 name_part0，实际 %q", got)
	}
	// 序号不补零。
	if got := PartFile("a", "_part", 10, ""); got != "a_part10" {
		t.Fatalf("期望 a_part10，实际 %q", got)
	}
}
