package weburl

import "testing"

func buildPath(t *testing.T, fileScheme bool, segs ...string) string {
	t.Helper()
	stack := &pathStack{}
	for _, s := range segs {
		resolvePathComponent(stack, s, fileScheme, true)
	}
	return stack.serialize()
}

func TestResolvePathComponentDotSegments(t *testing.T) {
	tests := []struct {
		name string
		segs []string
		want string
	}{
		{"simple", []string{"a", "b"}, "/a/b"},
		{"single dot dropped", []string{"a", ".", "b"}, "/a/b"},
		{"double dot pops", []string{"a", "b", ".."}, "/a"},
		{"double dot at root is a no-op", []string{"..", "a"}, "/a"},
		{"percent-encoded dot segments", []string{"a", "%2e", "%2e%2e", "b"}, "/b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := buildPath(t, false, tt.segs...); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolvePathComponentWindowsDriveLetter(t *testing.T) {
	stack := &pathStack{}
	resolvePathComponent(stack, "C|", true, true)
	resolvePathComponent(stack, "win", true, true)
	if got, want := stack.serialize(), "/C:/win"; got != want {
		t.Errorf("drive letter normalization: got %q, want %q", got, want)
	}
}

func TestPathStackShortenKeepsLoneDriveLetter(t *testing.T) {
	stack := &pathStack{}
	stack.push("C:")
	stack.shorten(true)
	if got := stack.serialize(); got != "/C:" {
		t.Errorf("shorten() must not pop a lone normalized drive letter under file scheme, got %q", got)
	}
}

func TestPathStackShortenPopsUnderOtherSchemes(t *testing.T) {
	stack := &pathStack{}
	stack.push("a")
	stack.push("b")
	stack.shorten(false)
	if got := stack.serialize(); got != "/a" {
		t.Errorf("shorten() = %q, want /a", got)
	}
}

func TestIsSingleAndDoubleDotSegment(t *testing.T) {
	for _, s := range []string{".", "%2e", "%2E"} {
		if !isSingleDotSegment(s) {
			t.Errorf("isSingleDotSegment(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"..", "%2e.", ".%2e", "%2e%2e"} {
		if !isDoubleDotSegment(s) {
			t.Errorf("isDoubleDotSegment(%q) = false, want true", s)
		}
	}
	if isSingleDotSegment("..") || isDoubleDotSegment(".") {
		t.Error("single/double dot segment predicates overlapped")
	}
}

func TestResolveOpaquePathComponentEncoding(t *testing.T) {
	stack := &pathStack{}
	resolveOpaquePathComponent(stack, "a b", true)
	if got, want := stack.serialize(), "/a%20b"; got != want {
		t.Errorf("resolveOpaquePathComponent did not percent-encode, got %q want %q", got, want)
	}
}
