package weburl

import "testing"

func TestASCIIClassifiers(t *testing.T) {
	if !isASCIIAlpha('a') || !isASCIIAlpha('Z') || isASCIIAlpha('5') || isASCIIAlpha('-') {
		t.Error("isASCIIAlpha misclassified a boundary byte")
	}
	if !isASCIIDigit('0') || !isASCIIDigit('9') || isASCIIDigit('a') {
		t.Error("isASCIIDigit misclassified a boundary byte")
	}
	if !isASCIIHexDigit('f') || !isASCIIHexDigit('F') || !isASCIIHexDigit('9') || isASCIIHexDigit('g') {
		t.Error("isASCIIHexDigit misclassified a boundary byte")
	}
	if hexVal('a') != 10 || hexVal('F') != 15 || hexVal('0') != 0 {
		t.Error("hexVal computed the wrong nibble")
	}
}

func TestIsSchemeChar(t *testing.T) {
	for _, c := range []byte{'a', 'Z', '3', '+', '-', '.'} {
		if !isSchemeChar(c) {
			t.Errorf("isSchemeChar(%q) = false, want true", c)
		}
	}
	for _, c := range []byte{':', '/', ' '} {
		if isSchemeChar(c) {
			t.Errorf("isSchemeChar(%q) = true, want false", c)
		}
	}
}

func TestForbiddenCodePoints(t *testing.T) {
	for _, c := range []byte{0x00, ' ', '#', '/', ':', '<', '>', '?', '@', '['} {
		if !isForbiddenHostCodePoint(c) {
			t.Errorf("isForbiddenHostCodePoint(%q) = false, want true", c)
		}
	}
	if !isForbiddenDomainCodePoint('%') {
		t.Error("'%' must be forbidden in a domain host even though it isn't in isForbiddenHostCodePoint")
	}
	if isForbiddenHostCodePoint('a') || isForbiddenDomainCodePoint('a') {
		t.Error("ordinary letter misclassified as forbidden")
	}
}

func TestWindowsDriveLetter(t *testing.T) {
	if !isWindowsDriveLetter("C:") || !isWindowsDriveLetter("c|") {
		t.Error("valid drive letters rejected")
	}
	if isWindowsDriveLetter("CC") || isWindowsDriveLetter("C") {
		t.Error("invalid drive letters accepted")
	}
	if !isNormalizedWindowsDriveLetter("C:") || isNormalizedWindowsDriveLetter("C|") {
		t.Error("isNormalizedWindowsDriveLetter should require ':' specifically")
	}
	if !startsWithWindowsDriveLetter("C:/foo") || !startsWithWindowsDriveLetter("C|") {
		t.Error("startsWithWindowsDriveLetter missed a valid prefix")
	}
	if startsWithWindowsDriveLetter("Cx/foo") {
		t.Error("startsWithWindowsDriveLetter accepted a non-drive-letter prefix")
	}
}
