package mongo

import (
	"regexp"
	"testing"
)

func TestSearchPattern_MatchesSubstringsCaseInsensitively(t *testing.T) {
	p := searchPattern("ret-0")
	if p.Options != "i" {
		t.Fatalf("expected case-insensitive option, got %q", p.Options)
	}

	re := regexp.MustCompile("(?" + p.Options + ")" + p.Pattern)
	if !re.MatchString("RET-001") {
		t.Fatal("substring match failed")
	}
}

func TestSearchPattern_EscapesMetacharacters(t *testing.T) {
	// Dots and pluses are ordinary characters in emails; they must match
	// literally, not as regex syntax.
	p := searchPattern("jean.dupont+retours@example.com")
	re := regexp.MustCompile("(?i)" + p.Pattern)

	if !re.MatchString("JEAN.DUPONT+RETOURS@EXAMPLE.COM") {
		t.Fatal("literal match failed")
	}
	if re.MatchString("jeanXdupont+retours@example.com") {
		t.Fatal("dot matched as a wildcard")
	}
}

func TestSearchPattern_UnbalancedMetacharactersStayValid(t *testing.T) {
	// An unescaped "(" would make the server reject the query outright.
	p := searchPattern("RET-(01")
	if _, err := regexp.Compile(p.Pattern); err != nil {
		t.Fatalf("pattern must stay a valid regex: %v", err)
	}
}
