package buildinfo

import (
	"strings"
	"testing"
)

func TestResolvedPrefersStampedVersion(t *testing.T) {
	old := Version
	t.Cleanup(func() { Version = old })

	Version = "v1.2.3"
	if got := Resolved(); got != "v1.2.3" {
		t.Errorf("Resolved() = %q, want %q", got, "v1.2.3")
	}
	if got := Generator(); got != "domrep v1.2.3" {
		t.Errorf("Generator() = %q, want %q", got, "domrep v1.2.3")
	}
}

func TestTemplate(t *testing.T) {
	old := Commit
	t.Cleanup(func() { Commit = old })

	Commit = "abc123"
	tmpl := Template()
	for _, want := range []string{"{{.Name}} version ", "commit: abc123"} {
		if !strings.Contains(tmpl, want) {
			t.Errorf("Template() = %q, want it to contain %q", tmpl, want)
		}
	}
}
