package cli

import (
	"strings"
	"testing"
)

func TestUsage(t *testing.T) {
	usage := Usage()

	for _, want := range []string{"-h, --help", "-v, --version", "-i, --iterations N", "FILE..."} {
		if !strings.Contains(usage, want) {
			t.Errorf("Usage() missing %q", want)
		}
	}
	if usage != Usage() {
		t.Error("Usage() is not stable across calls")
	}
}

func TestSplash(t *testing.T) {
	old := Version
	Version = "1.2.3"
	defer func() { Version = old }()

	splash := Splash()
	if !strings.HasPrefix(splash, Program+" 1.2.3\n") {
		t.Errorf("Splash() = %q, want prefix %q", splash, Program+" 1.2.3\n")
	}
}
