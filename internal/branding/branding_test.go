package branding

import "testing"

func TestEmbeddedBranding(t *testing.T) {
	if got := CLIName(); got != "awtaccess" {
		t.Errorf("CLIName() = %q", got)
	}
	if got := EnvVar("log_level"); got != "AWTACCESS_LOG_LEVEL" {
		t.Errorf("EnvVar(log_level) = %q", got)
	}
	if HomeDir() == "" || GoModule() == "" {
		t.Error("empty branding values")
	}
}
