package manifest

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/toolkit-labs/awtaccess/internal/accessor"
)

const testdataDir = "testdata"

func testPath(name string) string {
	return filepath.Join(testdataDir, name)
}

func TestDefault_MatchesBuild(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}
	if len(c.Kinds) != len(accessor.Kinds()) {
		t.Fatalf("len(Kinds) = %d, want %d", len(c.Kinds), len(accessor.Kinds()))
	}
	for i, k := range accessor.Kinds() {
		if c.Kinds[i].Name != k.String() {
			t.Errorf("entry %d = %s, want %s in catalog order", i, c.Kinds[i].Name, k)
		}
	}
	if problems := CheckParity(c); len(problems) != 0 {
		t.Errorf("embedded catalog out of sync with the build:\n%s", strings.Join(problems, "\n"))
	}
}

func TestDefault_ValidAgainstSchema(t *testing.T) {
	result, err := Validate(DefaultBytes())
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if !result.Valid {
		for _, issue := range result.Issues {
			t.Errorf("  path=%s keyword=%s message=%s", issue.Path, issue.Keyword, issue.Message)
		}
	}
}

func TestValidateFile(t *testing.T) {
	tests := []struct {
		file    string
		valid   bool
		keyword string
	}{
		{"valid-minimal.yaml", true, ""},
		{"invalid-resolution.yaml", false, "enum"},
		{"invalid-missing-owner.yaml", false, "required"},
		{"invalid-bad-name.yaml", false, "pattern"},
		{"invalid-extra-field.yaml", false, "additionalProperties"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			result, err := ValidateFile(testPath(tt.file))
			if err != nil {
				t.Fatalf("ValidateFile(%s) error: %v", tt.file, err)
			}
			if result.Valid != tt.valid {
				t.Fatalf("Valid = %v, want %v (issues: %v)", result.Valid, tt.valid, result.Issues)
			}
			if tt.valid {
				return
			}
			found := false
			for _, issue := range result.Issues {
				if issue.Keyword == tt.keyword {
					found = true
				}
				if issue.Message == "" {
					t.Errorf("issue at %q has no message", issue.Path)
				}
			}
			if !found {
				t.Errorf("no %q issue in %v", tt.keyword, result.Issues)
			}
		})
	}
}

func TestValidateFile_NotFound(t *testing.T) {
	if _, err := ValidateFile(testPath("nonexistent.yaml")); err == nil {
		t.Fatal("expected error for nonexistent file, got nil")
	}
}

func TestParse_Versions(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			name: "ok with v prefix",
			doc:  "schema_version: v1.2.0\nversion: v2.0.0\nkinds: []\n",
		},
		{
			name:    "unsupported schema",
			doc:     "schema_version: 2.0.0\nversion: 1.0.0\nkinds: []\n",
			wantErr: "not supported",
		},
		{
			name:    "since after version",
			doc:     "schema_version: 1.0.0\nversion: 1.0.0\nkinds:\n  - name: CursorAccessor\n    since: 1.1.0\n",
			wantErr: "newer than catalog version",
		},
		{
			name:    "bad version",
			doc:     "schema_version: 1.0.0\nversion: latest\nkinds: []\n",
			wantErr: "parsing version",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Parse error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Parse error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestCatalog_Since(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatal(err)
	}

	all, err := c.Since("1.0.0")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != len(c.Kinds) {
		t.Errorf("Since(1.0.0) = %d entries, want all %d", len(all), len(c.Kinds))
	}

	recent, err := c.Since("v1.2.0")
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range recent {
		if e.Since != "1.2.0" {
			t.Errorf("Since(1.2.0) returned %s from %s", e.Name, e.Since)
		}
	}
	if len(recent) == 0 {
		t.Error("Since(1.2.0) returned nothing")
	}

	if _, err := c.Since("soon"); err == nil {
		t.Error("Since accepted an invalid version")
	}
}

func TestCatalog_Lookup(t *testing.T) {
	c, err := ParseFile(testPath("valid-minimal.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"CursorAccessor", "cursor", " CURSOR "} {
		if e, ok := c.Lookup(name); !ok || e.Owner != "toolkit.Cursor" {
			t.Errorf("Lookup(%q) = %v, %v", name, e, ok)
		}
	}
	if _, ok := c.Lookup("Window"); ok {
		t.Error("Lookup(Window) found an entry")
	}
}

func TestCheckParity_ReportsMismatches(t *testing.T) {
	c, err := ParseFile(testPath("valid-minimal.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	c.Kinds = append(c.Kinds, KindEntry{
		Name:       "WidgetAccessor",
		Owner:      "toolkit.Widget",
		Resolution: "static",
		Since:      "1.0.0",
		Operations: []string{"Frob"},
	})
	c.Kinds[0].Resolution = "by-name"
	c.Kinds[0].Operations = append(c.Kinds[0].Operations[:4], "Shape")

	problems := strings.Join(CheckParity(c), "\n")
	for _, want := range []string{
		"WindowAccessor: missing from manifest",
		"WidgetAccessor: not a kind of this build",
		`CursorAccessor: resolution "by-name", build has "static"`,
		"CursorAccessor: operation Shape is not in the interface",
		"CursorAccessor: operation Type missing from manifest",
	} {
		if !strings.Contains(problems, want) {
			t.Errorf("missing problem %q in:\n%s", want, problems)
		}
	}
	if strings.Contains(problems, "CursorAccessor: missing") {
		t.Error("listed kind reported missing")
	}
}

func TestOperations(t *testing.T) {
	ops := Operations(accessor.KindCursor)
	want := []string{"PData", "ScaledPData", "SetPData", "SetScaledPData", "Type"}
	if strings.Join(ops, ",") != strings.Join(want, ",") {
		t.Errorf("Operations(Cursor) = %v, want %v", ops, want)
	}
	if Operations(accessor.Kind(99)) != nil {
		t.Error("Operations of an invalid kind is not nil")
	}
}
