package main

import (
	"bytes"
	"strings"
	"testing"
)

func diffInputs(t *testing.T, cfg *DiffConfig, a, b string) (string, bool) {
	t.Helper()
	da, err := decodeDocs(strings.NewReader(a))
	if err != nil {
		t.Fatal(err)
	}
	db, err := decodeDocs(strings.NewReader(b))
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	differs, err := diffDocs(cfg, buf, da[0], db[0])
	if err != nil {
		t.Fatal(err)
	}
	return buf.String(), differs
}

func TestDiffDocs(t *testing.T) {
	a := "x: 1\ny: [1, 2]\n"
	b := "x: 1\ny: [1, 3]\nz: true\n"
	tests := []struct {
		name string
		cfg  *DiffConfig
		want string
	}{
		{
			name: "changes",
			cfg:  &DiffConfig{MainConfig: &MainConfig{}, Changes: true},
			want: "replace $.y[1] 2 -> 3\ninsert $.z true\n",
		},
		{
			name: "merge",
			cfg:  &DiffConfig{MainConfig: &MainConfig{}, Merge: true},
			want: `{"y":[1,3],"z":true}` + "\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, differs := diffInputs(t, tt.cfg, a, b)
			if !differs {
				t.Errorf("expected differences")
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDiffDocsText(t *testing.T) {
	got, differs := diffInputs(t, &DiffConfig{MainConfig: &MainConfig{}}, "x: 1\n", "x: 1\nz: true\n")
	if !differs {
		t.Errorf("expected differences")
	}
	for _, line := range []string{" {\n", "-  \"x\": 1\n", "+  \"x\": 1,\n", "+  \"z\": true\n", " }\n"} {
		if !strings.Contains(got, line) {
			t.Errorf("missing %q in\n%s", line, got)
		}
	}
}

func TestDiffDocsEqual(t *testing.T) {
	for _, cfg := range []*DiffConfig{
		{MainConfig: &MainConfig{}},
		{MainConfig: &MainConfig{}, Changes: true},
		{MainConfig: &MainConfig{}, Merge: true},
	} {
		got, differs := diffInputs(t, cfg, "a: [1]\n", "a: [1]\n")
		if differs {
			t.Errorf("equal documents differ: %q", got)
		}
	}
}
