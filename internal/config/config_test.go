package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ifguard/ifguard/internal/fault"
)

// writeConfig writes content to a fresh temp file and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
		wantErr bool
	}{
		{
			name: "configured list",
			content: `raw-interface:
  denied-interfaces:
    - eth0
    - wlan0
`,
			want: []string{"eth0", "wlan0", "lo"},
		},
		{
			name: "loopback already listed",
			content: `raw-interface:
  denied-interfaces:
    - lo
    - eth0
`,
			want: []string{"lo", "eth0"},
		},
		{
			name: "duplicate entries collapse",
			content: `raw-interface:
  denied-interfaces:
    - eth0
    - eth0
`,
			want: []string{"eth0", "lo"},
		},
		{
			name: "empty list still denies loopback",
			content: `raw-interface:
  denied-interfaces: []
`,
			want: []string{"lo"},
		},
		{
			name:    "key absent still denies loopback",
			content: "raw-interface: {}\n",
			want:    []string{"lo"},
		},
		{
			name:    "empty file still denies loopback",
			content: "",
			want:    []string{"lo"},
		},
		{
			name: "scalar instead of list",
			content: `raw-interface:
  denied-interfaces: eth0
`,
			wantErr: true,
		},
		{
			name: "mapping instead of list",
			content: `raw-interface:
  denied-interfaces:
    eth0: true
`,
			wantErr: true,
		},
		{
			name: "null value instead of list",
			content: `raw-interface:
  denied-interfaces:
`,
			wantErr: true,
		},
		{
			name: "list of mappings",
			content: `raw-interface:
  denied-interfaces:
    - eth0: true
`,
			wantErr: true,
		},
		{
			name:    "malformed yaml",
			content: "raw-interface: [unclosed\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(writeConfig(t, tt.content))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Load() expected error, got %v", got.Names())
				}
				if kind := fault.KindOf(err); kind != fault.Config {
					t.Errorf("Load() error kind = %v, want Config", kind)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() unexpected error: %v", err)
			}
			names := got.Names()
			if len(names) != len(tt.want) {
				t.Fatalf("Names() = %v, want %v", names, tt.want)
			}
			for i := range names {
				if names[i] != tt.want[i] {
					t.Errorf("Names()[%d] = %q, want %q", i, names[i], tt.want[i])
				}
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err == nil {
		t.Fatal("Load() expected error for missing file")
	}
	if kind := fault.KindOf(err); kind != fault.Config {
		t.Errorf("Load() error kind = %v, want Config", kind)
	}
}

func TestLoadUnreadableFile(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}
	path := writeConfig(t, "raw-interface: {}\n")
	if err := os.Chmod(path, 0o000); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() expected error for unreadable file")
	}
	if kind := fault.KindOf(err); kind != fault.Config {
		t.Errorf("Load() error kind = %v, want Config", kind)
	}
}

func TestDenylistContains(t *testing.T) {
	d := NewDenylist("eth0", "wlan0")

	for _, name := range []string{"eth0", "wlan0", "lo"} {
		if !d.Contains(name) {
			t.Errorf("Contains(%q) = false, want true", name)
		}
	}
	for _, name := range []string{"eth1", "", "LO"} {
		if d.Contains(name) {
			t.Errorf("Contains(%q) = true, want false", name)
		}
	}
}
