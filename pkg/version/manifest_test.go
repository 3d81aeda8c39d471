package version

import (
	"strings"
	"testing"
)

func TestLoadCurrentManifest(t *testing.T) {
	m, err := LoadCurrentManifest()
	if err != nil {
		t.Fatalf("LoadCurrentManifest: %v", err)
	}
	if m.Version != Current {
		t.Errorf("Version = %q, want %q", m.Version, Current)
	}

	for _, name := range []string{"SYS", "MAC", "UTIL"} {
		if _, ok := m.Subsystems[name]; !ok {
			t.Errorf("subsystem %s missing", name)
		}
	}
}

func TestLoadManifestCached(t *testing.T) {
	a, err := LoadManifest(Current)
	if err != nil {
		t.Fatal(err)
	}
	b, err := LoadManifest(Current)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("second load should return the cached manifest")
	}
}

func TestLoadManifestUnknown(t *testing.T) {
	if _, err := LoadManifest("0.1"); err == nil {
		t.Error("expected error for unknown release")
	}
}

func TestAvailableManifests(t *testing.T) {
	versions, err := AvailableManifests()
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, v := range versions {
		if v == Current {
			found = true
		}
	}
	if !found {
		t.Errorf("AvailableManifests() = %v, missing %s", versions, Current)
	}
}

func TestCommandName(t *testing.T) {
	m, err := LoadCurrentManifest()
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		sub, id uint8
		want    string
	}{
		{1, 0x01, "SYS.PING"},
		{2, 0x85, "MAC.DATA_IND"},
		{7, 0x06, "UTIL.CALLBACK_SUB"},
		{2, 0x7F, "MAC.0x7F"},
		{4, 0x01, "RES4.0x01"},
	}
	for _, tt := range tests {
		if got := m.CommandName(tt.sub, tt.id); got != tt.want {
			t.Errorf("CommandName(%d, 0x%02X) = %q, want %q", tt.sub, tt.id, got, tt.want)
		}
	}
}

func TestValidateBridge(t *testing.T) {
	m, err := LoadCurrentManifest()
	if err != nil {
		t.Fatal(err)
	}

	full := BridgeCapabilities{}
	for _, s := range m.Subsystems {
		for _, c := range s.Commands {
			full[s.ID] = append(full[s.ID], c.ID)
		}
	}

	t.Run("complete", func(t *testing.T) {
		r := ValidateBridge(m, full)
		if !r.Valid {
			t.Errorf("expected valid, got errors %v", r.Errors)
		}
	})

	t.Run("missing subsystem", func(t *testing.T) {
		caps := BridgeCapabilities{1: full[1], 7: full[7]}
		r := ValidateBridge(m, caps)
		if r.Valid {
			t.Fatal("expected invalid")
		}
		if len(r.Errors) != 1 || !strings.Contains(r.Errors[0], "MAC") {
			t.Errorf("Errors = %v", r.Errors)
		}
	})

	t.Run("missing command and extra command", func(t *testing.T) {
		caps := BridgeCapabilities{1: {0x00, 0x02, 0x99}, 2: full[2], 7: full[7]}
		r := ValidateBridge(m, caps)
		if r.Valid {
			t.Fatal("expected invalid")
		}
		if len(r.Errors) != 1 || !strings.Contains(r.Errors[0], "PING") {
			t.Errorf("Errors = %v", r.Errors)
		}
		if len(r.Warnings) != 1 || !strings.Contains(r.Warnings[0], "0x99") {
			t.Errorf("Warnings = %v", r.Warnings)
		}
	})
}
