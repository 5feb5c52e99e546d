package version

import "testing"

func saveAndRestore() func() {
	origVersion, origCommit := Version, Commit
	return func() {
		Version = origVersion
		Commit = origCommit
	}
}

func TestGet_LinkTimeValues(t *testing.T) {
	defer saveAndRestore()()
	Version = "1.0.0"
	Commit = "abc1234def"

	info := Get()
	if info.Version != "1.0.0" {
		t.Errorf("got %q, want %q", info.Version, "1.0.0")
	}
	if info.Commit != "abc1234" {
		t.Errorf("got %q, want %q", info.Commit, "abc1234")
	}
}

func TestInfo_String(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{"dev", Info{Version: "dev"}, "dev"},
		{"commit", Info{Version: "1.0.0", Commit: "abc1234"}, "1.0.0-abc1234"},
		{"dirty", Info{Version: "1.0.0", Commit: "abc1234", Dirty: true}, "1.0.0-abc1234-dirty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInfo_IsRelease(t *testing.T) {
	tests := []struct {
		info Info
		want bool
	}{
		{Info{Version: "dev"}, false},
		{Info{Version: "1.0.0"}, true},
		{Info{Version: "1.0.0", Dirty: true}, false},
		{Info{Version: "1.0.0-dirty"}, false},
	}
	for _, tt := range tests {
		if got := tt.info.IsRelease(); got != tt.want {
			t.Errorf("%+v: got %v, want %v", tt.info, got, tt.want)
		}
	}
}

func TestInfo_Fields(t *testing.T) {
	f := Info{Version: "1.0.0", GoVersion: "go1.26.0"}.Fields()
	if f["version"] != "1.0.0" || f["go_version"] != "go1.26.0" {
		t.Errorf("got %v", f)
	}
}
