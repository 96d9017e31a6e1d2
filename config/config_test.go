package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBuildDefaults(t *testing.T) {
	cfg, err := Empty().Build()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ResourceDir != defaultResourceDir {
		t.Fatalf("ResourceDir = %q, want %q", cfg.ResourceDir, defaultResourceDir)
	}
	if got, want := cfg.CharacterDefinitionFile, filepath.Join(defaultResourceDir, defaultCharDefFile); got != want {
		t.Fatalf("CharacterDefinitionFile = %q, want %q", got, want)
	}
	if cfg.SystemDict != "" {
		t.Fatalf("SystemDict = %q, want empty", cfg.SystemDict)
	}
	if len(cfg.UserDicts) != 0 {
		t.Fatalf("UserDicts = %v, want empty", cfg.UserDicts)
	}
}

func TestBuildJoinsRelativePaths(t *testing.T) {
	cfg, err := Empty().WithResourcePath("res").WithSystemDict("system.dic").WithUserDict("user.dic").Build()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := cfg.SystemDict, filepath.Join("res", "system.dic"); got != want {
		t.Fatalf("SystemDict = %q, want %q", got, want)
	}
	if got, want := cfg.UserDicts[0], filepath.Join("res", "user.dic"); got != want {
		t.Fatalf("UserDicts[0] = %q, want %q", got, want)
	}
}

func TestBuildLeavesAbsolutePathsAlone(t *testing.T) {
	abs := filepath.Join(string(filepath.Separator), "abs", "system.dic")
	cfg, err := Empty().WithResourcePath("res").WithSystemDict(abs).Build()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.SystemDict != abs {
		t.Fatalf("SystemDict = %q, want unchanged %q", cfg.SystemDict, abs)
	}
}

func TestFromBytesRoundTrip(t *testing.T) {
	b, err := FromBytes([]byte(`{"systemDict":"system.dic","resourcePath":"res"}`))
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := cfg.SystemDict, filepath.Join("res", "system.dic"); got != want {
		t.Fatalf("SystemDict = %q, want %q", got, want)
	}
}

func TestLoadPrecedenceOverridesConfigFile(t *testing.T) {
	// explicit dictPath/resourceDir arguments must win over the values
	// the config file sets for the same keys.
	configFile := filepath.Join(t.TempDir(), "sudachi.json")
	if err := os.WriteFile(configFile, []byte(`{"systemDict":"file.dic","resourcePath":"file-res"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(configFile, "override-res", "override.dic")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ResourceDir != "override-res" {
		t.Fatalf("ResourceDir = %q, want override-res", cfg.ResourceDir)
	}
	if got, want := cfg.SystemDict, filepath.Join("override-res", "override.dic"); got != want {
		t.Fatalf("SystemDict = %q, want %q", got, want)
	}
}

func TestResolvePathVariables(t *testing.T) {
	cfg := &Config{ResourceDir: "/some/res"}
	got, err := cfg.ResolvePath("$cfg/char.def")
	if err != nil {
		t.Fatal(err)
	}
	if want := "/some/res/char.def"; got != want {
		t.Fatalf("ResolvePath($cfg) = %q, want %q", got, want)
	}

	got, err = cfg.ResolvePath("plain/path")
	if err != nil {
		t.Fatal(err)
	}
	if want := "plain/path"; got != want {
		t.Fatalf("ResolvePath(plain) = %q, want %q", got, want)
	}
}

func TestCloneIsIndependentCopy(t *testing.T) {
	cfg, err := Empty().WithResourcePath("res").Build()
	if err != nil {
		t.Fatal(err)
	}
	clone := cfg.Clone()
	clone.UserDicts = append(clone.UserDicts, "extra.dic")
	if len(cfg.UserDicts) != 0 {
		t.Fatal("mutating the clone must not affect the original")
	}
}

func TestMinimalAtConfiguresSimpleOOVFallback(t *testing.T) {
	cfg, err := MinimalAt("res")
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.OOVProviderPlugins) != 1 {
		t.Fatalf("OOVProviderPlugins = %d entries, want 1", len(cfg.OOVProviderPlugins))
	}
	if got, want := cfg.CharacterDefinitionFile, filepath.Join("res", defaultCharDefFile); got != want {
		t.Fatalf("CharacterDefinitionFile = %q, want %q", got, want)
	}
}
