package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.InputPath != "img/target.png" || cfg.OutputPath != "opencv9_result.jpg" {
		t.Fatalf("unexpected default paths: %q %q", cfg.InputPath, cfg.OutputPath)
	}
	if cfg.Radius != 3 || cfg.Method != MethodTelea || cfg.Mode != ModeSingle {
		t.Fatalf("unexpected defaults: radius=%v method=%s mode=%s", cfg.Radius, cfg.Method, cfg.Mode)
	}
}

func TestLoad_JSONAndYAML(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "cfg.json")
	if err := os.WriteFile(jsonPath, []byte(`{"mode":"multi","method":"NS","radius":5}`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(jsonPath)
	if err != nil {
		t.Fatalf("json load: %v", err)
	}
	if cfg.Mode != ModeMulti || cfg.Method != MethodNS || cfg.Radius != 5 {
		t.Fatalf("json values not applied: %+v", cfg)
	}

	yamlPath := filepath.Join(dir, "cfg.yaml")
	if err := os.WriteFile(yamlPath, []byte("output_path: out.png\njpeg_quality: 80\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load(yamlPath)
	if err != nil {
		t.Fatalf("yaml load: %v", err)
	}
	if cfg.OutputPath != "out.png" || cfg.JPEGQuality != 80 {
		t.Fatalf("yaml values not applied: %+v", cfg)
	}
	if cfg.InputPath != "img/target.png" {
		t.Fatalf("unset field should keep default, got %q", cfg.InputPath)
	}
}

func TestLoad_BadJSONReturnsError(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(p, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(p)
	if err == nil {
		t.Fatalf("expected decode error")
	}
	if cfg == nil || cfg.Radius != 3 {
		t.Fatalf("expected defaults alongside error, got %+v", cfg)
	}
}

func TestValidate_Clamps(t *testing.T) {
	cfg := &Config{Mode: "", Method: "", Radius: -1, JPEGQuality: 400, MaxPreviewW: 1, MaxPreviewH: 0}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Mode != ModeSingle || cfg.Method != MethodTelea {
		t.Fatalf("empty mode/method should take defaults: %s %s", cfg.Mode, cfg.Method)
	}
	if cfg.Radius != 3 || cfg.JPEGQuality != 95 {
		t.Fatalf("radius/quality not clamped: %v %d", cfg.Radius, cfg.JPEGQuality)
	}
	if cfg.MaxPreviewW != 1280 || cfg.MaxPreviewH != 800 {
		t.Fatalf("preview limits not clamped: %dx%d", cfg.MaxPreviewW, cfg.MaxPreviewH)
	}
	if cfg.InputPath == "" || cfg.OutputPath == "" {
		t.Fatalf("paths should fall back to defaults")
	}
}

func TestValidate_NormalizesAliases(t *testing.T) {
	cases := []struct {
		mode, method         string
		wantMode, wantMethod string
	}{
		{"some", "navier-stokes", ModeMulti, MethodNS},
		{" Many ", "NS", ModeMulti, MethodNS},
		{"one", "Telea", ModeSingle, MethodTelea},
	}
	for _, tc := range cases {
		cfg := DefaultConfig()
		cfg.Mode, cfg.Method = tc.mode, tc.method
		if err := cfg.Validate(); err != nil {
			t.Fatalf("%q/%q: unexpected error: %v", tc.mode, tc.method, err)
		}
		if cfg.Mode != tc.wantMode || cfg.Method != tc.wantMethod {
			t.Fatalf("%q/%q: got %s/%s want %s/%s", tc.mode, tc.method, cfg.Mode, cfg.Method, tc.wantMode, tc.wantMethod)
		}
	}
}

func TestValidate_RejectsUnknownModeAndMethod(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = "multii"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
	if cfg.Mode != "multii" {
		t.Fatalf("unknown mode must not be replaced, got %q", cfg.Mode)
	}

	cfg = DefaultConfig()
	cfg.Method = "fast-marching"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for unknown method")
	}
	if cfg.Method != "fast-marching" {
		t.Fatalf("unknown method must not be replaced, got %q", cfg.Method)
	}
}

func TestSave_RejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = "triple"
	if err := cfg.Save(filepath.Join(t.TempDir(), "bad.json")); err == nil {
		t.Fatalf("expected save to fail validation")
	}
}

func TestSave_RoundTripJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "saved.json")
	cfg := DefaultConfig()
	cfg.Mode = ModeMulti
	if err := cfg.Save(p); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Mode != ModeMulti {
		t.Fatalf("expected multi after reload, got %s", got.Mode)
	}
}

func TestApplyEnv_OverridesAndSkipsInvalid(t *testing.T) {
	env := map[string]string{
		"PIXEL_ERASER_INPUT":  "in.png",
		"PIXEL_ERASER_MODE":   "MULTI",
		"PIXEL_ERASER_RADIUS": "not-a-number",
		"PIXEL_ERASER_DEBUG":  "true",
	}
	cfg := DefaultConfig()
	cfg.ApplyEnv(func(k string) (string, bool) { v, ok := env[k]; return v, ok })
	if cfg.InputPath != "in.png" || cfg.Mode != ModeMulti || !cfg.Debug {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
	if cfg.Radius != 3 {
		t.Fatalf("invalid radius should be ignored, got %v", cfg.Radius)
	}
}

func TestApplyEnv_PreviewAndMemLog(t *testing.T) {
	env := map[string]string{
		"PIXEL_ERASER_MAX_PREVIEW_W":   "640",
		"PIXEL_ERASER_MAX_PREVIEW_H":   "480",
		"PIXEL_ERASER_MEM_LOG_SECONDS": "10",
	}
	cfg := DefaultConfig()
	cfg.ApplyEnv(func(k string) (string, bool) { v, ok := env[k]; return v, ok })
	if cfg.MaxPreviewW != 640 || cfg.MaxPreviewH != 480 || cfg.MemLogSeconds != 10 {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
}

func TestReadEnvFile(t *testing.T) {
	if vals, err := ReadEnvFile(filepath.Join(t.TempDir(), "none.env")); err != nil || len(vals) != 0 {
		t.Fatalf("missing file should yield empty map, got %v %v", vals, err)
	}
	p := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(p, []byte("PIXEL_ERASER_METHOD=ns\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	vals, err := ReadEnvFile(p)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	cfg := DefaultConfig()
	cfg.ApplyEnv(func(k string) (string, bool) { v, ok := vals[k]; return v, ok })
	if cfg.Method != MethodNS {
		t.Fatalf("expected ns from env file, got %s", cfg.Method)
	}
}
