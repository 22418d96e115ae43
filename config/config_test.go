package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Klingon-tech/klingnet-bip85/pkg/hdkey"
	"github.com/spf13/pflag"
)

func TestDefault(t *testing.T) {
	mn := Default(Mainnet)
	if mn.Network != Mainnet {
		t.Errorf("Default(mainnet).Network = %s", mn.Network)
	}
	if mn.HDNetwork() != hdkey.Mainnet {
		t.Errorf("HDNetwork() = %v, want mainnet", mn.HDNetwork())
	}
	test := Default(Testnet)
	if test.HDNetwork() != hdkey.Testnet {
		t.Errorf("HDNetwork() = %v, want testnet", test.HDNetwork())
	}
	if err := Validate(mn); err != nil {
		t.Errorf("Validate(default) error: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bip85.conf")
	content := `# comment
network = testnet
xprv.file = "/keys/master.xprv"
wordlists.dir = '/share/wordlists'
log.level = DEBUG
log.json = yes
unknown.key = ignored
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	values, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}

	cfg := DefaultMainnet()
	if err := ApplyFileConfig(cfg, values); err != nil {
		t.Fatalf("ApplyFileConfig() error: %v", err)
	}

	if cfg.Network != Testnet {
		t.Errorf("Network = %s, want testnet", cfg.Network)
	}
	if cfg.XprvFile != "/keys/master.xprv" {
		t.Errorf("XprvFile = %q", cfg.XprvFile)
	}
	if cfg.WordlistDir != "/share/wordlists" {
		t.Errorf("WordlistDir = %q", cfg.WordlistDir)
	}
	if cfg.Log.Level != "debug" || !cfg.Log.JSON {
		t.Errorf("Log = %+v", cfg.Log)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	values, err := LoadFile(filepath.Join(t.TempDir(), "nope.conf"))
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if len(values) != 0 {
		t.Errorf("values = %v, want empty", values)
	}
}

func TestLoadFile_BadLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.conf")
	if err := os.WriteFile(path, []byte("network testnet\n"), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Error("expected error for line without '='")
	}
}

func TestApplyFileConfig_RejectsInlineKey(t *testing.T) {
	cfg := DefaultMainnet()
	if err := ApplyFileConfig(cfg, map[string]string{"xprv": "xprv9s21..."}); err == nil {
		t.Error("expected error for inline xprv")
	}
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(file, nil, 0600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"default", func(*Config) {}, true},
		{"bad network", func(c *Config) { c.Network = "regtest" }, false},
		{"bad level", func(c *Config) { c.Log.Level = "trace" }, false},
		{"wordlist dir", func(c *Config) { c.WordlistDir = dir }, true},
		{"wordlist dir missing", func(c *Config) { c.WordlistDir = filepath.Join(dir, "nope") }, false},
		{"wordlist dir is file", func(c *Config) { c.WordlistDir = file }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultMainnet()
			tt.mutate(cfg)
			err := Validate(cfg)
			if (err == nil) != tt.ok {
				t.Errorf("Validate() error = %v, ok = %v", err, tt.ok)
			}
		})
	}
	if err := Validate(nil); err == nil {
		t.Error("Validate(nil) should fail")
	}
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bip85.conf"), []byte("network = testnet\nlog.level = info\nlog.json = true\n"), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f := RegisterFlags(fs)
	if err := fs.Parse([]string{"--datadir", dir, "--log-level", "error", "--log-json=false"}); err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	cfg, err := Load(f)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Network != Testnet {
		t.Errorf("Network = %s, want testnet from file", cfg.Network)
	}
	if cfg.Log.Level != "error" {
		t.Errorf("Log.Level = %s, want error from flag", cfg.Log.Level)
	}
	if cfg.Log.JSON {
		t.Error("Log.JSON should be overridden by explicit --log-json=false")
	}
}

func TestLoad_TestnetFlag(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f := RegisterFlags(fs)
	if err := fs.Parse([]string{"--datadir", t.TempDir(), "--testnet"}); err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	cfg, err := Load(f)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Network != Testnet {
		t.Errorf("Network = %s, want testnet", cfg.Network)
	}
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bip85.conf")
	if err := WriteDefaultConfig(path, Testnet); err != nil {
		t.Fatalf("WriteDefaultConfig() error: %v", err)
	}
	values, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	cfg := DefaultMainnet()
	if err := ApplyFileConfig(cfg, values); err != nil {
		t.Fatalf("ApplyFileConfig() error: %v", err)
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("Validate() error: %v", err)
	}
	if cfg.Network != Testnet {
		t.Errorf("Network = %s, want testnet", cfg.Network)
	}
}

func TestLoad_NetworkAliases(t *testing.T) {
	tests := []struct {
		args []string
		file string
		want NetworkType
		ok   bool
	}{
		{[]string{"--network", "main"}, "", Mainnet, true},
		{[]string{"--network", "test"}, "", Testnet, true},
		{[]string{"--network", "TestNet"}, "", Testnet, true},
		{nil, "network = test\n", Testnet, true},
		{[]string{"--network", "regtest"}, "", "", false},
		{nil, "network = regtest\n", "", false},
	}

	for _, tt := range tests {
		dir := t.TempDir()
		if tt.file != "" {
			if err := os.WriteFile(filepath.Join(dir, "bip85.conf"), []byte(tt.file), 0600); err != nil {
				t.Fatalf("write config: %v", err)
			}
		}
		fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
		f := RegisterFlags(fs)
		if err := fs.Parse(append([]string{"--datadir", dir}, tt.args...)); err != nil {
			t.Fatalf("Parse() error: %v", err)
		}

		cfg, err := Load(f)
		if (err == nil) != tt.ok {
			t.Errorf("Load(%v, %q) error = %v, ok = %v", tt.args, tt.file, err, tt.ok)
			continue
		}
		if tt.ok && cfg.Network != tt.want {
			t.Errorf("Load(%v, %q).Network = %s, want %s", tt.args, tt.file, cfg.Network, tt.want)
		}
	}
}

func TestLoad_ExplicitEmptyFlagClearsFileValue(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bip85.conf"), []byte("log.file = /tmp/bip85.log\nxprv.file = /tmp/master.xprv\n"), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f := RegisterFlags(fs)
	if err := fs.Parse([]string{"--datadir", dir, "--log-file", ""}); err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	cfg, err := Load(f)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Log.File != "" {
		t.Errorf("Log.File = %q, want cleared by --log-file \"\"", cfg.Log.File)
	}
	if cfg.XprvFile != "/tmp/master.xprv" {
		t.Errorf("XprvFile = %q, want value from file", cfg.XprvFile)
	}
}

func TestWordlistDirs(t *testing.T) {
	cfg := DefaultMainnet()
	cfg.DataDir = t.TempDir()
	if dirs := cfg.WordlistDirs(); len(dirs) != 0 {
		t.Errorf("WordlistDirs() = %v, want none without wordlists dir", dirs)
	}

	if err := os.MkdirAll(cfg.DefaultWordlistDir(), 0700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	dirs := cfg.WordlistDirs()
	if len(dirs) != 1 || dirs[0] != cfg.DefaultWordlistDir() {
		t.Errorf("WordlistDirs() = %v, want [%s]", dirs, cfg.DefaultWordlistDir())
	}

	cfg.WordlistDir = t.TempDir()
	dirs = cfg.WordlistDirs()
	if len(dirs) != 2 || dirs[0] != cfg.WordlistDir || dirs[1] != cfg.DefaultWordlistDir() {
		t.Errorf("WordlistDirs() = %v, want configured dir first", dirs)
	}
}
