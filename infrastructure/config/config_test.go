package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/floripacoin/floripad/domain/chaincfg"
	"github.com/floripacoin/floripad/infrastructure/logger"
)

func TestLoadConfigDefaults(t *testing.T) {
	tmpDir, err := ioutil.TempDir("", "floripad")
	if err != nil {
		t.Fatalf("Failed creating a temporary directory: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	cfg, remainingArgs, err := LoadConfig([]string{
		"--configfile", filepath.Join(tmpDir, "missing.conf"),
		"--datadir", tmpDir,
		"--logdir", tmpDir,
	})
	if err == nil {
		t.Fatalf("LoadConfig: expected an error for a missing non-default config file")
	}

	cfg, remainingArgs, err = LoadConfig([]string{
		"--datadir", tmpDir,
		"--logdir", tmpDir,
		"extra",
	})
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.NetParams() != &chaincfg.MainnetParams {
		t.Errorf("LoadConfig: expected mainnet by default, got %s", cfg.NetParams().Name)
	}
	if cfg.DataDir != filepath.Join(tmpDir, "mainnet") {
		t.Errorf("LoadConfig: data directory %s is not namespaced by network", cfg.DataDir)
	}
	if cfg.LogDir != filepath.Join(tmpDir, "mainnet") {
		t.Errorf("LoadConfig: log directory %s is not namespaced by network", cfg.LogDir)
	}
	if len(remainingArgs) != 1 || remainingArgs[0] != "extra" {
		t.Errorf("LoadConfig: unexpected remaining arguments %v", remainingArgs)
	}

	checkpointsConfig := cfg.CheckpointsConfig()
	if checkpointsConfig.Params != &chaincfg.MainnetParams || checkpointsConfig.DisableCheckpoints {
		t.Errorf("CheckpointsConfig: unexpected config %+v", checkpointsConfig)
	}
}

func TestLoadConfigTestnet(t *testing.T) {
	tmpDir, err := ioutil.TempDir("", "floripad")
	if err != nil {
		t.Fatalf("Failed creating a temporary directory: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	cfg, _, err := LoadConfig([]string{"--testnet", "--nocheckpoints", "--datadir", tmpDir})
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.NetParams() != &chaincfg.TestnetParams {
		t.Errorf("LoadConfig: expected testnet, got %s", cfg.NetParams().Name)
	}
	if cfg.DataDir != filepath.Join(tmpDir, "testnet") {
		t.Errorf("LoadConfig: unexpected data directory %s", cfg.DataDir)
	}
	if !cfg.CheckpointsConfig().DisableCheckpoints {
		t.Errorf("CheckpointsConfig: expected checkpoints to be disabled")
	}
}

func TestLoadConfigFile(t *testing.T) {
	tmpDir, err := ioutil.TempDir("", "floripad")
	if err != nil {
		t.Fatalf("Failed creating a temporary directory: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	configFile := filepath.Join(tmpDir, "floripad.conf")
	content := strings.Join([]string{
		"[Application Options]",
		"testnet=1",
		"nocheckpoints=1",
		"datadir=" + filepath.Join(tmpDir, "fromfile"),
	}, "\n")
	err = ioutil.WriteFile(configFile, []byte(content), 0644)
	if err != nil {
		t.Fatalf("Failed writing config file: %v", err)
	}

	cfg, _, err := LoadConfig([]string{"--configfile", configFile})
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if !cfg.Testnet || !cfg.NoCheckpoints {
		t.Errorf("LoadConfig: options from the config file were not applied: %+v", cfg.Flags)
	}
	if cfg.DataDir != filepath.Join(tmpDir, "fromfile", "testnet") {
		t.Errorf("LoadConfig: unexpected data directory %s", cfg.DataDir)
	}

	// Command line options take precedence over the config file.
	overrideDir := filepath.Join(tmpDir, "fromcli")
	cfg, _, err = LoadConfig([]string{"--configfile", configFile, "--datadir", overrideDir})
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.DataDir != filepath.Join(overrideDir, "testnet") {
		t.Errorf("LoadConfig: command line did not override the config file, got %s", cfg.DataDir)
	}
}

func TestLoadConfigInvalidDebugLevel(t *testing.T) {
	_, _, err := LoadConfig([]string{"--debuglevel", "CHKP=loud"})
	if err == nil {
		t.Errorf("LoadConfig: expected an error for an invalid debug level")
	}
}

func TestCleanAndExpandPath(t *testing.T) {
	os.Setenv("FLORIPAD_TEST_DIR", "/tmp/floripad-test")
	defer os.Unsetenv("FLORIPAD_TEST_DIR")

	tests := []struct {
		in       string
		expected string
	}{
		{in: "$FLORIPAD_TEST_DIR/data", expected: "/tmp/floripad-test/data"},
		{in: "/a/b/../c", expected: "/a/c"},
		{in: "~/data", expected: filepath.Join(filepath.Dir(DefaultHomeDir), "data")},
	}
	for _, test := range tests {
		result := cleanAndExpandPath(test.in)
		if result != test.expected {
			t.Errorf("cleanAndExpandPath(%s): expected %s, got %s", test.in, test.expected, result)
		}
	}
}

func TestAppDataDir(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	tests := []struct {
		goos     string
		appName  string
		expected string
	}{
		{goos: "linux", appName: "floripad", expected: filepath.Join(homeDir, ".floripad")},
		{goos: "linux", appName: ".floripad", expected: filepath.Join(homeDir, ".floripad")},
		{goos: "darwin", appName: "floripad", expected: filepath.Join(homeDir, "Library", "Application Support", "Floripad")},
		{goos: "linux", appName: "", expected: "."},
		{goos: "linux", appName: ".", expected: "."},
	}
	for _, test := range tests {
		result := appDataDir(test.goos, test.appName)
		if result != test.expected {
			t.Errorf("appDataDir(%s, %s): expected %s, got %s",
				test.goos, test.appName, test.expected, result)
		}
	}
}

func TestInitLog(t *testing.T) {
	tmpDir, err := ioutil.TempDir("", "floripad")
	if err != nil {
		t.Fatalf("Failed creating a temporary directory: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	cfg, _, err := LoadConfig([]string{"--logdir", tmpDir, "--nocheckpoints"})
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	cfg.InitLog()
	if !logger.BackendLog.IsRunning() {
		t.Errorf("InitLog: the log backend is not running")
	}

	for _, filename := range []string{defaultLogFilename, defaultErrLogFilename} {
		path := filepath.Join(cfg.LogDir, filename)
		if _, err := os.Stat(path); err != nil {
			t.Errorf("InitLog: log file %s was not created: %v", path, err)
		}
	}
}
