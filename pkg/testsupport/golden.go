package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// LoadFixture reads a fixture file.
func LoadFixture(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteGolden serialises data as JSON to the golden path.
func WriteGolden(path string, data any) error {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, bytes, 0o644)
}

// LoadGolden deserialises JSON golden data into v.
func LoadGolden(path string, v any) error {
	bytes, err := LoadFixture(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(bytes, v)
}

// MustLoadGolden loads testdata/<name> into v, failing the test on error.
func MustLoadGolden(tb testing.TB, name string, v any) {
	tb.Helper()
	if err := LoadGolden(GoldenPath("testdata", name), v); err != nil {
		tb.Fatalf("load golden %s: %v", name, err)
	}
}

// GoldenPath resolves a golden name in testdata directory.
func GoldenPath(baseDir, name string) string {
	return filepath.Join(baseDir, name)
}
