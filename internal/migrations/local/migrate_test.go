package local

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestRunMigration_UpgradesLegacyEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seoulier_reservations.json")
	legacy := `[
  {
    "id": "res-1",
    "date": "2026-03-14",
    "time": "12:00",
    "people": 4,
    "name": "Lee",
    "status": "reserved"
  }
]`
	if err := os.WriteFile(path, []byte(legacy), 0o644); err != nil {
		t.Fatalf("failed to seed store file: %v", err)
	}

	if err := RunMigration(path); err != nil {
		t.Fatalf("migration failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read migrated file: %v", err)
	}
	var entries []map[string]any
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatalf("migrated file is not valid JSON: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	entry := entries[0]

	if _, ok := entry["people"]; ok {
		t.Error("people field must be renamed")
	}
	if adults, ok := entry["adults"].(float64); !ok || adults != 4 {
		t.Errorf("expected adults 4, got %v", entry["adults"])
	}
	if children, ok := entry["children"].(float64); !ok || children != 0 {
		t.Errorf("expected children default 0, got %v", entry["children"])
	}
	if room, ok := entry["room"]; !ok || room != nil {
		t.Errorf("expected room default null, got %v", room)
	}
	if confirmer, ok := entry["confirmer"]; !ok || confirmer != nil {
		t.Errorf("expected confirmer default null, got %v", confirmer)
	}
	if phone, ok := entry["phone"].(string); !ok || phone != "" {
		t.Errorf("expected phone default empty string, got %v", entry["phone"])
	}
}

func TestRunMigration_AssignsMissingIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seoulier_reservations.json")
	legacy := `[{"date": "2026-03-14", "time": "12:00", "people": 2, "name": "Lee"}]`
	if err := os.WriteFile(path, []byte(legacy), 0o644); err != nil {
		t.Fatalf("failed to seed store file: %v", err)
	}

	if err := RunMigration(path); err != nil {
		t.Fatalf("migration failed: %v", err)
	}

	data, _ := os.ReadFile(path)
	var entries []map[string]any
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatalf("migrated file is not valid JSON: %v", err)
	}
	id, ok := entries[0]["id"].(string)
	if !ok || id == "" {
		t.Error("expected a generated id")
	}
	if status, _ := entries[0]["status"].(string); status != "reserved" {
		t.Errorf("expected status default reserved, got %v", entries[0]["status"])
	}
}

func TestRunMigration_IsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seoulier_reservations.json")
	legacy := `[{"id": "res-1", "date": "2026-03-14", "time": "12:00", "people": 2, "name": "Lee", "status": "reserved"}]`
	if err := os.WriteFile(path, []byte(legacy), 0o644); err != nil {
		t.Fatalf("failed to seed store file: %v", err)
	}

	if err := RunMigration(path); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	first, _ := os.ReadFile(path)

	if err := RunMigration(path); err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	second, _ := os.ReadFile(path)

	if string(first) != string(second) {
		t.Error("running the migration twice must not change the file again")
	}
}

func TestRunMigration_MissingFileIsNoError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.json")
	if err := RunMigration(path); err != nil {
		t.Errorf("missing store file must not error: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("migration must not create a store file")
	}
}
