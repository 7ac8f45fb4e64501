package local

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
)

// RunMigration upgrades a store file written by earlier releases in place:
// the headcount field is renamed from "people" to "adults", and entries
// missing the fields added since then get their defaults. Unknown fields
// pass through untouched. Running it twice is a no-op.
func RunMigration(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Printf("ℹ️ No local store at %s — nothing to migrate\n", path)
			return nil
		}
		return err
	}

	var entries []map[string]any
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("corrupt store file %s: %w", path, err)
	}

	fmt.Printf("🚀 Migrating local store: %s (%d entries)\n", path, len(entries))

	changed := 0
	for _, entry := range entries {
		if migrateEntry(entry) {
			changed++
		}
	}

	if changed == 0 {
		fmt.Println("✅ Local store already up to date.")
		return nil
	}

	out, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, out, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		return err
	}

	fmt.Printf("✅ Migrated %d of %d entries.\n", changed, len(entries))
	return nil
}

func migrateEntry(entry map[string]any) bool {
	changed := false

	if _, ok := entry["id"]; !ok {
		entry["id"] = uuid.NewString()
		changed = true
	}

	if people, ok := entry["people"]; ok {
		entry["adults"] = people
		delete(entry, "people")
		changed = true
	}

	if _, ok := entry["children"]; !ok {
		entry["children"] = 0
		changed = true
	}

	if _, ok := entry["room"]; !ok {
		entry["room"] = nil
		changed = true
	}

	if _, ok := entry["confirmer"]; !ok {
		entry["confirmer"] = nil
		changed = true
	}

	if _, ok := entry["phone"]; !ok {
		entry["phone"] = ""
		changed = true
	}

	if _, ok := entry["status"]; !ok {
		entry["status"] = "reserved"
		changed = true
	}

	return changed
}
