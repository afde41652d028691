package erold_test

import (
	"encoding/json"
	"testing"

	erold "github.com/erold-dev/mcp-server"
)

func TestTaskStatus_IsValid(t *testing.T) {
	for _, status := range erold.ValidTaskStatuses() {
		if !status.IsValid() {
			t.Errorf("TaskStatus(%q).IsValid() = false, want true", status)
		}
	}
}

func TestTaskStatus_InvalidString(t *testing.T) {
	for _, status := range []erold.TaskStatus{"", "TODO", "doing", "cancelled"} {
		if status.IsValid() {
			t.Errorf("TaskStatus(%q).IsValid() = true, want false", status)
		}
	}
}

func TestPriority_IsValid(t *testing.T) {
	valid := []erold.Priority{
		erold.PriorityLow,
		erold.PriorityMedium,
		erold.PriorityHigh,
		erold.PriorityUrgent,
	}
	for _, p := range valid {
		if !p.IsValid() {
			t.Errorf("Priority(%q).IsValid() = false, want true", p)
		}
	}

	for _, p := range []erold.Priority{"", "critical", "HIGH"} {
		if p.IsValid() {
			t.Errorf("Priority(%q).IsValid() = true, want false", p)
		}
	}
}

func TestVaultItemKind_IsValid(t *testing.T) {
	valid := []erold.VaultItemKind{
		erold.VaultKindPassword,
		erold.VaultKindAPIKey,
		erold.VaultKindCertificate,
		erold.VaultKindSSHKey,
		erold.VaultKindNote,
	}
	for _, k := range valid {
		if !k.IsValid() {
			t.Errorf("VaultItemKind(%q).IsValid() = false, want true", k)
		}
	}

	for _, k := range []erold.VaultItemKind{"", "secret", "token"} {
		if k.IsValid() {
			t.Errorf("VaultItemKind(%q).IsValid() = true, want false", k)
		}
	}
}

func TestTask_JSONMarshal_SnakeCase(t *testing.T) {
	task := erold.Task{
		ID:        "t1",
		Title:     "Fix login bug",
		Status:    erold.TaskStatusInProgress,
		ProjectID: "p1",
	}

	data, err := json.Marshal(task)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("json.Unmarshal failed: %v", err)
	}

	expectedKeys := []string{"id", "title", "status", "project_id", "created_at", "updated_at"}
	for _, key := range expectedKeys {
		if _, ok := m[key]; !ok {
			t.Errorf("JSON key %q not found in marshaled Task", key)
		}
	}
	if _, ok := m["due_date"]; ok {
		t.Error("unset due_date should be omitted")
	}
}

func TestTaskUpdateParams_OmitsZeroFields(t *testing.T) {
	data, err := json.Marshal(erold.TaskUpdateParams{Status: erold.TaskStatusDone})
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("json.Unmarshal failed: %v", err)
	}

	if len(m) != 1 {
		t.Errorf("partial update should carry only set fields, got %v", m)
	}
	if m["status"] != "done" {
		t.Errorf("status = %v, want done", m["status"])
	}
}
