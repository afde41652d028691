package mcp_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	erold "github.com/erold-dev/mcp-server"
	eroldmcp "github.com/erold-dev/mcp-server/mcp"
)

// newTestServer points the engine at the given backend and returns a
// fully registered MCP server.
func newTestServer(t *testing.T, backendURL string) *eroldmcp.Server {
	t.Helper()
	t.Setenv("EROLD_API_KEY", "test-key")
	t.Setenv("EROLD_TENANT_ID", "acme")
	t.Setenv("EROLD_API_URL", backendURL)
	t.Setenv("EROLD_TIMEOUT", "5")
	t.Setenv("EROLD_DEBUG", "")
	t.Setenv("EROLD_DEBUG_LOG", "")

	client := erold.NewClient().WithRetryBaseDelay(time.Millisecond)
	return eroldmcp.NewServer(client)
}

// =============================================================================
// Server Initialization Tests
// =============================================================================

func TestServer_NewServer(t *testing.T) {
	server := newTestServer(t, "http://localhost:1")
	if server == nil {
		t.Fatal("NewServer() returned nil")
	}
}

func TestServer_ToolsList(t *testing.T) {
	server := newTestServer(t, "http://localhost:1")
	tools := server.ListTools()

	if len(tools) != 34 {
		t.Errorf("ListTools() returned %d tools, want 34", len(tools))
	}

	toolNames := make(map[string]bool)
	for _, tool := range tools {
		toolNames[tool.Name] = true
		if tool.Description == "" {
			t.Errorf("Tool %q has no description", tool.Name)
		}
	}

	for _, expected := range []string{
		"erold_list_tasks",
		"erold_complete_task",
		"erold_get_project",
		"erold_create_knowledge",
		"erold_reveal_vault_item",
		"erold_list_tech_info",
		"erold_get_guideline",
		"erold_get_workspace_context",
		"erold_whoami",
	} {
		if !toolNames[expected] {
			t.Errorf("Tool %q not found in registered tools", expected)
		}
	}
}

func TestCallTool_UnknownTool(t *testing.T) {
	server := newTestServer(t, "http://localhost:1")

	result, err := server.CallTool(context.Background(), "erold_launch_rocket", nil)
	if err != nil {
		t.Fatalf("CallTool() returned error: %v", err)
	}
	if !result.IsError {
		t.Error("CallTool() with unknown tool should return an error result")
	}
	if !strings.Contains(result.Content, "unknown tool") {
		t.Errorf("Content = %q, want mention of unknown tool", result.Content)
	}
}

// =============================================================================
// Task Tool Tests
// =============================================================================

func TestTool_ListTasks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tenants/acme/tasks" {
			t.Errorf("path = %q, want /tenants/acme/tasks", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": [
			{"id": "t1", "title": "Fix login bug", "status": "in_progress", "assignee": "dana"},
			{"id": "t2", "title": "Write release notes", "status": "todo"}
		]}`))
	}))
	defer server.Close()

	mcpServer := newTestServer(t, server.URL)
	result, err := mcpServer.CallTool(context.Background(), "erold_list_tasks", map[string]any{})
	if err != nil {
		t.Fatalf("CallTool() returned error: %v", err)
	}
	if result.IsError {
		t.Fatalf("CallTool() returned error result: %s", result.Content)
	}

	for _, want := range []string{"Found 2 tasks", "Fix login bug", "Write release notes", "dana"} {
		if !strings.Contains(result.Content, want) {
			t.Errorf("Content missing %q:\n%s", want, result.Content)
		}
	}
}

func TestTool_ListTasks_InvalidStatus(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	mcpServer := newTestServer(t, server.URL)
	result, err := mcpServer.CallTool(context.Background(), "erold_list_tasks", map[string]any{
		"status": "doing",
	})
	if err != nil {
		t.Fatalf("CallTool() returned error: %v", err)
	}
	if !result.IsError {
		t.Error("invalid status should return an error result")
	}
	if !strings.Contains(result.Content, "invalid status") {
		t.Errorf("Content = %q, want invalid status message", result.Content)
	}
	if calls.Load() != 0 {
		t.Errorf("backend calls = %d, want 0 (validation should fail first)", calls.Load())
	}
}

func TestTool_GetTask_MissingID(t *testing.T) {
	mcpServer := newTestServer(t, "http://localhost:1")

	result, err := mcpServer.CallTool(context.Background(), "erold_get_task", map[string]any{})
	if err != nil {
		t.Fatalf("CallTool() returned error: %v", err)
	}
	if !result.IsError {
		t.Error("missing id should return an error result")
	}
	if result.Content != "id is required" {
		t.Errorf("Content = %q, want %q", result.Content, "id is required")
	}
}

func TestTool_CreateTask(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %q, want POST", r.Method)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decoding request body: %v", err)
		}
		if body["title"] != "Ship v2" {
			t.Errorf("title = %v, want Ship v2", body["title"])
		}
		if body["priority"] != "high" {
			t.Errorf("priority = %v, want high", body["priority"])
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data": {"id": "t9", "title": "Ship v2", "status": "todo"}}`))
	}))
	defer server.Close()

	mcpServer := newTestServer(t, server.URL)
	result, err := mcpServer.CallTool(context.Background(), "erold_create_task", map[string]any{
		"title":    "Ship v2",
		"priority": "high",
	})
	if err != nil {
		t.Fatalf("CallTool() returned error: %v", err)
	}
	if result.IsError {
		t.Fatalf("CallTool() returned error result: %s", result.Content)
	}
	if result.Content != "Created task [t9]: Ship v2 (status: todo)" {
		t.Errorf("Content = %q", result.Content)
	}
}

func TestTool_CreateTask_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": {"message": "Validation failed"}}`))
	}))
	defer server.Close()

	mcpServer := newTestServer(t, server.URL)
	result, err := mcpServer.CallTool(context.Background(), "erold_create_task", map[string]any{
		"title": "Ship v2",
	})
	if err != nil {
		t.Fatalf("CallTool() returned error: %v", err)
	}
	if !result.IsError {
		t.Fatal("API error should produce an error result")
	}
	if result.Content != "Error creating task: API Error (400): Validation failed" {
		t.Errorf("Content = %q", result.Content)
	}
}

func TestTool_CreateTask_TitleTooLong(t *testing.T) {
	mcpServer := newTestServer(t, "http://localhost:1")

	result, err := mcpServer.CallTool(context.Background(), "erold_create_task", map[string]any{
		"title": strings.Repeat("x", 201),
	})
	if err != nil {
		t.Fatalf("CallTool() returned error: %v", err)
	}
	if !result.IsError {
		t.Error("oversized title should return an error result")
	}
	if !strings.Contains(result.Content, "title exceeds 200 characters") {
		t.Errorf("Content = %q", result.Content)
	}
}

func TestTool_CompleteTask(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %q, want POST", r.Method)
		}
		if r.URL.Path != "/tenants/acme/tasks/t1/complete" {
			t.Errorf("path = %q, want /tenants/acme/tasks/t1/complete", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": {"id": "t1", "title": "Fix login bug", "status": "done"}}`))
	}))
	defer server.Close()

	mcpServer := newTestServer(t, server.URL)
	result, err := mcpServer.CallTool(context.Background(), "erold_complete_task", map[string]any{"id": "t1"})
	if err != nil {
		t.Fatalf("CallTool() returned error: %v", err)
	}
	if result.Content != "Completed task [t1]: Fix login bug" {
		t.Errorf("Content = %q", result.Content)
	}
}

// =============================================================================
// Project Tool Tests
// =============================================================================

func TestTool_GetProject_MergesStats(t *testing.T) {
	var projectCalls, statsCalls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/tenants/acme/projects/p1":
			projectCalls.Add(1)
			_, _ = w.Write([]byte(`{"data": {"id": "p1", "title": "Mobile App", "status": "active", "lead": "dana"}}`))
		case "/tenants/acme/projects/p1/stats":
			statsCalls.Add(1)
			_, _ = w.Write([]byte(`{"data": {"total_tasks": 24, "open_tasks": 10, "completed_tasks": 14, "overdue_tasks": 2, "progress": 0.58}}`))
		default:
			t.Errorf("unexpected path %q", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	mcpServer := newTestServer(t, server.URL)
	result, err := mcpServer.CallTool(context.Background(), "erold_get_project", map[string]any{"id": "p1"})
	if err != nil {
		t.Fatalf("CallTool() returned error: %v", err)
	}
	if result.IsError {
		t.Fatalf("CallTool() returned error result: %s", result.Content)
	}

	for _, want := range []string{
		"Project: Mobile App",
		"Lead: dana",
		"24 total, 10 open, 14 completed",
		"Overdue: 2",
		"Complete: 58%",
	} {
		if !strings.Contains(result.Content, want) {
			t.Errorf("Content missing %q:\n%s", want, result.Content)
		}
	}

	if projectCalls.Load() != 1 || statsCalls.Load() != 1 {
		t.Errorf("calls = (%d, %d), want (1, 1)", projectCalls.Load(), statsCalls.Load())
	}
}

func TestTool_GetProject_StatsFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/tenants/acme/projects/p1":
			_, _ = w.Write([]byte(`{"data": {"id": "p1", "title": "Mobile App"}}`))
		case "/tenants/acme/projects/p1/stats":
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error": {"message": "Stats not found"}}`))
		}
	}))
	defer server.Close()

	mcpServer := newTestServer(t, server.URL)
	result, err := mcpServer.CallTool(context.Background(), "erold_get_project", map[string]any{"id": "p1"})
	if err != nil {
		t.Fatalf("CallTool() returned error: %v", err)
	}
	if !result.IsError {
		t.Fatal("stats failure should produce an error result")
	}
	if result.Content != "Error fetching project: API Error (404): Stats not found" {
		t.Errorf("Content = %q", result.Content)
	}
}

// =============================================================================
// Knowledge, Vault, Guideline Tool Tests
// =============================================================================

func TestTool_CreateKnowledge_ContentTooLong(t *testing.T) {
	mcpServer := newTestServer(t, "http://localhost:1")

	result, err := mcpServer.CallTool(context.Background(), "erold_create_knowledge", map[string]any{
		"title":   "Runbook",
		"content": strings.Repeat("x", 20001),
	})
	if err != nil {
		t.Fatalf("CallTool() returned error: %v", err)
	}
	if !result.IsError {
		t.Error("oversized content should return an error result")
	}
	if !strings.Contains(result.Content, "content exceeds 20000 characters") {
		t.Errorf("Content = %q", result.Content)
	}
}

func TestTool_CreateKnowledge_Tags(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decoding request body: %v", err)
		}
		tags, _ := body["tags"].([]any)
		if len(tags) != 2 || tags[0] != "onboarding" || tags[1] != "backend" {
			t.Errorf("tags = %v, want [onboarding backend]", body["tags"])
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data": {"id": "k1", "title": "Runbook"}}`))
	}))
	defer server.Close()

	mcpServer := newTestServer(t, server.URL)
	result, err := mcpServer.CallTool(context.Background(), "erold_create_knowledge", map[string]any{
		"title":   "Runbook",
		"content": "Steps...",
		"tags":    []any{"onboarding", "backend"},
	})
	if err != nil {
		t.Fatalf("CallTool() returned error: %v", err)
	}
	if result.IsError {
		t.Fatalf("CallTool() returned error result: %s", result.Content)
	}
	if result.Content != "Created article [k1]: Runbook" {
		t.Errorf("Content = %q", result.Content)
	}
}

func TestTool_RevealVaultItem(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %q, want POST", r.Method)
		}
		if r.URL.Path != "/tenants/acme/vault/v1/reveal" {
			t.Errorf("path = %q, want /tenants/acme/vault/v1/reveal", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": {"id": "v1", "name": "Prod DB", "kind": "password", "username": "admin", "value": "s3cret"}}`))
	}))
	defer server.Close()

	mcpServer := newTestServer(t, server.URL)
	result, err := mcpServer.CallTool(context.Background(), "erold_reveal_vault_item", map[string]any{"id": "v1"})
	if err != nil {
		t.Fatalf("CallTool() returned error: %v", err)
	}
	if !strings.Contains(result.Content, "Value: s3cret") {
		t.Errorf("Content missing revealed value:\n%s", result.Content)
	}
}

func TestTool_CreateVaultItem_InvalidKind(t *testing.T) {
	mcpServer := newTestServer(t, "http://localhost:1")

	result, err := mcpServer.CallTool(context.Background(), "erold_create_vault_item", map[string]any{
		"name":  "Prod DB",
		"kind":  "secret",
		"value": "s3cret",
	})
	if err != nil {
		t.Fatalf("CallTool() returned error: %v", err)
	}
	if !result.IsError {
		t.Error("invalid kind should return an error result")
	}
	if !strings.Contains(result.Content, "invalid kind") {
		t.Errorf("Content = %q", result.Content)
	}
}

func TestTool_Guidelines_SecondListServedFromCache(t *testing.T) {
	var fetches atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetches.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": [
			{"slug": "deploys", "title": "Deploy Process", "content": "Always deploy from main."}
		]}`))
	}))
	defer server.Close()

	mcpServer := newTestServer(t, server.URL)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		result, err := mcpServer.CallTool(ctx, "erold_list_guidelines", nil)
		if err != nil {
			t.Fatalf("CallTool() #%d returned error: %v", i+1, err)
		}
		if !strings.Contains(result.Content, "Deploy Process") {
			t.Errorf("Content missing guideline title:\n%s", result.Content)
		}
	}

	// Get goes through the same cache
	result, err := mcpServer.CallTool(ctx, "erold_get_guideline", map[string]any{"slug": "deploys"})
	if err != nil {
		t.Fatalf("CallTool() returned error: %v", err)
	}
	if !strings.Contains(result.Content, "Always deploy from main.") {
		t.Errorf("Content missing guideline body:\n%s", result.Content)
	}

	if fetches.Load() != 1 {
		t.Errorf("backend fetches = %d, want 1", fetches.Load())
	}
}

func TestTool_GetGuideline_UnknownSlug(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": []}`))
	}))
	defer server.Close()

	mcpServer := newTestServer(t, server.URL)
	result, err := mcpServer.CallTool(context.Background(), "erold_get_guideline", map[string]any{"slug": "nope"})
	if err != nil {
		t.Fatalf("CallTool() returned error: %v", err)
	}
	if !result.IsError {
		t.Fatal("unknown slug should produce an error result")
	}
	if result.Content != "Error fetching guideline: API Error (404): Guideline not found" {
		t.Errorf("Content = %q", result.Content)
	}
}

// =============================================================================
// Workspace Tool Tests
// =============================================================================

func TestTool_Whoami(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/user" {
			t.Errorf("path = %q, want /user", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": {"id": "u1", "name": "Dana Melo", "email": "dana@acme.dev"}}`))
	}))
	defer server.Close()

	mcpServer := newTestServer(t, server.URL)
	result, err := mcpServer.CallTool(context.Background(), "erold_whoami", nil)
	if err != nil {
		t.Fatalf("CallTool() returned error: %v", err)
	}
	if result.Content != "Authenticated as Dana Melo <dana@acme.dev> (id: u1)" {
		t.Errorf("Content = %q", result.Content)
	}
}

func TestTool_GetWorkspaceContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tenants/acme/context" {
			t.Errorf("path = %q, want /tenants/acme/context", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": {
			"tenant_id": "acme", "tenant_name": "Acme Corp",
			"open_tasks": 12, "active_projects": 3, "members": 8
		}}`))
	}))
	defer server.Close()

	mcpServer := newTestServer(t, server.URL)
	result, err := mcpServer.CallTool(context.Background(), "erold_get_workspace_context", nil)
	if err != nil {
		t.Fatalf("CallTool() returned error: %v", err)
	}

	for _, want := range []string{"Workspace: Acme Corp (acme)", "Open tasks: 12", "Active projects: 3", "Members: 8"} {
		if !strings.Contains(result.Content, want) {
			t.Errorf("Content missing %q:\n%s", want, result.Content)
		}
	}
}

// =============================================================================
// Recovery Tests
// =============================================================================

// TestCallTool_RecoversPanic verifies a panicking handler surfaces as a
// tool error instead of tearing down the server. A nil client makes any
// accessor call dereference nil internals once config loading succeeds.
func TestCallTool_RecoversPanic(t *testing.T) {
	t.Setenv("EROLD_API_KEY", "test-key")
	t.Setenv("EROLD_TENANT_ID", "acme")
	t.Setenv("EROLD_API_URL", "http://localhost:1")
	t.Setenv("EROLD_TIMEOUT", "5")
	t.Setenv("EROLD_DEBUG", "")
	t.Setenv("EROLD_DEBUG_LOG", "")

	mcpServer := eroldmcp.NewServer(nil)
	result, err := mcpServer.CallTool(context.Background(), "erold_list_tasks", map[string]any{})
	if err != nil {
		t.Fatalf("CallTool() returned error: %v", err)
	}
	if !result.IsError {
		t.Fatal("panic should produce an error result")
	}
	if !strings.Contains(result.Content, "An unexpected error occurred") {
		t.Errorf("Content = %q, want generic fallback", result.Content)
	}
}

// =============================================================================
// Protocol-Level Tests
// =============================================================================

// TestProtocol_Initialize tests that initialize returns server info and
// tool + resource capabilities.
func TestProtocol_Initialize(t *testing.T) {
	mcpServer := newTestServer(t, "http://localhost:1")

	initRequest := `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2024-11-05","capabilities":{},"clientInfo":{"name":"test-client","version":"1.0.0"}}}`

	response := mcpServer.HandleMessage(context.Background(), []byte(initRequest))
	if response == nil {
		t.Fatal("HandleMessage() returned nil response for initialize request")
	}

	respBytes, err := json.Marshal(response)
	if err != nil {
		t.Fatalf("Failed to marshal response: %v", err)
	}

	var respMap map[string]any
	if err := json.Unmarshal(respBytes, &respMap); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if _, hasError := respMap["error"]; hasError {
		t.Errorf("Initialize response has error: %v", respMap["error"])
	}

	result, ok := respMap["result"].(map[string]any)
	if !ok {
		t.Fatalf("Initialize response missing result")
	}

	serverInfo, ok := result["serverInfo"].(map[string]any)
	if !ok {
		t.Fatal("Initialize result missing serverInfo")
	}
	if serverInfo["name"] != "erold" {
		t.Errorf("serverInfo.name = %v, want 'erold'", serverInfo["name"])
	}
	if serverInfo["version"] != "1.0.0" {
		t.Errorf("serverInfo.version = %v, want '1.0.0'", serverInfo["version"])
	}

	capabilities, ok := result["capabilities"].(map[string]any)
	if !ok {
		t.Fatal("Initialize result missing capabilities")
	}
	if _, hasTools := capabilities["tools"]; !hasTools {
		t.Error("Capabilities should include tools")
	}
	if _, hasResources := capabilities["resources"]; !hasResources {
		t.Error("Capabilities should include resources")
	}
}

// TestProtocol_ReadContextResource reads the workspace context resource
// end to end through the JSON-RPC layer.
func TestProtocol_ReadContextResource(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": {"tenant_id": "acme", "tenant_name": "Acme Corp", "open_tasks": 4}}`))
	}))
	defer backend.Close()

	mcpServer := newTestServer(t, backend.URL)

	readRequest := `{"jsonrpc":"2.0","id":2,"method":"resources/read","params":{"uri":"erold://workspace/context"}}`
	response := mcpServer.HandleMessage(context.Background(), []byte(readRequest))
	if response == nil {
		t.Fatal("HandleMessage() returned nil response for resources/read")
	}

	respBytes, err := json.Marshal(response)
	if err != nil {
		t.Fatalf("Failed to marshal response: %v", err)
	}

	var respMap map[string]any
	if err := json.Unmarshal(respBytes, &respMap); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if errObj, hasError := respMap["error"]; hasError {
		t.Fatalf("resources/read response has error: %v", errObj)
	}

	body := string(respBytes)
	for _, want := range []string{"erold://workspace/context", "Acme Corp", "open_tasks"} {
		if !strings.Contains(body, want) {
			t.Errorf("response missing %q:\n%s", want, body)
		}
	}
}

// TestProtocol_InvalidMethod tests that unknown method returns method not found.
func TestProtocol_InvalidMethod(t *testing.T) {
	mcpServer := newTestServer(t, "http://localhost:1")

	invalidMethodRequest := `{"jsonrpc":"2.0","id":1,"method":"unknown/method","params":{}}`

	response := mcpServer.HandleMessage(context.Background(), []byte(invalidMethodRequest))
	if response == nil {
		t.Fatal("HandleMessage() returned nil response for invalid method request")
	}

	respBytes, err := json.Marshal(response)
	if err != nil {
		t.Fatalf("Failed to marshal response: %v", err)
	}

	var respMap map[string]any
	if err := json.Unmarshal(respBytes, &respMap); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	errorObj, hasError := respMap["error"].(map[string]any)
	if !hasError {
		t.Fatal("Response should have error for unknown method")
	}

	errorCode, ok := errorObj["code"].(float64)
	if !ok {
		t.Fatalf("Error missing code field")
	}

	// -32601 is METHOD_NOT_FOUND in JSON-RPC
	if int(errorCode) != -32601 {
		t.Errorf("Error code = %v, want -32601 (METHOD_NOT_FOUND)", errorCode)
	}
}
