package handler

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"
)

func TestNotes_RequiresSession(t *testing.T) {
	server := newTestServer(t)

	resp := get(t, server, "/api/notes?action=get_all", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}

	var body map[string]interface{}
	decodeBody(t, resp, &body)
	if body["error"] != "User not authenticated." {
		t.Errorf("unexpected error body %v", body)
	}
}

func TestNotes_GetAllShape(t *testing.T) {
	server := newTestServer(t)
	cookie := registerAndLogin(t, server, "alice")

	folderID := createItem(t, server, cookie, "Notes", "folder", "")
	createItem(t, server, cookie, "Todo", "file", folderID)

	resp := get(t, server, "/api/notes?action=get_all", cookie)
	var items []map[string]interface{}
	decodeBody(t, resp, &items)

	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0]["name"] != "Notes" || items[0]["kind"] != "folder" {
		t.Errorf("unexpected first item %v", items[0])
	}
	if items[0]["parent_id"] != nil {
		t.Errorf("root item must have null parent_id, got %v", items[0]["parent_id"])
	}
	if got := fmt.Sprintf("%v", items[1]["parent_id"]); got != folderID {
		t.Errorf("expected parent_id %s, got %s", folderID, got)
	}
	if _, hasContent := items[0]["content"]; hasContent {
		t.Error("summaries must not carry content")
	}
}

func TestNotes_RootMarkerSpellings(t *testing.T) {
	server := newTestServer(t)
	cookie := registerAndLogin(t, server, "alice")

	// Every transport spelling of "no parent" lands at root level
	createItem(t, server, cookie, "a", "file", "")
	createItem(t, server, cookie, "b", "file", "0")
	createItem(t, server, cookie, "c", "file", "null")

	resp := get(t, server, "/api/notes?action=get_tree", cookie)
	var forest []map[string]interface{}
	decodeBody(t, resp, &forest)

	if len(forest) != 3 {
		t.Fatalf("expected 3 roots, got %d", len(forest))
	}
}

func TestNotes_GetTreeNesting(t *testing.T) {
	server := newTestServer(t)
	cookie := registerAndLogin(t, server, "alice")

	folderID := createItem(t, server, cookie, "Notes", "folder", "")
	createItem(t, server, cookie, "Todo", "file", folderID)

	resp := get(t, server, "/api/notes?action=get_tree", cookie)
	var forest []struct {
		Name     string `json:"name"`
		Children []struct {
			Name string `json:"name"`
		} `json:"children"`
	}
	decodeBody(t, resp, &forest)

	if len(forest) != 1 {
		t.Fatalf("expected 1 root, got %d", len(forest))
	}
	if forest[0].Name != "Notes" {
		t.Errorf("expected root 'Notes', got %q", forest[0].Name)
	}
	if len(forest[0].Children) != 1 || forest[0].Children[0].Name != "Todo" {
		t.Errorf("expected 'Todo' nested under 'Notes', got %+v", forest[0].Children)
	}
}

func TestNotes_GetContentRoundTrip(t *testing.T) {
	server := newTestServer(t)
	cookie := registerAndLogin(t, server, "alice")

	id := createItem(t, server, cookie, "X", "file", "")

	resp := get(t, server, "/api/notes?action=get_content&id="+id, cookie)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body map[string]string
	decodeBody(t, resp, &body)
	if body["content"] != "# X" {
		t.Errorf("expected seeded heading, got %q", body["content"])
	}
}

func TestNotes_GetContentIsOwnerScoped(t *testing.T) {
	server := newTestServer(t)
	alice := registerAndLogin(t, server, "alice")
	bob := registerAndLogin(t, server, "bob")

	id := createItem(t, server, alice, "secret", "file", "")

	resp := get(t, server, "/api/notes?action=get_content&id="+id, bob)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("foreign items must look missing, got %d", resp.StatusCode)
	}
}

func TestNotes_UpdateContent(t *testing.T) {
	server := newTestServer(t)
	cookie := registerAndLogin(t, server, "alice")

	id := createItem(t, server, cookie, "doc", "file", "")

	resp := postForm(t, server, "/api/notes", url.Values{
		"action":  {"update_content"},
		"id":      {id},
		"content": {"# doc\n\nedited"},
	}, cookie)
	var body map[string]interface{}
	decodeBody(t, resp, &body)
	if body["success"] != true {
		t.Fatalf("update_content failed: %v", body)
	}

	resp = get(t, server, "/api/notes?action=get_content&id="+id, cookie)
	var content map[string]string
	decodeBody(t, resp, &content)
	if content["content"] != "# doc\n\nedited" {
		t.Errorf("unexpected content %q", content["content"])
	}
}

func TestNotes_RenameUnknownIDSucceeds(t *testing.T) {
	server := newTestServer(t)
	cookie := registerAndLogin(t, server, "alice")

	resp := postForm(t, server, "/api/notes", url.Values{
		"action": {"rename"},
		"id":     {"999"},
		"name":   {"ghost"},
	}, cookie)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var body map[string]interface{}
	decodeBody(t, resp, &body)
	if body["success"] != true {
		t.Errorf("silent no-op must report success, got %v", body)
	}
}

func TestNotes_MalformedIDRejected(t *testing.T) {
	server := newTestServer(t)
	cookie := registerAndLogin(t, server, "alice")

	resp := postForm(t, server, "/api/notes", url.Values{
		"action": {"rename"},
		"id":     {"not-a-number"},
		"name":   {"x"},
	}, cookie)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestNotes_MoveIntoOwnSubtreeRejected(t *testing.T) {
	server := newTestServer(t)
	cookie := registerAndLogin(t, server, "alice")

	top := createItem(t, server, cookie, "top", "folder", "")
	inner := createItem(t, server, cookie, "inner", "folder", top)

	resp := postForm(t, server, "/api/notes", url.Values{
		"action":    {"move"},
		"id":        {top},
		"parent_id": {inner},
	}, cookie)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestNotes_DeleteShallowCascade(t *testing.T) {
	server := newTestServer(t)
	cookie := registerAndLogin(t, server, "alice")

	notes := createItem(t, server, cookie, "Notes", "folder", "")
	todo := createItem(t, server, cookie, "Todo", "folder", notes)
	createItem(t, server, cookie, "Sub", "file", todo)

	resp := postForm(t, server, "/api/notes", url.Values{
		"action": {"delete"},
		"id":     {notes},
	}, cookie)
	var body map[string]interface{}
	decodeBody(t, resp, &body)
	if body["success"] != true {
		t.Fatalf("delete failed: %v", body)
	}

	resp = get(t, server, "/api/notes?action=get_all", cookie)
	var items []map[string]interface{}
	decodeBody(t, resp, &items)
	if len(items) != 1 {
		t.Fatalf("expected only the orphaned grandchild, got %d items", len(items))
	}
	if items[0]["name"] != "Sub" {
		t.Errorf("expected survivor 'Sub', got %v", items[0]["name"])
	}
}

func TestNotes_InvalidAction(t *testing.T) {
	server := newTestServer(t)
	cookie := registerAndLogin(t, server, "alice")

	resp := get(t, server, "/api/notes?action=frobnicate", cookie)
	var body map[string]interface{}
	decodeBody(t, resp, &body)
	if body["success"] != false || body["message"] != "Invalid action." {
		t.Errorf("unexpected body %v", body)
	}
}

func TestNotes_UsersAreIsolated(t *testing.T) {
	server := newTestServer(t)
	alice := registerAndLogin(t, server, "alice")
	bob := registerAndLogin(t, server, "bob")

	createItem(t, server, alice, "mine", "file", "")

	resp := get(t, server, "/api/notes?action=get_all", bob)
	var items []map[string]interface{}
	decodeBody(t, resp, &items)
	if len(items) != 0 {
		t.Fatalf("bob must not see alice's items, got %d", len(items))
	}
}
