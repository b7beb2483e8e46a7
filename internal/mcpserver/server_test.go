package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashicorp-forge/outline-mcp/pkg/outline"
)

// fakeOutline serves canned responses per endpoint and records request bodies.
type fakeOutline struct {
	t         *testing.T
	responses map[string]string

	mu     sync.Mutex
	bodies map[string]map[string]any
}

func (f *fakeOutline) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	endpoint := strings.TrimPrefix(r.URL.Path, "/")

	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		f.t.Errorf("decoding request body for %s: %v", endpoint, err)
	}

	f.mu.Lock()
	f.bodies[endpoint] = body
	f.mu.Unlock()

	response, ok := f.responses[endpoint]
	if !ok {
		f.t.Errorf("unexpected request to %s", endpoint)
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = io.WriteString(w, response)
}

func (f *fakeOutline) body(endpoint string) (map[string]any, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	body, ok := f.bodies[endpoint]
	return body, ok
}

// newTestServer wires a Server to a fake Outline API.
func newTestServer(t *testing.T, responses map[string]string) (*Server, *fakeOutline) {
	t.Helper()

	fake := &fakeOutline{t: t, responses: responses, bodies: make(map[string]map[string]any)}
	api := httptest.NewServer(fake)
	t.Cleanup(api.Close)

	client, err := outline.NewClient(outline.Config{
		BaseURL:  api.URL,
		APIToken: "test_token",
		Logger:   hclog.NewNullLogger(),
	})
	require.NoError(t, err)
	t.Cleanup(client.Close)

	return New(client, hclog.NewNullLogger()), fake
}

type toolResult struct {
	Text    string
	IsError bool
}

// callTool sends a tools/call request through the protocol server.
func callTool(t *testing.T, s *Server, name string, args map[string]any) toolResult {
	t.Helper()

	params, err := json.Marshal(map[string]any{"name": name, "arguments": args})
	require.NoError(t, err)

	raw := rpc(t, s, "tools/call", params)

	var resp struct {
		Result struct {
			Content []struct {
				Type string `json:"type"`
				Text string `json:"text"`
			} `json:"content"`
			IsError bool `json:"isError"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(raw, &resp))
	require.Len(t, resp.Result.Content, 1, "response: %s", raw)
	assert.Equal(t, "text", resp.Result.Content[0].Type)

	return toolResult{Text: resp.Result.Content[0].Text, IsError: resp.Result.IsError}
}

func rpc(t *testing.T, s *Server, method string, params json.RawMessage) []byte {
	t.Helper()

	msg := fmt.Sprintf(`{"jsonrpc": "2.0", "id": 1, "method": %q, "params": %s}`, method, params)
	resp := s.MCPServer().HandleMessage(context.Background(), json.RawMessage(msg))
	require.NotNil(t, resp)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	return raw
}

func TestInitialize(t *testing.T) {
	s, _ := newTestServer(t, nil)

	raw := rpc(t, s, "initialize", json.RawMessage(`{
		"protocolVersion": "2025-03-26",
		"clientInfo": {"name": "test", "version": "1.0.0"},
		"capabilities": {}
	}`))

	var resp struct {
		Result struct {
			ServerInfo struct {
				Name string `json:"name"`
			} `json:"serverInfo"`
			Capabilities map[string]any `json:"capabilities"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(raw, &resp))

	assert.Equal(t, "Outline", resp.Result.ServerInfo.Name)
	assert.Contains(t, resp.Result.Capabilities, "tools")
	assert.Contains(t, resp.Result.Capabilities, "logging")
}

func TestToolsList(t *testing.T) {
	s, _ := newTestServer(t, nil)

	raw := rpc(t, s, "tools/list", json.RawMessage(`{}`))

	var resp struct {
		Result struct {
			Tools []struct {
				Name        string `json:"name"`
				Annotations struct {
					ReadOnlyHint *bool `json:"readOnlyHint"`
				} `json:"annotations"`
			} `json:"tools"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(raw, &resp))

	var names []string
	for _, tool := range resp.Result.Tools {
		names = append(names, tool.Name)
		require.NotNil(t, tool.Annotations.ReadOnlyHint, tool.Name)
		assert.True(t, *tool.Annotations.ReadOnlyHint, tool.Name)
	}
	assert.ElementsMatch(t, expectedToolNames, names)
}

func TestSearchDocumentsTool(t *testing.T) {
	s, fake := newTestServer(t, map[string]string{
		"documents.search": `{
			"ok": true,
			"data": [{"context": "ctx", "ranking": 1.5, "document": {"id": "d1", "title": "Doc"}}],
			"pagination": {"offset": 0, "limit": 100}
		}`,
	})

	res := callTool(t, s, "search_documents", map[string]any{
		"query":  "onboarding",
		"limit":  500,
		"offset": -2,
	})

	require.False(t, res.IsError, res.Text)

	body, ok := fake.body("documents.search")
	require.True(t, ok)
	assert.Equal(t, map[string]any{"query": "onboarding", "limit": float64(100), "offset": float64(-2)}, body)

	assert.JSONEq(t, `{
		"query": "onboarding",
		"total_results": 1,
		"results": [{
			"id": "d1",
			"title": "Doc",
			"url_id": null,
			"context": "ctx",
			"ranking": 1.5,
			"collection_id": null,
			"created_at": null,
			"updated_at": null,
			"created_by": null,
			"updated_by": null
		}],
		"pagination": {"offset": 0, "limit": 100}
	}`, res.Text)
}

func TestListDocumentsTool_Arguments(t *testing.T) {
	tests := []struct {
		name     string
		args     map[string]any
		expected map[string]any
	}{
		{
			name: "defaults",
			args: map[string]any{},
			expected: map[string]any{
				"limit": float64(25), "offset": float64(0), "sort": "updatedAt", "direction": "DESC",
			},
		},
		{
			name: "limit clamped up",
			args: map[string]any{"limit": 0},
			expected: map[string]any{
				"limit": float64(1), "offset": float64(0), "sort": "updatedAt", "direction": "DESC",
			},
		},
		{
			name: "huge limit clamped down",
			args: map[string]any{"limit": 1e20},
			expected: map[string]any{
				"limit": float64(100), "offset": float64(0), "sort": "updatedAt", "direction": "DESC",
			},
		},
		{
			name: "limit beyond float range of int",
			args: map[string]any{"limit": 1e300},
			expected: map[string]any{
				"limit": float64(100), "offset": float64(0), "sort": "updatedAt", "direction": "DESC",
			},
		},
		{
			name: "huge negative limit clamped up",
			args: map[string]any{"limit": -1e20},
			expected: map[string]any{
				"limit": float64(1), "offset": float64(0), "sort": "updatedAt", "direction": "DESC",
			},
		},
		{
			name: "string numbers and template false",
			args: map[string]any{"limit": "10", "offset": "5", "template": false, "direction": "ASC"},
			expected: map[string]any{
				"limit": float64(10), "offset": float64(5), "sort": "updatedAt", "direction": "ASC",
				"template": false,
			},
		},
		{
			name: "filters",
			args: map[string]any{"collection_id": "c1", "user_id": "u1", "parent_document_id": "p1", "sort": "title"},
			expected: map[string]any{
				"limit": float64(25), "offset": float64(0), "sort": "title", "direction": "DESC",
				"collectionId": "c1", "userId": "u1", "parentDocumentId": "p1",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, fake := newTestServer(t, map[string]string{
				"documents.list": `{"ok": true, "data": []}`,
			})

			res := callTool(t, s, "list_documents", tt.args)
			require.False(t, res.IsError, res.Text)

			body, ok := fake.body("documents.list")
			require.True(t, ok)
			assert.Equal(t, tt.expected, body)

			assert.JSONEq(t, `{"total_documents": 0, "documents": [], "pagination": {}}`, res.Text)
		})
	}
}

func TestGetDocumentTool(t *testing.T) {
	s, _ := newTestServer(t, map[string]string{
		"documents.info": `{
			"ok": true,
			"data": {"id": "doc-123", "title": "Test Document", "createdBy": {"name": "John Doe"}}
		}`,
	})

	res := callTool(t, s, "get_document", map[string]any{"document_id": "doc-123"})

	require.False(t, res.IsError, res.Text)
	assert.Contains(t, res.Text, `"created_by": "John Doe"`)
	assert.NotContains(t, res.Text, "createdBy")
	assert.True(t, strings.HasPrefix(res.Text, "{\n  \"id\": \"doc-123\""))
}

func TestGetDocumentTool_Deterministic(t *testing.T) {
	s, _ := newTestServer(t, map[string]string{
		"documents.info": `{"ok": true, "data": {"id": "doc-1", "collaborators": [{"name": "A"}, {"name": "B"}]}}`,
	})

	first := callTool(t, s, "get_document", map[string]any{"document_id": "doc-1"})
	second := callTool(t, s, "get_document", map[string]any{"document_id": "doc-1"})

	assert.Equal(t, first.Text, second.Text)
}

func TestExportDocumentTool(t *testing.T) {
	s, fake := newTestServer(t, map[string]string{
		"documents.export": `{"ok": true, "data": "# Title\n\nSome <em>markdown</em>"}`,
	})

	res := callTool(t, s, "export_document", map[string]any{"document_id": "doc-1"})

	require.False(t, res.IsError, res.Text)
	assert.Equal(t, "# Title\n\nSome <em>markdown</em>", res.Text)

	body, _ := fake.body("documents.export")
	assert.Equal(t, map[string]any{"id": "doc-1"}, body)
}

func TestAnswerQuestionTool(t *testing.T) {
	s, fake := newTestServer(t, map[string]string{
		"documents.answerQuestion": `{
			"ok": true,
			"search": {"id": "s1", "answer": "Yes."},
			"documents": [{"id": "d1"}]
		}`,
	})

	res := callTool(t, s, "answer_question", map[string]any{"question": "Is it?", "status_filter": "published"})

	require.False(t, res.IsError, res.Text)
	body, _ := fake.body("documents.answerQuestion")
	assert.Equal(t, map[string]any{"query": "Is it?", "statusFilter": "published"}, body)
	assert.Contains(t, res.Text, `"answer": "Yes."`)
	assert.Contains(t, res.Text, `"supporting_documents": [`)
}

func TestCollectionTools(t *testing.T) {
	s, _ := newTestServer(t, map[string]string{
		"collections.list":      `{"ok": true, "data": [{"id": "c1", "name": "Eng"}]}`,
		"collections.info":      `{"ok": true, "data": {"id": "c1", "name": "Eng", "sort": {"field": "index"}}}`,
		"collections.documents": `{"ok": true, "data": [{"id": "d1", "children": []}]}`,
	})

	res := callTool(t, s, "list_collections", nil)
	require.False(t, res.IsError, res.Text)
	assert.Contains(t, res.Text, `"total_collections": 1`)

	res = callTool(t, s, "get_collection", map[string]any{"collection_id": "c1"})
	require.False(t, res.IsError, res.Text)
	assert.Contains(t, res.Text, `"field": "index"`)

	res = callTool(t, s, "get_collection_documents", map[string]any{"collection_id": "c1"})
	require.False(t, res.IsError, res.Text)
	assert.JSONEq(t, `{"collection_id": "c1", "document_tree": [{"id": "d1", "children": []}]}`, res.Text)
}

func TestUserDocumentTools(t *testing.T) {
	s, fake := newTestServer(t, map[string]string{
		"documents.drafts": `{"ok": true, "data": [{"id": "d1"}]}`,
		"documents.viewed": `{"ok": true, "data": [{"id": "d2"}, {"id": "d3"}]}`,
		"auth.info":        `{"ok": true, "data": {"user": {"name": "John Doe"}, "team": {"name": "Acme"}}}`,
	})

	res := callTool(t, s, "list_draft_documents", map[string]any{"date_filter": "week"})
	require.False(t, res.IsError, res.Text)
	assert.Contains(t, res.Text, `"total_drafts": 1`)
	body, _ := fake.body("documents.drafts")
	assert.Equal(t, "week", body["dateFilter"])

	res = callTool(t, s, "list_recently_viewed_documents", map[string]any{"limit": 2})
	require.False(t, res.IsError, res.Text)
	assert.Contains(t, res.Text, `"total_viewed": 2`)

	res = callTool(t, s, "get_auth_info", nil)
	require.False(t, res.IsError, res.Text)
	assert.Contains(t, res.Text, `"name": "John Doe"`)
	body, _ = fake.body("auth.info")
	assert.Empty(t, body)
}

func TestToolErrors(t *testing.T) {
	tests := []struct {
		name      string
		tool      string
		args      map[string]any
		responses map[string]string
		contains  string
	}{
		{
			name:      "api error",
			tool:      "get_document",
			args:      map[string]any{"document_id": "invalid"},
			responses: map[string]string{"documents.info": `{"ok": false, "error": "Not Found"}`},
			contains:  "Outline API error: Not Found",
		},
		{
			name:     "missing required argument",
			tool:     "get_document",
			args:     map[string]any{},
			contains: "document_id",
		},
		{
			name:     "blank query",
			tool:     "search_documents",
			args:     map[string]any{"query": ""},
			contains: "query",
		},
		{
			name:     "wrongly typed argument",
			tool:     "search_documents",
			args:     map[string]any{"query": "q", "limit": "many"},
			contains: "invalid arguments",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestServer(t, tt.responses)

			res := callTool(t, s, tt.tool, tt.args)

			assert.True(t, res.IsError)
			assert.Contains(t, res.Text, tt.contains)
		})
	}
}

func TestToolErrors_TransportFailure(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := api.URL
	api.Close()

	client, err := outline.NewClient(outline.Config{BaseURL: baseURL, APIToken: "test_token"})
	require.NoError(t, err)
	defer client.Close()

	s := New(client, hclog.NewNullLogger())

	res := callTool(t, s, "search_documents", map[string]any{"query": "q"})

	assert.True(t, res.IsError)
	assert.Contains(t, res.Text, "Failed to call Outline API")
	assert.NotContains(t, res.Text, "Outline API error")
}
