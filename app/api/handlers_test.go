package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/brokerdesk/leadparse/app/extract"
)

func newTestServer() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewServer(NewHandler(extract.NewDispatcher()))
}

func TestParseLeadEmptyBody(t *testing.T) {
	server := newTestServer()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/parse", strings.NewReader(""))
	server.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 for empty body, got %d", w.Code)
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["error"] != "No email content provided." {
		t.Errorf("Unexpected error message: %v", resp["error"])
	}
}

func TestParseLeadJSONBodyPrecedence(t *testing.T) {
	server := newTestServer()

	payload := `{"body": "New inquiry from BizBuySell\nContact Name: Jane Doe\nContact Phone: (555) 123-4567"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/parse", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	server.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["source"] != "bizbuysell" {
		t.Errorf("Expected JSON body field parsed, got source %v", resp["source"])
	}

	contact, _ := resp["contact"].(map[string]interface{})
	if contact["first_name"] != "Jane" {
		t.Errorf("Unexpected contact: %v", contact)
	}
}

func TestParseLeadRawBody(t *testing.T) {
	server := newTestServer()

	body := "Lead from businessbroker.net\nFirst Name: Dana\nLast Name: Investor\nEmail: dana@example.com"
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/parse", strings.NewReader(body))
	server.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["source"] != "businessbroker" {
		t.Errorf("Unexpected source: %v", resp["source"])
	}
}

func TestParseLeadUnknownGarbageSchemaComplete(t *testing.T) {
	server := newTestServer()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/parse", strings.NewReader("\x00garbage\xffbytes"))
	server.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 for garbage input, got %d", w.Code)
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["source"] != "unknown" {
		t.Errorf("Unexpected source: %v", resp["source"])
	}
	for _, group := range []string{"contact", "address", "listing", "details"} {
		if _, ok := resp[group].(map[string]interface{}); !ok {
			t.Errorf("Expected group %q present, got %v", group, resp[group])
		}
	}
}

func TestGetHealth(t *testing.T) {
	server := newTestServer()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	server.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", w.Code)
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["ok"] != true {
		t.Errorf("Expected ok true, got %v", resp["ok"])
	}
}

func TestGetStatsCountsParses(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest("POST", "/api/parse", strings.NewReader("bizbuysell lead\nContact Name: A B"))
	server.ServeHTTP(httptest.NewRecorder(), req)

	w := httptest.NewRecorder()
	server.ServeHTTP(w, httptest.NewRequest("GET", "/stats", nil))

	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}

	total, _ := resp["parsed_total"].(float64)
	if total != 1 {
		t.Errorf("Expected 1 parse recorded, got %v", resp["parsed_total"])
	}

	bySource, _ := resp["parsed_by_source"].(map[string]interface{})
	if bySource["bizbuysell"] != float64(1) {
		t.Errorf("Expected bizbuysell count 1, got %v", bySource)
	}
}

func TestRequestIDHeader(t *testing.T) {
	server := newTestServer()

	w := httptest.NewRecorder()
	server.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("Expected generated X-Request-ID header")
	}

	w = httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	server.ServeHTTP(w, req)
	if got := w.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Errorf("Expected caller-provided request ID echoed, got %q", got)
	}
}
