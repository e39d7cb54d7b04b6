package whois

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleServers = `{
	"com": {"host": "whois.verisign-grs.com", "query": "= $addr\r\n", "punycode": true},
	"org": "whois.pir.org",
	"ru": "whois.tcinet.ru:43",
	"_": {
		"ip": {"host": "whois.arin.net", "query": "n + $addr\r\n"}
	}
}`

func TestFromBytes_StringEntry(t *testing.T) {
	w, err := FromBytes([]byte(sampleServers))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	srv := w.Server("org")
	if srv == nil {
		t.Fatal("Expected server for 'org'")
	}
	if srv.Host != "whois.pir.org" {
		t.Errorf("Expected host 'whois.pir.org', got %q", srv.Host)
	}
	if srv.Query != DefaultQuery {
		t.Errorf("Expected default query %q, got %q", DefaultQuery, srv.Query)
	}
	if srv.Punycode {
		t.Error("Expected punycode to default to false")
	}
}

func TestFromBytes_ObjectEntry(t *testing.T) {
	w, err := FromBytes([]byte(sampleServers))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	srv := w.Server("com")
	if srv == nil {
		t.Fatal("Expected server for 'com'")
	}
	if srv.Host != "whois.verisign-grs.com" {
		t.Errorf("Expected host 'whois.verisign-grs.com', got %q", srv.Host)
	}
	if srv.Query != "= $addr\r\n" {
		t.Errorf("Expected custom query to be kept, got %q", srv.Query)
	}
	if !srv.Punycode {
		t.Error("Expected punycode to be true")
	}
}

func TestFromBytes_SpecialTargets(t *testing.T) {
	w, err := FromBytes([]byte(sampleServers))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	srv := w.IPServer()
	if srv == nil {
		t.Fatal("Expected special 'ip' target")
	}
	if srv.Host != "whois.arin.net" {
		t.Errorf("Expected host 'whois.arin.net', got %q", srv.Host)
	}
	if !strings.Contains(srv.Query, "$addr") {
		t.Errorf("Expected query to contain $addr, got %q", srv.Query)
	}
}

func TestServer_Lookup(t *testing.T) {
	w, err := FromBytes([]byte(sampleServers))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	tests := []struct {
		name  string
		zone  string
		found bool
	}{
		{"Exact zone", "com", true},
		{"Uppercase zone", "COM", true},
		{"Leading dot", ".org", true},
		{"Unknown zone", "dev", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := w.Server(tt.zone)
			if tt.found && srv == nil {
				t.Errorf("Expected server for zone %q", tt.zone)
			}
			if !tt.found && srv != nil {
				t.Errorf("Expected no server for zone %q, got %q", tt.zone, srv.Host)
			}
		})
	}
}

func TestServer_Target(t *testing.T) {
	tests := []struct {
		name     string
		host     string
		expected string
	}{
		{"Host without port", "whois.arin.net", "whois.arin.net:43"},
		{"Host with port", "whois.tcinet.ru:43", "whois.tcinet.ru:43"},
		{"Host with custom port", "whois.example.net:4343", "whois.example.net:4343"},
		{"Bare IPv4", "192.0.2.1", "192.0.2.1:43"},
		{"Bare IPv6", "2001:db8::1", "[2001:db8::1]:43"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := &Server{Host: tt.host}
			if got := srv.Target(); got != tt.expected {
				t.Errorf("Target() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestFromBytes_ValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Missing host", `{"com": {"query": "$addr\r\n"}}`},
		{"Query without placeholder", `{"com": {"host": "whois.example.com", "query": "hello\r\n"}}`},
		{"Host with bad port", `{"com": "whois.example.com:0"}`},
		{"Host with garbage", `{"com": "not a hostname!"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromBytes([]byte(tt.input))
			if err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}

func TestFromBytes_BadShapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Not JSON", `{broken`},
		{"Entry is a number", `{"com": 42}`},
		{"Special is not an object", `{"_": "whois.example.com"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromBytes([]byte(tt.input))
			if err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestValidationErrors_Error(t *testing.T) {
	ve := ValidationErrors{
		{ItemName: "com", FieldPath: "host", Message: "field is required"},
	}

	msg := ve.Error()
	if !strings.Contains(msg, "[com]") || !strings.Contains(msg, "host") {
		t.Errorf("Expected error text to name item and field, got %q", msg)
	}
}

func TestFromPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "servers.json")

	if err := os.WriteFile(path, []byte(sampleServers), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	w, err := FromPath(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if w.Len() != 4 {
		t.Errorf("Expected 4 entries, got %d", w.Len())
	}
}

func TestFromPath_NonExistentFile(t *testing.T) {
	_, err := FromPath("/non/existent/servers.json")
	if err == nil {
		t.Error("Expected error for non-existent file")
	}
}

func TestFromPath_InvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "servers.json")

	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	_, err := FromPath(path)
	if err == nil {
		t.Fatal("Expected error for invalid JSON")
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("Expected error to name the file, got %v", err)
	}
}
