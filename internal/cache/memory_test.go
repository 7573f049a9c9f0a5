package cache

import "testing"

func TestMemoryCache_SetGet(t *testing.T) {
	c := NewMemoryCache()

	page := Page{Body: []byte("<html>hello</html>"), ContentType: "text/html"}
	key := Key("https://example.com/page")

	if _, found := c.Get(key); found {
		t.Error("Expected miss before set")
	}

	c.Set(key, page)

	got, found := c.Get(key)
	if !found {
		t.Fatal("Expected hit after set")
	}
	if string(got.Body) != string(page.Body) {
		t.Errorf("Expected body %q, got %q", page.Body, got.Body)
	}
	if got.ContentType != "text/html" {
		t.Errorf("Expected content type text/html, got %s", got.ContentType)
	}
}

func TestMemoryCache_Clear(t *testing.T) {
	c := NewMemoryCache()
	key := Key("https://example.com/page")
	c.Set(key, Page{Body: []byte("x")})

	c.Clear()

	if _, found := c.Get(key); found {
		t.Error("Expected miss after clear")
	}
}

func TestKey_StableAndDistinct(t *testing.T) {
	a := Key("https://example.com/a")
	b := Key("https://example.com/b")

	if a != Key("https://example.com/a") {
		t.Error("Expected identical keys for identical URLs")
	}
	if a == b {
		t.Error("Expected distinct keys for distinct URLs")
	}
}

func TestPage_IsPDF(t *testing.T) {
	tests := []struct {
		contentType string
		want        bool
	}{
		{"application/pdf", true},
		{"Application/PDF; charset=binary", true},
		{"text/html; charset=utf-8", false},
		{"", false},
	}

	for _, tt := range tests {
		page := Page{ContentType: tt.contentType}
		if got := page.IsPDF(); got != tt.want {
			t.Errorf("IsPDF(%q) = %v, want %v", tt.contentType, got, tt.want)
		}
	}
}
