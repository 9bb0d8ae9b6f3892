package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	config, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Unexpected error for missing file: %v", err)
	}

	if len(config.CORS.AllowedOrigins) != 1 || config.CORS.AllowedOrigins[0] != "*" {
		t.Errorf("Expected default allowed origins ['*'], got %v", config.CORS.AllowedOrigins)
	}
	if config.Migration.ArticlesCollection != "articles" {
		t.Errorf("Expected default articles collection, got %q", config.Migration.ArticlesCollection)
	}
	if config.Migration.SubscribersCollection != "subscribers" {
		t.Errorf("Expected default subscribers collection, got %q", config.Migration.SubscribersCollection)
	}
}

func TestLoad_ParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	content := `
cors:
  allowed_origins:
    - https://lexwire.example
    - https://staging.lexwire.example
migration:
  articles_collection: legal_articles
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	config, err := Load(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(config.CORS.AllowedOrigins) != 2 {
		t.Fatalf("Expected 2 allowed origins, got %d", len(config.CORS.AllowedOrigins))
	}
	if config.CORS.AllowedOrigins[0] != "https://lexwire.example" {
		t.Errorf("Expected first origin preserved, got %q", config.CORS.AllowedOrigins[0])
	}
	if config.Migration.ArticlesCollection != "legal_articles" {
		t.Errorf("Expected articles collection override, got %q", config.Migration.ArticlesCollection)
	}
	if config.Migration.SubscribersCollection != "subscribers" {
		t.Errorf("Expected subscribers collection default, got %q", config.Migration.SubscribersCollection)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	if err := os.WriteFile(path, []byte("cors: [::bad"), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Expected error for malformed YAML")
	}
}

func TestLoad_EmptyOriginRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	content := `
cors:
  allowed_origins:
    - https://lexwire.example
    - ""
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Expected error for empty allowed origin")
	}
}
