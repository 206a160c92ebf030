package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"promptvault/internal/config"
)

func TestLocalStorageSave(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir)
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	payload := []byte(`{"count":0}`)
	key, err := store.Save(context.Background(), payload, SaveOptions{
		Category:  "Exports",
		Extension: ".json",
		BaseName:  "prompts 2026",
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.HasPrefix(key, "exports/") || !strings.HasSuffix(key, "/prompts-2026.json") {
		t.Fatalf("unexpected key %q", key)
	}

	got, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(key)))
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	if string(got) != string(payload) {
		t.Fatalf("saved content mismatch: %s", got)
	}

	entries, _ := os.ReadDir(filepath.Dir(filepath.Join(dir, filepath.FromSlash(key))))
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".pending-") {
			t.Fatalf("temporary file left behind: %s", entry.Name())
		}
	}
}

func TestLocalStorageRejectsEmptyAndCancelled(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}
	if _, err := store.Save(context.Background(), nil, SaveOptions{}); err == nil {
		t.Fatal("expected error for empty payload")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := store.Save(ctx, []byte("x"), SaveOptions{}); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func TestBuildObjectPath(t *testing.T) {
	tests := []struct {
		name     string
		category string
		base     string
		ext      string
		prefix   string
		suffix   string
	}{
		{"defaults", "", "", "", "misc/", ".bin"},
		{"sanitised category", "Exp/orts!", "snap", "json", "exports/", "/snap.json"},
		{"dotted extension", "exports", "Snap Shot", ".JSON", "exports/", "/snap-shot.json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildObjectPath(tt.category, tt.base, tt.ext)
			if !strings.HasPrefix(got, tt.prefix) || !strings.HasSuffix(got, tt.suffix) {
				t.Fatalf("buildObjectPath = %q, want prefix %q suffix %q", got, tt.prefix, tt.suffix)
			}
		})
	}
}

func TestLocationAndPrefix(t *testing.T) {
	tests := []struct {
		base, key, want string
	}{
		{"/files", "exports/a.json", "/files/exports/a.json"},
		{"https://cdn.example.com/", "/exports/a.json", "https://cdn.example.com/exports/a.json"},
		{"", "exports/a.json", "exports/a.json"},
		{"/files", "https://bucket.example.com/a.json", "https://bucket.example.com/a.json"},
		{"/files", "  ", ""},
	}
	for _, tt := range tests {
		if got := Location(tt.base, tt.key); got != tt.want {
			t.Errorf("Location(%q, %q) = %q, want %q", tt.base, tt.key, got, tt.want)
		}
	}

	if got := joinPrefix("/vault/", "exports/a.json"); got != "vault/exports/a.json" {
		t.Errorf("joinPrefix = %q", got)
	}
	if got := contentTypeFor(SaveOptions{Extension: "json"}); !strings.HasPrefix(got, "application/json") {
		t.Errorf("contentTypeFor json = %q", got)
	}
	if got := contentTypeFor(SaveOptions{Extension: "json", ContentType: "text/plain"}); got != "text/plain" {
		t.Errorf("explicit content type ignored: %q", got)
	}
}

func TestNewStorage(t *testing.T) {
	store, err := NewStorage(config.Config{StorageType: "none"})
	if err != nil || store != nil {
		t.Fatalf("expected disabled storage, got %v, %v", store, err)
	}

	store, err = NewStorage(config.Config{StorageType: "local", StorageLocalDir: t.TempDir()})
	if err != nil {
		t.Fatalf("NewStorage local: %v", err)
	}
	if _, ok := store.(LocalBaseDirProvider); !ok {
		t.Fatalf("expected local storage, got %T", store)
	}

	if _, err := NewStorage(config.Config{StorageType: "ftp"}); err == nil {
		t.Fatal("expected unsupported storage type to fail")
	}
	if _, err := NewStorage(config.Config{StorageType: "s3"}); err == nil {
		t.Fatal("expected missing S3 bucket to fail")
	}
	if _, err := NewStorage(config.Config{StorageType: "r2", StorageR2Bucket: "b"}); err == nil {
		t.Fatal("expected missing R2 credentials to fail")
	}
}

func TestObjectKeyAndDisposition(t *testing.T) {
	key, err := objectKey(context.Background(), []byte("x"), "vault", SaveOptions{Category: "exports", BaseName: "snap", Extension: "json"})
	if err != nil {
		t.Fatalf("objectKey: %v", err)
	}
	if !strings.HasPrefix(key, "vault/exports/") || !strings.HasSuffix(key, "/snap.json") {
		t.Fatalf("unexpected key %q", key)
	}
	if got := attachmentDisposition(key); got != `attachment; filename="snap.json"` {
		t.Fatalf("attachmentDisposition = %q", got)
	}
	if _, err := objectKey(context.Background(), nil, "", SaveOptions{}); err == nil {
		t.Fatal("expected empty payload error")
	}
}

func TestEndpoints(t *testing.T) {
	tests := []struct {
		name      string
		endpoint  string
		accountID string
		want      string
		wantErr   bool
	}{
		{"explicit endpoint", "r2.example.com/", "", "https://r2.example.com", false},
		{"http endpoint kept", "http://localhost:9000", "acct", "http://localhost:9000", false},
		{"derived from account", "", "abc123", "https://abc123.r2.cloudflarestorage.com", false},
		{"nothing configured", " ", " ", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r2Endpoint(tt.endpoint, tt.accountID)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Fatalf("r2Endpoint = %q, %v; want %q", got, err, tt.want)
			}
		})
	}
}

func TestRemoteStorageConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
	}{
		{"s3 missing bucket", config.Config{StorageType: TypeS3, StorageS3Region: "us-east-1", StorageS3AccessKeyID: "k", StorageS3SecretAccessKey: "s"}},
		{"s3 missing region", config.Config{StorageType: TypeS3, StorageS3Bucket: "b", StorageS3AccessKeyID: "k", StorageS3SecretAccessKey: "s"}},
		{"s3 missing credentials", config.Config{StorageType: TypeS3, StorageS3Bucket: "b", StorageS3Region: "us-east-1"}},
		{"r2 missing endpoint", config.Config{StorageType: TypeR2, StorageR2Bucket: "b", StorageR2AccessKeyID: "k", StorageR2SecretAccessKey: "s"}},
		{"oss missing endpoint", config.Config{StorageType: TypeOSS, StorageOSSBucket: "b", StorageOSSAccessKeyID: "k", StorageOSSAccessKeySecret: "s"}},
		{"oss missing credentials", config.Config{StorageType: TypeOSS, StorageOSSEndpoint: "oss-cn-hangzhou.aliyuncs.com", StorageOSSBucket: "b"}},
		{"cos missing url", config.Config{StorageType: TypeCOS, StorageCOSSecretID: "id", StorageCOSSecretKey: "key"}},
		{"cos invalid url", config.Config{StorageType: TypeCOS, StorageCOSBucketURL: "not a url", StorageCOSSecretID: "id", StorageCOSSecretKey: "key"}},
		{"cos missing credentials", config.Config{StorageType: TypeCOS, StorageCOSBucketURL: "https://b-123.cos.ap-guangzhou.myqcloud.com"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if store, err := NewStorage(tt.cfg); err == nil {
				t.Fatalf("expected configuration error, got %T", store)
			}
		})
	}
}

func TestS3StoragePutsExportObject(t *testing.T) {
	type seen struct {
		method, path, disposition, count, contentType string
	}
	requests := make(chan seen, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		requests <- seen{
			method:      r.Method,
			path:        r.URL.Path,
			disposition: r.Header.Get("Content-Disposition"),
			count:       r.Header.Get("X-Amz-Meta-Prompt-Count"),
			contentType: r.Header.Get("Content-Type"),
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	store, err := NewStorage(config.Config{
		StorageType:              TypeS3,
		StorageS3Bucket:          "vault",
		StorageS3Region:          "us-east-1",
		StorageS3Endpoint:        srv.URL,
		StorageS3AccessKeyID:     "AKIDEXAMPLE",
		StorageS3SecretAccessKey: "secret",
		StorageS3ForcePathStyle:  true,
		StorageS3Prefix:          "backups",
	})
	if err != nil {
		t.Fatalf("NewStorage s3: %v", err)
	}

	key, err := store.Save(context.Background(), []byte(`{"count":2}`), SaveOptions{
		Category:    "exports",
		Extension:   "json",
		BaseName:    "prompts",
		ContentType: "application/json",
		Metadata:    map[string]string{"prompt-count": "2"},
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.HasPrefix(key, "backups/exports/") {
		t.Fatalf("unexpected key %q", key)
	}

	got := <-requests
	if got.method != http.MethodPut || got.path != "/vault/"+key {
		t.Fatalf("unexpected request %s %s", got.method, got.path)
	}
	if got.disposition != `attachment; filename="prompts.json"` {
		t.Fatalf("content disposition = %q", got.disposition)
	}
	if got.count != "2" {
		t.Fatalf("metadata header = %q", got.count)
	}
	if got.contentType != "application/json" {
		t.Fatalf("content type = %q", got.contentType)
	}
}
