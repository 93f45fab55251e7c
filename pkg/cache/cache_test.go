package cache

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	// Set does nothing (no error)
	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	// Delete does nothing (no error)
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	// Miss before set
	_, hit, err := c.Get(ctx, "layout:abc")
	if err != nil || hit {
		t.Fatalf("expected clean miss, hit=%v err=%v", hit, err)
	}

	// Set then hit
	if err := c.Set(ctx, "layout:abc", []byte("boxes"), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, "layout:abc")
	if err != nil || !hit {
		t.Fatalf("expected hit, hit=%v err=%v", hit, err)
	}
	if string(data) != "boxes" {
		t.Errorf("data = %q, want %q", data, "boxes")
	}

	// Expired entries are treated as misses
	if err := c.Set(ctx, "layout:old", []byte("stale"), -time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "layout:old"); hit {
		t.Error("expired entry should miss")
	}

	// Delete removes; deleting again is fine
	if err := c.Delete(ctx, "layout:abc"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "layout:abc"); hit {
		t.Error("deleted entry should miss")
	}
	if err := c.Delete(ctx, "layout:abc"); err != nil {
		t.Errorf("Delete of missing key: %v", err)
	}
}

func TestHash(t *testing.T) {
	// Test determinism
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	// Test different inputs produce different hashes
	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// Test hash length (SHA-256 produces 64 hex chars)
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	// ManifestKey should include options in hash
	mk1 := k.ManifestKey("fp1", ManifestKeyOpts{Recursive: true})
	mk2 := k.ManifestKey("fp1", ManifestKeyOpts{Recursive: false})
	if mk1 == mk2 {
		t.Error("Different ManifestKeyOpts should produce different keys")
	}
	if !strings.HasPrefix(mk1, "manifest:") {
		t.Errorf("ManifestKey prefix unexpected: %s", mk1)
	}

	// LayoutKey varies with geometry options
	lk1 := k.LayoutKey("hash123", LayoutKeyOpts{ContainerWidth: 1200, TargetRowHeight: 320})
	lk2 := k.LayoutKey("hash123", LayoutKeyOpts{ContainerWidth: 1440, TargetRowHeight: 320})
	if lk1 == lk2 {
		t.Error("Different container widths should produce different keys")
	}
	lk3 := k.LayoutKey("otherhash", LayoutKeyOpts{ContainerWidth: 1200, TargetRowHeight: 320})
	if lk1 == lk3 {
		t.Error("Different manifest hashes should produce different keys")
	}

	// ArtifactKey varies with format
	ak1 := k.ArtifactKey("layouthash", ArtifactKeyOpts{Format: "svg"})
	ak2 := k.ArtifactKey("layouthash", ArtifactKeyOpts{Format: "html"})
	if ak1 == ak2 {
		t.Error("Different formats should produce different keys")
	}
}

func TestScopedKeyer(t *testing.T) {
	inner := NewDefaultKeyer()
	scoped := NewScopedKeyer(inner, "iceland:")

	got := scoped.LayoutKey("h", LayoutKeyOpts{ContainerWidth: 800})
	want := "iceland:" + inner.LayoutKey("h", LayoutKeyOpts{ContainerWidth: 800})
	if got != want {
		t.Errorf("scoped key = %s, want %s", got, want)
	}

	// Nil inner falls back to the default keyer
	fallback := NewScopedKeyer(nil, "p:")
	if !strings.HasPrefix(fallback.ManifestKey("f", ManifestKeyOpts{}), "p:manifest:") {
		t.Error("nil inner keyer should use DefaultKeyer")
	}
}
