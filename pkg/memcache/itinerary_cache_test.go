package memcache

import (
	"testing"
	"time"

	"safar/internal/models/response_models"
)

func TestStartFinishGeneration(t *testing.T) {
	cache := NewItineraryCache()

	if !cache.StartGeneration("s1") {
		t.Fatal("first start should succeed")
	}
	if cache.StartGeneration("s1") {
		t.Fatal("second start for the same key should be refused")
	}
	if !cache.StartGeneration("s2") {
		t.Fatal("a different key should not be blocked")
	}

	cache.FinishGeneration("s1")
	if !cache.StartGeneration("s1") {
		t.Fatal("start after finish should succeed")
	}
}

func TestPutGetExpiry(t *testing.T) {
	cache := NewItineraryCache()
	packages := []response_models.ItineraryPackage{{ID: "p1", Title: "Trip"}}

	cache.Put("s1", packages, time.Minute)
	got, ok := cache.Get("s1")
	if !ok || len(got) != 1 || got[0].ID != "p1" {
		t.Fatalf("Get = %v, %v", got, ok)
	}

	if _, ok := cache.Get("missing"); ok {
		t.Fatal("missing key should not be found")
	}

	cache.Put("s2", packages, -time.Second)
	if _, ok := cache.Get("s2"); ok {
		t.Fatal("expired entry should not be returned")
	}
}
