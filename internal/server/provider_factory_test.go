package server

import (
	"testing"

	"sports-gateway/internal/config"
	"sports-gateway/internal/providers/fixture"
	"sports-gateway/internal/providers/thesportsdb"
	"sports-gateway/internal/testutil"
)

func TestProviderFactoryBuildsWithDefaults(t *testing.T) {
	factory := newProviderFactory(nil, nil)
	prov := factory.build(config.Config{Provider: config.ProviderConfig{Name: "fixture"}})
	if prov == nil {
		t.Fatalf("expected provider")
	}
}

func TestSelectProvider(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		check    func(any) bool
	}{
		{"empty uses fixture", "", func(p any) bool { _, ok := p.(*fixture.Provider); return ok }},
		{"fixture", "fixture", func(p any) bool { _, ok := p.(*fixture.Provider); return ok }},
		{"unknown falls back", "unknown", func(p any) bool { _, ok := p.(*fixture.Provider); return ok }},
		{"thesportsdb", "TheSportsDB", func(p any) bool { _, ok := p.(*thesportsdb.Client); return ok }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, _ := testutil.NewBufferLogger()
			p := selectProvider(config.Config{Provider: config.ProviderConfig{
				Name:    tt.provider,
				BaseURL: "http://example.com",
				APIKey:  "key",
			}}, logger)
			if !tt.check(p) {
				t.Fatalf("unexpected provider type %T", p)
			}
		})
	}
}

func TestNormalizeProviderName(t *testing.T) {
	if got := normalizeProviderName("TheSportsDB", nil); got != "thesportsdb" {
		t.Fatalf("expected lower-cased name, got %s", got)
	}
	if got := normalizeProviderName("", fixture.New("UTC")); got != "fixture" {
		t.Fatalf("expected fixture name, got %s", got)
	}
	if got := normalizeProviderName("", thesportsdb.NewClient(thesportsdb.Config{})); got != "thesportsdb" {
		t.Fatalf("expected thesportsdb name, got %s", got)
	}
	if got := normalizeProviderName("", testutil.EmptyProvider{}); got != "testutil.emptyprovider" {
		t.Fatalf("expected derived type name, got %s", got)
	}
	if got := normalizeProviderName("", nil); got != "provider" {
		t.Fatalf("expected default name, got %s", got)
	}
}
