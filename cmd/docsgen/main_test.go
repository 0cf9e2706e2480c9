package main

import (
	"strings"
	"testing"

	"github.com/appengine-ltd/deep-mine/internal/items"
)

func TestItemsDocListsCatalog(t *testing.T) {
	doc := generateItemsDoc(items.DefaultCatalog())
	for _, want := range []string{"Total items: **6**", "| default-pickaxe | Default Pickaxe | common | yes | default |", "| dynamite | Dynamite | rare | no | drag |"} {
		if !strings.Contains(doc.Content, want) {
			t.Fatalf("expected items doc to contain %q, got:\n%s", want, doc.Content)
		}
	}
}

func TestNumberFormatsDocRoundTrips(t *testing.T) {
	doc := generateNumberFormatsDoc()
	for _, want := range []string{"| 1500000 | 1,500,000 | 1.5M | 1500000 |", "| 999999 | 999,999 | 999.9K | 999900 |"} {
		if !strings.Contains(doc.Content, want) {
			t.Fatalf("expected number doc to contain %q, got:\n%s", want, doc.Content)
		}
	}
}

func TestEscapePipes(t *testing.T) {
	if got := escape(" a|b\nc "); got != "a\\|b<br>c" {
		t.Fatalf("unexpected escape result %q", got)
	}
}
