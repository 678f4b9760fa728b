package parsers

import (
	"io"
	"strings"
	"testing"
)

func TestSkipBOM(t *testing.T) {
	r := SkipBOM(strings.NewReader("\xEF\xBB\xBFtype"))
	b, _ := io.ReadAll(r)
	if string(b) != "type" {
		t.Errorf("expected BOM stripped, got %q", b)
	}
	r = SkipBOM(strings.NewReader("ab"))
	b, _ = io.ReadAll(r)
	if string(b) != "ab" {
		t.Errorf("expected short input untouched, got %q", b)
	}
}

func TestParseInventoryCSV(t *testing.T) {
	data := "\xEF\xBB\xBFSKU,Type,Carat,Quantity,Price Per Carat,selling-price,Certified,Origin\n" +
		"R-1,Ruby,1.2,3,50000,65000,yes,Burma\n" +
		",Emerald,2,1.5,10000,,0,Colombia\n" +
		"X-1,,1,1,1,1,1,Nowhere\n"
	parsed, err := ParseInventoryCSV(strings.NewReader(data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(parsed.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(parsed.Items))
	}
	ruby := parsed.Items[0]
	if ruby.SKU != "R-1" || ruby.Type != "Ruby" || ruby.PricePerCarat != "50000" || ruby.SellingPrice != "65000" || !ruby.Certified {
		t.Errorf("unexpected ruby: %+v", ruby)
	}
	if parsed.Items[1].Certified || parsed.Items[1].SKU != "" {
		t.Errorf("unexpected emerald: %+v", parsed.Items[1])
	}
	if len(parsed.Skipped) != 1 || !strings.Contains(parsed.Skipped[0], "line 4") {
		t.Errorf("expected line 4 skipped, got %v", parsed.Skipped)
	}
}

func TestParseInventoryCSVMissingHeader(t *testing.T) {
	if _, err := ParseInventoryCSV(strings.NewReader("sku,type\nA,Ruby\n")); err == nil {
		t.Error("expected error for missing quantity header")
	}
	if _, err := ParseInventoryCSV(strings.NewReader("")); err == nil {
		t.Error("expected error for empty file")
	}
}

func TestParseClientCSV(t *testing.T) {
	data := "name,client_type,city\nAsha Jewels,Jeweler,Jaipur\n,Temple,Madurai\nShiv Mandir,Temple,Varanasi\n"
	clients, skipped, err := ParseClientCSV(strings.NewReader(data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(clients) != 2 || clients[1].Name != "Shiv Mandir" || clients[1].City != "Varanasi" {
		t.Errorf("unexpected clients: %+v", clients)
	}
	if len(skipped) != 1 {
		t.Errorf("expected one skipped row, got %v", skipped)
	}
}
