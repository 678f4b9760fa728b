package barcode

import (
	"fmt"
	"net/url"
	"path"
	"regexp"
	"strings"
)

// Result is a decoded stock label.
type Result struct {
	SKU    string
	Format string // "code128", "qr" or "url"
}

// LabelPrefix starts the payload of QR stock labels, e.g. GEMTRADE:GEM-000012.
const LabelPrefix = "GEMTRADE:"

const maxSKULength = 40

var skuPattern = regexp.MustCompile(`^[A-Z0-9][A-Z0-9._-]*$`)

// Parse reads the text a scanner produced for a stock label. Three label
// styles are accepted: a bare SKU (Code 128), a GEMTRADE:<sku> QR payload
// and a URL whose sku query parameter or last path segment is the SKU.
// Scanner noise (AIM symbology identifiers, GS separators, line endings) is
// removed first.
func Parse(code string) (*Result, error) {
	code = clean(code)
	if code == "" {
		return nil, fmt.Errorf("barcode is empty")
	}

	result := &Result{Format: "code128"}
	switch {
	case strings.HasPrefix(strings.ToUpper(code), LabelPrefix):
		result.Format = "qr"
		code = code[len(LabelPrefix):]
	case strings.HasPrefix(code, "http://") || strings.HasPrefix(code, "https://"):
		sku, err := skuFromURL(code)
		if err != nil {
			return nil, err
		}
		result.Format = "url"
		code = sku
	}

	sku := strings.ToUpper(strings.TrimSpace(code))
	if len(sku) > maxSKULength {
		return nil, fmt.Errorf("barcode too long for a SKU (%d characters)", len(sku))
	}
	if !skuPattern.MatchString(sku) {
		return nil, fmt.Errorf("barcode %q is not a valid SKU", sku)
	}
	result.SKU = sku
	return result, nil
}

// Label returns the QR payload printed for sku.
func Label(sku string) string {
	return LabelPrefix + strings.ToUpper(sku)
}

func clean(code string) string {
	code = strings.TrimSpace(code)
	// AIM symbology identifier, e.g. "]C0" or "]Q1"
	if len(code) >= 3 && code[0] == ']' {
		code = code[3:]
	}
	code = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, code)
	return strings.TrimSpace(code)
}

func skuFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("barcode URL is malformed: %w", err)
	}
	if sku := u.Query().Get("sku"); sku != "" {
		return sku, nil
	}
	last := path.Base(strings.TrimSuffix(u.Path, "/"))
	if last == "" || last == "/" || last == "." {
		return "", fmt.Errorf("barcode URL %q carries no SKU", raw)
	}
	return last, nil
}
