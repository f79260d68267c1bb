package cart

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// fieldSeparator separates the fields of a ledger line.
const fieldSeparator = ";"

// On disk, a line is "sku;description;quantity;price;currency": description and
// quantity are swapped compared to the canonical order.
const (
	diskSKU = iota
	diskDescription
	diskQuantity
	diskPrice
	diskCurrency
	diskFields
)

// DecodeLedger reads ledger lines from r and returns them as raw entries, in file order.
//
// Blank lines are skipped. Missing trailing fields are read as empty strings,
// and extra fields are ignored.
func DecodeLedger(r io.Reader) ([]RawEntry, error) {
	var raws []RawEntry
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue // Skip empty lines
		}
		raws = append(raws, decodeLine(line))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return raws, nil
}

func decodeLine(line string) RawEntry {
	fields := strings.Split(line, fieldSeparator)
	for len(fields) < diskFields {
		fields = append(fields, "")
	}
	return RawEntry{
		SKU:         fields[diskSKU],
		Quantity:    fields[diskQuantity],
		Description: fields[diskDescription],
		Price:       fields[diskPrice],
		Currency:    fields[diskCurrency],
	}
}

// EncodeEntry writes a single entry to w as one ledger line, followed by a newline.
//
// Removals are written with empty description, price and currency, keeping all
// separators. Fields containing the separator or a line break are rejected
// before anything is written.
func EncodeEntry(w io.Writer, e Entry) error {
	fields := make([]string, diskFields)
	fields[diskSKU] = e.SKU
	fields[diskQuantity] = strconv.Itoa(e.Quantity)
	if !e.IsRemoval() {
		fields[diskDescription] = e.Description
		fields[diskPrice] = e.UnitPrice.Amount().String()
		fields[diskCurrency] = e.Currency()
	}

	for _, f := range fields {
		if strings.ContainsAny(f, fieldSeparator+"\r\n") {
			return fmt.Errorf("%w: %q cannot contain %q or a line break", ErrValidation, f, fieldSeparator)
		}
	}

	if _, err := io.WriteString(w, strings.Join(fields, fieldSeparator)+"\n"); err != nil {
		return fmt.Errorf("failed to write entry: %w", err)
	}
	return nil
}
