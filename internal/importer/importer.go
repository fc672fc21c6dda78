package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"shop-api/internal/domain"
)

type ProductWriter interface {
	Upsert(ctx context.Context, product domain.Product) (*domain.Product, error)
}

// CSVImporter reads catalog CSV exports and inserts/updates products.
// Expected headers: name, description, price_cents, stock, image.
type CSVImporter struct {
	reader      *csv.Reader
	productRepo ProductWriter
}

func NewCSVImporter(r io.Reader, repo ProductWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:      csvr,
		productRepo: repo,
	}
}

// Run parses CSV rows and upserts one product per row. Rows without a name
// are skipped. Returns the number of imported products.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	imported := 0
	line := 1
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}
		line++

		product, err := parseRow(record, index)
		if err != nil {
			return imported, fmt.Errorf("row %d: %w", line, err)
		}
		if product == nil {
			continue
		}

		if _, err := i.productRepo.Upsert(ctx, *product); err != nil {
			return imported, fmt.Errorf("upsert %s: %w", product.Name, err)
		}
		imported++
	}

	return imported, nil
}

func headerIndex(headers []string) map[string]int {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return index
}

func parseRow(record []string, index map[string]int) (*domain.Product, error) {
	name := strings.TrimSpace(field(record, index, "name"))
	if name == "" {
		return nil, nil
	}

	priceRaw := strings.TrimSpace(field(record, index, "price_cents"))
	price, err := strconv.ParseInt(priceRaw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse price_cents %q: %w", priceRaw, err)
	}
	if price < 0 {
		return nil, fmt.Errorf("negative price_cents %d", price)
	}

	stock := 0
	if stockRaw := strings.TrimSpace(field(record, index, "stock")); stockRaw != "" {
		stock, err = strconv.Atoi(stockRaw)
		if err != nil {
			return nil, fmt.Errorf("parse stock %q: %w", stockRaw, err)
		}
		if stock < 0 {
			return nil, fmt.Errorf("negative stock %d", stock)
		}
	}

	return &domain.Product{
		Name:        name,
		Description: strings.TrimSpace(field(record, index, "description")),
		PriceCents:  price,
		Stock:       stock,
		Image:       strings.TrimSpace(field(record, index, "image")),
	}, nil
}

func field(record []string, index map[string]int, name string) string {
	i, ok := index[name]
	if !ok || i >= len(record) {
		return ""
	}
	return record[i]
}
