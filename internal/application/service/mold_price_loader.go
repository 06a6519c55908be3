package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/sonsardina/framing-api/internal/domain/entity"
	"github.com/sonsardina/framing-api/internal/domain/enum"
	"github.com/sonsardina/framing-api/internal/domain/pricing"
	"github.com/sonsardina/framing-api/internal/domain/repository"
	"github.com/sonsardina/framing-api/internal/infrastructure/metrics"
	"github.com/sonsardina/framing-api/pkg/utils"
	"github.com/xuri/excelize/v2"
)

// DefaultMoldSheet is the sheet holding every mold price
const DefaultMoldSheet = "TODAS"

// Spreadsheet columns, zero based: A internal id, B external id, H price
const (
	moldColInternalID = 0
	moldColExternalID = 1
	moldColPrice      = 7
)

// MoldImportStats summarises one spreadsheet import
type MoldImportStats struct {
	Parsed   int `json:"parsed"`
	Upserted int `json:"upserted"`
	Deleted  int `json:"deleted"`
	Skipped  int `json:"skipped"`
}

// MoldPriceLoader replaces the MOLD entries of the price list from a spreadsheet
type MoldPriceLoader struct {
	listPriceRepo repository.ListPriceRepository
	sheetName     string
}

// NewMoldPriceLoader creates a new mold price loader
func NewMoldPriceLoader(listPriceRepo repository.ListPriceRepository, sheetName string) *MoldPriceLoader {
	if sheetName == "" {
		sheetName = DefaultMoldSheet
	}
	return &MoldPriceLoader{
		listPriceRepo: listPriceRepo,
		sheetName:     sheetName,
	}
}

// ParseWorkbook reads mold entries from an xlsx stream. Rows with a blank
// id part or an unparseable price are skipped. A repeated id keeps the
// last row.
func (l *MoldPriceLoader) ParseWorkbook(r io.Reader) ([]entity.ListPrice, int, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(l.sheetName)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read sheet %s: %w", l.sheetName, err)
	}

	var (
		prices  []entity.ListPrice
		index   = make(map[string]int)
		skipped int
	)
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		if len(row) <= moldColPrice {
			skipped++
			continue
		}

		internalID := strings.TrimSpace(row[moldColInternalID])
		externalID := strings.TrimSpace(row[moldColExternalID])
		rawPrice := strings.TrimSpace(row[moldColPrice])
		if internalID == "" || externalID == "" || rawPrice == "" {
			skipped++
			continue
		}

		price, err := utils.ParseDecimal(rawPrice)
		if err != nil || price.IsNegative() {
			log.Printf("Warning: skipping mold row %d, invalid price %q", i+1, rawPrice)
			skipped++
			continue
		}

		entry := entity.ListPrice{
			ID:              internalID + "_" + externalID,
			Type:            enum.PricingTypeMold,
			Formula:         enum.PricingFormulaNone,
			Price:           pricing.RoundUpCents(price),
			DiscountAllowed: true,
		}
		if at, ok := index[entry.ID]; ok {
			prices[at] = entry
			continue
		}
		index[entry.ID] = len(prices)
		prices = append(prices, entry)
	}

	return prices, skipped, nil
}

// Import parses the workbook and reconciles the catalog in one transaction:
// MOLD ids missing from the sheet are deleted and every parsed entry is
// upserted. A failed write leaves the catalog untouched.
func (l *MoldPriceLoader) Import(ctx context.Context, r io.Reader) (*MoldImportStats, error) {
	prices, skipped, err := l.ParseWorkbook(r)
	if err != nil {
		return nil, err
	}
	if len(prices) == 0 {
		return nil, fmt.Errorf("no mold prices found in sheet %s", l.sheetName)
	}

	deleted, err := l.listPriceRepo.ReplaceByType(ctx, enum.PricingTypeMold, prices)
	if err != nil {
		return nil, fmt.Errorf("failed to replace mold prices: %w", err)
	}

	metrics.AddMoldRows("upserted", len(prices))
	metrics.AddMoldRows("deleted", deleted)
	metrics.AddMoldRows("skipped", skipped)

	stats := &MoldImportStats{
		Parsed:   len(prices),
		Upserted: len(prices),
		Deleted:  deleted,
		Skipped:  skipped,
	}
	log.Printf("Mold prices imported: %d upserted, %d deleted, %d skipped", stats.Upserted, stats.Deleted, stats.Skipped)
	return stats, nil
}
