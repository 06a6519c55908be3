package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sonsardina/framing-api/internal/domain/entity"
	"github.com/sonsardina/framing-api/internal/domain/enum"
	"github.com/sonsardina/framing-api/internal/domain/pricing"
	"github.com/sonsardina/framing-api/pkg/apperror"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func intPtr(v int) *int {
	return &v
}

func testCatalog() *memListPriceRepo {
	return newMemListPriceRepo(
		entity.ListPrice{ID: "g1", Type: enum.PricingTypeGlass, Formula: enum.PricingFormulaArea, Price: dec("4"), DiscountAllowed: true},
		entity.ListPrice{ID: "b1", Type: enum.PricingTypeBack, Formula: enum.PricingFormulaLinear, Price: dec("2"), Description: "Trasera DM", DiscountAllowed: true},
		entity.ListPrice{ID: "pp1", Type: enum.PricingTypePP, Formula: enum.PricingFormulaFitArea, DiscountAllowed: true,
			Areas: []entity.AreaBracket{{D1: 100, D2: 80, Price: dec("18")}, {D1: 50, D2: 40, Price: dec("10")}}},
		entity.ListPrice{ID: "A1_M22", Type: enum.PricingTypeMold, Formula: enum.PricingFormulaNone, Price: dec("3"), DiscountAllowed: true},
		entity.ListPrice{ID: "hook", Type: enum.PricingTypeOther, Formula: enum.PricingFormulaNone, Price: dec("10"), DiscountAllowed: true},
		entity.ListPrice{ID: "assembly", Type: enum.PricingTypeLabour, Formula: enum.PricingFormulaNone, Price: dec("6.5"), Description: "Montaje sencillo"},
		entity.ListPrice{ID: "small", Type: enum.PricingTypeGlass, Formula: enum.PricingFormulaArea, Price: dec("4"),
			MaxD1: intPtr(40), MaxD2: intPtr(30), Description: "Cristal pequeño", DiscountAllowed: true},
	)
}

func newTestPricingService(repo *memListPriceRepo) *PricingService {
	return NewPricingService(repo, pricing.NewEngine(pricing.DefaultIVA), FabricEntry(dec("20"), dec("8")))
}

func newTestCalculatedItemService(repo *memListPriceRepo) (*CalculatedItemService, *memCalculatedItemRepo) {
	calcRepo := newMemCalculatedItemRepo()
	return NewCalculatedItemService(newTestPricingService(repo), calcRepo, 4), calcRepo
}

func TestCalculatePart(t *testing.T) {
	svc := newTestPricingService(testCatalog())
	ctx := context.Background()

	tests := []struct {
		name            string
		part            entity.PartToCalculate
		width, height   float64
		wantPrice       string
		wantDescription string
		wantDiscount    bool
	}{
		{"glass by area", entity.PartToCalculate{ID: "g1", Type: enum.PricingTypeGlass, Quantity: 1}, 50, 100, "2", "Cristal g1", true},
		{"back linear", entity.PartToCalculate{ID: "b1", Type: enum.PricingTypeBack, Quantity: 2}, 50, 30, "3.2", "Trasera DM", true},
		{"pp fit", entity.PartToCalculate{ID: "pp1", Type: enum.PricingTypePP, Quantity: 1}, 45.7, 60.2, "18", "Passepartout pp1", true},
		{"mold", entity.PartToCalculate{ID: "A1_M22", Type: enum.PricingTypeMold, Quantity: 1}, 40, 30, "4.2", "Ubi: A1 - Moldura: M22", true},
		{"fabric built in", entity.PartToCalculate{ID: "anything", Type: enum.PricingTypeFabric, Quantity: 1}, 100, 50, "10", "Estirar tela", true},
		{"fabric min price", entity.PartToCalculate{ID: FabricID, Type: enum.PricingTypeFabric, Quantity: 1}, 20, 20, "8", "Estirar tela", true},
		{"labour flat", entity.PartToCalculate{ID: "assembly", Type: enum.PricingTypeLabour}, 20, 20, "6.5", "Montaje sencillo", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.CalculatePart(ctx, tt.part, tt.width, tt.height)
			if err != nil {
				t.Fatalf("CalculatePart() error = %v", err)
			}
			if !got.Price.Equal(dec(tt.wantPrice)) {
				t.Fatalf("CalculatePart() price = %s, want %s", got.Price, tt.wantPrice)
			}
			if got.Description != tt.wantDescription {
				t.Fatalf("CalculatePart() description = %q, want %q", got.Description, tt.wantDescription)
			}
			if got.DiscountAllowed != tt.wantDiscount {
				t.Fatalf("CalculatePart() discount allowed = %v, want %v", got.DiscountAllowed, tt.wantDiscount)
			}
			if got.PriceID != tt.part.ID {
				t.Fatalf("CalculatePart() price id = %q, want %q", got.PriceID, tt.part.ID)
			}
			wantQty := tt.part.Quantity
			if wantQty < 1 {
				wantQty = 1
			}
			if got.Quantity != wantQty {
				t.Fatalf("CalculatePart() quantity = %d, want %d", got.Quantity, wantQty)
			}
		})
	}
}

func TestCalculatePartErrors(t *testing.T) {
	svc := newTestPricingService(testCatalog())
	ctx := context.Background()

	_, err := svc.CalculatePart(ctx, entity.PartToCalculate{ID: "missing", Type: enum.PricingTypeGlass}, 50, 50)
	var notFound *pricing.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("CalculatePart(missing) error = %v, want NotFoundError", err)
	}

	_, err = svc.CalculatePart(ctx, entity.PartToCalculate{ID: "small", Type: enum.PricingTypeGlass}, 50, 20)
	var sizeErr *pricing.SizeError
	if !errors.As(err, &sizeErr) {
		t.Fatalf("CalculatePart(small 50x20) error = %v, want SizeError", err)
	}
	if want := "Dimensiones máximas superadas para Cristal pequeño (small). Max: 40x30"; sizeErr.Error() != want {
		t.Fatalf("SizeError = %q, want %q", sizeErr.Error(), want)
	}

	_, err = svc.CalculatePart(ctx, entity.PartToCalculate{ID: "pp1", Type: enum.PricingTypePP}, 120, 90)
	var formulaErr *pricing.FormulaError
	if !errors.As(err, &formulaErr) {
		t.Fatalf("CalculatePart(pp1 120x90) error = %v, want FormulaError", err)
	}

	_, err = svc.CalculatePart(ctx, entity.PartToCalculate{ID: "x", Type: "WOOD"}, 50, 50)
	var typeErr *pricing.InvalidTypeError
	if !errors.As(err, &typeErr) {
		t.Fatalf("CalculatePart(WOOD) error = %v, want InvalidTypeError", err)
	}
}

func TestCreateCalculatedItemDiscountAndExtras(t *testing.T) {
	svc, _ := newTestCalculatedItemService(testCatalog())
	order := &entity.Order{ID: uuid.New()}
	item := &entity.Item{
		ID:               uuid.New(),
		Width:            30,
		Height:           30,
		Quantity:         1,
		PartsToCalculate: []entity.PartToCalculate{{ID: "hook", Type: enum.PricingTypeOther, Quantity: 2}},
	}
	extras := []entity.CalculatedItemPart{{Price: dec("5"), Quantity: 1, Description: "Colgador", DiscountAllowed: false}}

	got, err := svc.CreateCalculatedItem(context.Background(), order, item, 20, extras)
	if err != nil {
		t.Fatalf("CreateCalculatedItem() error = %v", err)
	}
	if !got.Total.Equal(dec("21")) {
		t.Fatalf("CreateCalculatedItem() total = %s, want 21.00", got.Total.StringFixed(2))
	}
	if got.OrderID != order.ID || got.ItemID != item.ID || got.Discount != 20 {
		t.Fatalf("CreateCalculatedItem() = %+v, want order, item and discount copied", got)
	}
	if len(got.Parts) != 2 {
		t.Fatalf("CreateCalculatedItem() parts = %d, want 2", len(got.Parts))
	}
	if got.Parts[1].PriceID != entity.OtherExtraID {
		t.Fatalf("extra part price id = %q, want %q", got.Parts[1].PriceID, entity.OtherExtraID)
	}
	if d := got.ExtraDescriptions(); len(d) != 1 || d[0] != "Colgador" {
		t.Fatalf("ExtraDescriptions() = %v", d)
	}
}

func TestCreateCalculatedItemWorkingAndTotalDimensions(t *testing.T) {
	svc, _ := newTestCalculatedItemService(testCatalog())
	item := &entity.Item{
		ID:     uuid.New(),
		Width:  100,
		Height: 80,
		PP:     5,
		PartsToCalculate: []entity.PartToCalculate{
			{ID: "g1", Type: enum.PricingTypeGlass, Quantity: 1},
			{ID: "A1_M22", Type: enum.PricingTypeMold, Quantity: 1},
		},
	}

	got, err := svc.CreateCalculatedItem(context.Background(), &entity.Order{ID: uuid.New()}, item, 0, nil)
	if err != nil {
		t.Fatalf("CreateCalculatedItem() error = %v", err)
	}

	// glass on the 90x70 aperture: 0.63 m2 * 4
	if !got.Parts[0].Price.Equal(dec("2.52")) {
		t.Fatalf("glass price = %s, want 2.52", got.Parts[0].Price)
	}
	// mold on the 100x80 exterior: 3.6 m * 3
	if !got.Parts[1].Price.Equal(dec("10.8")) {
		t.Fatalf("mold price = %s, want 10.80", got.Parts[1].Price)
	}
	if !got.Total.Equal(dec("13.32")) {
		t.Fatalf("total = %s, want 13.32", got.Total)
	}

	ew, eh := 120.0, 100.0
	item.ExteriorWidth, item.ExteriorHeight = &ew, &eh
	got, err = svc.CreateCalculatedItem(context.Background(), &entity.Order{ID: uuid.New()}, item, 0, nil)
	if err != nil {
		t.Fatalf("CreateCalculatedItem() with exterior error = %v", err)
	}
	if !got.Parts[1].Price.Equal(dec("13.2")) {
		t.Fatalf("mold price with exterior = %s, want 13.20", got.Parts[1].Price)
	}
}

func TestCreateCalculatedItemBoundsMoldOnTotalSize(t *testing.T) {
	repo := newMemListPriceRepo(
		entity.ListPrice{ID: "A1_M40", Type: enum.PricingTypeMold, Formula: enum.PricingFormulaNone, Price: dec("3"),
			MaxD1: intPtr(100), MaxD2: intPtr(80)},
	)
	svc, _ := newTestCalculatedItemService(repo)
	ctx := context.Background()

	tests := []struct {
		name    string
		width   float64
		height  float64
		wantErr bool
	}{
		{"exterior at the limit", 100, 80, false},
		// the 95x70 aperture fits, the 105x80 exterior does not
		{"exterior over the limit", 105, 80, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := &entity.Item{
				ID:     uuid.New(),
				Width:  tt.width,
				Height: tt.height,
				PP:     5,
				PartsToCalculate: []entity.PartToCalculate{
					{ID: "A1_M40", Type: enum.PricingTypeMold, Quantity: 1},
				},
			}
			_, err := svc.CreateCalculatedItem(ctx, &entity.Order{ID: uuid.New()}, item, 0, nil)
			var sizeErr *pricing.SizeError
			if got := errors.As(err, &sizeErr); got != tt.wantErr {
				t.Fatalf("CreateCalculatedItem() error = %v, want size error %v", err, tt.wantErr)
			}
		})
	}
}

func TestCreateCalculatedItemAbortsOnFailure(t *testing.T) {
	svc, calcRepo := newTestCalculatedItemService(testCatalog())
	item := &entity.Item{
		ID:     uuid.New(),
		Width:  60,
		Height: 60,
		PartsToCalculate: []entity.PartToCalculate{
			{ID: "g1", Type: enum.PricingTypeGlass, Quantity: 1},
			{ID: "small", Type: enum.PricingTypeGlass, Quantity: 1},
			{ID: "hook", Type: enum.PricingTypeOther, Quantity: 1},
		},
	}

	got, err := svc.CreateCalculatedItem(context.Background(), &entity.Order{ID: uuid.New()}, item, 0, nil)
	var sizeErr *pricing.SizeError
	if !errors.As(err, &sizeErr) {
		t.Fatalf("CreateCalculatedItem() error = %v, want SizeError", err)
	}
	if got != nil {
		t.Fatalf("CreateCalculatedItem() = %+v, want nil on failure", got)
	}
	if len(calcRepo.items) != 0 {
		t.Fatalf("calculated items stored = %d, want 0", len(calcRepo.items))
	}
}

func TestCreateCalculatedItemManyParts(t *testing.T) {
	svc, _ := newTestCalculatedItemService(testCatalog())
	item := &entity.Item{ID: uuid.New(), Width: 30, Height: 20, Quantity: 2}
	for i := 0; i < 40; i++ {
		item.PartsToCalculate = append(item.PartsToCalculate, entity.PartToCalculate{ID: "hook", Type: enum.PricingTypeOther, Quantity: 1})
	}

	got, err := svc.CreateCalculatedItem(context.Background(), &entity.Order{ID: uuid.New()}, item, 10, nil)
	if err != nil {
		t.Fatalf("CreateCalculatedItem() error = %v", err)
	}
	if len(got.Parts) != 40 {
		t.Fatalf("parts = %d, want 40", len(got.Parts))
	}
	for i, p := range got.Parts {
		if p.PriceID != "hook" {
			t.Fatalf("part %d price id = %q, want hook", i, p.PriceID)
		}
	}
	// 40 * 10 * 0.9 * 2
	if !got.Total.Equal(dec("720")) {
		t.Fatalf("total = %s, want 720", got.Total)
	}
}

func TestCreateCalculatedItemRejectsDiscount(t *testing.T) {
	svc, _ := newTestCalculatedItemService(testCatalog())
	item := &entity.Item{ID: uuid.New(), Width: 30, Height: 30}

	for _, discount := range []int{-1, 101} {
		_, err := svc.CreateCalculatedItem(context.Background(), &entity.Order{}, item, discount, nil)
		if !apperror.IsAppError(err) {
			t.Fatalf("CreateCalculatedItem(discount %d) error = %v, want AppError", discount, err)
		}
	}
}

func TestCalculatedItemSnapshots(t *testing.T) {
	svc, _ := newTestCalculatedItemService(testCatalog())
	ctx := context.Background()
	itemID := uuid.New()

	if _, err := svc.GetCalculatedItem(ctx, itemID); !apperror.IsAppError(err) {
		t.Fatalf("GetCalculatedItem(missing) error = %v, want not found", err)
	}

	for i, total := range []string{"10", "12.5"} {
		err := svc.SaveCalculatedItem(ctx, &entity.CalculatedItem{ItemID: itemID, Total: dec(total)})
		if err != nil {
			t.Fatalf("SaveCalculatedItem(%d) error = %v", i, err)
		}
	}

	got, err := svc.GetCalculatedItem(ctx, itemID)
	if err != nil {
		t.Fatalf("GetCalculatedItem() error = %v", err)
	}
	if !got.Total.Equal(dec("12.5")) {
		t.Fatalf("GetCalculatedItem() total = %s, want the latest snapshot", got.Total)
	}
}

func ExampleNormalizeExtraParts() {
	parts := NormalizeExtraParts([]entity.CalculatedItemPart{{Price: decimal.NewFromInt(3), Description: "Anilla"}})
	fmt.Println(parts[0].PriceID, parts[0].Quantity)
	// Output: other_extra 1
}
