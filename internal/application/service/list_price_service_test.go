package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/sonsardina/framing-api/internal/domain/entity"
	"github.com/sonsardina/framing-api/internal/domain/enum"
	"github.com/sonsardina/framing-api/internal/domain/repository"
	"github.com/sonsardina/framing-api/pkg/apperror"
	"github.com/sonsardina/framing-api/pkg/pagination"
)

func boolPtr(v bool) *bool {
	return &v
}

func TestCleanFormValues(t *testing.T) {
	input := &ListPriceInput{
		Formula: enum.PricingFormulaFitArea,
		Price:   dec("12"),
		Areas:   []entity.AreaBracket{{D1: 40, D2: 50, Price: dec("10")}},
		AreasM2: []entity.AreaM2Bracket{{A: dec("1"), Price: dec("3")}},
		MaxD1:   intPtr(100),
	}
	CleanFormValues(input)
	if !input.Price.IsZero() || input.AreasM2 != nil || len(input.Areas) != 1 {
		t.Fatalf("CleanFormValues(FIT_AREA) = %+v", input)
	}
	if input.MaxD1 != nil || input.MaxD2 != nil {
		t.Fatalf("CleanFormValues() kept a half max pair: %v %v", input.MaxD1, input.MaxD2)
	}

	input = &ListPriceInput{
		Formula: enum.PricingFormulaArea,
		Price:   dec("12"),
		Areas:   []entity.AreaBracket{{D1: 40, D2: 50, Price: dec("10")}},
		MaxD1:   intPtr(100),
		MaxD2:   intPtr(120),
	}
	CleanFormValues(input)
	if !input.Price.Equal(dec("12")) || input.Areas != nil {
		t.Fatalf("CleanFormValues(AREA) = %+v", input)
	}
	if input.MaxD1 == nil || input.MaxD2 == nil {
		t.Fatal("CleanFormValues(AREA) dropped a full max pair")
	}
}

func TestCreateListPrice(t *testing.T) {
	repo := newMemListPriceRepo()
	svc := NewListPriceService(repo)
	ctx := context.Background()

	price, err := svc.CreateListPrice(ctx, &ListPriceInput{
		ID:          "pp-blanco",
		Type:        enum.PricingTypePP,
		Formula:     enum.PricingFormulaFitArea,
		Price:       dec("9"),
		Description: " Passepartout blanco ",
		Areas: []entity.AreaBracket{
			{D1: 80, D2: 100, Price: dec("18")},
			{D1: 50, D2: 40, Price: dec("10")},
		},
	})
	if err != nil {
		t.Fatalf("CreateListPrice() error = %v", err)
	}
	if price.InternalID == uuid.Nil {
		t.Fatal("CreateListPrice() did not assign an internal id")
	}
	if !price.Price.IsZero() {
		t.Fatalf("CreateListPrice() price = %s, want 0 for FIT_AREA", price.Price)
	}
	if price.Areas[0].D1 != 50 || price.Areas[1].D1 != 100 || price.Areas[1].D2 != 80 {
		t.Fatalf("CreateListPrice() areas = %+v, want sorted and ordered", price.Areas)
	}
	if !price.DiscountAllowed {
		t.Fatal("CreateListPrice() discount allowed = false, want default true")
	}
	if price.Description != "Passepartout blanco" {
		t.Fatalf("CreateListPrice() description = %q", price.Description)
	}

	_, err = svc.CreateListPrice(ctx, &ListPriceInput{
		ID: "pp-blanco", Type: enum.PricingTypePP, Formula: enum.PricingFormulaNone, Description: "dup",
	})
	if appErr := apperror.GetAppError(err); appErr.Code != http.StatusConflict {
		t.Fatalf("CreateListPrice(duplicate) error = %v, want conflict", err)
	}
}

func TestCreateListPriceValidation(t *testing.T) {
	svc := NewListPriceService(newMemListPriceRepo())

	tests := []struct {
		name  string
		input ListPriceInput
		field string
	}{
		{"space in id", ListPriceInput{ID: "a b", Type: enum.PricingTypeGlass, Formula: enum.PricingFormulaNone, Description: "x"}, "id"},
		{"no description", ListPriceInput{ID: "g", Type: enum.PricingTypeGlass, Formula: enum.PricingFormulaNone}, "description"},
		{"mold not creatable", ListPriceInput{ID: "A_1", Type: enum.PricingTypeMold, Formula: enum.PricingFormulaNone, Description: "x"}, "type"},
		{"unknown formula", ListPriceInput{ID: "g", Type: enum.PricingTypeGlass, Formula: "CUBE", Description: "x"}, "formula"},
		{"negative price", ListPriceInput{ID: "g", Type: enum.PricingTypeGlass, Formula: enum.PricingFormulaNone, Price: dec("-1"), Description: "x"}, "price"},
		{"fit without brackets", ListPriceInput{ID: "g", Type: enum.PricingTypeGlass, Formula: enum.PricingFormulaFitArea, Description: "x"}, "areas"},
		{"fit m2 bad bracket", ListPriceInput{ID: "g", Type: enum.PricingTypeGlass, Formula: enum.PricingFormulaFitAreaM2, Description: "x",
			AreasM2: []entity.AreaM2Bracket{{A: dec("0"), Price: dec("1")}}}, "areas_m2[0]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := tt.input
			_, err := svc.CreateListPrice(context.Background(), &input)
			appErr := apperror.GetAppError(err)
			if appErr.Code != http.StatusUnprocessableEntity {
				t.Fatalf("CreateListPrice() error = %v, want validation error", err)
			}
			found := false
			for _, fe := range appErr.Errors {
				if fe.Field == tt.field {
					found = true
				}
			}
			if !found {
				t.Fatalf("CreateListPrice() field errors = %+v, want %s", appErr.Errors, tt.field)
			}
		})
	}
}

func TestUpdateAndDeleteListPrice(t *testing.T) {
	repo := newMemListPriceRepo(
		entity.ListPrice{ID: "A1_M22", Type: enum.PricingTypeMold, Formula: enum.PricingFormulaNone, Price: dec("3"), DiscountAllowed: true},
		entity.ListPrice{ID: "g1", Type: enum.PricingTypeGlass, Formula: enum.PricingFormulaArea, Price: dec("4"), Description: "Cristal"},
		entity.ListPrice{ID: "g2", Type: enum.PricingTypeGlass, Formula: enum.PricingFormulaArea, Price: dec("5"), Description: "Cristal 2"},
	)
	svc := NewListPriceService(repo)
	ctx := context.Background()

	mold, _ := repo.GetByTypeAndID(ctx, enum.PricingTypeMold, "A1_M22")
	updated, err := svc.UpdateListPrice(ctx, mold.InternalID, &ListPriceInput{
		ID: "A1_M22", Type: enum.PricingTypeMold, Formula: enum.PricingFormulaNone,
		Price: dec("3.5"), Description: "Moldura roble", DiscountAllowed: boolPtr(false),
	})
	if err != nil {
		t.Fatalf("UpdateListPrice(mold) error = %v", err)
	}
	if !updated.Price.Equal(dec("3.5")) || updated.DiscountAllowed {
		t.Fatalf("UpdateListPrice(mold) = %+v", updated)
	}

	g1, _ := repo.GetByTypeAndID(ctx, enum.PricingTypeGlass, "g1")
	_, err = svc.UpdateListPrice(ctx, g1.InternalID, &ListPriceInput{
		ID: "g2", Type: enum.PricingTypeGlass, Formula: enum.PricingFormulaArea, Price: dec("4"), Description: "Cristal",
	})
	if appErr := apperror.GetAppError(err); appErr.Code != http.StatusConflict {
		t.Fatalf("UpdateListPrice(rename onto g2) error = %v, want conflict", err)
	}

	if _, err := svc.UpdateListPrice(ctx, uuid.New(), &ListPriceInput{}); apperror.GetAppError(err).Code != http.StatusNotFound {
		t.Fatalf("UpdateListPrice(missing) error = %v, want not found", err)
	}

	if err := svc.DeleteListPrice(ctx, g1.InternalID); err != nil {
		t.Fatalf("DeleteListPrice() error = %v", err)
	}
	if _, err := svc.GetListPrice(ctx, g1.InternalID); apperror.GetAppError(err).Code != http.StatusNotFound {
		t.Fatalf("GetListPrice(deleted) error = %v, want not found", err)
	}
}

func TestListListPrices(t *testing.T) {
	repo := newMemListPriceRepo(
		entity.ListPrice{ID: "g1", Type: enum.PricingTypeGlass, Description: "Cristal"},
		entity.ListPrice{ID: "g2", Type: enum.PricingTypeGlass, Description: "Cristal mate"},
		entity.ListPrice{ID: "b1", Type: enum.PricingTypeBack, Description: "Trasera"},
	)
	svc := NewListPriceService(repo)

	glass := enum.PricingTypeGlass
	result, err := svc.ListListPrices(context.Background(), &repository.ListPriceFilterParams{
		Type:       &glass,
		Pagination: &pagination.PaginationParams{Page: 1, PerPage: 1},
	})
	if err != nil {
		t.Fatalf("ListListPrices() error = %v", err)
	}
	if len(result.Items) != 1 || result.Pagination.Total != 2 || !result.Pagination.HasNext {
		t.Fatalf("ListListPrices() = %+v items, pagination %+v", result.Items, result.Pagination)
	}

	result, err = svc.ListListPrices(context.Background(), &repository.ListPriceFilterParams{Search: "mate"})
	if err != nil {
		t.Fatalf("ListListPrices(search) error = %v", err)
	}
	if len(result.Items) != 1 || result.Items[0].ID != "g2" {
		t.Fatalf("ListListPrices(search) = %+v", result.Items)
	}
}
