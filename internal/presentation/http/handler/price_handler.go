package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sonsardina/framing-api/internal/application/service"
	"github.com/sonsardina/framing-api/internal/domain/entity"
	"github.com/sonsardina/framing-api/internal/domain/enum"
	"github.com/sonsardina/framing-api/internal/domain/pricing"
	"github.com/sonsardina/framing-api/internal/domain/repository"
	"github.com/sonsardina/framing-api/internal/presentation/http/dto/request"
	"github.com/sonsardina/framing-api/internal/presentation/http/dto/response"
	"github.com/sonsardina/framing-api/pkg/pagination"
)

// PriceHandler handles price list HTTP requests
type PriceHandler struct {
	listPriceService *service.ListPriceService
	moldLoader       *service.MoldPriceLoader
	uploadMaxSize    int64
}

// NewPriceHandler creates a new price handler
func NewPriceHandler(listPriceService *service.ListPriceService, moldLoader *service.MoldPriceLoader, uploadMaxSize int64) *PriceHandler {
	return &PriceHandler{
		listPriceService: listPriceService,
		moldLoader:       moldLoader,
		uploadMaxSize:    uploadMaxSize,
	}
}

// priceView is a list price with its display label
type priceView struct {
	entity.ListPrice
	TypeLabel   string `json:"type_label"`
	PriceString string `json:"price_string"`
}

func newPriceView(p *entity.ListPrice) priceView {
	return priceView{
		ListPrice:   *p,
		TypeLabel:   p.Type.Label(),
		PriceString: pricing.PriceString(p),
	}
}

type formulaView struct {
	Formula enum.PricingFormula `json:"formula"`
	Label   string              `json:"label"`
	Suffix  string              `json:"suffix"`
}

// List handles listing price list entries
func (h *PriceHandler) List(c *gin.Context) {
	var filter request.ListPriceFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.ListPriceFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search: strings.TrimSpace(filter.Search),
	}
	if filter.Type != "" {
		t := enum.PricingType(strings.ToUpper(filter.Type))
		if !t.IsValid() {
			response.BadRequest(c, "Invalid type")
			return
		}
		params.Type = &t
	}

	result, err := h.listPriceService.ListListPrices(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	views := make([]priceView, 0, len(result.Items))
	for i := range result.Items {
		views = append(views, newPriceView(&result.Items[i]))
	}
	response.SuccessWithPagination(c, http.StatusOK, "Prices retrieved successfully",
		pagination.NewPaginatedResult(views, result.Pagination))
}

// Formulas handles listing the formulas an entry can use
func (h *PriceHandler) Formulas(c *gin.Context) {
	formulas := make([]formulaView, 0, len(enum.AllPricingFormulas))
	for _, f := range enum.AllPricingFormulas {
		formulas = append(formulas, formulaView{Formula: f, Label: f.Label(), Suffix: f.Suffix()})
	}
	response.OK(c, "Formulas retrieved successfully", formulas)
}

// Get handles getting a single entry
func (h *PriceHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "internal_id")
	if !ok {
		return
	}

	price, err := h.listPriceService.GetListPrice(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Price retrieved successfully", newPriceView(price))
}

// Create handles entry creation
func (h *PriceHandler) Create(c *gin.Context) {
	var req request.ListPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	price, err := h.listPriceService.CreateListPrice(c.Request.Context(), req.ToInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Price created successfully", newPriceView(price))
}

// Update handles entry updates
func (h *PriceHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "internal_id")
	if !ok {
		return
	}

	var req request.ListPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	price, err := h.listPriceService.UpdateListPrice(c.Request.Context(), id, req.ToInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Price updated successfully", newPriceView(price))
}

// Delete handles entry deletion
func (h *PriceHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "internal_id")
	if !ok {
		return
	}

	if err := h.listPriceService.DeleteListPrice(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Price deleted successfully", nil)
}

// ImportMolds replaces the mold catalog with an uploaded spreadsheet
func (h *PriceHandler) ImportMolds(c *gin.Context) {
	if h.uploadMaxSize > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.uploadMaxSize)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "A spreadsheet must be uploaded in the file field")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "Could not read the uploaded file")
		return
	}
	defer file.Close()

	stats, err := h.moldLoader.Import(c.Request.Context(), file)
	if err != nil {
		_ = c.Error(err)
		response.BadRequest(c, "Could not import molds: "+err.Error())
		return
	}

	response.OK(c, "Molds imported successfully", stats)
}
