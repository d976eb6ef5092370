package handlers

import (
	"errors"
	"net/http"

	request "piscinas_xpto/internal/adapter/http/dto/request"
	response "piscinas_xpto/internal/adapter/http/dto/response"
	"piscinas_xpto/internal/usecase"
	"piscinas_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidBudgetPayload = pkg.NewDomainErrorSimple("INVALID_BUDGET_INPUT", "Invalid budget payload", http.StatusBadRequest)
)

// BudgetHandler handles HTTP requests for pool budget quotes.

type BudgetHandler struct {
	usecase usecase.IBudgetUseCase
}

func NewBudgetHandler(uc usecase.IBudgetUseCase) *BudgetHandler {
	return &BudgetHandler{usecase: uc}
}

// CreateBudget godoc
// @Summary      Generate a priced pool budget
// @Description  Runs the full pricing pipeline over the pool dimensions and questionnaire answers and persists the resulting quote.
// @Tags         budgets
// @Accept       json
// @Produce      json
// @Param        budget  body      request.BudgetRequest  true  "Pricing request"
// @Success      201     {object}  response.BudgetResponse
// @Failure      400     {object}  pkg.HTTPError
// @Failure      500     {object}  pkg.HTTPError
// @Router       /budgets [post]
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	var payload request.BudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	dims, err := payload.ResolveDimensions()
	if err != nil {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_DIMENSIONS", err.Error(), http.StatusBadRequest).ToHTTPError())
		return
	}

	budget, err := h.usecase.GenerateBudget(c.Request.Context(), payload.Client, dims, payload.ResolveAnswers())
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBudget(budget))
}

// GetBudget godoc
// @Summary      Fetch a stored budget by id
// @Tags         budgets
// @Produce      json
// @Param        id   path      string  true  "Budget ID"
// @Success      200  {object}  response.BudgetResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /budgets/{id} [get]
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	budget, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudget(budget))
}

// SwapFamilyItem godoc
// @Summary      Swap a family line item for an alternative
// @Description  Replaces previous_key with selected_key inside the submitted family items, preserving list position and quantity.
// @Tags         budgets
// @Accept       json
// @Produce      json
// @Param        swap  body      request.SwapRequest  true  "Swap directive"
// @Success      200   {object}  response.SwapResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /budgets/swap [post]
func (h *BudgetHandler) SwapFamilyItem(c *gin.Context) {
	var payload request.SwapRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	swapped := h.usecase.SwapFamily(payload.Items, payload.SelectedKey, payload.PreviousKey)

	c.JSON(http.StatusOK, response.SwapResponse{Family: payload.Family, Items: swapped})
}

func mapBudgetError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDimensions), errors.Is(err, usecase.ErrInvalidBudgetID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBudgetNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_FOUND", "Budget not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
