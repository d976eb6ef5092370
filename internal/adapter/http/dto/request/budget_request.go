package request

import (
	"errors"

	"piscinas_xpto/internal/domain/entities"
)

var (
	ErrInvalidDimensions = errors.New("invalid pool dimensions")
	ErrDepthOrder        = errors.New("prof_max must be at least prof_min")
)

type DimensionsRequest struct {
	Comprimento float64 `json:"comprimento" binding:"required"`
	Largura     float64 `json:"largura" binding:"required"`
	ProfMin     float64 `json:"prof_min" binding:"required"`
	ProfMax     float64 `json:"prof_max" binding:"required"`
}

// BudgetRequest is the full pricing request: who the quote is for, the pool
// measures and the flat questionnaire payload.
type BudgetRequest struct {
	Client     map[string]string `json:"client"`
	Dimensions DimensionsRequest `json:"dimensions" binding:"required"`
	Answers    map[string]any    `json:"answers"`
}

func (r BudgetRequest) ResolveDimensions() (entities.Dimensions, error) {
	d := entities.Dimensions{
		Comprimento: r.Dimensions.Comprimento,
		Largura:     r.Dimensions.Largura,
		ProfMin:     r.Dimensions.ProfMin,
		ProfMax:     r.Dimensions.ProfMax,
	}
	if !d.Valid() {
		return entities.Dimensions{}, ErrInvalidDimensions
	}
	if d.ProfMax < d.ProfMin {
		return entities.Dimensions{}, ErrDepthOrder
	}
	return d, nil
}

func (r BudgetRequest) ResolveAnswers() entities.Answers {
	if r.Answers == nil {
		return entities.Answers{}
	}
	return entities.Answers(r.Answers)
}

// SwapRequest asks the engine to replace one line item of a family with one
// of its advertised alternatives, in place.
type SwapRequest struct {
	Family      string          `json:"family" binding:"required"`
	SelectedKey string          `json:"selected_key" binding:"required"`
	PreviousKey string          `json:"previous_key" binding:"required"`
	Items       entities.Family `json:"items" binding:"required"`
}
