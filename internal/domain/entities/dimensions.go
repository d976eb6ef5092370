package entities

// Dimensions holds the raw pool measures, in meters.
//
// The HTTP layer is responsible for rejecting non-positive values before the
// engine runs; the engine assumes sanitized input.
type Dimensions struct {
	Comprimento float64 `json:"comprimento"`
	Largura     float64 `json:"largura"`
	ProfMin     float64 `json:"prof_min"`
	ProfMax     float64 `json:"prof_max"`
}

// SurfaceArea is the water plan area (comprimento × largura).
func (d Dimensions) SurfaceArea() float64 {
	return d.Comprimento * d.Largura
}

func (d Dimensions) Valid() bool {
	return d.Comprimento > 0 && d.Largura > 0 && d.ProfMin > 0 && d.ProfMax > 0
}

// Metrics are the derived geometric quantities, immutable once computed from
// Dimensions. Every value is a deterministic function of the four inputs.
//
// M2Tela is only meaningful while TelaDisponivel is true: liner area is
// undefined for pools deeper than 1.65 m and consumers must treat the metric
// as absent, not as zero.
type Metrics struct {
	ProfMedia      float64 `json:"prof_media"`
	Volume         float64 `json:"volume"`
	M3H            float64 `json:"m3_h"`
	M2Paredes      float64 `json:"m2_paredes"`
	M2Fundo        float64 `json:"m2_fundo"`
	M3Massa        float64 `json:"m3_massa"`
	Perimetro      float64 `json:"perimetro"`
	M2Tela         float64 `json:"m2_tela"`
	TelaDisponivel bool    `json:"tela_disponivel"`
	ErroTela       string  `json:"erro_tela,omitempty"`
	MLBordadura    float64 `json:"ml_bordadura"`
	RolosTL        int     `json:"rolos_tl"`
	Rolos3D        int     `json:"rolos_3d"`
}
