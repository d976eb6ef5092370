package entities

import "time"

// ItemRole represents how a line item participates in the quote.
//
// Domain notes:
//   - incluido counts towards totals and is the default selection.
//   - alternativo is a priced substitute, excluded from totals until the
//     swap engine promotes it.
//   - opcional is a user-togglable add-on, zero quantity by default.
type ItemRole string

const (
	RoleIncluido    ItemRole = "incluido"
	RoleAlternativo ItemRole = "alternativo"
	RoleOpcional    ItemRole = "opcional"
)

// AlternativeRef is a swap candidate advertised on a principal line item.
type AlternativeRef struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// LineItem is one priced row of a family. Key is stable within the family
// and list position is meaningful: the swap engine replaces items in place.
type LineItem struct {
	Key           string           `json:"key"`
	Name          string           `json:"name"`
	Price         float64          `json:"price"`
	Quantity      float64          `json:"quantity"`
	Unit          string           `json:"unit"`
	Role          ItemRole         `json:"item_type"`
	Reasoning     string           `json:"reasoning"`
	CanChangeType bool             `json:"can_change_type"`
	ProductID     int              `json:"product_id,omitempty"`
	AlternativeTo string           `json:"alternative_to,omitempty"`
	Alternatives  []AlternativeRef `json:"alternatives,omitempty"`

	// Manually-priced custom entries (ceramic coating placeholders).
	EditableName  bool `json:"editable_name,omitempty"`
	EditablePrice bool `json:"editable_price,omitempty"`
	EditableCost  bool `json:"editable_cost,omitempty"`

	// Pack items render indented under the item that triggered them.
	PackParent string `json:"pack_parent,omitempty"`
	IsPackItem bool   `json:"is_pack_item,omitempty"`
	PackStyle  string `json:"pack_style,omitempty"`
}

// CountsTowardsTotal reports whether the item contributes to the family
// subtotal: alternatives never do, and neither does a zero quantity.
func (li LineItem) CountsTowardsTotal() bool {
	return li.Quantity > 0 && (li.Role == RoleIncluido || li.Role == RoleOpcional)
}

// Family is an ordered list of line items. Order is display order and must
// survive swaps.
type Family []LineItem

// Index returns the position of key in the family, or -1.
func (f Family) Index(key string) int {
	for i, li := range f {
		if li.Key == key {
			return i
		}
	}
	return -1
}

func (f Family) Get(key string) (LineItem, bool) {
	if i := f.Index(key); i >= 0 {
		return f[i], true
	}
	return LineItem{}, false
}

// FamilyKey is the fixed internal name of a pricing family.
type FamilyKey string

const (
	FamilyFiltracao      FamilyKey = "filtracao"
	FamilyRecirculacao   FamilyKey = "recirculacao_iluminacao"
	FamilyTratamentoAgua FamilyKey = "tratamento_agua"
	FamilyRevestimento   FamilyKey = "revestimento"
	FamilyAquecimento    FamilyKey = "aquecimento"
	FamilyConstrucao     FamilyKey = "construcao"
	FamilyConstrucaoLaje FamilyKey = "construcao_laje"
)

// OrderedFamilyKeys is the canonical rendering order of the families.
func OrderedFamilyKeys() []FamilyKey {
	return []FamilyKey{
		FamilyFiltracao,
		FamilyRecirculacao,
		FamilyTratamentoAgua,
		FamilyRevestimento,
		FamilyAquecimento,
		FamilyConstrucao,
		FamilyConstrucaoLaje,
	}
}

// FamilyDisplayNames maps internal family keys to the human-readable names
// shown on the rendered quote.
var FamilyDisplayNames = map[FamilyKey]string{
	FamilyFiltracao:      "Filtração",
	FamilyRecirculacao:   "Recirculação e Iluminação",
	FamilyTratamentoAgua: "Tratamento de Água",
	FamilyRevestimento:   "Revestimento",
	FamilyAquecimento:    "Aquecimento",
	FamilyConstrucao:     "Construção da Piscina",
	FamilyConstrucaoLaje: "Construção da Laje",
}

// MultiplierBreakdown exposes each complexity factor for transparency; the
// factors are user-facing numbers, rounded to 3 decimals.
type MultiplierBreakdown struct {
	Geometrico  float64 `json:"geometrico"`
	Tecnologico float64 `json:"tecnologico"`
	Mercado     float64 `json:"mercado"`
	Final       float64 `json:"final"`
}

// TransportBreakdown itemises the sand/material transport surcharge keyed on
// site access difficulty. The surcharge is additive, applied once after all
// family totals, never folded into the multiplier.
type TransportBreakdown struct {
	Nivel      Acesso  `json:"nivel_acesso"`
	CustoPorM3 float64 `json:"custo_por_m3"`
	CustoFixo  float64 `json:"custo_fixo"`
	M3Massa    float64 `json:"m3_massa"`
	CustoTotal float64 `json:"custo_total"`
}

// Budget is the full priced quote document. It is created fresh per pricing
// request and never partially mutated by the engine.
type Budget struct {
	ID                  string                `json:"id"`
	ClientData          map[string]string     `json:"client_data,omitempty"`
	Dimensions          Dimensions            `json:"dimensions"`
	Metrics             Metrics               `json:"metrics"`
	Answers             Answers               `json:"answers"`
	Multiplier          float64               `json:"multiplier"`
	MultiplierBreakdown MultiplierBreakdown   `json:"multiplier_breakdown"`
	Transport           TransportBreakdown    `json:"transport_costs"`
	Families            map[FamilyKey]Family  `json:"families"`
	FamilyDisplayMap    map[FamilyKey]string  `json:"family_display_map"`
	FamilyTotals        map[FamilyKey]float64 `json:"family_totals"`
	SubtotalProducts    float64               `json:"subtotal_products"`
	TransportCost       float64               `json:"transport_cost"`
	TotalPrice          float64               `json:"total_price"`
	CreatedAt           time.Time             `json:"created_at"`
	UpdatedAt           time.Time             `json:"updated_at"`
}
