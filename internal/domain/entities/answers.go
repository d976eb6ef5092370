package entities

import (
	"strconv"
	"strings"
)

// Answers is the flat questionnaire payload. Values arrive from the web
// layer as strings, booleans or numbers; the typed accessors below normalize
// them, with every enum falling back to its documented default so an
// unsupported value never breaks product selection.
type Answers map[string]any

func (a Answers) String(key, def string) string {
	v, ok := a[key]
	if !ok {
		return def
	}
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

// Bool reads a flag that may arrive as a real boolean or as the original
// questionnaire's "true"/"sim" strings.
func (a Answers) Bool(key string) bool {
	switch v := a[key].(type) {
	case bool:
		return v
	case string:
		s := strings.ToLower(strings.TrimSpace(v))
		return s == "true" || s == "sim" || s == "1"
	default:
		return false
	}
}

func (a Answers) Float(key string, def float64) float64 {
	switch v := a[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f
		}
	}
	return def
}

// QuantityOverride returns a user-entered quantity for a line item key, if
// the payload carries one under "quantidades".
func (a Answers) QuantityOverride(key string) (float64, bool) {
	raw, ok := a["quantidades"]
	if !ok {
		return 0, false
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return 0, false
	}
	v, ok := m[key]
	if !ok {
		return 0, false
	}
	switch q := v.(type) {
	case float64:
		return q, true
	case int:
		return float64(q), true
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(q), 64); err == nil {
			return f, true
		}
	}
	return 0, false
}

// Forma is the pool shape.
type Forma string

const (
	FormaStandard Forma = "standard"
	FormaEspecial Forma = "especial"
)

func (a Answers) Forma() Forma {
	if Forma(a.String("forma", "")) == FormaEspecial {
		return FormaEspecial
	}
	return FormaStandard
}

// TipoPiscina is the hydraulic pool type.
type TipoPiscina string

const (
	PiscinaSkimmer      TipoPiscina = "skimmer"
	PiscinaEspelhoDagua TipoPiscina = "espelho_dagua"
	PiscinaTransbordo   TipoPiscina = "transbordo"
)

func (a Answers) TipoPiscina() TipoPiscina {
	switch TipoPiscina(a.String("tipo_piscina", "")) {
	case PiscinaEspelhoDagua:
		return PiscinaEspelhoDagua
	case PiscinaTransbordo:
		return PiscinaTransbordo
	default:
		return PiscinaSkimmer
	}
}

// Revestimento is the coating type.
type Revestimento string

const (
	RevestimentoTela     Revestimento = "tela"
	RevestimentoCeramica Revestimento = "ceramica"
)

func (a Answers) Revestimento() Revestimento {
	if Revestimento(a.String("revestimento", "")) == RevestimentoCeramica {
		return RevestimentoCeramica
	}
	return RevestimentoTela
}

// Acesso is the site access difficulty tier driving the transport surcharge.
type Acesso string

const (
	AcessoFacil   Acesso = "facil"
	AcessoMedio   Acesso = "medio"
	AcessoDificil Acesso = "dificil"
)

func (a Answers) Acesso() Acesso {
	switch Acesso(a.String("acesso", "")) {
	case AcessoMedio:
		return AcessoMedio
	case AcessoDificil:
		return AcessoDificil
	default:
		return AcessoFacil
	}
}

// Luz is the electrical supply phase.
type Luz string

const (
	LuzMonofasica Luz = "monofasica"
	LuzTrifasica  Luz = "trifasica"
)

func (a Answers) Luz() Luz {
	if Luz(a.String("luz", "")) == LuzTrifasica {
		return LuzTrifasica
	}
	return LuzMonofasica
}

// TratamentoTipo is the water treatment tier.
type TratamentoTipo string

const (
	TratamentoNenhum          TratamentoTipo = "nao"
	TratamentoCloroAutomatico TratamentoTipo = "cloro_automatico"
	TratamentoSalino          TratamentoTipo = "clorador_salino"
	TratamentoSalinoPH        TratamentoTipo = "clorador_salino_ph"
	TratamentoSalinoPHUV      TratamentoTipo = "clorador_salino_ph_uv"
)

func (a Answers) TratamentoTipo() TratamentoTipo {
	switch TratamentoTipo(a.String("tratamento_agua", "")) {
	case TratamentoCloroAutomatico:
		return TratamentoCloroAutomatico
	case TratamentoSalino:
		return TratamentoSalino
	case TratamentoSalinoPH:
		return TratamentoSalinoPH
	case TratamentoSalinoPHUV:
		return TratamentoSalinoPHUV
	default:
		return TratamentoNenhum
	}
}

// TipoLuzes is the lighting colour preference.
type TipoLuzes string

const (
	LuzesBrancoFrio      TipoLuzes = "branco_frio"
	LuzesBrancoAdaptavel TipoLuzes = "branco_adaptavel"
	LuzesRGB             TipoLuzes = "rgb"
)

func (a Answers) TipoLuzes() TipoLuzes {
	switch TipoLuzes(a.String("tipo_luzes", "")) {
	case LuzesBrancoAdaptavel:
		return LuzesBrancoAdaptavel
	case LuzesRGB:
		return LuzesRGB
	default:
		return LuzesBrancoFrio
	}
}

// TipoConstrucao distinguishes a new build from a renovation.
type TipoConstrucao string

const (
	ConstrucaoNova      TipoConstrucao = "nova"
	ConstrucaoRenovacao TipoConstrucao = "renovacao"
)

func (a Answers) TipoConstrucao() TipoConstrucao {
	if TipoConstrucao(a.String("tipo_construcao", "")) == ConstrucaoRenovacao {
		return ConstrucaoRenovacao
	}
	return ConstrucaoNova
}

// Localizacao is where the pool machine room sits (exterior/interior); it
// drives filter selection.
func (a Answers) Localizacao() string {
	return a.String("localizacao", "exterior")
}

// Localidade resolves the construction locality, honouring the
// "Outro" free-text escape hatch from the questionnaire.
func (a Answers) Localidade() string {
	loc := a.String("localidade", "")
	if loc == "Outro" {
		return a.String("localidade_outro", "")
	}
	return loc
}
