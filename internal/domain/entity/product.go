package entity

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Product representa un producto del catálogo del tenant.
type Product struct {
	ID          int64
	Name        string
	Description string
	Code        string // código único en la base del tenant
	UnitMeasure UnitMeasure
	Price       decimal.Decimal // precio de venta, NUMERIC(10,2)
	Stock       int
	Link        string // URL pública de la imagen, opcional
}

// UnitMeasure unidad de medida admitida para productos.
type UnitMeasure string

// Unidades de medida válidas.
const (
	UnitKg      UnitMeasure = "kg"
	UnitG       UnitMeasure = "g"
	UnitMg      UnitMeasure = "mg"
	UnitTon     UnitMeasure = "ton"
	UnitL       UnitMeasure = "l"
	UnitMl      UnitMeasure = "ml"
	UnitM3      UnitMeasure = "m³"
	UnitCm3     UnitMeasure = "cm³"
	UnitM       UnitMeasure = "m"
	UnitCm      UnitMeasure = "cm"
	UnitMm      UnitMeasure = "mm"
	UnitUnidade UnitMeasure = "unidade"
	UnitPacote  UnitMeasure = "pacote"
	UnitCaixa   UnitMeasure = "caixa"
	UnitDuzia   UnitMeasure = "dúzia"
)

// UnitMeasures lista en el orden del catálogo.
var UnitMeasures = []UnitMeasure{
	UnitKg, UnitG, UnitMg, UnitTon, UnitL, UnitMl, UnitM3, UnitCm3,
	UnitM, UnitCm, UnitMm, UnitUnidade, UnitPacote, UnitCaixa, UnitDuzia,
}

// unitAliases clave plegada (sin acentos, minúsculas) → unidad canónica.
var unitAliases = func() map[string]UnitMeasure {
	m := make(map[string]UnitMeasure, len(UnitMeasures)+3)
	for _, u := range UnitMeasures {
		m[foldUnit(string(u))] = u
	}
	m["m3"] = UnitM3
	m["cm3"] = UnitCm3
	m["un"] = UnitUnidade
	return m
}()

// ParseUnitMeasure normaliza la entrada del usuario (NFC, sin acentos, minúsculas)
// y devuelve la unidad canónica. Acepta "m3", "duzia", "Dúzia", "KG".
func ParseUnitMeasure(s string) (UnitMeasure, bool) {
	u, ok := unitAliases[foldUnit(s)]
	return u, ok
}

func foldUnit(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, strings.TrimSpace(s))
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}
