package analytics

import (
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/tu-usuario/tallerpro-api/internal/application/dto"
	"github.com/tu-usuario/tallerpro-api/internal/domain/entity"
)

// Window ventana temporal del filtro de ventas.
type Window string

// Ventanas reconocidas; cualquier otro valor pasa todas las ventas.
const (
	WindowToday  Window = "today"
	WindowLast7  Window = "7d"
	WindowLast30 Window = "30d"
	WindowAll    Window = "all"
)

var hundred = decimal.NewFromInt(100)

// BuildLiquidityReport clasifica el capital vendido vs inmovilizado.
//
// soldValue suma los totales de las ventas filtradas por ventana y búsqueda;
// unsoldValue valora el stock actual completo (precio * stock) sin filtrar por
// tiempo. Las ventas con fecha malformada quedan fuera de cualquier ventana.
func BuildLiquidityReport(
	now time.Time,
	window Window,
	query string,
	sales []entity.Sale,
	inventory []entity.InventoryItem,
) dto.LiquidityReportDTO {

	itemByID := make(map[string]entity.InventoryItem, len(inventory))
	for _, it := range inventory {
		itemByID[it.ID] = it
	}

	cutoff, bounded := windowCutoff(now, window)
	normQuery := foldText(query)

	soldValue := decimal.Zero
	soldByCategory := make(map[string]int)

	for _, s := range sales {
		if bounded {
			if s.Date.IsZero() || s.Date.Before(cutoff) {
				continue
			}
		}
		if normQuery != "" {
			item, known := itemByID[s.ProductID]
			if !matchesQuery(normQuery, item.Name, s.Customer, known) {
				continue
			}
		}
		soldValue = soldValue.Add(s.Total)
		if item, ok := itemByID[s.ProductID]; ok {
			soldByCategory[item.Category] += s.Qty
		}
	}

	unsoldValue := decimal.Zero
	unsoldByCategory := make(map[string]int)
	var categories []string
	for _, it := range inventory {
		unsoldValue = unsoldValue.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Stock))))
		if _, seen := unsoldByCategory[it.Category]; !seen {
			categories = append(categories, it.Category)
		}
		unsoldByCategory[it.Category] += it.Stock
	}

	totalValue := soldValue.Add(unsoldValue)
	unsoldRatio := decimal.Zero
	if totalValue.IsPositive() {
		unsoldRatio = unsoldValue.Div(totalValue).Mul(hundred).Round(2)
	}

	breakdown := make([]dto.CategoryLiquidityDTO, 0, len(categories))
	for _, cat := range categories {
		unsold := unsoldByCategory[cat]
		sold := soldByCategory[cat]
		pct := decimal.Zero
		if unsold+sold > 0 {
			pct = decimal.NewFromInt(int64(unsold)).
				Div(decimal.NewFromInt(int64(unsold + sold))).
				Mul(hundred).Round(2)
		}
		breakdown = append(breakdown, dto.CategoryLiquidityDTO{
			Category:    cat,
			SoldUnits:   sold,
			UnsoldUnits: unsold,
			UnsoldPct:   pct,
		})
	}

	return dto.LiquidityReportDTO{
		Window:      string(window),
		Query:       query,
		SoldValue:   soldValue.Round(2),
		UnsoldValue: unsoldValue.Round(2),
		TotalValue:  totalValue.Round(2),
		UnsoldRatio: unsoldRatio,
		Categories:  breakdown,
	}
}

// windowCutoff devuelve el inicio de la ventana y si la ventana acota.
// Ventanas no reconocidas (incluida "all") pasan todo.
func windowCutoff(now time.Time, w Window) (time.Time, bool) {
	switch w {
	case WindowToday:
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), true
	case WindowLast7:
		return now.Add(-7 * 24 * time.Hour), true
	case WindowLast30:
		return now.Add(-30 * 24 * time.Hour), true
	default:
		return time.Time{}, false
	}
}

// matchesQuery compara la búsqueda contra nombre de producto y cliente.
func matchesQuery(normQuery, itemName, customer string, itemKnown bool) bool {
	if itemKnown && strings.Contains(foldText(itemName), normQuery) {
		return true
	}
	return customer != "" && strings.Contains(foldText(customer), normQuery)
}

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// foldText normaliza para búsqueda: minúsculas y sin diacríticos, de modo que
// "Baterías" coincida con "baterias".
func foldText(s string) string {
	if s == "" {
		return ""
	}
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}
