package repositories

import (
	"fmt"
	"strings"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ListingFilter collects the optional criteria of the public search and
// recommendation listings. Nil fields do not constrain the query; the
// published-only clause is always emitted.
//
// Budget bounds apply per operation type: a sale listing is compared on
// precioVenta, a rental on precioRentaMensual, and the two branches are
// joined with OR so a single budget range matches both markets.
type ListingFilter struct {
	Title      *string
	CategoryID *int64
	BudgetMin  *float64
	BudgetMax  *float64
	Page       int
	PageSize   int
}

// Normalize clamps pagination to sane values: pages are 1-indexed and
// the page size defaults to 20.
func (f *ListingFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = defaultPageSize
	}
	if f.PageSize > maxPageSize {
		f.PageSize = maxPageSize
	}
}

// Offset returns the row offset for the normalized page.
func (f *ListingFilter) Offset() int {
	return (f.Page - 1) * f.PageSize
}

// BuildWhere renders the WHERE clause and its positional arguments.
// Placeholders are numbered from startArg so callers can append LIMIT
// and OFFSET parameters after it. The expected aliases are i for
// Inmueble, pub for Publicacion and s for Subtipo.
func (f *ListingFilter) BuildWhere(startArg int) (string, []interface{}) {
	clauses := []string{"pub.estado = 'Publicada'"}
	args := []interface{}{}
	n := startArg

	if f.Title != nil && strings.TrimSpace(*f.Title) != "" {
		clauses = append(clauses, fmt.Sprintf("i.titulo ILIKE $%d", n))
		args = append(args, "%"+strings.TrimSpace(*f.Title)+"%")
		n++
	}

	if f.CategoryID != nil {
		clauses = append(clauses, fmt.Sprintf("s.idCategoria = $%d", n))
		args = append(args, *f.CategoryID)
		n++
	}

	if f.BudgetMin != nil || f.BudgetMax != nil {
		sale := []string{"pub.tipoOperacion = 'Venta'"}
		rent := []string{"pub.tipoOperacion = 'Renta'"}
		if f.BudgetMin != nil {
			sale = append(sale, fmt.Sprintf("pub.precioVenta >= $%d", n))
			rent = append(rent, fmt.Sprintf("pub.precioRentaMensual >= $%d", n))
			args = append(args, *f.BudgetMin)
			n++
		}
		if f.BudgetMax != nil {
			sale = append(sale, fmt.Sprintf("pub.precioVenta <= $%d", n))
			rent = append(rent, fmt.Sprintf("pub.precioRentaMensual <= $%d", n))
			args = append(args, *f.BudgetMax)
			n++
		}
		clauses = append(clauses, fmt.Sprintf("((%s) OR (%s))",
			strings.Join(sale, " AND "), strings.Join(rent, " AND ")))
	}

	return "WHERE " + strings.Join(clauses, " AND "), args
}
