package services

import (
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"hairlab-backoffice/models"
	"hairlab-backoffice/utils"
)

type SortKind int

const (
	SortText SortKind = iota
	SortNumber
	SortDate
)

// Field is one column of a listing screen.
type Field[T any] struct {
	Name       string
	Value      func(T) string
	Kind       SortKind
	Searchable bool
}

// ListQuery is the search, filter, sort and paging state of a listing screen.
type ListQuery struct {
	Search    string
	Filters   map[string]string
	SortBy    string
	SortOrder string
	Page      int
	PerPage   int
}

var ErrUnknownSortField = errors.New("unknown sort field")

// Listing filters, sorts and pages an in-memory collection.
type Listing[T any] struct {
	fields []Field[T]
	byName map[string]Field[T]
}

func NewListing[T any](fields ...Field[T]) *Listing[T] {
	l := &Listing[T]{fields: fields, byName: make(map[string]Field[T], len(fields))}
	for _, f := range fields {
		l.byName[f.Name] = f
	}
	return l
}

// FieldNames lists the columns in declaration order.
func (l *Listing[T]) FieldNames() []string {
	names := make([]string, 0, len(l.fields))
	for _, f := range l.fields {
		names = append(names, f.Name)
	}
	return names
}

func (l *Listing[T]) matches(item T, q ListQuery) bool {
	if term := strings.ToLower(strings.TrimSpace(q.Search)); term != "" {
		parts := make([]string, 0, len(l.fields))
		for _, f := range l.fields {
			if f.Searchable {
				parts = append(parts, f.Value(item))
			}
		}
		if !strings.Contains(strings.ToLower(strings.Join(parts, " ")), term) {
			return false
		}
	}
	for name, want := range q.Filters {
		f, ok := l.byName[name]
		if !ok || want == "" {
			continue
		}
		if !strings.Contains(strings.ToLower(f.Value(item)), strings.ToLower(want)) {
			return false
		}
	}
	return true
}

func compareField[T any](f Field[T], a, b T) int {
	av, bv := f.Value(a), f.Value(b)
	switch f.Kind {
	case SortNumber:
		an, _ := strconv.ParseFloat(av, 64)
		bn, _ := strconv.ParseFloat(bv, 64)
		switch {
		case an < bn:
			return -1
		case an > bn:
			return 1
		}
		return 0
	case SortDate:
		at, bt := parseDate(av), parseDate(bv)
		return at.Compare(bt)
	default:
		return strings.Compare(strings.ToLower(av), strings.ToLower(bv))
	}
}

func parseDate(s string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, utils.DateLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Apply returns the requested page of items. Sorting is stable, so equal
// keys keep their backend order.
func (l *Listing[T]) Apply(items []T, q ListQuery) (*utils.PaginatedResult[T], error) {
	filtered := make([]T, 0, len(items))
	for _, item := range items {
		if l.matches(item, q) {
			filtered = append(filtered, item)
		}
	}

	if q.SortBy != "" {
		f, ok := l.byName[q.SortBy]
		if !ok {
			return nil, ErrUnknownSortField
		}
		desc := strings.EqualFold(q.SortOrder, "desc")
		sort.SliceStable(filtered, func(i, j int) bool {
			c := compareField(f, filtered[i], filtered[j])
			if desc {
				return c > 0
			}
			return c < 0
		})
	}

	if q.PerPage < 1 {
		q.PerPage = utils.DefaultPerPage
	}
	if q.Page < 1 {
		q.Page = utils.DefaultPage
	}
	p := utils.NewPagination(q.Page, q.PerPage, len(filtered))
	start := min(max(p.Offset(), 0), len(filtered))
	end := start + q.PerPage
	if end < start || end > len(filtered) {
		end = len(filtered)
	}

	return &utils.PaginatedResult[T]{Items: filtered[start:end], Pagination: p}, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

var CustomerListing = NewListing(
	Field[models.Customer]{Name: "firstName", Value: func(c models.Customer) string { return c.FirstName }, Searchable: true},
	Field[models.Customer]{Name: "lastName", Value: func(c models.Customer) string { return c.LastName }, Searchable: true},
	Field[models.Customer]{Name: "phoneNumber", Value: func(c models.Customer) string { return c.PhoneNumber }, Searchable: true},
	Field[models.Customer]{Name: "email", Value: func(c models.Customer) string { return c.Email }, Searchable: true},
	Field[models.Customer]{Name: "address", Value: func(c models.Customer) string { return c.Address }, Searchable: true},
	Field[models.Customer]{Name: "birthdate", Value: func(c models.Customer) string { return c.Birthdate }, Kind: SortDate},
	Field[models.Customer]{Name: "gender", Value: func(c models.Customer) string { return c.Gender }, Searchable: true},
	Field[models.Customer]{Name: "notes", Value: func(c models.Customer) string { return c.Notes }, Searchable: true},
)

var StaffListing = NewListing(
	Field[models.StaffMember]{Name: "firstName", Value: func(s models.StaffMember) string { return s.FirstName }, Searchable: true},
	Field[models.StaffMember]{Name: "lastName", Value: func(s models.StaffMember) string { return s.LastName }, Searchable: true},
	Field[models.StaffMember]{Name: "phoneNumber", Value: func(s models.StaffMember) string { return s.PhoneNumber }, Searchable: true},
	Field[models.StaffMember]{Name: "email", Value: func(s models.StaffMember) string { return s.Email }, Searchable: true},
	Field[models.StaffMember]{Name: "role", Value: func(s models.StaffMember) string { return s.Role }, Searchable: true},
	Field[models.StaffMember]{Name: "hireDate", Value: func(s models.StaffMember) string { return s.HireDate }, Kind: SortDate},
	Field[models.StaffMember]{Name: "salary", Value: func(s models.StaffMember) string { return formatFloat(s.Salary) }, Kind: SortNumber},
)

var ServiceListing = NewListing(
	Field[models.ServiceCatalogEntry]{Name: "serviceName", Value: func(s models.ServiceCatalogEntry) string { return s.Name }, Searchable: true},
	Field[models.ServiceCatalogEntry]{Name: "price", Value: func(s models.ServiceCatalogEntry) string { return formatFloat(s.Price) }, Kind: SortNumber, Searchable: true},
	Field[models.ServiceCatalogEntry]{Name: "duration", Value: func(s models.ServiceCatalogEntry) string { return strconv.Itoa(s.Duration) }, Kind: SortNumber},
	Field[models.ServiceCatalogEntry]{Name: "description", Value: func(s models.ServiceCatalogEntry) string { return s.Description }, Searchable: true},
)

var ProductListing = NewListing(
	Field[models.ProductCatalogEntry]{Name: "productName", Value: func(p models.ProductCatalogEntry) string { return p.Name }, Searchable: true},
	Field[models.ProductCatalogEntry]{Name: "price", Value: func(p models.ProductCatalogEntry) string { return formatFloat(p.Price) }, Kind: SortNumber, Searchable: true},
	Field[models.ProductCatalogEntry]{Name: "stock", Value: func(p models.ProductCatalogEntry) string { return strconv.Itoa(p.Stock) }, Kind: SortNumber},
	Field[models.ProductCatalogEntry]{Name: "description", Value: func(p models.ProductCatalogEntry) string { return p.Description }, Searchable: true},
)

var UserListing = NewListing(
	Field[models.User]{Name: "firstName", Value: func(u models.User) string { return u.FirstName }, Searchable: true},
	Field[models.User]{Name: "lastName", Value: func(u models.User) string { return u.LastName }, Searchable: true},
	Field[models.User]{Name: "email", Value: func(u models.User) string { return u.Email }, Searchable: true},
	Field[models.User]{Name: "role", Value: func(u models.User) string { return u.Role }, Searchable: true},
	Field[models.User]{Name: "branch", Value: func(u models.User) string { return u.Branch }, Searchable: true},
)
