package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hairlab-backoffice/models"
	"hairlab-backoffice/utils"
)

func customerNames(items []models.Customer) []string {
	names := make([]string, 0, len(items))
	for _, c := range items {
		names = append(names, c.FirstName)
	}
	return names
}

var customers = []models.Customer{
	{FirstName: "meera", LastName: "Iyer", PhoneNumber: "9876543210", Gender: "female", Address: "Indiranagar"},
	{FirstName: "Arjun", LastName: "Rao", PhoneNumber: "9123456780", Gender: "male", Address: "Koramangala"},
	{FirstName: "Kavya", LastName: "Iyer", PhoneNumber: "9000000001", Gender: "female", Address: "Jayanagar"},
	{FirstName: "Dev", LastName: "Shah", PhoneNumber: "9000000002", Gender: "male", Address: "Indiranagar"},
}

func TestListing_SearchAndFilter(t *testing.T) {
	res, err := CustomerListing.Apply(customers, ListQuery{Search: "IYER"})
	require.NoError(t, err)
	assert.Equal(t, []string{"meera", "Kavya"}, customerNames(res.Items))

	res, err = CustomerListing.Apply(customers, ListQuery{Filters: map[string]string{"address": "indira", "gender": "male"}})
	require.NoError(t, err)
	// "female" contains "male"
	assert.Equal(t, []string{"meera", "Dev"}, customerNames(res.Items))

	res, err = CustomerListing.Apply(customers, ListQuery{Filters: map[string]string{"unknown": "x"}})
	require.NoError(t, err)
	assert.Len(t, res.Items, 4)
}

func TestListing_SortIsCaseInsensitiveAndStable(t *testing.T) {
	res, err := CustomerListing.Apply(customers, ListQuery{SortBy: "firstName"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Arjun", "Dev", "Kavya", "meera"}, customerNames(res.Items))

	res, err = CustomerListing.Apply(customers, ListQuery{SortBy: "lastName", SortOrder: "desc"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Dev", "Arjun", "meera", "Kavya"}, customerNames(res.Items))

	_, err = CustomerListing.Apply(customers, ListQuery{SortBy: "shoeSize"})
	assert.ErrorIs(t, err, ErrUnknownSortField)
}

func TestListing_NumericAndDateSort(t *testing.T) {
	staff := []models.StaffMember{
		{FirstName: "A", Salary: 9000, HireDate: "2023-05-01"},
		{FirstName: "B", Salary: 25000, HireDate: "2021-01-15T00:00:00.000Z"},
		{FirstName: "C", Salary: 12000, HireDate: "2022-11-30"},
	}
	names := func(items []models.StaffMember) []string {
		out := []string{}
		for _, s := range items {
			out = append(out, s.FirstName)
		}
		return out
	}

	res, err := StaffListing.Apply(staff, ListQuery{SortBy: "salary"})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "B"}, names(res.Items))

	res, err = StaffListing.Apply(staff, ListQuery{SortBy: "hireDate", SortOrder: "desc"})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "B"}, names(res.Items))
}

func TestListing_Pagination(t *testing.T) {
	res, err := CustomerListing.Apply(customers, ListQuery{Page: 2, PerPage: 3})
	require.NoError(t, err)
	assert.Equal(t, []string{"Dev"}, customerNames(res.Items))
	assert.Equal(t, 2, res.Pagination.TotalPages)
	assert.False(t, res.Pagination.HasNext)
	assert.True(t, res.Pagination.HasPrev)

	res, err = CustomerListing.Apply(customers, ListQuery{Page: 9, PerPage: 3})
	require.NoError(t, err)
	assert.Empty(t, res.Items)
	assert.Equal(t, 4, res.Pagination.Total)
}

func TestListing_PageFarPastTheEnd(t *testing.T) {
	res, err := CustomerListing.Apply(customers, ListQuery{Page: math.MaxInt, PerPage: 10})
	require.NoError(t, err)
	assert.Empty(t, res.Items)
	assert.Equal(t, 4, res.Pagination.Total)

	res, err = CustomerListing.Apply(customers, ListQuery{Page: math.MaxInt / 2, PerPage: utils.MaxPerPage})
	require.NoError(t, err)
	assert.Empty(t, res.Items)
}
