package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFilterFromQueryDefaults(t *testing.T) {
	f := ParseFilterFromQuery(url.Values{})

	assert.Equal(t, DefaultLimit, f.Limit)
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 0, f.Offset)
	assert.True(t, f.WithPagination)
	assert.Empty(t, f.Search)
}

func TestParseFilterFromQueryPageToOffset(t *testing.T) {
	values := url.Values{}
	values.Set("page", "3")
	values.Set("limit", "25")

	f := ParseFilterFromQuery(values)

	assert.Equal(t, 25, f.Limit)
	assert.Equal(t, 3, f.Page)
	assert.Equal(t, 50, f.Offset)
}

func TestParseFilterFromQueryClampsLimit(t *testing.T) {
	values := url.Values{}
	values.Set("limit", "9999")

	f := ParseFilterFromQuery(values)

	assert.Equal(t, MaxLimit, f.Limit)
}

func TestParseFilterFromQuerySortAndFilters(t *testing.T) {
	values := url.Values{}
	values.Set("search", "Norte")
	values.Set("sort[created_at]", "desc")
	values.Set("sort[nombre]", "subiendo") // dirección inválida: se ignora
	values.Set("filter[activo]", "true")
	values.Add("filter[socio_id]", "1")

	f := ParseFilterFromQuery(values)

	assert.Equal(t, "Norte", f.Search)
	assert.Equal(t, map[string]string{"created_at": "desc"}, f.Sort)
	assert.Equal(t, "true", f.Filter["activo"])
	assert.Equal(t, "1", f.Filter["socio_id"])
}

func TestParseFilterFromQueryInvalidNumbersIgnored(t *testing.T) {
	values := url.Values{}
	values.Set("limit", "abc")
	values.Set("page", "-2")

	f := ParseFilterFromQuery(values)

	assert.Equal(t, DefaultLimit, f.Limit)
	assert.Equal(t, 1, f.Page)
}
