package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetHas(t *testing.T) {
	s := NewSet([]int{SociosVer, ProyectosCrear})

	assert.True(t, s.Has(SociosVer))
	assert.True(t, s.Has(ProyectosCrear))
	assert.False(t, s.Has(ProyectosEliminar))
}

func TestEmptySetDeniesEverything(t *testing.T) {
	var s Set
	assert.False(t, s.Has(SociosVer))
	assert.False(t, s.Has(0))

	s = NewSet(nil)
	assert.False(t, s.Has(FinanzasVer))
}

func TestResolveSelection(t *testing.T) {
	sel := map[string][]string{
		"proyectos": {"Ver proyectos", "Crear proyectos"},
		"socios":    {"Ver socios"},
	}

	ids, unmapped := ResolveSelection(sel)

	assert.Empty(t, unmapped)
	assert.Equal(t, []int{SociosVer, ProyectosVer, ProyectosCrear}, ids)
}

func TestResolveSelectionDeduplicates(t *testing.T) {
	sel := map[string][]string{
		"socios": {"Ver socios", "Ver socios", "Crear socios"},
	}

	ids, unmapped := ResolveSelection(sel)

	assert.Empty(t, unmapped)
	assert.Equal(t, []int{SociosVer, SociosCrear}, ids)
}

func TestResolveSelectionReportsUnknownLabels(t *testing.T) {
	sel := map[string][]string{
		"socios":     {"Ver socios", "Permiso inventado"},
		"inexistente": {"Lo que sea"},
	}

	ids, unmapped := ResolveSelection(sel)

	assert.Equal(t, []int{SociosVer}, ids)
	assert.Equal(t, []string{"Lo que sea", "Permiso inventado"}, unmapped)
}

func TestResolveSelectionIdempotent(t *testing.T) {
	sel := map[string][]string{
		"nomina":   {"Ver nóminas", "Crear nóminas"},
		"finanzas": {"Exportar finanzas", "Desconocido"},
	}

	ids1, un1 := ResolveSelection(sel)
	ids2, un2 := ResolveSelection(sel)

	assert.Equal(t, ids1, ids2)
	assert.Equal(t, un1, un2)
}

func TestCatalogoIDsAreUnique(t *testing.T) {
	seen := make(map[int]string)
	for subgroup, table := range Catalogo {
		for label, id := range table {
			prev, dup := seen[id]
			require.Falsef(t, dup, "ID %d duplicado: %q y %q", id, prev, subgroup+"/"+label)
			seen[id] = subgroup + "/" + label
		}
	}
}

func TestAllIDsSortedAndComplete(t *testing.T) {
	ids := AllIDs()
	require.NotEmpty(t, ids)

	for i := 1; i < len(ids); i++ {
		assert.Less(t, ids[i-1], ids[i])
	}

	total := 0
	for _, table := range Catalogo {
		total += len(table)
	}
	assert.Len(t, ids, total)
}
