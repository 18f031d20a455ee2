package authz

import "sort"

// Set es el conjunto de permisos del usuario autenticado. Se construye al
// iniciar sesión a partir de su rol y es de solo lectura durante la sesión.
type Set map[int]struct{}

func NewSet(ids []int) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has responde "¿contiene el conjunto el permiso id?". Un conjunto vacío o
// nil deniega siempre.
func (s Set) Has(id int) bool {
	_, ok := s[id]
	return ok
}

func (s Set) IDs() []int {
	ids := make([]int, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// ResolveSelection convierte la selección de la pantalla de roles
// (subgrupo → etiquetas marcadas) en la lista ordenada y sin duplicados de
// IDs. Las etiquetas que no existen en el catálogo no se descartan en
// silencio: se devuelven aparte para que el llamador decida si avisar.
func ResolveSelection(selection map[string][]string) (ids []int, unmapped []string) {
	seen := make(map[int]struct{})
	for subgroup, labels := range selection {
		table := Catalogo[subgroup]
		for _, label := range labels {
			id, ok := table[label]
			if !ok {
				unmapped = append(unmapped, label)
				continue
			}
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	sort.Strings(unmapped)
	return ids, unmapped
}

// AllIDs devuelve todos los IDs del catálogo, ordenados. Lo usan los
// seeders y el rol de administrador.
func AllIDs() []int {
	var ids []int
	for _, table := range Catalogo {
		for _, id := range table {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	return ids
}

// Labels devuelve la etiqueta legible de cada ID conocido.
func Labels() map[int]string {
	out := make(map[int]string)
	for _, table := range Catalogo {
		for label, id := range table {
			out[id] = label
		}
	}
	return out
}
