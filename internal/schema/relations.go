package schema

import "strings"

// Relation is a navigable path from one table to another.
//
// Direct relations follow a single foreign key (Via is empty). Many-to-many
// relations pass through an associative table named by Via.
type Relation struct {
	Name string
	From string
	To   string
	Via  string
	// Many is true when one From row can reach several To rows
	Many bool
}

// Relations derives every navigable path from the declared foreign keys.
//
// Each foreign key produces a many-to-one relation and its one-to-many
// inverse. Each associative table additionally produces a many-to-many pair
// between its two parents.
func Relations() []Relation {
	var rels []Relation
	for _, t := range Tables() {
		for _, fk := range t.ForeignKeys {
			rels = append(rels,
				Relation{Name: fk.RefTable, From: t.Name, To: fk.RefTable},
				Relation{Name: plural(t.Name), From: fk.RefTable, To: t.Name, Many: true},
			)
		}

		if !t.IsAssociative() {
			continue
		}
		left, _ := t.ForeignKey(t.PrimaryKey[0])
		right, _ := t.ForeignKey(t.PrimaryKey[1])
		rels = append(rels,
			Relation{Name: plural(right.RefTable), From: left.RefTable, To: right.RefTable, Via: t.Name, Many: true},
			Relation{Name: plural(left.RefTable), From: right.RefTable, To: left.RefTable, Via: t.Name, Many: true},
		)
	}
	return rels
}

// RelationsFrom returns the relations that start at the given table
func RelationsFrom(table string) []Relation {
	var rels []Relation
	for _, r := range Relations() {
		if r.From == table {
			rels = append(rels, r)
		}
	}
	return rels
}

func plural(name string) string {
	if strings.HasSuffix(name, "y") && len(name) > 1 && !strings.ContainsRune("aeiou", rune(name[len(name)-2])) {
		return name[:len(name)-1] + "ies"
	}
	return name + "s"
}
