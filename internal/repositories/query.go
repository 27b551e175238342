package repositories

import "strings"

const (
	nameContains = `LOWER(name) LIKE LOWER(?) ESCAPE '\'`
	byName       = "LOWER(name) ASC, id ASC"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a LIKE pattern matching fragment anywhere, with
// wildcard characters in fragment matched literally.
func containsPattern(fragment string) string {
	return "%" + likeEscaper.Replace(fragment) + "%"
}
