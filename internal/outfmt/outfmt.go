// Package outfmt names the summary formats shared by configuration and rendering.
package outfmt

const (
	None  = "none"
	Table = "table"
	JSON  = "json"
	YAML  = "yaml"
)

// Valid reports whether format is a known summary format.
func Valid(format string) bool {
	switch format {
	case None, Table, JSON, YAML:
		return true
	}
	return false
}
