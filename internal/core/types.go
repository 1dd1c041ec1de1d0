package core

// Size describes terminal dimensions in character cells.
type Size struct {
	W int
	H int
}
