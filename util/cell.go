package util

// Cell is a coordinate in the world. X is the column, Y the row.
type Cell struct {
	X, Y int
}
