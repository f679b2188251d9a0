package gol

// processRow computes the next generation of one interior row. It only reads
// current and only writes out, so rows can be processed concurrently as long
// as no two workers share an out row. Border columns of out are not touched.
func processRow(row int, current [][]bool, out []bool) {
	above, here, below := current[row-1], current[row], current[row+1]
	for c := 1; c < len(here)-1; c++ {
		neighbours := 0
		if above[c-1] {
			neighbours++
		}
		if above[c] {
			neighbours++
		}
		if above[c+1] {
			neighbours++
		}
		if here[c-1] {
			neighbours++
		}
		if here[c+1] {
			neighbours++
		}
		if below[c-1] {
			neighbours++
		}
		if below[c] {
			neighbours++
		}
		if below[c+1] {
			neighbours++
		}
		out[c] = nextState(here[c], neighbours)
	}
}
