package grounder

// cartesianProduct returns every combination obtainable by picking one
// element from each domain, in parameter-declaration order — the
// operator output order this produces must stay stable so that fact-id
// assignment and landmark discovery are reproducible across runs
// (section 5, "Ordering"). An empty domain anywhere collapses the
// result to no assignments at all.
func cartesianProduct(domains [][]string) [][]string {
	result := [][]string{{}}
	for _, domain := range domains {
		if len(domain) == 0 {
			return nil
		}
		next := make([][]string, 0, len(result)*len(domain))
		for _, prefix := range result {
			for _, v := range domain {
				combo := make([]string, len(prefix)+1)
				copy(combo, prefix)
				combo[len(prefix)] = v
				next = append(next, combo)
			}
		}
		result = next
	}
	return result
}
