package parser

// MustParse is like Parse but panics on error. It exists for tests and
// examples that embed a known-good expression literal.
func MustParse(text string) *CST {
	cst, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return cst
}
