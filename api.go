package rematch

// PatternFromString takes a pattern string definition and returns the
// compiled Pattern AST, or the parse error that stopped compilation.
func PatternFromString(pattern string) (Pattern, error) {
	return NewPatternParser(pattern).Parse()
}

// Compile takes a pattern string definition alongside with an
// instance of a configuration object and returns a Matcher ready to
// run against subject strings.  A nil cfg picks the defaults.
func Compile(pattern string, cfg *Config) (*Matcher, error) {
	ast, err := PatternFromString(pattern)
	if err != nil {
		return nil, err
	}
	return NewMatcher(ast, cfg), nil
}
