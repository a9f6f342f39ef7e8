package lexer

var keywords = map[string]TokenKind{
	"def":   TokDefKeyword,
	"end":   TokEndKeyword,
	"true":  TokTrue,
	"false": TokFalse,
	"nil":   TokNil,
}

// lookupKeyword reports whether text is a reserved word and its token kind.
func lookupKeyword(text string) (TokenKind, bool) {
	kind, ok := keywords[text]
	return kind, ok
}

// IsKeyword reports whether text is a reserved word.
func IsKeyword(text string) bool {
	_, ok := keywords[text]
	return ok
}
