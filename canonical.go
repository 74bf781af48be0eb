package gorex

// MustCompile is like Compile but panics if pattern fails to parse. It
// exists for package-level initialization of the canonical constants below,
// the same way the regexp standard library offers MustCompile alongside
// Compile.
func MustCompile(pattern string, name string) *Regex {
	r, err := Compile(pattern, name)
	if err != nil {
		panic("gorex: MustCompile(" + pattern + "): " + err.Error())
	}
	return r
}

// The canonical compiled regex set (§6.4), translated directly from
// original_source/grammar/regular_expressions.py's module-level RegEx
// constants. These are ready to use as-is; CompileAll exists for callers who
// want to add their own named patterns alongside them.
var (
	INTEGER  = MustCompile(`[0-9]+`, "INTEGER")
	VARIABLE = MustCompile(`([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_)*`, "VARIABLE")
	FLOAT    = MustCompile(`([0-9]+\.[0-9]*)|([0-9]*\.[0-9]+)`, "FLOAT")
	NUMBER   = MustCompile(`[0-9]+(\.[0-9]+)?`, "NUMBER")

	LPARAM  = MustCompile(`\(`, "LPARAM")
	RPARAM  = MustCompile(`\)`, "RPARAM")
	LBRACKET = MustCompile(`\[`, "LBRACKET")
	RBRACKET = MustCompile(`\]`, "RBRACKET")

	ASSIGN  = MustCompile(`=`, "ASSIGN")
	EQUAL   = MustCompile(`==`, "EQUAL")
	INEQUAL = MustCompile(`!=`, "INEQUAL")
	LT      = MustCompile(`<`, "LT")
	LE      = MustCompile(`<=`, "LE")
	GT      = MustCompile(`>`, "GT")
	GE      = MustCompile(`>=`, "GE")

	NEWLINE    = MustCompile("\n", "NEWLINE")
	TAB        = MustCompile("\t", "TAB")
	SINGLEQUOTE = MustCompile(`'`, "SINGLEQUOTE")
	DOUBLEQUOTE = MustCompile(`"`, "DOUBLEQUOTE")
	SEMICOLON  = MustCompile(`;`, "SEMICOLON")
	COLON      = MustCompile(`:`, "COLON")
	COMMA      = MustCompile(`,`, "COMMA")
	DOT        = MustCompile(`\.`, "DOT")

	PLUS     = MustCompile(`\+`, "PLUS")
	MINUS    = MustCompile(`-`, "MINUS")
	ASTERISK = MustCompile(`\*`, "ASTERISK")
	SLASH    = MustCompile(`/`, "SLASH")
	BACKSLASH = MustCompile(`\\`, "BACKSLASH")
	DIV      = MustCompile(`//`, "DIV")
	SPACE    = MustCompile(` `, "SPACE")
)

// Canonical is every constant above, keyed by name, handy for callers that
// want to range over the whole set (e.g. to build a lexer's token table).
var Canonical = map[string]*Regex{
	"INTEGER": INTEGER, "VARIABLE": VARIABLE, "FLOAT": FLOAT, "NUMBER": NUMBER,
	"LPARAM": LPARAM, "RPARAM": RPARAM, "LBRACKET": LBRACKET, "RBRACKET": RBRACKET,
	"ASSIGN": ASSIGN, "EQUAL": EQUAL, "INEQUAL": INEQUAL,
	"LT": LT, "LE": LE, "GT": GT, "GE": GE,
	"NEWLINE": NEWLINE, "TAB": TAB, "SINGLEQUOTE": SINGLEQUOTE, "DOUBLEQUOTE": DOUBLEQUOTE,
	"SEMICOLON": SEMICOLON, "COLON": COLON, "COMMA": COMMA, "DOT": DOT,
	"PLUS": PLUS, "MINUS": MINUS, "ASTERISK": ASTERISK, "SLASH": SLASH,
	"BACKSLASH": BACKSLASH, "DIV": DIV, "SPACE": SPACE,
}
