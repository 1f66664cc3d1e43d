package token

// Kind is the category of a token tree node.
type Kind uint8

const (
	// Invalid marks a token produced from malformed input.
	Invalid Kind = iota
	// Ident is an identifier or keyword.
	Ident
	// Punct is a single punctuation character.
	Punct
	// Literal is a bool, number, char, string or byte literal.
	Literal
	// Group is a delimited sub-stream.
	Group
)

func (k Kind) String() string {
	switch k {
	case Ident:
		return "Ident"
	case Punct:
		return "Punct"
	case Literal:
		return "Literal"
	case Group:
		return "Group"
	default:
		return "Invalid"
	}
}

// LitKind tags the sub-kind of a Literal token.
type LitKind uint8

const (
	LitBool LitKind = iota
	LitInt
	LitFloat
	LitChar
	LitStr
	LitByte
	LitByteStr
)

func (k LitKind) String() string {
	switch k {
	case LitBool:
		return "bool"
	case LitInt:
		return "int"
	case LitFloat:
		return "float"
	case LitChar:
		return "char"
	case LitStr:
		return "str"
	case LitByte:
		return "byte"
	case LitByteStr:
		return "bytestr"
	default:
		return "unknown"
	}
}

// Delimiter is the bracket kind of a Group.
type Delimiter uint8

const (
	// None is an invisible delimiter: the top level and pass-through splices.
	None Delimiter = iota
	Paren
	Bracket
	Brace
)

func (d Delimiter) String() string {
	switch d {
	case Paren:
		return "Paren"
	case Bracket:
		return "Bracket"
	case Brace:
		return "Brace"
	default:
		return "None"
	}
}

// Open returns the opening bracket, "" for None.
func (d Delimiter) Open() string {
	switch d {
	case Paren:
		return "("
	case Bracket:
		return "["
	case Brace:
		return "{"
	default:
		return ""
	}
}

// Close returns the closing bracket, "" for None.
func (d Delimiter) Close() string {
	switch d {
	case Paren:
		return ")"
	case Bracket:
		return "]"
	case Brace:
		return "}"
	default:
		return ""
	}
}

// DelimiterFor maps an opening or closing bracket byte to its Delimiter.
func DelimiterFor(b byte) (Delimiter, bool) {
	switch b {
	case '(', ')':
		return Paren, true
	case '[', ']':
		return Bracket, true
	case '{', '}':
		return Brace, true
	default:
		return None, false
	}
}

// Spacing tells whether a Punct is glued to the following punctuation.
type Spacing uint8

const (
	Alone Spacing = iota
	Joint
)

func (s Spacing) String() string {
	if s == Joint {
		return "Joint"
	}
	return "Alone"
}
