// Package token defines the lexical tokens produced by the Mython lexer.
package token

import "fmt"

// Kind identifies the variant of a Token.
type Kind int

const (
	EOF Kind = iota

	// Payload-carrying kinds.
	Number // Num
	Id     // Str (identifier name)
	String // Str (decoded text)
	Char   // Ch (single punctuation/operator byte)

	// Nullary keyword/structural kinds.
	Class
	Return
	If
	Else
	Def
	Newline
	Print
	Indent
	Dedent
	And
	Or
	Not
	Eq
	NotEq
	LessOrEq
	GreaterOrEq
	None
	True
	False
)

var kindNames = map[Kind]string{
	EOF:         "Eof",
	Number:      "Number",
	Id:          "Id",
	String:      "String",
	Char:        "Char",
	Class:       "Class",
	Return:      "Return",
	If:          "If",
	Else:        "Else",
	Def:         "Def",
	Newline:     "Newline",
	Print:       "Print",
	Indent:      "Indent",
	Dedent:      "Dedent",
	And:         "And",
	Or:          "Or",
	Not:         "Not",
	Eq:          "Eq",
	NotEq:       "NotEq",
	LessOrEq:    "LessOrEq",
	GreaterOrEq: "GreaterOrEq",
	None:        "None",
	True:        "True",
	False:       "False",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Keywords maps a scanned identifier run to its reserved-word Kind.
var Keywords = map[string]Kind{
	"class":  Class,
	"return": Return,
	"if":     If,
	"else":   Else,
	"def":    Def,
	"print":  Print,
	"and":    And,
	"or":     Or,
	"not":    Not,
	"None":   None,
	"True":   True,
	"False":  False,
}

// Token is a tagged union over the lexical kinds of spec.md §3. Only the
// payload field matching Kind is meaningful; the others are zero.
type Token struct {
	Kind Kind
	Num  int32  // Number
	Str  string // Id, String
	Ch   byte   // Char
	Line int
}

// Equal implements the equality rule of spec.md §3: same variant and,
// where present, equal payload.
func (t Token) Equal(o Token) bool {
	if t.Kind != o.Kind {
		return false
	}
	switch t.Kind {
	case Number:
		return t.Num == o.Num
	case Id, String:
		return t.Str == o.Str
	case Char:
		return t.Ch == o.Ch
	default:
		return true
	}
}

func (t Token) String() string {
	switch t.Kind {
	case Number:
		return fmt.Sprintf("Number{%d}", t.Num)
	case Id:
		return fmt.Sprintf("Id{%s}", t.Str)
	case String:
		return fmt.Sprintf("String{%q}", t.Str)
	case Char:
		return fmt.Sprintf("Char{%c}", t.Ch)
	default:
		return t.Kind.String()
	}
}
