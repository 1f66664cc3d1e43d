package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexUnterminatedChar         Code = 1005

	// Деревья токенов
	SynInfo                Code = 2000
	SynUnclosedDelimiter   Code = 2001
	SynUnexpectedCloser    Code = 2002
	SynMismatchedDelimiter Code = 2003

	// Движок подстановки: структурные ошибки
	PlcExpectedGroup    Code = 3101
	PlcExpectedComma    Code = 3102
	PlcMissingArguments Code = 3103
	PlcTooManyArguments Code = 3104
	PlcUnexpectedToken  Code = 3105
	PlcUnexpectedInput  Code = 3106
	PlcExpectedMarker   Code = 3107
	// ошибки вида аргумента
	PlcExpectedString Code = 3201
	PlcExpectedIdent  Code = 3202
	// ошибки значения
	PlcUnknownCase     Code = 3301
	PlcIntegerTooLarge Code = 3302
	PlcBadNumber       Code = 3303
	PlcBadEscape       Code = 3304
	PlcBadLiteral      Code = 3305

	// I/O
	IOLoadFileError  Code = 4001
	IOWriteFileError Code = 4002

	ObsInfo    Code = 6000
	ObsTimings Code = 6001
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexInfo:                     "Lexical information",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedString:       "Unterminated string literal",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexBadNumber:                "Bad number literal",
	LexUnterminatedChar:         "Unterminated character literal",
	SynInfo:                     "Token tree information",
	SynUnclosedDelimiter:        "Unclosed delimiter",
	SynUnexpectedCloser:         "Unexpected closing delimiter",
	SynMismatchedDelimiter:      "Mismatched closing delimiter",
	PlcExpectedGroup:            "Expected argument group after marker",
	PlcExpectedComma:            "Expected comma between arguments",
	PlcMissingArguments:         "Missing arguments",
	PlcTooManyArguments:         "Too many arguments",
	PlcUnexpectedToken:          "Unexpected token in marker arguments",
	PlcUnexpectedInput:          "Marker takes no arguments",
	PlcExpectedMarker:           "Expected group or builtin marker",
	PlcExpectedString:           "Expected string literal",
	PlcExpectedIdent:            "Expected identifier",
	PlcUnknownCase:              "Unknown case specifier",
	PlcIntegerTooLarge:          "Integer literal too large",
	PlcBadNumber:                "Unparsable numeric literal",
	PlcBadEscape:                "Invalid escape sequence",
	PlcBadLiteral:               "Malformed literal",
	IOLoadFileError:             "I/O load file error",
	IOWriteFileError:            "I/O write file error",
	ObsInfo:                     "Observability information",
	ObsTimings:                  "Pipeline timings",
}

// Class is the coarse category of an engine diagnostic.
type Class uint8

const (
	ClassOther Class = iota
	ClassStructural
	ClassKind
	ClassValue
)

func (c Class) String() string {
	switch c {
	case ClassStructural:
		return "structural"
	case ClassKind:
		return "kind"
	case ClassValue:
		return "value"
	default:
		return "other"
	}
}

// Class returns the engine error class encoded in the code range.
func (c Code) Class() Class {
	switch ic := int(c); {
	case ic >= 3100 && ic < 3200:
		return ClassStructural
	case ic >= 3200 && ic < 3300:
		return ClassKind
	case ic >= 3300 && ic < 3400:
		return ClassValue
	}
	return ClassOther
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("PLC%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("OBS%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
