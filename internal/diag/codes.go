package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Лексические
	LexInfo                Code = 1000
	LexUnknownChar         Code = 1001
	LexUnterminatedLiteral Code = 1002
	LexInvalidEscape       Code = 1003
	LexMalformedNumber     Code = 1004
	LexTokenTooLong        Code = 1005

	// Группировка токенов (эталонный потребитель)
	SynInfo                Code = 2000
	SynUnexpectedToken     Code = 2001
	SynUnclosedDelimiter   Code = 2002
	SynMismatchedDelimiter Code = 2003
	SynBadNode             Code = 2004

	// Конфигурация
	CfgInfo         Code = 4000
	CfgInvalidValue Code = 4001
	CfgUnknownKey   Code = 4002

	// Observability
	ObsInfo    Code = 6000
	ObsTimings Code = 6001
)

var codeDescription = map[Code]string{
	UnknownCode:            "Unknown error",
	LexInfo:                "Lexical information",
	LexUnknownChar:         "Unknown character",
	LexUnterminatedLiteral: "Unterminated literal",
	LexInvalidEscape:       "Invalid escape sequence",
	LexMalformedNumber:     "Malformed number",
	LexTokenTooLong:        "Token too long",
	SynInfo:                "Syntax information",
	SynUnexpectedToken:     "Unexpected token",
	SynUnclosedDelimiter:   "Unclosed delimiter",
	SynMismatchedDelimiter: "Mismatched delimiter",
	SynBadNode:             "Malformed node",
	CfgInfo:                "Configuration information",
	CfgInvalidValue:        "Invalid configuration value",
	CfgUnknownKey:          "Unknown configuration key",
	ObsInfo:                "Observability information",
	ObsTimings:             "Pipeline timings",
}

var codeFamilies = [...]struct {
	base   Code
	prefix string
}{
	{1000, "LEX"},
	{2000, "SYN"},
	{4000, "CFG"},
	{6000, "OBS"},
}

// ID returns the stable printed form, e.g. LEX1001. Codes outside every
// family print as E0000.
func (c Code) ID() string {
	for _, f := range codeFamilies {
		if c >= f.base && c < f.base+1000 {
			return fmt.Sprintf("%s%04d", f.prefix, uint16(c))
		}
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
