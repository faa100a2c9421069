package token

import "strings"

// Group is a non-exclusive classification tag of a Kind.
type Group uint8

const (
	GroupBaseType Group = iota
	GroupDelim
	// GroupPair marks delimiters that have a matching counterpart.
	GroupPair
	// GroupRealPair marks pairs that must nest and balance.
	GroupRealPair
	GroupMathOp
	GroupEvalOp
	GroupConnect
	GroupStrongConnect
	GroupWeakConnect
	GroupTrigger
	GroupEscSeq
	// GroupIgnorable marks tokens a parser may skip (whitespace, linebreaks, comments).
	GroupIgnorable

	numGroups
)

var groupNames = [...]string{
	GroupBaseType:      "BaseType",
	GroupDelim:         "Delim",
	GroupPair:          "Pair",
	GroupRealPair:      "RealPair",
	GroupMathOp:        "MathOp",
	GroupEvalOp:        "EvalOp",
	GroupConnect:       "Connect",
	GroupStrongConnect: "StrongConnect",
	GroupWeakConnect:   "WeakConnect",
	GroupTrigger:       "Trigger",
	GroupEscSeq:        "EscSeq",
	GroupIgnorable:     "Ignorable",
}

func (g Group) String() string {
	if g < numGroups {
		return groupNames[g]
	}
	return "Group(?)"
}

// GroupSet is a bit set of groups.
type GroupSet uint16

// Groups builds a set from the given groups.
func Groups(gs ...Group) GroupSet {
	var s GroupSet
	for _, g := range gs {
		s |= 1 << g
	}
	return s
}

// Has reports whether g is in the set.
func (s GroupSet) Has(g Group) bool { return s&(1<<g) != 0 }

// List returns the groups of the set in declaration order.
func (s GroupSet) List() []Group {
	var out []Group
	for g := Group(0); g < numGroups; g++ {
		if s.Has(g) {
			out = append(out, g)
		}
	}
	return out
}

func (s GroupSet) String() string {
	list := s.List()
	parts := make([]string, len(list))
	for i, g := range list {
		parts[i] = g.String()
	}
	return "{" + strings.Join(parts, ",") + "}"
}

var (
	soloDelim   = Groups(GroupDelim)
	quotePair   = Groups(GroupDelim, GroupPair)
	realPair    = Groups(GroupDelim, GroupPair, GroupRealPair)
	strongMath  = Groups(GroupConnect, GroupStrongConnect, GroupMathOp)
	strongEval  = Groups(GroupConnect, GroupStrongConnect, GroupEvalOp)
	weakConnect = Groups(GroupConnect, GroupWeakConnect)
	trigger     = Groups(GroupTrigger)
	escapeSeq   = Groups(GroupEscSeq)
	ignorable   = Groups(GroupIgnorable)
	baseType    = Groups(GroupBaseType)
	noGroups    GroupSet
)

// groupTable is the single source of truth for kind -> groups.
// Новый оператор = одна строка здесь.
var groupTable = [numKinds]GroupSet{
	Invalid: noGroups,
	EOF:     noGroups,

	Float:     baseType,
	Integer:   baseType,
	RawString: baseType,
	String:    baseType,

	Sep:  soloDelim,
	Term: soloDelim,

	SQuote:       quotePair,
	DQuote:       quotePair,
	TripleSQuote: quotePair,
	TripleDQuote: quotePair,

	LParen:     realPair,
	RParen:     realPair,
	LBracket:   realPair,
	RBracket:   realPair,
	LBrace:     realPair,
	RBrace:     realPair,
	LRuleDelim: realPair,
	RRuleDelim: realPair,

	Not:         strongEval,
	Equal:       strongEval,
	Plus:        strongMath,
	Minus:       strongMath,
	Slash:       strongMath,
	XOp:         strongMath,
	GreaterThan: strongEval,
	SmallerThan: strongEval,

	Period:     weakConnect,
	Colon:      weakConnect,
	Star:       weakConnect | Groups(GroupMathOp),
	Top:        weakConnect,
	Underscore: weakConnect,

	At:      trigger,
	QMark:   trigger,
	Exclaim: trigger,
	Hash:    trigger,
	Peso:    trigger,
	Amp:     trigger,
	Perc:    trigger,

	Esc:     escapeSeq,
	Newline: escapeSeq,
	Tab:     escapeSeq,
	Space:   escapeSeq,
	Alert:   escapeSeq,
	Del:     escapeSeq,

	Comment:    ignorable,
	Identifier: noGroups,
	Whitespace: ignorable,
	Linebreak:  ignorable,
}

// GroupsOf returns the fixed group set of a kind.
func GroupsOf(k Kind) GroupSet {
	if k >= numKinds {
		return noGroups
	}
	return groupTable[k]
}

// In reports whether kind k belongs to group g.
func (k Kind) In(g Group) bool { return GroupsOf(k).Has(g) }
