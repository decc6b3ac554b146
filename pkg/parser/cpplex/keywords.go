package cpplex

// cppKeywords is the C++20 keyword table. Identifiers found here lex as
// keyword tokens; everything else is an identifier.
//
//nolint:gochecknoglobals // Read-only lookup table.
var cppKeywords = map[string]bool{
	"alignas": true, "alignof": true, "and": true, "and_eq": true,
	"asm": true, "auto": true, "bitand": true, "bitor": true,
	"bool": true, "break": true, "case": true, "catch": true,
	"char": true, "char8_t": true, "char16_t": true, "char32_t": true,
	"class": true, "compl": true, "concept": true, "const": true,
	"consteval": true, "constexpr": true, "constinit": true,
	"const_cast": true, "continue": true, "co_await": true,
	"co_return": true, "co_yield": true, "decltype": true,
	"default": true, "delete": true, "do": true, "double": true,
	"dynamic_cast": true, "else": true, "enum": true, "explicit": true,
	"export": true, "extern": true, "false": true, "float": true,
	"for": true, "friend": true, "goto": true, "if": true,
	"inline": true, "int": true, "long": true, "mutable": true,
	"namespace": true, "new": true, "noexcept": true, "not": true,
	"not_eq": true, "nullptr": true, "operator": true, "or": true,
	"or_eq": true, "private": true, "protected": true, "public": true,
	"register": true, "reinterpret_cast": true, "requires": true,
	"return": true, "short": true, "signed": true, "sizeof": true,
	"static": true, "static_assert": true, "static_cast": true,
	"struct": true, "switch": true, "template": true, "this": true,
	"thread_local": true, "throw": true, "true": true, "try": true,
	"typedef": true, "typeid": true, "typename": true, "union": true,
	"unsigned": true, "using": true, "virtual": true, "void": true,
	"volatile": true, "wchar_t": true, "while": true, "xor": true,
	"xor_eq": true,
}

// punctuators lists multi-character C++ punctuators grouped by length, longest
// first, for maximal-munch lexing. Single characters fall through to a direct
// check.
//
//nolint:gochecknoglobals // Read-only lookup table.
var punctuators = [][]string{
	{"<<=", ">>=", "<=>", "...", "->*"},
	{"::", "->", "++", "--", "<<", ">>", "<=", ">=", "==", "!=",
		"&&", "||", "+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=",
		".*", "##"},
}

// singlePunct is the set of single-character punctuators.
//
//nolint:gochecknoglobals // Read-only lookup table.
var singlePunct = map[byte]bool{
	'{': true, '}': true, '[': true, ']': true, '(': true, ')': true,
	';': true, ':': true, ',': true, '.': true, '?': true, '~': true,
	'!': true, '+': true, '-': true, '*': true, '/': true, '%': true,
	'^': true, '&': true, '|': true, '=': true, '<': true, '>': true,
	'#': true,
}
