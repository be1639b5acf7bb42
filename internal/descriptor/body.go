package descriptor

import (
	"strings"
	"text/scanner"
)

// bodyToken is a lexical token of a function body.
type bodyToken struct {
	kind   rune
	text   string
	offset int
	ref    bool // a variable reference rather than a call, member or keyword
}

// keywords that never name a variable.
var keywords = map[string]struct{}{
	"if": {}, "else": {}, "for": {}, "while": {}, "do": {}, "switch": {}, "case": {},
	"default": {}, "break": {}, "continue": {}, "return": {}, "discard": {},
	"true": {}, "false": {}, "void": {}, "const": {}, "static": {}, "struct": {},
	"in": {}, "out": {}, "inout": {},
}

var typeBases = []string{"min16float", "bool", "uint", "int", "half", "float", "double"}

// isTypeKeyword recognizes scalar, vector and matrix type names such as
// `float`, `half3` or `float4x4`.
func isTypeKeyword(s string) bool {
	for _, base := range typeBases {
		rest, ok := strings.CutPrefix(s, base)
		if !ok {
			continue
		}
		switch len(rest) {
		case 0:
			return true
		case 1:
			return isDim(rest[0])
		case 3:
			return isDim(rest[0]) && rest[1] == 'x' && isDim(rest[2])
		}
	}
	return false
}

func isDim(c byte) bool { return c >= '1' && c <= '4' }

// scanBody tokenizes a body and marks which identifiers are variable
// references. An identifier is not a reference when it is a keyword, a call
// (followed by `(`), a member access (preceded by `.`), a numeric suffix
// (`0.5f`), or a local declared by a type keyword.
func scanBody(body string) []bodyToken {
	var s scanner.Scanner
	s.Init(strings.NewReader(body))
	s.Mode = scanner.ScanIdents | scanner.ScanInts | scanner.ScanFloats | scanner.ScanStrings | scanner.ScanComments | scanner.SkipComments
	s.Error = func(*scanner.Scanner, string) {}

	var toks []bodyToken
	for tok := s.Scan(); tok != scanner.EOF; tok = s.Scan() {
		toks = append(toks, bodyToken{kind: tok, text: s.TokenText(), offset: s.Position.Offset})
	}

	locals := make(map[string]struct{})
	for i := range toks {
		t := &toks[i]
		if t.kind != scanner.Ident {
			continue
		}
		if _, ok := keywords[t.text]; ok || isTypeKeyword(t.text) {
			continue
		}
		if i+1 < len(toks) && toks[i+1].text == "(" {
			continue
		}
		if i > 0 {
			prev := toks[i-1]
			if prev.text == "." {
				continue
			}
			if (prev.kind == scanner.Int || prev.kind == scanner.Float) && prev.offset+len(prev.text) == t.offset {
				continue
			}
			if prev.kind == scanner.Ident && isTypeKeyword(prev.text) {
				locals[t.text] = struct{}{}
				continue
			}
		}
		if _, ok := locals[t.text]; ok {
			continue
		}
		t.ref = true
	}
	return toks
}
