package syntax

import (
	"fmt"

	"github.com/tim-lang/tir/diag"
	"github.com/tim-lang/tir/location"
)

// Parse scans and parses one source file's text into a [File]. If any
// syntax error is encountered, the returned issues are non-empty and the
// caller must treat the file as contributing no declarations (spec.md §6).
func Parse(sourceID location.SourceID, text string) (*File, []diag.Issue) {
	p := &parser{
		lex:      newLexer(text),
		sourceID: sourceID,
	}
	p.advance()
	file := p.parseFile()
	return file, p.issues
}

type parser struct {
	lex      *lexer
	cur      token
	sourceID location.SourceID
	issues   []diag.Issue
}

func (p *parser) advance() {
	p.cur = p.lex.next()
}

func (p *parser) span(start, end pos) location.Span {
	return location.NewSpan(p.sourceID, start, end)
}

func (p *parser) errorf(tok token, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	issue := diag.NewIssue(diag.Error, diag.E_SYNTAX, msg).
		WithSpan(p.span(tok.start, tok.end)).
		Build()
	p.issues = append(p.issues, issue)
}

// expect consumes the current token if it matches kind, recording a syntax
// error and returning false otherwise. On mismatch the parser does not
// advance, letting the caller decide how to resynchronize.
func (p *parser) expect(kind tokenKind, label string) (token, bool) {
	if p.cur.kind != kind {
		p.errorf(p.cur, "expected %s, found %q", label, p.cur.text)
		return p.cur, false
	}
	tok := p.cur
	p.advance()
	return tok, true
}

func (p *parser) isKeyword(word string) bool {
	return p.cur.kind == tokKeyword && p.cur.text == word
}

// skipToNextTopLevel advances until a token that plausibly starts the next
// top-level declaration, or EOF. Used to resynchronize after a parse error
// so one bad declaration doesn't suppress diagnostics for the rest of the
// file.
func (p *parser) skipToNextTopLevel() {
	for p.cur.kind != tokEOF {
		if p.cur.kind == tokKeyword {
			switch p.cur.text {
			case "class", "interface", "extend", "func", "pub", "static", "use":
				return
			}
		}
		p.advance()
	}
}

func (p *parser) parseFile() *File {
	start := p.cur.start
	file := &File{SourceID: p.sourceID}

	for p.cur.kind != tokEOF {
		before := p.cur.start
		switch {
		case p.isKeyword("use"):
			if imp := p.parseImport(); imp != nil {
				file.Imports = append(file.Imports, imp)
			}
		case p.isKeyword("class"):
			if c := p.parseClass(false); c != nil {
				file.Classes = append(file.Classes, c)
			}
		case p.isKeyword("interface"):
			if i := p.parseInterface(false); i != nil {
				file.Interfaces = append(file.Interfaces, i)
			}
		case p.isKeyword("extend"):
			if e := p.parseExtension(); e != nil {
				file.Extensions = append(file.Extensions, e)
			}
		case p.isKeyword("func"):
			if f := p.parseFunc(false); f != nil {
				file.Functions = append(file.Functions, f)
			}
		case p.isKeyword("static"):
			if s := p.parseStatic(false); s != nil {
				file.Statics = append(file.Statics, s)
			}
		case p.isKeyword("pub"):
			p.advance()
			switch {
			case p.isKeyword("class"):
				if c := p.parseClass(true); c != nil {
					file.Classes = append(file.Classes, c)
				}
			case p.isKeyword("interface"):
				if i := p.parseInterface(true); i != nil {
					file.Interfaces = append(file.Interfaces, i)
				}
			case p.isKeyword("func"):
				if f := p.parseFunc(true); f != nil {
					file.Functions = append(file.Functions, f)
				}
			case p.isKeyword("static"):
				if s := p.parseStatic(true); s != nil {
					file.Statics = append(file.Statics, s)
				}
			default:
				p.errorf(p.cur, "expected declaration after 'pub', found %q", p.cur.text)
				p.skipToNextTopLevel()
			}
		default:
			p.errorf(p.cur, "unexpected token %q at top level", p.cur.text)
			p.skipToNextTopLevel()
		}
		if p.cur.start == before {
			// Safety net: parseX functions must always make progress.
			p.advance()
		}
	}

	file.Span = p.span(start, p.cur.end)
	return file
}

func (p *parser) parseImport() *ImportDecl {
	start := p.cur.start
	p.advance() // consume 'use'

	var path []string
	ident, ok := p.expect(tokIdent, "identifier")
	if !ok {
		p.skipToNextTopLevel()
		return nil
	}
	path = append(path, ident.text)

	wildcard := false
	for p.cur.kind == tokDot {
		p.advance()
		if p.cur.kind == tokStar {
			wildcard = true
			p.advance()
			break
		}
		next, ok := p.expect(tokIdent, "identifier")
		if !ok {
			p.skipToNextTopLevel()
			return nil
		}
		path = append(path, next.text)
	}

	alias := ""
	if p.isKeyword("as") {
		p.advance()
		aliasTok, ok := p.expect(tokIdent, "alias identifier")
		if ok {
			alias = aliasTok.text
		}
	}

	end := p.cur.end
	if _, ok := p.expect(tokSemicolon, "';'"); !ok {
		p.skipToNextTopLevel()
	}

	return &ImportDecl{Path: path, Alias: alias, Wildcard: wildcard, Span: p.span(start, end)}
}

func (p *parser) parseClass(public bool) *ClassDecl {
	start := p.cur.start
	p.advance() // consume 'class'

	nameTok, ok := p.expect(tokIdent, "class name")
	if !ok {
		p.skipToNextTopLevel()
		return nil
	}
	decl := &ClassDecl{Name: nameTok.text, NameSpan: p.span(nameTok.start, nameTok.end), Public: public}

	if _, ok := p.expect(tokLBrace, "'{'"); !ok {
		p.skipToNextTopLevel()
		return decl
	}

	for p.cur.kind != tokRBrace && p.cur.kind != tokEOF {
		before := p.cur.start
		pub := false
		if p.isKeyword("pub") {
			pub = true
			p.advance()
		}
		switch {
		case p.isKeyword("func"):
			if f := p.parseFunc(pub); f != nil {
				decl.Methods = append(decl.Methods, f)
			}
		case p.cur.kind == tokIdent:
			if f := p.parseField(pub); f != nil {
				decl.Fields = append(decl.Fields, f)
			}
		default:
			p.errorf(p.cur, "expected field or method in class body, found %q", p.cur.text)
			if p.isKeyword("class") || p.isKeyword("interface") || p.isKeyword("extend") || p.isKeyword("static") || p.isKeyword("use") {
				// An unclosed body has run into the next top-level
				// declaration; leave it for parseFile to pick up.
				decl.Span = p.span(start, p.cur.start)
				return decl
			}
			p.advance()
		}
		if p.cur.start == before {
			p.advance()
		}
	}

	end := p.cur.end
	p.expect(tokRBrace, "'}'")
	decl.Span = p.span(start, end)
	return decl
}

func (p *parser) parseInterface(public bool) *InterfaceDecl {
	start := p.cur.start
	p.advance() // consume 'interface'

	nameTok, ok := p.expect(tokIdent, "interface name")
	if !ok {
		p.skipToNextTopLevel()
		return nil
	}
	decl := &InterfaceDecl{Name: nameTok.text, NameSpan: p.span(nameTok.start, nameTok.end), Public: public}

	if p.cur.kind == tokColon {
		p.advance()
		parentTok, ok := p.expect(tokIdent, "parent interface name")
		if ok {
			decl.Parent = parentTok.text
			decl.ParentSpan = p.span(parentTok.start, parentTok.end)
		}
	}

	if _, ok := p.expect(tokLBrace, "'{'"); !ok {
		p.skipToNextTopLevel()
		return decl
	}

	for p.cur.kind != tokRBrace && p.cur.kind != tokEOF {
		before := p.cur.start
		switch {
		case p.isKeyword("func"):
			if f := p.parseFuncSig(); f != nil {
				decl.Methods = append(decl.Methods, f)
			}
		case p.cur.kind == tokIdent:
			if f := p.parseField(false); f != nil {
				decl.Fields = append(decl.Fields, f)
			}
		default:
			p.errorf(p.cur, "expected field or method signature in interface body, found %q", p.cur.text)
			p.advance()
		}
		if p.cur.start == before {
			p.advance()
		}
	}

	end := p.cur.end
	p.expect(tokRBrace, "'}'")
	decl.Span = p.span(start, end)
	return decl
}

func (p *parser) parseExtension() *ExtensionDecl {
	start := p.cur.start
	p.advance() // consume 'extend'

	classTok, ok := p.expect(tokIdent, "class name")
	if !ok {
		p.skipToNextTopLevel()
		return nil
	}
	if _, ok := p.expect(tokColon, "':'"); !ok {
		p.skipToNextTopLevel()
		return nil
	}
	ifaceTok, ok := p.expect(tokIdent, "interface name")
	if !ok {
		p.skipToNextTopLevel()
		return nil
	}

	decl := &ExtensionDecl{
		Class:         classTok.text,
		ClassSpan:     p.span(classTok.start, classTok.end),
		Interface:     ifaceTok.text,
		InterfaceSpan: p.span(ifaceTok.start, ifaceTok.end),
		HeaderSpan:    p.span(start, ifaceTok.end),
	}

	if _, ok := p.expect(tokLBrace, "'{'"); !ok {
		p.skipToNextTopLevel()
		return decl
	}

	for p.cur.kind != tokRBrace && p.cur.kind != tokEOF {
		before := p.cur.start
		if p.isKeyword("func") {
			if f := p.parseFunc(false); f != nil {
				decl.Methods = append(decl.Methods, f)
			}
		} else {
			p.errorf(p.cur, "expected method in extension body, found %q", p.cur.text)
			p.advance()
		}
		if p.cur.start == before {
			p.advance()
		}
	}

	end := p.cur.end
	p.expect(tokRBrace, "'}'")
	decl.Span = p.span(start, end)
	return decl
}

func (p *parser) parseParams() []*ParamDecl {
	var params []*ParamDecl
	p.expect(tokLParen, "'('")
	for p.cur.kind != tokRParen && p.cur.kind != tokEOF {
		nameTok := p.cur
		if p.isKeyword("this") {
			// `this` lexes as a keyword but is a valid receiver name.
			p.advance()
		} else if _, ok := p.expect(tokIdent, "parameter name"); !ok {
			break
		}
		start := nameTok.start
		var typeExpr TypeExpr
		if p.cur.kind == tokColon {
			// A "this" receiver parameter may omit its type annotation
			// entirely (spec.md §6); every other parameter still requires
			// one, but that is a resolver-level check (resolveParams),
			// not a syntax error here.
			p.advance()
			typeExpr = p.parseTypeExpr()
		}
		end := p.cur.start
		params = append(params, &ParamDecl{Name: nameTok.text, Type: typeExpr, Span: p.span(start, end)})
		if p.cur.kind == tokComma {
			p.advance()
		}
	}
	p.expect(tokRParen, "')'")
	return params
}

func (p *parser) parseFunc(public bool) *FuncDecl {
	start := p.cur.start
	p.advance() // consume 'func'

	nameTok, ok := p.expect(tokIdent, "function name")
	if !ok {
		p.skipToNextTopLevel()
		return nil
	}
	decl := &FuncDecl{Name: nameTok.text, NameSpan: p.span(nameTok.start, nameTok.end), Public: public}
	decl.Params = p.parseParams()

	if p.cur.kind == tokColon {
		p.advance()
		decl.Return = p.parseTypeExpr()
	}

	if p.cur.kind == tokLBrace {
		// The lexer already sits just past the '{' held in p.cur.
		end := p.lex.skipBalanced()
		decl.Span = p.span(start, end)
		p.advance()
		return decl
	}

	// A body-less declaration inside an extension or class is still
	// well-formed syntax if followed directly by ';'.
	end := p.cur.end
	p.expect(tokSemicolon, "';' or '{'")
	decl.Span = p.span(start, end)
	return decl
}

func (p *parser) parseFuncSig() *FuncSigDecl {
	start := p.cur.start
	p.advance() // consume 'func'

	nameTok, ok := p.expect(tokIdent, "function name")
	if !ok {
		p.skipToNextTopLevel()
		return nil
	}
	decl := &FuncSigDecl{Name: nameTok.text, NameSpan: p.span(nameTok.start, nameTok.end)}
	decl.Params = p.parseParams()

	if p.cur.kind == tokColon {
		p.advance()
		decl.Return = p.parseTypeExpr()
	}

	end := p.cur.end
	p.expect(tokSemicolon, "';'")
	decl.Span = p.span(start, end)
	return decl
}

func (p *parser) parseField(public bool) *FieldDecl {
	nameTok, ok := p.expect(tokIdent, "field name")
	if !ok {
		return nil
	}
	start := nameTok.start
	decl := &FieldDecl{Name: nameTok.text, NameSpan: p.span(nameTok.start, nameTok.end), Public: public}

	if _, ok := p.expect(tokColon, "':'"); ok {
		decl.Type = p.parseTypeExpr()
	}

	if p.cur.kind == tokAssign {
		p.advance()
		decl.HasDefault = true
		// Expression bodies are out of scope; skip tokens until ';' or '}'.
		for p.cur.kind != tokSemicolon && p.cur.kind != tokRBrace && p.cur.kind != tokEOF {
			p.advance()
		}
	}

	end := p.cur.end
	p.expect(tokSemicolon, "';'")
	decl.Span = p.span(start, end)
	return decl
}

func (p *parser) parseStatic(public bool) *StaticDecl {
	start := p.cur.start
	p.advance() // consume 'static'

	nameTok, ok := p.expect(tokIdent, "static variable name")
	if !ok {
		p.skipToNextTopLevel()
		return nil
	}
	decl := &StaticDecl{Name: nameTok.text, NameSpan: p.span(nameTok.start, nameTok.end), Public: public}

	if _, ok := p.expect(tokColon, "':'"); ok {
		decl.Type = p.parseTypeExpr()
	}

	if p.cur.kind == tokAssign {
		p.advance()
		decl.HasDefault = true
		for p.cur.kind != tokSemicolon && p.cur.kind != tokEOF {
			p.advance()
		}
	}

	end := p.cur.end
	p.expect(tokSemicolon, "';'")
	decl.Span = p.span(start, end)
	return decl
}

// parseTypeExpr parses a primitive keyword, identifier/dotted path, `?T`, or
// `ref T`. On malformed input it records a syntax error and returns a
// best-effort placeholder so callers can keep going.
func (p *parser) parseTypeExpr() TypeExpr {
	start := p.cur.start

	if p.cur.kind == tokQuestion {
		p.advance()
		inner := p.parseTypeExpr()
		return &NullableTypeExpr{Inner: inner, Span: p.span(start, p.cur.start)}
	}

	if p.isKeyword("ref") {
		p.advance()
		inner := p.parseTypeExpr()
		return &ReferenceTypeExpr{Inner: inner, Span: p.span(start, p.cur.start)}
	}

	if p.cur.kind == tokIdent && IsPrimitiveKeyword(p.cur.text) {
		tok := p.cur
		p.advance()
		return &PrimitiveTypeExpr{Keyword: tok.text, Span: p.span(tok.start, tok.end)}
	}

	if p.cur.kind != tokIdent {
		p.errorf(p.cur, "expected type expression, found %q", p.cur.text)
		return &NamedTypeExpr{Path: []string{"<error>"}, Span: p.span(start, p.cur.end)}
	}

	var path []string
	tok := p.cur
	path = append(path, tok.text)
	p.advance()
	for p.cur.kind == tokDot {
		p.advance()
		next, ok := p.expect(tokIdent, "identifier")
		if !ok {
			break
		}
		path = append(path, next.text)
	}

	return &NamedTypeExpr{Path: path, Span: p.span(start, p.cur.start)}
}
