// Package parser implements a recursive-descent, Pratt-precedence parser
// over the token stream produced by internal/lexer, building the tree of
// nodes defined in internal/syntax. The parser never aborts: every
// production that cannot match the current token reports UnexpectedToken
// and fabricates a Missing token so the caller always gets a complete
// (possibly error-laden) tree back.
package parser

import (
	"github.com/lumen-lang/lumenc/internal/diag"
	"github.com/lumen-lang/lumenc/internal/lexer"
	"github.com/lumen-lang/lumenc/internal/source"
	"github.com/lumen-lang/lumenc/internal/syntax"
)

// Option configures a Parser.
type Option func(*options)

type options struct {
	filename string
}

// WithFilename attributes diagnostics raised during parsing to name,
// overriding the filename already carried by text.
func WithFilename(name string) Option {
	return func(o *options) {
		o.filename = name
	}
}

// Parser holds the full pre-lexed token stream for one source text and a
// cursor into it. Lookahead beyond the current token is just indexing into
// tokens, since the whole stream already exists.
type Parser struct {
	text   *source.Text
	tokens []lexer.Token
	pos    int
	bag    *diag.Bag
}

// New creates a Parser over text, reporting both lexer and parser
// diagnostics into bag.
func New(text *source.Text, bag *diag.Bag, opts ...Option) *Parser {
	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.filename != "" {
		text = source.New(cfg.filename, text.String())
	}
	return &Parser{
		text:   text,
		tokens: lexer.Tokenize(text, bag),
		bag:    bag,
	}
}

// Parse lexes and parses text into a syntax.Tree, threading one diagnostic
// bag through both phases so lexer and parser diagnostics share the same
// ordered bag the rest of the pipeline consumes.
func Parse(text *source.Text, opts ...Option) *syntax.Tree {
	bag := diag.NewBag()
	p := New(text, bag, opts...)
	root := p.parseCompilationUnit()
	return syntax.NewTree(p.text, root, bag)
}

func (p *Parser) current() lexer.Token {
	return p.tokens[p.pos]
}

func (p *Parser) peek(offset int) lexer.Token {
	idx := p.pos + offset
	if idx >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[idx]
}

func (p *Parser) atEnd() bool {
	return p.current().Kind == lexer.EOFTokenKind
}

// nextToken returns the current token and advances the cursor, unless the
// cursor is already sitting on EOF.
func (p *Parser) nextToken() lexer.Token {
	tok := p.current()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

func (p *Parser) location(span source.Span) source.Location {
	return source.NewLocation(p.text, span)
}

// matchToken consumes the current token if its kind is kind. Otherwise it
// reports UnexpectedToken and returns a zero-length Missing token of the
// expected kind at the current position, without consuming anything — so
// the caller always receives a token of the requested kind and the parser
// never gets stuck on a production it can't complete.
func (p *Parser) matchToken(kind lexer.TokenKind) lexer.Token {
	cur := p.current()
	if cur.Kind == kind {
		return p.nextToken()
	}
	p.bag.Error(diag.StageParser, diag.UnexpectedToken, p.location(cur.Span),
		"expected %s, got %s", kind, cur.Kind)
	return lexer.Token{Kind: kind, Span: source.NewSpan(cur.Span.Start, 0), Missing: true}
}

// skipToken unconditionally reports UnexpectedToken for the current token
// and advances past it — used for top-level recovery when nothing else
// can make progress.
func (p *Parser) skipToken() lexer.Token {
	cur := p.current()
	p.bag.Error(diag.StageParser, diag.UnexpectedToken, p.location(cur.Span),
		"unexpected %s", cur.Kind)
	return p.nextToken()
}

func (p *Parser) parseCompilationUnit() *syntax.CompilationUnit {
	var members []syntax.Member
	for !p.atEnd() {
		prevPos := p.pos
		member := p.parseMember()
		if member != nil {
			members = append(members, member)
		}
		if p.pos == prevPos {
			// No production consumed anything; force progress.
			p.skipToken()
		}
	}
	eof := p.matchToken(lexer.EOFTokenKind)
	return &syntax.CompilationUnit{Members: members, EOFToken: eof}
}
