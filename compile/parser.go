// Package compile drives the LL(1) stack machine: it interprets
// grammar.Lookup productions, matches terminals against the lexer, and
// dispatches semantic actions that mutate an nfa.Builder's arena and a
// fragment stack. This is the parser/builder driver (spec.md §4.4).
package compile

import (
	"fmt"

	"github.com/llregex/llregex/grammar"
	"github.com/llregex/llregex/lex"
	"github.com/llregex/llregex/nfa"
	"github.com/llregex/llregex/stream"
	"github.com/llregex/llregex/token"
)

// Parser drives one compile attempt: a symbol stack of grammar
// productions, a fragment stack of partially-built NFA pieces, and a
// one-token lookahead held outside both stacks.
type Parser struct {
	lx  *lex.Lexer
	bld *nfa.Builder

	symbols []grammar.Symbol
	frags   []Fragment
	tok     token.Code
}

// newParser creates a driver reading pattern bytes from src.
func newParser(src stream.Source) *Parser {
	return &Parser{
		lx:      lex.New(src),
		bld:     nfa.NewBuilder(),
		symbols: []grammar.Symbol{grammar.Nonterm(grammar.Start)},
	}
}

// Compile parses pattern and builds an NFA for it. On any failure the
// returned error is one of *lex.Error, *ParseError, or *BuilderError,
// and the NFA is nil.
func Compile(pattern string) (*nfa.NFA, error) {
	return CompileSource(stream.NewStringSource(pattern))
}

// CompileSource is Compile against an arbitrary stream.Source, for
// callers reading a pattern from something other than a string.
func CompileSource(src stream.Source) (result *nfa.NFA, err error) {
	p := newParser(src)
	defer func() {
		if r := recover(); r != nil {
			if ie, ok := r.(*nfa.InvariantError); ok {
				result, err = nil, &BuilderError{Pos: p.lx.Pos(), Err: ie}
				return
			}
			panic(r)
		}
	}()
	return p.run()
}

func (p *Parser) run() (*nfa.NFA, error) {
	p.tok = p.lx.Next()
	if p.tok == token.SignFail {
		return nil, p.lx.LastError()
	}

	for len(p.symbols) > 0 {
		n := len(p.symbols) - 1
		sym := p.symbols[n]
		p.symbols = p.symbols[:n]

		if !sym.IsTerminal() {
			prod, ok := grammar.Lookup(sym.Nonterminal(), p.tok)
			if !ok {
				return nil, p.parseErr(fmt.Sprintf("no production for %v at %v", sym.Nonterminal(), p.tok))
			}
			for i := len(prod) - 1; i >= 0; i-- {
				p.symbols = append(p.symbols, prod[i])
			}
			continue
		}

		code := sym.Code()
		if code.IsAction() {
			if err := p.dispatch(code); err != nil {
				return nil, err
			}
			continue
		}

		// Sign terminal: must match the lookahead exactly.
		if code != p.tok {
			return nil, p.parseErr(fmt.Sprintf("expected %v, found %v", code, p.tok))
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	if p.tok != token.SignEnd {
		return nil, p.parseErr(fmt.Sprintf("trailing input at %v", p.tok))
	}
	if len(p.frags) != 1 {
		return nil, p.parseErr(fmt.Sprintf("parse left %d fragments on the stack, want 1", len(p.frags)))
	}

	final := p.frags[0]
	start, exit := p.materialize(final)
	return p.bld.Build(start, []nfa.StateID{exit}), nil
}

// advance pulls the next token from the lexer, turning a FAIL token
// into a fatal *lex.Error immediately.
func (p *Parser) advance() error {
	p.tok = p.lx.Next()
	if p.tok == token.SignFail {
		return p.lx.LastError()
	}
	return nil
}

func (p *Parser) parseErr(msg string) error {
	return &ParseError{Pos: p.lx.Pos(), Msg: msg}
}

// materialize forces a SingleChar fragment into real states, for the
// rare pattern whose whole parse is a single literal byte (e.g. "a"),
// which never passes through ACT_UNION or a quantifier.
func (p *Parser) materialize(f Fragment) (entry, exit nfa.StateID) {
	if f.kind != SingleChar {
		return f.first, f.last
	}
	q0, q1 := p.bld.New(), p.bld.New()
	p.bld.AddEdge(q0, f.ch, q1)
	return q0, q1
}

// --- fragment stack ---

func (p *Parser) pushFrag(f Fragment) {
	p.frags = append(p.frags, f)
}

func (p *Parser) popFrag() (Fragment, error) {
	n := len(p.frags)
	if n == 0 {
		return Fragment{}, &BuilderError{Pos: p.lx.Pos(), Err: &nfa.InvariantError{Msg: "semantic action popped an empty fragment stack"}}
	}
	f := p.frags[n-1]
	p.frags = p.frags[:n-1]
	return f, nil
}
