package notebook

import (
	"context"
	"fmt"
	"go/parser"
	"go/scanner"
	"go/token"
	"strings"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
	"golang.org/x/text/unicode/norm"
)

// Scope is the execution scope shared by the cells of one notebook run.
// Definitions made by one Exec call are visible to the next.
// A Scope is not safe for concurrent use.
type Scope struct {
	interp *interp.Interpreter
	execs  int
}

// NewScope creates a scope with the standard library and the venn packages
// importable.
func NewScope(opts ...Option) (*Scope, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return newScope(o)
}

func newScope(o options) (*Scope, error) {
	i := interp.New(interp.Options{
		Stdout: o.stdout,
		Stderr: o.stderr,
	})
	for _, exports := range append([]interp.Exports{stdlib.Symbols, Symbols}, o.exports...) {
		if err := i.Use(exports); err != nil {
			return nil, fmt.Errorf("notebook: load symbols: %w", err)
		}
	}
	return &Scope{interp: i}, nil
}

// Exec evaluates src in the scope. A cell may mix imports, top-level
// declarations and statements: imports are evaluated first, then all
// declarations as one unit, then the statements in source order.
func (s *Scope) Exec(ctx context.Context, src string) error {
	s.execs++
	parts := splitCell(norm.NFC.String(src))
	for _, part := range []string{parts.imports, parts.decls, parts.stmts} {
		if strings.TrimSpace(part) == "" {
			continue
		}
		if _, err := s.interp.EvalWithContext(ctx, part); err != nil {
			return err
		}
	}
	return nil
}

// Execs returns how many sources have been executed in the scope.
func (s *Scope) Execs() int {
	return s.execs
}

// cellParts is a cell's source split by kind of top-level construct.
type cellParts struct {
	imports string
	decls   string
	stmts   string
}

// splitCell cuts src into top-level chunks at semicolons (explicit or
// inserted at line ends) outside any brackets and sorts each chunk into
// imports, declarations or statements. A chunk is a declaration when it
// parses as the body of a Go file. Leading comments travel with the chunk
// that follows them and a trailing line comment stays on its line. Every
// part ends with a newline or semicolon so a trailing line comment cannot
// swallow code the interpreter wraps around it.
func splitCell(src string) cellParts {
	if !strings.HasSuffix(src, "\n") {
		src += "\n"
	}

	var parts cellParts
	add := func(chunk string, first token.Token) {
		switch {
		case first == token.IMPORT:
			parts.imports += chunk
		case isDecl(chunk):
			parts.decls += chunk
		default:
			parts.stmts += chunk
		}
	}

	fset := token.NewFileSet()
	file := fset.AddFile("", fset.Base(), len(src))
	var sc scanner.Scanner
	sc.Init(file, []byte(src), nil, 0)

	depth, start := 0, 0
	first := token.ILLEGAL
	for {
		pos, tok, lit := sc.Scan()
		if tok == token.EOF {
			break
		}
		if first == token.ILLEGAL && tok != token.SEMICOLON {
			first = tok
		}
		switch tok {
		case token.LPAREN, token.LBRACK, token.LBRACE:
			depth++
		case token.RPAREN, token.RBRACK, token.RBRACE:
			depth--
		case token.SEMICOLON:
			if depth > 0 {
				continue
			}
			end := chunkEnd(src, file.Offset(pos), lit)
			if first != token.ILLEGAL {
				add(src[start:end], first)
			}
			start, first = end, token.ILLEGAL
		}
	}
	if first != token.ILLEGAL {
		// Unterminated chunk; the interpreter reports the syntax error.
		parts.stmts += src[start:]
	}
	return parts
}

// chunkEnd returns the offset just past the semicolon at off. Inserted
// semicolons may sit on a trailing comment; the chunk then extends to the
// end of that comment's line.
func chunkEnd(src string, off int, lit string) int {
	if lit != "\n" {
		return min(off+1, len(src))
	}
	rest := src[off:]
	if strings.HasPrefix(rest, "/*") {
		if k := strings.Index(rest, "*/"); k >= 0 {
			off += k + 2
			rest = src[off:]
		}
	}
	if j := strings.IndexByte(rest, '\n'); j >= 0 {
		return off + j + 1
	}
	return len(src)
}

// isDecl reports whether chunk is a complete top-level declaration.
func isDecl(chunk string) bool {
	f, err := parser.ParseFile(token.NewFileSet(), "", "package p\n"+chunk, parser.SkipObjectResolution)
	return err == nil && len(f.Decls) > 0
}
