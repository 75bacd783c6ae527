package notebook

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gogpu/venn"
)

// CellError reports the cell whose execution failed.
type CellError struct {
	Worksheet int
	Cell      int
	Err       error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("worksheet %d cell %d: %v", e.Worksheet, e.Cell, e.Err)
}

func (e *CellError) Unwrap() error { return e.Err }

// Run loads filename and executes all of its code cells in file order in a
// single Scope. The first failing cell aborts the run and its error is
// returned wrapped in a *CellError.
func Run(ctx context.Context, filename string, opts ...Option) error {
	nb, err := Load(filename)
	if err != nil {
		return err
	}
	if err := RunNotebook(ctx, nb, opts...); err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	return nil
}

// RunNotebook executes the code cells of an already parsed notebook.
//
// Deprecation warnings logged by venn are suppressed while the cells run;
// all other log records pass through.
func RunNotebook(ctx context.Context, nb *Notebook, opts ...Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.logger
	if log == nil {
		log = venn.Logger()
	}

	restore := suppressDeprecations()
	defer restore()

	scope, err := newScope(o)
	if err != nil {
		return err
	}

	start := time.Now()
	for w, ws := range nb.Worksheets {
		for c, cell := range ws.Cells {
			if !cell.IsCode() {
				continue
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			log.Debug("executing cell", slog.Int("worksheet", w), slog.Int("cell", c))
			if err := scope.Exec(ctx, cell.Source()); err != nil {
				return &CellError{Worksheet: w, Cell: c, Err: err}
			}
		}
	}
	log.Info("notebook executed",
		slog.Int("cells", scope.Execs()),
		slog.Duration("elapsed", time.Since(start)))
	return nil
}

// suppression tracks the runs that currently filter venn deprecation
// warnings. The first run installs the filter and the last one to finish
// puts back the logger that was active before it.
var suppression struct {
	mu    sync.Mutex
	depth int
	prev  *slog.Logger
}

// suppressDeprecations installs a venn logger that drops records tagged
// with the deprecation category and returns a function undoing it. Calls
// may overlap; the returned function is safe to call more than once.
func suppressDeprecations() func() {
	suppression.mu.Lock()
	defer suppression.mu.Unlock()
	if suppression.depth == 0 {
		suppression.prev = venn.Logger()
		venn.SetLogger(slog.New(&categoryFilter{
			inner:    suppression.prev.Handler(),
			category: venn.CategoryDeprecation,
		}))
	}
	suppression.depth++

	var once sync.Once
	return func() {
		once.Do(func() {
			suppression.mu.Lock()
			defer suppression.mu.Unlock()
			suppression.depth--
			if suppression.depth == 0 {
				venn.SetLogger(suppression.prev)
				suppression.prev = nil
			}
		})
	}
}

// categoryFilter is a slog.Handler that drops records whose category
// attribute equals category.
type categoryFilter struct {
	inner    slog.Handler
	category string
	dropAll  bool
}

func (h *categoryFilter) Enabled(ctx context.Context, level slog.Level) bool {
	return !h.dropAll && h.inner.Enabled(ctx, level)
}

func (h *categoryFilter) Handle(ctx context.Context, r slog.Record) error {
	if h.dropAll {
		return nil
	}
	drop := false
	r.Attrs(func(a slog.Attr) bool {
		if h.matches(a) {
			drop = true
			return false
		}
		return true
	})
	if drop {
		return nil
	}
	return h.inner.Handle(ctx, r)
}

func (h *categoryFilter) WithAttrs(attrs []slog.Attr) slog.Handler {
	for _, a := range attrs {
		if h.matches(a) {
			return &categoryFilter{inner: h.inner, category: h.category, dropAll: true}
		}
	}
	return &categoryFilter{inner: h.inner.WithAttrs(attrs), category: h.category, dropAll: h.dropAll}
}

func (h *categoryFilter) WithGroup(name string) slog.Handler {
	return &categoryFilter{inner: h.inner.WithGroup(name), category: h.category, dropAll: h.dropAll}
}

func (h *categoryFilter) matches(a slog.Attr) bool {
	return a.Key == venn.CategoryKey && a.Value.String() == h.category
}
