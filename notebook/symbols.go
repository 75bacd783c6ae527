package notebook

import "github.com/traefik/yaegi/interp"

// Symbols holds the venn packages importable from notebook cells, keyed by
// "importpath/name". The generated files fill it in their init functions.
var Symbols = interp.Exports{}

//go:generate yaegi extract -name notebook github.com/gogpu/venn
//go:generate yaegi extract -name notebook github.com/gogpu/venn/venntest
//go:generate yaegi extract -name notebook github.com/gogpu/venn/plot
