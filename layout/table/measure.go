package table

import (
	"github.com/foliant/xslfo/core/dimen"
	"github.com/foliant/xslfo/fo"
	"github.com/foliant/xslfo/layout/inline"
	"github.com/foliant/xslfo/linebreak"
)

// widestUnbreakableRun builds cell's inline content and returns the widest
// single unbreakable item width within it (spec §4.5 "the longest word or
// the widest non-breakable inline run"), used to proportion `auto` column
// widths.
func widestUnbreakableRun(b *Builder, cell *fo.Node) dimen.DU {
	ib := inline.NewBuilder(b.Resolver, b.Fonts)
	seq := ib.Build(cell)
	var widest dimen.DU
	for i := 0; i < seq.Len(); i++ {
		it := seq.At(i)
		if it.Kind() != linebreak.KindBox {
			continue
		}
		if w := it.W(); w > widest {
			widest = w
		}
	}
	return widest
}
