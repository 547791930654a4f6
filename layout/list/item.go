package list

import (
	"github.com/foliant/xslfo/area"
	"github.com/foliant/xslfo/core/dimen"
	"github.com/foliant/xslfo/fo"
	"github.com/foliant/xslfo/layout/block"
)

// Item is one `list-item`: a two-column pair of `list-item-label` and
// `list-item-body` sharing a common top edge. Unlike a table row, either
// column may split across a page break independently of the other; once a
// column has emitted its last fragment its Block field goes nil so later
// Fragment calls skip it.
type Item struct {
	node        *fo.Node
	labelWidth  dimen.DU
	bodyOffset  dimen.DU
	bodyWidth   dimen.DU
	label       block.Block
	body        block.Block
	constraints block.Constraints
}

func (it *Item) Node() *fo.Node          { return it.node }
func (it *Item) Keep() block.Constraints { return it.constraints }

func (it *Item) NaturalHeight() dimen.DU {
	var h dimen.DU
	if it.label != nil {
		h = it.label.NaturalHeight()
	}
	if it.body != nil {
		if bh := it.body.NaturalHeight(); bh > h {
			h = bh
		}
	}
	return h
}

// Fragment lays out as much of the label and body as fit in `remaining`,
// independently: a column that finishes first is simply omitted from
// later fragments while the other continues.
func (it *Item) Fragment(remaining dimen.DU) (area.Area, block.Block, bool) {
	var labelArea, bodyArea area.Area
	var labelRest, bodyRest block.Block
	labelDone, bodyDone := true, true

	if it.label != nil {
		labelArea, labelRest, labelDone = it.label.Fragment(remaining)
	}
	if it.body != nil {
		bodyArea, bodyRest, bodyDone = it.body.Fragment(remaining)
	}
	if labelArea == nil && bodyArea == nil {
		return nil, it, false
	}

	frag := &area.BlockArea{Base: area.Base{Box: area.Rect{Size: area.Size{W: it.bodyOffset + it.bodyWidth}}}}
	var h dimen.DU
	if labelArea != nil {
		positionAt(labelArea, 0)
		frag.Children = append(frag.Children, labelArea)
		if rh := labelArea.Rect().Size.H; rh > h {
			h = rh
		}
	}
	if bodyArea != nil {
		positionAt(bodyArea, it.bodyOffset)
		frag.Children = append(frag.Children, bodyArea)
		if rh := bodyArea.Rect().Size.H; rh > h {
			h = rh
		}
	}
	frag.Box.Size.H = h

	if labelDone && bodyDone {
		return frag, nil, true
	}
	rest := &Item{
		node: it.node, labelWidth: it.labelWidth, bodyOffset: it.bodyOffset,
		bodyWidth: it.bodyWidth, constraints: it.constraints,
	}
	if !labelDone {
		rest.label = labelRest
	}
	if !bodyDone {
		rest.body = bodyRest
	}
	return frag, rest, false
}

func positionAt(a area.Area, x dimen.DU) {
	if ba, ok := a.(*area.BlockArea); ok {
		ba.Box.Origin.X = x
	}
}
