package list

import (
	"testing"

	"github.com/foliant/xslfo/core/dimen"
	"github.com/foliant/xslfo/fo"
	"github.com/foliant/xslfo/font"
	"github.com/foliant/xslfo/font/fontregistry"
	"github.com/foliant/xslfo/layout"
	"github.com/foliant/xslfo/props"
	"github.com/stretchr/testify/require"
)

func testListBuilder() *Builder {
	reg := fontregistry.NewRegistry(font.NewResolver())
	return NewBuilder(props.NewResolver(), reg, layout.NewDefaultOptions())
}

func paraNode(text string) *fo.Node {
	blk := fo.New(fo.KindBlock)
	ch := fo.New(fo.KindCharacter)
	ch.Text = text
	blk.Append(ch)
	return blk
}

func listItemNode(label, body string) *fo.Node {
	item := fo.New(fo.KindListItem)
	l := fo.New(fo.KindListItemLabel)
	l.Append(paraNode(label))
	b := fo.New(fo.KindListItemBody)
	b.Append(paraNode(body))
	item.Append(l)
	item.Append(b)
	return item
}

func listBlockNode(items ...*fo.Node) *fo.Node {
	lb := fo.New(fo.KindListBlock)
	for _, it := range items {
		lb.Append(it)
	}
	return lb
}

func TestListBuildSplitsLabelAndBodyColumns(t *testing.T) {
	b := testListBuilder()
	n := listBlockNode(listItemNode("1.", "first item body text"))
	l := b.Build(n, 300*dimen.PT)
	require.Len(t, l.items, 1)
	item := l.items[0].(*Item)
	require.Greater(t, item.bodyOffset, dimen.DU(0))
	require.Greater(t, item.bodyWidth, dimen.DU(0))
}

func TestListFragmentEmitsAllItemsWhenRoomEnough(t *testing.T) {
	b := testListBuilder()
	n := listBlockNode(
		listItemNode("1.", "first item body text here"),
		listItemNode("2.", "second item body text here"),
	)
	l := b.Build(n, 300*dimen.PT)
	total := l.NaturalHeight()
	frag, rest, done := l.Fragment(total)
	require.True(t, done)
	require.Nil(t, rest)
	require.Equal(t, total, frag.Rect().Size.H)
}

func TestListFragmentSplitsAcrossItemsWhenShort(t *testing.T) {
	b := testListBuilder()
	n := listBlockNode(
		listItemNode("1.", "first item body text that wraps across more than one line of content"),
		listItemNode("2.", "second item body text that wraps across more than one line of content"),
	)
	l := b.Build(n, 200*dimen.PT)
	total := l.NaturalHeight()
	_, rest, done := l.Fragment(total / 3)
	require.False(t, done)
	require.NotNil(t, rest)
}
