package page

import (
	"testing"

	"github.com/foliant/xslfo/fo"
	"github.com/stretchr/testify/require"
)

func conditionalRef(masterName, position, oddEven, blank string) *fo.Node {
	c := fo.New(fo.KindConditionalPageMasterReference)
	c.SetProp("master-reference", masterName)
	if position != "" {
		c.SetProp("page-position", position)
	}
	if oddEven != "" {
		c.SetProp("odd-or-even", oddEven)
	}
	if blank != "" {
		c.SetProp("blank-or-not-blank", blank)
	}
	return c
}

func TestSelectMasterPassesThroughSimpleMaster(t *testing.T) {
	simple := fo.New(fo.KindSimplePageMaster)
	got := SelectMaster(simple, nil, 1, 1, false)
	require.Same(t, simple, got)
}

func TestSelectMasterSingleReference(t *testing.T) {
	seqMaster := fo.New(fo.KindPageSequenceMaster)
	ref := fo.New(fo.KindSinglePageMasterReference)
	ref.SetProp("master-reference", "only")
	seqMaster.Append(ref)

	target := fo.New(fo.KindSimplePageMaster)
	masters := map[string]*fo.Node{"only": target}

	got := SelectMaster(seqMaster, masters, 3, 5, false)
	require.Same(t, target, got)
}

func TestSelectMasterMatchesFirstLastRestConditions(t *testing.T) {
	seqMaster := fo.New(fo.KindPageSequenceMaster)
	alts := fo.New(fo.KindRepeatablePageMasterAlternatives)
	alts.Append(conditionalRef("first", "first", "", ""))
	alts.Append(conditionalRef("last", "last", "", ""))
	alts.Append(conditionalRef("rest", "rest", "", ""))
	seqMaster.Append(alts)

	masters := map[string]*fo.Node{
		"first": fo.New(fo.KindSimplePageMaster),
		"last":  fo.New(fo.KindSimplePageMaster),
		"rest":  fo.New(fo.KindSimplePageMaster),
	}

	require.Same(t, masters["first"], SelectMaster(seqMaster, masters, 1, 3, false))
	require.Same(t, masters["rest"], SelectMaster(seqMaster, masters, 2, 3, false))
	require.Same(t, masters["last"], SelectMaster(seqMaster, masters, 3, 3, false))
}

func TestSelectMasterMatchesOddEvenAndBlank(t *testing.T) {
	seqMaster := fo.New(fo.KindPageSequenceMaster)
	alts := fo.New(fo.KindRepeatablePageMasterAlternatives)
	alts.Append(conditionalRef("blank", "", "", "blank"))
	alts.Append(conditionalRef("odd", "", "odd", "not-blank"))
	alts.Append(conditionalRef("even", "", "even", "not-blank"))
	seqMaster.Append(alts)

	masters := map[string]*fo.Node{
		"blank": fo.New(fo.KindSimplePageMaster),
		"odd":   fo.New(fo.KindSimplePageMaster),
		"even":  fo.New(fo.KindSimplePageMaster),
	}

	require.Same(t, masters["blank"], SelectMaster(seqMaster, masters, 4, 4, true))
	require.Same(t, masters["odd"], SelectMaster(seqMaster, masters, 3, 4, false))
	require.Same(t, masters["even"], SelectMaster(seqMaster, masters, 4, 4, false))
}

func TestSelectMasterReturnsNilWhenNothingMatches(t *testing.T) {
	seqMaster := fo.New(fo.KindPageSequenceMaster)
	alts := fo.New(fo.KindRepeatablePageMasterAlternatives)
	alts.Append(conditionalRef("odd", "", "odd", ""))
	seqMaster.Append(alts)
	masters := map[string]*fo.Node{"odd": fo.New(fo.KindSimplePageMaster)}

	require.Nil(t, SelectMaster(seqMaster, masters, 2, 2, false))
}

func TestNeedsBlankTrailer(t *testing.T) {
	require.False(t, NeedsBlankTrailer(ForceAuto, 3))
	require.True(t, NeedsBlankTrailer(ForceEven, 3))
	require.False(t, NeedsBlankTrailer(ForceEven, 4))
	require.True(t, NeedsBlankTrailer(ForceOdd, 4))
	require.False(t, NeedsBlankTrailer(ForceOdd, 5))
	require.True(t, NeedsBlankTrailer(ForceEndOnEven, 1))
	require.True(t, NeedsBlankTrailer(ForceEndOnOdd, 2))
}
