package app

import (
	"strings"
	"testing"

	"github.com/five82/picket/internal/catalog"
	"github.com/five82/picket/internal/prefs"
	"github.com/five82/picket/internal/selection"
	"github.com/five82/picket/internal/state"
)

func demoSnapshot() state.Snapshot {
	return state.Snapshot{Catalog: catalog.Default(), Generation: 1}
}

func smallSnapshot(items ...catalog.Item) state.Snapshot {
	return state.Snapshot{
		Generation: 1,
		Catalog: catalog.Catalog{
			Title:      "Test kit",
			Categories: []catalog.Category{{ID: "tools", Name: "TOOLS", Rank: 20}},
			Items:      items,
		},
	}
}

func TestBuildSession_Modes(t *testing.T) {
	cases := []struct {
		mode    string
		want    string
		wantErr bool
	}{
		{mode: "", want: ModePick},
		{mode: ModePick, want: ModePick},
		{mode: ModeMulti, want: ModeMulti},
		{mode: ModeCompare, want: ModeCompare},
		{mode: ModeDrop, want: ModeDrop},
		{mode: "bogus", wantErr: true},
	}
	for _, tc := range cases {
		t.Run("mode "+tc.mode, func(t *testing.T) {
			sess, err := BuildSession(tc.mode, demoSnapshot(), prefs.Prefs{})
			if tc.wantErr {
				if err == nil {
					t.Fatal("BuildSession returned nil error, want unknown-mode error")
				}
				return
			}
			if err != nil {
				t.Fatalf("BuildSession returned error: %v", err)
			}
			if sess.Mode() != tc.want {
				t.Fatalf("Mode() = %q, want %q", sess.Mode(), tc.want)
			}
		})
	}
}

func TestSessionPopulatesAndNaturalizes(t *testing.T) {
	sess, err := BuildSession(ModeMulti, demoSnapshot(), prefs.Prefs{})
	if err != nil {
		t.Fatalf("BuildSession returned error: %v", err)
	}
	sel := sess.Selector()
	if sel.Empty() {
		t.Fatal("selector is empty after populating the demo catalog")
	}
	if got := sel.Title(); got != "Field kit" {
		t.Fatalf("Title() = %q, want demo catalog title", got)
	}

	knife, _ := sel.FindEntryBySubject("knife_combat")
	if knife == nil {
		t.Fatal("carried item missing from the selector")
	}
	if got := sel.Categories().Get(knife.CategoryRef()).Name; got != "WEAPONS" {
		t.Fatalf("carried category = %q, want WEAPONS", got)
	}

	rope, _ := sel.FindEntryBySubject("rope_30ft")
	if rope == nil {
		t.Fatal("gear item missing from the selector")
	}
	if got := sel.Categories().Get(rope.CategoryRef()).Name; got != "TOOLS (backpack)" {
		t.Fatalf("gear category = %q, want naturalized origin", got)
	}

	crowbar, _ := sel.FindEntryBySubject("crowbar")
	if crowbar == nil {
		t.Fatal("ground item missing from the selector")
	}
	if got := sel.Categories().Get(crowbar.CategoryRef()).Name; got != "TOOLS (floor)" {
		t.Fatalf("ground category = %q, want naturalized origin", got)
	}

	jerky, _ := sel.FindEntryBySubject("jerky")
	if jerky == nil || jerky.StackSize() != 4 {
		t.Fatalf("jerky stack = %v, want 4", jerky)
	}
}

func TestPinnedQuickKeysWinOverCatalog(t *testing.T) {
	var p prefs.Prefs
	p.PinKey("flashlight", 'z')

	sess, err := BuildSession(ModePick, demoSnapshot(), p)
	if err != nil {
		t.Fatalf("BuildSession returned error: %v", err)
	}
	sel := sess.Selector()
	if e, _ := sel.FindEntryByKey('z'); e == nil || e.Subject().ID() != "flashlight" {
		t.Fatalf("FindEntryByKey('z') = %v, want flashlight", e)
	}
	// The catalog's own key suggestion is superseded by the pin.
	if e, _ := sel.FindEntryByKey('f'); e != nil {
		t.Fatalf("FindEntryByKey('f') = %v, want nothing before reassignment", e.Subject().ID())
	}
}

func TestEssentialItemsDeniedOnlyInDrop(t *testing.T) {
	drop, err := BuildSession(ModeDrop, demoSnapshot(), prefs.Prefs{})
	if err != nil {
		t.Fatalf("BuildSession returned error: %v", err)
	}
	aid, _ := drop.Selector().FindEntryBySubject("first_aid")
	if aid == nil {
		t.Fatal("essential item missing from the drop selector")
	}
	if aid.IsSelectable() {
		t.Fatal("essential item is selectable in a drop session")
	}
	if got := aid.Denial(); got != "essential" {
		t.Fatalf("Denial() = %q, want essential", got)
	}

	multi, err := BuildSession(ModeMulti, demoSnapshot(), prefs.Prefs{})
	if err != nil {
		t.Fatalf("BuildSession returned error: %v", err)
	}
	aid, _ = multi.Selector().FindEntryBySubject("first_aid")
	if aid == nil || !aid.IsSelectable() {
		t.Fatal("essential item not selectable outside drop sessions")
	}
}

func TestSyncCatalogRebuildsAndReplays(t *testing.T) {
	snapA := smallSnapshot(
		catalog.Item{ID: "rock", Name: "rock", Category: "tools", Count: 3, Source: catalog.SourceCarried},
	)
	sess, err := BuildSession(ModeMulti, snapA, prefs.Prefs{})
	if err != nil {
		t.Fatalf("BuildSession returned error: %v", err)
	}
	sess.Selector().PrepareLayout(80, 10)
	sess.OnInput(selection.Input{Action: selection.ActionToggleSelect})
	if got := sess.multi.ChosenCounts()["rock"]; got != 3 {
		t.Fatalf("chosen rock = %d, want 3", got)
	}

	snapB := smallSnapshot(
		catalog.Item{ID: "rock", Name: "rock", Category: "tools", Count: 2, Source: catalog.SourceCarried},
		catalog.Item{ID: "rope", Name: "rope", Category: "tools", Count: 1, Source: catalog.SourceCarried},
	)
	snapB.Generation = 2

	if !sess.SyncCatalog(snapB) {
		t.Fatal("SyncCatalog() = false for a newer generation")
	}
	if got := sess.multi.ChosenCounts()["rock"]; got != 2 {
		t.Fatalf("replayed rock = %d, want clamped to 2", got)
	}
	if e, _ := sess.Selector().FindEntryBySubject("rope"); e == nil {
		t.Fatal("new catalog item missing after rebuild")
	}
	if sess.SyncCatalog(snapB) {
		t.Fatal("SyncCatalog() = true for an unchanged generation")
	}
}

func TestWriteResult_DropWalkthrough(t *testing.T) {
	snap := smallSnapshot(
		catalog.Item{ID: "axe", Name: "axe", Category: "tools", Count: 1, Source: catalog.SourceCarried},
		catalog.Item{ID: "pick", Name: "pick", Category: "tools", Count: 1, Source: catalog.SourceCarried},
		catalog.Item{ID: "rope", Name: "rope", Category: "tools", Count: 2, Source: catalog.SourceCarried},
	)
	sess, err := BuildSession(ModeDrop, snap, prefs.Prefs{})
	if err != nil {
		t.Fatalf("BuildSession returned error: %v", err)
	}
	sess.Selector().PrepareLayout(80, 10)
	for _, action := range []selection.Action{
		selection.ActionDown,
		selection.ActionDown,
		selection.ActionToggleSelect,
		selection.ActionConfirm,
	} {
		sess.OnInput(selection.Input{Action: action})
	}
	if !sess.Done() {
		t.Fatal("Done() = false after the walkthrough")
	}

	var out strings.Builder
	if err := sess.WriteResult(&out); err != nil {
		t.Fatalf("WriteResult returned error: %v", err)
	}
	if got := out.String(); got != "2\trope\n" {
		t.Fatalf("WriteResult output = %q, want %q", got, "2\trope\n")
	}
}

func TestWriteResult_CanceledPrintsNothing(t *testing.T) {
	sess, err := BuildSession(ModePick, demoSnapshot(), prefs.Prefs{})
	if err != nil {
		t.Fatalf("BuildSession returned error: %v", err)
	}
	sess.Selector().PrepareLayout(80, 10)
	sess.OnInput(selection.Input{Action: selection.ActionCancel})

	var out strings.Builder
	if err := sess.WriteResult(&out); err != nil {
		t.Fatalf("WriteResult returned error: %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("WriteResult output = %q, want empty after cancel", out.String())
	}
}

func TestStatsFlagOverweight(t *testing.T) {
	snap := smallSnapshot(
		catalog.Item{ID: "anvil", Name: "anvil", Category: "tools", Count: 1, WeightG: 20000, VolumeML: 3000, Source: catalog.SourceCarried},
	)
	sess, err := BuildSession(ModeMulti, snap, prefs.Prefs{})
	if err != nil {
		t.Fatalf("BuildSession returned error: %v", err)
	}
	sess.Selector().PrepareLayout(80, 10)

	lines := sess.stats()
	if len(lines) != 2 || lines[0].Over {
		t.Fatalf("stats before choosing = %+v, want nothing over", lines)
	}

	sess.OnInput(selection.Input{Action: selection.ActionToggleSelect})
	lines = sess.stats()
	if !lines[0].Over {
		t.Fatalf("weight line = %+v, want flagged over capacity", lines[0])
	}
	if lines[1].Over {
		t.Fatalf("volume line = %+v, want under capacity", lines[1])
	}
}

func TestPickSessionStats(t *testing.T) {
	sess, err := BuildSession(ModePick, demoSnapshot(), prefs.Prefs{})
	if err != nil {
		t.Fatalf("BuildSession returned error: %v", err)
	}
	lines := sess.stats()
	if len(lines) != 1 || lines[0].Label != "Items" {
		t.Fatalf("pick stats = %+v, want a single item-count line", lines)
	}
}

func TestFormatHelpers(t *testing.T) {
	cases := []struct {
		got  string
		want string
	}{
		{formatWeight(410), "410 g"},
		{formatWeight(2100), "2.1 kg"},
		{formatVolume(999), "999 ml"},
		{formatVolume(1600), "1.6 L"},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Errorf("format = %q, want %q", tc.got, tc.want)
		}
	}
}
