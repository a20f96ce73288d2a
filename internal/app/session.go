package app

import (
	"fmt"
	"io"
	"sort"

	"github.com/five82/picket/internal/catalog"
	"github.com/five82/picket/internal/prefs"
	"github.com/five82/picket/internal/selection"
	"github.com/five82/picket/internal/state"
)

// Selection modes.
const (
	ModePick    = "pick"
	ModeMulti   = "multi"
	ModeCompare = "compare"
	ModeDrop    = "drop"
)

// Demo carrying capacity used for the stat lines.
const (
	carryWeightLimitG  = 15000
	carryVolumeLimitML = 12000
)

// catalogSubject adapts a catalog item to the selection engine.
type catalogSubject struct {
	item catalog.Item
	cat  selection.Category
	key  rune
}

func (s catalogSubject) ID() string                   { return s.item.ID }
func (s catalogSubject) Name() string                 { return s.item.Name }
func (s catalogSubject) Category() selection.Category { return s.cat }
func (s catalogSubject) QuickKey() rune               { return s.key }

// Session wraps one selector variant with the catalog bookkeeping the
// frontends need: reload synchronization and result extraction.
type Session struct {
	selection.Session

	mode       string
	userPrefs  prefs.Prefs
	generation int
	items      map[string]catalog.Item

	pick    *selection.PickSelector
	multi   *selection.MultiSelector
	compare *selection.CompareSelector
	drop    *selection.DropSelector
}

// BuildSession constructs the selector variant for mode and populates it
// from the snapshot's catalog.
func BuildSession(mode string, snap state.Snapshot, userPrefs prefs.Prefs) (*Session, error) {
	s := &Session{mode: mode, userPrefs: userPrefs}
	switch mode {
	case "", ModePick:
		s.mode = ModePick
		s.pick = selection.NewPickSelector(newListPreset())
		s.Session = s.pick
	case ModeMulti:
		s.multi = selection.NewMultiSelector(newListPreset())
		s.Session = s.multi
	case ModeCompare:
		s.compare = selection.NewCompareSelector(newListPreset())
		s.Session = s.compare
	case ModeDrop:
		s.drop = selection.NewDropSelector(newDropPreset())
		s.Session = s.drop
	default:
		return nil, fmt.Errorf("unknown mode %q", mode)
	}
	s.populate(snap)
	s.Selector().SetStatsProvider(s.stats)
	return s, nil
}

// Mode returns the resolved selection mode.
func (s *Session) Mode() string {
	return s.mode
}

// populate feeds the catalog's items into the selector columns, grouping
// gear and ground items by origin so their categories naturalize.
func (s *Session) populate(snap state.Snapshot) {
	cat := snap.Catalog
	s.items = make(map[string]catalog.Item, len(cat.Items))

	cats := make(map[string]selection.Category, len(cat.Categories))
	for _, c := range cat.Categories {
		cats[c.ID] = selection.Category{ID: c.ID, Name: c.Name, Rank: c.Rank}
	}

	var carried []selection.Stack
	gear := make(map[string][]selection.Stack)
	ground := make(map[string][]selection.Stack)
	for _, item := range cat.Items {
		s.items[item.ID] = item
		subj := catalogSubject{item: item, cat: cats[item.Category], key: s.quickKeyFor(item)}
		stack := selection.Stack{Subject: subj, Count: item.Count}
		switch item.Source {
		case catalog.SourceGear:
			gear[item.Origin] = append(gear[item.Origin], stack)
		case catalog.SourceGround:
			ground[item.Origin] = append(ground[item.Origin], stack)
		default:
			carried = append(carried, stack)
		}
	}

	sel := s.Selector()
	sel.AddCarriedStacks(carried...)
	for _, origin := range sortedOrigins(gear) {
		sel.AddGearStacks(origin, gear[origin]...)
	}
	for _, origin := range sortedOrigins(ground) {
		sel.AddGroundStacks(origin, ground[origin]...)
	}
	sel.SetTitle(cat.Title)
	sel.SetHint(hintFor(s.mode))
	s.generation = snap.Generation
}

// quickKeyFor resolves an item's quick key: a pinned preference wins over
// the catalog's own suggestion.
func (s *Session) quickKeyFor(item catalog.Item) rune {
	if pinned := s.userPrefs.KeyFor(item.ID); pinned != 0 {
		return pinned
	}
	return item.KeyRune()
}

// SyncCatalog rebuilds the selector when the store holds a newer catalog
// generation, replaying chosen counts against the fresh entries. It
// reports whether a rebuild happened.
func (s *Session) SyncCatalog(snap state.Snapshot) bool {
	if snap.Generation == s.generation {
		return false
	}
	counts := s.chosenCounts()
	s.Selector().Reset()
	s.populate(snap)
	switch {
	case s.multi != nil:
		s.multi.ReplayChosen(counts)
	case s.compare != nil:
		s.compare.ReplayChosen(counts)
	case s.drop != nil:
		s.drop.ReplayChosen(counts)
	}
	return true
}

// chosenCounts snapshots chosen counts for the variants that have them,
// nil for pick sessions.
func (s *Session) chosenCounts() map[string]int {
	switch {
	case s.multi != nil:
		return s.multi.ChosenCounts()
	case s.compare != nil:
		return s.compare.ChosenCounts()
	case s.drop != nil:
		return s.drop.ChosenCounts()
	}
	return nil
}

// WriteResult prints the session's outcome, one line per subject. Canceled
// sessions print nothing.
func (s *Session) WriteResult(w io.Writer) error {
	switch {
	case s.pick != nil:
		if subj, ok := s.pick.Result(); ok {
			_, err := fmt.Fprintf(w, "%s\n", subj.ID())
			return err
		}
	case s.compare != nil:
		if first, second, ok := s.compare.Result(); ok {
			_, err := fmt.Fprintf(w, "%s\t%s\n", first.ID(), second.ID())
			return err
		}
	case s.multi != nil:
		for _, c := range s.multi.Result() {
			if _, err := fmt.Fprintf(w, "%d\t%s\n", c.Count, c.Subject.ID()); err != nil {
				return err
			}
		}
	case s.drop != nil:
		for _, d := range s.drop.Result() {
			if _, err := fmt.Fprintf(w, "%d\t%s\n", d.Count, d.Subject.ID()); err != nil {
				return err
			}
		}
	}
	return nil
}

// stats produces the footer stat lines: chosen weight and volume against
// the demo capacity, or the catalog size for pick sessions.
func (s *Session) stats() []selection.StatLine {
	counts := s.chosenCounts()
	if counts == nil {
		return []selection.StatLine{
			{Label: "Items", Value: fmt.Sprintf("%d", len(s.items))},
		}
	}
	var weight, volume int
	for id, n := range counts {
		if item, ok := s.items[id]; ok {
			weight += item.WeightG * n
			volume += item.VolumeML * n
		}
	}
	return []selection.StatLine{
		{
			Label: "Weight",
			Value: fmt.Sprintf("%.1f/%.1f kg", float64(weight)/1000, float64(carryWeightLimitG)/1000),
			Over:  weight > carryWeightLimitG,
		},
		{
			Label: "Volume",
			Value: fmt.Sprintf("%.1f/%.1f L", float64(volume)/1000, float64(carryVolumeLimitML)/1000),
			Over:  volume > carryVolumeLimitML,
		},
	}
}

func hintFor(mode string) string {
	switch mode {
	case ModeMulti:
		return "Space toggles · Enter confirms"
	case ModeCompare:
		return "Space marks two rows · Enter compares"
	case ModeDrop:
		return "Space marks · Enter drops"
	default:
		return "Enter picks · letter keys jump"
	}
}

func sortedOrigins(groups map[string][]selection.Stack) []string {
	origins := make([]string, 0, len(groups))
	for origin := range groups {
		origins = append(origins, origin)
	}
	sort.Strings(origins)
	return origins
}

// listPreset renders catalog rows as caption, weight, and volume cells.
type listPreset struct {
	selection.BasePreset
}

func newListPreset() *listPreset {
	p := &listPreset{}
	p.AppendCell(selection.Cell{Text: selection.DefaultCaption})
	p.AppendCell(selection.Cell{Text: weightCell, Title: "WEIGHT"})
	p.AppendCell(selection.Cell{Text: volumeCell, Title: "VOLUME"})
	return p
}

// dropPreset is the list preset plus a denial for essential items.
type dropPreset struct {
	listPreset
}

func newDropPreset() *dropPreset {
	p := &dropPreset{}
	p.AppendCell(selection.Cell{Text: selection.DefaultCaption})
	p.AppendCell(selection.Cell{Text: weightCell, Title: "WEIGHT"})
	p.AppendCell(selection.Cell{Text: volumeCell, Title: "VOLUME"})
	return p
}

func (p *dropPreset) Denial(subj selection.Subject) string {
	if cs, ok := subj.(catalogSubject); ok && cs.item.Essential {
		return "essential"
	}
	return ""
}

func weightCell(e *selection.Entry) string {
	cs, ok := e.Subject().(catalogSubject)
	if !ok {
		return ""
	}
	return formatWeight(cs.item.WeightG * max(e.StackSize(), 1))
}

func volumeCell(e *selection.Entry) string {
	cs, ok := e.Subject().(catalogSubject)
	if !ok {
		return ""
	}
	return formatVolume(cs.item.VolumeML * max(e.StackSize(), 1))
}

func formatWeight(grams int) string {
	if grams >= 1000 {
		return fmt.Sprintf("%.1f kg", float64(grams)/1000)
	}
	return fmt.Sprintf("%d g", grams)
}

func formatVolume(ml int) string {
	if ml >= 1000 {
		return fmt.Sprintf("%.1f L", float64(ml)/1000)
	}
	return fmt.Sprintf("%d ml", ml)
}
