package selection

import "testing"

func TestPickConfirmTakesCursorRow(t *testing.T) {
	p := NewPickSelector(newTestPreset())
	p.AddCarriedStacks(carriedStacks("alpha", "bravo")...)
	p.PrepareLayout(80, 10)

	p.OnInput(Input{Action: ActionDown})
	p.OnInput(Input{Action: ActionConfirm})
	if !p.Done() {
		t.Fatal("Done() = false after confirm")
	}
	got, ok := p.Result()
	if !ok || got.ID() != "bravo" {
		t.Fatalf("Result() = %v/%v, want bravo", got, ok)
	}
}

func TestPickQuickKeyResolvesImmediately(t *testing.T) {
	p := NewPickSelector(newTestPreset())
	p.AddCarriedStacks(Stack{Subject: keyedSub("axe", "axe", catTools, 'x'), Count: 1})
	p.AddGroundStacks("floor", Stack{Subject: sub("rock", "rock", catFood), Count: 1})
	p.PrepareLayout(80, 10)

	p.OnInput(Input{Action: ActionKey, Key: 'x'})
	if !p.Done() {
		t.Fatal("Done() = false after quick key")
	}
	if got, ok := p.Result(); !ok || got.ID() != "axe" {
		t.Fatalf("Result() = %v/%v, want axe", got, ok)
	}
}

func TestPickQuickKeyOnDeniedEntryOnlyJumps(t *testing.T) {
	preset := newTestPreset()
	preset.deny["dagger"] = "cursed"
	p := NewPickSelector(preset)
	p.AddCarriedStacks(
		Stack{Subject: keyedSub("dagger", "dagger", catTools, 'd'), Count: 1},
		Stack{Subject: sub("rope", "rope", catTools), Count: 1},
	)
	p.PrepareLayout(80, 10)

	p.OnInput(Input{Action: ActionKey, Key: 'd'})
	if p.Done() {
		t.Fatal("Done() = true, want unresolved for a denied entry")
	}
	if _, ok := p.Result(); ok {
		t.Fatal("Result() ok = true, want false")
	}
}

func TestMultiToggleMirrorsIntoSummary(t *testing.T) {
	m := NewMultiSelector(newTestPreset())
	m.AddCarriedStacks(
		Stack{Subject: sub("rock", "rock", catTools), Count: 3},
		Stack{Subject: sub("rope", "rope", catTools), Count: 1},
	)
	m.PrepareLayout(80, 10)

	m.OnInput(Input{Action: ActionToggleSelect})
	mirror := m.summary.FindBySubject("rock")
	if mirror == nil {
		t.Fatal("summary has no mirror for rock")
	}
	if mirror.ChosenCount != 3 {
		t.Fatalf("mirror ChosenCount = %d, want 3", mirror.ChosenCount)
	}
	if got := chosenAmount(mirror); got != "3" {
		t.Fatalf("chosenAmount = %q, want %q", got, "3")
	}
	if !m.summary.Visible() {
		t.Fatal("summary hidden while holding entries")
	}

	src := m.columns[carriedColumn].FindBySubject("rock")
	m.SetChosen(src, 2)
	if got := chosenAmount(m.summary.FindBySubject("rock")); got != "2 of 3" {
		t.Fatalf("chosenAmount = %q, want %q", got, "2 of 3")
	}

	m.SetChosen(src, 0)
	if m.summary.FindBySubject("rock") != nil {
		t.Fatal("mirror survived a zero chosen count")
	}
	if m.summary.Visible() {
		t.Fatal("empty summary still visible")
	}

	m.OnInput(Input{Action: ActionConfirm})
	if m.Done() {
		t.Fatal("Done() = true with nothing chosen")
	}

	m.OnInput(Input{Action: ActionToggleSelect})
	m.OnInput(Input{Action: ActionConfirm})
	if !m.Done() {
		t.Fatal("Done() = false after confirm with a chosen entry")
	}
	res := m.Result()
	if len(res) != 1 || res[0].Subject.ID() != "rock" || res[0].Count != 3 {
		t.Fatalf("Result() = %v, want rock x3", res)
	}
}

func TestMultiCategorySweepTogglesWholeGroup(t *testing.T) {
	m := NewMultiSelector(newTestPreset())
	m.AddCarriedStacks(
		Stack{Subject: sub("rock", "rock", catTools), Count: 3},
		Stack{Subject: sub("rope", "rope", catTools), Count: 1},
	)
	m.PrepareLayout(80, 10)

	m.OnInput(Input{Action: ActionToggleMode})
	m.OnInput(Input{Action: ActionToggleSelect})
	counts := m.ChosenCounts()
	if counts["rock"] != 3 || counts["rope"] != 1 {
		t.Fatalf("ChosenCounts() = %v, want rock:3 rope:1", counts)
	}

	// A fully chosen sweep clears on the next toggle.
	m.OnInput(Input{Action: ActionToggleSelect})
	if got := m.ChosenCounts(); len(got) != 0 {
		t.Fatalf("ChosenCounts() = %v, want empty", got)
	}
}

func TestCompareEvictsOldestPick(t *testing.T) {
	c := NewCompareSelector(newTestPreset())
	c.AddCarriedStacks(carriedStacks("alpha", "bravo", "charlie")...)
	c.PrepareLayout(80, 10)

	c.OnInput(Input{Action: ActionToggleSelect})
	c.OnInput(Input{Action: ActionConfirm})
	if c.Done() {
		t.Fatal("Done() = true with a single pick")
	}

	c.OnInput(Input{Action: ActionDown})
	c.OnInput(Input{Action: ActionToggleSelect})
	c.OnInput(Input{Action: ActionDown})
	c.OnInput(Input{Action: ActionToggleSelect})

	if c.summary.FindBySubject("alpha") != nil {
		t.Fatal("evicted pick still mirrored in the summary")
	}
	c.OnInput(Input{Action: ActionConfirm})
	if !c.Done() {
		t.Fatal("Done() = false with a full pair")
	}
	first, second, ok := c.Result()
	if !ok || first.ID() != "bravo" || second.ID() != "charlie" {
		t.Fatalf("Result() = %v/%v/%v, want bravo,charlie", first, second, ok)
	}
}

func TestCompareToggleRetractsPick(t *testing.T) {
	c := NewCompareSelector(newTestPreset())
	c.AddCarriedStacks(carriedStacks("alpha", "bravo")...)
	c.PrepareLayout(80, 10)

	c.OnInput(Input{Action: ActionToggleSelect})
	c.OnInput(Input{Action: ActionToggleSelect})
	if len(c.compared) != 0 {
		t.Fatalf("compared = %d entries, want 0 after retract", len(c.compared))
	}
	if got := c.ChosenCounts(); len(got) != 0 {
		t.Fatalf("ChosenCounts() = %v, want empty", got)
	}
}

func TestDropWalkthrough(t *testing.T) {
	d := NewDropSelector(newTestPreset())
	d.AddCarriedStacks(
		Stack{Subject: sub("axe", "axe", catTools), Count: 1},
		Stack{Subject: sub("pick", "pick", catTools), Count: 1},
		Stack{Subject: sub("rope", "rope", catTools), Count: 2},
	)
	d.PrepareLayout(80, 10)

	for _, in := range []Input{
		{Action: ActionDown},
		{Action: ActionDown},
		{Action: ActionToggleSelect},
		{Action: ActionConfirm},
	} {
		d.OnInput(in)
	}
	if !d.Done() {
		t.Fatal("Done() = false after the walkthrough")
	}
	res := d.Result()
	if len(res) != 1 || res[0].Subject.ID() != "rope" || res[0].Count != 2 {
		t.Fatalf("Result() = %v, want rope x2", res)
	}
}

func TestCanceledSessionsReturnNoResult(t *testing.T) {
	t.Run("pick", func(t *testing.T) {
		p := NewPickSelector(newTestPreset())
		p.AddCarriedStacks(carriedStacks("rope")...)
		p.PrepareLayout(80, 10)
		p.OnInput(Input{Action: ActionCancel})
		if _, ok := p.Result(); ok {
			t.Fatal("Result() ok = true after cancel")
		}
	})
	t.Run("multi", func(t *testing.T) {
		m := NewMultiSelector(newTestPreset())
		m.AddCarriedStacks(carriedStacks("rope")...)
		m.PrepareLayout(80, 10)
		m.OnInput(Input{Action: ActionToggleSelect})
		m.OnInput(Input{Action: ActionCancel})
		if got := m.Result(); got != nil {
			t.Fatalf("Result() = %v, want nil after cancel", got)
		}
	})
	t.Run("compare", func(t *testing.T) {
		c := NewCompareSelector(newTestPreset())
		c.AddCarriedStacks(carriedStacks("alpha", "bravo")...)
		c.PrepareLayout(80, 10)
		c.OnInput(Input{Action: ActionToggleSelect})
		c.OnInput(Input{Action: ActionCancel})
		if _, _, ok := c.Result(); ok {
			t.Fatal("Result() ok = true after cancel")
		}
	})
	t.Run("drop", func(t *testing.T) {
		d := NewDropSelector(newTestPreset())
		d.AddCarriedStacks(carriedStacks("rope")...)
		d.PrepareLayout(80, 10)
		d.OnInput(Input{Action: ActionToggleSelect})
		d.OnInput(Input{Action: ActionCancel})
		if got := d.Result(); got != nil {
			t.Fatalf("Result() = %v, want nil after cancel", got)
		}
	})
}

func TestReplayChosenClampsToNewAvailability(t *testing.T) {
	m := NewMultiSelector(newTestPreset())
	m.AddCarriedStacks(Stack{Subject: sub("rock", "rock", catTools), Count: 3})
	m.PrepareLayout(80, 10)
	m.OnInput(Input{Action: ActionToggleSelect})

	counts := m.ChosenCounts()
	if counts["rock"] != 3 {
		t.Fatalf("ChosenCounts() = %v, want rock:3", counts)
	}

	m.Reset()
	if !m.Empty() {
		t.Fatal("Empty() = false after Reset")
	}
	m.AddCarriedStacks(
		Stack{Subject: sub("rock", "rock", catTools), Count: 2},
		Stack{Subject: sub("rope", "rope", catTools), Count: 1},
	)
	m.ReplayChosen(counts)

	if got := m.ChosenCounts()["rock"]; got != 2 {
		t.Fatalf("replayed count = %d, want clamped to 2", got)
	}
	if m.summary.FindBySubject("rock") == nil {
		t.Fatal("summary not rebuilt by replay")
	}
}

func TestSummaryActivatesOnlyWhenPaginated(t *testing.T) {
	m := NewMultiSelector(newTestPreset())
	m.AddCarriedStacks(
		Stack{Subject: sub("a", "a", catTools), Count: 1},
		Stack{Subject: sub("b", "b", catTools), Count: 1},
		Stack{Subject: sub("c", "c", catTools), Count: 1},
		Stack{Subject: sub("d", "d", catTools), Count: 1},
		Stack{Subject: sub("e", "e", catTools), Count: 1},
	)
	m.PrepareLayout(80, 10)
	m.OnInput(Input{Action: ActionToggleMode})
	m.OnInput(Input{Action: ActionToggleSelect})
	if got := len(m.ChosenCounts()); got != 5 {
		t.Fatalf("ChosenCounts() = %d entries, want 5", got)
	}

	// On one page the summary stays passive.
	m.OnInput(Input{Action: ActionSwitchColumn})
	if m.ActiveColumn() == m.summary {
		t.Fatal("single-page summary became active")
	}

	// Shrink the client until the summary paginates.
	m.PrepareLayout(80, 4)
	m.OnInput(Input{Action: ActionSwitchColumn})
	if m.ActiveColumn() != m.summary {
		t.Fatal("paginated summary not reachable by column switch")
	}

	// The summary never takes direct selection.
	m.OnInput(Input{Action: ActionToggleSelect})
	if got := len(m.ChosenCounts()); got != 5 {
		t.Fatalf("ChosenCounts() = %d entries after summary toggle, want 5", got)
	}
}
