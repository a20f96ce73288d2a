package catalog

// Default returns the built-in demo catalog. It is deliberately wide
// enough to exercise paging, side columns, and quick keys out of the box.
func Default() Catalog {
	return Catalog{
		Title: "Field kit",
		Categories: []Category{
			{ID: "weapons", Name: "WEAPONS", Rank: 10},
			{ID: "tools", Name: "TOOLS", Rank: 20},
			{ID: "food", Name: "FOOD AND DRINK", Rank: 30},
			{ID: "clothing", Name: "CLOTHING", Rank: 40},
		},
		Items: []Item{
			{ID: "knife_combat", Name: "combat knife", Category: "weapons", Count: 1, WeightG: 410, VolumeML: 250, Key: "k", Source: SourceCarried},
			{ID: "hatchet", Name: "hatchet", Category: "weapons", Count: 1, WeightG: 900, VolumeML: 600, Source: SourceCarried},
			{ID: "multitool", Name: "multi-tool", Category: "tools", Count: 1, WeightG: 170, VolumeML: 75, Key: "m", Source: SourceCarried},
			{ID: "duct_tape", Name: "duct tape", Category: "tools", Count: 2, WeightG: 200, VolumeML: 250, Source: SourceCarried},
			{ID: "matches", Name: "matchbook", Category: "tools", Count: 3, WeightG: 10, VolumeML: 15, Source: SourceCarried, Essential: true},
			{ID: "water_bottle", Name: "water bottle", Category: "food", Count: 1, WeightG: 1050, VolumeML: 1000, Key: "w", Source: SourceCarried, Essential: true},
			{ID: "jerky", Name: "beef jerky", Category: "food", Count: 4, WeightG: 30, VolumeML: 40, Source: SourceCarried},
			{ID: "poncho", Name: "rain poncho", Category: "clothing", Count: 1, WeightG: 230, VolumeML: 450, Source: SourceCarried},
			{ID: "rope_30ft", Name: "rope (30 ft)", Category: "tools", Count: 1, WeightG: 2100, VolumeML: 1600, Source: SourceGear, Origin: "backpack"},
			{ID: "first_aid", Name: "first aid kit", Category: "tools", Count: 1, WeightG: 540, VolumeML: 900, Source: SourceGear, Origin: "backpack", Essential: true},
			{ID: "beans_canned", Name: "canned beans", Category: "food", Count: 2, WeightG: 450, VolumeML: 420, Source: SourceGear, Origin: "backpack"},
			{ID: "crowbar", Name: "crowbar", Category: "tools", Count: 1, WeightG: 1800, VolumeML: 700, Source: SourceGround, Origin: "floor"},
			{ID: "socks_wool", Name: "wool socks", Category: "clothing", Count: 2, WeightG: 70, VolumeML: 120, Source: SourceGround, Origin: "floor"},
			{ID: "flashlight", Name: "flashlight", Category: "tools", Count: 1, WeightG: 160, VolumeML: 110, Key: "f", Source: SourceGround, Origin: "floor"},
		},
	}
}
