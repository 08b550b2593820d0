package icons

import "testing"

func TestRegistryCoversConfiguredIcons(t *testing.T) {
	for _, name := range []string{"Lightbulb", "Sparkles", "Zap", "Moon", "Sun", "Star", "Flame", "Radio"} {
		if !Has(name) {
			t.Errorf("icon %q missing from registry", name)
		}
		shapes, ok := Lookup(name)
		if !ok || len(shapes) == 0 {
			t.Errorf("icon %q has no shapes", name)
		}
	}
	if Has("Rocket") {
		t.Error("unexpected icon Rocket")
	}
	if len(Names()) != 8 {
		t.Errorf("Names() = %v", Names())
	}
}

func TestShapesStayInUnitBox(t *testing.T) {
	in := func(v float64) bool { return v >= 0 && v <= 1 }

	for _, name := range Names() {
		shapes, _ := Lookup(name)
		for i, s := range shapes {
			var ok bool
			switch s.Kind {
			case Disc, Ring:
				ok = in(s.X-s.R) && in(s.X+s.R) && in(s.Y-s.R) && in(s.Y+s.R)
			case Segment, Box:
				ok = in(s.X) && in(s.Y) && in(s.X2) && in(s.Y2)
			}
			if !ok {
				t.Errorf("%s shape %d escapes the unit box: %+v", name, i, s)
			}
		}
	}
}

func TestMoonUsesKnockout(t *testing.T) {
	shapes, _ := Lookup("Moon")
	knockouts := 0
	for _, s := range shapes {
		if s.Knockout {
			knockouts++
		}
	}
	if knockouts != 1 {
		t.Errorf("Moon knockouts = %d, want 1", knockouts)
	}
}
