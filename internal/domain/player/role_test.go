package player

import "testing"

func TestClassifyRole(t *testing.T) {
	t.Parallel()

	cases := map[string]Role{
		"Batting All-Rounder":   RoleAllRounder,
		"Bowling Allrounder":    RoleAllRounder,
		"WK-Batsman":            RoleBatsman,
		"Wicketkeeper Batter":   RoleWicketKeeper,
		"Right-arm fast BOWLER": RoleBowler,
		"Batsman":               RoleBatsman,
		"":                      RoleOther,
		"coach":                 RoleOther,
	}
	for input, want := range cases {
		if got := ClassifyRole(input); got != want {
			t.Fatalf("ClassifyRole(%q): want=%s got=%s", input, want, got)
		}
	}
}

func TestParseRole(t *testing.T) {
	t.Parallel()

	if role, ok := ParseRole(" wicket-keeper "); !ok || role != RoleWicketKeeper {
		t.Fatalf("expected Wicket-Keeper, got=%s ok=%t", role, ok)
	}
	if _, ok := ParseRole("captain"); ok {
		t.Fatalf("expected unknown role to be rejected")
	}
}
