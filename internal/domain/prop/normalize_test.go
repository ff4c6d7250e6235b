package prop

import "testing"

func TestNormalizeName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "LeBron James", want: "lebron james"},
		{name: "punctuation", in: "D'Angelo Russell", want: "dangelo russell"},
		{name: "initials", in: "C.J. McCollum", want: "cj mccollum"},
		{name: "hyphen", in: "Shai Gilgeous-Alexander", want: "shai gilgeousalexander"},
		{name: "whitespace runs", in: "  Luka   Doncic  ", want: "luka doncic"},
		{name: "empty", in: "", want: ""},
		{name: "only punctuation", in: ".-'", want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeName(tc.in); got != tc.want {
				t.Fatalf("NormalizeName(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeStat(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "three pointer synonym", in: "3-Pointers Made", want: "three pointers made"},
		{name: "threes shorthand", in: "3PM", want: "three pointers made"},
		{name: "pra combo", in: "Pts+Rebs+Asts", want: "points rebounds assists"},
		{name: "pra shorthand", in: "PRA", want: "points rebounds assists"},
		{name: "pass-through case fold", in: "Double Doubles", want: "double doubles"},
		{name: "trimmed", in: "  Points  ", want: "points"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeStat(tc.in); got != tc.want {
				t.Fatalf("NormalizeStat(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestBuildMergeKeyStability(t *testing.T) {
	t.Parallel()

	a := Offer{PlayerName: "LeBron James", StatType: "Points", SportID: "NBA"}
	b := Offer{PlayerName: "lebron  james", StatType: "points", SportID: "NBA"}
	if a.MergeKey() != b.MergeKey() {
		t.Fatalf("expected equal merge keys, got %q vs %q", a.MergeKey(), b.MergeKey())
	}

	c := Offer{PlayerName: "LeBron James", StatType: "Points", SportID: "nba"}
	if a.MergeKey() == c.MergeKey() {
		t.Fatalf("sport id must not be normalized: %q", a.MergeKey())
	}
}

func TestParseAmericanPrice(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want int
	}{
		{in: "+150", want: 150},
		{in: "-110", want: -110},
		{in: "100", want: 100},
		{in: "", want: 0},
		{in: "EVEN", want: 0},
		{in: " +105 ", want: 105},
	}

	for _, tc := range cases {
		if got := ParseAmericanPrice(tc.in); got != tc.want {
			t.Fatalf("ParseAmericanPrice(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
