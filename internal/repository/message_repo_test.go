package repository

import "testing"

func TestLikeEscaper(t *testing.T) {
	cases := []struct {
		query string
		want  string
	}{
		{"chest", "chest"},
		{"100%", `100\%`},
		{"a_b", `a\_b`},
		{`back\slash`, `back\\slash`},
		{`%_\`, `\%\_\\`},
	}
	for _, c := range cases {
		if got := likeEscaper.Replace(c.query); got != c.want {
			t.Fatalf("likeEscaper.Replace(%q) = %q, want %q", c.query, got, c.want)
		}
	}
}
