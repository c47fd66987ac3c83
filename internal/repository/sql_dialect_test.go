package repository

import "testing"

func TestLikeOperatorByDialect(t *testing.T) {
	cases := []struct {
		dialect string
		want    string
	}{
		{"sqlite", "LIKE"},
		{"postgres", "ILIKE"},
		{"postgresql", "ILIKE"},
		{"  Postgres  ", "ILIKE"},
		{"", "LIKE"},
		{"mysql", "LIKE"},
	}
	for _, tc := range cases {
		if got := likeOperatorByDialect(tc.dialect); got != tc.want {
			t.Fatalf("dialect=%q want %s got %s", tc.dialect, tc.want, got)
		}
	}
}

func TestDBDialectNameNilDB(t *testing.T) {
	if got := dbDialectName(nil); got != "sqlite" {
		t.Fatalf("nil db dialect want sqlite got %s", got)
	}
}

func TestJSONArrayLikePattern(t *testing.T) {
	if got := jsonArrayLikePattern("oily"); got != `%"oily"%` {
		t.Fatalf(`pattern want %%"oily"%% got %s`, got)
	}
	if got := jsonArrayLikePattern("  duong-am  "); got != `%"duong-am"%` {
		t.Fatalf("pattern should trim value, got %s", got)
	}
}
