package chardef

import "testing"

func TestCategoryContainsAndIntersects(t *testing.T) {
	c := KANJI.Add(NUMERIC)
	if !c.Contains(KANJI) {
		t.Fatal("expected c to contain KANJI")
	}
	if !c.Contains(c) {
		t.Fatal("a category must contain itself")
	}
	if c.Contains(HIRAGANA) {
		t.Fatal("c must not contain HIRAGANA")
	}
	if !c.Intersects(NUMERIC) {
		t.Fatal("expected intersection with NUMERIC")
	}
	if c.Intersects(HIRAGANA) {
		t.Fatal("must not intersect HIRAGANA")
	}
}

func TestCategoryEachVisitsOnlySetFlags(t *testing.T) {
	c := KANJI.Add(HIRAGANA).Add(USER1)
	var got []Category
	c.Each(func(f Category) { got = append(got, f) })

	want := []Category{KANJI, HIRAGANA, USER1}
	if len(got) != len(want) {
		t.Fatalf("Each visited %d flags, want %d: %v", len(got), len(want), got)
	}
	for i, f := range want {
		if got[i] != f {
			t.Fatalf("Each()[%d] = %v, want %v", i, got[i], f)
		}
	}
}

func TestCategoryEachEmpty(t *testing.T) {
	var c Category
	calls := 0
	c.Each(func(Category) { calls++ })
	if calls != 0 {
		t.Fatalf("Each on empty category called fn %d times, want 0", calls)
	}
}

func TestParseCategoryName(t *testing.T) {
	c, ok := ParseCategoryName("KATAKANA")
	if !ok || c != KATAKANA {
		t.Fatalf("ParseCategoryName(KATAKANA) = %v,%v", c, ok)
	}
	if _, ok := ParseCategoryName("NOT_A_CATEGORY"); ok {
		t.Fatal("expected ok=false for unknown name")
	}
}
