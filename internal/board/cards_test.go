package board

import "testing"

func TestResolveCardPlaceholder(t *testing.T) {
	for _, raw := range []any{nil, "junk", 42.0, []any{"not", "a", "card"}} {
		got := resolveCard(raw, "p1", 3)
		if got.Rank != "?" || got.Suit != "?" || got.Points != 0 {
			t.Fatalf("raw %v: got %+v, want ?/?/0", raw, got)
		}
		if got.CardID != "p1-slot-3" {
			t.Fatalf("raw %v: CardID = %q, want p1-slot-3", raw, got.CardID)
		}
	}
}

func TestResolveCardPartialObject(t *testing.T) {
	got := resolveCard(map[string]any{"rank": "Q"}, "p1", 0)
	if got.Rank != "Q" {
		t.Fatalf("Rank = %q, want Q", got.Rank)
	}
	if got.Suit != "?" {
		t.Fatalf("Suit = %q, want ?", got.Suit)
	}
	if got.CardID != "p1-slot-0" {
		t.Fatalf("CardID = %q, want synthetic p1-slot-0", got.CardID)
	}
}

func TestResolveCardFull(t *testing.T) {
	got := resolveCard(map[string]any{"cardId": "c9", "rank": "9", "suit": "clubs", "points": 9.0}, "p1", 0)
	want := CardView{CardID: "c9", Rank: "9", Suit: "clubs", Points: 9}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestSyntheticCardIDUnknownOwner(t *testing.T) {
	if got := syntheticCardID("", 2); got != "unknown-slot-2" {
		t.Fatalf("got %q, want unknown-slot-2", got)
	}
}
