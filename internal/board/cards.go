package board

import (
	"fmt"

	"cabo-replay/internal/snapshot"
)

const unknownMark = "?"

func syntheticCardID(owner string, idx int) string {
	if owner == "" {
		owner = "unknown"
	}
	return fmt.Sprintf("%s-slot-%d", owner, idx)
}

func placeholderCard(owner string, idx int) CardView {
	return CardView{
		CardID: syntheticCardID(owner, idx),
		Rank:   unknownMark,
		Suit:   unknownMark,
	}
}

// resolveCard normalizes one raw hand/pile slot. Anything that is not an
// object becomes the placeholder; an object with missing fields keeps the
// placeholder defaults per field.
func resolveCard(raw any, owner string, idx int) CardView {
	m, ok := raw.(map[string]any)
	if !ok {
		return placeholderCard(owner, idx)
	}
	d := snapshot.Doc(m)
	id := d.Str("cardId")
	if id == "" {
		id = syntheticCardID(owner, idx)
	}
	return CardView{
		CardID: id,
		Rank:   d.StrOr("rank", unknownMark),
		Suit:   d.StrOr("suit", unknownMark),
		Points: d.Int("points"),
	}
}
