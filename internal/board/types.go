package board

// Player turn-phase tags as they appear in captured state.
const (
	StatusInitialPeek = "initial_peek"
	StatusDrawingCard = "drawing_card"
	StatusPlayingCard = "playing_card"
	StatusWaiting     = "waiting"
)

// Layout constants consumed by the view layer. An empty pile still reserves
// one card footprint so the board does not collapse.
const (
	CardWidthPX  = 60
	CardHeightPX = 84

	pileStackDepth  = 5
	stackOffsetPX   = 2
	handSpacingPX   = 14
	defaultTurnSecs = 30
	timerDefaultKey = "default"
)

// CardView is a normalized card. Slots whose raw entry is absent or
// malformed resolve to the placeholder: rank and suit "?", zero points, and
// a synthetic id derived from the owning zone and slot position.
type CardView struct {
	CardID string `json:"card_id"`
	Rank   string `json:"rank"`
	Suit   string `json:"suit"`
	Points int    `json:"points"`
}

// StackCardView is one entry of a cascading card stack (a pile or an
// opponent's strip). OffsetPX is the horizontal shift from the zone origin.
type StackCardView struct {
	Card     CardView `json:"card"`
	FaceUp   bool     `json:"face_up"`
	OffsetPX int      `json:"offset_px"`
}

type OpponentView struct {
	PlayerID      string          `json:"player_id"`
	Name          string          `json:"name"`
	Status        string          `json:"status"`
	Score         int             `json:"score"`
	Points        int             `json:"points"`
	HandSize      int             `json:"hand_size"`
	IsCurrentTurn bool            `json:"is_current_turn"`
	Hand          []StackCardView `json:"hand"`
}

type BoardPilesView struct {
	DrawPile    []StackCardView `json:"draw_pile"`
	DiscardPile []StackCardView `json:"discard_pile"`
	MatchPot    int             `json:"match_pot"`
}

type HandCardView struct {
	Card     CardView `json:"card"`
	Selected bool     `json:"selected"`
}

type MyHandView struct {
	Cards         []HandCardView `json:"cards"`
	SelectedIndex int            `json:"selected_index"`
	Status        string         `json:"status,omitempty"`
	TurnTimeLimit int            `json:"turn_time_limit,omitempty"`
	ShowTimer     bool           `json:"show_timer"`
}

// BoardView is the full projection of one snapshot for one observer.
type BoardView struct {
	Opponents []OpponentView `json:"opponents"`
	Piles     BoardPilesView `json:"piles"`
	MyHand    MyHandView     `json:"my_hand"`
}
