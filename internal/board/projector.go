// Package board projects a captured game snapshot into the data-only view
// models the board renderer consumes. Every derivation is total over
// arbitrary partial documents: missing or malformed fields degrade to
// placeholders and defaults, never to an error.
package board

import (
	"cabo-replay/internal/session"
	"cabo-replay/internal/snapshot"

	"github.com/rs/zerolog/log"
)

// Project derives the full board view for the observer identified by
// currentUserID (empty when unauthenticated).
func Project(doc snapshot.Doc, currentUserID string) BoardView {
	if gameState(doc) == nil {
		log.Debug().Str("current_game_id", doc.Str("currentGameId")).Msg("snapshot has no resolvable game state")
	}
	return BoardView{
		Opponents: DeriveOpponents(doc, currentUserID),
		Piles:     DeriveBoardPiles(doc),
		MyHand:    DeriveMyHand(doc, currentUserID),
	}
}

// ProjectFor resolves the observer through a session store before projecting.
func ProjectFor(doc snapshot.Doc, sess session.Store) BoardView {
	return Project(doc, session.UserID(sess))
}

// gameState walks currentGameId -> games -> gameData -> game_state. Any
// missing segment yields nil, which every caller treats as an empty state.
func gameState(doc snapshot.Doc) snapshot.Doc {
	gameID := doc.Str("currentGameId")
	if gameID == "" {
		return nil
	}
	return doc.Child("games").At(gameID, "gameData", "game_state")
}

// DeriveOpponents lists every player except the current user, each with a
// face-down card strip. Opponents' cards are never revealed, whatever the
// snapshot says about them.
func DeriveOpponents(doc snapshot.Doc, currentUserID string) []OpponentView {
	state := gameState(doc)
	players := state.List("players")
	if len(players) == 0 {
		return nil
	}
	currentTurnID := state.Child("currentPlayer").Str("id")

	out := make([]OpponentView, 0, len(players))
	for _, raw := range players {
		p, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		pd := snapshot.Doc(p)
		id := pd.Str("id")
		if id == currentUserID {
			continue
		}
		hand := pd.List("hand")
		strip := make([]StackCardView, 0, len(hand))
		for i, slot := range hand {
			strip = append(strip, StackCardView{
				Card:     resolveCard(slot, id, i),
				FaceUp:   false,
				OffsetPX: i * handSpacingPX,
			})
		}
		out = append(out, OpponentView{
			PlayerID:      id,
			Name:          pd.StrOr("name", "Unknown"),
			Status:        pd.StrOr("status", "unknown"),
			Score:         pd.Int("score"),
			Points:        pd.Int("points"),
			HandSize:      len(hand),
			IsCurrentTurn: currentTurnID != "" && id == currentTurnID,
			Hand:          strip,
		})
	}
	return out
}

// DeriveBoardPiles projects the draw pile (face-down), discard pile
// (face-up) and match pot. Each pile shows at most the last five cards as a
// cascading stack; the tail of the sequence is the pile's top.
func DeriveBoardPiles(doc snapshot.Doc) BoardPilesView {
	state := gameState(doc)
	return BoardPilesView{
		DrawPile:    pileStack(state.List("drawPile"), "draw", false),
		DiscardPile: pileStack(state.List("discardPile"), "discard", true),
		MatchPot:    state.Int("match_pot"),
	}
}

func pileStack(pile []any, zone string, faceUp bool) []StackCardView {
	start := 0
	if len(pile) > pileStackDepth {
		start = len(pile) - pileStackDepth
	}
	visible := pile[start:]
	out := make([]StackCardView, 0, len(visible))
	for i, slot := range visible {
		out = append(out, StackCardView{
			Card:     resolveCard(slot, zone, start+i),
			FaceUp:   faceUp,
			OffsetPX: i * stackOffsetPX,
		})
	}
	return out
}

// DeriveMyHand projects the observer's own cards (always face-up to the
// owner), the selection marker and the turn timer. The timer duration is
// looked up in the game's timerConfig by status; statuses outside the known
// phase set fall back to the "default" key, and the timer is hidden while
// the status is waiting or unresolved.
func DeriveMyHand(doc snapshot.Doc, currentUserID string) MyHandView {
	my := doc.Child("myHand")
	rawCards := my.List("cards")
	selected := my.IntOr("selectedIndex", -1)

	cards := make([]HandCardView, 0, len(rawCards))
	for i, slot := range rawCards {
		cards = append(cards, HandCardView{
			Card:     resolveCard(slot, currentUserID, i),
			Selected: i == selected,
		})
	}

	view := MyHandView{
		Cards:         cards,
		SelectedIndex: selected,
	}
	status, found := CurrentUserStatus(doc, currentUserID)
	if !found || status == "" {
		return view
	}
	view.Status = status
	view.TurnTimeLimit = turnTimeLimit(gameState(doc).Child("timerConfig"), status)
	view.ShowTimer = status != StatusWaiting
	return view
}

func turnTimeLimit(timers snapshot.Doc, status string) int {
	key := timerDefaultKey
	switch status {
	case StatusInitialPeek, StatusDrawingCard, StatusPlayingCard:
		key = status
	}
	return timers.IntOr(key, defaultTurnSecs)
}

// CurrentUserStatus scans the players in order and returns the status of
// the first entry whose id matches the current user. Ids are assumed unique
// but not trusted to be; the first match wins. found is false when the game
// state is unresolvable, the user id is empty, or no player matches.
func CurrentUserStatus(doc snapshot.Doc, currentUserID string) (status string, found bool) {
	if currentUserID == "" {
		return "", false
	}
	for _, raw := range gameState(doc).List("players") {
		p, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		pd := snapshot.Doc(p)
		if pd.Str("id") == currentUserID {
			return pd.Str("status"), true
		}
	}
	return "", false
}
