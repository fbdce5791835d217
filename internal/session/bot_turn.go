package session

import (
	"github.com/rocketscienceinc/twisted-tictactoe/internal/tictactoe"
)

// playBotTurn lets the bot answer when the human action handed it the move.
func (that *GameSession) playBotTurn() {
	if !that.botEnabled() || that.phase != PhaseInProgress || that.current != BotMark {
		return
	}

	move, err := that.bot.ChooseMove(that.board, that.levels.Clone(), that.twists)
	if err != nil {
		that.logger.Warn("bot has no move", "error", err)

		return
	}

	before := HistoryEntry{Board: that.board, Levels: that.levels.Clone()}

	landing, err := tictactoe.PlaceMark(&that.board, move, BotMark, that.twists, that.levels)
	if err != nil {
		that.logger.Error("bot chose an illegal move", "cell", move, "error", err)

		return
	}

	that.history = append(that.history, before)
	that.logger.Debug("bot moved", "cell", landing, "difficulty", that.difficulty)

	that.afterPlacement()
}
