package websocket

import (
	"context"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/twisted-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/twisted-tictactoe/internal/session"
)

var errNoSession = errors.New("no session joined")

func (that *Server) handleNewSession(ctx context.Context, c *client, _ *Payload) error {
	id, view, err := that.useCase.CreateSession(ctx)
	if err != nil {
		return that.reply(c, actionSessionNew, view, err)
	}

	c.bind(id)
	that.logger.Debug("client joined new session", "session_id", id)

	return that.replyWithID(c, actionSessionNew, id, view)
}

func (that *Server) handleJoinSession(ctx context.Context, c *client, payload *Payload) error {
	view, err := that.useCase.GetSession(ctx, payload.SessionID)
	if err != nil {
		return that.reply(c, actionSessionJoin, view, err)
	}

	c.bind(payload.SessionID)

	return that.replyWithID(c, actionSessionJoin, payload.SessionID, view)
}

func (that *Server) handleSetTwists(ctx context.Context, c *client, payload *Payload) error {
	if payload.Twists == nil {
		return that.sendError(c, actionTwistsSet, "twists are required")
	}

	return that.withSession(c, actionTwistsSet, func(id string) (session.View, error) {
		return that.useCase.ConfigureTwists(ctx, id, *payload.Twists)
	})
}

func (that *Server) handleChangeTwists(ctx context.Context, c *client, _ *Payload) error {
	return that.withSession(c, actionTwistsChange, func(id string) (session.View, error) {
		return that.useCase.ChangeTwists(ctx, id)
	})
}

func (that *Server) handleStartGame(ctx context.Context, c *client, payload *Payload) error {
	return that.withSession(c, actionGameStart, func(id string) (session.View, error) {
		return that.useCase.StartGame(ctx, id, payload.Mode, payload.Difficulty)
	})
}

func (that *Server) handleMove(ctx context.Context, c *client, payload *Payload) error {
	if payload.Cell == nil {
		return that.sendError(c, actionGameMove, "cell is required")
	}

	return that.withSession(c, actionGameMove, func(id string) (session.View, error) {
		return that.useCase.AttemptMove(ctx, id, *payload.Cell)
	})
}

func (that *Server) handleAbility(ctx context.Context, c *client, payload *Payload) error {
	return that.withSession(c, actionGameAbility, func(id string) (session.View, error) {
		return that.useCase.ActivateAbility(ctx, id, payload.Ability)
	})
}

func (that *Server) handleUndo(ctx context.Context, c *client, _ *Payload) error {
	return that.withSession(c, actionGameUndo, func(id string) (session.View, error) {
		return that.useCase.ToggleUndo(ctx, id)
	})
}

func (that *Server) handleReset(ctx context.Context, c *client, _ *Payload) error {
	return that.withSession(c, actionGameReset, func(id string) (session.View, error) {
		return that.useCase.ResetGame(ctx, id)
	})
}

func (that *Server) withSession(c *client, action string, op func(id string) (session.View, error)) error {
	id := c.session()
	if id == "" {
		return that.sendError(c, action, errNoSession.Error())
	}

	view, err := op(id)

	return that.reply(c, action, view, err)
}

func (that *Server) replyWithID(c *client, action, id string, view session.View) error {
	c.track(view)

	msg, err := newMessage(action, Payload{SessionID: id, View: &view})
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	return c.send(msg)
}

// reply sends the view, plus the user message when err is a rule rejection. Other
// errors are logged and reported without detail.
func (that *Server) reply(c *client, action string, view session.View, err error) error {
	payload := Payload{}

	if view.Phase != "" {
		c.track(view)
		payload.View = &view
	}

	if err != nil {
		if apperror.IsRecoverable(err) {
			payload.Error = apperror.Message(err)
		} else {
			that.logger.Error("action failed", "action", action, "error", err)
			payload.Error = "internal error"
		}
	}

	msg, err := newMessage(action, payload)
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	return c.send(msg)
}

func (that *Server) sendError(c *client, action, text string) error {
	msg, err := newMessage(action, Payload{Error: text})
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	return c.send(msg)
}
