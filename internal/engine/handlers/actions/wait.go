package actions

import (
	"fmt"

	"github.com/kevrgithub/tibianer-old/internal/engine/handlers"
)

func HandleWait(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Result{
		Msg:     fmt.Sprintf("%s waits.", ctx.Actor.Name),
		MsgType: handlers.MsgInfo,
	}, nil
}
