package main

import (
	"context"
	"time"

	client "github.com/hugolgst/rich-go/client"
)

var discordStart time.Time
var discordReady bool

func initDiscordRPC(ctx context.Context) {
	if err := client.Login("1406171210240360509"); err != nil {
		logDebug("discord rpc login: %v", err)
		return
	}
	discordReady = true
	discordStart = time.Now()
	setDiscordStatus("browsing replays")
	go func() {
		<-ctx.Done()
		client.Logout()
	}()
}

func setDiscordStatus(detail string) {
	if !discordReady {
		return
	}
	if err := client.SetActivity(client.Activity{
		State:   "slipstream",
		Details: detail,
		Timestamps: &client.Timestamps{
			Start: &discordStart,
		},
	}); err != nil {
		logDebug("discord rpc activity: %v", err)
	}
}
