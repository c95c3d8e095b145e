package main

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/rs/zerolog"

	"shipline_builder/internal/api"
	"shipline_builder/internal/config"
	"shipline_builder/internal/game"
	"shipline_builder/internal/models"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	zerolog.SetGlobalLevel(config.ZerologLevel(cfg.LogLevel))

	balance, err := config.LoadBalance(cfg.BalancePath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load balance file")
	}

	engine := game.NewEngine(balance, log)
	engine.SetSavePath(cfg.SavePath)

	if err := engine.LoadState(cfg.SavePath); err == nil {
		log.Info().Str("path", cfg.SavePath).Msg("loaded savegame")
	} else {
		engine.SetState(models.GameState{
			Cash:  balance.StartingCash,
			Speed: 1,
		})
		engine.SeedFleet()
		log.Info().Float64("cash", balance.StartingCash).Msg("started new game")
	}

	hub := api.NewHub(log)
	go hub.Run()
	engine.SetOnTick(func(st models.GameState) {
		msg, err := json.Marshal(map[string]any{"type": "state", "payload": st})
		if err != nil {
			log.Error().Err(err).Msg("failed to marshal tick broadcast")
			return
		}
		hub.Broadcast(msg)
	})

	handler := api.New(engine, hub, log)

	log.Info().Str("port", cfg.Port).Msg("server listening")
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
