package main

import (
	"net/http"

	"dodge/config"
	"dodge/logging"
	"dodge/network"
	"dodge/room"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Logger.Fatalf("load config: %v", err)
	}
	logging.Init(cfg)

	manager := room.NewManager(cfg.Server.TickHz)
	server := network.NewServer(manager)

	http.HandleFunc("/ws", server.ServeWS)
	logging.Logger.Infof("listening on %s (ws endpoint: /ws)", cfg.Addr())
	logging.Logger.Fatal(http.ListenAndServe(cfg.Addr(), nil))
}
