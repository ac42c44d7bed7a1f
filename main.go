package main

import (
	"log"
	"net/http"

	"hexclash/config"
	"hexclash/match"
	"hexclash/network"
)

func main() {
	config.InitConfig()

	tuningPath := config.GetEnvOr("HEXCLASH_TUNING", "tuning.yaml")
	tuning, err := config.LoadTuning(tuningPath)
	if err != nil {
		log.Fatalf("tuning: %v", err)
	}
	addr := config.GetEnvOr("HEXCLASH_ADDR", tuning.Server.Addr)
	webDir := config.GetEnvOr("HEXCLASH_WEB_DIR", tuning.Server.WebDir)

	mg := match.NewManagerWithRates(tuning.Sim.TickHz, tuning.Sim.BroadcastHz)

	mux := http.NewServeMux()
	network.Register(mux, mg, webDir)

	log.Printf("listening on %s (ws endpoint: /ws, shell: %s)", addr, webDir)
	log.Fatal(http.ListenAndServe(addr, mux))
}
