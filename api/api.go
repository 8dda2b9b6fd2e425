package api

import (
	"context"
	"net/http"

	"github.com/zlnvch/deltaroom/api/ws"
	"github.com/zlnvch/deltaroom/service"
	"github.com/zlnvch/deltaroom/store"
)

type RoomAPI struct {
	wsHandler   *ws.Handler
	shutdownCtx context.Context
}

func NewRoomAPI(roomStore store.RoomStore, shutdownCtx context.Context) *RoomAPI {
	wsHub := ws.NewHub()
	go wsHub.Run()

	svc := service.NewService(roomStore, wsHub)
	wsHandler := ws.NewHandler(svc, wsHub)

	return &RoomAPI{
		wsHandler:   wsHandler,
		shutdownCtx: shutdownCtx,
	}
}

func (roomAPI *RoomAPI) RegisterRoutes(mux *http.ServeMux, allowedOrigin string) {
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	wsUpgrader := roomAPI.wsHandler.NewWsUpgrader(allowedOrigin)
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		roomAPI.wsHandler.ServeWS(wsUpgrader, w, r, roomAPI.shutdownCtx)
	})
}
