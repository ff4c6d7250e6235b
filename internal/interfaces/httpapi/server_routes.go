package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.HandleFunc("GET /readyz", handler.Readyz)
}

func registerBoardRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/board", handler.GetBoard)
	mux.HandleFunc("GET /v1/board/highlights", handler.ListHighlights)
	mux.HandleFunc("GET /v1/board/history", handler.GetOfferHistory)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, adminAPIToken string) {
	mux.Handle("GET /v1/admin/mappings/sports", RequireAdminToken(adminAPIToken, http.HandlerFunc(handler.ListSportMappings)))
	mux.Handle("PUT /v1/admin/mappings/sports", RequireAdminToken(adminAPIToken, http.HandlerFunc(handler.UpsertSportMapping)))
	mux.Handle("DELETE /v1/admin/mappings/sports/{mappingID}", RequireAdminToken(adminAPIToken, http.HandlerFunc(handler.DeleteSportMapping)))
	mux.Handle("GET /v1/admin/mappings/stats", RequireAdminToken(adminAPIToken, http.HandlerFunc(handler.ListStatMappings)))
	mux.Handle("PUT /v1/admin/mappings/stats", RequireAdminToken(adminAPIToken, http.HandlerFunc(handler.UpsertStatMapping)))
	mux.Handle("DELETE /v1/admin/mappings/stats/{mappingID}", RequireAdminToken(adminAPIToken, http.HandlerFunc(handler.DeleteStatMapping)))
}
