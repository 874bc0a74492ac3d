package handler

import (
	"net/http"
	"plotdesk/config"
	"plotdesk/di"
	"plotdesk/shared/logger"
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	service := di.InitializeService()
	service.Adaptor()(w, r)
}
