package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// HealthcheckHandler responde com o horário atual do servidor. Serve de
// prova de vida para o orquestrador que agenda as execuções do pipeline.
func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte(time.Now().String())); err != nil {
			logrus.WithError(err).Warn("Erro ao responder o healthcheck")
		}
	})
}
