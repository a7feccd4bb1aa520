package httputil

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

func InternalServerError(w http.ResponseWriter, msg string, err error) {
	logrus.WithError(err).Error(msg)
	WriteError(w, http.StatusInternalServerError, "Internal Server Error")
}

func BadRequest(w http.ResponseWriter, msg string, err error) {
	clientError(w, http.StatusBadRequest, "bad request", msg, err)
}

func NotFound(w http.ResponseWriter, msg string, err error) {
	clientError(w, http.StatusNotFound, "not found", msg, err)
}

func Forbidden(w http.ResponseWriter, msg string, err error) {
	clientError(w, http.StatusForbidden, "forbidden", msg, err)
}

func Conflict(w http.ResponseWriter, msg string, err error) {
	clientError(w, http.StatusConflict, "conflict", msg, err)
}

func clientError(w http.ResponseWriter, status int, kind, msg string, err error) {
	entry := logrus.WithField("message", msg)
	if err != nil {
		entry = entry.WithError(err)
	}
	entry.Warn(kind)
	WriteError(w, status, msg)
}

// RenderFailed logs a page that could not be rendered. The response may
// already be partly written, so nothing is sent to the client.
func RenderFailed(r *http.Request, err error) {
	logrus.WithError(err).WithField("path", r.URL.Path).Error("failed to render page")
}
