// Package http provides helpers for writing JSON responses and errors
// Success bodies are written as-is; errors use a {"detail": ...} body
package http

import (
	"encoding/json"
	stdhttp "net/http"

	perr "tweetscore/internal/platform/errors"
	"tweetscore/internal/platform/logger"
)

// JSON writes v as application/json with the given status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// RespondError maps a project error to status + detail body and writes it
func RespondError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	status, body := perr.HTTP(err)
	if status >= stdhttp.StatusInternalServerError {
		logger.C(r.Context()).Error().Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Msg("request failed")
	}
	JSON(w, status, body)
}

// Response is a functional response object for return-style handlers
type Response struct {
	Status int
	Body   any
	Header stdhttp.Header
}

// Handle adapts a Response-returning handler to net/http
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		h(r).write(w, r)
	}
}

func (resp Response) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	for k, vv := range resp.Header {
		for _, v := range vv {
			w.Header().Add(k, v)
		}
	}

	if err, ok := resp.Body.(error); ok && err != nil {
		RespondError(w, r, err)
		return
	}

	status := resp.Status
	if status == 0 {
		status = stdhttp.StatusOK
	}
	if status == stdhttp.StatusNoContent {
		w.WriteHeader(stdhttp.StatusNoContent)
		return
	}
	JSON(w, status, resp.Body)
}

// OK returns a 200 response
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Created returns a 201 response
func Created(data any) Response { return Response{Status: stdhttp.StatusCreated, Body: data} }

// NoContent returns a 204 response
func NoContent() Response { return Response{Status: stdhttp.StatusNoContent} }

// Error returns a response that maps the error to status and detail body
func Error(err error) Response { return Response{Body: err} }

// NotFound writes {"detail":"Not Found"} with 404
func NotFound(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
	JSON(w, stdhttp.StatusNotFound, perr.Wire{Detail: stdhttp.StatusText(stdhttp.StatusNotFound)})
}

// MethodNotAllowed writes {"detail":"Method Not Allowed"} with 405
func MethodNotAllowed(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
	JSON(w, stdhttp.StatusMethodNotAllowed, perr.Wire{Detail: stdhttp.StatusText(stdhttp.StatusMethodNotAllowed)})
}
