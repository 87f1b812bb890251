package common

import (
	"encoding/json"
	"net/http"
	"strconv"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, ErrorResponse{Error: message})
}

// WriteDomainError maps err to its HTTP status. Internal errors are not echoed back.
func WriteDomainError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal server error"
	}
	WriteError(w, status, msg)
}

type Page struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

func (p Page) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// ParsePage reads page / page_size query params, clamped to maxSize.
func ParsePage(r *http.Request, defaultSize, maxSize int) Page {
	p := Page{Page: 1, PageSize: defaultSize}
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 0 {
		p.Page = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("page_size")); err == nil && v > 0 {
		p.PageSize = v
	}
	if maxSize > 0 && p.PageSize > maxSize {
		p.PageSize = maxSize
	}
	return p
}

type PagedResponse struct {
	Count    int64       `json:"count"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
	Results  interface{} `json:"results"`
}
