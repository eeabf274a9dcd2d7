package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/render"
	"github.com/pkg/errors"

	"github.com/gwhitehawk/device-net/common/gerror"
	"github.com/gwhitehawk/device-net/common/logger"
	"github.com/gwhitehawk/device-net/server/api/rest/documents"
)

type APIBase struct {
	logger.Log
}

func NewAPIBase(logger logger.Log) *APIBase {
	return &APIBase{
		Log: logger,
	}
}

// JSON marshals 'v' to JSON, automatically escaping HTML and setting the
// Content-Type as application/json. Copied from chi/render.JSON and updated
// to log serialization errors.
func (a *APIBase) JSON(w http.ResponseWriter, r *http.Request, v interface{}) {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(true)
	if err := enc.Encode(v); err != nil {
		a.Error(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if status, ok := r.Context().Value(render.StatusCtxKey).(int); ok {
		w.WriteHeader(status)
	}
	a.Tracef("JSON Response: %s", buf.String())
	w.Write(buf.Bytes())
}

// Error writes the specified error to the http response as a standard
// API error document. Errors are sanitized for public display before
// being written. Status code is automatically inferred from the error.
// Server errors are logged at Error level and client errors at Warning level.
func (a *APIBase) Error(w http.ResponseWriter, r *http.Request, err error) {
	if gErr, ok := gerror.As(err); ok && gErr.Audience() == gerror.AudienceExternal && gErr.HTTPStatusCode() < http.StatusInternalServerError {
		a.Warnf("Error in API call: %v", err)
	} else {
		a.Errorf("Error in API call: %v", err)
	}
	a.ErrorNotLogged(w, r, err)
}

// ErrorNotLogged writes the specified error to the http response as a standard
// API error document without logging it.
func (a *APIBase) ErrorNotLogged(w http.ResponseWriter, r *http.Request, err error) {
	// Look down through the chain of wrapped errors, including errors wrapped using fmt.Errorf(), and
	// and find the first error which is a gerror.Error
	var gErr gerror.Error
	if !errors.As(err, &gErr) || gErr.Audience() != gerror.AudienceExternal {
		gErr = gerror.NewErrInternal()
	}
	doc := &documents.ErrorDocument{
		Code:           gErr.Code(),
		HTTPStatusCode: gErr.HTTPStatusCode(),
		Message:        gErr.Message(),
		Details:        make(map[gerror.DetailKey]interface{}),
	}
	for _, detail := range gErr.Details() {
		if detail.Audience() == gerror.AudienceExternal {
			doc.Details[detail.Key()] = detail.Value()
		}
	}
	r = r.WithContext(context.WithValue(r.Context(), render.StatusCtxKey, gErr.HTTPStatusCode()))
	a.JSON(w, r, doc)
}

// Created writes a standardized created response to the http response object.
// The Location and ETag headers will be set if corresponding arguments are specified,
// and data (if set) will be serialized to JSON and written in the response body.
func (a *APIBase) Created(w http.ResponseWriter, r *http.Request, location string, eTag string, data interface{}) {
	if eTag != "" {
		w.Header().Set("ETag", eTag)
	}
	if location != "" {
		w.Header().Set("Location", location)
	}
	r = r.WithContext(context.WithValue(r.Context(), render.StatusCtxKey, http.StatusCreated))
	if data != nil {
		a.JSON(w, r, data)
	} else {
		w.WriteHeader(http.StatusCreated)
	}
}

// GotResource writes a standardized resource response to the http response object and is intended to be
// used in response to a GET request.
func (a *APIBase) GotResource(w http.ResponseWriter, r *http.Request, resource documents.ResourceDocument) {
	if eTag := resource.GetETag(); eTag != "" {
		w.Header().Set("ETag", eTag.Quoted())
	}
	r = r.WithContext(context.WithValue(r.Context(), render.StatusCtxKey, http.StatusOK))
	a.JSON(w, r, resource)
}

// GotList writes a standardized response for a list of resources.
func (a *APIBase) GotList(w http.ResponseWriter, r *http.Request, list interface{}) {
	r = r.WithContext(context.WithValue(r.Context(), render.StatusCtxKey, http.StatusOK))
	a.JSON(w, r, list)
}

// CreatedResource writes a standardized resource created response to the http response object and is
// intended to be used in response to a POST request.
func (a *APIBase) CreatedResource(w http.ResponseWriter, r *http.Request, resource documents.ResourceDocument) {
	var eTag string
	if tag := resource.GetETag(); tag != "" {
		eTag = tag.Quoted()
	}
	a.Created(w, r, resource.GetLink(), eTag, resource)
}

// NotFound is a router handler for requests that match no route.
func (a *APIBase) NotFound(w http.ResponseWriter, r *http.Request) {
	a.ErrorNotLogged(w, r, gerror.NewErrNotFound("Not Found").EDetail("path", r.URL.Path))
}

// MethodNotAllowed is a router handler for requests whose route does not support the method.
func (a *APIBase) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	err := gerror.NewError("Method not allowed", gerror.AudienceExternal, gerror.ErrCodeValidationFailed, http.StatusMethodNotAllowed, nil)
	a.ErrorNotLogged(w, r, err)
}
