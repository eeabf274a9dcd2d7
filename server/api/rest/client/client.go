package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"

	"github.com/gwhitehawk/device-net/common/gerror"
	"github.com/gwhitehawk/device-net/common/logger"
	"github.com/gwhitehawk/device-net/server/api/rest/documents"
)

const (
	DefaultRetryMax     = 4
	DefaultRetryWaitMin = 100 * time.Millisecond
	DefaultRetryWaitMax = 2 * time.Second
)

// APIClient is an HTTP client used to interact with the device-net REST API.
type APIClient struct {
	endpoints       []string
	retryableClient *retryablehttp.Client
	log             logger.Log
}

func NewAPIClient(endpoints []string, logFactory logger.LogFactory) (*APIClient, error) {
	if len(endpoints) == 0 {
		return nil, errors.New("error at least one endpoint must be specified")
	}
	log := logFactory("APIClient")
	retryableClient := retryablehttp.NewClient()
	retryableClient.RetryWaitMin = DefaultRetryWaitMin
	retryableClient.RetryWaitMax = DefaultRetryWaitMax
	retryableClient.RetryMax = DefaultRetryMax
	retryableClient.Logger = NewLeveledLogger(log) // use adaptor to get log level support
	retryableClient.HTTPClient = &http.Client{}
	retryableClient.CheckRetry = idempotentRetryPolicy
	// Hand the final response back once retries are exhausted so the error document can be decoded
	retryableClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	return &APIClient{
		endpoints:       endpoints,
		retryableClient: retryableClient,
		log:             log,
	}, nil
}

type requestMethodCtxKey struct{}

// idempotentRetryPolicy applies retryablehttp.DefaultRetryPolicy to idempotent requests only. A POST that
// reached the server may already have created a device, so it is never sent a second time.
func idempotentRetryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	method, _ := ctx.Value(requestMethodCtxKey{}).(string)
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
	default:
		return false, ctx.Err()
	}
}

// SetRetryMax sets the maximum number of times a failed request is retried.
func (a *APIClient) SetRetryMax(retryMax int) {
	a.retryableClient.RetryMax = retryMax
}

// get performs a basic HTTP GET request. If a path is specified then a url will be made using the currently
// configured endpoints. If a full url is specified it will be used directly. Returns the HTTP status code,
// headers and full response body. No status code inspection is made.
func (a *APIClient) get(ctx context.Context, pathOrURL string) (int, http.Header, []byte, error) {
	return a.doRequest(ctx, http.MethodGet, pathOrURL, nil)
}

// post performs a basic HTTP POST request, serializing data to JSON as the request body if data is not nil.
// Returns the HTTP status code, headers and full response body. No status code inspection is made.
func (a *APIClient) post(ctx context.Context, pathOrURL string, data interface{}) (int, http.Header, []byte, error) {
	return a.doRequest(ctx, http.MethodPost, pathOrURL, data)
}

// doRequest performs an HTTP request and returns the status code, response headers and response body.
// Returns an error if there was a problem making the request but no HTTP status code inspection is made.
func (a *APIClient) doRequest(ctx context.Context, verb string, pathOrURL string, data interface{}) (int, http.Header, []byte, error) {
	var body interface{}
	if data != nil {
		buf, err := json.Marshal(data)
		if err != nil {
			return -1, nil, nil, errors.Wrap(err, "error marshaling request data to JSON")
		}
		body = buf
	}
	endpoint, err := a.getRequestEndpoint(pathOrURL)
	if err != nil {
		return -1, nil, nil, fmt.Errorf("error getting request endpoint: %w", err)
	}
	req, err := retryablehttp.NewRequest(verb, endpoint, body)
	if err != nil {
		return -1, nil, nil, errors.Wrap(err, "error making request")
	}
	req = req.WithContext(context.WithValue(ctx, requestMethodCtxKey{}, verb))
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	res, err := a.retryableClient.Do(req)
	if err != nil {
		return -1, nil, nil, errors.Wrap(err, "error during request")
	}
	defer res.Body.Close()
	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return -1, nil, nil, errors.Wrap(err, "error reading response body")
	}
	return res.StatusCode, res.Header, resBody, nil
}

func (a *APIClient) getRequestEndpoint(pathOrURL string) (string, error) {
	uri, err := url.ParseRequestURI(pathOrURL)
	if err != nil || uri.Host == "" {
		endpoint := strings.TrimRight(a.endpoints[0], "/")
		// Ensure path begins with a slash
		if !strings.HasPrefix(pathOrURL, "/") {
			pathOrURL = fmt.Sprintf("/%s", pathOrURL)
		}
		uri, err = url.ParseRequestURI(fmt.Sprintf("%s%s", endpoint, pathOrURL))
		if err != nil {
			return "", errors.Wrap(err, "error forming url")
		}
	}
	return uri.String(), nil
}

// isOneOf returns true iff an HTTP status code is one of the supplied set of valid codes.
func (a *APIClient) isOneOf(statusCode int, validCodes ...int) bool {
	for _, code := range validCodes {
		if statusCode == code {
			return true
		}
	}
	return false
}

// makeHTTPError attempts to parse an HTTP response body to a standard public error
// and return it. If the response body cannot be parsed, a generic error including
// the text of the response body will be returned instead.
func (a *APIClient) makeHTTPError(statusCode int, body []byte) error {
	doc := &documents.ErrorDocument{}
	err := json.Unmarshal(body, doc)
	if err != nil || doc.Code == "" {
		// We don't have error info in the body so return a more generic HTTP error
		return gerror.NewErrHttpOperationFailed(
			fmt.Sprintf("error %d in HTTP response: %s", statusCode, strings.TrimSpace(string(body))),
			statusCode,
		)
	}
	details := make(gerror.Details, len(doc.Details))
	for k, v := range doc.Details {
		details[k] = gerror.NewDetail(gerror.AudienceExternal, k, v)
	}
	return gerror.NewErrorWithDetails(doc.Message, details, gerror.AudienceExternal, doc.Code, doc.HTTPStatusCode, nil)
}

// decode parses a successful response body into doc.
func decode(body []byte, doc interface{}) error {
	err := json.Unmarshal(body, doc)
	if err != nil {
		return errors.Wrapf(err, "error parsing response body: %s", string(body))
	}
	return nil
}
