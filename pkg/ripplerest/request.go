package ripplerest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/ripplerest/ripplerest-go/internal/utils"
)

var placeholderPattern = regexp.MustCompile(`\{(\d+)\}`)

// Request is a ripple-rest call that has not been sent yet. Path is relative to the client's base
// URL and already escaped.
type Request struct {
	Method   string
	Path     string
	RawQuery string
	Body     []byte
}

// BuildGet builds a GET request from a path template such as "v1/accounts/{0}/balances".
func BuildGet(pathTemplate string, args ...any) (*Request, error) {
	path, err := expandPath(pathTemplate, args)
	if err != nil {
		return nil, err
	}
	return &Request{Method: http.MethodGet, Path: path}, nil
}

// BuildPost builds a POST request whose body is the JSON encoding of body.
func BuildPost(body any, pathTemplate string, args ...any) (*Request, error) {
	path, err := expandPath(pathTemplate, args)
	if err != nil {
		return nil, err
	}
	reqBody, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshalling request body: %w", err)
	}
	return &Request{Method: http.MethodPost, Path: path, Body: reqBody}, nil
}

// WithQuery appends the encoded values. Empty values add nothing.
func (r *Request) WithQuery(values url.Values) *Request {
	return r.WithRawQuery(values.Encode())
}

// WithRawQuery appends raw as is.
func (r *Request) WithRawQuery(raw string) *Request {
	switch {
	case raw == "":
	case r.RawQuery == "":
		r.RawQuery = raw
	default:
		r.RawQuery += "&" + raw
	}
	return r
}

// URL resolves the request against baseURL.
func (r *Request) URL(baseURL string) (string, error) {
	u, err := url.JoinPath(baseURL, r.Path)
	if err != nil {
		return "", fmt.Errorf("joining path: %w", err)
	}
	if r.RawQuery != "" {
		u += "?" + r.RawQuery
	}
	return u, nil
}

// Wipe zeroes the serialised body, which holds the account secret on POST requests.
func (r *Request) Wipe() {
	utils.Wipe(r.Body)
	r.Body = nil
}

func expandPath(pathTemplate string, args []any) (string, error) {
	var expandErr error
	path := placeholderPattern.ReplaceAllStringFunc(pathTemplate, func(placeholder string) string {
		index, err := strconv.Atoi(strings.Trim(placeholder, "{}"))
		if err != nil || index >= len(args) {
			if expandErr == nil {
				expandErr = fmt.Errorf("path template %q: no argument for %s", pathTemplate, placeholder)
			}
			return placeholder
		}
		segment, err := pathSegment(args[index])
		if err != nil {
			if expandErr == nil {
				expandErr = fmt.Errorf("path template %q: argument %d: %w", pathTemplate, index, err)
			}
			return placeholder
		}
		return url.PathEscape(segment)
	})
	if expandErr != nil {
		return "", expandErr
	}
	return path, nil
}

func pathSegment(arg any) (string, error) {
	switch v := arg.(type) {
	case fmt.Stringer:
		return v.String(), nil
	case string:
		return v, nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint32:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case bool:
		return strconv.FormatBool(v), nil
	default:
		return "", fmt.Errorf("unsupported path argument type %T", arg)
	}
}
