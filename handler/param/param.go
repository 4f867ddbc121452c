package param

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"tokenboard/core"

	"github.com/asaskevich/govalidator"
	"github.com/gorilla/schema"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
	decoder.ZeroEmpty(true)
}

// Binding decode the request into v: json body for requests carrying one,
// query string otherwise. v is validated with its `valid` tags afterwards.
// Every error wraps core.ErrInvalidFilter.
func Binding(r *http.Request, v interface{}) error {
	if hasBody(r) {
		if err := json.NewDecoder(r.Body).Decode(v); err != nil {
			return fmt.Errorf("%w: decode body: %v", core.ErrInvalidFilter, err)
		}
	} else if err := Query(r.URL.Query(), v); err != nil {
		return err
	}

	if _, err := govalidator.ValidateStruct(v); err != nil {
		return fmt.Errorf("%w: %v", core.ErrInvalidFilter, err)
	}

	return nil
}

// Query decode query values into v, comma separated values of one key are
// treated as repeated keys
func Query(values url.Values, v interface{}) error {
	if err := decoder.Decode(v, splitComma(values)); err != nil {
		return fmt.Errorf("%w: decode query: %v", core.ErrInvalidFilter, err)
	}

	return nil
}

func hasBody(r *http.Request) bool {
	switch r.Method {
	case http.MethodGet, http.MethodHead, http.MethodDelete:
		return false
	}

	return r.Body != nil && r.ContentLength != 0
}

// splitComma search text keeps its commas
func splitComma(values url.Values) url.Values {
	out := make(url.Values, len(values))
	for key, vs := range values {
		if key == "search" || key == "q" {
			out[key] = vs
			continue
		}

		for _, v := range vs {
			for _, item := range strings.Split(v, ",") {
				if item = strings.TrimSpace(item); item != "" {
					out[key] = append(out[key], item)
				}
			}
		}
	}

	return out
}
