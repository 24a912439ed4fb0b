package binder

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// BindJSON returns a binder for application/json request bodies. Decoding is
// strict: unknown fields and trailing data are rejected.
//
//	type CalculateRequest struct {
//	    Name  string `json:"name"`
//	    Locks string `json:"locks"`
//	}
//
//	http.HandleFunc("/api/commission/calculate", handler.Wrap(h,
//	    handler.WithBinder(binder.BindJSON()),
//	))
func BindJSON() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if _, err := requireMediaType(r, "application/json"); err != nil {
			return err
		}

		decoder := json.NewDecoder(r.Body)
		decoder.DisallowUnknownFields()

		if err := decoder.Decode(v); err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("%w: empty body", ErrInvalidJSON)
			}
			return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}

		var extra json.RawMessage
		if err := decoder.Decode(&extra); err != io.EOF {
			return fmt.Errorf("%w: unexpected data after JSON object", ErrInvalidJSON)
		}

		return nil
	}
}
