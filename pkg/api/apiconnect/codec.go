// Package apiconnect wires the api messages into Connect handlers and clients.
package apiconnect

import (
	"encoding/json"
	"fmt"
	"net/http"

	"connectrpc.com/connect"
)

const (
	// EmployeeServiceName is the fully-qualified name of the EmployeeService service.
	EmployeeServiceName = "tippool.v1.EmployeeService"
	// TipServiceName is the fully-qualified name of the TipService service.
	TipServiceName = "tippool.v1.TipService"
)

// jsonCodec encodes the plain Go messages of package api as JSON. It takes the
// "json" name so Connect selects it for application/json requests.
type jsonCodec struct{}

var _ connect.Codec = jsonCodec{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Marshal(msg any) ([]byte, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %T: %w", msg, err)
	}
	return data, nil
}

func (jsonCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, msg); err != nil {
		return fmt.Errorf("failed to unmarshal %T: %w", msg, err)
	}
	return nil
}

// WithJSON is the codec option every handler and client in this package uses.
func WithJSON() connect.Option {
	return connect.WithCodec(jsonCodec{})
}

// serviceMux routes a service's procedures to their handlers.
func serviceMux(handlers map[string]*connect.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h, ok := handlers[r.URL.Path]; ok {
			h.ServeHTTP(w, r)
			return
		}
		http.NotFound(w, r)
	})
}
