// Copyright 2025 Raywall Malheiros de Souza
// Licensed under the Mozilla Public License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	https://www.mozilla.org/en-US/MPL/2.0/
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package transport

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

// NewHTTPHandler expõe o LambdaHandler como http.Handler para execução local.
// As rotas do Router são registradas no mux e qualquer outra combinação de
// método e path cai no mesmo adaptador, que responde 404 UnmatchedRoute.
func NewHTTPHandler(h *LambdaHandler) http.Handler {
	adapter := apiGatewayAdapter(h)

	router := mux.NewRouter()
	for _, route := range h.router.Routes() {
		router.HandleFunc(route.Path, adapter).Methods(route.Method).Name(route.Name)
	}
	router.NotFoundHandler = adapter
	router.MethodNotAllowedHandler = adapter

	return router
}

// StartHTTPServer sobe o servidor local na porta informada
func StartHTTPServer(port int, h *LambdaHandler) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           NewHTTPHandler(h),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Info().Msgf("Servidor HTTP ouvindo em %s", srv.Addr)
	return srv.ListenAndServe()
}

// apiGatewayAdapter converte http.Request no evento do API Gateway e escreve
// a resposta de volta.
func apiGatewayAdapter(h *LambdaHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, `{"error":"ValidationError","message":"failed to read request body"}`, http.StatusBadRequest)
			return
		}

		req := events.APIGatewayProxyRequest{
			HTTPMethod: r.Method,
			Path:       r.URL.Path,
			Body:       string(body),
		}

		if len(r.Header) > 0 {
			req.Headers = make(map[string]string, len(r.Header))
			for k, v := range r.Header {
				if len(v) > 0 {
					req.Headers[k] = v[0]
				}
			}
		}

		if query := r.URL.Query(); len(query) > 0 {
			req.QueryStringParameters = make(map[string]string, len(query))
			for k, v := range query {
				if len(v) > 0 {
					req.QueryStringParameters[k] = v[0]
				}
			}
		}

		resp, _ := h.Handle(r.Context(), req)

		for k, v := range resp.Headers {
			w.Header().Set(k, v)
		}
		w.WriteHeader(resp.StatusCode)
		_, _ = io.WriteString(w, resp.Body)
	}
}
