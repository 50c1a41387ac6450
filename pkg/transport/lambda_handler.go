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
	"context"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const HeaderCorrelationID = "x-correlation-id"

// LambdaHandler adapta eventos do API Gateway para o Router
type LambdaHandler struct {
	router  *Router
	timeout time.Duration
}

// NewLambdaHandler cria o adaptador. timeout <= 0 desliga o limite próprio e
// mantém apenas o deadline da invocação.
func NewLambdaHandler(router *Router, timeout time.Duration) *LambdaHandler {
	return &LambdaHandler{router: router, timeout: timeout}
}

// Handle processa a requisição Lambda. Erros de operação já vêm embutidos na
// resposta, então o erro retornado é sempre nil.
func (h *LambdaHandler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	start := time.Now()

	corrID := header(req.Headers, HeaderCorrelationID)
	if corrID == "" {
		corrID = uuid.NewString()
	}

	// Logger contextual
	logger := log.With().Str("correlation_id", corrID).Logger()
	ctx = logger.WithContext(ctx)

	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	response := h.router.Dispatch(ctx, req)

	routeName := "unmatched"
	if route, ok := h.router.Match(req.HTTPMethod, req.Path); ok {
		routeName = route.Name
	}
	logger.Info().
		Str("method", req.HTTPMethod).
		Str("path", req.Path).
		Str("route", routeName).
		Int("status", response.StatusCode).
		Int64("latency_ms", time.Since(start).Milliseconds()).
		Msg("request completed")

	if response.Headers == nil {
		response.Headers = make(map[string]string)
	}
	response.Headers[HeaderCorrelationID] = corrID

	return response, nil
}

// header busca um header ignorando maiúsculas, já que o API Gateway pode ou
// não normalizar os nomes.
func header(headers map[string]string, name string) string {
	if v, ok := headers[name]; ok {
		return v
	}
	for k, v := range headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}
