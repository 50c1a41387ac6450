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

package responder

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/raywall/trucks-service/pkg/apperr"
	"github.com/rs/zerolog"
)

const (
	HeaderContentType = "Content-Type"
	ContentTypeJSON   = "application/json"
)

// Build monta a resposta do API Gateway com o header JSON fixo.
//
// Um body nil resulta em corpo vazio (nunca no literal "null"). Se o body não
// puder ser serializado a resposta vira um 500 InternalError.
func Build(statusCode int, body any) events.APIGatewayProxyResponse {
	resp := events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Headers:    map[string]string{HeaderContentType: ContentTypeJSON},
	}
	if body == nil {
		return resp
	}

	bytes, err := json.Marshal(body)
	if err != nil {
		return internalError()
	}
	resp.Body = string(bytes)
	return resp
}

// Error converte qualquer erro em resposta {error, message} com o status do
// seu tipo. Falhas 5xx são logadas como erro, as demais como aviso.
func Error(ctx context.Context, err error) events.APIGatewayProxyResponse {
	appErr := apperr.As(err)
	status := appErr.Kind.Status()

	logger := zerolog.Ctx(ctx)
	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.Err(err).
		Str("kind", string(appErr.Kind)).
		Int("status", status).
		Msg("request failed")

	return Build(status, apperr.Body{Error: appErr.Kind, Message: appErr.Message})
}

func internalError() events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusInternalServerError,
		Headers:    map[string]string{HeaderContentType: ContentTypeJSON},
		Body:       `{"error":"InternalError","message":"failed to encode response"}`,
	}
}
