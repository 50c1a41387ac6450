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
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/raywall/trucks-service/pkg/apperr"
	"github.com/raywall/trucks-service/pkg/responder"
	"github.com/raywall/trucks-service/pkg/trucks"
	"github.com/rs/zerolog"
)

// HandlerFunc executa uma operação e devolve o status e o body da resposta.
// Um erro retornado é convertido pelo responder.Error.
type HandlerFunc func(ctx context.Context, req events.APIGatewayProxyRequest) (int, any, error)

// Route associa um par (método, path) a uma operação
type Route struct {
	Name   string
	Method string
	Path   string
	Handle HandlerFunc
}

// Router despacha requisições do API Gateway para as operações de trucks.
// As rotas são avaliadas em ordem e a primeira que casar vence.
type Router struct {
	routes []Route
}

// NewRouter monta a tabela de rotas sobre o serviço de trucks
func NewRouter(svc *trucks.Service) *Router {
	return &Router{routes: []Route{
		{Name: "list-trucks", Method: http.MethodGet, Path: "/trucks", Handle: listTrucks},
		{Name: "get-truck", Method: http.MethodGet, Path: "/truckId", Handle: getTruck(svc)},
		{Name: "all-trucks", Method: http.MethodGet, Path: "/allTrucks", Handle: allTrucks(svc)},
		{Name: "create-truck", Method: http.MethodPost, Path: "/truckId", Handle: createTruck(svc)},
		{Name: "update-truck", Method: http.MethodPatch, Path: "/truckId", Handle: updateTruck(svc)},
		{Name: "delete-truck", Method: http.MethodDelete, Path: "/truckId", Handle: deleteTruck(svc)},
	}}
}

// Routes retorna uma cópia da tabela de rotas
func (r *Router) Routes() []Route {
	out := make([]Route, len(r.routes))
	copy(out, r.routes)
	return out
}

// Match procura a primeira rota para method e path
func (r *Router) Match(method, path string) (Route, bool) {
	for _, route := range r.routes {
		if route.Method == method && route.Path == path {
			return route, true
		}
	}
	return Route{}, false
}

// Dispatch seleciona a rota, executa a operação e monta a resposta. Nunca
// retorna uma resposta vazia: rotas desconhecidas viram 404 UnmatchedRoute.
func (r *Router) Dispatch(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	route, ok := r.Match(req.HTTPMethod, req.Path)
	if !ok {
		return responder.Error(ctx, apperr.UnmatchedRoute(req.HTTPMethod, req.Path))
	}

	ctx = zerolog.Ctx(ctx).With().Str("route", route.Name).Logger().WithContext(ctx)

	status, body, err := route.Handle(ctx, req)
	if err != nil {
		return responder.Error(ctx, err)
	}
	return responder.Build(status, body)
}

func listTrucks(context.Context, events.APIGatewayProxyRequest) (int, any, error) {
	return http.StatusOK, nil, nil
}

func getTruck(svc *trucks.Service) HandlerFunc {
	return func(ctx context.Context, req events.APIGatewayProxyRequest) (int, any, error) {
		rec, err := svc.Get(ctx, req.QueryStringParameters[trucks.KeyField])
		if err != nil {
			return 0, nil, err
		}
		return http.StatusOK, rec, nil
	}
}

func allTrucks(svc *trucks.Service) HandlerFunc {
	return func(ctx context.Context, _ events.APIGatewayProxyRequest) (int, any, error) {
		listing, err := svc.All(ctx)
		if err != nil {
			return 0, nil, err
		}
		return http.StatusOK, listing, nil
	}
}

func createTruck(svc *trucks.Service) HandlerFunc {
	return func(ctx context.Context, req events.APIGatewayProxyRequest) (int, any, error) {
		var rec trucks.Record
		if err := decodeBody(req.Body, &rec); err != nil {
			return 0, nil, err
		}
		res, err := svc.Create(ctx, rec)
		if err != nil {
			return 0, nil, err
		}
		return http.StatusOK, res, nil
	}
}

func updateTruck(svc *trucks.Service) HandlerFunc {
	return func(ctx context.Context, req events.APIGatewayProxyRequest) (int, any, error) {
		var patch trucks.PatchRequest
		if err := decodeBody(req.Body, &patch); err != nil {
			return 0, nil, err
		}
		res, err := svc.Update(ctx, patch)
		if err != nil {
			return 0, nil, err
		}
		return http.StatusOK, res, nil
	}
}

func deleteTruck(svc *trucks.Service) HandlerFunc {
	return func(ctx context.Context, req events.APIGatewayProxyRequest) (int, any, error) {
		var del trucks.DeleteRequest
		if err := decodeBody(req.Body, &del); err != nil {
			return 0, nil, err
		}
		res, err := svc.Delete(ctx, del)
		if err != nil {
			return 0, nil, err
		}
		return http.StatusOK, res, nil
	}
}

func decodeBody(body string, v any) error {
	if body == "" {
		return apperr.Validation("request body is required")
	}
	if err := json.Unmarshal([]byte(body), v); err != nil {
		return apperr.Validation("request body must be a valid JSON object: %v", err)
	}
	return nil
}
