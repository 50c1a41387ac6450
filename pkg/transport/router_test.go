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
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/raywall/trucks-service/dyndb"
	"github.com/raywall/trucks-service/pkg/trucks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, resp events.APIGatewayProxyResponse) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &body), "body: %s", resp.Body)
	return body
}

func TestRouter_Dispatch(t *testing.T) {
	tests := []struct {
		name      string
		req       events.APIGatewayProxyRequest
		wantCalls []string
		status    int
	}{
		{
			name:   "list trucks stub",
			req:    events.APIGatewayProxyRequest{HTTPMethod: "GET", Path: "/trucks"},
			status: 200,
		},
		{
			name: "get truck",
			req: events.APIGatewayProxyRequest{
				HTTPMethod:            "GET",
				Path:                  "/truckId",
				QueryStringParameters: map[string]string{"truckId": "t1"},
			},
			wantCalls: []string{"get"},
			status:    200,
		},
		{
			name:      "all trucks",
			req:       events.APIGatewayProxyRequest{HTTPMethod: "GET", Path: "/allTrucks"},
			wantCalls: []string{"scan"},
			status:    200,
		},
		{
			name:      "create truck",
			req:       events.APIGatewayProxyRequest{HTTPMethod: "POST", Path: "/truckId", Body: `{"truckId":"t2"}`},
			wantCalls: []string{"put"},
			status:    200,
		},
		{
			name: "update truck",
			req: events.APIGatewayProxyRequest{
				HTTPMethod: "PATCH",
				Path:       "/truckId",
				Body:       `{"truckId":"t1","updateKey":"name","updateValue":"Blue"}`,
			},
			wantCalls: []string{"update"},
			status:    200,
		},
		{
			name:      "delete truck",
			req:       events.APIGatewayProxyRequest{HTTPMethod: "DELETE", Path: "/truckId", Body: `{"truckId":"t1"}`},
			wantCalls: []string{"delete"},
			status:    200,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTableStore(trucks.Record{"truckId": "t1", "name": "Red"})
			router := newTestRouter(store)

			resp := router.Dispatch(context.Background(), tt.req)

			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, "application/json", resp.Headers["Content-Type"])
			assert.Equal(t, tt.wantCalls, store.calls)
		})
	}
}

func TestRouter_ListTrucksHasNoBody(t *testing.T) {
	resp := newTestRouter(newTableStore()).Dispatch(context.Background(),
		events.APIGatewayProxyRequest{HTTPMethod: "GET", Path: "/trucks"})

	assert.Equal(t, 200, resp.StatusCode)
	assert.Empty(t, resp.Body)
}

func TestRouter_Unmatched(t *testing.T) {
	router := newTestRouter(newTableStore())

	cases := []events.APIGatewayProxyRequest{
		{HTTPMethod: "PUT", Path: "/truckId"},
		{HTTPMethod: "GET", Path: "/unknown"},
		{HTTPMethod: "POST", Path: "/trucks"},
		{HTTPMethod: "get", Path: "/trucks"},
		{},
	}
	for _, req := range cases {
		resp := router.Dispatch(context.Background(), req)

		assert.Equal(t, 404, resp.StatusCode, "%s %s", req.HTTPMethod, req.Path)
		body := decode(t, resp)
		assert.Equal(t, "UnmatchedRoute", body["error"])
	}

	resp := router.Dispatch(context.Background(), events.APIGatewayProxyRequest{HTTPMethod: "PUT", Path: "/truckId"})
	assert.JSONEq(t, `{"error":"UnmatchedRoute","message":"no route for PUT /truckId"}`, resp.Body)
}

func TestRouter_Routes(t *testing.T) {
	router := newTestRouter(newTableStore())

	names := []string{}
	for _, r := range router.Routes() {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"list-trucks", "get-truck", "all-trucks", "create-truck", "update-truck", "delete-truck"}, names)

	// a cópia não altera a tabela interna
	routes := router.Routes()
	routes[0].Path = "/changed"
	_, ok := router.Match("GET", "/trucks")
	assert.True(t, ok)
}

func TestRouter_Scenario(t *testing.T) {
	store := newTableStore()
	router := newTestRouter(store)
	ctx := context.Background()

	resp := router.Dispatch(ctx, events.APIGatewayProxyRequest{
		HTTPMethod: "POST", Path: "/truckId", Body: `{"truckId":"t1","name":"Red"}`,
	})
	require.Equal(t, 200, resp.StatusCode)
	body := decode(t, resp)
	assert.Equal(t, "SAVE", body["Operation"])
	assert.Equal(t, "Successful", body["Message"])
	assert.Equal(t, "Red", body["Item"].(map[string]any)["name"])

	resp = router.Dispatch(ctx, events.APIGatewayProxyRequest{
		HTTPMethod: "PATCH", Path: "/truckId", Body: `{"truckId":"t1","updateKey":"name","updateValue":"Blue"}`,
	})
	require.Equal(t, 200, resp.StatusCode)
	body = decode(t, resp)
	assert.Equal(t, "UPDATE", body["Operation"])
	assert.Equal(t, "SUCCESS", body["Message"])
	assert.Equal(t, "Blue", body["Item"].(map[string]any)["name"])

	get := events.APIGatewayProxyRequest{
		HTTPMethod: "GET", Path: "/truckId", QueryStringParameters: map[string]string{"truckId": "t1"},
	}
	resp = router.Dispatch(ctx, get)
	require.Equal(t, 200, resp.StatusCode)
	assert.JSONEq(t, `{"truckId":"t1","name":"Blue"}`, resp.Body)

	resp = router.Dispatch(ctx, events.APIGatewayProxyRequest{
		HTTPMethod: "DELETE", Path: "/truckId", Body: `{"truckId":"t1"}`,
	})
	require.Equal(t, 200, resp.StatusCode)
	body = decode(t, resp)
	assert.Equal(t, "DELETE", body["Operation"])
	assert.Equal(t, "t1", body["Item"].(map[string]any)["truckId"])

	resp = router.Dispatch(ctx, get)
	assert.Equal(t, 404, resp.StatusCode)
	assert.Equal(t, "NotFound", decode(t, resp)["error"])
}

func TestRouter_AllTrucks(t *testing.T) {
	t.Run("empty table", func(t *testing.T) {
		resp := newTestRouter(newTableStore()).Dispatch(context.Background(),
			events.APIGatewayProxyRequest{HTTPMethod: "GET", Path: "/allTrucks"})

		assert.Equal(t, 200, resp.StatusCode)
		assert.JSONEq(t, `{"allTrucks":[]}`, resp.Body)
	})

	t.Run("every record", func(t *testing.T) {
		store := newTableStore(
			trucks.Record{"truckId": "a"},
			trucks.Record{"truckId": "b", "load": 12.5},
		)
		resp := newTestRouter(store).Dispatch(context.Background(),
			events.APIGatewayProxyRequest{HTTPMethod: "GET", Path: "/allTrucks"})

		assert.JSONEq(t, `{"allTrucks":[{"truckId":"a"},{"truckId":"b","load":12.5}]}`, resp.Body)
	})
}

func TestRouter_BadRequests(t *testing.T) {
	router := newTestRouter(newTableStore(trucks.Record{"truckId": "t1"}))

	cases := []struct {
		name string
		req  events.APIGatewayProxyRequest
	}{
		{"get without truckId", events.APIGatewayProxyRequest{HTTPMethod: "GET", Path: "/truckId"}},
		{"create without body", events.APIGatewayProxyRequest{HTTPMethod: "POST", Path: "/truckId"}},
		{"create malformed json", events.APIGatewayProxyRequest{HTTPMethod: "POST", Path: "/truckId", Body: `{"truckId":`}},
		{"create array body", events.APIGatewayProxyRequest{HTTPMethod: "POST", Path: "/truckId", Body: `[1,2]`}},
		{"create without truckId", events.APIGatewayProxyRequest{HTTPMethod: "POST", Path: "/truckId", Body: `{"name":"Red"}`}},
		{"update without updateKey", events.APIGatewayProxyRequest{HTTPMethod: "PATCH", Path: "/truckId", Body: `{"truckId":"t1"}`}},
		{"update the key", events.APIGatewayProxyRequest{HTTPMethod: "PATCH", Path: "/truckId", Body: `{"truckId":"t1","updateKey":"truckId","updateValue":"t9"}`}},
		{"delete without truckId", events.APIGatewayProxyRequest{HTTPMethod: "DELETE", Path: "/truckId", Body: `{}`}},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			resp := router.Dispatch(context.Background(), tt.req)

			assert.Equal(t, 400, resp.StatusCode)
			assert.Equal(t, "ValidationError", decode(t, resp)["error"])
		})
	}
}

func TestRouter_StoreUnavailable(t *testing.T) {
	store := &dyndb.MockStore[trucks.Record]{
		GetFn: func(context.Context, any, any) (*trucks.Record, error) {
			return nil, dyndb.ErrUnavailable
		},
	}
	router := NewRouter(trucks.NewService(store))

	resp := router.Dispatch(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: "GET", Path: "/truckId", QueryStringParameters: map[string]string{"truckId": "t1"},
	})

	assert.Equal(t, 503, resp.StatusCode)
	assert.Equal(t, "StoreUnavailable", decode(t, resp)["error"])
}
