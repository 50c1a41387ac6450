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

// Package trucks implements the record operations of the trucks table on top
// of a dyndb.Store.
package trucks

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/raywall/trucks-service/dyndb"
	"github.com/raywall/trucks-service/pkg/apperr"
	"github.com/rs/zerolog"
)

// Service validates requests and translates store results into operation
// results. Every returned error is an *apperr.Error.
type Service struct {
	store dyndb.Store[Record]
	valid *validator.Validate
}

// NewService creates a Service backed by the given store
func NewService(store dyndb.Store[Record]) *Service {
	valid := validator.New(validator.WithRequiredStructEnabled())
	valid.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	return &Service{store: store, valid: valid}
}

// Get returns the truck stored under truckID
func (s *Service) Get(ctx context.Context, truckID string) (Record, error) {
	if err := s.valid.VarCtx(ctx, truckID, "required"); err != nil {
		return nil, apperr.Validation("query parameter '%s' is required", KeyField)
	}

	item, err := s.store.Get(ctx, truckID, nil)
	if err != nil {
		return nil, apperr.FromStore(err, fmt.Sprintf("truck %q not found", truckID))
	}
	return *item, nil
}

// All drains the table scan into a single listing
func (s *Service) All(ctx context.Context) (*Listing, error) {
	items, err := dyndb.ScanAll(ctx, s.store)
	if err != nil {
		return nil, apperr.FromStore(err, "trucks table not found")
	}

	zerolog.Ctx(ctx).Debug().Int("count", len(items)).Msg("trucks scanned")
	return &Listing{AllTrucks: items}, nil
}

// Create stores rec unconditionally, replacing any truck with the same id
func (s *Service) Create(ctx context.Context, rec Record) (*Result, error) {
	id, ok := rec.ID()
	if !ok {
		return nil, apperr.Validation("field '%s' is required and must be a string", KeyField)
	}
	if err := s.valid.VarCtx(ctx, id, "required"); err != nil {
		return nil, apperr.Validation("field '%s' must not be empty", KeyField)
	}

	if err := s.store.Put(ctx, rec); err != nil {
		return nil, apperr.FromStore(err, fmt.Sprintf("truck %q not found", id))
	}

	zerolog.Ctx(ctx).Debug().Str("truck_id", id).Msg("truck saved")
	return &Result{Operation: OperationSave, Message: MessageSaved, Item: rec}, nil
}

// Update sets a single field on an existing truck
func (s *Service) Update(ctx context.Context, req PatchRequest) (*Result, error) {
	if err := s.validate(ctx, req); err != nil {
		return nil, err
	}

	changed, err := s.store.Update(ctx, req.TruckID, nil, req.UpdateKey, req.UpdateValue)
	if err != nil {
		return nil, apperr.FromStore(err, fmt.Sprintf("truck %q not found", req.TruckID))
	}

	zerolog.Ctx(ctx).Debug().
		Str("truck_id", req.TruckID).
		Str("field", req.UpdateKey).
		Msg("truck updated")
	return &Result{Operation: OperationUpdate, Message: MessageSuccess, Item: changed}, nil
}

// Delete removes a truck and returns its last stored version
func (s *Service) Delete(ctx context.Context, req DeleteRequest) (*Result, error) {
	if err := s.validate(ctx, req); err != nil {
		return nil, err
	}

	old, err := s.store.Delete(ctx, req.TruckID, nil)
	if err != nil {
		return nil, apperr.FromStore(err, fmt.Sprintf("truck %q not found", req.TruckID))
	}

	zerolog.Ctx(ctx).Debug().Str("truck_id", req.TruckID).Msg("truck deleted")
	return &Result{Operation: OperationDelete, Message: MessageSuccess, Item: *old}, nil
}

func (s *Service) validate(ctx context.Context, req any) error {
	err := s.valid.StructCtx(ctx, req)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		msgs := make([]string, 0, len(validationErrors))
		for _, e := range validationErrors {
			msgs = append(msgs, fmt.Sprintf("field '%s' failed on the '%s' rule", e.Field(), e.Tag()))
		}
		return apperr.Validation("%s", strings.Join(msgs, "; "))
	}
	return apperr.Validation("invalid request: %v", err)
}
