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

package trucks

// KeyField is the table's primary key attribute
const KeyField = "truckId"

// Record is a truck as stored in the table. Apart from truckId the fields are
// opaque and passed through unchanged.
type Record map[string]any

// ID returns the record's truckId when it is a string
func (r Record) ID() (string, bool) {
	id, ok := r[KeyField].(string)
	return id, ok
}

// PatchRequest is the body of PATCH /truckId
type PatchRequest struct {
	TruckID     string `json:"truckId" validate:"required"`
	UpdateKey   string `json:"updateKey" validate:"required,ne=truckId,excludesall=.[]"`
	UpdateValue any    `json:"updateValue"`
}

// DeleteRequest is the body of DELETE /truckId
type DeleteRequest struct {
	TruckID string `json:"truckId" validate:"required"`
}

// Result wraps the outcome of a write operation
type Result struct {
	Operation string `json:"Operation"`
	Message   string `json:"Message"`
	Item      any    `json:"Item"`
}

// Listing is the body of GET /allTrucks
type Listing struct {
	AllTrucks []Record `json:"allTrucks"`
}

const (
	OperationSave   = "SAVE"
	OperationUpdate = "UPDATE"
	OperationDelete = "DELETE"

	MessageSaved   = "Successful"
	MessageSuccess = "SUCCESS"
)
