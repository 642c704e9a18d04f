/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package validation checks request bodies against JSON schemas before they are decoded.
package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	errors2 "github.com/wso2/research-consent-ledger/internal/system/errors"
	"github.com/wso2/research-consent-ledger/internal/system/utils"
	"github.com/xeipuuv/gojsonschema"
)

// MaxBodyBytes caps the size of a request body.
const MaxBodyBytes = 1 << 20

const (
	hashPattern    = `^0x[0-9a-fA-F]{64}$`
	addressPattern = `^0x[0-9a-fA-F]{40}$`
)

// MaxValiditySeconds is the longest consent validity whose nanosecond duration fits in an int64.
const MaxValiditySeconds = math.MaxInt64 / int64(time.Second)

var (
	AuthorizeStudySchema = mustCompile(`{
		"type": "object",
		"properties": {
			"study_id": {"type": "string", "pattern": "` + hashPattern + `"},
			"name": {"type": "string", "maxLength": 256}
		},
		"anyOf": [{"required": ["study_id"]}, {"required": ["name"]}],
		"additionalProperties": false
	}`)

	GrantConsentSchema = mustCompile(`{
		"type": "object",
		"properties": {
			"dataset_hash": {"type": "string", "pattern": "` + hashPattern + `"},
			"study_id": {"type": "string", "pattern": "` + hashPattern + `"},
			"validity_seconds": {"type": "integer", "maximum": ` + strconv.FormatInt(MaxValiditySeconds, 10) + `}
		},
		"required": ["dataset_hash", "study_id", "validity_seconds"],
		"additionalProperties": false
	}`)

	RevokeConsentSchema = mustCompile(`{
		"type": "object",
		"properties": {
			"owner_id": {"type": "integer", "minimum": 0}
		},
		"required": ["owner_id"],
		"additionalProperties": false
	}`)

	RewardDownloadSchema = mustCompile(`{
		"type": "object",
		"properties": {
			"patient": {"type": "string", "pattern": "` + addressPattern + `"},
			"dataset_hash": {"type": "string", "pattern": "` + hashPattern + `"}
		},
		"required": ["patient", "dataset_hash"],
		"additionalProperties": false
	}`)

	RedeemRewardSchema = mustCompile(`{
		"type": "object",
		"properties": {
			"token_cost": {"type": "integer", "minimum": 0},
			"reward_type": {"type": "string", "minLength": 1, "maxLength": 128}
		},
		"required": ["token_cost", "reward_type"],
		"additionalProperties": false
	}`)

	AuthorizePatientSchema = mustCompile(`{
		"type": "object",
		"properties": {
			"enabled": {"type": "boolean"}
		},
		"required": ["enabled"],
		"additionalProperties": false
	}`)

	TransferOwnershipSchema = mustCompile(`{
		"type": "object",
		"properties": {
			"new_owner": {"type": "string", "pattern": "` + addressPattern + `"}
		},
		"required": ["new_owner"],
		"additionalProperties": false
	}`)
)

func mustCompile(schema string) *gojsonschema.Schema {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schema))
	if err != nil {
		panic(fmt.Sprintf("invalid request schema: %v", err))
	}
	return compiled
}

// Validate checks body against schema and returns a BAD_REQUEST client error listing every violation.
func Validate(schema *gojsonschema.Schema, body []byte, resourceName string) error {

	if len(strings.TrimSpace(string(body))) == 0 {
		return errors2.NewClientErrorf(errors2.BAD_REQUEST, http.StatusBadRequest,
			"Request body for %s is empty.", resourceName)
	}
	result, err := schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return errors2.NewClientErrorf(errors2.BAD_REQUEST, http.StatusBadRequest,
			"Malformed JSON in %s request body.", resourceName)
	}
	if result.Valid() {
		return nil
	}
	violations := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		violations = append(violations, e.String())
	}
	return errors2.NewClientErrorf(errors2.BAD_REQUEST, http.StatusBadRequest,
		"Invalid %s request body: %s", resourceName, strings.Join(violations, "; "))
}

// Decode reads the request body, validates it against schema and decodes it into v.
func Decode(r *http.Request, schema *gojsonschema.Schema, resourceName string, v interface{}) error {

	body, err := io.ReadAll(io.LimitReader(r.Body, MaxBodyBytes))
	if err != nil {
		return errors2.NewClientErrorf(errors2.BAD_REQUEST, http.StatusBadRequest,
			"Unable to read %s request body.", resourceName)
	}
	if err := Validate(schema, body, resourceName); err != nil {
		return err
	}
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return errors2.NewClientErrorf(errors2.BAD_REQUEST, http.StatusBadRequest, "%s",
			utils.HandleDecodeError(err, resourceName))
	}
	return nil
}
