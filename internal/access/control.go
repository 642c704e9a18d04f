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

// Package access holds the ledger owner and the pause flag.
package access

import (
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	errors2 "github.com/wso2/research-consent-ledger/internal/system/errors"
)

// Control is a single-owner guard with a pause switch.
// It is not safe for concurrent use; the ledger serializes access.
type Control struct {
	owner  common.Address
	paused bool
}

func NewControl(owner common.Address) *Control {
	return &Control{owner: owner}
}

func (c *Control) Owner() common.Address {
	return c.owner
}

func (c *Control) IsOwner(caller common.Address) bool {
	return caller == c.owner
}

// RequireOwner fails Unauthorized for anyone but the owner.
func (c *Control) RequireOwner(caller common.Address) error {

	if caller != c.owner {
		return errors2.NewClientErrorf(errors2.UNAUTHORIZED, http.StatusForbidden,
			"%s is not the ledger owner.", caller.Hex())
	}
	return nil
}

func (c *Control) Paused() bool {
	return c.paused
}

// RequireNotPaused fails SystemPaused while the ledger is paused.
func (c *Control) RequireNotPaused() error {

	if c.paused {
		return errors2.NewClientError(errors2.SYSTEM_PAUSED, http.StatusServiceUnavailable)
	}
	return nil
}

func (c *Control) Pause(caller common.Address) error {

	if err := c.RequireOwner(caller); err != nil {
		return err
	}
	if c.paused {
		return errors2.NewClientError(errors2.ALREADY_PAUSED, http.StatusConflict)
	}
	c.paused = true
	return nil
}

func (c *Control) Unpause(caller common.Address) error {

	if err := c.RequireOwner(caller); err != nil {
		return err
	}
	if !c.paused {
		return errors2.NewClientError(errors2.NOT_PAUSED, http.StatusConflict)
	}
	c.paused = false
	return nil
}

// TransferOwnership hands the owner role to newOwner and returns the previous owner.
func (c *Control) TransferOwnership(caller, newOwner common.Address) (common.Address, error) {

	if err := c.RequireOwner(caller); err != nil {
		return common.Address{}, err
	}
	if newOwner == (common.Address{}) {
		return common.Address{}, errors2.NewClientErrorf(errors2.INVALID_ADDRESS, http.StatusBadRequest,
			"Ownership cannot be transferred to the zero address.")
	}
	previous := c.owner
	c.owner = newOwner
	return previous, nil
}
