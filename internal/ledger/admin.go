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

package ledger

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/wso2/research-consent-ledger/internal/events/model"
	"github.com/wso2/research-consent-ledger/internal/system/log"
)

// Pause stops registration, consent grants and download rewards. Owner only.
func (l *Ledger) Pause(caller common.Address) error {

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.access.Pause(caller); err != nil {
		return l.rejected(log.ActionPause, caller, err)
	}
	l.commit(model.NewEvent(model.Paused, l.clock.Now(), map[string]interface{}{"by": caller.Hex()}))
	l.audit(log.ActionPause, caller, log.TargetTypeLedger, "ledger", nil)
	return nil
}

func (l *Ledger) Unpause(caller common.Address) error {

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.access.Unpause(caller); err != nil {
		return l.rejected(log.ActionUnpause, caller, err)
	}
	l.commit(model.NewEvent(model.Unpaused, l.clock.Now(), map[string]interface{}{"by": caller.Hex()}))
	l.audit(log.ActionUnpause, caller, log.TargetTypeLedger, "ledger", nil)
	return nil
}

func (l *Ledger) IsPaused() bool {

	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.access.Paused()
}

func (l *Ledger) Owner() common.Address {

	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.access.Owner()
}

// TransferOwnership hands administration to newOwner.
func (l *Ledger) TransferOwnership(caller, newOwner common.Address) error {

	l.mu.Lock()
	defer l.mu.Unlock()

	previous, err := l.access.TransferOwnership(caller, newOwner)
	if err != nil {
		return l.rejected(log.ActionTransferOwnership, caller, err)
	}
	l.commit(model.NewEvent(model.OwnershipTransferred, l.clock.Now(), map[string]interface{}{
		"previous_owner": previous.Hex(),
		"new_owner":      newOwner.Hex(),
	}))
	l.auditAs(log.InitiatorTypeOwner, log.ActionTransferOwnership, caller, log.TargetTypeLedger, newOwner.Hex(), nil)
	return nil
}
