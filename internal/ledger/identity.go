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
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/wso2/research-consent-ledger/internal/events/model"
	identityModel "github.com/wso2/research-consent-ledger/internal/identity/model"
	"github.com/wso2/research-consent-ledger/internal/system/log"
)

// Register assigns the next identity id to the caller's wallet.
func (l *Ledger) Register(caller common.Address) (*identityModel.Identity, error) {

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.access.RequireNotPaused(); err != nil {
		return nil, l.rejected(log.ActionRegisterIdentity, caller, err)
	}
	now := l.clock.Now()
	identity, err := l.identities.Register(caller, now)
	if err != nil {
		return nil, l.rejected(log.ActionRegisterIdentity, caller, err)
	}

	l.commit(model.NewEvent(model.IdentityRegistered, now, map[string]interface{}{
		"wallet":      caller.Hex(),
		"identity_id": identity.ID,
	}))
	l.audit(log.ActionRegisterIdentity, caller, log.TargetTypeIdentity, fmt.Sprint(identity.ID), nil)
	return identity, nil
}

func (l *Ledger) IdentityOf(wallet common.Address) (uint64, error) {

	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.identities.IDOf(wallet)
}

func (l *Ledger) IsRegistered(wallet common.Address) bool {

	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.identities.IsRegistered(wallet)
}

// GetPatientInfo returns the identity with its active consent ids.
func (l *Ledger) GetPatientInfo(identityID uint64) (*identityModel.PatientInfo, error) {

	l.mu.RLock()
	defer l.mu.RUnlock()

	identity, err := l.identities.Info(identityID)
	if err != nil {
		return nil, err
	}
	return &identityModel.PatientInfo{
		Identity:   *identity,
		ConsentIDs: l.consents.PatientConsents(identityID),
	}, nil
}
