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
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common"
	consentModel "github.com/wso2/research-consent-ledger/internal/consent/model"
	"github.com/wso2/research-consent-ledger/internal/events/model"
	errors2 "github.com/wso2/research-consent-ledger/internal/system/errors"
	"github.com/wso2/research-consent-ledger/internal/system/log"
)

// GrantConsent records a consent for the caller and mints its soul-bound certificate.
func (l *Ledger) GrantConsent(caller common.Address, datasetHash, studyID common.Hash,
	validity time.Duration) (*consentModel.Consent, error) {

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.access.RequireNotPaused(); err != nil {
		return nil, l.rejected(log.ActionGrantConsent, caller, err)
	}
	now := l.clock.Now()
	consent, err := l.consents.Grant(caller, datasetHash, studyID, validity, now)
	if err != nil {
		return nil, l.rejected(log.ActionGrantConsent, caller, err)
	}

	l.commit(model.NewEvent(model.ConsentGranted, now, map[string]interface{}{
		"consent_id":   consent.ConsentID,
		"owner_id":     consent.OwnerID,
		"holder":       caller.Hex(),
		"dataset_hash": datasetHash.Hex(),
		"study_id":     studyID.Hex(),
		"valid_until":  consent.ValidUntil.Format(time.RFC3339),
	}))
	l.audit(log.ActionGrantConsent, caller, log.TargetTypeConsent, fmt.Sprint(consent.ConsentID),
		map[string]string{"study_id": studyID.Hex()})
	return consent, nil
}

// RevokeConsent ends a consent. Allowed while paused so patients can always withdraw.
func (l *Ledger) RevokeConsent(caller common.Address, consentID, ownerID uint64) (*consentModel.Consent, error) {

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	consent, err := l.consents.Revoke(caller, consentID, ownerID, now)
	if err != nil {
		return nil, l.rejected(log.ActionRevokeConsent, caller, err)
	}

	l.commit(model.NewEvent(model.ConsentRevoked, now, map[string]interface{}{
		"consent_id": consentID,
		"owner_id":   ownerID,
		"study_id":   consent.StudyID.Hex(),
	}))
	l.audit(log.ActionRevokeConsent, caller, log.TargetTypeConsent, fmt.Sprint(consentID), nil)
	return consent, nil
}

func (l *Ledger) IsConsentValid(consentID, ownerID uint64) bool {

	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.consents.IsValid(consentID, ownerID, l.clock.Now())
}

func (l *Ledger) GetConsentDetails(consentID, ownerID uint64) (*consentModel.ConsentView, error) {

	l.mu.RLock()
	defer l.mu.RUnlock()

	consent, err := l.consents.Details(consentID, ownerID)
	if err != nil {
		return nil, err
	}
	return &consentModel.ConsentView{Consent: *consent, Valid: consent.ValidAt(l.clock.Now())}, nil
}

// GetConsentsByStudy returns the currently valid consents for studyID in consent id order.
func (l *Ledger) GetConsentsByStudy(studyID common.Hash) ([]consentModel.Consent, error) {

	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.consents.ByStudy(studyID, l.clock.Now())
}

// GetPatientConsents returns the active consent ids of a registered identity, unordered.
func (l *Ledger) GetPatientConsents(identityID uint64) ([]uint64, error) {

	l.mu.RLock()
	defer l.mu.RUnlock()

	if _, err := l.identities.Info(identityID); err != nil {
		return nil, errors2.NewClientErrorf(errors2.UNKNOWN_IDENTITY, http.StatusNotFound,
			"Identity %d is not registered.", identityID)
	}
	return l.consents.PatientConsents(identityID), nil
}
