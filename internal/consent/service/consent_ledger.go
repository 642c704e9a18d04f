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

package service

import (
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/wso2/research-consent-ledger/internal/consent/model"
	"github.com/wso2/research-consent-ledger/internal/soulbound"
	errors2 "github.com/wso2/research-consent-ledger/internal/system/errors"
)

// IdentityLookup resolves a caller to its identity id.
type IdentityLookup interface {
	IDOf(wallet common.Address) (uint64, error)
}

// StudyLookup reports study authorization.
type StudyLookup interface {
	IsAuthorized(studyID common.Hash) bool
}

// ConsentLedgerInterface defines the consent ledger operations.
type ConsentLedgerInterface interface {
	Grant(caller common.Address, datasetHash, studyID common.Hash, validity time.Duration, now time.Time) (*model.Consent, error)
	Revoke(caller common.Address, consentID, ownerID uint64, now time.Time) (*model.Consent, error)
	IsValid(consentID, ownerID uint64, now time.Time) bool
	Details(consentID, ownerID uint64) (*model.Consent, error)
	ByStudy(studyID common.Hash, now time.Time) ([]model.Consent, error)
	PatientConsents(identityID uint64) []uint64
	PatientConsentCount(identityID uint64) int
	Count() int
	Certificates() soulbound.CertificateView
}

// ConsentLedger stores consent records and mints one soul-bound certificate per grant.
// It is not safe for concurrent use; the ledger serializes access.
type ConsentLedger struct {
	identities   IdentityLookup
	studies      StudyLookup
	certificates *soulbound.Certificate
	records      []model.Consent
	active       map[uint64]*activeSet
}

func NewConsentLedger(identities IdentityLookup, studies StudyLookup, certificates *soulbound.Certificate) *ConsentLedger {

	return &ConsentLedger{
		identities:   identities,
		studies:      studies,
		certificates: certificates,
		active:       make(map[uint64]*activeSet),
	}
}

// Grant records a consent owned by the caller's identity and mints its certificate to the caller.
func (l *ConsentLedger) Grant(caller common.Address, datasetHash, studyID common.Hash, validity time.Duration,
	now time.Time) (*model.Consent, error) {

	ownerID, err := l.identities.IDOf(caller)
	if err != nil {
		return nil, err
	}
	if datasetHash == (common.Hash{}) {
		return nil, errors2.NewClientErrorf(errors2.DATASET_HASH_REQUIRED, http.StatusBadRequest,
			"A non-zero dataset hash is required.")
	}
	if validity <= 0 {
		return nil, errors2.NewClientErrorf(errors2.VALIDITY_DURATION_REQUIRED, http.StatusBadRequest,
			"Validity duration must be positive.")
	}
	if studyID == (common.Hash{}) || !l.studies.IsAuthorized(studyID) {
		return nil, errors2.NewClientErrorf(errors2.STUDY_NOT_AUTHORIZED, http.StatusBadRequest,
			"Study %s is not authorized.", studyID.Hex())
	}

	consent := model.Consent{
		ConsentID:   uint64(len(l.records)) + 1,
		OwnerID:     ownerID,
		DatasetHash: datasetHash,
		StudyID:     studyID,
		CreatedAt:   now,
		ValidUntil:  now.Add(validity),
		IsActive:    true,
	}
	if err := l.certificates.Mint(caller, consent.ConsentID); err != nil {
		return nil, err
	}
	l.records = append(l.records, consent)
	l.activeSetOf(ownerID).add(consent.ConsentID)
	return &consent, nil
}

// Revoke ends consentID. Only the owning identity, while holding the certificate, may revoke.
func (l *ConsentLedger) Revoke(caller common.Address, consentID, ownerID uint64, now time.Time) (*model.Consent, error) {

	record, err := l.lookup(consentID, ownerID)
	if err != nil {
		return nil, err
	}
	callerID, err := l.identities.IDOf(caller)
	holder, _ := l.certificates.OwnerOf(consentID)
	if err != nil || callerID != ownerID || holder != caller {
		return nil, errors2.NewClientErrorf(errors2.ONLY_OWNER_CAN_REVOKE, http.StatusForbidden,
			"Consent %d can only be revoked by its owner.", consentID)
	}
	if !record.IsActive {
		return nil, errors2.NewClientErrorf(errors2.CONSENT_ALREADY_REVOKED, http.StatusConflict,
			"Consent %d was revoked at %s.", consentID, record.RevokedAt.Format(time.RFC3339))
	}

	record.IsActive = false
	record.RevokedAt = &now
	l.activeSetOf(ownerID).remove(consentID)
	revoked := *record
	return &revoked, nil
}

// IsValid reports whether consentID belongs to ownerID and is valid at now. It never fails.
func (l *ConsentLedger) IsValid(consentID, ownerID uint64, now time.Time) bool {

	record, err := l.lookup(consentID, ownerID)
	if err != nil {
		return false
	}
	return record.ValidAt(now)
}

func (l *ConsentLedger) Details(consentID, ownerID uint64) (*model.Consent, error) {

	record, err := l.lookup(consentID, ownerID)
	if err != nil {
		return nil, err
	}
	details := *record
	return &details, nil
}

// ByStudy returns the consents for studyID that are valid at now, in consent id order.
func (l *ConsentLedger) ByStudy(studyID common.Hash, now time.Time) ([]model.Consent, error) {

	if studyID == (common.Hash{}) || !l.studies.IsAuthorized(studyID) {
		return nil, errors2.NewClientErrorf(errors2.STUDY_NOT_AUTHORIZED, http.StatusBadRequest,
			"Study %s is not authorized.", studyID.Hex())
	}
	consents := make([]model.Consent, 0)
	for _, record := range l.records {
		if record.StudyID == studyID && record.ValidAt(now) {
			consents = append(consents, record)
		}
	}
	return consents, nil
}

// PatientConsents returns the active consent ids of identityID in no particular order.
func (l *ConsentLedger) PatientConsents(identityID uint64) []uint64 {

	set, ok := l.active[identityID]
	if !ok {
		return []uint64{}
	}
	ids := make([]uint64, len(set.ids))
	copy(ids, set.ids)
	return ids
}

func (l *ConsentLedger) PatientConsentCount(identityID uint64) int {

	if set, ok := l.active[identityID]; ok {
		return len(set.ids)
	}
	return 0
}

// Count returns the number of consents ever granted.
func (l *ConsentLedger) Count() int {
	return len(l.records)
}

func (l *ConsentLedger) Certificates() soulbound.CertificateView {
	return l.certificates
}

func (l *ConsentLedger) lookup(consentID, ownerID uint64) (*model.Consent, error) {

	if consentID == 0 || consentID > uint64(len(l.records)) || l.records[consentID-1].OwnerID != ownerID {
		return nil, errors2.NewClientErrorf(errors2.TOKEN_DOES_NOT_EXIST, http.StatusNotFound,
			"Consent %d does not exist for owner %d.", consentID, ownerID)
	}
	return &l.records[consentID-1], nil
}

func (l *ConsentLedger) activeSetOf(identityID uint64) *activeSet {

	set, ok := l.active[identityID]
	if !ok {
		set = newActiveSet()
		l.active[identityID] = set
	}
	return set
}

// activeSet holds consent ids with O(1) insertion and unordered removal.
type activeSet struct {
	ids   []uint64
	index map[uint64]int
}

func newActiveSet() *activeSet {
	return &activeSet{index: make(map[uint64]int)}
}

func (s *activeSet) add(id uint64) {
	if _, ok := s.index[id]; ok {
		return
	}
	s.index[id] = len(s.ids)
	s.ids = append(s.ids, id)
}

// remove swaps the last id into the removed slot.
func (s *activeSet) remove(id uint64) {
	pos, ok := s.index[id]
	if !ok {
		return
	}
	last := len(s.ids) - 1
	s.ids[pos] = s.ids[last]
	s.index[s.ids[pos]] = pos
	s.ids = s.ids[:last]
	delete(s.index, id)
}
