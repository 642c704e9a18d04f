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
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	identityService "github.com/wso2/research-consent-ledger/internal/identity/service"
	"github.com/wso2/research-consent-ledger/internal/soulbound"
	studyService "github.com/wso2/research-consent-ledger/internal/study/service"
	errors2 "github.com/wso2/research-consent-ledger/internal/system/errors"
)

var (
	patient1 = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	patient2 = common.HexToAddress("0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC")
	stranger = common.HexToAddress("0x90F79bf6EB2c4f870365E785982E1f101E93b906")
	study1   = crypto.Keccak256Hash([]byte("Study1"))
	dataset  = crypto.Keccak256Hash([]byte("dataset-1"))
	t0       = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	month    = 2592000 * time.Second
)

type fixture struct {
	identities *identityService.IdentityRegistry
	studies    *studyService.StudyRegistry
	ledger     *ConsentLedger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	identities := identityService.NewIdentityRegistry()
	studies := studyService.NewStudyRegistry()
	_, err := identities.Register(patient1, t0)
	require.NoError(t, err)
	_, err = identities.Register(patient2, t0)
	require.NoError(t, err)
	_, err = studies.Authorize(study1, "Study1", t0)
	require.NoError(t, err)
	return &fixture{
		identities: identities,
		studies:    studies,
		ledger:     NewConsentLedger(identities, studies, soulbound.NewCertificate("CercleConsent", "CCONSENT")),
	}
}

func TestGrant_CreatesRecordAndCertificate(t *testing.T) {
	f := newFixture(t)

	consent, err := f.ledger.Grant(patient1, dataset, study1, month, t0)
	require.NoError(t, err)

	assert.Equal(t, uint64(1), consent.ConsentID)
	assert.Equal(t, uint64(1), consent.OwnerID)
	assert.Equal(t, t0.Add(month), consent.ValidUntil)
	assert.True(t, consent.IsActive)
	assert.Nil(t, consent.RevokedAt)
	assert.Equal(t, []uint64{1}, f.ledger.PatientConsents(1))

	holder, err := f.ledger.Certificates().OwnerOf(1)
	require.NoError(t, err)
	assert.Equal(t, patient1, holder)
	assert.Equal(t, uint64(1), f.ledger.Certificates().TotalSupply())
}

func TestGrant_ConsentIDsAreGlobal(t *testing.T) {
	f := newFixture(t)

	first, err := f.ledger.Grant(patient1, dataset, study1, month, t0)
	require.NoError(t, err)
	second, err := f.ledger.Grant(patient2, dataset, study1, month, t0)
	require.NoError(t, err)

	assert.Equal(t, uint64(1), first.ConsentID)
	assert.Equal(t, uint64(2), second.ConsentID)
	assert.Equal(t, uint64(2), second.OwnerID)
	assert.Equal(t, 2, f.ledger.Count())
}

func TestGrant_Validation(t *testing.T) {
	f := newFixture(t)
	unknownStudy := crypto.Keccak256Hash([]byte("Unknown"))

	tests := []struct {
		name        string
		caller      common.Address
		datasetHash common.Hash
		studyID     common.Hash
		validity    time.Duration
		want        errors2.ErrorMessage
	}{
		{"unregistered caller", stranger, dataset, study1, month, errors2.NOT_REGISTERED},
		{"unregistered wins over bad input", stranger, common.Hash{}, common.Hash{}, 0, errors2.NOT_REGISTERED},
		{"zero dataset hash", patient1, common.Hash{}, study1, month, errors2.DATASET_HASH_REQUIRED},
		{"zero validity", patient1, dataset, study1, 0, errors2.VALIDITY_DURATION_REQUIRED},
		{"negative validity", patient1, dataset, study1, -time.Second, errors2.VALIDITY_DURATION_REQUIRED},
		{"unknown study", patient1, dataset, unknownStudy, month, errors2.STUDY_NOT_AUTHORIZED},
		{"zero study", patient1, dataset, common.Hash{}, month, errors2.STUDY_NOT_AUTHORIZED},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.ledger.Grant(tt.caller, tt.datasetHash, tt.studyID, tt.validity, t0)
			assert.True(t, errors2.HasCode(err, tt.want), "got %v", err)
		})
	}
	assert.Zero(t, f.ledger.Count())
	assert.Zero(t, f.ledger.Certificates().TotalSupply())
}

func TestIsValid_ExpiresExactlyAtValidUntil(t *testing.T) {
	f := newFixture(t)
	consent, err := f.ledger.Grant(patient1, dataset, study1, month, t0)
	require.NoError(t, err)

	assert.True(t, f.ledger.IsValid(consent.ConsentID, 1, t0))
	assert.True(t, f.ledger.IsValid(consent.ConsentID, 1, consent.ValidUntil.Add(-time.Second)))
	assert.False(t, f.ledger.IsValid(consent.ConsentID, 1, consent.ValidUntil))
	assert.False(t, f.ledger.IsValid(consent.ConsentID, 2, t0), "owner mismatch")
	assert.False(t, f.ledger.IsValid(999, 999, t0))
	assert.False(t, f.ledger.IsValid(0, 1, t0))
}

func TestRevoke(t *testing.T) {
	f := newFixture(t)
	consent, err := f.ledger.Grant(patient1, dataset, study1, month, t0)
	require.NoError(t, err)
	revokedAt := t0.Add(time.Hour)

	_, err = f.ledger.Revoke(patient2, consent.ConsentID, 1, revokedAt)
	assert.True(t, errors2.HasCode(err, errors2.ONLY_OWNER_CAN_REVOKE))
	_, err = f.ledger.Revoke(stranger, consent.ConsentID, 1, revokedAt)
	assert.True(t, errors2.HasCode(err, errors2.ONLY_OWNER_CAN_REVOKE))

	revoked, err := f.ledger.Revoke(patient1, consent.ConsentID, 1, revokedAt)
	require.NoError(t, err)
	assert.False(t, revoked.IsActive)
	require.NotNil(t, revoked.RevokedAt)
	assert.Equal(t, revokedAt, *revoked.RevokedAt)
	assert.False(t, f.ledger.IsValid(consent.ConsentID, 1, revokedAt))
	assert.Empty(t, f.ledger.PatientConsents(1))

	_, err = f.ledger.Revoke(patient1, consent.ConsentID, 1, revokedAt)
	assert.True(t, errors2.HasCode(err, errors2.CONSENT_ALREADY_REVOKED))

	holder, err := f.ledger.Certificates().OwnerOf(consent.ConsentID)
	require.NoError(t, err)
	assert.Equal(t, patient1, holder, "certificate stays with its holder")

	details, err := f.ledger.Details(consent.ConsentID, 1)
	require.NoError(t, err)
	assert.False(t, details.IsActive)
	require.NotNil(t, details.RevokedAt)
	assert.Equal(t, revokedAt, *details.RevokedAt)
}

func TestRevoke_UnknownConsent(t *testing.T) {
	f := newFixture(t)
	_, err := f.ledger.Grant(patient1, dataset, study1, month, t0)
	require.NoError(t, err)

	_, err = f.ledger.Revoke(patient1, 999, 1, t0)
	assert.True(t, errors2.HasCode(err, errors2.TOKEN_DOES_NOT_EXIST))
	_, err = f.ledger.Revoke(patient2, 1, 2, t0)
	assert.True(t, errors2.HasCode(err, errors2.TOKEN_DOES_NOT_EXIST))
}

func TestRevoke_ActiveSetSwapRemove(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < 4; i++ {
		_, err := f.ledger.Grant(patient1, dataset, study1, month, t0)
		require.NoError(t, err)
	}

	_, err := f.ledger.Revoke(patient1, 2, 1, t0)
	require.NoError(t, err)

	assert.ElementsMatch(t, []uint64{1, 3, 4}, f.ledger.PatientConsents(1))
	assert.Equal(t, 3, f.ledger.PatientConsentCount(1))

	_, err = f.ledger.Revoke(patient1, 4, 1, t0)
	require.NoError(t, err)
	_, err = f.ledger.Revoke(patient1, 1, 1, t0)
	require.NoError(t, err)
	assert.Equal(t, []uint64{3}, f.ledger.PatientConsents(1))
	assert.Zero(t, f.ledger.PatientConsentCount(2))
}

func TestDetails_UnknownOrMismatchedOwner(t *testing.T) {
	f := newFixture(t)
	_, err := f.ledger.Grant(patient1, dataset, study1, month, t0)
	require.NoError(t, err)

	details, err := f.ledger.Details(1, 1)
	require.NoError(t, err)
	assert.Equal(t, dataset, details.DatasetHash)
	assert.Equal(t, study1, details.StudyID)

	_, err = f.ledger.Details(999, 999)
	assert.True(t, errors2.HasCode(err, errors2.TOKEN_DOES_NOT_EXIST))
	_, err = f.ledger.Details(1, 2)
	assert.True(t, errors2.HasCode(err, errors2.TOKEN_DOES_NOT_EXIST))
}

func TestByStudy_ReturnsOnlyValidConsents(t *testing.T) {
	f := newFixture(t)
	study2 := crypto.Keccak256Hash([]byte("Study2"))
	_, err := f.studies.Authorize(study2, "Study2", t0)
	require.NoError(t, err)

	_, err = f.ledger.Grant(patient1, dataset, study1, month, t0)
	require.NoError(t, err)
	_, err = f.ledger.Grant(patient2, dataset, study1, time.Hour, t0)
	require.NoError(t, err)
	_, err = f.ledger.Grant(patient1, dataset, study2, month, t0)
	require.NoError(t, err)
	_, err = f.ledger.Grant(patient2, dataset, study1, month, t0)
	require.NoError(t, err)
	_, err = f.ledger.Revoke(patient2, 4, 2, t0)
	require.NoError(t, err)

	consents, err := f.ledger.ByStudy(study1, t0)
	require.NoError(t, err)
	require.Len(t, consents, 2)
	assert.Equal(t, uint64(1), consents[0].ConsentID)
	assert.Equal(t, uint64(2), consents[1].ConsentID)

	consents, err = f.ledger.ByStudy(study1, t0.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, consents, 1)
	assert.Equal(t, uint64(1), consents[0].ConsentID)

	_, err = f.ledger.ByStudy(common.Hash{}, t0)
	assert.True(t, errors2.HasCode(err, errors2.STUDY_NOT_AUTHORIZED))

	_, err = f.studies.Revoke(study2, "Study2", t0)
	require.NoError(t, err)
	_, err = f.ledger.ByStudy(study2, t0)
	assert.True(t, errors2.HasCode(err, errors2.STUDY_NOT_AUTHORIZED))
}
