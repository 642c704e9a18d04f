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

// Package ledger owns every ledger table behind one reader/writer lock.
//
// Commands take the write lock for their whole duration, validate all preconditions before
// mutating, and hand their events to the event queue in commit order before releasing the lock.
// Queries take the read lock. The component services it wraps are not safe on their own.
package ledger

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/wso2/research-consent-ledger/internal/access"
	consentModel "github.com/wso2/research-consent-ledger/internal/consent/model"
	consentService "github.com/wso2/research-consent-ledger/internal/consent/service"
	"github.com/wso2/research-consent-ledger/internal/events/model"
	identityModel "github.com/wso2/research-consent-ledger/internal/identity/model"
	identityService "github.com/wso2/research-consent-ledger/internal/identity/service"
	rewardModel "github.com/wso2/research-consent-ledger/internal/reward/model"
	rewardService "github.com/wso2/research-consent-ledger/internal/reward/service"
	"github.com/wso2/research-consent-ledger/internal/soulbound"
	studyModel "github.com/wso2/research-consent-ledger/internal/study/model"
	studyService "github.com/wso2/research-consent-ledger/internal/study/service"
	"github.com/wso2/research-consent-ledger/internal/system/clock"
	"github.com/wso2/research-consent-ledger/internal/system/config"
	errors2 "github.com/wso2/research-consent-ledger/internal/system/errors"
	"github.com/wso2/research-consent-ledger/internal/system/log"
	"github.com/wso2/research-consent-ledger/internal/system/workers"
)

// Service is the command and query surface of the ledger. Principals are passed explicitly.
type Service interface {
	Register(caller common.Address) (*identityModel.Identity, error)
	IdentityOf(wallet common.Address) (uint64, error)
	IsRegistered(wallet common.Address) bool
	GetPatientInfo(identityID uint64) (*identityModel.PatientInfo, error)

	AuthorizeStudy(caller common.Address, studyID common.Hash, name string) (*studyModel.Study, error)
	RevokeStudyAuthorization(caller common.Address, studyID common.Hash, name string) (*studyModel.Study, error)
	IsStudyAuthorized(studyID common.Hash) bool
	GetStudy(studyID common.Hash) (*studyModel.Study, error)
	ListStudies() []studyModel.Study

	GrantConsent(caller common.Address, datasetHash, studyID common.Hash, validity time.Duration) (*consentModel.Consent, error)
	RevokeConsent(caller common.Address, consentID, ownerID uint64) (*consentModel.Consent, error)
	IsConsentValid(consentID, ownerID uint64) bool
	GetConsentDetails(consentID, ownerID uint64) (*consentModel.ConsentView, error)
	GetConsentsByStudy(studyID common.Hash) ([]consentModel.Consent, error)
	GetPatientConsents(identityID uint64) ([]uint64, error)

	RewardForDownload(caller, target common.Address, datasetHash common.Hash) (*rewardModel.DownloadReward, error)
	RedeemReward(caller common.Address, tokenCost uint64, rewardType string) (*rewardModel.Receipt, error)
	SetAuthorizedPatient(caller, patient common.Address, enabled bool) error
	GetRewardAccount(holder common.Address) rewardModel.Account
	GetReceipt(code string) (*rewardModel.Receipt, error)
	GetReceipts(holder common.Address) []rewardModel.Receipt

	Pause(caller common.Address) error
	Unpause(caller common.Address) error
	IsPaused() bool
	Owner() common.Address
	TransferOwnership(caller, newOwner common.Address) error

	Certificates() soulbound.CertificateView
	Points() soulbound.PointsView
	Stats() Stats
}

// Settings configure a ledger instance.
type Settings struct {
	Owner             common.Address
	Rewards           rewardModel.Settings
	TokenName         string
	TokenSymbol       string
	CertificateName   string
	CertificateSymbol string
}

// DefaultSettings returns the standard reward policy and token metadata for owner.
func DefaultSettings(owner common.Address) Settings {
	return Settings{
		Owner:             owner,
		Rewards:           rewardModel.DefaultSettings(),
		TokenName:         "CercleToken",
		TokenSymbol:       "CERCLE",
		CertificateName:   "CercleConsent",
		CertificateSymbol: "CCONSENT",
	}
}

// SettingsFromConfig validates the ledger section of the deployment configuration.
func SettingsFromConfig(cfg config.LedgerConfig) (Settings, error) {

	if !common.IsHexAddress(cfg.Owner) || common.HexToAddress(cfg.Owner) == (common.Address{}) {
		return Settings{}, errors2.NewClientErrorf(errors2.INVALID_ADDRESS, http.StatusBadRequest,
			"Ledger owner %q is not a valid address.", cfg.Owner)
	}
	settings := DefaultSettings(common.HexToAddress(cfg.Owner))
	settings.Rewards = rewardModel.Settings{
		MonthlyMintLimit: cfg.MonthlyMintLimit,
		RewardAmount:     cfg.RewardAmount,
		MintWindow:       cfg.MintWindow,
	}
	settings.TokenName = cfg.TokenName
	settings.TokenSymbol = cfg.TokenSymbol
	settings.CertificateName = cfg.CertificateName
	settings.CertificateSymbol = cfg.CertificateSymbol
	return settings, nil
}

// Stats summarises ledger state for health reporting.
type Stats struct {
	Identities        int    `json:"identities"`
	Studies           int    `json:"studies"`
	Consents          int    `json:"consents"`
	CertificateSupply uint64 `json:"certificate_supply"`
	TokenSupply       uint64 `json:"token_supply"`
	LastSequence      uint64 `json:"last_sequence"`
	Paused            bool   `json:"paused"`
}

// Ledger is the process-wide owner of identity, study, consent and reward state.
type Ledger struct {
	mu         sync.RWMutex
	clock      clock.Clock
	queue      workers.EventQueue
	access     *access.Control
	identities *identityService.IdentityRegistry
	studies    *studyService.StudyRegistry
	consents   *consentService.ConsentLedger
	rewards    *rewardService.RewardLedger
	sequence   uint64
}

// New builds an empty ledger. queue may be nil when no event delivery is wanted.
func New(settings Settings, clk clock.Clock, queue workers.EventQueue) *Ledger {

	if clk == nil {
		clk = clock.SystemClock{}
	}
	identities := identityService.NewIdentityRegistry()
	studies := studyService.NewStudyRegistry()
	certificates := soulbound.NewCertificate(settings.CertificateName, settings.CertificateSymbol)
	points := soulbound.NewPoints(settings.TokenName, settings.TokenSymbol)

	return &Ledger{
		clock:      clk,
		queue:      queue,
		access:     access.NewControl(settings.Owner),
		identities: identities,
		studies:    studies,
		consents:   consentService.NewConsentLedger(identities, studies, certificates),
		rewards:    rewardService.NewRewardLedger(settings.Rewards, points),
	}
}

// commit sequences events and hands them to the queue. Callers hold the write lock.
func (l *Ledger) commit(events ...model.Event) {

	for i := range events {
		l.sequence++
		events[i].Sequence = l.sequence
	}
	if l.queue != nil {
		l.queue.Enqueue(events)
	}
}

// ResumeAfter continues event numbering after sequence, the last sequence already held by a
// durable journal. It never moves the counter backwards.
func (l *Ledger) ResumeAfter(sequence uint64) {

	l.mu.Lock()
	defer l.mu.Unlock()
	if sequence > l.sequence {
		l.sequence = sequence
		log.GetLogger().Info("Resuming ledger event sequence", log.Uint64("last_sequence", sequence))
	}
}

func (l *Ledger) audit(action string, initiator common.Address, targetType, targetID string, data interface{}) {

	initiatorType := log.InitiatorTypePatient
	if l.access.IsOwner(initiator) {
		initiatorType = log.InitiatorTypeOwner
	}
	l.auditAs(initiatorType, action, initiator, targetType, targetID, data)
}

func (l *Ledger) auditAs(initiatorType, action string, initiator common.Address, targetType, targetID string,
	data interface{}) {

	log.GetLogger().Audit(log.AuditEvent{
		RecordedAt:    l.clock.Now().Format(time.RFC3339),
		InitiatorID:   initiator.Hex(),
		InitiatorType: initiatorType,
		TargetID:      targetID,
		TargetType:    targetType,
		ActionID:      action,
		Data:          data,
	})
}

func (l *Ledger) rejected(action string, caller common.Address, err error) error {

	log.GetLogger().Debug(fmt.Sprintf("Ledger command %s rejected", action),
		log.String("caller", caller.Hex()), log.Error(err))
	return err
}

func (l *Ledger) Certificates() soulbound.CertificateView {
	return newLockedCertificate(&l.mu, l.consents.Certificates())
}

func (l *Ledger) Points() soulbound.PointsView {
	return newLockedPoints(&l.mu, l.rewards.Points())
}

func (l *Ledger) Stats() Stats {

	l.mu.RLock()
	defer l.mu.RUnlock()
	return Stats{
		Identities:        l.identities.Count(),
		Studies:           l.studies.Count(),
		Consents:          l.consents.Count(),
		CertificateSupply: l.consents.Certificates().TotalSupply(),
		TokenSupply:       l.rewards.Points().TotalSupply(),
		LastSequence:      l.sequence,
		Paused:            l.access.Paused(),
	}
}
