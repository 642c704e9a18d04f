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
	"github.com/wso2/research-consent-ledger/internal/study/model"
	errors2 "github.com/wso2/research-consent-ledger/internal/system/errors"
)

// StudyRegistryInterface defines the study registry operations.
type StudyRegistryInterface interface {
	Authorize(studyID common.Hash, name string, now time.Time) (*model.Study, error)
	Revoke(studyID common.Hash, name string, now time.Time) (*model.Study, error)
	IsAuthorized(studyID common.Hash) bool
	Get(studyID common.Hash) (*model.Study, error)
	List() []model.Study
	Count() int
}

// StudyRegistry tracks which study ids are currently authorized.
// It is not safe for concurrent use; the ledger serializes access.
type StudyRegistry struct {
	studies map[common.Hash]*model.Study
	order   []common.Hash
}

func NewStudyRegistry() *StudyRegistry {

	return &StudyRegistry{
		studies: make(map[common.Hash]*model.Study),
	}
}

// Authorize marks studyID as authorized. Authorizing an authorized study only refreshes its name.
func (r *StudyRegistry) Authorize(studyID common.Hash, name string, now time.Time) (*model.Study, error) {

	if studyID == (common.Hash{}) {
		return nil, errors2.NewClientErrorf(errors2.EMPTY_STUDY_ID, http.StatusBadRequest,
			"A non-zero study id is required.")
	}

	study, ok := r.studies[studyID]
	if !ok {
		study = &model.Study{ID: studyID}
		r.studies[studyID] = study
		r.order = append(r.order, studyID)
	}
	if !study.Authorized {
		study.AuthorizedAt = now
	}
	study.Name = name
	study.Authorized = true
	study.UpdatedAt = now

	result := *study
	return &result, nil
}

// Revoke withdraws the authorization of studyID. Existing consents stay on the ledger but stop
// appearing in study listings until the study is authorized again.
func (r *StudyRegistry) Revoke(studyID common.Hash, name string, now time.Time) (*model.Study, error) {

	study, ok := r.studies[studyID]
	if !ok || !study.Authorized {
		return nil, errors2.NewClientErrorf(errors2.STUDY_NOT_AUTHORIZED_FOR_REVOCATION, http.StatusBadRequest,
			"Study %s (%s) is not authorized.", studyID.Hex(), name)
	}
	study.Authorized = false
	study.UpdatedAt = now

	result := *study
	return &result, nil
}

func (r *StudyRegistry) IsAuthorized(studyID common.Hash) bool {
	study, ok := r.studies[studyID]
	return ok && study.Authorized
}

// Get returns the study record for studyID, authorized or not.
func (r *StudyRegistry) Get(studyID common.Hash) (*model.Study, error) {

	study, ok := r.studies[studyID]
	if !ok {
		return nil, errors2.NewClientErrorf(errors2.STUDY_NOT_FOUND, http.StatusNotFound,
			"Study %s is not known to the ledger.", studyID.Hex())
	}
	result := *study
	return &result, nil
}

// List returns every known study in order of first authorization.
func (r *StudyRegistry) List() []model.Study {

	studies := make([]model.Study, 0, len(r.order))
	for _, id := range r.order {
		studies = append(studies, *r.studies[id])
	}
	return studies
}

func (r *StudyRegistry) Count() int {
	return len(r.order)
}
