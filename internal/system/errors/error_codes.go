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

package errors

const errorPrefix = "CLS-"

var (
	// Server error codes

	APPEND_EVENT = ErrorMessage{
		Code:    errorPrefix + "15001",
		Message: "Error while appending ledger events to the journal.",
	}

	FETCH_EVENTS = ErrorMessage{
		Code:    errorPrefix + "15002",
		Message: "Error while fetching ledger events from the journal.",
	}

	PUBLISH_EVENT = ErrorMessage{
		Code:    errorPrefix + "15003",
		Message: "Error while publishing ledger events.",
	}

	DB_CLIENT_INIT = ErrorMessage{
		Code:    errorPrefix + "15004",
		Message: "Error while initializing the database client.",
	}

	JOURNAL_INIT = ErrorMessage{
		Code:    errorPrefix + "15005",
		Message: "Error while opening the event journal.",
	}

	PARSING_ERROR = ErrorMessage{
		Code:    errorPrefix + "15006",
		Message: "Error while parsing the token.",
	}

	// Client error codes: identity

	ALREADY_REGISTERED = ErrorMessage{
		Code:    errorPrefix + "10001",
		Message: "AlreadyRegistered",
	}

	NOT_REGISTERED = ErrorMessage{
		Code:    errorPrefix + "10002",
		Message: "NotRegistered",
	}

	UNKNOWN_IDENTITY = ErrorMessage{
		Code:    errorPrefix + "10003",
		Message: "UnknownIdentity",
	}

	// Client error codes: study

	EMPTY_STUDY_ID = ErrorMessage{
		Code:    errorPrefix + "10101",
		Message: "EmptyStudyId",
	}

	STUDY_NOT_AUTHORIZED = ErrorMessage{
		Code:    errorPrefix + "10102",
		Message: "StudyNotAuthorized",
	}

	STUDY_NOT_AUTHORIZED_FOR_REVOCATION = ErrorMessage{
		Code:    errorPrefix + "10103",
		Message: "StudyNotAuthorizedForRevocation",
	}

	STUDY_NOT_FOUND = ErrorMessage{
		Code:    errorPrefix + "10104",
		Message: "StudyNotFound",
	}

	// Client error codes: consent

	DATASET_HASH_REQUIRED = ErrorMessage{
		Code:    errorPrefix + "10201",
		Message: "DatasetHashRequired",
	}

	VALIDITY_DURATION_REQUIRED = ErrorMessage{
		Code:    errorPrefix + "10202",
		Message: "ValidityDurationRequired",
	}

	TOKEN_DOES_NOT_EXIST = ErrorMessage{
		Code:    errorPrefix + "10203",
		Message: "TokenDoesNotExist",
	}

	ONLY_OWNER_CAN_REVOKE = ErrorMessage{
		Code:    errorPrefix + "10204",
		Message: "OnlyOwnerCanRevoke",
	}

	CONSENT_ALREADY_REVOKED = ErrorMessage{
		Code:    errorPrefix + "10205",
		Message: "ConsentAlreadyRevoked",
	}

	// Client error codes: token behaviour

	TRANSFERS_DISABLED = ErrorMessage{
		Code:        errorPrefix + "10301",
		Message:     "TransfersDisabled",
		Description: "Soul-bound tokens cannot be transferred.",
	}

	APPROVALS_DISABLED = ErrorMessage{
		Code:        errorPrefix + "10302",
		Message:     "ApprovalsDisabled",
		Description: "Soul-bound tokens cannot be approved for transfer.",
	}

	ALLOWANCE_DISABLED = ErrorMessage{
		Code:        errorPrefix + "10303",
		Message:     "AllowanceDisabled",
		Description: "Soul-bound balances have no allowances.",
	}

	// Client error codes: rewards

	INVALID_ADDRESS = ErrorMessage{
		Code:    errorPrefix + "10401",
		Message: "InvalidAddress",
	}

	NOT_AUTHORIZED_PATIENT = ErrorMessage{
		Code:    errorPrefix + "10402",
		Message: "NotAuthorizedPatient",
	}

	MONTHLY_MINT_LIMIT_REACHED = ErrorMessage{
		Code:    errorPrefix + "10403",
		Message: "MonthlyMintLimitReached",
	}

	INSUFFICIENT_BALANCE = ErrorMessage{
		Code:    errorPrefix + "10404",
		Message: "InsufficientBalance",
	}

	SYSTEM_PAUSED = ErrorMessage{
		Code:    errorPrefix + "10405",
		Message: "SystemPaused",
	}

	INVALID_REWARD_COST = ErrorMessage{
		Code:    errorPrefix + "10406",
		Message: "InvalidRewardCost",
	}

	RECEIPT_NOT_FOUND = ErrorMessage{
		Code:    errorPrefix + "10407",
		Message: "ReceiptNotFound",
	}

	// Client error codes: access control

	UNAUTHORIZED = ErrorMessage{
		Code:    errorPrefix + "10501",
		Message: "Unauthorized",
	}

	ALREADY_PAUSED = ErrorMessage{
		Code:    errorPrefix + "10502",
		Message: "AlreadyPaused",
	}

	NOT_PAUSED = ErrorMessage{
		Code:    errorPrefix + "10503",
		Message: "NotPaused",
	}

	// Client error codes: transport

	UN_AUTHENTICATED = ErrorMessage{
		Code:        errorPrefix + "10601",
		Message:     "Unauthenticated",
		Description: "Missing or invalid Authorization header.",
	}

	BAD_REQUEST = ErrorMessage{
		Code:    errorPrefix + "10602",
		Message: "Bad request.",
	}

	INVALID_PATH_PARAM = ErrorMessage{
		Code:    errorPrefix + "10603",
		Message: "Invalid path parameter.",
	}
)
