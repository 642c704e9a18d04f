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

package scripts

var InsertLedgerEvent = map[string]string{
	"postgres": `INSERT INTO ledger_events (sequence, event_id, event_type, occurred_at, properties)
	VALUES ($1, $2, $3, $4, $5)`,
}

var ListLedgerEvents = map[string]string{
	"postgres": `SELECT sequence, event_id, event_type, occurred_at, properties::text AS properties
	FROM ledger_events WHERE sequence >= $1 ORDER BY sequence ASC LIMIT $2`,
}

var PingDatabase = map[string]string{
	"postgres": `SELECT 1`,
}

var LastLedgerSequence = map[string]string{
	"postgres": `SELECT COALESCE(MAX(sequence), 0)::BIGINT AS last_sequence FROM ledger_events`,
}
