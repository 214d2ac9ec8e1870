package domain

import (
	"time"
)

// SyncOutcome é o resultado da sincronização de uma única conta.
type SyncOutcome struct {
	AccountID      string        `json:"account_id"`
	Platform       Platform      `json:"platform"`
	RecordsWritten int           `json:"records_written"`
	UpsertFailures int           `json:"upsert_failures"`
	Duration       time.Duration `json:"-"`
	Err            error         `json:"-"`
}

func (o SyncOutcome) Succeeded() bool {
	return o.Err == nil
}

// SyncSummary agrega os resultados de uma passada completa da frota.
type SyncSummary struct {
	Total       int       `json:"total"`
	Succeeded   int       `json:"succeeded"`
	Failed      int       `json:"failed"`
	StartedAt   time.Time `json:"started_at"`
	CompletedAt time.Time `json:"completed_at"`
}

// AuditEvent é o evento estruturado enviado ao coletor de auditoria após
// cada conta processada. Falha ao gravar o evento nunca aborta a sincronização.
type AuditEvent struct {
	Project    string    `json:"project"`
	ActionType string    `json:"action_type"`
	Action     string    `json:"action"`
	AccountID  string    `json:"account_id"`
	Status     string    `json:"status"`
	DurationMS int64     `json:"duration_ms"`
	Remark     string    `json:"remark"`
	CreatedAt  time.Time `json:"created_at"`
}

const (
	AuditActionTypeSync    = "ad_state_sync"
	AuditActionAccountSync = "account_sync"
	AuditActionFleetSync   = "fleet_sync"
	AuditStatusSuccess     = "success"
	AuditStatusFailure     = "failure"
)
