package domain

import (
	"time"
)

type AdsAccountStatus string

const (
	AdsAccountStatusActive   AdsAccountStatus = "ACTIVE"
	AdsAccountStatusInactive AdsAccountStatus = "INACTIVE"
	AdsAccountStatusError    AdsAccountStatus = "ERROR"
)

// Credentials agrupa as credenciais por conta. Cada plataforma usa um
// subconjunto dos campos; os demais ficam vazios.
type Credentials struct {
	AccessToken    string `json:"access_token,omitempty"`
	RefreshToken   string `json:"refresh_token,omitempty"`
	DeveloperToken string `json:"developer_token,omitempty"`
	ClientID       string `json:"client_id,omitempty"`
	ClientSecret   string `json:"client_secret,omitempty"`
	AdvertiserID   string `json:"advertiser_id,omitempty"`
	CustomerID     string `json:"customer_id,omitempty"`
}

// Empty indica se nenhuma credencial utilizável foi configurada.
func (c Credentials) Empty() bool {
	return c.AccessToken == "" && c.RefreshToken == ""
}

// AdsAccount é a conta de anúncios de uma plataforma. O núcleo de
// sincronização só escreve de volta Status, LastError e LastSyncedAt.
type AdsAccount struct {
	ID           string           `json:"id"`
	Platform     Platform         `json:"platform"`
	NativeID     string           `json:"account_native_id"`
	Name         string           `json:"name"`
	Status       AdsAccountStatus `json:"status"`
	Credentials  Credentials      `json:"-"`
	LastError    *string          `json:"last_error"`
	LastSyncedAt *time.Time       `json:"last_synced_at"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

type AdsAccountResponse struct {
	ID           string           `json:"id"`
	Platform     Platform         `json:"platform"`
	NativeID     string           `json:"account_native_id"`
	Name         string           `json:"name"`
	Status       AdsAccountStatus `json:"status"`
	HasToken     bool             `json:"hasToken"`
	LastError    *string          `json:"last_error"`
	LastSyncedAt *time.Time       `json:"last_synced_at"`
}
