package integrator

import (
	"fmt"

	"github.com/vfg2006/ad-state-sync/internal/domain"
)

// ConfigurationError indica conta mal configurada (sem credenciais, sem ID
// nativo). Não é retentado; aparece imediatamente para o chamador.
type ConfigurationError struct {
	AccountID string
	Reason    string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuração inválida para conta %s: %s", e.AccountID, e.Reason)
}

// AuthError indica token inválido ou expirado. A conta é marcada com erro e
// não é retentada na mesma passada.
type AuthError struct {
	Platform domain.Platform
	Reason   string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("falha de autenticação na plataforma %s: %s", e.Platform, e.Reason)
}

// TransportError indica falha no nível HTTP (timeout, não-2xx, conexão).
// Aborta a busca da conta atual sem afetar as demais.
type TransportError struct {
	Platform   domain.Platform
	URL        string
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("falha de transporte na plataforma %s (status %d): %s", e.Platform, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("falha de transporte na plataforma %s: %v", e.Platform, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ProtocolError indica falha de aplicação dentro de uma resposta HTTP 200
// (ex.: envelope TikTok com code != 0). Tratado como TransportError para fins
// de abort.
type ProtocolError struct {
	Platform domain.Platform
	Code     int
	Message  string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("erro de protocolo na plataforma %s (code %d): %s", e.Platform, e.Code, e.Message)
}

// PersistenceError indica falha ao gravar um único registro. É logado e
// contado, mas não interrompe os registros restantes.
type PersistenceError struct {
	Key domain.AdStateKey
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("falha ao gravar ad state %s/%s/%s/%s/%s: %v",
		e.Key.Platform, e.Key.AdsAccountID, e.Key.CampaignID, e.Key.AdsetID, e.Key.AdID, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
