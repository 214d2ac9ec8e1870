package integrator

import (
	"context"

	"github.com/vfg2006/ad-state-sync/internal/domain"
)

// PlatformAdapter converte as respostas paginadas da API de uma plataforma em
// uma sequência plana de registros AdState normalizados para uma conta.
// Implementações fazem somente I/O de rede; nunca persistem.
type PlatformAdapter interface {
	Platform() domain.Platform

	// ValidateCredentials faz uma chamada leve de verificação de token.
	ValidateCredentials(ctx context.Context, account *domain.AdsAccount) error

	// FetchAll retorna a árvore campanha→adset→ad→criativo completa e
	// normalizada da conta, ou erro se a busca não puder prosseguir. Qualquer
	// falha durante a travessia descarta a árvore parcial acumulada.
	FetchAll(ctx context.Context, account *domain.AdsAccount) ([]*domain.AdState, error)
}

// Registry resolve o adapter pela plataforma da conta.
type Registry struct {
	adapters map[domain.Platform]PlatformAdapter
}

func NewRegistry(adapters ...PlatformAdapter) *Registry {
	byPlatform := make(map[domain.Platform]PlatformAdapter, len(adapters))
	for _, adapter := range adapters {
		byPlatform[adapter.Platform()] = adapter
	}

	return &Registry{adapters: byPlatform}
}

func (r *Registry) ForPlatform(platform domain.Platform) (PlatformAdapter, bool) {
	adapter, ok := r.adapters[platform]
	return adapter, ok
}
