package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/vfg2006/ad-state-sync/infrastructure/database/postgres"
	"github.com/vfg2006/ad-state-sync/internal/domain"
)

const (
	adStatesTable = "ad_states s"
)

type AdStateRepository interface {
	// Upsert cria ou substitui o registro identificado pela chave composta
	// (platform, ads_account_id, campaign_id, adset_id, ad_id).
	Upsert(state *domain.AdState) error
	ListByAccount(platform domain.Platform, adsAccountID string) ([]*domain.AdState, error)
}

type adStateRepository struct {
	conn *postgres.Connection
}

func NewAdStateRepository(conn *postgres.Connection) AdStateRepository {
	return &adStateRepository{
		conn: conn,
	}
}

func (r *adStateRepository) Upsert(state *domain.AdState) error {
	query := squirrel.StatementBuilder.
		Insert("ad_states").
		Columns(
			"platform", "ads_account_id", "campaign_id", "adset_id", "ad_id",
			"campaign_name", "adset_name", "ad_name",
			"campaign_effective_status", "adset_effective_status", "ad_effective_status",
			"daily_budget", "lifetime_budget", "bid_amount", "budget_remaining",
			"bid_strategy", "optimization_goal", "billing_event",
			"start_time", "stop_time",
			"creative_id", "creative_name", "image_url", "video_url", "thumbnail_url",
			"ad_title", "ad_body", "ad_description", "call_to_action", "link_url",
			"synced_at", "sync_status", "sync_error",
			"campaign_raw_data", "adset_raw_data", "ad_raw_data", "creative_raw_data",
		).
		Values(
			state.Platform, state.AdsAccountID, state.CampaignID, state.AdsetID, state.AdID,
			state.CampaignName, state.AdsetName, state.AdName,
			state.CampaignEffectiveStatus, state.AdsetEffectiveStatus, state.AdEffectiveStatus,
			state.DailyBudget, state.LifetimeBudget, state.BidAmount, state.BudgetRemaining,
			state.BidStrategy, state.OptimizationGoal, state.BillingEvent,
			state.StartTime, state.StopTime,
			state.CreativeID, state.CreativeName, state.ImageURL, state.VideoURL, state.ThumbnailURL,
			state.AdTitle, state.AdBody, state.AdDescription, state.CallToAction, state.LinkURL,
			state.SyncedAt, state.SyncStatus, state.SyncError,
			rawOrNil(state.CampaignRawData), rawOrNil(state.AdsetRawData),
			rawOrNil(state.AdRawData), rawOrNil(state.CreativeRawData),
		).
		Suffix(`
			ON CONFLICT (platform, ads_account_id, campaign_id, adset_id, ad_id) DO UPDATE SET
				campaign_name = EXCLUDED.campaign_name,
				adset_name = EXCLUDED.adset_name,
				ad_name = EXCLUDED.ad_name,
				campaign_effective_status = EXCLUDED.campaign_effective_status,
				adset_effective_status = EXCLUDED.adset_effective_status,
				ad_effective_status = EXCLUDED.ad_effective_status,
				daily_budget = EXCLUDED.daily_budget,
				lifetime_budget = EXCLUDED.lifetime_budget,
				bid_amount = EXCLUDED.bid_amount,
				budget_remaining = EXCLUDED.budget_remaining,
				bid_strategy = EXCLUDED.bid_strategy,
				optimization_goal = EXCLUDED.optimization_goal,
				billing_event = EXCLUDED.billing_event,
				start_time = EXCLUDED.start_time,
				stop_time = EXCLUDED.stop_time,
				creative_id = EXCLUDED.creative_id,
				creative_name = EXCLUDED.creative_name,
				image_url = EXCLUDED.image_url,
				video_url = EXCLUDED.video_url,
				thumbnail_url = EXCLUDED.thumbnail_url,
				ad_title = EXCLUDED.ad_title,
				ad_body = EXCLUDED.ad_body,
				ad_description = EXCLUDED.ad_description,
				call_to_action = EXCLUDED.call_to_action,
				link_url = EXCLUDED.link_url,
				synced_at = EXCLUDED.synced_at,
				sync_status = EXCLUDED.sync_status,
				sync_error = EXCLUDED.sync_error,
				campaign_raw_data = EXCLUDED.campaign_raw_data,
				adset_raw_data = EXCLUDED.adset_raw_data,
				ad_raw_data = EXCLUDED.ad_raw_data,
				creative_raw_data = EXCLUDED.creative_raw_data,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return errors.Wrapf(pqErr, "erro no banco de dados (código: %s)", pqErr.Code)
		}
		return errors.Wrap(err, "erro ao executar a query")
	}

	return nil
}

func (r *adStateRepository) ListByAccount(platform domain.Platform, adsAccountID string) ([]*domain.AdState, error) {
	query, args, err := squirrel.
		Select(
			"s.platform, s.ads_account_id, s.campaign_id, s.adset_id, s.ad_id",
			"s.campaign_name, s.adset_name, s.ad_name",
			"s.campaign_effective_status, s.adset_effective_status, s.ad_effective_status",
			"s.daily_budget, s.lifetime_budget, s.bid_amount, s.budget_remaining",
			"s.bid_strategy, s.optimization_goal, s.billing_event",
			"s.start_time, s.stop_time",
			"s.creative_id, s.creative_name, s.image_url, s.video_url, s.thumbnail_url",
			"s.ad_title, s.ad_body, s.ad_description, s.call_to_action, s.link_url",
			"s.synced_at, s.sync_status, s.sync_error",
		).
		From(adStatesTable).
		Where(squirrel.Eq{"s.platform": platform, "s.ads_account_id": adsAccountID}).
		OrderBy("s.campaign_id ASC, s.adset_id ASC, s.ad_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao executar a query")
	}
	defer rows.Close()

	states := make([]*domain.AdState, 0)
	for rows.Next() {
		state := &domain.AdState{}
		if err := rows.Scan(
			&state.Platform, &state.AdsAccountID, &state.CampaignID, &state.AdsetID, &state.AdID,
			&state.CampaignName, &state.AdsetName, &state.AdName,
			&state.CampaignEffectiveStatus, &state.AdsetEffectiveStatus, &state.AdEffectiveStatus,
			&state.DailyBudget, &state.LifetimeBudget, &state.BidAmount, &state.BudgetRemaining,
			&state.BidStrategy, &state.OptimizationGoal, &state.BillingEvent,
			&state.StartTime, &state.StopTime,
			&state.CreativeID, &state.CreativeName, &state.ImageURL, &state.VideoURL, &state.ThumbnailURL,
			&state.AdTitle, &state.AdBody, &state.AdDescription, &state.CallToAction, &state.LinkURL,
			&state.SyncedAt, &state.SyncStatus, &state.SyncError,
		); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear ad state")
		}
		states = append(states, state)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return states, nil
}

// rawOrNil evita gravar JSON vazio como string vazia inválida.
func rawOrNil(raw []byte) interface{} {
	if len(raw) == 0 {
		return nil
	}
	return []byte(raw)
}
