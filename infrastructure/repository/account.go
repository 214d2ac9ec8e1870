package repository

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/vfg2006/ad-state-sync/infrastructure/database/postgres"
	"github.com/vfg2006/ad-state-sync/internal/domain"
)

const (
	adsAccountsTable = "ads_accounts a"
)

type AccountRepository interface {
	GetAccountByID(accountID string) (*domain.AdsAccount, error)
	ListAccounts(availableStatus []domain.AdsAccountStatus) ([]*domain.AdsAccount, error)
	MarkSyncSuccess(accountID string, syncedAt time.Time) error
	MarkSyncError(accountID string, reason string, failedAt time.Time) error
}

type accountRepository struct {
	conn *postgres.Connection
}

func NewAccountRepository(conn *postgres.Connection) AccountRepository {
	return &accountRepository{
		conn: conn,
	}
}

func (a *accountRepository) GetAccountByID(accountID string) (*domain.AdsAccount, error) {
	accountsSQL, accountsArgs, err := squirrel.
		Select("a.id, a.platform, a.native_id, a.name, a.status, a.credentials, a.last_error, a.last_synced_at, a.created_at, a.updated_at").
		From(adsAccountsTable).
		Where(squirrel.Eq{"a.id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	row := a.conn.QueryRow(accountsSQL, accountsArgs...)

	acc, err := a.deserializeAccount(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return acc, nil
}

func (a *accountRepository) ListAccounts(availableStatus []domain.AdsAccountStatus) ([]*domain.AdsAccount, error) {
	queryBuilder := squirrel.
		Select("a.id, a.platform, a.native_id, a.name, a.status, a.credentials, a.last_error, a.last_synced_at, a.created_at, a.updated_at").
		From(adsAccountsTable).
		OrderBy("a.platform ASC, a.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(availableStatus) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"a.status": availableStatus})
	}

	accountsSQL, accountsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := a.conn.Query(accountsSQL, accountsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	accounts := make([]*domain.AdsAccount, 0)

	for rows.Next() {
		acc := &domain.AdsAccount{}
		var credentialsJSON []byte

		if err := rows.Scan(
			&acc.ID,
			&acc.Platform,
			&acc.NativeID,
			&acc.Name,
			&acc.Status,
			&credentialsJSON,
			&acc.LastError,
			&acc.LastSyncedAt,
			&acc.CreatedAt,
			&acc.UpdatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear conta")
		}

		if err := unmarshalCredentials(credentialsJSON, acc); err != nil {
			return nil, err
		}

		accounts = append(accounts, acc)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return accounts, nil
}

// MarkSyncSuccess registra uma sincronização bem sucedida e limpa o último erro.
func (a *accountRepository) MarkSyncSuccess(accountID string, syncedAt time.Time) error {
	query, args, err := squirrel.
		Update("ads_accounts").
		Set("last_error", nil).
		Set("last_synced_at", syncedAt).
		Set("updated_at", syncedAt).
		Where(squirrel.Eq{"id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	_, err = a.conn.Exec(query, args...)
	if err != nil {
		return errors.Wrap(err, "erro ao executar a query")
	}

	return nil
}

// MarkSyncError coloca a conta em estado de erro com o motivo da falha.
// A reativação é responsabilidade do job externo de validação de tokens.
func (a *accountRepository) MarkSyncError(accountID string, reason string, failedAt time.Time) error {
	query, args, err := squirrel.
		Update("ads_accounts").
		Set("status", domain.AdsAccountStatusError).
		Set("last_error", reason).
		Set("last_synced_at", failedAt).
		Set("updated_at", failedAt).
		Where(squirrel.Eq{"id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	_, err = a.conn.Exec(query, args...)
	if err != nil {
		return errors.Wrap(err, "erro ao executar a query")
	}

	return nil
}

func (a *accountRepository) deserializeAccount(row *sql.Row) (*domain.AdsAccount, error) {
	acc := &domain.AdsAccount{}
	var credentialsJSON []byte

	if err := row.Scan(
		&acc.ID,
		&acc.Platform,
		&acc.NativeID,
		&acc.Name,
		&acc.Status,
		&credentialsJSON,
		&acc.LastError,
		&acc.LastSyncedAt,
		&acc.CreatedAt,
		&acc.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if err := unmarshalCredentials(credentialsJSON, acc); err != nil {
		return nil, err
	}

	return acc, nil
}

func unmarshalCredentials(credentialsJSON []byte, acc *domain.AdsAccount) error {
	if len(credentialsJSON) == 0 {
		return nil
	}

	if err := json.Unmarshal(credentialsJSON, &acc.Credentials); err != nil {
		return errors.Wrapf(err, "erro ao deserializar credenciais da conta %s", acc.ID)
	}

	return nil
}
