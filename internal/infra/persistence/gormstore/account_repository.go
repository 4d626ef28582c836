package gormstore

import (
	"context"

	"pumpdesk/internal/domain/entity"
	domainerrors "pumpdesk/internal/domain/errors"
	"pumpdesk/internal/domain/repository"
	"pumpdesk/internal/errors"
	"pumpdesk/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// accountRepository implements the domain.AccountRepository interface using GORM.
type accountRepository struct {
	db    *gorm.DB
	store recordStore[model.AccountModel]
}

// NewAccountRepository is the constructor for accountRepository.
// It returns the repository as a domain.AccountRepository interface, adhering to dependency inversion.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{
		db: db,
		store: recordStore[model.AccountModel]{
			db:       db,
			table:    "account",
			notFound: domainerrors.ErrAccountNotFound,
			conflict: domainerrors.ErrAccountAlreadyExists,
		},
	}
}

// FindByID retrieves a single account by its unique ID.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	accountM, err := repo.store.get(ctx, id)
	if err != nil {
		return nil, err
	}

	return toAccountDomain(accountM), nil
}

// FindByEmail matches the email case-insensitively.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	return repo.findOne(repo.db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email), "failed to find account by email")
}

// FindByUsernameOrEmail accepts either login identifier.
func (repo *accountRepository) FindByUsernameOrEmail(ctx context.Context, key string) (*entity.Account, error) {
	query := repo.db.WithContext(ctx).Where("username = ? OR LOWER(email) = LOWER(?)", key, key)

	return repo.findOne(query, "failed to find account by username or email")
}

func (repo *accountRepository) findOne(query *gorm.DB, action string) (*entity.Account, error) {
	var accountM model.AccountModel
	if err := query.Take(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, action)
	}

	return toAccountDomain(&accountM), nil
}

// Create persists a new account together with its initial credentials.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}

	accountM := fromAccountDomain(account)
	if err := repo.store.insert(ctx, accountM); err != nil {
		return err
	}

	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// UpdateCredentials writes hash and salt in one statement so they never diverge.
func (repo *accountRepository) UpdateCredentials(ctx context.Context, id uuid.UUID, hash, salt string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"password_hash": hash,
			"password_salt": salt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update account credentials")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrAccountNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		ID:           data.ID,
		Username:     data.Username,
		Email:        data.Email,
		Role:         entity.Role(data.Role),
		PasswordHash: data.PasswordHash,
		PasswordSalt: data.PasswordSalt,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	return &model.AccountModel{
		ID:           data.ID,
		Username:     data.Username,
		Email:        data.Email,
		Role:         data.Role.String(),
		PasswordHash: data.PasswordHash,
		PasswordSalt: data.PasswordSalt,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
