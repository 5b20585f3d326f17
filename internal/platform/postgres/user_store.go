package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"nc-news/internal/apperr"
	"nc-news/internal/domain"
	"nc-news/internal/platform/logger"
	"nc-news/internal/store"
)

// PostgresUserStore implements store.UserStore against PostgreSQL.
type PostgresUserStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPostgresUserStore creates a user store on the given connection pool.
// If logger is nil, the slog default is used.
func NewPostgresUserStore(db *sql.DB, logger *slog.Logger) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

var _ store.UserStore = (*PostgresUserStore)(nil)

const userColumns = `username, name, email, password_hash, avatar_url, role, created_at`

func scanUser(row *sql.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.Username, &u.Name, &u.Email, &u.PasswordHash,
		&u.AvatarURL, &u.Role, &u.CreatedAt)
	return u, err
}

// List implements store.UserStore.List. The public listing carries only the
// username, name, and avatar.
func (s *PostgresUserStore) List(ctx context.Context) ([]domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx,
		`SELECT username, name, avatar_url FROM users ORDER BY username`)
	if err != nil {
		log.Error("failed to list users", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	users := []domain.User{}
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.Username, &u.Name, &u.AvatarURL); err != nil {
			return nil, MapError(err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return users, nil
}

// GetByUsername implements store.UserStore.GetByUsername.
func (s *PostgresUserStore) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	u, err := scanUser(s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = $1`, username))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, apperr.NotFound("User not found")
	}
	if err != nil {
		return domain.User{}, MapError(err)
	}
	return u, nil
}

// GetByEmail implements store.UserStore.GetByEmail.
func (s *PostgresUserStore) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	u, err := scanUser(s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, apperr.NotFound("User not found")
	}
	if err != nil {
		return domain.User{}, MapError(err)
	}
	return u, nil
}

// Create implements store.UserStore.Create. The avatar URL and role columns
// fall back to their database defaults when unset.
func (s *PostgresUserStore) Create(ctx context.Context, user domain.User) (domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if user.AvatarURL == "" {
		user.AvatarURL = domain.DefaultAvatarURL
	}
	if user.Role == "" {
		user.Role = "user"
	}

	created, err := scanUser(s.db.QueryRowContext(ctx,
		`INSERT INTO users (username, name, email, password_hash, avatar_url, role)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+userColumns,
		user.Username, user.Name, user.Email, user.PasswordHash,
		user.AvatarURL, user.Role))
	if err != nil {
		if IsUniqueViolation(err) {
			return domain.User{}, apperr.Conflict("Username or email already exists")
		}
		log.Error("failed to create user",
			slog.String("username", user.Username),
			slog.String("error", err.Error()))
		return domain.User{}, MapError(err)
	}
	return created, nil
}

// UpdateProfile implements store.UserStore.UpdateProfile. Nil fields keep
// their current values.
func (s *PostgresUserStore) UpdateProfile(
	ctx context.Context,
	username string,
	name, avatarURL *string,
) (domain.User, error) {
	updated, err := scanUser(s.db.QueryRowContext(ctx,
		`UPDATE users
		 SET name = COALESCE($2, name), avatar_url = COALESCE($3, avatar_url)
		 WHERE username = $1
		 RETURNING `+userColumns,
		username, name, avatarURL))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, apperr.NotFound("User not found")
	}
	if err != nil {
		return domain.User{}, MapError(err)
	}
	return updated, nil
}

// Delete implements store.UserStore.Delete. The user's comments, comments
// on the user's articles, and the user's articles are removed with the user
// in one transaction, since the schema declares no cascading deletes.
func (s *PostgresUserStore) Delete(ctx context.Context, username string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM comments
			 WHERE article_id IN (SELECT article_id FROM articles WHERE author = $1)`,
			username); err != nil {
			return MapError(err)
		}
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM comments WHERE author = $1`, username); err != nil {
			return MapError(err)
		}
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM articles WHERE author = $1`, username); err != nil {
			return MapError(err)
		}

		result, err := tx.ExecContext(ctx,
			`DELETE FROM users WHERE username = $1`, username)
		if err != nil {
			return MapError(err)
		}
		return CheckRowsAffected(result, apperr.NotFound("User not found"))
	})
	if err != nil && apperr.From(err) == nil {
		log.Error("failed to delete user",
			slog.String("username", username),
			slog.String("error", err.Error()))
		return apperr.Internal(err)
	}
	return err
}
