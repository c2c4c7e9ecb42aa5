package repository

import (
	"context"
	"errors"
	"log"

	"github.com/bytedance/sonic"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	errorvalues "github.com/astralune/trackstar/internal/error_values"
	"github.com/astralune/trackstar/pkg/cleanup"
	"github.com/astralune/trackstar/pkg/entity"
)

type UsersRepository struct {
	conn PgConnection
}

func NewUsersRepo(cfg DBConfig) *UsersRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for usersRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for usersRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &UsersRepository{
		conn: pool,
	}
}

func NewUsersRepoWithConn(conn PgConnection) *UsersRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for usersRepo: " + err.Error())
	}
	return &UsersRepository{
		conn: conn,
	}
}

func (ur *UsersRepository) Upsert(ctx context.Context, user *entity.User) error {
	if user == nil {
		return errors.New("user is nil")
	}
	settings, err := sonic.ConfigDefault.Marshal(user.Settings)
	if err != nil {
		return errors.New("marshalling settings error: " + err.Error())
	}
	// Settings only land on fresh rows; existing ones keep what they have
	_, err = ur.conn.Exec(ctx, `INSERT INTO users (id, name, email, picture, settings, last_login)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, email = EXCLUDED.email,
			picture = EXCLUDED.picture, last_login = NOW();`,
		user.ID,
		user.Name,
		user.Email,
		user.Picture,
		settings,
	)
	if err != nil {
		return errors.New("upserting user db error: " + err.Error())
	}
	return nil
}

func (ur *UsersRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	user := entity.User{ID: id}
	var settings []byte
	row := ur.conn.QueryRow(ctx, `SELECT name, email, picture, settings, last_login, created_at FROM users WHERE id = $1;`, id)
	if err := row.Scan(&user.Name, &user.Email, &user.Picture, &settings, &user.LastLogin, &user.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by id error: " + err.Error())
	}
	if len(settings) > 0 {
		if err := sonic.ConfigDefault.Unmarshal(settings, &user.Settings); err != nil {
			return nil, errors.New("unmarshalling settings error: " + err.Error())
		}
	}
	return &user, nil
}

func (ur *UsersRepository) UpdateProfile(ctx context.Context, id string, patch entity.ProfilePatch) (*entity.User, error) {
	var settings []byte
	if patch.Settings != nil {
		var err error
		settings, err = sonic.ConfigDefault.Marshal(patch.Settings)
		if err != nil {
			return nil, errors.New("marshalling settings error: " + err.Error())
		}
	}
	ct, err := ur.conn.Exec(ctx, `UPDATE users SET name = COALESCE($2, name),
		picture = COALESCE($3, picture), settings = COALESCE($4, settings) WHERE id = $1;`,
		id,
		patch.Name,
		patch.Picture,
		settings,
	)
	if err != nil {
		return nil, errors.New("updating user profile error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return nil, errorvalues.ErrUserNotFound
	}
	return ur.FindByID(ctx, id)
}
